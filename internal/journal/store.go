package journal

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"journal/internal/entry"
)

const maxLineSize = 10 * 1024 * 1024

// Store is the ordered, in-memory journal of the active session.
// It is not safe for concurrent use.
type Store struct {
	entries []entry.Entry
}

// LoadResult summarizes a LoadFromFile call.
type LoadResult struct {
	Loaded   int
	Failures []LineError
}

func New() *Store {
	return &Store{}
}

func (s *Store) Add(e entry.Entry) {
	s.entries = append(s.entries, e)
}

// List returns a copy of the entries in insertion order.
func (s *Store) List() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int { return len(s.entries) }

// Replace swaps the whole entry at index i.
func (s *Store) Replace(i int, e entry.Entry) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("replace %d of %d: %w", i, len(s.entries), ErrIndexOutOfRange)
	}
	s.entries[i] = e
	return nil
}

// SaveToFile truncates path and writes one encoded entry per line.
// Contents of the file are unspecified when an error is returned.
func (s *Store) SaveToFile(path string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer func(f *os.File) {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}(f)

	w := bufio.NewWriter(f)
	for _, e := range s.entries {
		if _, err := w.WriteString(entry.Encode(e) + "\n"); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// LoadFromFile replaces the journal with the entries stored at path.
//
// A missing file yields *NotFoundError and leaves the journal as it was.
// Otherwise the journal is cleared before reading; malformed lines are
// skipped and reported in the result. Entries read before an I/O error
// stay in the journal.
func (s *Store) LoadFromFile(path string) (LoadResult, error) {
	var res LoadResult
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, &NotFoundError{Path: path}
		}
		return res, &IOError{Op: "open", Path: path, Err: err}
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	s.entries = s.entries[:0:0]

	sc := bufio.NewScanner(f)
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		e, err := entry.Decode(line)
		if err != nil {
			res.Failures = append(res.Failures, LineError{Line: n, Text: line, Err: err})
			continue
		}
		s.entries = append(s.entries, e)
		res.Loaded++
	}
	if err := sc.Err(); err != nil {
		return res, &IOError{Op: "read", Path: path, Err: err}
	}
	return res, nil
}
