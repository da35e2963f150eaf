package journal

import (
	"fmt"
	"os"
	"path/filepath"

	"journal/internal/entry"
)

// AppendToFile writes e as one more line at the end of path, creating the
// file if needed. Lines already in the file are not read or rewritten.
func AppendToFile(path string, e entry.Entry) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer func(f *os.File) {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}(f)

	if _, err := f.WriteString(entry.Encode(e) + "\n"); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ResolveIn maps a file name given by a remote user onto dir. Absolute
// names and names that climb out of dir are rejected.
func ResolveIn(dir, name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%q: %w", name, ErrOutsideDir)
	}
	return filepath.Join(dir, name), nil
}
