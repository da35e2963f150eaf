package journal

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotFound is matched by *NotFoundError via errors.Is.
	ErrNotFound        = errors.New("journal file not found")
	ErrIndexOutOfRange = errors.New("entry index out of range")
	ErrOutsideDir      = errors.New("journal file must stay inside the journal directory")
)

// NotFoundError is returned by LoadFromFile when the file does not exist.
// The store is left untouched in that case.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("journal file %q not found", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == os.ErrNotExist
}

// IOError wraps a failure to open, read, write or close the journal file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LineError describes a line skipped during load.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }
