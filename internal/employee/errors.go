package employee

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when a stored record cannot be parsed.
var ErrMalformedRecord = errors.New("malformed record")

// IOError reports a failed filesystem operation on a record file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}
