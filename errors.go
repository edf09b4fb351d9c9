package stopwatch

import (
	"errors"
	"fmt"
)

// ErrNotStarted is returned by elapsed-time queries on a timer whose
// Start has never been called.
var ErrNotStarted = errors.New("timer not started")

// UnknownFormatError reports a display format name that matches no
// built-in variant.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown display format %q", e.Name)
}
