// ABOUTME: Defines the Terminal interface for raw mode, size queries, and byte I/O.
// ABOUTME: OpError names the failing terminal operation for fatal diagnostics.

package terminal

import "errors"

// Terminal abstracts low-level terminal operations: raw mode, size
// queries, input reads, and output writes. Read returns (0, nil) when
// the raw-mode read timeout expires with no input.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}

// ErrNotTerminal is returned when the input stream is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// ErrUnsupported is returned on platforms without termios support.
var ErrUnsupported = errors.New("raw mode not supported on this platform")

// OpError records the terminal operation that failed.
type OpError struct {
	Op  string // tcgetattr, tcsetattr, read, write, getWindowSize
	Err error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
