// ABOUTME: Non-unix stub for ProcessTerminal raw mode and reads.
// ABOUTME: Console raw mode is not implemented; EnterRawMode reports ErrUnsupported.

//go:build !unix

package terminal

func applyRawMode(int) error {
	return &OpError{Op: "tcsetattr", Err: ErrUnsupported}
}

// Read is unavailable without raw mode support.
func (t *ProcessTerminal) Read([]byte) (int, error) {
	return 0, &OpError{Op: "read", Err: ErrUnsupported}
}
