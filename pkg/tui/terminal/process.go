// ABOUTME: ProcessTerminal implements Terminal using stdin/stdout and golang.org/x/term.
// ABOUTME: Captures the original mode snapshot and delegates termios tuning per platform.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// readTimeoutDeciseconds is the VTIME value: reads return after 100ms
// even when no byte arrived.
const readTimeoutDeciseconds = 1

// ProcessTerminal is a real terminal backed by a pair of files,
// normally os.Stdin and os.Stdout.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal over stdin and stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal reading from in and writing
// to out. Raw mode is applied to in.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode saves the current mode and switches the input to raw
// mode with a 100ms read timeout. Calling it while raw mode is already
// active keeps the first snapshot.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return &OpError{Op: "tcgetattr", Err: ErrNotTerminal}
	}
	state, err := term.GetState(fd)
	if err != nil {
		return &OpError{Op: "tcgetattr", Err: err}
	}
	if err := applyRawMode(fd); err != nil {
		return err
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to the saved snapshot.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return &OpError{Op: "tcsetattr", Err: err}
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions from the output stream.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output stream.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
