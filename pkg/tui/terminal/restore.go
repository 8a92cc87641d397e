// ABOUTME: RawMode guard restores the original terminal mode exactly once on every exit path.
// ABOUTME: RestoreOnPanic clears the screen, restores the mode, prints the stack, and exits.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/mauromedda/kilo-go/pkg/tui/ansi"
)

// RawMode holds a terminal in raw mode until Restore is called. It is
// meant to be deferred right after EnableRawMode succeeds.
type RawMode struct {
	term Terminal
	once sync.Once
	err  error
}

// EnableRawMode switches t into raw mode and returns the guard that
// undoes it.
func EnableRawMode(t Terminal) (*RawMode, error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}
	return &RawMode{term: t}, nil
}

// Restore returns the terminal to its original mode. Only the first
// call touches the terminal; later calls return the first result.
func (r *RawMode) Restore() error {
	r.once.Do(func() {
		r.err = r.term.ExitRawMode()
	})
	return r.err
}

// Terminal returns the guarded terminal.
func (r *RawMode) Terminal() Terminal {
	return r.term
}

// ClearScreen writes the clear-screen and cursor-home sequences as two
// direct writes, leaving the cursor at the top-left of a blank screen.
func ClearScreen(w io.Writer) error {
	if _, err := io.WriteString(w, ansi.ClearScreen); err != nil {
		return err
	}
	_, err := io.WriteString(w, ansi.CursorHome)
	return err
}

// RestoreOnPanic should be deferred in the goroutine that owns the
// terminal. On panic it clears the screen, restores the original mode
// through the guard, prints the panic value and stack trace, then
// exits with code 1.
func RestoreOnPanic(r *RawMode) {
	v := recover()
	if v == nil {
		return
	}
	reportPanic(r, v, os.Stderr)
	os.Exit(1)
}

// reportPanic performs the best-effort cleanup for RestoreOnPanic.
func reportPanic(r *RawMode, v any, stderr io.Writer) {
	_ = ClearScreen(r.term)
	_, _ = io.WriteString(r.term, ansi.ShowCursor)
	_ = r.Restore()

	fmt.Fprintf(stderr, "\npanic: %v\n\n%s\n", v, debug.Stack())
}
