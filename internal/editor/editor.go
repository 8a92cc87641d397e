// ABOUTME: Editor drives the render/read/dispatch loop over a raw-mode terminal
// ABOUTME: Maps decoded keys to clamped cursor moves, paging, or the quit action

package editor

import (
	"context"
	"errors"

	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Version is shown in the default welcome banner.
const Version = "0.0.1"

// ErrQuit is returned by ProcessKey and Run when the user pressed the
// quit key. The screen has already been cleared.
var ErrQuit = errors.New("quit requested")

// Editor owns the cursor state and the terminal it draws on.
type Editor struct {
	term     terminal.Terminal
	decoder  *key.Decoder
	renderer *Renderer
	state    *State
}

// New returns an Editor drawing on t. Keys are decoded from t's input.
func New(t terminal.Terminal, state *State, renderer *Renderer) *Editor {
	return &Editor{
		term:     t,
		decoder:  key.NewDecoder(t),
		renderer: renderer,
		state:    state,
	}
}

// State returns the editor's cursor and geometry.
func (e *Editor) State() *State {
	return e.state
}

// Run redraws the screen and handles one key per iteration until the
// quit key (ErrQuit), a terminal failure (*terminal.OpError), or ctx is
// cancelled.
func (e *Editor) Run(ctx context.Context) error {
	for {
		if err := e.RefreshScreen(); err != nil {
			return err
		}

		k, err := e.decoder.ReadKey(ctx)
		if err != nil {
			var readErr *key.ReadError
			if errors.As(err, &readErr) {
				return &terminal.OpError{Op: "read", Err: readErr.Err}
			}
			return err
		}
		log.Debug("key %s", k)

		if err := e.ProcessKey(k); err != nil {
			return err
		}
	}
}

// RefreshScreen renders the current state and writes it in one call.
func (e *Editor) RefreshScreen() error {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	e.renderer.Frame(buf, e.state)
	if dropped := buf.Dropped(); dropped > 0 {
		log.Warn("frame over %d bytes, dropped %d", tui.MaxFrameBytes, dropped)
	}

	if err := buf.Flush(e.term); err != nil {
		return &terminal.OpError{Op: "write", Err: err}
	}
	return nil
}

// ProcessKey applies one key. The quit key clears the screen with two
// direct writes and returns ErrQuit; unbound keys do nothing.
func (e *Editor) ProcessKey(k key.Key) error {
	switch k.Type {
	case key.KeyChar:
		if k == key.Quit {
			// Exit proceeds even if the terminal rejects the clear.
			_ = terminal.ClearScreen(e.term)
			return ErrQuit
		}
	case key.KeyPageUp, key.KeyPageDown:
		e.state.Page(k.Type)
	case key.KeyLeft, key.KeyRight, key.KeyUp, key.KeyDown:
		e.state.Move(k.Type)
	}
	return nil
}
