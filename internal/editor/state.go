// ABOUTME: Cursor position and screen geometry owned by the editor loop
// ABOUTME: Movement is clamped silently to the grid; the cursor never leaves it

package editor

import (
	"fmt"

	"github.com/mauromedda/kilo-go/pkg/tui/key"
)

// State is the cursor and screen geometry. The cursor always satisfies
// 0 <= CursorCol < ScreenCols and 0 <= CursorRow < ScreenRows.
type State struct {
	CursorCol  int
	CursorRow  int
	ScreenRows int
	ScreenCols int
}

// NewState returns a State for a rows x cols screen with the cursor at
// the top-left corner.
func NewState(rows, cols int) (*State, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", rows, cols)
	}
	return &State{ScreenRows: rows, ScreenCols: cols}, nil
}

// Move applies one single-step cursor movement for an arrow key. Other
// key types are ignored.
func (s *State) Move(t key.KeyType) {
	switch t {
	case key.KeyLeft:
		if s.CursorCol > 0 {
			s.CursorCol--
		}
	case key.KeyRight:
		if s.CursorCol < s.ScreenCols-1 {
			s.CursorCol++
		}
	case key.KeyUp:
		if s.CursorRow > 0 {
			s.CursorRow--
		}
	case key.KeyDown:
		if s.CursorRow < s.ScreenRows-1 {
			s.CursorRow++
		}
	}
}

// Page repeats the Up or Down step once per screen row.
func (s *State) Page(t key.KeyType) {
	step := key.KeyDown
	if t == key.KeyPageUp {
		step = key.KeyUp
	}
	for range s.ScreenRows {
		s.Move(step)
	}
}
