// ABOUTME: Defines the Key type produced by the decoder for each input read
// ABOUTME: Literal bytes, arrow and paging keys, and the literal/unrecognized escape

package key

import "fmt"

// Key represents one decoded keyboard event.
type Key struct {
	Type KeyType
	Code byte // raw byte for KeyChar; 0x1b for KeyEscape
}

// KeyType enumerates the kinds of key events the decoder can produce.
type KeyType int

const (
	KeyChar     KeyType = iota // Literal byte, including control codes
	KeyLeft                    // Arrow left
	KeyRight                   // Arrow right
	KeyUp                      // Arrow up
	KeyDown                    // Arrow down
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyEscape                  // Bare ESC or an unrecognized escape sequence
)

// Byte values with special meaning to the decoder and dispatcher.
const (
	esc = 0x1b
)

// Ctrl returns the control code produced by holding Ctrl with c.
func Ctrl(c byte) byte {
	return c & 0x1f
}

// Quit is the key that terminates the program (Ctrl+Q).
var Quit = Char(Ctrl('q'))

// Char returns the literal key for b.
func Char(b byte) Key {
	return Key{Type: KeyChar, Code: b}
}

// Escape returns the literal escape key.
func Escape() Key {
	return Key{Type: KeyEscape, Code: esc}
}

// keyTypeNames provides human-readable labels for each non-literal KeyType.
var keyTypeNames = map[KeyType]string{
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyEscape:   "Escape",
}

// String returns a human-readable representation of the Key for debug logs.
func (k Key) String() string {
	if k.Type == KeyChar {
		return formatChar(k.Code)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// formatChar renders a literal byte, spelling control codes as Ctrl+X.
func formatChar(b byte) string {
	switch {
	case b == 0x7f:
		return "Backspace"
	case b < 0x20:
		return fmt.Sprintf("Ctrl+%c", b|0x40)
	case b > 0x7f:
		return fmt.Sprintf("0x%02x", b)
	}
	return string(rune(b))
}
