// ABOUTME: Table-driven tests for Key helpers and debug formatting
// ABOUTME: Validates Ctrl masking, the quit key, and String output

package key

import "testing"

func TestCtrl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   byte
		want byte
	}{
		{name: "ctrl+q", in: 'q', want: 0x11},
		{name: "ctrl+Q", in: 'Q', want: 0x11},
		{name: "ctrl+a", in: 'a', want: 0x01},
		{name: "ctrl+c", in: 'c', want: 0x03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Ctrl(tt.in); got != tt.want {
				t.Errorf("Ctrl(%q) = 0x%02x, want 0x%02x", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	if Quit.Type != KeyChar || Quit.Code != 0x11 {
		t.Errorf("Quit = %+v, want KeyChar 0x11", Quit)
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "letter a", key: Char('a'), want: "a"},
		{name: "ctrl+q", key: Quit, want: "Ctrl+Q"},
		{name: "backspace", key: Char(0x7f), want: "Backspace"},
		{name: "high byte", key: Char(0xc3), want: "0xc3"},
		{name: "arrow up", key: Key{Type: KeyUp}, want: "Up"},
		{name: "page down", key: Key{Type: KeyPageDown}, want: "PageDown"},
		{name: "escape", key: Escape(), want: "Escape"},
		{name: "unknown type", key: Key{Type: KeyType(99)}, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
