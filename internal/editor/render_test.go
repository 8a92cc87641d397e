// ABOUTME: Tests for frame composition: exact bytes, banner centering, and cursor placement
// ABOUTME: A vt10x virtual screen interprets frames to check what the user would see

package editor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hinshun/vt10x"

	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/ansi"
)

func renderFrame(t *testing.T, r *Renderer, s *State) []byte {
	t.Helper()

	var buf tui.RenderBuffer
	r.Frame(&buf, s)
	return bytes.Clone(buf.Bytes())
}

func TestFrame_ExactBytes(t *testing.T) {
	t.Parallel()

	r := NewRenderer("hi", "~")
	s := &State{CursorRow: 2, CursorCol: 4, ScreenRows: 3, ScreenCols: 10}

	want := "\x1b[?25l\x1b[H" +
		"~\x1b[K\r\n" +
		"~   hi\x1b[K\r\n" +
		"~\x1b[K" +
		"\x1b[3;5H\x1b[?25h"

	if got := string(renderFrame(t, r, s)); got != want {
		t.Errorf("Frame =\n%q\nwant\n%q", got, want)
	}
}

func TestFrame_BannerPadding(t *testing.T) {
	t.Parallel()

	banner := strings.Repeat("b", 23)
	r := NewRenderer(banner, "~")
	s := &State{ScreenRows: 24, ScreenCols: 80}

	rows := strings.Split(string(renderFrame(t, r, s)), "\r\n")
	if len(rows) != 24 {
		t.Fatalf("frame has %d rows, want 24", len(rows))
	}

	// (80-23)/2 = 28 columns of padding, the first taken by the marker.
	want := "~" + strings.Repeat(" ", 27) + banner + ansi.EraseLine
	if got := rows[8]; got != want {
		t.Errorf("banner row = %q, want %q", got, want)
	}
}

func TestFrame_BannerTruncatedWithoutPadding(t *testing.T) {
	t.Parallel()

	r := NewRenderer("Kilo editor -- version 0.0.1", "~")
	s := &State{ScreenRows: 3, ScreenCols: 4}

	rows := strings.Split(string(renderFrame(t, r, s)), "\r\n")
	// Banner fills every column, so no marker is drawn on its row.
	if got := rows[1]; got != "Kilo"+ansi.EraseLine {
		t.Errorf("banner row = %q, want %q", got, "Kilo"+ansi.EraseLine)
	}
}

func TestFrame_OddPaddingAndNoBanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		banner string
		cols   int
		want   string
	}{
		{name: "one column spare", banner: "abc", cols: 4, want: "abc"},
		{name: "two columns spare", banner: "abc", cols: 5, want: "~abc"},
		{name: "three columns spare", banner: "abc", cols: 6, want: "~abc"},
		{name: "four columns spare", banner: "abc", cols: 7, want: "~ abc"},
		{name: "hidden banner", banner: "", cols: 7, want: "~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewRenderer(tt.banner, "~")
			rows := strings.Split(string(renderFrame(t, r, &State{ScreenRows: 3, ScreenCols: tt.cols})), "\r\n")
			if got := strings.TrimSuffix(rows[1], ansi.EraseLine); got != tt.want {
				t.Errorf("banner row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrame_LastRowHasNoCRLF(t *testing.T) {
	t.Parallel()

	for _, rows := range []int{1, 2, 24} {
		frame := string(renderFrame(t, NewRenderer("", "~"), &State{ScreenRows: rows, ScreenCols: 10}))
		if got := strings.Count(frame, "\r\n"); got != rows-1 {
			t.Errorf("%d rows: frame has %d CRLFs, want %d", rows, got, rows-1)
		}
		if got := strings.Count(frame, ansi.EraseLine); got != rows {
			t.Errorf("%d rows: frame has %d erase-line sequences, want %d", rows, got, rows)
		}
	}
}

func TestFrame_CursorRoundTrip(t *testing.T) {
	t.Parallel()

	r := NewRenderer("banner", "~")
	for _, pos := range [][2]int{{0, 0}, {5, 17}, {23, 79}} {
		s := &State{CursorRow: pos[0], CursorCol: pos[1], ScreenRows: 24, ScreenCols: 80}
		frame := renderFrame(t, r, s)

		if !bytes.HasPrefix(frame, []byte(ansi.HideCursor+ansi.CursorHome)) {
			t.Fatalf("frame does not start by hiding the cursor and homing: %q", frame[:12])
		}
		body, ok := bytes.CutSuffix(frame, []byte(ansi.ShowCursor))
		if !ok {
			t.Fatal("frame does not end by showing the cursor")
		}
		seq := body[bytes.LastIndex(body, []byte("\x1b[")):]

		row, col, err := ansi.ParseCursorTo(seq)
		if err != nil {
			t.Fatalf("ParseCursorTo(%q): %v", seq, err)
		}
		if row != pos[0]+1 || col != pos[1]+1 {
			t.Errorf("reposition = (%d, %d), want (%d, %d)", row, col, pos[0]+1, pos[1]+1)
		}
	}
}

func TestFrame_OnVirtualScreen(t *testing.T) {
	t.Parallel()

	const rows, cols = 24, 80
	banner := "Kilo editor -- version " + Version
	r := NewRenderer(banner, "~")
	s := &State{CursorRow: 3, CursorCol: 5, ScreenRows: rows, ScreenCols: cols}

	vt := vt10x.New(vt10x.WithSize(cols, rows))
	// Stale content from an earlier, wider frame must be erased.
	if _, err := vt.Write([]byte(strings.Repeat("x", cols*rows))); err != nil {
		t.Fatal(err)
	}
	if _, err := vt.Write(renderFrame(t, r, s)); err != nil {
		t.Fatal(err)
	}

	vt.Lock()
	defer vt.Unlock()

	bannerRow := rows / 3
	bannerCol := (cols - len(banner)) / 2
	for y := range rows {
		if got := vt.Cell(0, y).Char; got != '~' {
			t.Errorf("row %d column 0 = %q, want '~'", y, got)
		}
		if y != bannerRow {
			if got := vt.Cell(1, y).Char; got != ' ' && got != 0 {
				t.Errorf("row %d column 1 = %q, want blank", y, got)
			}
		}
	}

	var line strings.Builder
	for x := bannerCol; x < bannerCol+len(banner); x++ {
		line.WriteRune(vt.Cell(x, bannerRow).Char)
	}
	if line.String() != banner {
		t.Errorf("banner on screen = %q, want %q at column %d", line.String(), banner, bannerCol)
	}

	cur := vt.Cursor()
	if cur.X != 5 || cur.Y != 3 {
		t.Errorf("cursor at (%d, %d), want (5, 3)", cur.X, cur.Y)
	}
	if !vt.CursorVisible() {
		t.Error("cursor should be visible after the frame")
	}
}
