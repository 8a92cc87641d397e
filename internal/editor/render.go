// ABOUTME: Renderer composes one full-screen frame into a RenderBuffer
// ABOUTME: Placeholder rows, a centered banner one third down, and the cursor placement

package editor

import (
	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/ansi"
	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// Renderer draws frames. It holds no per-frame state.
type Renderer struct {
	banner string
	marker string
}

// NewRenderer returns a Renderer drawing marker at the start of every
// empty row and banner (if non-empty) on the row one third down.
func NewRenderer(banner, marker string) *Renderer {
	return &Renderer{banner: banner, marker: marker}
}

// Frame appends a complete frame for s to buf: cursor hidden, every
// row redrawn and cleared to end of line, cursor placed and shown.
func (r *Renderer) Frame(buf *tui.RenderBuffer, s *State) {
	buf.AppendString(ansi.HideCursor)
	buf.AppendString(ansi.CursorHome)

	r.drawRows(buf, s)

	buf.AppendFunc(func(dst []byte) []byte {
		return ansi.AppendCursorTo(dst, s.CursorRow+1, s.CursorCol+1)
	})
	buf.AppendString(ansi.ShowCursor)
}

func (r *Renderer) drawRows(buf *tui.RenderBuffer, s *State) {
	bannerRow := s.ScreenRows / 3
	for y := range s.ScreenRows {
		if y == bannerRow && r.banner != "" {
			r.drawBanner(buf, s.ScreenCols)
		} else {
			buf.AppendString(r.marker)
		}

		buf.AppendString(ansi.EraseLine)
		// The last row gets no CRLF so the terminal does not scroll.
		if y < s.ScreenRows-1 {
			buf.AppendString("\r\n")
		}
	}
}

// drawBanner writes the banner centered in cols columns. When there is
// any padding, its first column holds the row marker.
func (r *Renderer) drawBanner(buf *tui.RenderBuffer, cols int) {
	text := width.Truncate(r.banner, cols)
	padding := (cols - width.VisibleWidth(text)) / 2
	if padding > 0 {
		buf.AppendString(r.marker)
		padding--
	}
	for range padding {
		buf.AppendByte(' ')
	}
	buf.AppendString(text)
}
