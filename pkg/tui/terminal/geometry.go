// ABOUTME: ResolveSize determines rows and columns, probing the cursor when the ioctl fails.
// ABOUTME: The probe parks the cursor bottom-right and parses the ESC[6n position report.

package terminal

import (
	"fmt"
	"io"

	kilolog "github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/ansi"
)

// cursorReportMax caps the bytes read for one cursor-position reply.
const cursorReportMax = 32

// ResolveSize returns the usable screen size. It asks the terminal
// directly first; if that fails or reports an empty grid it moves the
// cursor to the bottom-right corner and reads back its position.
func ResolveSize(t Terminal) (rows, cols int, err error) {
	width, height, err := t.Size()
	if err == nil && width > 0 && height > 0 {
		kilolog.Debug("geometry: %dx%d from ioctl", width, height)
		return height, width, nil
	}
	kilolog.Debug("geometry: ioctl unusable (%dx%d, err=%v), probing cursor", width, height, err)

	if err := writeAll(t, ansi.CursorBottomRight); err != nil {
		return 0, 0, &OpError{Op: "getWindowSize", Err: err}
	}
	rows, cols, err = QueryCursorPosition(t)
	if err != nil {
		return 0, 0, &OpError{Op: "getWindowSize", Err: err}
	}
	kilolog.Debug("geometry: %dx%d from cursor probe", cols, rows)
	return rows, cols, nil
}

// QueryCursorPosition asks the terminal where the cursor is and parses
// the reply. Reading stops at the 'R' terminator, the first read that
// yields no byte, or when the reply buffer is full.
func QueryCursorPosition(rw io.ReadWriter) (row, col int, err error) {
	if err := writeAll(rw, ansi.QueryCursor); err != nil {
		return 0, 0, fmt.Errorf("querying cursor position: %w", err)
	}

	var buf [cursorReportMax]byte
	i := 0
	for i < len(buf)-1 {
		if n, _ := rw.Read(buf[i : i+1]); n != 1 {
			break
		}
		if buf[i] == 'R' {
			break
		}
		i++
	}

	row, col, err = ansi.ParseCursorPosition(buf[:i])
	if err != nil {
		return 0, 0, fmt.Errorf("reading cursor position: %w", err)
	}
	return row, col, nil
}

// writeAll writes s in one call and treats a short write as failure.
func writeAll(w io.Writer, s string) error {
	n, err := io.WriteString(w, s)
	if err != nil {
		return err
	}
	if n != len(s) {
		return io.ErrShortWrite
	}
	return nil
}
