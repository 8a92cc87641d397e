// ABOUTME: Escape sequences emitted and consumed by the terminal core
// ABOUTME: Cursor movement, erase, visibility, and cursor-position report parsing

package ansi

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// Escape is the ESC control byte that introduces every sequence.
const Escape = 0x1b

// Fixed sequences written to the output stream.
const (
	ClearScreen       = "\x1b[2J"
	CursorHome        = "\x1b[H"
	HideCursor        = "\x1b[?25l"
	ShowCursor        = "\x1b[?25h"
	EraseLine         = "\x1b[K" // erase from cursor to end of line
	CursorBottomRight = "\x1b[999C\x1b[999B"
	QueryCursor       = "\x1b[6n"
)

// ErrBadCursorReport is returned when a cursor-position reply is malformed.
var ErrBadCursorReport = errors.New("malformed cursor position report")

// CursorTo returns the sequence placing the cursor at the 1-indexed
// (row, col) cell.
func CursorTo(row, col int) string {
	return "\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// AppendCursorTo appends the CursorTo sequence to dst without an
// intermediate string.
func AppendCursorTo(dst []byte, row, col int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// ParseCursorPosition parses a cursor-position report of the form
// ESC [ rows ; cols, with or without the trailing 'R'. Both values
// must be positive.
func ParseCursorPosition(reply []byte) (row, col int, err error) {
	reply = bytes.TrimSuffix(reply, []byte{'R'})
	if len(reply) < 2 || reply[0] != Escape || reply[1] != '[' {
		return 0, 0, fmt.Errorf("%w: missing ESC [ prefix in %q", ErrBadCursorReport, reply)
	}

	rowPart, colPart, ok := bytes.Cut(reply[2:], []byte{';'})
	if !ok {
		return 0, 0, fmt.Errorf("%w: no separator in %q", ErrBadCursorReport, reply)
	}

	row, err = parsePositive(rowPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row: %v", ErrBadCursorReport, err)
	}
	col, err = parsePositive(colPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column: %v", ErrBadCursorReport, err)
	}
	return row, col, nil
}

func parsePositive(b []byte) (int, error) {
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

// ParseCursorTo extracts the (row, col) pair from a CursorTo sequence.
func ParseCursorTo(seq []byte) (row, col int, err error) {
	if len(seq) == 0 || seq[len(seq)-1] != 'H' {
		return 0, 0, fmt.Errorf("%w: %q is not a cursor move", ErrBadCursorReport, seq)
	}
	return ParseCursorPosition(seq[:len(seq)-1])
}
