// ABOUTME: Decoder reads raw bytes and resolves them into Key events
// ABOUTME: Escape lookahead is a bounded state machine with a single resolution point

package key

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// maxLookahead bounds how many bytes may follow ESC in one sequence.
const maxLookahead = 3

// ReadError reports a read failure that is not a timeout. Callers treat
// it as fatal.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Decoder turns a byte stream into Key events. The reader is expected
// to return (0, nil) when its read timeout expires with no data.
type Decoder struct {
	r   io.Reader
	one [1]byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// decodeState tracks progress through an escape sequence. ReadKey
// itself is the start state.
type decodeState int

const (
	stateSawEscape  decodeState = iota // ESC read, nothing else yet
	stateSawBracket                    // ESC [
	stateSawDigit                      // ESC [ digit, waiting for the final byte
	stateSawOther                      // ESC followed by something other than [
	stateResolved
)

// ReadKey blocks until one key is available and returns it. Timeouts
// are retried; ctx is checked between retries. Every successful read of
// a byte yields exactly one Key.
func (d *Decoder) ReadKey(ctx context.Context) (Key, error) {
	b, err := d.readByte(ctx)
	if err != nil {
		return Key{}, err
	}
	if b != esc {
		return Char(b), nil
	}
	return d.decodeEscape(), nil
}

// decodeEscape consumes the continuation of an escape sequence. Any
// failed lookahead ends the walk, and the bytes collected so far are
// resolved once at the end.
func (d *Decoder) decodeEscape() Key {
	var buf [maxLookahead]byte
	seq := buf[:0]
	state := stateSawEscape

	for state != stateResolved {
		b, ok := d.lookahead()
		if !ok {
			return Escape()
		}
		seq = append(seq, b)

		switch state {
		case stateSawEscape:
			if b == '[' {
				state = stateSawBracket
			} else {
				state = stateSawOther
			}
		case stateSawBracket:
			if b >= '0' && b <= '9' {
				state = stateSawDigit
			} else {
				state = stateResolved
			}
		case stateSawDigit, stateSawOther:
			state = stateResolved
		}
	}

	return resolve(seq)
}

// readByte reads exactly one byte, retrying on timeouts.
func (d *Decoder) readByte(ctx context.Context) (byte, error) {
	for {
		n, err := d.r.Read(d.one[:])
		if n == 1 {
			return d.one[0], nil
		}
		if err != nil && !isTimeout(err) {
			return 0, &ReadError{Err: err}
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}
}

// lookahead makes a single read attempt for the next sequence byte.
func (d *Decoder) lookahead() (byte, bool) {
	if n, _ := d.r.Read(d.one[:]); n != 1 {
		return 0, false
	}
	return d.one[0], true
}

// isTimeout reports whether err means "no data yet" rather than failure.
func isTimeout(err error) bool {
	return errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EINTR)
}
