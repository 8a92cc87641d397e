// ABOUTME: Pooled byte buffer holding exactly one frame of terminal output; recycled via sync.Pool
// ABOUTME: Appends past the frame cap are dropped and counted; Flush emits the frame in one write

package tui

import (
	"io"
	"sync"
)

// MaxFrameBytes caps a single frame. An append that would grow the
// frame past it is skipped rather than aborting the frame.
const MaxFrameBytes = 4 << 20

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{
			b:     make([]byte, 0, 4096),
			limit: MaxFrameBytes,
		}
	},
}

// AcquireBuffer gets an empty RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns a RenderBuffer to the pool.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer accumulates the escape sequences and text of one frame.
// The zero value is usable and uncapped.
type RenderBuffer struct {
	b       []byte
	limit   int
	dropped int
}

// NewRenderBuffer returns a buffer that drops appends beyond limit
// bytes. A limit of zero or less means no cap.
func NewRenderBuffer(limit int) *RenderBuffer {
	return &RenderBuffer{limit: limit}
}

// Append adds p to the end of the frame.
func (b *RenderBuffer) Append(p []byte) {
	if !b.fits(len(p)) {
		b.dropped += len(p)
		return
	}
	b.b = append(b.b, p...)
}

// AppendString adds s to the end of the frame.
func (b *RenderBuffer) AppendString(s string) {
	if !b.fits(len(s)) {
		b.dropped += len(s)
		return
	}
	b.b = append(b.b, s...)
}

// AppendByte adds a single byte to the end of the frame.
func (b *RenderBuffer) AppendByte(c byte) {
	if !b.fits(1) {
		b.dropped++
		return
	}
	b.b = append(b.b, c)
}

// AppendFunc lets fn append directly to the underlying slice, e.g. with
// strconv.AppendInt. The result is discarded if it exceeds the cap.
func (b *RenderBuffer) AppendFunc(fn func(dst []byte) []byte) {
	before := len(b.b)
	out := fn(b.b)
	if grown := len(out) - before; !b.fits(grown) {
		b.dropped += grown
		b.b = b.b[:before]
		return
	}
	b.b = out
}

func (b *RenderBuffer) fits(n int) bool {
	return b.limit <= 0 || len(b.b)+n <= b.limit
}

// Bytes returns the accumulated frame. The slice is only valid until
// the next mutation.
func (b *RenderBuffer) Bytes() []byte {
	return b.b
}

// Len returns the number of bytes in the frame.
func (b *RenderBuffer) Len() int {
	return len(b.b)
}

// Dropped returns how many bytes were skipped because of the cap.
func (b *RenderBuffer) Dropped() int {
	return b.dropped
}

// Reset clears the buffer for reuse without deallocating.
func (b *RenderBuffer) Reset() {
	b.b = b.b[:0]
	b.dropped = 0
}

// Flush writes the whole frame to w in a single Write call and resets
// the buffer. A short write is reported as io.ErrShortWrite.
func (b *RenderBuffer) Flush(w io.Writer) error {
	defer b.Reset()

	if len(b.b) == 0 {
		return nil
	}
	n, err := w.Write(b.b)
	if err != nil {
		return err
	}
	if n != len(b.b) {
		return io.ErrShortWrite
	}
	return nil
}
