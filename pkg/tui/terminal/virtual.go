// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Replays scripted input, records each write, and injects mode and size failures.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It replays queued input, records written output per Write call, and
// tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	writes     [][]byte
	input      []byte
	width      int
	height     int
	sizeErr    error
	enterErr   error
	exitErr    error
	rawMode    bool
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry, or fails with the injected error.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return v.enterErr
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit, or fails with the injected error.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitCount++
	if v.exitErr != nil {
		return v.exitErr
	}
	v.rawMode = false
	return nil
}

// Size returns the configured terminal dimensions or the injected error.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Read hands out queued input one byte per call. Once the queue is
// drained it reports io.EOF, which the decoder treats as a closed input.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(p) == 0 {
		return 0, nil
	}
	if len(v.input) == 0 {
		return 0, io.EOF
	}
	p[0] = v.input[0]
	v.input = v.input[1:]
	return 1, nil
}

// Write appends data to the internal buffer and records the call.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writes = append(v.writes, bytes.Clone(p))
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues bytes to be returned by Read.
func (v *VirtualTerminal) Feed(data string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, data...)
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Writes returns a copy of each Write call's payload, in order.
func (v *VirtualTerminal) Writes() [][]byte {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([][]byte, len(v.writes))
	copy(out, v.writes)
	return out
}

// Reset clears the output buffer and the write log.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writes = nil
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

// FailSize makes Size return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// FailRawMode makes EnterRawMode and ExitRawMode return the given errors.
// A nil error leaves the corresponding call succeeding.
func (v *VirtualTerminal) FailRawMode(enterErr, exitErr error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = enterErr
	v.exitErr = exitErr
}
