// ABOUTME: Tests for VirtualTerminal verifying raw mode tracking, scripted input, and output capture.
// ABOUTME: Uses table-driven and parallel sub-tests for thorough coverage.

package terminal

import (
	"errors"
	"io"
	"sync"
	"testing"
)

// compile-time check: VirtualTerminal must satisfy Terminal.
var _ Terminal = (*VirtualTerminal)(nil)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{name: "standard 80x24", width: 80, height: 24, wantWidth: 80, wantHeight: 24},
		{name: "wide 200x50", width: 200, height: 50, wantWidth: 200, wantHeight: 50},
		{name: "zero dimensions", width: 0, height: 0, wantWidth: 0, wantHeight: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.width, tt.height)

			w, h, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestVirtualTerminal_RawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off initially")
	}

	if err := vt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	if !vt.IsRawMode() {
		t.Fatal("expected raw mode to be on after EnterRawMode")
	}
	if vt.EnterCount() != 1 {
		t.Errorf("EnterCount() = %d, want 1", vt.EnterCount())
	}

	if err := vt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off after ExitRawMode")
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestVirtualTerminal_ReadOneBytePerCall(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	vt.Feed("ab")

	p := make([]byte, 8)
	for _, want := range []byte("ab") {
		n, err := vt.Read(p)
		if err != nil || n != 1 {
			t.Fatalf("Read() = (%d, %v), want (1, nil)", n, err)
		}
		if p[0] != want {
			t.Errorf("Read() byte = %q, want %q", p[0], want)
		}
	}

	if _, err := vt.Read(p); !errors.Is(err, io.EOF) {
		t.Errorf("Read() on drained input = %v, want io.EOF", err)
	}
}

func TestVirtualTerminal_WritesRecordedPerCall(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if _, err := vt.Write([]byte("one")); err != nil {
		t.Fatal(err)
	}
	if _, err := vt.Write([]byte("two")); err != nil {
		t.Fatal(err)
	}

	if got := vt.Output(); got != "onetwo" {
		t.Errorf("Output() = %q, want %q", got, "onetwo")
	}
	writes := vt.Writes()
	if len(writes) != 2 || string(writes[0]) != "one" || string(writes[1]) != "two" {
		t.Errorf("Writes() = %q, want [one two]", writes)
	}
}

func TestVirtualTerminal_Reset(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if _, err := vt.Write([]byte("some data")); err != nil {
		t.Fatal(err)
	}
	vt.Reset()

	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
	if got := len(vt.Writes()); got != 0 {
		t.Errorf("len(Writes()) after Reset = %d, want 0", got)
	}
}

func TestVirtualTerminal_InjectedFailures(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	sizeErr := errors.New("no ioctl")
	vt.FailSize(sizeErr)
	if _, _, err := vt.Size(); !errors.Is(err, sizeErr) {
		t.Errorf("Size() error = %v, want %v", err, sizeErr)
	}

	enterErr := errors.New("tcsetattr failed")
	vt.FailRawMode(enterErr, nil)
	if err := vt.EnterRawMode(); !errors.Is(err, enterErr) {
		t.Errorf("EnterRawMode() error = %v, want %v", err, enterErr)
	}
	if vt.IsRawMode() {
		t.Error("raw mode should stay off after a failed EnterRawMode")
	}
}

func TestVirtualTerminal_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var wg sync.WaitGroup
	const goroutines = 10

	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			_, _ = vt.Write([]byte("x"))
		}()
	}

	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			_, _, _ = vt.Size()
		}()
	}

	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			_ = vt.EnterRawMode()
			_ = vt.ExitRawMode()
		}()
	}

	wg.Wait()

	if len(vt.Output()) != goroutines {
		t.Errorf("Output length = %d, want %d", len(vt.Output()), goroutines)
	}
}

func TestOpError(t *testing.T) {
	t.Parallel()

	cause := errors.New("inappropriate ioctl for device")
	err := error(&OpError{Op: "tcgetattr", Err: cause})

	if got := err.Error(); got != "tcgetattr: inappropriate ioctl for device" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("OpError should unwrap to its cause")
	}
}
