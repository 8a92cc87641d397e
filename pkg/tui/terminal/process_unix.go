// ABOUTME: Unix termios tuning and timeout-aware reads for ProcessTerminal.
// ABOUTME: Sets the raw flags plus VMIN=0/VTIME=1 that x/term's MakeRaw does not.

//go:build unix

package terminal

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// applyRawMode disables echo, canonical input, signal keys, flow
// control, CR translation and output post-processing on fd.
func applyRawMode(fd int) error {
	raw, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return &OpError{Op: "tcgetattr", Err: err}
	}

	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = readTimeoutDeciseconds

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, raw); err != nil {
		return &OpError{Op: "tcsetattr", Err: err}
	}
	return nil
}

// Read reads from the input with a raw read(2) so an expired VTIME
// surfaces as (0, nil) instead of the io.EOF os.File would report.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	n, err := unix.Read(int(t.in.Fd()), p)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading terminal: %w", err)
	}
	return n, nil
}
