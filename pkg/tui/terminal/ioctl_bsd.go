// ABOUTME: termios ioctl request numbers for BSD-derived systems.
// ABOUTME: Mirrors the TIOCGETA/TIOCSETA pair used by golang.org/x/term.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)
