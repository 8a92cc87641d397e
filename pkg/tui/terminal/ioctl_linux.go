// ABOUTME: termios ioctl request numbers for Linux-like systems.
// ABOUTME: Mirrors the TCGETS/TCSETS pair used by golang.org/x/term.

//go:build aix || linux || solaris || zos

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)
