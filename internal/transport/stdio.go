package transport

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Stdio runs the engine against the calling terminal, which is how
// development against an emulator works. The terminal is put in raw
// mode so keystrokes arrive unbuffered and nothing echoes; Close
// restores the previous state.
type Stdio struct {
	in   *os.File
	out  *os.File
	prev *term.State
	open bool
}

// OpenStdio wires the transport to stdin and stdout. It refuses to
// start when stdin is not a terminal, since raw mode on a pipe is
// meaningless.
func OpenStdio() (*Stdio, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, ErrNotTerminal
	}
	prev, err := term.MakeRaw(int(fd))
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return &Stdio{in: os.Stdin, out: os.Stdout, prev: prev, open: true}, nil
}

func (s *Stdio) Write(p []byte) (int, error) {
	if !s.open {
		return 0, ErrClosed
	}
	return s.out.Write(p)
}

// ReadByte returns the next byte from stdin, waiting up to wait for
// one to arrive. A negative wait blocks until a byte arrives.
func (s *Stdio) ReadByte(wait time.Duration) (byte, bool, error) {
	if !s.open {
		return 0, false, ErrClosed
	}
	ready, err := waitReadable(int(s.in.Fd()), wait)
	if err != nil {
		return 0, false, fmt.Errorf("read stdin: %w", err)
	}
	if !ready {
		return 0, false, nil
	}
	var b [1]byte
	n, err := s.in.Read(b[:])
	if err != nil {
		return 0, false, fmt.Errorf("read stdin: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return b[0], true, nil
}

// Close restores the terminal state raw mode replaced.
func (s *Stdio) Close() error {
	if !s.open {
		return nil
	}
	s.open = false
	return term.Restore(int(s.in.Fd()), s.prev)
}
