//go:build linux

package transport

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// baudFlags maps rates onto the kernel's clock selectors.
var baudFlags = map[Baud]uint32{
	Baud300:    unix.B300,
	Baud1200:   unix.B1200,
	Baud2400:   unix.B2400,
	Baud4800:   unix.B4800,
	Baud9600:   unix.B9600,
	Baud19200:  unix.B19200,
	Baud38400:  unix.B38400,
	Baud57600:  unix.B57600,
	Baud115200: unix.B115200,
}

// Serial is a raw 8N1 serial line to a hardware terminal.
type Serial struct {
	path string
	fd   int
	open bool
}

// OpenSerial opens the serial device at path and configures it raw:
// eight data bits, no parity, one stop bit, modem lines ignored.
// Reads return whatever is available immediately; pacing is the
// caller's job through ReadByte waits.
func OpenSerial(path string, opts SerialOptions) (*Serial, error) {
	flag, ok := baudFlags[opts.Baud]
	if !ok {
		return nil, fmt.Errorf("%d: %w", opts.Baud, ErrUnknownBaud)
	}

	// O_NONBLOCK keeps open from waiting on carrier detect; CLOCAL
	// below makes the line usable without modem signals at all.
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var iflag uint32 = unix.IGNPAR
	if opts.FlowControl {
		iflag |= unix.IXON | unix.IXOFF
	}
	tio := unix.Termios{
		Iflag: iflag,
		Cflag: unix.CREAD | unix.CLOCAL | unix.CS8 | flag,
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &tio); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("configure %s: %w", path, err)
	}

	// Back to blocking I/O now that open cannot hang; readiness is
	// checked with select before every read.
	if err := unix.SetNonblock(fd, false); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("configure %s: %w", path, err)
	}

	return &Serial{path: path, fd: fd, open: true}, nil
}

// Path returns the device path the line was opened on.
func (s *Serial) Path() string { return s.path }

func (s *Serial) Write(p []byte) (int, error) {
	if !s.open {
		return 0, ErrClosed
	}
	total := 0
	for total < len(p) {
		n, err := unix.Write(s.fd, p[total:])
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return total, fmt.Errorf("write %s: %w", s.path, err)
		}
		total += n
	}
	return total, nil
}

// ReadByte returns the next byte from the line, waiting up to wait
// for one to arrive. A negative wait blocks until a byte arrives.
func (s *Serial) ReadByte(wait time.Duration) (byte, bool, error) {
	if !s.open {
		return 0, false, ErrClosed
	}
	ready, err := waitReadable(s.fd, wait)
	if err != nil {
		return 0, false, fmt.Errorf("read %s: %w", s.path, err)
	}
	if !ready {
		return 0, false, nil
	}
	var b [1]byte
	n, err := unix.Read(s.fd, b[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read %s: %w", s.path, err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return b[0], true, nil
}

func (s *Serial) Close() error {
	if !s.open {
		return nil
	}
	s.open = false
	if err := unix.Close(s.fd); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	return nil
}
