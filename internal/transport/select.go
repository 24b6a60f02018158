package transport

import (
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// waitReadable blocks until fd has a byte to read or the wait
// elapses. A negative wait blocks indefinitely. Interrupted selects
// are retried against the same deadline.
func waitReadable(fd int, wait time.Duration) (bool, error) {
	var deadline time.Time
	if wait >= 0 {
		deadline = time.Now().Add(wait)
	}
	for {
		var tv *unix.Timeval
		if wait >= 0 {
			rem := time.Until(deadline)
			if rem < 0 {
				rem = 0
			}
			t := unix.NsecToTimeval(rem.Nanoseconds())
			tv = &t
		}

		var rfds unix.FdSet
		rfds.Zero()
		rfds.Set(fd)
		n, err := unix.Select(fd+1, &rfds, nil, nil, tv)
		if err != nil {
			if err == syscall.EINTR {
				if wait >= 0 && !time.Now().Before(deadline) {
					return false, nil
				}
				continue
			}
			return false, err
		}
		return n > 0 && rfds.IsSet(fd), nil
	}
}
