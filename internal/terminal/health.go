package terminal

import (
	"time"

	"github.com/dshills/vtwire/internal/vt"
)

const (
	// inputWait is the pump budget per RecvInput call, enough to
	// drain whatever already arrived without stalling the caller.
	inputWait = 10 * time.Millisecond

	// checkInterval and maxFailures pace the liveness poll. A quiet
	// stream is polled about once a second; polls that keep failing
	// escalate to a hard check.
	checkInterval = time.Second
	maxFailures   = 3
)

// RecvInput returns the next keystroke. When none is pending the
// stream is pumped briefly, so input interleaved with command
// responses keeps flowing; responses encountered along the way queue
// for RecvResponse. ok is false when no input is available.
//
// A terminal that has been silent past the check interval is polled
// for liveness, and one that stays silent through repeated polls
// surfaces as ErrUnresponsive.
func (t *Terminal) RecvInput() (key vt.Key, ok bool, err error) {
	if len(t.pending) == 0 {
		resp, err := t.recvResponse(inputWait)
		if err != nil {
			return 0, false, err
		}
		if resp != "" {
			t.responses = append(t.responses, resp)
		}
	}

	if err := t.checkLiveness(); err != nil {
		return 0, false, err
	}

	if len(t.pending) > 0 {
		key := t.pending[0]
		t.pending = t.pending[1:]
		return key, true, nil
	}
	return 0, false, nil
}

// PeekInput returns the next keystroke without consuming it and
// without touching the stream.
func (t *Terminal) PeekInput() (vt.Key, bool) {
	if len(t.pending) == 0 {
		return 0, false
	}
	return t.pending[0], true
}

// checkLiveness soft-polls a quiet terminal. Failed polls accumulate
// until the budget runs out, then the poll hardens into CheckOk and
// its error ends the session.
func (t *Terminal) checkLiveness() error {
	now := t.now()
	if now.Sub(t.lastPolled) <= checkInterval {
		return nil
	}
	t.lastPolled = now

	ok, err := t.IsOk()
	if err != nil {
		return err
	}
	if ok {
		t.pollFailures = 0
		return nil
	}
	t.pollFailures++
	t.logger.Warn("terminal missed status poll", "failures", t.pollFailures)
	if t.pollFailures > maxFailures {
		return t.CheckOk()
	}
	return nil
}
