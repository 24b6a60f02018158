package terminal

import (
	"time"

	"github.com/dshills/vtwire/internal/vt"
)

// readQuantum is the wait for one transport read. Short enough to
// keep deadline checks responsive, long enough not to spin.
const readQuantum = 10 * time.Millisecond

// RecvResponse returns the next escape frame from the terminal,
// stripped of its introducer, waiting up to wait for one to arrive.
// The empty response means the wait elapsed without a frame. Frames
// queued during input pumping are returned first; arrow-key frames
// never appear here, they are reclassified as keyboard input.
func (t *Terminal) RecvResponse(wait time.Duration) (vt.Response, error) {
	if len(t.responses) > 0 {
		resp := t.responses[0]
		t.responses = t.responses[1:]
		return resp, nil
	}
	return t.recvResponse(wait)
}

// recvResponse reads frames until one is not an arrow key. Arrows go
// to the pending input queue and the read continues against the same
// deadline, so a burst of arrow keys cannot stretch the wait. Any
// traffic at all counts as liveness.
func (t *Terminal) recvResponse(wait time.Duration) (vt.Response, error) {
	bounded := wait >= 0
	var deadline time.Time
	if bounded {
		deadline = t.now().Add(wait)
	}
	for {
		before := len(t.pending)
		resp, err := t.readFrame(deadline, bounded)
		if err != nil {
			return "", err
		}
		if resp != "" || len(t.pending) > before {
			t.lastPolled = t.now()
		}
		if key, ok := resp.Arrow(); ok {
			t.pending = append(t.pending, key)
			continue
		}
		return resp, nil
	}
}

// readFrame accumulates stream bytes into at most one escape frame.
//
// Bytes are pulled from the leftover buffer first, then from the
// transport in quantum-sized waits. Silence closes the accumulator:
// plain bytes ahead of any introducer flush to the pending input
// queue, a complete frame is returned with its overrun pushed back to
// leftover, and a frame still missing its terminator is requeued
// whole so the next read can finish it. A lone ESC keypress therefore
// sits in leftover until the keyboard sends something after it.
func (t *Terminal) readFrame(deadline time.Time, bounded bool) (vt.Response, error) {
	var accum []byte
	got := false
	for {
		wait := readQuantum
		if bounded {
			if rem := deadline.Sub(t.now()); rem < wait {
				wait = max(rem, 0)
			}
		}
		b, ok, err := t.nextByte(wait)
		if err != nil {
			t.leftover = append(t.leftover, accum...)
			return "", err
		}
		if ok {
			got = true
			accum = append(accum, b)
			continue
		}

		expired := bounded && !t.now().Before(deadline)
		if !got {
			if expired {
				return "", nil
			}
			continue
		}

		// Silence after traffic: the stream is at a token boundary.
		for len(accum) > 0 && accum[0] != vt.ESC {
			t.pending = append(t.pending, vt.Key(accum[0]))
			accum = accum[1:]
		}
		if len(accum) == 0 {
			if bounded {
				return "", nil
			}
			got = false
			continue
		}

		body := accum[1:]
		for i := 0; i < len(body); i++ {
			if vt.IsContinuation(body[i]) {
				continue
			}
			// Terminator found. Anything past it belongs to the
			// next read.
			t.leftover = append(t.leftover, body[i+1:]...)
			return vt.Response(body[:i+1]), nil
		}

		// Introducer with no terminator yet: a lone ESC keypress, or
		// a response arriving slower than our reads. Requeue it and
		// report nothing rather than wait here for the rest.
		t.leftover = append(t.leftover, accum...)
		if expired {
			return "", nil
		}
		accum = nil
		got = false
	}
}

// nextByte replays leftover stream bytes before reading the
// transport.
func (t *Terminal) nextByte(wait time.Duration) (byte, bool, error) {
	if len(t.leftover) > 0 {
		b := t.leftover[0]
		t.leftover = t.leftover[1:]
		return b, true, nil
	}
	return t.tr.ReadByte(wait)
}
