package terminal

import (
	"fmt"
	"time"

	"github.com/dshills/vtwire/internal/vt"
)

const (
	// statusWait bounds the answer to a status request.
	statusWait = time.Second

	// cursorAttempts and cursorWait pace a cursor query. The terminal
	// may be mid-refresh, so each attempt gets a wide berth.
	cursorAttempts = 12
	cursorWait     = 250 * time.Millisecond
)

// sendCommand writes one escape sequence and folds its effect into
// the mirrored state.
//
// Most sequences move the cursor or repaint under it, so the cursor
// cache is invalidated unless the sequence is on the list of writes
// known to leave the position alone: attribute changes, autowrap
// toggles, charset designation and slot switches, region mode
// toggles, the status and cursor queries, and save-cursor.
func (t *Terminal) sendCommand(seq string) error {
	buf := make([]byte, 0, len(seq)+1)
	buf = append(buf, vt.ESC)
	buf = append(buf, seq...)
	if _, err := t.tr.Write(buf); err != nil {
		return err
	}

	preserve := false
	switch seq {
	case vt.SetNormal:
		t.st.attrs = Attributes{}
		preserve = true
	case vt.SetBold:
		t.st.attrs.Bold = true
		preserve = true
	case vt.SetUnderline:
		t.st.attrs.Underline = true
		preserve = true
	case vt.SetReverse:
		t.st.attrs.Reverse = true
		preserve = true
	case vt.AutoWrapOn:
		t.st.autowrap = true
		preserve = true
	case vt.AutoWrapOff:
		t.st.autowrap = false
		preserve = true
	case vt.Set132Columns:
		t.st.columns = wideColumns
	case vt.Set80Columns:
		t.st.columns = defaultColumns
	case vt.SaveCursor:
		t.st.saved.attrs = t.st.attrs
		t.st.saved.boxMode = t.st.boxMode
		preserve = true
	case vt.RestoreCursor:
		// The terminal rewinds rendition and charset slot along with
		// the position, so the mirror rewinds too. The position
		// itself falls out of the cache below.
		t.st.attrs = t.st.saved.attrs
		t.st.boxMode = t.st.saved.boxMode
	case vt.DesignateASCII, vt.DesignateLineDrawing,
		vt.RegionOn, vt.RegionOff,
		vt.RequestStatus, vt.RequestCursor:
		preserve = true
	}
	if !preserve {
		t.st.invalidateCursor()
	}
	return nil
}

// restoreAttributes reaches want from a cleared rendition. Clearing
// is the only way to turn an attribute off, so the others are
// re-asserted afterward.
func (t *Terminal) restoreAttributes(want Attributes) error {
	if err := t.sendCommand(vt.SetNormal); err != nil {
		return err
	}
	if want.Bold {
		if err := t.sendCommand(vt.SetBold); err != nil {
			return err
		}
	}
	if want.Underline {
		if err := t.sendCommand(vt.SetUnderline); err != nil {
			return err
		}
	}
	if want.Reverse {
		if err := t.sendCommand(vt.SetReverse); err != nil {
			return err
		}
	}
	return nil
}

// FetchCursor returns the cursor position, served from the cache when
// it is valid and otherwise queried from the terminal. Stray frames
// that are not cursor reports are swallowed; an unanswered query is
// re-sent. Twelve silent attempts mean the terminal is gone.
func (t *Terminal) FetchCursor() (row, col int, err error) {
	if row, col, ok := t.st.cursor(); ok {
		return row, col, nil
	}

	if err := t.sendCommand(vt.RequestCursor); err != nil {
		return 0, 0, err
	}
	for i := 0; i < cursorAttempts; i++ {
		resp, err := t.RecvResponse(cursorWait)
		if err != nil {
			return 0, 0, err
		}
		if resp == "" {
			if err := t.sendCommand(vt.RequestCursor); err != nil {
				return 0, 0, err
			}
			continue
		}
		row, col, ok := resp.CursorReport()
		if !ok {
			t.logger.Debug("discarding stray frame during cursor query", "frame", string(resp))
			continue
		}
		t.st.setCursor(row, col)
		return row, col, nil
	}
	return 0, 0, fmt.Errorf("cursor position: %w", ErrUnresponsive)
}
