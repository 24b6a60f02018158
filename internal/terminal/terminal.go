package terminal

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/dshills/vtwire/internal/vt"
)

// Terminal drives one VT100 over a Transport. It owns the byte stream
// in both directions: commands and text go out through it, and all
// traffic coming back is demultiplexed into command responses and
// keyboard input.
//
// A Terminal is not safe for concurrent use. Every method assumes it
// is the only reader and writer on the transport.
type Terminal struct {
	tr     Transport
	logger *slog.Logger
	now    func() time.Time

	st state

	// leftover holds stream bytes consumed past a frame boundary,
	// replayed before the next transport read.
	leftover []byte

	// pending holds classified keyboard input awaiting RecvInput.
	pending []vt.Key

	// responses holds frames read during input pumping, handed to the
	// next RecvResponse before any new read.
	responses []vt.Response

	lastPolled   time.Time
	pollFailures int
}

// New connects to the terminal behind tr, verifies it responds, and
// resets it to the engine's known state. A nil logger discards debug
// output.
func New(tr Transport, logger *slog.Logger) (*Terminal, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	t := &Terminal{
		tr:     tr,
		logger: logger,
		now:    time.Now,
		st:     newState(),
	}
	t.lastPolled = t.now()

	if err := t.CheckOk(); err != nil {
		return nil, err
	}
	if err := t.Reset(); err != nil {
		return nil, err
	}
	return t, nil
}

// Close releases the underlying transport.
func (t *Terminal) Close() error {
	return t.tr.Close()
}

// Reset restores the terminal to the state the engine assumes at
// startup: 80 columns, full-screen scrolling, cleared screen, cursor
// home, normal attributes, default charset designations, autowrap off
// and the US-ASCII slot selected.
func (t *Terminal) Reset() error {
	seqs := []string{
		vt.Set80Columns,
		vt.ScrollRegionSeq(1, screenRows),
		vt.RegionOff,
		vt.ClearScreen,
		vt.HomeCursor,
		vt.SetNormal,
		vt.DesignateASCII,
		vt.DesignateLineDrawing,
		vt.AutoWrapOff,
	}
	for _, seq := range seqs {
		if err := t.sendCommand(seq); err != nil {
			return err
		}
	}
	if _, err := t.tr.Write([]byte{vt.SI}); err != nil {
		return err
	}
	t.st.boxMode = false
	t.st.clearRegion()
	return nil
}

// IsOk asks the terminal for a status report and reports whether it
// answered ready within one second.
func (t *Terminal) IsOk() (bool, error) {
	if err := t.sendCommand(vt.RequestStatus); err != nil {
		return false, err
	}
	resp, err := t.RecvResponse(statusWait)
	if err != nil {
		return false, err
	}
	return resp.OK(), nil
}

// CheckOk is IsOk escalated to an error when the terminal is not
// ready.
func (t *Terminal) CheckOk() error {
	ok, err := t.IsOk()
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnresponsive
	}
	return nil
}

// Set132Columns switches to the 132-column display and verifies the
// terminal survived the mode change.
func (t *Terminal) Set132Columns() error {
	if err := t.sendCommand(vt.Set132Columns); err != nil {
		return err
	}
	return t.CheckOk()
}

// Set80Columns switches to the 80-column display and verifies the
// terminal survived the mode change.
func (t *Terminal) Set80Columns() error {
	if err := t.sendCommand(vt.Set80Columns); err != nil {
		return err
	}
	return t.CheckOk()
}

// MoveCursor addresses the cursor to a one-based row and column. A
// position outside the current screen writes nothing.
func (t *Terminal) MoveCursor(row, col int) error {
	if row < 1 || row > t.st.rows || col < 1 || col > t.st.columns {
		t.logger.Debug("ignoring out-of-range cursor move",
			"row", row, "col", col, "rows", t.st.rows, "columns", t.st.columns)
		return nil
	}
	if err := t.sendCommand(vt.MoveCursorSeq(row, col)); err != nil {
		return err
	}
	t.st.setCursor(row, col)
	return nil
}

// Home moves the cursor to the origin.
func (t *Terminal) Home() error {
	return t.sendCommand(vt.HomeCursor)
}

// CursorUp moves the cursor up one row, scrolling when it sits at the
// top of the scroll region.
func (t *Terminal) CursorUp() error {
	return t.sendCommand(vt.ReverseIndex)
}

// CursorDown moves the cursor down one row, scrolling when it sits at
// the bottom of the scroll region.
func (t *Terminal) CursorDown() error {
	return t.sendCommand(vt.Index)
}

// ClearScreen erases the whole screen. The cursor does not move.
func (t *Terminal) ClearScreen() error {
	return t.sendCommand(vt.ClearScreen)
}

// ClearLine erases the cursor's row.
func (t *Terminal) ClearLine() error {
	return t.sendCommand(vt.ClearLine)
}

// ClearToLineEnd erases from the cursor to the end of its row.
func (t *Terminal) ClearToLineEnd() error {
	return t.sendCommand(vt.ClearToLineEnd)
}

// ClearToScreenStart erases from the origin through the cursor.
func (t *Terminal) ClearToScreenStart() error {
	return t.sendCommand(vt.ClearToScreenStart)
}

// SaveCursor snapshots the cursor position, attributes and charset
// slot on the terminal. The engine snapshots its own attribute mirror
// alongside.
func (t *Terminal) SaveCursor() error {
	return t.sendCommand(vt.SaveCursor)
}

// RestoreCursor returns to the last saved snapshot.
func (t *Terminal) RestoreCursor() error {
	return t.sendCommand(vt.RestoreCursor)
}

// SetAutoWrap turns autowrap on or off. Setting the current value
// writes nothing.
func (t *Terminal) SetAutoWrap(on bool) error {
	if t.st.autowrap == on {
		return nil
	}
	if on {
		return t.sendCommand(vt.AutoWrapOn)
	}
	return t.sendCommand(vt.AutoWrapOff)
}

// ClearAutoWrap turns autowrap off.
func (t *Terminal) ClearAutoWrap() error {
	return t.SetAutoWrap(false)
}

// SetBold turns the bold attribute on or off. Setting the current
// value writes nothing.
func (t *Terminal) SetBold(on bool) error {
	if t.st.attrs.Bold == on {
		return nil
	}
	if on {
		return t.sendCommand(vt.SetBold)
	}
	want := t.st.attrs
	want.Bold = false
	return t.restoreAttributes(want)
}

// SetUnderline turns the underline attribute on or off. Setting the
// current value writes nothing.
func (t *Terminal) SetUnderline(on bool) error {
	if t.st.attrs.Underline == on {
		return nil
	}
	if on {
		return t.sendCommand(vt.SetUnderline)
	}
	want := t.st.attrs
	want.Underline = false
	return t.restoreAttributes(want)
}

// SetReverse turns reverse video on or off. Setting the current value
// writes nothing.
func (t *Terminal) SetReverse(on bool) error {
	if t.st.attrs.Reverse == on {
		return nil
	}
	if on {
		return t.sendCommand(vt.SetReverse)
	}
	want := t.st.attrs
	want.Reverse = false
	return t.restoreAttributes(want)
}

// ClearAttributes returns the rendition to normal. Writes nothing when
// no attribute is set.
func (t *Terminal) ClearAttributes() error {
	if t.st.attrs == (Attributes{}) {
		return nil
	}
	return t.sendCommand(vt.SetNormal)
}

// SetScrollRegion confines scrolling to the one-based, inclusive rows
// top through bottom and turns on region addressing. A region that
// does not fit the screen writes nothing.
func (t *Terminal) SetScrollRegion(top, bottom int) error {
	if top < 1 || bottom <= top || bottom > t.st.rows {
		t.logger.Debug("ignoring out-of-range scroll region",
			"top", top, "bottom", bottom, "rows", t.st.rows)
		return nil
	}
	if err := t.sendCommand(vt.ScrollRegionSeq(top, bottom)); err != nil {
		return err
	}
	if err := t.sendCommand(vt.RegionOn); err != nil {
		return err
	}
	t.st.setRegion(top, bottom)
	return nil
}

// ClearScrollRegion returns scrolling to the full screen.
func (t *Terminal) ClearScrollRegion() error {
	if err := t.sendCommand(vt.RegionOff); err != nil {
		return err
	}
	t.st.clearRegion()
	return nil
}

// Columns returns the current display width.
func (t *Terminal) Columns() int { return t.st.columns }

// Rows returns the display height.
func (t *Terminal) Rows() int { return t.st.rows }

// Cursor returns the cached cursor position without touching the
// terminal. ok is false when the cache is invalid; FetchCursor then
// queries the hardware.
func (t *Terminal) Cursor() (row, col int, ok bool) {
	return t.st.cursor()
}

// Attributes returns the mirrored rendition state.
func (t *Terminal) Attributes() Attributes { return t.st.attrs }

// AutoWrap reports whether autowrap is on.
func (t *Terminal) AutoWrap() bool { return t.st.autowrap }

// ScrollRegion returns the active scroll region. ok is false when the
// full screen scrolls.
func (t *Terminal) ScrollRegion() (top, bottom int, ok bool) {
	return t.st.region()
}
