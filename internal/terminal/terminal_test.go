package terminal

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"
)

// fakeClock drives the engine's notion of time so waits cost nothing
// in real time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// fakeTransport scripts the byte stream a terminal would produce and
// records everything written to it. Reads serve scripted bytes
// instantly; an empty read advances the fake clock by the wait, as
// the real transport would spend it blocked.
type fakeTransport struct {
	clock   *fakeClock
	reads   []byte
	pos     int
	wrote   bytes.Buffer
	closed  bool
	onWrite func(p []byte)
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{clock: &fakeClock{t: time.Unix(1000, 0)}}
}

func (f *fakeTransport) queue(p ...byte) {
	f.reads = append(f.reads, p...)
}

func (f *fakeTransport) queueString(s string) {
	f.reads = append(f.reads, s...)
}

func (f *fakeTransport) written() string {
	return f.wrote.String()
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	f.wrote.Write(p)
	if f.onWrite != nil {
		f.onWrite(p)
	}
	return len(p), nil
}

func (f *fakeTransport) ReadByte(wait time.Duration) (byte, bool, error) {
	if f.pos < len(f.reads) {
		b := f.reads[f.pos]
		f.pos++
		return b, true, nil
	}
	if wait > 0 {
		f.clock.advance(wait)
	}
	return 0, false, nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

// newTestTerminal builds a Terminal on a fake transport without the
// connect-time handshake.
func newTestTerminal(tr *fakeTransport) *Terminal {
	t := &Terminal{
		tr:     tr,
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		now:    tr.clock.Now,
		st:     newState(),
	}
	t.lastPolled = tr.clock.Now()
	return t
}

// respondOK answers every status request with the ready report.
func respondOK(tr *fakeTransport) {
	tr.onWrite = func(p []byte) {
		if bytes.Contains(p, []byte("\x1b[5n")) {
			tr.queueString("\x1b[0n")
		}
	}
}

func TestNewChecksAndResets(t *testing.T) {
	tr := newFakeTransport()
	respondOK(tr)

	term, err := New(tr, nil)
	if err != nil {
		t.Fatalf("expected connect to succeed, got %v", err)
	}

	want := "\x1b[5n" + // connect-time status check
		"\x1b[?3l\x1b[1;24r\x1b[?6l\x1b[2J\x1b[H\x1b[0m\x1b(B\x1b)0\x1b[?7l\x0f"
	if got := tr.written(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if term.Columns() != 80 || term.Rows() != 24 {
		t.Errorf("expected 80x24 after reset, got %dx%d", term.Columns(), term.Rows())
	}
	if _, _, ok := term.Cursor(); ok {
		t.Error("expected unknown cursor after reset")
	}
	if term.AutoWrap() {
		t.Error("expected autowrap off after reset")
	}
	if term.Attributes() != (Attributes{}) {
		t.Error("expected normal attributes after reset")
	}
}

func TestNewUnresponsive(t *testing.T) {
	tr := newFakeTransport()

	_, err := New(tr, nil)
	if !errors.Is(err, ErrUnresponsive) {
		t.Errorf("expected ErrUnresponsive, got %v", err)
	}
}

func TestClose(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)

	if err := term.Close(); err != nil {
		t.Fatalf("expected close to succeed, got %v", err)
	}
	if !tr.closed {
		t.Error("expected transport to be closed")
	}
}

func TestIsOk(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)
	tr.queueString("\x1b[0n")

	ok, err := term.IsOk()
	if err != nil {
		t.Fatalf("expected status check to succeed, got %v", err)
	}
	if !ok {
		t.Error("expected ready terminal")
	}
	if got := tr.written(); got != "\x1b[5n" {
		t.Errorf("expected status request, got %q", got)
	}
}

func TestIsOkSilent(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)

	ok, err := term.IsOk()
	if err != nil {
		t.Fatalf("expected status check to succeed, got %v", err)
	}
	if ok {
		t.Error("expected silent terminal not to be ready")
	}
}

func TestCheckOk(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)

	if err := term.CheckOk(); !errors.Is(err, ErrUnresponsive) {
		t.Errorf("expected ErrUnresponsive, got %v", err)
	}

	tr.queueString("\x1b[0n")
	if err := term.CheckOk(); err != nil {
		t.Errorf("expected ready terminal, got %v", err)
	}
}

func TestColumnSwitch(t *testing.T) {
	tr := newFakeTransport()
	respondOK(tr)
	term := newTestTerminal(tr)
	term.st.setCursor(3, 3)

	if err := term.Set132Columns(); err != nil {
		t.Fatalf("expected column switch to succeed, got %v", err)
	}
	if term.Columns() != 132 {
		t.Errorf("expected 132 columns, got %d", term.Columns())
	}
	if _, _, ok := term.Cursor(); ok {
		t.Error("expected cursor cache invalidated by column switch")
	}

	if err := term.Set80Columns(); err != nil {
		t.Fatalf("expected column switch to succeed, got %v", err)
	}
	if term.Columns() != 80 {
		t.Errorf("expected 80 columns, got %d", term.Columns())
	}
}

func TestMoveCursor(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)

	if err := term.MoveCursor(5, 10); err != nil {
		t.Fatalf("expected move to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b[5;10H" {
		t.Errorf("expected cursor address, got %q", got)
	}
	row, col, ok := term.Cursor()
	if !ok || row != 5 || col != 10 {
		t.Errorf("expected cached cursor (5,10), got (%d,%d) ok=%v", row, col, ok)
	}
}

func TestMoveCursorOutOfRange(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)
	term.st.setCursor(5, 10)

	for _, pos := range [][2]int{{0, 1}, {1, 0}, {25, 1}, {1, 81}, {-3, 7}} {
		if err := term.MoveCursor(pos[0], pos[1]); err != nil {
			t.Fatalf("expected silent rejection of (%d,%d), got %v", pos[0], pos[1], err)
		}
	}
	if got := tr.written(); got != "" {
		t.Errorf("expected no bytes for out-of-range moves, got %q", got)
	}
	if row, col, ok := term.Cursor(); !ok || row != 5 || col != 10 {
		t.Errorf("expected cache untouched at (5,10), got (%d,%d) ok=%v", row, col, ok)
	}
}

func TestMoveCursorRangeFollowsColumns(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)
	term.st.columns = 132

	if err := term.MoveCursor(1, 100); err != nil {
		t.Fatalf("expected move to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b[1;100H" {
		t.Errorf("expected wide move accepted, got %q", got)
	}
}

func TestAutoWrapIdempotent(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)

	if err := term.SetAutoWrap(false); err != nil {
		t.Fatalf("expected no-op to succeed, got %v", err)
	}
	if got := tr.written(); got != "" {
		t.Errorf("expected no bytes re-clearing autowrap, got %q", got)
	}

	if err := term.SetAutoWrap(true); err != nil {
		t.Fatalf("expected autowrap on to succeed, got %v", err)
	}
	if err := term.SetAutoWrap(true); err != nil {
		t.Fatalf("expected no-op to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b[?7h" {
		t.Errorf("expected a single autowrap toggle, got %q", got)
	}
	if !term.AutoWrap() {
		t.Error("expected autowrap on")
	}

	if err := term.ClearAutoWrap(); err != nil {
		t.Fatalf("expected autowrap off to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b[?7h\x1b[?7l" {
		t.Errorf("expected one toggle each way, got %q", got)
	}
}

func TestAttributeSetters(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)

	if err := term.SetBold(true); err != nil {
		t.Fatalf("expected bold on to succeed, got %v", err)
	}
	if err := term.SetBold(true); err != nil {
		t.Fatalf("expected no-op to succeed, got %v", err)
	}
	if err := term.SetReverse(true); err != nil {
		t.Fatalf("expected reverse on to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b[1m\x1b[7m" {
		t.Errorf("expected one sequence per attribute, got %q", got)
	}
	if a := term.Attributes(); !a.Bold || !a.Reverse || a.Underline {
		t.Errorf("expected bold+reverse, got %+v", a)
	}
}

func TestAttributeOffRebuildsOthers(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)
	term.st.attrs = Attributes{Bold: true, Underline: true, Reverse: true}

	// Bold can only come off via the clearing sequence, so the other
	// two are re-asserted behind it.
	if err := term.SetBold(false); err != nil {
		t.Fatalf("expected bold off to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b[0m\x1b[4m\x1b[7m" {
		t.Errorf("expected clear and rebuild, got %q", got)
	}
	if a := term.Attributes(); a.Bold || !a.Underline || !a.Reverse {
		t.Errorf("expected underline+reverse, got %+v", a)
	}
}

func TestClearAttributes(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)

	if err := term.ClearAttributes(); err != nil {
		t.Fatalf("expected no-op to succeed, got %v", err)
	}
	if got := tr.written(); got != "" {
		t.Errorf("expected no bytes clearing normal attributes, got %q", got)
	}

	term.st.attrs = Attributes{Bold: true}
	if err := term.ClearAttributes(); err != nil {
		t.Fatalf("expected clear to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b[0m" {
		t.Errorf("expected clearing sequence, got %q", got)
	}
	if term.Attributes() != (Attributes{}) {
		t.Error("expected normal attributes")
	}
}

func TestSaveRestoreAttributes(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)
	term.st.setCursor(7, 7)
	term.st.attrs = Attributes{Bold: true}
	term.st.boxMode = true

	if err := term.SaveCursor(); err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}
	if _, _, ok := term.Cursor(); !ok {
		t.Error("expected save-cursor to preserve the cursor cache")
	}

	term.st.attrs = Attributes{Reverse: true}
	term.st.boxMode = false

	if err := term.RestoreCursor(); err != nil {
		t.Fatalf("expected restore to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b7\x1b8" {
		t.Errorf("expected save and restore sequences, got %q", got)
	}
	if a := term.Attributes(); !a.Bold || a.Reverse {
		t.Errorf("expected snapshot attributes restored, got %+v", a)
	}
	if !term.st.boxMode {
		t.Error("expected snapshot charset slot restored")
	}
	if _, _, ok := term.Cursor(); ok {
		t.Error("expected restore-cursor to invalidate the cursor cache")
	}
}

func TestScrollRegion(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)
	term.st.setCursor(3, 3)

	if err := term.SetScrollRegion(2, 23); err != nil {
		t.Fatalf("expected region to succeed, got %v", err)
	}
	if got := tr.written(); got != "\x1b[2;23r\x1b[?6h" {
		t.Errorf("expected region coordinates then origin mode, got %q", got)
	}
	top, bottom, ok := term.ScrollRegion()
	if !ok || top != 2 || bottom != 23 {
		t.Errorf("expected region (2,23), got (%d,%d) ok=%v", top, bottom, ok)
	}
	if _, _, ok := term.Cursor(); ok {
		t.Error("expected region coordinates to invalidate the cursor cache")
	}

	if err := term.ClearScrollRegion(); err != nil {
		t.Fatalf("expected clear to succeed, got %v", err)
	}
	if _, _, ok := term.ScrollRegion(); ok {
		t.Error("expected no region after clear")
	}
}

func TestScrollRegionOutOfRange(t *testing.T) {
	tr := newFakeTransport()
	term := newTestTerminal(tr)

	for _, reg := range [][2]int{{0, 10}, {5, 5}, {10, 5}, {1, 25}} {
		if err := term.SetScrollRegion(reg[0], reg[1]); err != nil {
			t.Fatalf("expected silent rejection of (%d,%d), got %v", reg[0], reg[1], err)
		}
	}
	if got := tr.written(); got != "" {
		t.Errorf("expected no bytes for bad regions, got %q", got)
	}
	if _, _, ok := term.ScrollRegion(); ok {
		t.Error("expected no region set")
	}
}

func TestCursorCachePolicy(t *testing.T) {
	tests := []struct {
		name     string
		op       func(*Terminal, *fakeTransport) error
		preserve bool
	}{
		{"set bold", func(tm *Terminal, _ *fakeTransport) error { return tm.SetBold(true) }, true},
		{"set underline", func(tm *Terminal, _ *fakeTransport) error { return tm.SetUnderline(true) }, true},
		{"set reverse", func(tm *Terminal, _ *fakeTransport) error { return tm.SetReverse(true) }, true},
		{"autowrap on", func(tm *Terminal, _ *fakeTransport) error { return tm.SetAutoWrap(true) }, true},
		{"save cursor", func(tm *Terminal, _ *fakeTransport) error { return tm.SaveCursor() }, true},
		{"clear scroll region", func(tm *Terminal, _ *fakeTransport) error { return tm.ClearScrollRegion() }, true},
		{"status query", func(tm *Terminal, tr *fakeTransport) error {
			tr.queueString("\x1b[0n")
			_, err := tm.IsOk()
			return err
		}, true},
		{"restore cursor", func(tm *Terminal, _ *fakeTransport) error { return tm.RestoreCursor() }, false},
		{"home", func(tm *Terminal, _ *fakeTransport) error { return tm.Home() }, false},
		{"cursor up", func(tm *Terminal, _ *fakeTransport) error { return tm.CursorUp() }, false},
		{"cursor down", func(tm *Terminal, _ *fakeTransport) error { return tm.CursorDown() }, false},
		{"clear screen", func(tm *Terminal, _ *fakeTransport) error { return tm.ClearScreen() }, false},
		{"clear line", func(tm *Terminal, _ *fakeTransport) error { return tm.ClearLine() }, false},
		{"clear to line end", func(tm *Terminal, _ *fakeTransport) error { return tm.ClearToLineEnd() }, false},
		{"clear to screen start", func(tm *Terminal, _ *fakeTransport) error { return tm.ClearToScreenStart() }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newFakeTransport()
			term := newTestTerminal(tr)
			term.st.setCursor(4, 4)

			if err := tt.op(term, tr); err != nil {
				t.Fatalf("expected operation to succeed, got %v", err)
			}
			_, _, ok := term.Cursor()
			if ok != tt.preserve {
				t.Errorf("expected cursor cache preserved=%v, got %v", tt.preserve, ok)
			}
		})
	}
}
