package terminal

// Screen geometry. Rows are fixed; columns switch between the two
// hardware widths.
const (
	defaultColumns = 80
	wideColumns    = 132
	screenRows     = 24
)

// Attributes is the graphic rendition state the engine mirrors so it
// can suppress redundant writes and rebuild the rendition after a
// clearing sequence.
type Attributes struct {
	Bold      bool
	Underline bool
	Reverse   bool
}

// state is the engine's local model of the terminal. Nothing here is
// read back from the hardware except the cursor, and that only when
// the cache is invalid.
type state struct {
	columns  int
	rows     int
	autowrap bool

	attrs Attributes

	// boxMode is true while the line-drawing slot is selected.
	boxMode bool

	// saved mirrors what the terminal snapshots on a save-cursor.
	saved struct {
		attrs   Attributes
		boxMode bool
	}

	// Cursor cache. Row and col are one-based and meaningless unless
	// cursorKnown is set.
	cursorKnown bool
	cursorRow   int
	cursorCol   int

	// Scroll region, zero when the full screen scrolls.
	regionTop    int
	regionBottom int
}

func newState() state {
	return state{columns: defaultColumns, rows: screenRows}
}

func (s *state) setCursor(row, col int) {
	s.cursorKnown = true
	s.cursorRow = row
	s.cursorCol = col
}

func (s *state) invalidateCursor() {
	s.cursorKnown = false
	s.cursorRow = 0
	s.cursorCol = 0
}

func (s *state) cursor() (row, col int, ok bool) {
	return s.cursorRow, s.cursorCol, s.cursorKnown
}

func (s *state) setRegion(top, bottom int) {
	s.regionTop = top
	s.regionBottom = bottom
}

func (s *state) clearRegion() {
	s.regionTop = 0
	s.regionBottom = 0
}

func (s *state) region() (top, bottom int, ok bool) {
	return s.regionTop, s.regionBottom, s.regionTop != 0
}
