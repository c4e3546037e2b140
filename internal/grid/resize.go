package grid

// The resize controller is an explicit two-state machine:
//
//	idle --(Begin on a column boundary)--> resizing
//	resizing --(End or Leave)--> idle
//
// While resizing, every Move stores max(MinColumnWidth, startWidth+dx)
// as the override for the session's column, replacing any prior override
// for that index.

type resizeState int

const (
	stateIdle resizeState = iota
	stateResizing
)

type resizeSession struct {
	index      int
	startX     int
	startWidth int
}

// Resizer tracks the drag state and the per-column width overrides.
// Overrides are keyed by positional index; callers must Reset them when a
// structurally different result is displayed.
type Resizer struct {
	state     resizeState
	session   resizeSession
	overrides map[int]int
}

// NewResizer returns an idle resizer with no overrides.
func NewResizer() *Resizer {
	return &Resizer{overrides: make(map[int]int)}
}

// Begin starts a resize session for a column. If a session is already
// active it takes precedence and the new pointer-down is ignored.
func (r *Resizer) Begin(index, pointerX, startWidth int) {
	if r.state == stateResizing {
		return
	}
	r.state = stateResizing
	r.session = resizeSession{index: index, startX: pointerX, startWidth: startWidth}
}

// Move updates the active session's override from the current pointer
// position and returns the new width. Returns false when idle.
func (r *Resizer) Move(pointerX int) (int, bool) {
	if r.state != stateResizing {
		return 0, false
	}
	width := r.session.startWidth + (pointerX - r.session.startX)
	if width < MinColumnWidth {
		width = MinColumnWidth
	}
	r.overrides[r.session.index] = width
	return width, true
}

// End finishes the active session. Overrides persist.
func (r *Resizer) End() {
	r.state = stateIdle
}

// Leave is the pointer-leaves-container exit: same teardown as End.
func (r *Resizer) Leave() {
	r.state = stateIdle
}

// Active reports whether a drag is in progress.
func (r *Resizer) Active() bool {
	return r.state == stateResizing
}

// Override returns the manual width for a column index, if set.
func (r *Resizer) Override(index int) (int, bool) {
	w, ok := r.overrides[index]
	return w, ok
}

// Reset drops all overrides and any active session. Called when a result
// with a different shape replaces the current one, since positional
// overrides would otherwise leak onto unrelated columns.
func (r *Resizer) Reset() {
	r.state = stateIdle
	r.overrides = make(map[int]int)
}
