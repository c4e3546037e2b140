// Package grid renders query results as a virtualized, resizable table.
// Only the rows intersecting the viewport (plus overscan) are rendered,
// so render cost is bounded by viewport size, not result size.
package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sqlpane/sqlpane/internal/db"
)

// Styles for the grid
type Styles struct {
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Null    lipgloss.Style
	Number  lipgloss.Style
	Bool    lipgloss.Style
	Border  lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	Spinner lipgloss.Style
}

// DefaultStyles returns a neutral palette; the app overrides these from
// its theme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Cell:   lipgloss.NewStyle(),
		Null:   lipgloss.NewStyle().Faint(true).Italic(true),
		Number: lipgloss.NewStyle(),
		Bool:   lipgloss.NewStyle(),
		Border: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}

// Model is the results surface. It owns only transient scroll and resize
// state; the result itself is immutable and replaced wholesale.
type Model struct {
	width  int
	height int

	// Screen position of the grid's top-left cell, for mouse hit tests.
	originX int
	originY int

	overscan  int
	rowHeight int

	result  *db.Result
	errMsg  string
	loading bool
	spin    spinner.Model

	// Body scroll state. The header never scrolls on its own: its offset
	// is forced to the body's on every scroll event.
	scrollTop     int
	xOffset       int
	headerXOffset int

	baseWidths []int
	resizer    *Resizer
	shape      string

	focused bool
	styles  Styles
}

// New creates a grid with the given overscan.
func New(overscan int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		overscan:  overscan,
		rowHeight: 1,
		spin:      sp,
		resizer:   NewResizer(),
		styles:    DefaultStyles(),
	}
}

// SetStyles replaces the grid styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
	m.spin.Style = s.Spinner
}

// SetSize sets the outer dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// SetOrigin records the grid's top-left screen cell for mouse handling.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Focus gives the grid keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.focused }

// SetLoading toggles the loading state. Returns the spinner tick command
// when loading starts.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	m.loading = loading
	if loading {
		return m.spin.Tick
	}
	return nil
}

// SetError puts the grid in the error state; the previous result is
// discarded.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
	m.result = nil
	m.loading = false
}

// SetResult installs a new result. Width overrides survive only when the
// result has the same shape as the previous one; scroll resets always.
func (m *Model) SetResult(res *db.Result) {
	m.result = res
	m.errMsg = ""
	m.loading = false
	m.scrollTop = 0
	m.xOffset = 0
	m.syncHeader()

	shape := resultShape(res)
	if shape != m.shape {
		m.resizer.Reset()
		m.shape = shape
	}
	m.baseWidths = EstimateWidths(res)
}

// resultShape is the structural identity of a result: column count plus
// column names. Positional overrides are only valid within one shape.
func resultShape(res *db.Result) string {
	if res == nil {
		return ""
	}
	names := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		names[i] = c.Name
	}
	return fmt.Sprintf("%d:%s", len(res.Columns), strings.Join(names, "\x00"))
}

// Result returns the currently displayed result, if any.
func (m Model) Result() *db.Result { return m.result }

func (m Model) colWidth(i int) int {
	if w, ok := m.resizer.Override(i); ok {
		return w
	}
	if i < len(m.baseWidths) {
		return m.baseWidths[i]
	}
	return MinColumnWidth
}

// bodyHeight is the viewport height in cells: total minus header,
// separator, and status line.
func (m Model) bodyHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) clampScroll() {
	max := MaxScroll(m.rowCount(), m.rowHeight, m.bodyHeight())
	if m.scrollTop > max {
		m.scrollTop = max
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
	if m.xOffset < 0 {
		m.xOffset = 0
	}
}

func (m Model) rowCount() int {
	if m.result == nil {
		return 0
	}
	return m.result.RowCount
}

// syncHeader mirrors the body's horizontal offset onto the header. The
// body leads; the header follows.
func (m *Model) syncHeader() {
	m.headerXOffset = m.xOffset
}

func (m *Model) scrollBy(dy int) {
	m.scrollTop += dy * m.rowHeight
	m.clampScroll()
	m.syncHeader()
}

func (m *Model) scrollXBy(dx int) {
	m.xOffset += dx
	if m.xOffset < 0 {
		m.xOffset = 0
	}
	m.syncHeader()
}

// Update handles keys, mouse wheel scrolling, and drag-resize.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case tea.KeyMsg:
		if m.focused {
			m.handleKey(msg)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "j", "down":
		m.scrollBy(1)
	case "k", "up":
		m.scrollBy(-1)
	case "pgdown", "ctrl+f":
		m.scrollBy(m.bodyHeight())
	case "pgup", "ctrl+b":
		m.scrollBy(-m.bodyHeight())
	case "g", "home":
		m.scrollTop = 0
		m.syncHeader()
	case "G", "end":
		m.scrollTop = MaxScroll(m.rowCount(), m.rowHeight, m.bodyHeight())
		m.syncHeader()
	case "h", "left":
		m.scrollXBy(-4)
	case "l", "right":
		m.scrollXBy(4)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	inside := msg.X >= m.originX && msg.X < m.originX+m.width &&
		msg.Y >= m.originY && msg.Y < m.originY+m.height

	if m.resizer.Active() {
		switch msg.Action {
		case tea.MouseActionRelease:
			m.resizer.End()
		case tea.MouseActionMotion:
			if !inside {
				m.resizer.Leave()
			} else {
				m.resizer.Move(msg.X)
			}
		}
		return
	}

	if !inside {
		return
	}

	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(3)
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-3)
	case msg.Button == tea.MouseButtonWheelRight:
		m.scrollXBy(4)
	case msg.Button == tea.MouseButtonWheelLeft:
		m.scrollXBy(-4)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		// Only the header row starts a resize session.
		if msg.Y == m.originY && m.result != nil {
			if idx, ok := m.boundaryAt(msg.X - m.originX); ok {
				m.resizer.Begin(idx, msg.X, m.colWidth(idx))
			}
		}
	}
}

// boundaryAt maps an x position within the grid to the column whose
// right edge sits there, within one cell of tolerance.
func (m Model) boundaryAt(x int) (int, bool) {
	pos := -m.headerXOffset
	for i := range m.result.Columns {
		pos += m.colWidth(i)
		if x >= pos-1 && x <= pos+1 {
			return i, true
		}
		pos++ // separator
	}
	return 0, false
}

// View renders exactly one of the five display states, in precedence
// order: loading, error, no result, empty rows, populated.
func (m Model) View() string {
	switch {
	case m.loading:
		return m.centered(m.spin.View() + " Running query...")
	case m.errMsg != "":
		msg := lipgloss.NewStyle().Width(m.width - 4).Render(m.errMsg)
		return m.centered(m.styles.Error.Render(msg))
	case m.result == nil:
		return m.centered(m.styles.Help.Render("Run a query to see results"))
	case m.result.RowCount == 0:
		return m.centered(m.styles.Help.Render(m.emptyMessage()))
	default:
		return m.renderTable()
	}
}

func (m Model) emptyMessage() string {
	if m.result != nil && !m.result.IsSelect {
		return fmt.Sprintf("OK, %d row(s) affected (%s)", m.result.AffectedRows, m.result.ExecTime.Round(time.Millisecond))
	}
	return "0 rows"
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderTable() string {
	res := m.result
	bodyH := m.bodyHeight()

	first, last := Window(m.scrollTop, bodyH*m.rowHeight, m.rowHeight, res.RowCount, m.overscan)

	// Render the whole window, then cut the viewport slice out of it.
	// Overscan rows above and below the viewport are rendered but not
	// shown, which keeps fast scrolling free of blank lines.
	lines := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		lines = append(lines, m.renderRow(res.Rows[i]))
	}

	top := m.scrollTop/m.rowHeight - first
	if top < 0 {
		top = 0
	}
	end := top + bodyH
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[top:end]

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := len(visible); i < bodyH; i++ {
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus(first, last))
	return b.String()
}

func (m Model) renderStatus(first, last int) string {
	res := m.result
	visFirst := m.scrollTop/m.rowHeight + 1
	visLast := visFirst + m.bodyHeight() - 1
	if visLast > res.RowCount {
		visLast = res.RowCount
	}
	status := fmt.Sprintf(" rows %d-%d of %d • %s", visFirst, visLast, res.RowCount, res.ExecTime.Round(time.Millisecond))
	return m.styles.Status.Render(runewidth.Truncate(status, m.width, ""))
}

// renderHeader renders the column names at the header's mirrored offset.
func (m Model) renderHeader() string {
	cells := make([]segment, 0, len(m.result.Columns))
	for i, col := range m.result.Columns {
		cells = append(cells, segment{
			text:  pad(col.Name, m.colWidth(i), false),
			style: m.styles.Header,
		})
	}
	return m.renderLine(cells, m.headerXOffset)
}

func (m Model) renderRow(row []any) string {
	cells := make([]segment, 0, len(m.result.Columns))
	for i := range m.result.Columns {
		var v any
		if i < len(row) {
			v = row[i]
		}
		cells = append(cells, segment{
			text:  pad(CellText(v), m.colWidth(i), isNumeric(v)),
			style: m.valueStyle(v),
		})
	}
	return m.renderLine(cells, m.xOffset)
}

func (m Model) valueStyle(v any) lipgloss.Style {
	switch v.(type) {
	case nil:
		return m.styles.Null
	case int64, float64:
		return m.styles.Number
	case bool:
		return m.styles.Bool
	default:
		return m.styles.Cell
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}

type segment struct {
	text  string
	style lipgloss.Style
}

// renderLine lays the cells out left to right, skipping the given number
// of cells from the left edge and clipping at the grid width. Styling is
// applied after clipping so offsets count plain cells.
func (m Model) renderLine(cells []segment, skip int) string {
	var b strings.Builder
	remaining := m.width
	sep := m.styles.Border.Render("│")

	for i, cell := range cells {
		if remaining <= 0 {
			break
		}

		text := cell.text
		w := runewidth.StringWidth(text)
		if skip >= w {
			skip -= w
		} else {
			text = cutLeft(text, skip)
			skip = 0
			if runewidth.StringWidth(text) > remaining {
				text = runewidth.Truncate(text, remaining, "")
			}
			b.WriteString(cell.style.Render(text))
			remaining -= runewidth.StringWidth(text)
		}

		if i < len(cells)-1 {
			if skip >= 1 {
				skip--
			} else if remaining > 0 {
				b.WriteString(sep)
				remaining--
			}
		}
	}
	return b.String()
}

// pad fits s into w cells, truncating long values. Numbers right-align.
func pad(s string, w int, rightAlign bool) string {
	if runewidth.StringWidth(s) > w {
		return runewidth.Truncate(s, w, "…")
	}
	if rightAlign {
		return strings.Repeat(" ", w-runewidth.StringWidth(s)) + s
	}
	return s + strings.Repeat(" ", w-runewidth.StringWidth(s))
}

// cutLeft drops n display cells from the left of s.
func cutLeft(s string, n int) string {
	if n <= 0 {
		return s
	}
	w := 0
	for i, r := range s {
		if w >= n {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}
