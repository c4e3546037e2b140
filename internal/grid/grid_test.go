package grid

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sqlpane/sqlpane/internal/db"
)

func populatedModel(rows int) Model {
	m := New(10)
	m.SetSize(80, 24)
	m.Focus()

	data := make([][]any, rows)
	for i := range data {
		data[i] = []any{int64(i), fmt.Sprintf("name-%d", i), nil}
	}
	res := result([]string{"id", "name", "note"}, data)
	res.IsSelect = true
	res.ExecTime = 12 * time.Millisecond
	m.SetResult(res)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "G":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestViewNoResultState(t *testing.T) {
	m := New(10)
	m.SetSize(80, 24)
	if !strings.Contains(m.View(), "Run a query") {
		t.Fatal("fresh grid must show the placeholder")
	}
}

func TestViewErrorState(t *testing.T) {
	m := populatedModel(5)
	m.SetError("no such table: userz")
	if !strings.Contains(m.View(), "no such table: userz") {
		t.Fatal("error text must be shown")
	}
	if m.Result() != nil {
		t.Fatal("error must discard the previous result")
	}
}

func TestViewLoadingWinsOverResult(t *testing.T) {
	m := populatedModel(5)
	m.SetLoading(true)
	if !strings.Contains(m.View(), "Running query") {
		t.Fatal("loading must take precedence over a stale result")
	}
}

func TestViewEmptySelect(t *testing.T) {
	m := New(10)
	m.SetSize(80, 24)
	res := result([]string{"id"}, nil)
	res.IsSelect = true
	m.SetResult(res)
	if !strings.Contains(m.View(), "0 rows") {
		t.Fatal("empty select must report zero rows")
	}
}

func TestViewDMLReportsAffectedRows(t *testing.T) {
	m := New(10)
	m.SetSize(80, 24)
	m.SetResult(&db.Result{AffectedRows: 3})
	if !strings.Contains(m.View(), "3 row(s) affected") {
		t.Fatalf("got %q", m.View())
	}
}

func TestViewPopulated(t *testing.T) {
	m := populatedModel(50)
	view := m.View()
	if !strings.Contains(view, "id") || !strings.Contains(view, "name-0") {
		t.Fatal("populated view must render header and first row")
	}
	if !strings.Contains(view, "of 50") {
		t.Fatal("status line must show the total row count")
	}
	if !strings.Contains(view, "NULL") {
		t.Fatal("nil cells must render as NULL")
	}
}

func TestHeaderFollowsBodyScroll(t *testing.T) {
	m := populatedModel(5)
	m, _ = m.Update(keyMsg("l"))
	if m.xOffset == 0 {
		t.Fatal("l must scroll horizontally")
	}
	if m.headerXOffset != m.xOffset {
		t.Fatalf("header offset %d drifted from body %d", m.headerXOffset, m.xOffset)
	}

	m, _ = m.Update(keyMsg("h"))
	if m.headerXOffset != m.xOffset {
		t.Fatal("header must follow every scroll, both directions")
	}
}

func TestVerticalScrollClamps(t *testing.T) {
	m := populatedModel(1000)
	m, _ = m.Update(keyMsg("G"))
	if m.scrollTop != MaxScroll(1000, m.rowHeight, m.bodyHeight()) {
		t.Fatalf("G must land on max scroll, got %d", m.scrollTop)
	}

	m, _ = m.Update(keyMsg("j"))
	if m.scrollTop != MaxScroll(1000, m.rowHeight, m.bodyHeight()) {
		t.Fatal("scrolling past the end must clamp")
	}

	m, _ = m.Update(keyMsg("g"))
	m, _ = m.Update(keyMsg("k"))
	if m.scrollTop != 0 {
		t.Fatal("scrolling above the top must clamp")
	}
}

func TestNewResultResetsScroll(t *testing.T) {
	m := populatedModel(1000)
	m, _ = m.Update(keyMsg("G"))
	m, _ = m.Update(keyMsg("l"))

	res := result([]string{"id", "name", "note"}, [][]any{{int64(1), "a", "b"}})
	res.IsSelect = true
	m.SetResult(res)
	if m.scrollTop != 0 || m.xOffset != 0 || m.headerXOffset != 0 {
		t.Fatal("a new result must reset scroll on both axes")
	}
}

func TestOverrideSurvivesSameShape(t *testing.T) {
	m := populatedModel(5)
	m.resizer.Begin(1, 100, m.colWidth(1))
	m.resizer.Move(120)
	m.resizer.End()
	want := m.colWidth(1)

	res := result([]string{"id", "name", "note"}, [][]any{{int64(9), "z", "y"}})
	res.IsSelect = true
	m.SetResult(res)
	if m.colWidth(1) != want {
		t.Fatalf("same-shape result must keep overrides: got %d, want %d", m.colWidth(1), want)
	}
}

func TestOverrideDroppedOnShapeChange(t *testing.T) {
	m := populatedModel(5)
	m.resizer.Begin(0, 100, m.colWidth(0))
	m.resizer.Move(140)
	m.resizer.End()

	res := result([]string{"total"}, [][]any{{int64(1)}})
	res.IsSelect = true
	m.SetResult(res)
	if _, ok := m.resizer.Override(0); ok {
		t.Fatal("shape change must drop positional overrides")
	}
}

func TestWheelScrollSyncsHeader(t *testing.T) {
	m := populatedModel(100)
	m.SetOrigin(0, 0)
	m, _ = m.Update(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelRight})
	if m.xOffset == 0 || m.headerXOffset != m.xOffset {
		t.Fatalf("wheel right must scroll body and header together: %d %d", m.xOffset, m.headerXOffset)
	}
}

func TestHeaderDragResizesColumn(t *testing.T) {
	m := populatedModel(5)
	m.SetOrigin(0, 0)
	boundary := m.colWidth(0)

	m, _ = m.Update(tea.MouseMsg{X: boundary, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.resizer.Active() {
		t.Fatal("press on a header boundary must start a resize")
	}

	m, _ = m.Update(tea.MouseMsg{X: boundary + 6, Y: 0, Action: tea.MouseActionMotion})
	m, _ = m.Update(tea.MouseMsg{X: boundary + 6, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if m.resizer.Active() {
		t.Fatal("release must end the session")
	}
	if w, ok := m.resizer.Override(0); !ok || w != boundary+6 {
		t.Fatalf("drag of +6 must widen column 0: %d %v", w, ok)
	}
}

func TestDragOutsideGridEndsSession(t *testing.T) {
	m := populatedModel(5)
	m.SetOrigin(0, 0)
	boundary := m.colWidth(0)

	m, _ = m.Update(tea.MouseMsg{X: boundary, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 200, Y: 50, Action: tea.MouseActionMotion})
	if m.resizer.Active() {
		t.Fatal("pointer leaving the grid must end the resize")
	}
}

func TestBodyClickDoesNotResize(t *testing.T) {
	m := populatedModel(5)
	m.SetOrigin(0, 0)
	m, _ = m.Update(tea.MouseMsg{X: m.colWidth(0), Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.resizer.Active() {
		t.Fatal("only header presses may start a resize")
	}
}
