package grid

import (
	"strings"
	"testing"

	"github.com/sqlpane/sqlpane/internal/db"
)

func result(cols []string, rows [][]any) *db.Result {
	ci := make([]db.ColumnInfo, len(cols))
	for i, c := range cols {
		ci[i] = db.ColumnInfo{Name: c, DataType: "TEXT"}
	}
	return &db.Result{Columns: ci, Rows: rows, RowCount: len(rows)}
}

func TestEstimateWidthsContentWins(t *testing.T) {
	res := result([]string{"id"}, [][]any{{"abcdefghij"}})
	w := EstimateWidths(res)
	// 10-cell content + 2 padding beats the 2-cell header.
	if w[0] != 12 {
		t.Fatalf("got %d, want 12", w[0])
	}
}

func TestEstimateWidthsHeaderWins(t *testing.T) {
	res := result([]string{"transaction_id"}, [][]any{{"x"}})
	w := EstimateWidths(res)
	if w[0] != len("transaction_id")+headerPadding {
		t.Fatalf("got %d", w[0])
	}
}

func TestEstimateWidthsNullMeasuresAsLiteral(t *testing.T) {
	res := result([]string{"a"}, [][]any{{nil}})
	w := EstimateWidths(res)
	if w[0] != len("NULL")+contentPadding {
		t.Fatalf("nil cell must measure as NULL text, got %d", w[0])
	}
}

func TestEstimateWidthsFloor(t *testing.T) {
	res := result([]string{"x"}, nil)
	if w := EstimateWidths(res); w[0] != MinColumnWidth {
		t.Fatalf("got %d, want floor %d", w[0], MinColumnWidth)
	}
}

func TestEstimateWidthsCeiling(t *testing.T) {
	res := result([]string{"blob"}, [][]any{{strings.Repeat("x", 500)}})
	if w := EstimateWidths(res); w[0] != MaxColumnWidth {
		t.Fatalf("got %d, want ceiling %d", w[0], MaxColumnWidth)
	}
}

func TestEstimateWidthsSampleStopsAt100(t *testing.T) {
	rows := make([][]any, 101)
	for i := range rows {
		rows[i] = []any{"ab"}
	}
	rows[100] = []any{strings.Repeat("x", 40)}

	res := result([]string{"c"}, rows)
	if w := EstimateWidths(res); w[0] != MinColumnWidth {
		t.Fatalf("row 101 must not influence widths, got %d", w[0])
	}
}

func TestEstimateWidthsNilResult(t *testing.T) {
	if w := EstimateWidths(nil); w != nil {
		t.Fatalf("got %v", w)
	}
}

func TestCellText(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{"hi", "hi"},
		{int64(42), "42"},
		{float64(3.5), "3.5"},
		{true, "true"},
		{false, "false"},
	}
	for _, c := range cases {
		if got := CellText(c.in); got != c.want {
			t.Errorf("CellText(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
