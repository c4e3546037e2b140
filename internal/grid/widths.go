package grid

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/sqlpane/sqlpane/internal/db"
)

// Width constants, in character cells.
const (
	headerPadding  = 2
	contentPadding = 2
	MinColumnWidth = 4
	MaxColumnWidth = 48

	// Only the first widthSampleRows rows are measured. Content past the
	// sample may truncate visually; widths are not recomputed on scroll.
	widthSampleRows = 100
)

// EstimateWidths computes the default display width for each column of a
// result: the wider of the header and the widest sampled cell, padded and
// clamped. Pure function of the result.
func EstimateWidths(res *db.Result) []int {
	if res == nil {
		return nil
	}

	widths := make([]int, len(res.Columns))
	for i, col := range res.Columns {
		widths[i] = runewidth.StringWidth(col.Name) + headerPadding
	}

	sample := res.Rows
	if len(sample) > widthSampleRows {
		sample = sample[:widthSampleRows]
	}
	for _, row := range sample {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(CellText(cell)) + contentPadding; w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, w := range widths {
		widths[i] = clampWidth(w)
	}
	return widths
}

func clampWidth(w int) int {
	if w < MinColumnWidth {
		return MinColumnWidth
	}
	if w > MaxColumnWidth {
		return MaxColumnWidth
	}
	return w
}

// CellText stringifies a cell for display. A nil cell renders as the
// literal NULL.
func CellText(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
