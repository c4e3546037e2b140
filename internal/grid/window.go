package grid

// Window computes the half-open index range [first, last) of rows that
// must be rendered for the current viewport: the rows covering the
// viewport's pixel extent, expanded by overscan on each side, clamped to
// the data. The rendered count is bounded by visible rows + 2*overscan
// regardless of total row count.
func Window(scrollTop, viewportHeight, rowHeight, rowCount, overscan int) (int, int) {
	if rowCount <= 0 || rowHeight <= 0 || viewportHeight <= 0 {
		return 0, 0
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	first := scrollTop/rowHeight - overscan
	if first < 0 {
		first = 0
	}
	last := (scrollTop+viewportHeight+rowHeight-1)/rowHeight + overscan
	if last > rowCount {
		last = rowCount
	}
	if first > last {
		first = last
	}
	return first, last
}

// ContentHeight is the total scrollable extent. It depends only on the
// row count, never on how many rows are rendered, so scroll positions
// stay correct for the windowed subset.
func ContentHeight(rowCount, rowHeight int) int {
	if rowCount < 0 {
		return 0
	}
	return rowCount * rowHeight
}

// MaxScroll is the largest scrollTop that still shows a full viewport.
func MaxScroll(rowCount, rowHeight, viewportHeight int) int {
	max := ContentHeight(rowCount, rowHeight) - viewportHeight
	if max < 0 {
		return 0
	}
	return max
}
