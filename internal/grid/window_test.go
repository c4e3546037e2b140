package grid

import "testing"

func TestWindowMidScroll(t *testing.T) {
	// 640px viewport over 32px rows scrolled to 3200px: rows 100..120
	// visible, expanded by 10 overscan on each side.
	first, last := Window(3200, 640, 32, 10000, 10)
	if first != 90 || last != 130 {
		t.Fatalf("got [%d,%d), want [90,130)", first, last)
	}
	if last-first != 20+2*10 {
		t.Fatalf("rendered count %d exceeds visible+2*overscan", last-first)
	}
}

func TestWindowClampsAtTop(t *testing.T) {
	first, last := Window(0, 640, 32, 10000, 10)
	if first != 0 {
		t.Fatalf("first must clamp to 0, got %d", first)
	}
	if last != 30 {
		t.Fatalf("got last %d, want 30", last)
	}
}

func TestWindowClampsAtBottom(t *testing.T) {
	first, last := Window(MaxScroll(100, 32, 640), 640, 32, 100, 10)
	if last != 100 {
		t.Fatalf("last must clamp to rowCount, got %d", last)
	}
	if first >= last {
		t.Fatalf("empty window at bottom: [%d,%d)", first, last)
	}
}

func TestWindowPartialRowAtEdge(t *testing.T) {
	// scrollTop 16 cuts row 0 in half; it must still be in the window,
	// and the bottom row partially covered must be included too.
	first, last := Window(16, 64, 32, 1000, 0)
	if first != 0 {
		t.Fatalf("partially visible top row excluded: first=%d", first)
	}
	if last != 3 {
		t.Fatalf("partially visible bottom row excluded: last=%d", last)
	}
}

func TestWindowEmptyResult(t *testing.T) {
	if first, last := Window(0, 640, 32, 0, 10); first != 0 || last != 0 {
		t.Fatalf("empty result must yield empty window, got [%d,%d)", first, last)
	}
}

func TestWindowFewerRowsThanViewport(t *testing.T) {
	first, last := Window(0, 640, 32, 5, 10)
	if first != 0 || last != 5 {
		t.Fatalf("got [%d,%d), want [0,5)", first, last)
	}
}

func TestContentHeight(t *testing.T) {
	if h := ContentHeight(10000, 32); h != 320000 {
		t.Fatalf("got %d", h)
	}
	if h := ContentHeight(0, 32); h != 0 {
		t.Fatalf("empty result content height: %d", h)
	}
}

func TestMaxScrollNeverNegative(t *testing.T) {
	if s := MaxScroll(5, 32, 640); s != 0 {
		t.Fatalf("content shorter than viewport must not scroll, got %d", s)
	}
	if s := MaxScroll(100, 32, 640); s != 100*32-640 {
		t.Fatalf("got %d", s)
	}
}
