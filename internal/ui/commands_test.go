package ui

import (
	"testing"

	"github.com/sqlpane/sqlpane/internal/db"
)

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("SELECT 1; SELECT 2;")
	if len(stmts) != 2 {
		t.Fatalf("got %d statements", len(stmts))
	}
	if stmts[0] != "SELECT 1" || stmts[1] != "SELECT 2" {
		t.Fatalf("got %v", stmts)
	}
}

func TestSplitStatementsRespectsQuotes(t *testing.T) {
	stmts := splitStatements(`SELECT 'a;b'; SELECT "x;y"`)
	if len(stmts) != 2 {
		t.Fatalf("semicolons inside quotes must not split: %v", stmts)
	}
	if stmts[0] != `SELECT 'a;b'` {
		t.Fatalf("got %q", stmts[0])
	}
}

func TestSplitStatementsEmpty(t *testing.T) {
	if stmts := splitStatements("  ;  ; "); len(stmts) != 0 {
		t.Fatalf("got %v", stmts)
	}
}

func TestBuildPreview(t *testing.T) {
	res := &db.Result{
		Columns: []db.ColumnInfo{{Name: "id"}, {Name: "name"}},
		Rows: [][]any{
			{int64(1), "alice"},
			{int64(2), nil},
			{int64(3), "carol"},
			{int64(4), "dave"},
		},
	}

	preview := buildPreview(res, 3)
	want := "id | name\n1 | alice\n2 | NULL\n3 | carol\n..."
	if preview != want {
		t.Fatalf("got %q, want %q", preview, want)
	}
}

func TestBuildPreviewEmptyResult(t *testing.T) {
	if p := buildPreview(&db.Result{}, 3); p != "" {
		t.Fatalf("got %q", p)
	}
}
