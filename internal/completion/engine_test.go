package completion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sqlpane/sqlpane/internal/db"
)

func staticFetcher(tables map[string][]db.ColumnInfo) Fetcher {
	return func(ctx context.Context, table string) ([]db.ColumnInfo, error) {
		cols, ok := tables[table]
		if !ok {
			return nil, errors.New("no such table")
		}
		return cols, nil
	}
}

var testSchema = map[string][]db.ColumnInfo{
	"orders": {
		{Name: "id", DataType: "INTEGER"},
		{Name: "user_id", DataType: "INTEGER"},
		{Name: "amount", DataType: "REAL"},
	},
	"users": {
		{Name: "id", DataType: "INTEGER"},
		{Name: "name", DataType: "TEXT"},
	},
}

func newTestProvider() *Provider {
	engine := NewEngine(NewCache(staticFetcher(testSchema)))
	return engine.Register([]string{"orders", "users"})
}

func TestDotContextResolvesAlias(t *testing.T) {
	p := newTestProvider()
	sql := "SELECT o. FROM orders o"
	cursor := len("SELECT o.")

	items := p.Complete(context.Background(), sql, cursor)
	if len(items) != 3 {
		t.Fatalf("expected one field per column, got %d: %v", len(items), items)
	}
	for _, it := range items {
		if it.Kind != Field {
			t.Fatalf("dot-context must be exclusive, found %v item %q", it.Kind, it.Label)
		}
	}
	if items[2].Label != "amount" || items[2].Detail != "REAL" {
		t.Fatalf("detail must carry the data type: %+v", items[2])
	}
}

func TestDotContextTableNameFallback(t *testing.T) {
	p := newTestProvider()
	sql := "SELECT Users."
	items := p.Complete(context.Background(), sql, len(sql))
	if len(items) != 2 {
		t.Fatalf("expected users columns via case-insensitive table match, got %v", items)
	}
}

func TestDotContextFetchFailureDegradesToEmpty(t *testing.T) {
	p := newTestProvider()
	sql := "SELECT m. FROM missing m"
	items := p.Complete(context.Background(), sql, len("SELECT m."))
	if len(items) != 0 {
		t.Fatalf("expected zero field items on fetch failure, got %v", items)
	}
}

func TestTableContextQuotesInsertText(t *testing.T) {
	p := newTestProvider()
	sql := "SELECT * FROM ord"
	items := p.Complete(context.Background(), sql, len(sql))

	var tables []Item
	for _, it := range items {
		if it.Kind == Table {
			tables = append(tables, it)
		}
	}
	if len(tables) != 2 {
		t.Fatalf("expected both known tables, got %v", tables)
	}
	if tables[0].InsertText != `"orders"` || tables[0].Detail != "Table" {
		t.Fatalf("unexpected table item: %+v", tables[0])
	}
}

func TestKeywordsAlwaysOfferedOutsideDotContext(t *testing.T) {
	p := newTestProvider()
	// Cursor after a space: no table context, no current word.
	sql := "SELECT * "
	items := p.Complete(context.Background(), sql, len(sql))

	var keywords, tables int
	for _, it := range items {
		switch it.Kind {
		case Keyword:
			keywords++
		case Table:
			tables++
		}
	}
	if keywords != len(Vocabulary) {
		t.Fatalf("expected full keyword vocabulary, got %d", keywords)
	}
	if tables != 0 {
		t.Fatalf("table items offered without table context: %d", tables)
	}
}

func TestReplacementRangeSpansCurrentWord(t *testing.T) {
	p := newTestProvider()
	sql := "SELECT *\nFROM ord"
	items := p.Complete(context.Background(), sql, len(sql))
	if len(items) == 0 {
		t.Fatal("expected suggestions")
	}
	start := strings.LastIndex(sql, "ord")
	for _, it := range items {
		if it.Start != start || it.End != len(sql) {
			t.Fatalf("range [%d,%d) does not span %q", it.Start, it.End, "ord")
		}
	}
}

func TestRegisterDisposesPreviousProvider(t *testing.T) {
	engine := NewEngine(NewCache(staticFetcher(testSchema)))
	first := engine.Register([]string{"orders"})
	second := engine.Register([]string{"orders", "users"})

	if engine.Active() != second {
		t.Fatal("second registration must be the active provider")
	}
	if items := first.Complete(context.Background(), "SELECT ", 7); items != nil {
		t.Fatalf("disposed provider must return nil, got %v", items)
	}
	if items := second.Complete(context.Background(), "SELECT ", 7); len(items) == 0 {
		t.Fatal("active provider must produce suggestions")
	}
}

func TestProviderCloseUnregisters(t *testing.T) {
	engine := NewEngine(NewCache(staticFetcher(testSchema)))
	p := engine.Register([]string{"orders"})
	p.Close()
	if engine.Active() != nil {
		t.Fatal("closed provider must unregister itself")
	}
}

func TestCompleteMayPopulateCache(t *testing.T) {
	cache := NewCache(staticFetcher(testSchema))
	engine := NewEngine(cache)
	p := engine.Register([]string{"orders"})

	sql := "SELECT orders."
	p.Complete(context.Background(), sql, len(sql))
	if _, ok := cache.Lookup("orders"); !ok {
		t.Fatal("dot-context completion should populate the schema cache")
	}
}
