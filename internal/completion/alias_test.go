package completion

import "testing"

func TestResolveAliasesFromJoin(t *testing.T) {
	got := ResolveAliases("FROM t1 a JOIN t2 b")
	if len(got) != 2 || got["a"] != "t1" || got["b"] != "t2" {
		t.Fatalf("unexpected aliases: %v", got)
	}
}

func TestResolveAliasesLowercasesKeys(t *testing.T) {
	got := ResolveAliases("SELECT * FROM Orders O WHERE O.id = 1")
	if got["o"] != "Orders" {
		t.Fatalf("expected o -> Orders, got %v", got)
	}
	if _, ok := got["O"]; ok {
		t.Fatalf("keys must be lower-cased: %v", got)
	}
}

func TestResolveAliasesExplicitAS(t *testing.T) {
	got := ResolveAliases("SELECT * FROM orders AS o JOIN users AS u ON o.user_id = u.id")
	if got["o"] != "orders" || got["u"] != "users" {
		t.Fatalf("unexpected aliases: %v", got)
	}
}

// The AS pass runs after the bare pass; when both match the same alias
// token the AS pass wins.
func TestResolveAliasesLastPassWins(t *testing.T) {
	got := ResolveAliases("FROM t1 x JOIN t2 AS x")
	if got["x"] != "t2" {
		t.Fatalf("expected AS pass to overwrite bare pass, got %v", got)
	}
}

func TestResolveAliasesDiscardsKeywordAliases(t *testing.T) {
	got := ResolveAliases("SELECT * FROM orders WHERE amount > 10")
	if len(got) != 0 {
		t.Fatalf("WHERE must not be treated as an alias: %v", got)
	}
}

func TestResolveAliasesStripsQuotes(t *testing.T) {
	got := ResolveAliases(`FROM "orders" o`)
	if got["o"] != "orders" {
		t.Fatalf("expected quotes stripped, got %v", got)
	}
}

func TestResolveAliasesBoundaryRequired(t *testing.T) {
	// "orders" followed by a non-boundary token is not an alias pair.
	got := ResolveAliases("FROM orders JOIN users u ON u.id = orders.uid")
	if _, ok := got["join"]; ok {
		t.Fatalf("JOIN consumed as alias: %v", got)
	}
	if got["u"] != "users" {
		t.Fatalf("expected u -> users, got %v", got)
	}
}

func TestResolveAliasesCommaList(t *testing.T) {
	got := ResolveAliases("SELECT * FROM orders o, users u WHERE o.user_id = u.id")
	if got["o"] != "orders" {
		t.Fatalf("expected o -> orders before comma, got %v", got)
	}
}
