// internal/db/sqlite_test.go
package db

import (
	"context"
	"testing"
)

func TestSQLiteDriver(t *testing.T) {
	d := &SQLiteDriver{}
	if err := d.Connect(ConnectParams{Database: ":memory:"}); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer d.Close()

	ctx := context.Background()
	if err := d.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	if _, err := d.Execute(ctx, "CREATE TABLE orders (id INTEGER PRIMARY KEY, amount REAL, note TEXT)"); err != nil {
		t.Fatalf("create table failed: %v", err)
	}
	if _, err := d.Execute(ctx, "INSERT INTO orders (amount, note) VALUES (9.5, 'first'), (12, NULL)"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	tables, err := d.Tables(ctx)
	if err != nil {
		t.Fatalf("tables failed: %v", err)
	}
	if len(tables) != 1 || tables[0] != "orders" {
		t.Fatalf("unexpected tables: %v", tables)
	}

	cols, err := d.Columns(ctx, "orders")
	if err != nil {
		t.Fatalf("columns failed: %v", err)
	}
	if len(cols) != 3 || cols[0].Name != "id" || cols[0].DataType != "INTEGER" {
		t.Fatalf("unexpected columns: %+v", cols)
	}

	res, err := d.Execute(ctx, "SELECT id, amount, note FROM orders ORDER BY id")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if res.RowCount != 2 || !res.IsSelect {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Rows[1][2] != nil {
		t.Fatalf("expected NULL note, got %v", res.Rows[1][2])
	}
	if _, ok := res.Rows[0][1].(float64); !ok {
		t.Fatalf("expected float amount, got %T", res.Rows[0][1])
	}
}
