// internal/db/postgres.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

// PostgresDriver implements Driver for PostgreSQL
type PostgresDriver struct {
	db *sql.DB
}

// Connect establishes connection to PostgreSQL
func (d *PostgresDriver) Connect(params ConnectParams) error {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(params.User, params.Password),
		Host:     fmt.Sprintf("%s:%d", params.Host, params.Port),
		Path:     "/" + params.Database,
		RawQuery: "sslmode=prefer",
	}

	db, err := sql.Open("postgres", u.String())
	if err != nil {
		return WrapConnectionError(err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return WrapConnectionError(err)
	}

	d.db = db
	return nil
}

// Close closes the database connection
func (d *PostgresDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Execute runs a query and returns results
func (d *PostgresDriver) Execute(ctx context.Context, query string) (*Result, error) {
	return executeQuery(ctx, d.db, query)
}

// Ping checks if database is reachable
func (d *PostgresDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *PostgresDriver) Type() DriverType {
	return Postgres
}

// Tables returns tables visible on the search path
func (d *PostgresDriver) Tables(ctx context.Context) ([]string, error) {
	query := `
		SELECT tablename FROM pg_catalog.pg_tables
		WHERE schemaname NOT IN ('pg_catalog', 'information_schema')
		ORDER BY tablename`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, WrapQueryError(err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// Columns returns column metadata for a table
func (d *PostgresDriver) Columns(ctx context.Context, tableName string) ([]ColumnInfo, error) {
	query := `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = $1
		ORDER BY ordinal_position`

	rows, err := d.db.QueryContext(ctx, query, tableName)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var col ColumnInfo
		if err := rows.Scan(&col.Name, &col.DataType); err != nil {
			return nil, WrapQueryError(err)
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}
