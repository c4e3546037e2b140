// internal/db/mysql.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDriver implements Driver for MySQL
type MySQLDriver struct {
	db *sql.DB
}

// Connect establishes connection to MySQL
func (d *MySQLDriver) Connect(params ConnectParams) error {
	// DSN: user:password@tcp(address)/dbname
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		params.User,
		params.Password,
		params.Host,
		params.Port,
		params.Database,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return WrapConnectionError(err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	// sql.Open is lazy, verify now
	if err := db.Ping(); err != nil {
		db.Close()
		return WrapConnectionError(err)
	}

	d.db = db
	return nil
}

// Close closes the database connection
func (d *MySQLDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Execute runs a query and returns results
func (d *MySQLDriver) Execute(ctx context.Context, query string) (*Result, error) {
	return executeQuery(ctx, d.db, query)
}

// Ping checks if database is reachable
func (d *MySQLDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *MySQLDriver) Type() DriverType {
	return MySQL
}

// Tables returns a list of tables in the current database
func (d *MySQLDriver) Tables(ctx context.Context) ([]string, error) {
	query := "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() ORDER BY table_name"
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
func (d *MySQLDriver) Columns(ctx context.Context, tableName string) ([]ColumnInfo, error) {
	query := `
		SELECT COLUMN_NAME, COLUMN_TYPE
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_NAME = ? AND TABLE_SCHEMA = DATABASE()
		ORDER BY ORDINAL_POSITION`

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
