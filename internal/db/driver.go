// internal/db/driver.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DriverType represents supported database types
type DriverType string

const (
	Postgres DriverType = "postgres"
	MySQL    DriverType = "mysql"
	SQLite   DriverType = "sqlite"
)

// ColumnInfo is the column metadata surfaced to the editor and grid.
// Immutable once fetched.
type ColumnInfo struct {
	Name     string
	DataType string
}

// ConnectParams holds database connection details
type ConnectParams struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Driver defines the interface for database operations
type Driver interface {
	Connect(params ConnectParams) error
	Close() error
	Execute(ctx context.Context, query string) (*Result, error)
	Ping(ctx context.Context) error
	Type() DriverType
	Tables(ctx context.Context) ([]string, error)
	Columns(ctx context.Context, tableName string) ([]ColumnInfo, error)
}

// Result contains query execution results. Cells are one of
// string, int64, float64, bool, or nil. Immutable once returned.
type Result struct {
	Columns      []ColumnInfo
	Rows         [][]any
	RowCount     int
	ExecTime     time.Duration
	IsSelect     bool
	AffectedRows int64
}

// NewDriver creates a new driver instance by type
func NewDriver(driverType DriverType) (Driver, error) {
	switch driverType {
	case Postgres:
		return &PostgresDriver{}, nil
	case MySQL:
		return &MySQLDriver{}, nil
	case SQLite:
		return &SQLiteDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown driver type: %s", driverType)
	}
}

// executeQuery executes a query and returns results
func executeQuery(ctx context.Context, db *sql.DB, query string) (*Result, error) {
	start := time.Now()
	trimmed := strings.TrimSpace(strings.ToUpper(query))

	// Detect SELECT vs DML
	if strings.HasPrefix(trimmed, "SELECT") || strings.HasPrefix(trimmed, "WITH") ||
		strings.HasPrefix(trimmed, "EXPLAIN") || strings.HasPrefix(trimmed, "DESCRIBE") ||
		strings.HasPrefix(trimmed, "SHOW") || strings.HasPrefix(trimmed, "PRAGMA") {
		return executeSelect(ctx, db, query, start)
	}
	return executeDML(ctx, db, query, start)
}

// executeSelect executes a SELECT query
func executeSelect(ctx context.Context, db *sql.DB, query string, start time.Time) (*Result, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	names, _ := rows.Columns()
	types, _ := rows.ColumnTypes()

	columns := make([]ColumnInfo, len(names))
	for i, name := range names {
		dataType := ""
		if i < len(types) && types[i] != nil {
			dataType = types[i].DatabaseTypeName()
		}
		columns[i] = ColumnInfo{Name: name, DataType: dataType}
	}

	var results [][]any
	for rows.Next() {
		values := make([]any, len(names))
		valuePtrs := make([]any, len(names))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, WrapQueryError(err)
		}

		row := make([]any, len(names))
		for i, v := range values {
			row[i] = normalizeValue(v)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, WrapQueryError(err)
	}

	return &Result{
		Columns:  columns,
		Rows:     results,
		RowCount: len(results),
		ExecTime: time.Since(start),
		IsSelect: true,
	}, nil
}

// executeDML executes INSERT/UPDATE/DELETE queries
func executeDML(ctx context.Context, db *sql.DB, query string, start time.Time) (*Result, error) {
	result, err := db.ExecContext(ctx, query)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	affected, _ := result.RowsAffected()
	return &Result{
		ExecTime:     time.Since(start),
		IsSelect:     false,
		AffectedRows: affected,
	}, nil
}

// normalizeValue reduces driver scan values to the cell types the
// grid understands: string, int64, float64, bool, or nil.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		s := string(val)
		// MySQL reports numerics as []byte; keep numbers numeric so the
		// grid can right-align and color them.
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	case bool, int64, float64, string:
		return val
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case float32:
		return float64(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
