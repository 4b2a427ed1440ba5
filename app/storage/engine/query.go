package engine

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBCmd identifies a database operation a store may ask for
type DBCmd int

// Query holds the SQL text of one command per supported dialect
type Query struct {
	Sqlite   string
	Postgres string
}

// QueryMap resolves commands to dialect-specific SQL
type QueryMap struct {
	queries map[DBCmd]Query
}

// NewQueryMap creates an empty QueryMap
func NewQueryMap() *QueryMap {
	return &QueryMap{queries: make(map[DBCmd]Query)}
}

// Add registers dialect-specific queries for a command
func (q *QueryMap) Add(cmd DBCmd, query Query) *QueryMap {
	q.queries[cmd] = query
	return q
}

// AddSame registers one query shared by all dialects
func (q *QueryMap) AddSame(cmd DBCmd, query string) *QueryMap {
	return q.Add(cmd, Query{Sqlite: query, Postgres: query})
}

// Pick returns the query text for the given db type and command
func (q *QueryMap) Pick(dbType Type, cmd DBCmd) (string, error) {
	query, ok := q.queries[cmd]
	if !ok {
		return "", fmt.Errorf("unsupported command type %d", cmd)
	}

	switch dbType {
	case Sqlite:
		return query.Sqlite, nil
	case Postgres:
		return query.Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// TableConfig describes how a store initializes its table
type TableConfig struct {
	Name          string
	CreateTable   DBCmd
	CreateIndexes DBCmd
	QueriesMap    *QueryMap
	MigrateFunc   func(ctx context.Context, tx *sqlx.Tx, gid string) error // optional
}

// InitTable creates the table and its indexes in a single transaction and runs
// the optional migration func
func InitTable(ctx context.Context, db *SQL, cfg TableConfig) error {
	if db == nil {
		return fmt.Errorf("db connection is nil")
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	createQuery, err := cfg.QueriesMap.Pick(db.Type(), cfg.CreateTable)
	if err != nil {
		return fmt.Errorf("failed to get create table query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create %s table: %w", cfg.Name, err)
	}

	indexQuery, err := cfg.QueriesMap.Pick(db.Type(), cfg.CreateIndexes)
	if err != nil {
		return fmt.Errorf("failed to get create indexes query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, indexQuery); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", cfg.Name, err)
	}

	if cfg.MigrateFunc != nil {
		if err = cfg.MigrateFunc(ctx, tx, db.GID()); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", cfg.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
