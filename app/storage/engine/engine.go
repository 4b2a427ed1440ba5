// Package engine wraps sqlx with dialect awareness so the stores above it can
// run the same code against sqlite and postgres. Queries are written in sqlite
// placeholder style and adopted per dialect at execution time.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver loaded here
	_ "modernc.org/sqlite" // sqlite driver loaded here
)

// Type is a type of database engine
type Type string

// enum of supported database engines
const (
	Unknown  Type = ""
	Sqlite   Type = "sqlite"
	Postgres Type = "postgres"
)

// SQL is a wrapper for sqlx.DB with type.
// Type allows distinguishing between different database engines.
type SQL struct {
	sqlx.DB
	gid    string // instance id, allows several deployments to share one database
	dbType Type   // type of the database engine
}

// New creates a database engine from a connection URL. The dialect is picked
// from the URL shape: postgres:// goes to postgres, file paths and :memory: go
// to sqlite.
func New(ctx context.Context, url, gid string) (*SQL, error) {
	switch {
	case url == "":
		return &SQL{}, fmt.Errorf("connection URL is empty")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return NewPostgres(ctx, url, gid)
	case url == ":memory:", strings.HasPrefix(url, "file:"), strings.HasPrefix(url, "sqlite://"),
		strings.HasSuffix(url, ".db"), strings.HasSuffix(url, ".sqlite"):
		return NewSqlite(strings.TrimPrefix(url, "sqlite://"), gid)
	default:
		return &SQL{}, fmt.Errorf("unsupported database type in connection URL %q", url)
	}
}

// NewSqlite creates a new sqlite database
func NewSqlite(file, gid string) (*SQL, error) {
	db, err := sqlx.Connect("sqlite", file)
	if err != nil {
		return &SQL{}, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	if err := setSqlitePragma(db); err != nil {
		db.Close()
		return &SQL{}, err
	}
	return &SQL{DB: *db, gid: gid, dbType: Sqlite}, nil
}

// NewPostgres creates a new postgres database connection
func NewPostgres(ctx context.Context, url, gid string) (*SQL, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return &SQL{}, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &SQL{DB: *db, gid: gid, dbType: Postgres}, nil
}

// GID returns the instance id
func (e *SQL) GID() string {
	return e.gid
}

// Type returns the database engine type
func (e *SQL) Type() Type {
	return e.dbType
}

// Adopt rewrites sqlite-style ? placeholders to postgres $N form. Placeholders
// inside single-quoted literals are left alone. Non-postgres engines get the
// query back unchanged.
func (e *SQL) Adopt(query string) string {
	if e.dbType != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	inQuote, n := false, 0
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MakeLock creates a new lock for the database engine
func (e *SQL) MakeLock() RWLocker {
	if e.dbType == Sqlite {
		return new(sync.RWMutex) // sqlite needs locking
	}
	return &NoopLocker{} // other engines don't need locking
}

// RWLocker is a read-write locker interface
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// NoopLocker is a no-op locker for engines with real concurrency support
type NoopLocker struct{}

// Lock is a no-op
func (NoopLocker) Lock() {}

// Unlock is a no-op
func (NoopLocker) Unlock() {}

// RLock is a no-op
func (NoopLocker) RLock() {}

// RUnlock is a no-op
func (NoopLocker) RUnlock() {}

func setSqlitePragma(db *sqlx.DB) error {
	pragmas := map[string]string{
		"journal_mode": "WAL",
		"synchronous":  "NORMAL",
		"busy_timeout": "5000",
		"foreign_keys": "ON",
	}
	for name, value := range pragmas {
		if _, err := db.Exec("PRAGMA " + name + " = " + value); err != nil {
			return fmt.Errorf("failed to set sqlite pragma %s: %w", name, err)
		}
	}
	return nil
}
