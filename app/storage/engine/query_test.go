package engine

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryMap_Pick(t *testing.T) {
	const (
		cmdCreate DBCmd = iota
		cmdInsert
		cmdMissing
	)

	qm := NewQueryMap().
		Add(cmdCreate, Query{Sqlite: "CREATE sqlite", Postgres: "CREATE pg"}).
		AddSame(cmdInsert, "INSERT shared")

	t.Run("dialect specific", func(t *testing.T) {
		q, err := qm.Pick(Sqlite, cmdCreate)
		require.NoError(t, err)
		assert.Equal(t, "CREATE sqlite", q)

		q, err = qm.Pick(Postgres, cmdCreate)
		require.NoError(t, err)
		assert.Equal(t, "CREATE pg", q)
	})

	t.Run("shared query", func(t *testing.T) {
		q, err := qm.Pick(Sqlite, cmdInsert)
		require.NoError(t, err)
		assert.Equal(t, "INSERT shared", q)

		q, err = qm.Pick(Postgres, cmdInsert)
		require.NoError(t, err)
		assert.Equal(t, "INSERT shared", q)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := qm.Pick(Sqlite, cmdMissing)
		assert.ErrorContains(t, err, "unsupported command type")
	})

	t.Run("unknown dialect", func(t *testing.T) {
		_, err := qm.Pick(Unknown, cmdCreate)
		assert.ErrorContains(t, err, "unsupported database type")
	})
}

func TestInitTable(t *testing.T) {
	const (
		cmdCreateTable DBCmd = iota + 500
		cmdCreateIndexes
	)
	qm := NewQueryMap().
		AddSame(cmdCreateTable, "CREATE TABLE IF NOT EXISTS things (id INTEGER PRIMARY KEY, name TEXT)").
		AddSame(cmdCreateIndexes, "CREATE INDEX IF NOT EXISTS idx_things_name ON things(name)")

	t.Run("creates table and indexes", func(t *testing.T) {
		db, err := NewSqlite(":memory:", "gr1")
		require.NoError(t, err)
		defer db.Close()

		cfg := TableConfig{Name: "things", CreateTable: cmdCreateTable, CreateIndexes: cmdCreateIndexes, QueriesMap: qm}
		require.NoError(t, InitTable(context.Background(), db, cfg))

		// second run is a no-op thanks to IF NOT EXISTS
		require.NoError(t, InitTable(context.Background(), db, cfg))

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM things"))
		assert.Equal(t, 0, count)
	})

	t.Run("migrate func runs", func(t *testing.T) {
		db, err := NewSqlite(":memory:", "gr1")
		require.NoError(t, err)
		defer db.Close()

		migrated := false
		cfg := TableConfig{
			Name: "things", CreateTable: cmdCreateTable, CreateIndexes: cmdCreateIndexes, QueriesMap: qm,
			MigrateFunc: func(ctx context.Context, tx *sqlx.Tx, gid string) error {
				migrated = true
				assert.Equal(t, "gr1", gid)
				return nil
			},
		}
		require.NoError(t, InitTable(context.Background(), db, cfg))
		assert.True(t, migrated)
	})

	t.Run("nil db", func(t *testing.T) {
		cfg := TableConfig{Name: "things", CreateTable: cmdCreateTable, CreateIndexes: cmdCreateIndexes, QueriesMap: qm}
		assert.ErrorContains(t, InitTable(context.Background(), nil, cfg), "db connection is nil")
	})

	t.Run("missing query", func(t *testing.T) {
		db, err := NewSqlite(":memory:", "gr1")
		require.NoError(t, err)
		defer db.Close()

		cfg := TableConfig{Name: "things", CreateTable: DBCmd(999), CreateIndexes: cmdCreateIndexes, QueriesMap: qm}
		assert.ErrorContains(t, InitTable(context.Background(), db, cfg), "failed to get create table query")
	})
}
