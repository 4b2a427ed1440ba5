package engine

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-pkgz/testutils/containers"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createAuditTable makes the events table matching the storage package schema
func createAuditTable(t *testing.T, db *SQL) {
	_, err := db.Exec(`CREATE TABLE events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		guild_id TEXT NOT NULL,
		channel_id TEXT DEFAULT '',
		user_id TEXT NOT NULL,
		score INTEGER DEFAULT 0,
		offense_count INTEGER DEFAULT 0,
		reasons TEXT DEFAULT '',
		action TEXT DEFAULT '',
		phase TEXT DEFAULT '',
		status TEXT DEFAULT '',
		detail TEXT DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_events_guild_time ON events(guild_id, created_at)`)
	require.NoError(t, err)
}

func insertAuditRow(t *testing.T, db *SQL, eventID, kind, guildID, userID string, score int, reasons interface{}, detail string) {
	_, err := db.Exec(`INSERT INTO events (event_id, kind, guild_id, user_id, score, reasons, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, eventID, kind, guildID, userID, score, reasons, detail)
	require.NoError(t, err)
}

func TestConverter_SqliteToPostgres(t *testing.T) {
	ctx := context.Background()

	db, err := NewSqlite(filepath.Join(t.TempDir(), "audit.db"), "gr1")
	require.NoError(t, err)
	defer db.Close()

	createAuditTable(t, db)
	insertAuditRow(t, db, "SEC-20250810120000-1a2b3c", "SEC", "guild1", "user1", 8, "phishing_domain", "malicious link removed")
	insertAuditRow(t, db, "SEC-20250810120100-4d5e6f", "SEC", "guild1", "user2", 5, "rapid_posting,duplicate_messages", "first line\nsecond\twith tab")
	insertAuditRow(t, db, "VER-20250810120200-7a8b9c", "VER", "guild1", "user3", 0, nil, "code issued")

	var buf bytes.Buffer
	converter := NewConverter(db)
	require.NoError(t, converter.SqliteToPostgres(ctx, &buf))

	result := buf.String()
	t.Logf("conversion result: %s", result)

	assert.Contains(t, result, "BEGIN;")
	assert.Contains(t, result, "COMMIT;")

	// schema conversion
	assert.Contains(t, result, "CREATE TABLE events")
	assert.Contains(t, result, "id SERIAL PRIMARY KEY")
	assert.Contains(t, result, "created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP")

	// data export, COPY columns follow DDL order
	assert.Contains(t, result, "COPY events (id, event_id, kind, guild_id, channel_id, user_id, score, "+
		"offense_count, reasons, action, phase, status, detail, created_at) FROM stdin;")
	assert.Contains(t, result, "SEC-20250810120000-1a2b3c")
	assert.Contains(t, result, "malicious link removed")
	assert.Contains(t, result, `first line\nsecond\twith tab`) // control characters escaped
	assert.Contains(t, result, `\N`)                           // NULL reasons
	assert.Contains(t, result, "\\.\n")

	// sequence catches up with the exported ids
	assert.Contains(t, result, "setval(pg_get_serial_sequence('events', 'id')")

	// explicit index converted, IF NOT EXISTS stripped
	assert.Contains(t, result, "CREATE INDEX idx_events_guild_time ON events(guild_id, created_at);")
	assert.NotContains(t, result, "IF NOT EXISTS")
}

func TestConverter_SqliteToPostgres_NonSqliteError(t *testing.T) {
	mockDB := &SQL{dbType: Postgres, gid: "gr1"}
	converter := NewConverter(mockDB)

	var buf bytes.Buffer
	err := converter.SqliteToPostgres(context.Background(), &buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source database must be SQLite")
}

func TestConverter_SqliteToPostgres_MissingTable(t *testing.T) {
	db, err := NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	defer db.Close()

	// no events table in the source, export should produce an empty script
	var buf bytes.Buffer
	require.NoError(t, NewConverter(db).SqliteToPostgres(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "CREATE TABLE")
	assert.Contains(t, buf.String(), "COMMIT;")
}

func TestConverter_ConvertTableSchema(t *testing.T) {
	converter := NewConverter(&SQL{})

	tests := []struct {
		name       string
		sqliteStmt string
		expected   string
	}{
		{
			name:       "autoincrement id",
			sqliteStmt: "CREATE TABLE test (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT)",
			expected:   "CREATE TABLE test (id SERIAL PRIMARY KEY, name TEXT)",
		},
		{
			name:       "datetime column",
			sqliteStmt: "CREATE TABLE test (created DATETIME DEFAULT CURRENT_TIMESTAMP)",
			expected:   "CREATE TABLE test (created TIMESTAMP DEFAULT CURRENT_TIMESTAMP)",
		},
		{
			name:       "blob column",
			sqliteStmt: "CREATE TABLE test (data BLOB)",
			expected:   "CREATE TABLE test (data BYTEA)",
		},
		{
			name:       "boolean defaults",
			sqliteStmt: "CREATE TABLE test (id INTEGER PRIMARY KEY AUTOINCREMENT, f1 BOOLEAN DEFAULT 0, f2 BOOLEAN DEFAULT 1)",
			expected:   "CREATE TABLE test (id SERIAL PRIMARY KEY, f1 BOOLEAN DEFAULT false, f2 BOOLEAN DEFAULT true)",
		},
		{
			name:       "events table shape",
			sqliteStmt: "CREATE TABLE events (id INTEGER PRIMARY KEY AUTOINCREMENT, event_id TEXT NOT NULL UNIQUE, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)",
			expected:   "CREATE TABLE events (id SERIAL PRIMARY KEY, event_id TEXT NOT NULL UNIQUE, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, converter.convertTableSchema(tt.sqliteStmt))
		})
	}
}

func TestConverter_ConvertIndexDefinition(t *testing.T) {
	converter := NewConverter(&SQL{})

	tests := []struct {
		name       string
		sqliteStmt string
		expected   string
	}{
		{
			name:       "strip if not exists",
			sqliteStmt: "CREATE INDEX IF NOT EXISTS idx_events_guild_time ON events(guild_id, created_at)",
			expected:   "CREATE INDEX idx_events_guild_time ON events(guild_id, created_at)",
		},
		{
			name:       "plain index unchanged",
			sqliteStmt: "CREATE INDEX idx_events_kind ON events(kind)",
			expected:   "CREATE INDEX idx_events_kind ON events(kind)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, converter.convertIndexDefinition(tt.sqliteStmt))
		})
	}
}

func TestConverter_FormatPostgresValue(t *testing.T) {
	converter := NewConverter(&SQL{})

	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "nil", value: nil, expected: `\N`},
		{name: "plain string", value: "test", expected: "test"},
		{name: "string with escapes", value: "test\nline\twith\rspecial\\chars", expected: `test\nline\twith\rspecial\\chars`},
		{name: "bytes", value: []byte("test\ndata"), expected: `test\ndata`},
		{name: "bool true", value: true, expected: "t"},
		{name: "bool false", value: false, expected: "f"},
		{name: "number", value: int64(42), expected: "42"},
		{name: "time", value: time.Date(2023, 5, 15, 10, 30, 0, 0, time.UTC), expected: "2023-05-15 10:30:00"},
		{name: "empty string", value: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, converter.formatPostgresValue(tt.value))
		})
	}
}

func TestConverter_ExportTableData_Empty(t *testing.T) {
	ctx := context.Background()

	db, err := NewSqlite(filepath.Join(t.TempDir(), "audit.db"), "gr1")
	require.NoError(t, err)
	defer db.Close()

	createAuditTable(t, db)

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	converter := NewConverter(db)
	columns, err := converter.getTableColumns(ctx, tx, "events")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "event_id", "kind", "guild_id", "channel_id", "user_id", "score",
		"offense_count", "reasons", "action", "phase", "status", "detail", "created_at"}, columns)

	// empty table produces no COPY block
	var buf bytes.Buffer
	require.NoError(t, converter.exportTableData(ctx, tx, &buf, "events", columns))
	assert.Equal(t, "", buf.String())
}

func TestSqliteToPostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pg := containers.NewPostgresTestContainerWithDB(ctx, t, "spamguard_test")
	defer pg.Close(ctx)

	// sqlite source with a couple of audit rows
	db, err := NewSqlite(filepath.Join(t.TempDir(), "audit.db"), "gr1")
	require.NoError(t, err)
	defer db.Close()

	createAuditTable(t, db)
	insertAuditRow(t, db, "SEC-20250810120000-1a2b3c", "SEC", "guild1", "user1", 8, "phishing_domain", "malicious link removed")
	insertAuditRow(t, db, "VER-20250810120100-4d5e6f", "VER", "guild1", "user2", 0, nil, "code issued")

	var buf bytes.Buffer
	require.NoError(t, NewConverter(db).SqliteToPostgres(ctx, &buf))
	t.Logf("generated script size: %d bytes", buf.Len())

	pgConn, err := sqlx.ConnectContext(ctx, "postgres", pg.ConnectionString())
	require.NoError(t, err)
	defer pgConn.Close()

	// clean state for the import
	_, err = pgConn.ExecContext(ctx, "DROP SCHEMA public CASCADE; CREATE SCHEMA public;")
	require.NoError(t, err)

	applyExportScript(ctx, t, pgConn, buf.String())

	var count int
	require.NoError(t, pgConn.GetContext(ctx, &count, "SELECT COUNT(*) FROM events"))
	assert.Equal(t, 2, count)

	var rec struct {
		EventID string `db:"event_id"`
		Kind    string `db:"kind"`
		Score   int    `db:"score"`
		Detail  string `db:"detail"`
	}
	err = pgConn.GetContext(ctx, &rec, "SELECT event_id, kind, score, detail FROM events WHERE user_id = 'user1'")
	require.NoError(t, err)
	assert.Equal(t, "SEC-20250810120000-1a2b3c", rec.EventID)
	assert.Equal(t, "SEC", rec.Kind)
	assert.Equal(t, 8, rec.Score)
	assert.Equal(t, "malicious link removed", rec.Detail)

	// NULL survives the round trip
	var nullCount int
	require.NoError(t, pgConn.GetContext(ctx, &nullCount, "SELECT COUNT(*) FROM events WHERE reasons IS NULL"))
	assert.Equal(t, 1, nullCount)

	// sequence continues after the imported ids
	var newID int64
	err = pgConn.GetContext(ctx, &newID,
		`INSERT INTO events (event_id, kind, guild_id, user_id) VALUES ('SEC-20250810120200-000000', 'SEC', 'guild1', 'user3') RETURNING id`)
	require.NoError(t, err)
	assert.Equal(t, int64(3), newID)

	// explicit index restored
	var idxCount int
	require.NoError(t, pgConn.GetContext(ctx, &idxCount,
		"SELECT COUNT(*) FROM pg_indexes WHERE tablename = 'events' AND indexname = 'idx_events_guild_time'"))
	assert.Equal(t, 1, idxCount)
}

// applyExportScript executes the generated script against postgres, replaying
// COPY blocks as regular inserts since the sql driver can't stream stdin data
func applyExportScript(ctx context.Context, t *testing.T, pgConn *sqlx.DB, script string) {
	lines := strings.Split(script, "\n")
	var stmt strings.Builder

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" || strings.HasPrefix(trimmed, "--") || trimmed == "BEGIN;" || trimmed == "COMMIT;" {
			continue
		}

		if strings.HasPrefix(trimmed, "COPY ") {
			fields := strings.Fields(trimmed)
			require.GreaterOrEqual(t, len(fields), 2, "malformed COPY header: %s", trimmed)
			table := fields[1]

			start := strings.Index(trimmed, "(")
			end := strings.LastIndex(trimmed, ")")
			require.True(t, start > 0 && end > start, "malformed COPY header: %s", trimmed)
			var columns []string
			for _, col := range strings.Split(trimmed[start+1:end], ",") {
				columns = append(columns, strings.TrimSpace(col))
			}

			for i++; i < len(lines) && lines[i] != `\.`; i++ {
				insertCopyRow(ctx, t, pgConn, table, columns, lines[i])
			}
			continue
		}

		stmt.WriteString(lines[i])
		stmt.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			_, err := pgConn.ExecContext(ctx, stmt.String())
			require.NoError(t, err, "failed to execute statement: %s", stmt.String())
			stmt.Reset()
		}
	}
}

// insertCopyRow converts one COPY text line to an insert statement
func insertCopyRow(ctx context.Context, t *testing.T, pgConn *sqlx.DB, table string, columns []string, line string) {
	fields := strings.Split(line, "\t")
	require.Len(t, fields, len(columns), "column count mismatch in line %q", line)

	unescape := strings.NewReplacer(`\\`, "\\", `\t`, "\t", `\n`, "\n", `\r`, "\r")
	args := make([]interface{}, len(fields))
	placeholders := make([]string, len(fields))
	for i, f := range fields {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if f == `\N` {
			args[i] = nil
			continue
		}
		args[i] = unescape.Replace(f)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	_, err := pgConn.ExecContext(ctx, query, args...)
	require.NoError(t, err)
}
