package engine

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Converter exports the audit database in postgres format. The produced script
// recreates the schema, loads the data with COPY and restores indices, so an
// operator can move the audit trail from the default sqlite file to a shared
// postgres instance without losing history.
type Converter struct {
	db *SQL
}

// NewConverter creates a converter reading from the given engine
func NewConverter(db *SQL) *Converter {
	return &Converter{db: db}
}

// ddlReplacer maps the sqlite column types of the audit schema to their
// postgres equivalents, applied to CREATE TABLE statements in one pass
var ddlReplacer = strings.NewReplacer(
	"INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY",
	"DATETIME", "TIMESTAMP",
	"BLOB", "BYTEA",
	"BOOLEAN DEFAULT 0", "BOOLEAN DEFAULT false",
	"BOOLEAN DEFAULT 1", "BOOLEAN DEFAULT true",
)

// SqliteToPostgres writes a psql-compatible restore script for the audit
// tables to w. The source engine must be sqlite.
func (c *Converter) SqliteToPostgres(ctx context.Context, w io.Writer) error {
	if c.db.dbType != Sqlite {
		return fmt.Errorf("source database must be SQLite, got %s", c.db.dbType)
	}

	// one transaction keeps the export consistent while the service runs
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start export transaction: %w", err)
	}
	defer tx.Rollback()

	sw := &scriptWriter{w: w}
	sw.printf("-- sqlite to postgres export of the audit trail\n-- generated: %s\n-- gid: %s\n\n",
		time.Now().Format(time.RFC3339), c.db.gid)
	sw.printf("BEGIN;\n\n")
	if sw.err != nil {
		return fmt.Errorf("failed to write export script: %w", sw.err)
	}

	// the audit schema is a single events table, sources predating it produce
	// an empty script
	for _, table := range []string{"events"} {
		var present int
		if err := tx.GetContext(ctx, &present,
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table); err != nil {
			return fmt.Errorf("failed to probe table %s: %w", table, err)
		}
		if present == 0 {
			continue
		}
		if err := c.convertTable(ctx, tx, w, table); err != nil {
			return err
		}
	}

	sw.printf("COMMIT;\n")
	if sw.err != nil {
		return fmt.Errorf("failed to write export script: %w", sw.err)
	}
	return nil
}

// convertTable exports one table as schema, COPY data, sequence reset and indices
func (c *Converter) convertTable(ctx context.Context, tx *sqlx.Tx, w io.Writer, table string) error {
	var ddl string
	if err := tx.GetContext(ctx, &ddl,
		fmt.Sprintf("SELECT sql FROM sqlite_master WHERE type='table' AND name='%s'", table)); err != nil {
		return fmt.Errorf("failed to read schema of table %s: %w", table, err)
	}

	columns, err := c.getTableColumns(ctx, tx, table)
	if err != nil {
		return err
	}

	sw := &scriptWriter{w: w}
	sw.printf("%s;\n\n", c.convertTableSchema(ddl))
	if sw.err != nil {
		return fmt.Errorf("failed to write schema of %s: %w", table, sw.err)
	}

	if err := c.exportTableData(ctx, tx, w, table, columns); err != nil {
		return err
	}

	// COPY with explicit ids leaves the serial sequence behind, catch it up
	sw.printf("SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1));\n\n",
		table, table)

	if err := c.convertIndices(ctx, tx, w, table); err != nil {
		return err
	}

	sw.printf("\n")
	if sw.err != nil {
		return fmt.Errorf("failed to write export of %s: %w", table, sw.err)
	}
	return nil
}

// convertTableSchema rewrites a sqlite CREATE TABLE statement in postgres
// syntax. The audit schema shares almost all of its DDL between the dialects,
// only the autoincrement id and a few type names differ.
func (c *Converter) convertTableSchema(sqliteStmt string) string {
	return ddlReplacer.Replace(sqliteStmt)
}

// getTableColumns returns the column names of a sqlite table in DDL order
func (c *Converter) getTableColumns(ctx context.Context, tx *sqlx.Tx, table string) ([]string, error) {
	var columns []string
	query := fmt.Sprintf("SELECT name FROM pragma_table_info('%s') ORDER BY cid", table)
	if err := tx.SelectContext(ctx, &columns, query); err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}
	return columns, nil
}

// exportTableData writes table rows in postgres COPY text format. The COPY
// header is delayed until the first row so an empty table produces nothing.
func (c *Converter) exportTableData(ctx context.Context, tx *sqlx.Tx, w io.Writer, table string, columns []string) error {
	rows, err := tx.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return fmt.Errorf("failed to read rows of %s: %w", table, err)
	}
	defer rows.Close()

	sw := &scriptWriter{w: w}
	exported := 0
	for rows.Next() {
		// SELECT * follows DDL order, the same order getTableColumns returns
		vals, serr := rows.SliceScan()
		if serr != nil {
			return fmt.Errorf("failed to scan row of %s: %w", table, serr)
		}
		if len(vals) != len(columns) {
			return fmt.Errorf("table %s has %d columns but the row came with %d values", table, len(columns), len(vals))
		}

		if exported == 0 {
			sw.printf("-- data for table %s\nCOPY %s (%s) FROM stdin;\n", table, table, strings.Join(columns, ", "))
		}
		fields := make([]string, len(vals))
		for i, v := range vals {
			fields[i] = c.formatPostgresValue(v)
		}
		sw.printf("%s\n", strings.Join(fields, "\t"))
		exported++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate rows of %s: %w", table, err)
	}

	if exported > 0 {
		sw.printf("\\.\n\n")
	}
	if sw.err != nil {
		return fmt.Errorf("failed to write data of %s: %w", table, sw.err)
	}
	return nil
}

// convertIndices writes postgres versions of the table's explicit indices.
// Implicit indices backing UNIQUE constraints have no sql in sqlite_master and
// are recreated by the table DDL itself.
func (c *Converter) convertIndices(ctx context.Context, tx *sqlx.Tx, w io.Writer, table string) error {
	var defs []string
	query := fmt.Sprintf("SELECT sql FROM sqlite_master WHERE type='index' AND tbl_name='%s' AND sql IS NOT NULL", table)
	if err := tx.SelectContext(ctx, &defs, query); err != nil {
		return fmt.Errorf("failed to read indices of %s: %w", table, err)
	}

	sw := &scriptWriter{w: w}
	for _, def := range defs {
		sw.printf("%s;\n", c.convertIndexDefinition(def))
	}
	if sw.err != nil {
		return fmt.Errorf("failed to write indices of %s: %w", table, sw.err)
	}
	return nil
}

// convertIndexDefinition rewrites a sqlite CREATE INDEX statement in postgres
// syntax, older postgres doesn't support IF NOT EXISTS on indices
func (c *Converter) convertIndexDefinition(sqliteStmt string) string {
	return strings.ReplaceAll(sqliteStmt, "IF NOT EXISTS ", "")
}

// formatPostgresValue renders a single value in COPY text format
func (c *Converter) formatPostgresValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return `\N`
	case []byte:
		return escapeCopyText(string(v))
	case string:
		return escapeCopyText(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case bool:
		if v {
			return "t"
		}
		return "f"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// escapeCopyText escapes backslash and control characters per the COPY text format
func escapeCopyText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}

// scriptWriter carries the first write failure so export code can emit script
// fragments without checking every write
type scriptWriter struct {
	w   io.Writer
	err error
}

func (sw *scriptWriter) printf(format string, args ...interface{}) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}
