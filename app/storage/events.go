// Package storage keeps the persistent audit trail of emitted events. Each
// table is represented by a struct working through the dialect-aware engine, so
// the same store runs on sqlite and postgres.
package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spamguard/spamguard/app/eventlog"
	"github.com/spamguard/spamguard/app/storage/engine"
)

// Events is a storage for emitted audit events. It implements
// eventlog.Recorder and is a sink only, moderation decisions never read it
// back.
type Events struct {
	*engine.SQL
	engine.RWLocker
}

// EventRecord is the database shape of one audit event
type EventRecord struct {
	ID           int64     `db:"id"`
	EventID      string    `db:"event_id"`
	Kind         string    `db:"kind"`
	GuildID      string    `db:"guild_id"`
	ChannelID    string    `db:"channel_id"`
	UserID       string    `db:"user_id"`
	Score        int       `db:"score"`
	OffenseCount int       `db:"offense_count"`
	Reasons      string    `db:"reasons"`
	Action       string    `db:"action"`
	Phase        string    `db:"phase"`
	Status       string    `db:"status"`
	Detail       string    `db:"detail"`
	CreatedAt    time.Time `db:"created_at"`
}

// all events queries
const (
	CmdCreateEventsTable engine.DBCmd = iota
	CmdCreateEventsIndexes
	CmdAddEvent
)

// queries holds all events queries
var eventsQueries = engine.NewQueryMap().
	Add(CmdCreateEventsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS events (
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
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
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
		)`,
	}).
	AddSame(CmdCreateEventsIndexes, `
		CREATE INDEX IF NOT EXISTS idx_events_guild_time ON events(guild_id, created_at)
	`).
	Add(CmdAddEvent, engine.Query{
		Sqlite: `INSERT INTO events (event_id, kind, guild_id, channel_id, user_id, score, offense_count,
			reasons, action, phase, status, detail, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		Postgres: `INSERT INTO events (event_id, kind, guild_id, channel_id, user_id, score, offense_count,
			reasons, action, phase, status, detail, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
	})

// NewEvents creates events store and initializes the table
func NewEvents(ctx context.Context, db *engine.SQL) (*Events, error) {
	if db == nil {
		return nil, fmt.Errorf("no db provided")
	}

	res := &Events{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "events",
		CreateTable:   CmdCreateEventsTable,
		CreateIndexes: CmdCreateEventsIndexes,
		QueriesMap:    eventsQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init events table: %w", err)
	}
	return res, nil
}

// Save adds a new audit event row. Zero timestamp is filled with the current
// time.
func (e *Events) Save(ctx context.Context, rec eventlog.Record) error {
	if rec.EventID == "" {
		return fmt.Errorf("event id is empty")
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	e.Lock()
	defer e.Unlock()

	query, err := eventsQueries.Pick(e.Type(), CmdAddEvent)
	if err != nil {
		return fmt.Errorf("failed to get insert query: %w", err)
	}
	_, err = e.ExecContext(ctx, query, rec.EventID, rec.Kind, rec.GuildID, rec.ChannelID, rec.UserID,
		rec.Score, rec.OffenseCount, rec.Reasons, rec.Action, rec.Phase, rec.Status, rec.Detail, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert event %s: %w", rec.EventID, err)
	}
	return nil
}

// Recent returns up to limit newest events for the guild, newest first
func (e *Events) Recent(ctx context.Context, guildID string, limit int) ([]eventlog.Record, error) {
	if limit <= 0 {
		limit = 100
	}

	e.RLock()
	defer e.RUnlock()

	var rows []EventRecord
	query := e.Adopt(`SELECT id, event_id, kind, guild_id, channel_id, user_id, score, offense_count,
		reasons, action, phase, status, detail, created_at
		FROM events WHERE guild_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`)
	if err := e.SelectContext(ctx, &rows, query, guildID, limit); err != nil {
		return nil, fmt.Errorf("failed to get events for guild %s: %w", guildID, err)
	}

	res := make([]eventlog.Record, len(rows))
	for i, r := range rows {
		res[i] = r.asRecord()
	}
	return res, nil
}

// CountSince returns the number of events for the guild since the given time.
// Empty kind counts all kinds.
func (e *Events) CountSince(ctx context.Context, guildID, kind string, since time.Time) (int, error) {
	e.RLock()
	defer e.RUnlock()

	var count int
	if kind == "" {
		query := e.Adopt("SELECT COUNT(*) FROM events WHERE guild_id = ? AND created_at >= ?")
		if err := e.GetContext(ctx, &count, query, guildID, since); err != nil {
			return 0, fmt.Errorf("failed to count events for guild %s: %w", guildID, err)
		}
		return count, nil
	}

	query := e.Adopt("SELECT COUNT(*) FROM events WHERE guild_id = ? AND kind = ? AND created_at >= ?")
	if err := e.GetContext(ctx, &count, query, guildID, kind, since); err != nil {
		return 0, fmt.Errorf("failed to count %s events for guild %s: %w", kind, guildID, err)
	}
	return count, nil
}

// Cleanup removes events older than the keep duration
func (e *Events) Cleanup(ctx context.Context, keep time.Duration) error {
	e.Lock()
	defer e.Unlock()

	cutoff := time.Now().Add(-keep)
	query := e.Adopt("DELETE FROM events WHERE created_at < ?")
	res, err := e.ExecContext(ctx, query, cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup events: %w", err)
	}
	if count, err := res.RowsAffected(); err == nil && count > 0 {
		log.Printf("[INFO] cleaned up %d events older than %v", count, keep)
	}
	return nil
}

func (r EventRecord) asRecord() eventlog.Record {
	return eventlog.Record{
		EventID:      r.EventID,
		Kind:         r.Kind,
		GuildID:      r.GuildID,
		ChannelID:    r.ChannelID,
		UserID:       r.UserID,
		Score:        r.Score,
		OffenseCount: r.OffenseCount,
		Reasons:      r.Reasons,
		Action:       r.Action,
		Phase:        r.Phase,
		Status:       r.Status,
		Detail:       r.Detail,
		Timestamp:    r.CreatedAt.Local(),
	}
}
