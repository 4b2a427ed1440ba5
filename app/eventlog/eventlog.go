// Package eventlog emits structured audit events for moderation and
// verification activity. Every event gets a unique id, renders as an embed in
// the tenant's log channel and optionally lands in the persistent audit store
// and a JSONL stream.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/spamguard/spamguard/lib/modcheck"
)

//go:generate moq --out sender_mock.go --skip-ensure --with-resets . Sender
//go:generate moq --out recorder_mock.go --skip-ensure --with-resets . Recorder

// embed colors, red for moderation and blue for verification
const (
	colorSecurity     = 0xE74C3C
	colorVerification = 0x3498DB
)

// caps in code points, not bytes
const (
	previewLimit = 300
	detailLimit  = 1000
)

// Sender posts an embed to a channel.
type Sender interface {
	SendEmbed(ctx context.Context, channelID string, embed Embed) error
}

// Recorder persists emitted events for later operator audit.
type Recorder interface {
	Save(ctx context.Context, rec Record) error
}

// Embed is a platform-neutral rich message. The platform adapter converts it to
// the wire shape.
type Embed struct {
	Title       string
	Description string
	Color       int
	Timestamp   time.Time
	AuthorName  string
	AuthorIcon  string
	Fields      []Field
}

// Field is a single embed field.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Record is the flat, machine-readable form of an event.
type Record struct {
	EventID      string    `json:"event_id"`
	Kind         string    `json:"kind"` // SEC or VER
	GuildID      string    `json:"guild_id"`
	ChannelID    string    `json:"channel_id,omitempty"`
	UserID       string    `json:"user_id"`
	Score        int       `json:"score,omitempty"`
	OffenseCount int       `json:"offense_count,omitempty"`
	Reasons      string    `json:"reasons,omitempty"` // comma-joined raw tags
	Action       string    `json:"action,omitempty"`
	Phase        string    `json:"phase,omitempty"`
	Status       string    `json:"status,omitempty"`
	Detail       string    `json:"detail,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Phase names a verification lifecycle step.
type Phase string

// verification phases
const (
	PhaseJoin    Phase = "join"
	PhaseVerify  Phase = "verify"
	PhaseResend  Phase = "resend"
	PhaseTimeout Phase = "timeout"
)

// SecurityEvent describes one enforcement pass over a message.
type SecurityEvent struct {
	GuildID      string
	LogChannelID string // empty skips the channel post
	ChannelID    string // origin channel
	UserID       string
	UserName     string
	UserIcon     string
	Content      string
	Score        int
	Reasons      []modcheck.Reason
	OffenseCount int
	Action       modcheck.Action
	DeleteStatus modcheck.Status
	ActionStatus modcheck.Status
	UnbanURL     string // rendered for ban actions only
}

// VerificationEvent describes one verification lifecycle step.
type VerificationEvent struct {
	GuildID      string
	LogChannelID string // empty skips the channel post
	UserID       string
	Phase        Phase
	Status       modcheck.Status
	Detail       string
}

// Params defines the logger dependencies, only Sender is required.
type Params struct {
	Sender   Sender
	Recorder Recorder  // optional persistent audit store
	Stream   io.Writer // optional JSONL stream
}

// Logger builds and routes audit events.
type Logger struct {
	Params
	nowFn func() time.Time
}

// New makes a Logger with the given sinks.
func New(p Params) *Logger {
	return &Logger{Params: p, nowFn: time.Now}
}

// Security emits a SEC event and returns its id. Channel delivery failures are
// recorded and swallowed, the id is returned regardless.
func (l *Logger) Security(ctx context.Context, ev SecurityEvent) string {
	now := l.nowFn().UTC()
	eventID := makeID("SEC", now)

	if err := l.record(ctx, Record{
		EventID:      eventID,
		Kind:         "SEC",
		GuildID:      ev.GuildID,
		ChannelID:    ev.ChannelID,
		UserID:       ev.UserID,
		Score:        ev.Score,
		OffenseCount: ev.OffenseCount,
		Reasons:      joinReasons(ev.Reasons),
		Action:       string(ev.Action),
		Status:       string(ev.ActionStatus),
		Detail:       truncate(strings.TrimSpace(ev.Content), previewLimit),
		Timestamp:    now,
	}); err != nil {
		log.Printf("[WARN] failed to record security event %s: %v", eventID, err)
	}

	if ev.LogChannelID == "" {
		return eventID
	}

	embed := Embed{
		Title:       "Security Event",
		Description: "自動モデレーションを実行しました。",
		Color:       colorSecurity,
		Timestamp:   now,
		AuthorName:  ev.UserName,
		AuthorIcon:  ev.UserIcon,
		Fields: []Field{
			{Name: "event_id", Value: eventID},
			{Name: "対象ユーザー", Value: fmt.Sprintf("<@%s>\n`%s`", ev.UserID, ev.UserID), Inline: true},
			{Name: "スコア", Value: fmt.Sprintf("%d", ev.Score), Inline: true},
			{Name: "違反累積", Value: fmt.Sprintf("%d", ev.OffenseCount), Inline: true},
			{Name: "理由", Value: FormatReasons(ev.Reasons)},
			{Name: "処分", Value: FormatAction(ev.Action), Inline: true},
			{Name: "削除結果", Value: FormatStatus(ev.DeleteStatus), Inline: true},
			{Name: "処分結果", Value: FormatStatus(ev.ActionStatus), Inline: true},
			{Name: "投稿チャンネル", Value: fmt.Sprintf("<#%s>", ev.ChannelID), Inline: true},
			{Name: "投稿内容(先頭300文字)", Value: preview(ev.Content)},
		},
	}
	if ev.Action == modcheck.ActionBan && ev.UnbanURL != "" {
		embed.Fields = append(embed.Fields, Field{Name: "BAN解除", Value: ev.UnbanURL})
	}

	if err := l.Sender.SendEmbed(ctx, ev.LogChannelID, embed); err != nil {
		log.Printf("[WARN] failed to send security event %s to channel %s: %v", eventID, ev.LogChannelID, err)
	}
	return eventID
}

// Verification emits a VER event and returns its id.
func (l *Logger) Verification(ctx context.Context, ev VerificationEvent) string {
	now := l.nowFn().UTC()
	eventID := makeID("VER", now)

	if err := l.record(ctx, Record{
		EventID:   eventID,
		Kind:      "VER",
		GuildID:   ev.GuildID,
		UserID:    ev.UserID,
		Phase:     string(ev.Phase),
		Status:    string(ev.Status),
		Detail:    truncate(ev.Detail, detailLimit),
		Timestamp: now,
	}); err != nil {
		log.Printf("[WARN] failed to record verification event %s: %v", eventID, err)
	}

	if ev.LogChannelID == "" {
		return eventID
	}

	embed := Embed{
		Title:       "Verification Event",
		Description: "入室認証フローイベント",
		Color:       colorVerification,
		Timestamp:   now,
		Fields: []Field{
			{Name: "event_id", Value: eventID},
			{Name: "フェーズ", Value: string(ev.Phase), Inline: true},
			{Name: "結果", Value: FormatStatus(ev.Status), Inline: true},
			{Name: "対象", Value: fmt.Sprintf("<@%s>\n`%s`", ev.UserID, ev.UserID), Inline: true},
			{Name: "詳細", Value: truncate(ev.Detail, detailLimit)},
		},
	}

	if err := l.Sender.SendEmbed(ctx, ev.LogChannelID, embed); err != nil {
		log.Printf("[WARN] failed to send verification event %s to channel %s: %v", eventID, ev.LogChannelID, err)
	}
	return eventID
}

// record routes the flat form to the optional sinks. Both sinks are attempted
// even when one fails, failures come back aggregated.
func (l *Logger) record(ctx context.Context, rec Record) error {
	errs := new(multierror.Error)
	if l.Recorder != nil {
		if err := l.Recorder.Save(ctx, rec); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to persist event: %w", err))
		}
	}
	if l.Stream != nil {
		if err := json.NewEncoder(l.Stream).Encode(rec); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to stream event: %w", err))
		}
	}
	return errs.ErrorOrNil()
}

// makeID builds "<prefix>-<UTC second stamp>-<6 hex>", unique with overwhelming
// probability within a second.
func makeID(prefix string, now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%s-%x", prefix, now.UTC().Format("20060102150405"), u[:3])
}

// preview renders message content for the embed: trimmed, placeholder when
// empty, capped with an ellipsis marker.
func preview(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return "(本文なし)"
	}
	runes := []rune(content)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return content
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func joinReasons(reasons []modcheck.Reason) string {
	if len(reasons) == 0 {
		return ""
	}
	strs := make([]string, len(reasons))
	for i, r := range reasons {
		strs[i] = string(r)
	}
	return strings.Join(strs, ",")
}
