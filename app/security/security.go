// Package security runs the per-tenant moderation pipeline: every guild
// message is scored by the tenant's detector and, when the score crosses the
// configured threshold or carries a forced reason, the message is deleted, the
// escalation action applied and a security event emitted.
package security

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"sync"
	"time"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/app/eventlog"
	"github.com/spamguard/spamguard/lib/modcheck"
	"github.com/spamguard/spamguard/lib/spamguard"
)

//go:generate moq --out adapter_mock.go --skip-ensure --with-resets . Adapter
//go:generate moq --out logger_mock.go --skip-ensure --with-resets . EventLogger

// Message is the caller-resolved view of one guild message.
type Message struct {
	GuildID   string
	ChannelID string
	MessageID string

	UserID   string
	UserName string
	UserIcon string
	Bot      bool
	Admin    bool // administrator or manage-server permission
	RoleIDs  []string

	Content          string
	Mentions         int
	CreatedAt        time.Time
	AccountCreatedAt time.Time
	JoinedAt         time.Time // zero when the member cache has no entry
}

// Outcome reports what the pipeline did with a message. Enforced false means
// the message was left alone, score and reasons are still filled in.
type Outcome struct {
	Enforced     bool
	Score        int
	Reasons      []modcheck.Reason
	Action       modcheck.Action
	OffenseCount int
	DeleteStatus modcheck.Status
	ActionStatus modcheck.Status
	EventID      string
}

// Adapter abstracts the platform moderation calls.
type Adapter interface {
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	SendMessage(ctx context.Context, channelID, text string) error
	TimeoutMember(ctx context.Context, guildID, userID string, d time.Duration, reason string) error
	BanMember(ctx context.Context, guildID, userID, reason string) error
}

// Configs provides tenant configuration with change tracking.
type Configs interface {
	Guild(gid string) config.GuildConfig
	Revision(gid string) int64
}

// EventLogger emits security audit events.
type EventLogger interface {
	Security(ctx context.Context, ev eventlog.SecurityEvent) string
}

// Params defines security runtime dependencies.
type Params struct {
	Adapter   Adapter
	Configs   Configs
	Logger    EventLogger
	UnbanLink func(guildID, userID string) string // optional, rendered on ban events
}

// Runtime owns one detector per tenant and applies enforcement decisions.
type Runtime struct {
	Params
	guards map[string]*guard
	lock   sync.Mutex
}

// guard pins a tenant's detector to the configuration it was built from.
// Sliding-window state survives config revisions that leave the scoring
// parameters untouched, e.g. the verification flow persisting role ids.
type guard struct {
	detector *spamguard.Detector
	rev      int64
	proj     spamguard.Config
}

// NewRuntime makes a security runtime with the given dependencies.
func NewRuntime(p Params) *Runtime {
	return &Runtime{Params: p, guards: map[string]*guard{}}
}

// HandleMessage scores the message and enforces when the score reaches the
// tenant threshold or a forced reason is present. Enforcement deletes the
// message, applies the escalation action from the offense ledger and emits a
// security event. Platform failures degrade to statuses, never to errors.
func (r *Runtime) HandleMessage(ctx context.Context, msg Message) Outcome {
	if msg.Bot || msg.Admin {
		return Outcome{}
	}

	cfg := r.Configs.Guild(msg.GuildID)
	if cfg.Exempt(msg.ChannelID, msg.UserID, msg.RoleIDs) {
		return Outcome{}
	}

	det := r.guardFor(msg.GuildID, cfg)
	res := det.Score(modcheck.Snapshot{
		UserID:           msg.UserID,
		Content:          msg.Content,
		Mentions:         msg.Mentions,
		CreatedAt:        msg.CreatedAt,
		AccountCreatedAt: msg.AccountCreatedAt,
		JoinedAt:         msg.JoinedAt,
	})

	if res.Score < cfg.ScoreThreshold && !res.Forced() {
		return Outcome{Score: res.Score, Reasons: res.Reasons}
	}

	offense := det.Decide(msg.UserID, msg.CreatedAt)

	deleteStatus := modcheck.StatusOK
	if err := r.Adapter.DeleteMessage(ctx, msg.ChannelID, msg.MessageID); err != nil {
		log.Printf("[WARN] can't delete message %s in channel %s: %v", msg.MessageID, msg.ChannelID, err)
		deleteStatus = modcheck.StatusOf(err)
	}

	actionStatus := r.performAction(ctx, msg, cfg, offense.Action)

	unban := ""
	if offense.Action == modcheck.ActionBan && r.UnbanLink != nil {
		unban = r.UnbanLink(msg.GuildID, msg.UserID)
	}

	eventID := r.Logger.Security(ctx, eventlog.SecurityEvent{
		GuildID:      msg.GuildID,
		LogChannelID: cfg.LogChannelID.String(),
		ChannelID:    msg.ChannelID,
		UserID:       msg.UserID,
		UserName:     msg.UserName,
		UserIcon:     msg.UserIcon,
		Content:      msg.Content,
		Score:        res.Score,
		Reasons:      res.Reasons,
		OffenseCount: offense.Count,
		Action:       offense.Action,
		DeleteStatus: deleteStatus,
		ActionStatus: actionStatus,
		UnbanURL:     unban,
	})

	log.Printf("[INFO] enforced %s on user %s in guild %s, score %d, offenses %d, event %s",
		offense.Action, msg.UserID, msg.GuildID, res.Score, offense.Count, eventID)

	return Outcome{
		Enforced:     true,
		Score:        res.Score,
		Reasons:      res.Reasons,
		Action:       offense.Action,
		OffenseCount: offense.Count,
		DeleteStatus: deleteStatus,
		ActionStatus: actionStatus,
		EventID:      eventID,
	}
}

// HandleJoin records a member join in the tenant's raid tracker.
func (r *Runtime) HandleJoin(guildID, userID string, joinedAt time.Time) {
	cfg := r.Configs.Guild(guildID)
	r.guardFor(guildID, cfg).RegisterJoin(userID, joinedAt)
}

// OffenseCount returns the user's current offense count without recording one.
func (r *Runtime) OffenseCount(guildID, userID string, now time.Time) int {
	cfg := r.Configs.Guild(guildID)
	return r.guardFor(guildID, cfg).OffenseCount(userID, now)
}

// guardFor returns the tenant's detector, rebuilding it only when the scoring
// parameters actually changed since it was built.
func (r *Runtime) guardFor(guildID string, cfg config.GuildConfig) *spamguard.Detector {
	rev := r.Configs.Revision(guildID)
	proj := cfg.Detector()

	r.lock.Lock()
	defer r.lock.Unlock()

	g, ok := r.guards[guildID]
	if !ok {
		g = &guard{detector: spamguard.NewDetector(proj), rev: rev, proj: proj}
		r.guards[guildID] = g
		return g.detector
	}

	if g.rev != rev {
		if !reflect.DeepEqual(g.proj, proj) {
			log.Printf("[INFO] scoring config changed for guild %s, detector rebuilt", guildID)
			g.detector = spamguard.NewDetector(proj)
			g.proj = proj
		}
		g.rev = rev
	}
	return g.detector
}

// performAction applies the escalation decision. A failed warning send is an
// http error regardless of the cause, member actions keep the full status.
func (r *Runtime) performAction(ctx context.Context, msg Message, cfg config.GuildConfig, action modcheck.Action) modcheck.Status {
	switch action {
	case modcheck.ActionWarn:
		text := fmt.Sprintf("<@%s> スパム/セキュリティ違反を検知しました。", msg.UserID)
		if err := r.Adapter.SendMessage(ctx, msg.ChannelID, text); err != nil {
			log.Printf("[WARN] can't send warning to channel %s: %v", msg.ChannelID, err)
			return modcheck.StatusHTTPError
		}
		return modcheck.StatusOK
	case modcheck.ActionTimeout:
		d := time.Duration(cfg.TimeoutMinutes) * time.Minute
		if err := r.Adapter.TimeoutMember(ctx, msg.GuildID, msg.UserID, d, "SpamGuard security auto-moderation"); err != nil {
			log.Printf("[WARN] can't timeout user %s in guild %s: %v", msg.UserID, msg.GuildID, err)
			return modcheck.StatusOf(err)
		}
		return modcheck.StatusOK
	case modcheck.ActionBan:
		if err := r.Adapter.BanMember(ctx, msg.GuildID, msg.UserID, "SpamGuard security escalation"); err != nil {
			log.Printf("[WARN] can't ban user %s in guild %s: %v", msg.UserID, msg.GuildID, err)
			return modcheck.StatusOf(err)
		}
		return modcheck.StatusOK
	default:
		return modcheck.StatusNotAttempted
	}
}
