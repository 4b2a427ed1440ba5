// Package verify runs the join verification flow: new members get an
// Unverified role, a DM with a one-time code and a limited view of the server
// until they enter the code in the verify channel. Sessions expire on a timer
// and the configured fail action is applied.
package verify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/app/eventlog"
	"github.com/spamguard/spamguard/lib/modcheck"
)

//go:generate moq --out adapter_mock.go --skip-ensure --with-resets . Adapter
//go:generate moq --out logger_mock.go --skip-ensure --with-resets . EventLogger

// Member is the caller-resolved view of a joining or verifying guild member.
type Member struct {
	GuildID   string
	UserID    string
	GuildName string
	Bot       bool
	Admin     bool // administrator or manage-server permission
}

// Channel is the adapter's view of a guild channel.
type Channel struct {
	ID              string
	Name            string
	EveryoneCanView bool
}

// Perm is a tri-state channel permission: inherit, allow or deny.
type Perm int

// permission states
const (
	PermInherit Perm = iota
	PermAllow
	PermDeny
)

// Permissions is a tri-state overwrite for the permission bits the
// verification flow manages. Inherit bits keep the channel's own setting.
type Permissions struct {
	View        Perm
	Send        Perm
	History     Perm
	Connect     Perm
	AppCommands Perm
	ManageMsgs  Perm
}

// TargetKind selects what a permission overwrite applies to.
type TargetKind int

// overwrite targets
const (
	TargetRole TargetKind = iota
	TargetMember
	TargetEveryone
)

// Target identifies the subject of a permission overwrite.
type Target struct {
	Kind TargetKind
	ID   string // role or member id, ignored for everyone
}

// Overwrite pairs a target with its permissions, used on channel creation.
type Overwrite struct {
	Target Target
	Perms  Permissions
}

// Adapter abstracts the platform operations the verification flow needs.
// Reads come from the adapter's state cache, mutations hit the API.
type Adapter interface {
	RoleExists(guildID, roleID string) bool
	RoleByName(guildID, name string) string // empty when not found
	CreateRole(ctx context.Context, guildID, name, reason string) (string, error)
	AddRole(ctx context.Context, guildID, userID, roleID, reason string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID, reason string) error
	MemberRoles(guildID, userID string) ([]string, bool)

	Channel(guildID, channelID string) (Channel, bool)
	ChannelByName(guildID, name string) (Channel, bool)
	Channels(guildID string) []Channel
	CreateChannel(ctx context.Context, guildID, name string, overwrites []Overwrite, reason string) (Channel, error)
	SetPermission(ctx context.Context, channelID string, target Target, perms *Permissions, reason string) error
	BotUserID() string

	SendDM(ctx context.Context, userID, text string) error
	SendMessage(ctx context.Context, channelID, text string) error
	KickMember(ctx context.Context, guildID, userID, reason string) error
	TimeoutMember(ctx context.Context, guildID, userID string, d time.Duration, reason string) error
}

// Configs provides tenant configuration and persists discovered role and
// channel ids.
type Configs interface {
	Guild(gid string) config.GuildConfig
	Update(gid string, fn func(g *config.GuildConfig)) error
}

// EventLogger emits verification audit events.
type EventLogger interface {
	Verification(ctx context.Context, ev eventlog.VerificationEvent) string
}

// names of the auto-managed roles and channel
const (
	unverifiedRoleName = "Unverified"
	verifiedRoleName   = "Verified"
	verifyChannelName  = "verify"
)

const defaultRetryDelay = 120 * time.Second

// Params defines verification manager dependencies.
type Params struct {
	Adapter    Adapter
	Configs    Configs
	Logger     EventLogger
	RetryDelay time.Duration // delay before retrying a failed permission call, 120s when zero
}

// Manager owns the per-member verification sessions and their expiry timers.
type Manager struct {
	Params
	sessions map[sessionKey]*session
	timers   map[sessionKey]*time.Timer
	nowFn    func() time.Time
	lock     sync.Mutex
}

// NewManager makes a verification manager with the given dependencies.
func NewManager(p Params) *Manager {
	if p.RetryDelay == 0 {
		p.RetryDelay = defaultRetryDelay
	}
	return &Manager{
		Params:   p,
		sessions: map[sessionKey]*session{},
		timers:   map[sessionKey]*time.Timer{},
		nowFn:    time.Now,
	}
}

// HandleJoin starts the verification flow for a new member: ensures the roles
// and the verify channel exist, isolates the member, opens a session and sends
// the code. Bots, admins and whitelisted users are skipped.
func (m *Manager) HandleJoin(ctx context.Context, member Member) error {
	if member.Bot || member.Admin {
		return nil
	}

	cfg := m.Configs.Guild(member.GuildID)
	if !cfg.VerifyEnabled {
		return nil
	}
	if cfg.Whitelisted(member.UserID) {
		return nil
	}

	unverifiedID := m.ensureRole(ctx, member.GuildID, cfg.VerifyUnverifiedRoleID, unverifiedRoleName,
		"SpamGuard verification role", func(g *config.GuildConfig, id config.ID) { g.VerifyUnverifiedRoleID = id })
	verifiedID := m.ensureRole(ctx, member.GuildID, cfg.VerifyMemberRoleID, verifiedRoleName,
		"SpamGuard verification completed role", func(g *config.GuildConfig, id config.ID) { g.VerifyMemberRoleID = id })

	verifyCh, hasChannel := m.ensureChannel(ctx, member.GuildID, cfg.VerifyChannelID)
	if hasChannel {
		m.grantVerifyChannelAccess(ctx, member, verifyCh.ID)
	}

	isolationDetail := "未実施"
	if unverifiedID != "" {
		// the swap failing partially is survivable, isolation still applies
		errs := new(multierror.Error)
		if roles, ok := m.Adapter.MemberRoles(member.GuildID, member.UserID); ok && verifiedID != "" && contains(roles, verifiedID) {
			if err := m.Adapter.RemoveRole(ctx, member.GuildID, member.UserID, verifiedID, "SpamGuard verification pending"); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("failed to remove verified role: %w", err))
			}
		}
		if err := m.Adapter.AddRole(ctx, member.GuildID, member.UserID, unverifiedID, "SpamGuard verification pending"); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to add unverified role: %w", err))
		}
		if err := errs.ErrorOrNil(); err != nil {
			log.Printf("[WARN] role swap incomplete for %s in %s: %v", member.UserID, member.GuildID, err)
		}

		switch {
		case hasChannel && verifiedID != "":
			applied, failed := m.applyIsolation(ctx, member.GuildID, unverifiedID, verifiedID, verifyCh.ID)
			isolationDetail = fmt.Sprintf("権限上書き 適用:%d 失敗:%d", applied, failed)
		case hasChannel:
			isolationDetail = "Verifiedロール作成失敗のため権限制御を適用できませんでした"
		}
	}

	sess, err := m.startSession(member.GuildID, member.UserID, cfg)
	if err != nil {
		return fmt.Errorf("failed to start verification session for %s in %s: %w", member.UserID, member.GuildID, err)
	}

	channelID := ""
	if hasChannel {
		channelID = verifyCh.ID
	}
	m.notifyMember(ctx, member, cfg, sess.code, channelID)

	detail := "入室認証を開始しました。" + isolationDetail
	if hasChannel {
		detail = fmt.Sprintf("入室認証を開始しました。案内チャンネル: #%s / %s", verifyCh.Name, isolationDetail)
	}
	m.Logger.Verification(ctx, eventlog.VerificationEvent{
		GuildID:      member.GuildID,
		LogChannelID: cfg.LogChannelID.String(),
		UserID:       member.UserID,
		Phase:        eventlog.PhaseJoin,
		Status:       modcheck.StatusOK,
		Detail:       detail,
	})

	m.scheduleTimeout(sessionKey{member.GuildID, member.UserID}, sess.expiresAt)
	return nil
}

// VerifyCode checks the entered code against the member's session. The bool
// tells the caller whether to treat the attempt as settled successfully, the
// string is the user-facing reply.
func (m *Manager) VerifyCode(ctx context.Context, member Member, input string) (bool, string) {
	if member.Admin {
		return true, "管理者権限ユーザーは認証対象外です。"
	}

	cfg := m.Configs.Guild(member.GuildID)
	if !cfg.VerifyEnabled {
		return true, "このサーバーでは認証機能が無効です。"
	}

	key := sessionKey{member.GuildID, member.UserID}
	now := m.nowFn()

	m.lock.Lock()
	sess, ok := m.sessions[key]
	if !ok {
		m.lock.Unlock()
		return false, "認証セッションがありません。再入室後にやり直してください。"
	}

	if now.After(sess.expiresAt) {
		m.clearLocked(key)
		m.lock.Unlock()
		return false, "認証期限切れです。再入室して再試行してください。"
	}

	if sess.code != strings.TrimSpace(input) {
		sess.attempts++
		remaining := max(1, cfg.VerifyMaxAttempts) - sess.attempts
		if remaining > 0 {
			m.lock.Unlock()
			return false, fmt.Sprintf("認証コードが違います。残り試行回数: %d", remaining)
		}
		m.clearLocked(key) // the session terminates before any API call so it fires exactly once
		m.lock.Unlock()

		status := m.applyFailureAction(ctx, member, cfg)
		m.Logger.Verification(ctx, eventlog.VerificationEvent{
			GuildID:      member.GuildID,
			LogChannelID: cfg.LogChannelID.String(),
			UserID:       member.UserID,
			Phase:        eventlog.PhaseVerify,
			Status:       status,
			Detail:       "認証コード誤入力の上限到達",
		})
		return false, "認証失敗回数が上限に達しました。"
	}

	m.clearLocked(key)
	m.lock.Unlock()

	roles, _ := m.Adapter.MemberRoles(member.GuildID, member.UserID)
	if cfg.VerifyUnverifiedRoleID.Defined() && contains(roles, cfg.VerifyUnverifiedRoleID.String()) {
		if err := m.Adapter.RemoveRole(ctx, member.GuildID, member.UserID, cfg.VerifyUnverifiedRoleID.String(),
			"SpamGuard verification success"); err != nil {
			log.Printf("[WARN] failed to remove unverified role from %s in %s: %v", member.UserID, member.GuildID, err)
		}
	}

	verifiedID := m.ensureRole(ctx, member.GuildID, cfg.VerifyMemberRoleID, verifiedRoleName,
		"SpamGuard verification completed role", func(g *config.GuildConfig, id config.ID) { g.VerifyMemberRoleID = id })

	roleStatus := modcheck.StatusNotAttempted
	switch {
	case verifiedID != "" && contains(roles, verifiedID):
		roleStatus = modcheck.StatusOK
	case verifiedID != "":
		if err := m.Adapter.AddRole(ctx, member.GuildID, member.UserID, verifiedID, "SpamGuard verification success"); err != nil {
			roleStatus = modcheck.StatusOf(err)
		} else {
			roleStatus = modcheck.StatusOK
		}
	}

	applied, failed := m.grantAccessAfterVerify(ctx, member, cfg.LogChannelID.String())

	if cfg.VerifyChannelID.Defined() {
		if ch, ok := m.Adapter.Channel(member.GuildID, cfg.VerifyChannelID.String()); ok {
			m.clearVerifyChannelAccess(ctx, member, ch.ID)
		}
	}

	m.Logger.Verification(ctx, eventlog.VerificationEvent{
		GuildID:      member.GuildID,
		LogChannelID: cfg.LogChannelID.String(),
		UserID:       member.UserID,
		Phase:        eventlog.PhaseVerify,
		Status:       modcheck.StatusOK,
		Detail:       fmt.Sprintf("認証成功 (role:%s, channel_overwrite:適用%d/失敗%d)", roleStatus, applied, failed),
	})
	return true, "認証に成功しました。"
}

// Resend rotates the member's code, or opens a fresh session when none exists,
// and sends the notifications again.
func (m *Manager) Resend(ctx context.Context, member Member) (bool, string) {
	cfg := m.Configs.Guild(member.GuildID)
	if !cfg.VerifyEnabled {
		return false, "このサーバーでは認証機能が無効です。"
	}

	key := sessionKey{member.GuildID, member.UserID}

	var code string
	var expiresAt time.Time

	m.lock.Lock()
	sess, ok := m.sessions[key]
	if ok { // rotate the code in place, attempts carry over
		newCode, err := generateCode()
		if err != nil {
			m.lock.Unlock()
			log.Printf("[ERROR] failed to generate verification code: %v", err)
			return false, "認証コードを再送できませんでした。"
		}
		sess.code = newCode
		sess.expiresAt = m.nowFn().Add(cfg.VerifyTimeout())
		code, expiresAt = sess.code, sess.expiresAt
	}
	m.lock.Unlock()

	if !ok {
		started, err := m.startSession(member.GuildID, member.UserID, cfg)
		if err != nil {
			log.Printf("[ERROR] failed to start verification session: %v", err)
			return false, "認証コードを再送できませんでした。"
		}
		code, expiresAt = started.code, started.expiresAt
	}
	m.scheduleTimeout(key, expiresAt)

	verifyCh, hasChannel := m.ensureChannel(ctx, member.GuildID, cfg.VerifyChannelID)
	channelID := ""
	if hasChannel {
		channelID = verifyCh.ID
	}
	m.notifyMember(ctx, member, cfg, code, channelID)

	m.Logger.Verification(ctx, eventlog.VerificationEvent{
		GuildID:      member.GuildID,
		LogChannelID: cfg.LogChannelID.String(),
		UserID:       member.UserID,
		Phase:        eventlog.PhaseResend,
		Status:       modcheck.StatusOK,
		Detail:       "認証コードを再発行",
	})
	return true, "認証コードを再送しました。DMを確認してください。"
}

// Pending reports whether the user has an open verification session.
func (m *Manager) Pending(guildID, userID string) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	_, ok := m.sessions[sessionKey{guildID, userID}]
	return ok
}

// PendingCount returns the number of open sessions for the guild.
func (m *Manager) PendingCount(guildID string) int {
	m.lock.Lock()
	defer m.lock.Unlock()
	count := 0
	for key := range m.sessions {
		if key.guildID == guildID {
			count++
		}
	}
	return count
}

// Close stops all expiry timers and drops open sessions.
func (m *Manager) Close() {
	m.lock.Lock()
	defer m.lock.Unlock()
	for key, t := range m.timers {
		t.Stop()
		delete(m.timers, key)
	}
	for key := range m.sessions {
		delete(m.sessions, key)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
