package verify

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/app/eventlog"
)

type sessionKey struct {
	guildID string
	userID  string
}

// session holds one pending verification. gen increments on every reschedule
// so a stale timer firing after a resend is ignored.
type session struct {
	code      string
	expiresAt time.Time
	attempts  int
	gen       uint64
}

// startSession opens a fresh session for the member, replacing any existing
// one. The returned copy is safe to read without the manager lock.
func (m *Manager) startSession(guildID, userID string, cfg config.GuildConfig) (session, error) {
	code, err := generateCode()
	if err != nil {
		return session{}, err
	}

	key := sessionKey{guildID, userID}
	sess := &session{code: code, expiresAt: m.nowFn().Add(cfg.VerifyTimeout())}

	m.lock.Lock()
	defer m.lock.Unlock()
	if t, ok := m.timers[key]; ok {
		t.Stop()
		delete(m.timers, key)
	}
	m.sessions[key] = sess
	return *sess, nil
}

// scheduleTimeout arms the expiry timer for the session, replacing any
// previous timer and invalidating its generation.
func (m *Manager) scheduleTimeout(key sessionKey, expiresAt time.Time) {
	m.lock.Lock()
	defer m.lock.Unlock()

	sess, ok := m.sessions[key]
	if !ok {
		return
	}
	if t, ok := m.timers[key]; ok {
		t.Stop()
	}

	sess.gen++
	gen := sess.gen
	d := expiresAt.Sub(m.nowFn())
	if d < 0 {
		d = 0
	}
	m.timers[key] = time.AfterFunc(d, func() { m.expire(key, gen) })
}

// expire runs when the session timer fires. A generation mismatch means the
// session was rescheduled and this timer is stale.
func (m *Manager) expire(key sessionKey, gen uint64) {
	m.lock.Lock()
	sess, ok := m.sessions[key]
	if !ok || sess.gen != gen {
		m.lock.Unlock()
		return
	}
	m.clearLocked(key)
	m.lock.Unlock()

	if _, ok := m.Adapter.MemberRoles(key.guildID, key.userID); !ok {
		return // member already left, nothing to enforce
	}

	ctx := context.Background()
	cfg := m.Configs.Guild(key.guildID)
	member := Member{GuildID: key.guildID, UserID: key.userID}
	status := m.applyFailureAction(ctx, member, cfg)
	m.Logger.Verification(ctx, eventlog.VerificationEvent{
		GuildID:      key.guildID,
		LogChannelID: cfg.LogChannelID.String(),
		UserID:       key.userID,
		Phase:        eventlog.PhaseTimeout,
		Status:       status,
		Detail:       "認証期限切れ",
	})
}

// clearLocked drops the session and stops its timer, caller holds the lock.
func (m *Manager) clearLocked(key sessionKey) {
	delete(m.sessions, key)
	if t, ok := m.timers[key]; ok {
		t.Stop()
		delete(m.timers, key)
	}
}

// generateCode makes a crypto-random 6 digit code, zero padded.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
