package security

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/app/eventlog"
	"github.com/spamguard/spamguard/lib/modcheck"
)

var (
	_ Adapter     = (*AdapterMock)(nil)
	_ EventLogger = (*EventLoggerMock)(nil)
	_ Configs     = (*config.Store)(nil)
)

// prepSecurityTest builds a runtime over a real config store and an adapter
// where every platform call succeeds.
func prepSecurityTest(t *testing.T, mutate func(g *config.GuildConfig)) (*Runtime, *AdapterMock, *EventLoggerMock, *config.Store) {
	t.Helper()

	st, err := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.NoError(t, st.Update("g1", func(g *config.GuildConfig) {
		g.LogChannelID = "c-log"
		g.PhishingDomains = []string{"evil.example.com"}
		if mutate != nil {
			mutate(g)
		}
	}))

	adapter := &AdapterMock{
		DeleteMessageFunc: func(ctx context.Context, channelID, messageID string) error { return nil },
		SendMessageFunc:   func(ctx context.Context, channelID, text string) error { return nil },
		TimeoutMemberFunc: func(ctx context.Context, guildID, userID string, d time.Duration, reason string) error {
			return nil
		},
		BanMemberFunc: func(ctx context.Context, guildID, userID, reason string) error { return nil },
	}
	logger := &EventLoggerMock{
		SecurityFunc: func(ctx context.Context, ev eventlog.SecurityEvent) string {
			return "SEC-20250301120000-abcdef"
		},
	}

	return NewRuntime(Params{Adapter: adapter, Configs: st, Logger: logger}), adapter, logger, st
}

func testMsg(id, userID, content string, at time.Time) Message {
	return Message{
		GuildID:          "g1",
		ChannelID:        "c1",
		MessageID:        id,
		UserID:           userID,
		UserName:         "spammer",
		Content:          content,
		CreatedAt:        at,
		AccountCreatedAt: at.Add(-48 * time.Hour),
		JoinedAt:         at.Add(-72 * time.Hour),
	}
}

func TestRuntime_HandleMessage_Clean(t *testing.T) {
	rt, adapter, logger, _ := prepSecurityTest(t, nil)

	res := rt.HandleMessage(context.Background(), testMsg("m1", "u1", "hello there", time.Now()))

	assert.False(t, res.Enforced)
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Reasons)
	assert.Empty(t, adapter.DeleteMessageCalls())
	assert.Empty(t, logger.SecurityCalls())
}

func TestRuntime_HandleMessage_Exempt(t *testing.T) {
	spam := "visit https://evil.example.com/login now"
	tbl := []struct {
		name   string
		msg    func(m *Message)
		mutate func(g *config.GuildConfig)
	}{
		{"bot author", func(m *Message) { m.Bot = true }, nil},
		{"admin author", func(m *Message) { m.Admin = true }, nil},
		{"ignored channel", nil, func(g *config.GuildConfig) { g.IgnoreChannelIDs = []config.ID{"c1"} }},
		{"whitelisted user", nil, func(g *config.GuildConfig) { g.WhitelistUserIDs = []config.ID{"u1"} }},
		{"whitelisted role", func(m *Message) { m.RoleIDs = []string{"r-mod"} },
			func(g *config.GuildConfig) { g.WhitelistRoleIDs = []config.ID{"r-mod"} }},
		{"ignored role", func(m *Message) { m.RoleIDs = []string{"r-npc"} },
			func(g *config.GuildConfig) { g.IgnoreRoleIDs = []config.ID{"r-npc"} }},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			rt, adapter, logger, _ := prepSecurityTest(t, tt.mutate)
			msg := testMsg("m1", "u1", spam, time.Now())
			if tt.msg != nil {
				tt.msg(&msg)
			}

			res := rt.HandleMessage(context.Background(), msg)

			assert.False(t, res.Enforced, "exempt message must not be enforced")
			assert.Empty(t, res.Reasons, "exempt message must not even be scored")
			assert.Empty(t, adapter.DeleteMessageCalls())
			assert.Empty(t, logger.SecurityCalls())
		})
	}
}

func TestRuntime_HandleMessage_ThresholdEnforcement(t *testing.T) {
	rt, adapter, logger, _ := prepSecurityTest(t, nil)

	// two urls and four mentions, 3+3 lands exactly on the default threshold
	msg := testMsg("m1", "u1", "buy https://a.example.com and https://b.example.com now", time.Now())
	msg.Mentions = 4
	res := rt.HandleMessage(context.Background(), msg)

	assert.True(t, res.Enforced)
	assert.Equal(t, 6, res.Score)
	assert.ElementsMatch(t, []modcheck.Reason{modcheck.ReasonURLSpam, modcheck.ReasonMentionSpam}, res.Reasons)
	assert.Equal(t, modcheck.ActionWarn, res.Action, "first offense warns")
	assert.Equal(t, 1, res.OffenseCount)
	assert.Equal(t, modcheck.StatusOK, res.DeleteStatus)
	assert.Equal(t, modcheck.StatusOK, res.ActionStatus)
	assert.Equal(t, "SEC-20250301120000-abcdef", res.EventID)

	require.Len(t, adapter.DeleteMessageCalls(), 1)
	assert.Equal(t, "c1", adapter.DeleteMessageCalls()[0].ChannelID)
	assert.Equal(t, "m1", adapter.DeleteMessageCalls()[0].MessageID)

	require.Len(t, adapter.SendMessageCalls(), 1)
	assert.Equal(t, "c1", adapter.SendMessageCalls()[0].ChannelID)
	assert.Equal(t, "<@u1> スパム/セキュリティ違反を検知しました。", adapter.SendMessageCalls()[0].Text)

	require.Len(t, logger.SecurityCalls(), 1)
	ev := logger.SecurityCalls()[0].Ev
	assert.Equal(t, "g1", ev.GuildID)
	assert.Equal(t, "c-log", ev.LogChannelID)
	assert.Equal(t, "c1", ev.ChannelID)
	assert.Equal(t, "u1", ev.UserID)
	assert.Equal(t, "spammer", ev.UserName)
	assert.Equal(t, 6, ev.Score)
	assert.Equal(t, 1, ev.OffenseCount)
	assert.Equal(t, modcheck.ActionWarn, ev.Action)
	assert.Empty(t, ev.UnbanURL)
}

func TestRuntime_HandleMessage_ForcedBelowThreshold(t *testing.T) {
	rt, adapter, _, _ := prepSecurityTest(t, func(g *config.GuildConfig) { g.ScoreThreshold = 99 })

	res := rt.HandleMessage(context.Background(), testMsg("m1", "u1", "login at https://evil.example.com/verify", time.Now()))

	assert.True(t, res.Enforced, "phishing forces enforcement below the threshold")
	assert.Equal(t, 8, res.Score)
	assert.Contains(t, res.Reasons, modcheck.ReasonPhishingDomain)
	require.Len(t, adapter.DeleteMessageCalls(), 1)
}

func TestRuntime_HandleMessage_Escalation(t *testing.T) {
	rt, adapter, logger, _ := prepSecurityTest(t, func(g *config.GuildConfig) { g.BanEnabled = true })
	rt.UnbanLink = func(guildID, userID string) string {
		return fmt.Sprintf("https://mod.example.com/unban?guild=%s&user=%s", guildID, userID)
	}

	base := time.Now()
	var actions []modcheck.Action
	for i := 0; i < 4; i++ {
		msg := testMsg(fmt.Sprintf("m%d", i+1), "u1",
			fmt.Sprintf("see https://evil.example.com/p%d", i+1), base.Add(time.Duration(i)*time.Second))
		res := rt.HandleMessage(context.Background(), msg)
		require.True(t, res.Enforced, "message %d", i+1)
		assert.Equal(t, i+1, res.OffenseCount)
		actions = append(actions, res.Action)
	}

	assert.Equal(t, []modcheck.Action{modcheck.ActionWarn, modcheck.ActionTimeout, modcheck.ActionTimeout, modcheck.ActionBan}, actions)

	require.Len(t, adapter.TimeoutMemberCalls(), 2)
	assert.Equal(t, 10*time.Minute, adapter.TimeoutMemberCalls()[0].D)
	assert.Equal(t, "SpamGuard security auto-moderation", adapter.TimeoutMemberCalls()[0].Reason)

	require.Len(t, adapter.BanMemberCalls(), 1)
	assert.Equal(t, "u1", adapter.BanMemberCalls()[0].UserID)
	assert.Equal(t, "SpamGuard security escalation", adapter.BanMemberCalls()[0].Reason)

	events := logger.SecurityCalls()
	require.Len(t, events, 4)
	assert.Empty(t, events[0].Ev.UnbanURL)
	assert.Empty(t, events[2].Ev.UnbanURL)
	assert.Equal(t, "https://mod.example.com/unban?guild=g1&user=u1", events[3].Ev.UnbanURL)
}

func TestRuntime_HandleMessage_BanGate(t *testing.T) {
	rt, adapter, _, _ := prepSecurityTest(t, nil) // ban disabled by default

	base := time.Now()
	var last Outcome
	for i := 0; i < 5; i++ {
		last = rt.HandleMessage(context.Background(), testMsg(fmt.Sprintf("m%d", i+1), "u1",
			fmt.Sprintf("see https://evil.example.com/p%d", i+1), base.Add(time.Duration(i)*time.Second)))
	}

	assert.Equal(t, modcheck.ActionTimeout, last.Action, "escalation stops at timeout while bans are disabled")
	assert.Equal(t, 5, last.OffenseCount)
	assert.Empty(t, adapter.BanMemberCalls())
}

func TestRuntime_HandleMessage_StatusDegradation(t *testing.T) {
	phish := "go https://evil.example.com/x"

	t.Run("delete forbidden", func(t *testing.T) {
		rt, adapter, _, _ := prepSecurityTest(t, nil)
		adapter.DeleteMessageFunc = func(ctx context.Context, channelID, messageID string) error {
			return fmt.Errorf("can't delete message: %w", modcheck.ErrForbidden)
		}

		res := rt.HandleMessage(context.Background(), testMsg("m1", "u1", phish, time.Now()))

		assert.True(t, res.Enforced)
		assert.Equal(t, modcheck.StatusForbidden, res.DeleteStatus)
		assert.Equal(t, modcheck.StatusOK, res.ActionStatus, "action still runs after a failed delete")
		require.Len(t, adapter.SendMessageCalls(), 1)
	})

	t.Run("warning failures collapse to http error", func(t *testing.T) {
		rt, adapter, _, _ := prepSecurityTest(t, nil)
		adapter.SendMessageFunc = func(ctx context.Context, channelID, text string) error {
			return fmt.Errorf("can't send message: %w", modcheck.ErrForbidden)
		}

		res := rt.HandleMessage(context.Background(), testMsg("m1", "u1", phish, time.Now()))

		assert.Equal(t, modcheck.ActionWarn, res.Action)
		assert.Equal(t, modcheck.StatusHTTPError, res.ActionStatus)
	})

	t.Run("timeout forbidden", func(t *testing.T) {
		rt, adapter, _, _ := prepSecurityTest(t, nil)
		adapter.TimeoutMemberFunc = func(ctx context.Context, guildID, userID string, d time.Duration, reason string) error {
			return fmt.Errorf("can't timeout member: %w", modcheck.ErrForbidden)
		}

		base := time.Now()
		rt.HandleMessage(context.Background(), testMsg("m1", "u1", phish, base))
		res := rt.HandleMessage(context.Background(), testMsg("m2", "u1", phish+"2", base.Add(time.Second)))

		assert.Equal(t, modcheck.ActionTimeout, res.Action)
		assert.Equal(t, modcheck.StatusForbidden, res.ActionStatus)
	})

	t.Run("generic http failure", func(t *testing.T) {
		rt, adapter, _, _ := prepSecurityTest(t, nil)
		adapter.DeleteMessageFunc = func(ctx context.Context, channelID, messageID string) error {
			return errors.New("rate limited")
		}

		res := rt.HandleMessage(context.Background(), testMsg("m1", "u1", phish, time.Now()))
		assert.Equal(t, modcheck.StatusHTTPError, res.DeleteStatus)
	})
}

func TestRuntime_DetectorSurvivesUnrelatedConfigChange(t *testing.T) {
	rt, _, _, st := prepSecurityTest(t, nil)
	base := time.Now()

	// four quick messages fill the rapid-posting window without tripping it
	for i := 0; i < 4; i++ {
		res := rt.HandleMessage(context.Background(), testMsg(fmt.Sprintf("m%d", i+1), "u1",
			fmt.Sprintf("hello %d", i+1), base.Add(time.Duration(i)*time.Second)))
		require.False(t, res.Enforced)
		require.Zero(t, res.Score)
	}

	// a non-scoring change, the kind the verification flow persists
	require.NoError(t, st.Update("g1", func(g *config.GuildConfig) { g.VerifyChannelID = "ch-verify" }))

	res := rt.HandleMessage(context.Background(), testMsg("m5", "u1", "hello 5", base.Add(4*time.Second)))
	assert.Equal(t, 2, res.Score, "window state must survive the revision bump")
	assert.Contains(t, res.Reasons, modcheck.ReasonRapidPosting)

	// a scoring change rebuilds the detector and drops the window
	require.NoError(t, st.Update("g1", func(g *config.GuildConfig) { g.MaxMsgInWindow = 3 }))

	res = rt.HandleMessage(context.Background(), testMsg("m6", "u1", "hello 6", base.Add(5*time.Second)))
	assert.Zero(t, res.Score, "fresh detector starts with an empty window")
	assert.Empty(t, res.Reasons)
}

func TestRuntime_HandleJoin_RaidSignals(t *testing.T) {
	rt, _, _, _ := prepSecurityTest(t, nil)
	base := time.Now()

	for i := 0; i < 5; i++ {
		rt.HandleJoin("g1", fmt.Sprintf("j%d", i+1), base)
	}

	// new members turn chatty right after the surge
	var last Outcome
	for i := 0; i < 10; i++ {
		msg := testMsg(fmt.Sprintf("m%d", i+1), fmt.Sprintf("j%d", i%5+1),
			fmt.Sprintf("hi all %d", i+1), base.Add(time.Duration(i+1)*100*time.Millisecond))
		msg.JoinedAt = base
		last = rt.HandleMessage(context.Background(), msg)
		if i < 9 {
			require.False(t, last.Enforced, "message %d", i+1)
			require.Contains(t, last.Reasons, modcheck.ReasonRaidJoinSurge)
		}
	}

	assert.True(t, last.Enforced, "raid activity forces enforcement")
	assert.Contains(t, last.Reasons, modcheck.ReasonRaidActivity)
	assert.Contains(t, last.Reasons, modcheck.ReasonRaidJoinSurge)
	assert.Equal(t, 7, last.Score)
}

func TestRuntime_OffenseCount(t *testing.T) {
	rt, _, _, _ := prepSecurityTest(t, nil)
	now := time.Now()

	assert.Zero(t, rt.OffenseCount("g1", "u1", now))

	res := rt.HandleMessage(context.Background(), testMsg("m1", "u1", "go https://evil.example.com/x", now))
	require.True(t, res.Enforced)

	assert.Equal(t, 1, rt.OffenseCount("g1", "u1", now))
	assert.Zero(t, rt.OffenseCount("g1", "u2", now))
}

func TestRuntime_GuildIsolation(t *testing.T) {
	rt, _, _, st := prepSecurityTest(t, nil)
	require.NoError(t, st.Update("g2", func(g *config.GuildConfig) {
		g.PhishingDomains = []string{"evil.example.com"}
	}))
	now := time.Now()

	res := rt.HandleMessage(context.Background(), testMsg("m1", "u1", "go https://evil.example.com/x", now))
	require.True(t, res.Enforced)

	other := testMsg("m2", "u1", "hello from the other side", now)
	other.GuildID = "g2"
	res = rt.HandleMessage(context.Background(), other)

	assert.False(t, res.Enforced)
	assert.Equal(t, 1, rt.OffenseCount("g1", "u1", now))
	assert.Zero(t, rt.OffenseCount("g2", "u1", now))
}
