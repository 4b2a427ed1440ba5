package config

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tbl := []struct {
		in  string
		out ID
		err bool
	}{
		{`"123456789"`, "123456789", false},
		{`123456789`, "123456789", false},
		{`null`, "", false},
		{`12345.5`, "", true},
		{`["1"]`, "", true},
	}

	for i, tt := range tbl {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.out, id)
		})
	}
}

func TestID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ID("42"))
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(data))

	data, err = json.Marshal(ID(""))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestGuildConfig_Set(t *testing.T) {
	tbl := []struct {
		key   string
		value string
		err   error
		check func(t *testing.T, g GuildConfig)
	}{
		{"window_sec", "30", nil, func(t *testing.T, g GuildConfig) { assert.Equal(t, 30, g.WindowSec) }},
		{"window_sec", "abc", ErrCoercionFailed, nil},
		{"score_threshold", " 8 ", nil, func(t *testing.T, g GuildConfig) { assert.Equal(t, 8, g.ScoreThreshold) }},
		{"ban_enabled", "yes", nil, func(t *testing.T, g GuildConfig) { assert.True(t, g.BanEnabled) }},
		{"ban_enabled", "whatever", nil, func(t *testing.T, g GuildConfig) { assert.False(t, g.BanEnabled) }},
		{"verify_enabled", "1", nil, func(t *testing.T, g GuildConfig) { assert.True(t, g.VerifyEnabled) }},
		{"log_channel_id", "12345", nil, func(t *testing.T, g GuildConfig) { assert.Equal(t, ID("12345"), g.LogChannelID) }},
		{"log_channel_id", "none", nil, func(t *testing.T, g GuildConfig) { assert.Equal(t, ID(""), g.LogChannelID) }},
		{"log_channel_id", "null", nil, func(t *testing.T, g GuildConfig) { assert.Equal(t, ID(""), g.LogChannelID) }},
		{"log_channel_id", "not-a-number", ErrCoercionFailed, nil},
		{"verify_fail_action", "TIMEOUT", nil, func(t *testing.T, g GuildConfig) { assert.Equal(t, "timeout", g.VerifyFailAction) }},
		{"verify_fail_action", "explode", ErrCoercionFailed, nil},
		{"phishing_domains", "scam.example", ErrCoercionFailed, nil},
		{"no_such_key", "1", ErrUnknownKey, nil},
	}

	for _, tt := range tbl {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			g := Defaults()
			err := g.Set(tt.key, tt.value)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			tt.check(t, g)
		})
	}
}

func TestGuildConfig_Clone(t *testing.T) {
	g := Defaults()
	g.PhishingDomains = []string{"scam.example"}
	g.IgnoreRoleIDs = []ID{"1"}

	c := g.Clone()
	c.PhishingDomains[0] = "other.example"
	c.IgnoreRoleIDs[0] = "2"

	assert.Equal(t, "scam.example", g.PhishingDomains[0], "clone does not share list storage")
	assert.Equal(t, ID("1"), g.IgnoreRoleIDs[0])
}

func TestGuildConfig_Exempt(t *testing.T) {
	g := Defaults()
	g.IgnoreChannelIDs = []ID{"c1"}
	g.WhitelistUserIDs = []ID{"u1"}
	g.IgnoreRoleIDs = []ID{"r1"}
	g.WhitelistRoleIDs = []ID{"r2"}

	assert.True(t, g.Exempt("c1", "u9", nil), "ignored channel")
	assert.True(t, g.Exempt("c9", "u1", nil), "whitelisted user")
	assert.True(t, g.Exempt("c9", "u9", []string{"r1"}), "ignored role")
	assert.True(t, g.Exempt("c9", "u9", []string{"r3", "r2"}), "whitelisted role")
	assert.False(t, g.Exempt("c9", "u9", []string{"r3"}))
	assert.False(t, g.Exempt("", "", nil))
}

func TestGuildConfig_Detector(t *testing.T) {
	g := Defaults()
	g.WindowSec = 30
	g.TimeoutMinutes = 5
	g.PhishingDomains = []string{"scam.example"}

	cfg := g.Detector()
	assert.Equal(t, 30*time.Second, cfg.Window)
	assert.Equal(t, 5*time.Minute, cfg.TimeoutDuration)
	assert.Equal(t, []string{"scam.example"}, cfg.PhishingDomains)
	assert.Equal(t, g.MaxMsgInWindow, cfg.MaxMsgInWindow)
	assert.Equal(t, time.Hour, cfg.OffenseWindow)
}

func TestGuildConfig_VerifyTimeout(t *testing.T) {
	g := Defaults()
	assert.Equal(t, 10*time.Minute, g.VerifyTimeout())
	assert.Equal(t, 10, g.VerifyExpireMinutes())

	g.VerifyTimeoutMinutes = 0
	assert.Equal(t, time.Minute, g.VerifyTimeout(), "clamped to a minute")
	assert.Equal(t, 1, g.VerifyExpireMinutes())
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "window_sec")
	assert.Contains(t, keys, "verify_fail_action")
	assert.Contains(t, keys, "log_channel_id")
	assert.Contains(t, keys, "phishing_domains")
	assert.IsIncreasing(t, keys)

	// every listed key resolves, none report unknown
	g := Defaults()
	for _, k := range keys {
		err := g.Set(k, "not-really-a-value")
		assert.NotErrorIs(t, err, ErrUnknownKey, "key %s", k)
	}
}
