package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := NewStore(path)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, Defaults(), s.DefaultConfig())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"defaults"`)
	assert.Contains(t, string(data), `"guilds"`)
}

func TestNewStore_LegacyMigration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	legacy := `{"window_sec": 12, "score_threshold": 7, "log_channel_id": 12345}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s, err := NewStore(path)
	require.NoError(t, err)

	def := s.DefaultConfig()
	assert.Equal(t, 12, def.WindowSec)
	assert.Equal(t, 7, def.ScoreThreshold)
	assert.Equal(t, ID("12345"), def.LogChannelID, "legacy numeric id accepted")
	assert.Equal(t, 5, def.MaxMsgInWindow, "missing keys keep factory defaults")

	// rewritten in the current shape with no guilds
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc struct {
		Defaults GuildConfig            `json:"defaults"`
		Guilds   map[string]GuildConfig `json:"guilds"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 7, doc.Defaults.ScoreThreshold)
	assert.Empty(t, doc.Guilds)

	assert.FileExists(t, path+".bak", "original preserved before rewrite")
	bak, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.JSONEq(t, legacy, string(bak))
}

func TestNewStore_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"broken`), 0o644))

	_, err := NewStore(path)
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestNewStore_UnknownKeysDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{"defaults": {"score_threshold": 9, "long_gone_key": true}, "guilds": {}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, 9, s.DefaultConfig().ScoreThreshold)

	// save drops the unknown key from disk
	require.NoError(t, s.SetValue("g1", "window_sec", "20"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "long_gone_key")
}

func TestStore_GuildLazyCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	g := s.Guild("g1")
	assert.Equal(t, Defaults(), g)

	// creation persisted, a fresh store sees the guild
	s2, err := NewStore(path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"g1"`)
	assert.Equal(t, Defaults(), s2.Guild("g1"))
}

func TestStore_GuildReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Update("g1", func(g *GuildConfig) { g.PhishingDomains = []string{"scam.example"} }))

	g := s.Guild("g1")
	g.PhishingDomains[0] = "mutated.example"
	g.ScoreThreshold = 99

	again := s.Guild("g1")
	assert.Equal(t, "scam.example", again.PhishingDomains[0], "caller mutations stay private")
	assert.NotEqual(t, 99, again.ScoreThreshold)
}

func TestStore_TenantIsolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, s.SetValue("guildA", "log_channel_id", "99999"))

	assert.Equal(t, ID("99999"), s.Guild("guildA").LogChannelID)
	assert.Equal(t, ID(""), s.Guild("guildB").LogChannelID, "other tenants unaffected")

	// both survive a reload from disk
	s2, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, ID("99999"), s2.Guild("guildA").LogChannelID)
	assert.Equal(t, ID(""), s2.Guild("guildB").LogChannelID)
}

func TestStore_SetValueErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, s.SetValue("g1", "score_threshold", "8"))

	err = s.SetValue("g1", "no_such_key", "1")
	assert.ErrorIs(t, err, ErrUnknownKey)

	err = s.SetValue("g1", "score_threshold", "abc")
	assert.ErrorIs(t, err, ErrCoercionFailed)

	assert.Equal(t, 8, s.Guild("g1").ScoreThreshold, "failed mutation leaves state unchanged")
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, s.SetValue("g1", "ban_enabled", "true"))
	require.NoError(t, s.SetValue("g1", "verify_fail_action", "timeout"))
	require.NoError(t, s.Update("g1", func(g *GuildConfig) {
		g.PhishingDomains = append(g.PhishingDomains, "scam.example")
		g.WhitelistUserIDs = append(g.WhitelistUserIDs, "111")
	}))
	require.NoError(t, s.SetValue("g2", "window_sec", "33"))

	s2, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, s.Guild("g1"), s2.Guild("g1"))
	assert.Equal(t, s.Guild("g2"), s2.Guild("g2"))
	assert.Equal(t, 33, s2.Guild("g2").WindowSec)
	assert.True(t, s2.Guild("g1").BanEnabled)
	assert.Equal(t, []string{"scam.example"}, s2.Guild("g1").PhishingDomains)
}

func TestStore_Revision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	rev := s.Revision("g1")
	s.Guild("g1")
	assert.Equal(t, rev, s.Revision("g1"), "read access does not move the revision")

	require.NoError(t, s.SetValue("g1", "window_sec", "20"))
	assert.Greater(t, s.Revision("g1"), rev)

	rev = s.Revision("g1")
	require.NoError(t, s.Update("g1", func(g *GuildConfig) { g.BanEnabled = true }))
	assert.Greater(t, s.Revision("g1"), rev)
}

func TestStore_ReloadBumpsOnlyChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, s.SetValue("g1", "window_sec", "20"))
	require.NoError(t, s.SetValue("g2", "window_sec", "30"))
	rev1, rev2 := s.Revision("g1"), s.Revision("g2")

	// reload the identical file, nothing moves
	require.NoError(t, s.Reload())
	assert.Equal(t, rev1, s.Revision("g1"))
	assert.Equal(t, rev2, s.Revision("g2"))

	// hand-edit g1 on disk, only g1 moves
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	var guilds map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["guilds"], &guilds))
	var g1 map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(guilds["g1"], &g1))
	g1["window_sec"] = json.RawMessage(`44`)
	guilds["g1"], _ = json.Marshal(g1)
	doc["guilds"], _ = json.Marshal(guilds)
	edited, _ := json.Marshal(doc)
	require.NoError(t, os.WriteFile(path, edited, 0o644))

	require.NoError(t, s.Reload())
	assert.Greater(t, s.Revision("g1"), rev1)
	assert.Equal(t, rev2, s.Revision("g2"))
	assert.Equal(t, 44, s.Guild("g1").WindowSec)
}

func TestStore_NonASCIIPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Update("g1", func(g *GuildConfig) {
		g.AllowDomains = append(g.AllowDomains, "例え.example")
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "例え.example", "non-ascii written verbatim, not escaped")
}
