package discord

import (
	"strconv"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spamguard/spamguard/app/discord/mocks"
	"github.com/spamguard/spamguard/app/eventlog"
	"github.com/spamguard/spamguard/app/security"
	"github.com/spamguard/spamguard/app/verify"
)

// the adapter serves all three platform-facing interfaces over one session
var (
	_ security.Adapter = (*Adapter)(nil)
	_ verify.Adapter   = (*Adapter)(nil)
	_ eventlog.Sender  = (*Adapter)(nil)
	_ API              = (*discordgo.Session)(nil)
	_ API              = (*mocks.APIMock)(nil)
)

// prepState builds a state cache with one guild, a few roles, channels and
// members, close to what the gateway would deliver.
func prepState(t *testing.T) *discordgo.State {
	st := discordgo.NewState()
	st.User = &discordgo.User{ID: "bot1", Username: "spamguard"}

	guild := &discordgo.Guild{
		ID:      "g1",
		Name:    "Test Guild",
		OwnerID: "owner1",
		Roles: []*discordgo.Role{
			{ID: "g1", Name: "@everyone"},
			{ID: "r-admin", Name: "Admins", Permissions: discordgo.PermissionAdministrator},
			{ID: "r-mod", Name: "Mods", Permissions: discordgo.PermissionManageGuild},
			{ID: "r-member", Name: "Members", Permissions: discordgo.PermissionSendMessages},
			{ID: "r-unv", Name: "Unverified"},
		},
		Channels: []*discordgo.Channel{
			{ID: "c-gen", GuildID: "g1", Name: "general", Type: discordgo.ChannelTypeGuildText},
			{ID: "c-priv", GuildID: "g1", Name: "mods", Type: discordgo.ChannelTypeGuildText,
				PermissionOverwrites: []*discordgo.PermissionOverwrite{
					{ID: "g1", Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
				}},
			{ID: "c-voice", GuildID: "g1", Name: "voice", Type: discordgo.ChannelTypeGuildVoice},
			{ID: "c-thread", GuildID: "g1", Name: "thread", Type: discordgo.ChannelTypeGuildPublicThread},
		},
		Members: []*discordgo.Member{
			{GuildID: "g1", User: &discordgo.User{ID: "u1"}, Roles: []string{"r-member"}},
			{GuildID: "g1", User: &discordgo.User{ID: "u-admin"}, Roles: []string{"r-admin"}},
			{GuildID: "g1", User: &discordgo.User{ID: "u-mod"}, Roles: []string{"r-mod", "r-member"}},
			{GuildID: "g1", User: &discordgo.User{ID: "owner1"}},
		},
	}
	require.NoError(t, st.GuildAdd(guild))
	return st
}

func TestAdapter_BotUserID(t *testing.T) {
	a := NewAdapter(&mocks.APIMock{}, prepState(t))
	assert.Equal(t, "bot1", a.BotUserID())

	before := NewAdapter(&mocks.APIMock{}, discordgo.NewState())
	assert.Equal(t, "", before.BotUserID(), "no user before the ready event")
}

func TestAdapter_GuildName(t *testing.T) {
	a := NewAdapter(&mocks.APIMock{}, prepState(t))
	assert.Equal(t, "Test Guild", a.GuildName("g1"))
	assert.Equal(t, "", a.GuildName("g-unknown"))
}

func TestAdapter_Roles(t *testing.T) {
	a := NewAdapter(&mocks.APIMock{}, prepState(t))

	assert.True(t, a.RoleExists("g1", "r-unv"))
	assert.False(t, a.RoleExists("g1", "r-missing"))
	assert.False(t, a.RoleExists("g-unknown", "r-unv"))

	assert.Equal(t, "r-unv", a.RoleByName("g1", "Unverified"))
	assert.Equal(t, "", a.RoleByName("g1", "Verified"))
	assert.Equal(t, "", a.RoleByName("g-unknown", "Unverified"))

	assert.Equal(t, "Unverified", a.RoleName("g1", "r-unv"))
	assert.Equal(t, "", a.RoleName("g1", "r-missing"))
}

func TestAdapter_MemberRoles(t *testing.T) {
	a := NewAdapter(&mocks.APIMock{}, prepState(t))

	roles, ok := a.MemberRoles("g1", "u-mod")
	assert.True(t, ok)
	assert.Equal(t, []string{"r-mod", "r-member"}, roles)

	_, ok = a.MemberRoles("g1", "u-gone")
	assert.False(t, ok, "member not in state reads as left")

	_, ok = a.MemberRoles("g-unknown", "u1")
	assert.False(t, ok)
}

func TestAdapter_Channels(t *testing.T) {
	a := NewAdapter(&mocks.APIMock{}, prepState(t))

	t.Run("list excludes threads", func(t *testing.T) {
		channels := a.Channels("g1")
		require.Len(t, channels, 3)
		ids := []string{channels[0].ID, channels[1].ID, channels[2].ID}
		assert.Equal(t, []string{"c-gen", "c-priv", "c-voice"}, ids)
		assert.Empty(t, a.Channels("g-unknown"))
	})

	t.Run("everyone visibility from overwrites", func(t *testing.T) {
		ch, ok := a.Channel("g1", "c-gen")
		require.True(t, ok)
		assert.True(t, ch.EveryoneCanView, "no overwrite means public")

		ch, ok = a.Channel("g1", "c-priv")
		require.True(t, ok)
		assert.False(t, ch.EveryoneCanView, "view deny on everyone hides the channel")
	})

	t.Run("by id", func(t *testing.T) {
		ch, ok := a.Channel("g1", "c-voice")
		require.True(t, ok)
		assert.Equal(t, "voice", ch.Name)

		_, ok = a.Channel("g2", "c-voice")
		assert.False(t, ok, "guild mismatch")
		_, ok = a.Channel("g1", "c-thread")
		assert.False(t, ok, "threads are not managed")
		_, ok = a.Channel("g1", "c-missing")
		assert.False(t, ok)
	})

	t.Run("by name", func(t *testing.T) {
		ch, ok := a.ChannelByName("g1", "general")
		require.True(t, ok)
		assert.Equal(t, "c-gen", ch.ID)

		_, ok = a.ChannelByName("g1", "verify")
		assert.False(t, ok)
		_, ok = a.ChannelByName("g-unknown", "general")
		assert.False(t, ok)
	})
}

func TestAdapter_IsAdmin(t *testing.T) {
	a := NewAdapter(&mocks.APIMock{}, prepState(t))

	tbl := []struct {
		name    string
		guildID string
		userID  string
		admin   bool
	}{
		{"guild owner", "g1", "owner1", true},
		{"administrator role", "g1", "u-admin", true},
		{"manage server role", "g1", "u-mod", true},
		{"plain member", "g1", "u1", false},
		{"unknown member", "g1", "u-gone", false},
		{"unknown guild", "g-unknown", "u1", false},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.admin, a.IsAdmin(tt.guildID, tt.userID))
		})
	}

	t.Run("elevated everyone role", func(t *testing.T) {
		st := discordgo.NewState()
		require.NoError(t, st.GuildAdd(&discordgo.Guild{
			ID:      "g2",
			OwnerID: "owner2",
			Roles:   []*discordgo.Role{{ID: "g2", Name: "@everyone", Permissions: discordgo.PermissionManageGuild}},
			Members: []*discordgo.Member{{GuildID: "g2", User: &discordgo.User{ID: "u2"}}},
		}))
		a := NewAdapter(&mocks.APIMock{}, st)
		assert.True(t, a.IsAdmin("g2", "u2"), "everyone role permissions apply to all members")
	})
}

func TestAdapter_AccountCreated(t *testing.T) {
	a := NewAdapter(&mocks.APIMock{}, discordgo.NewState())

	// snowflakes carry milliseconds since the discord epoch in the top bits
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	const discordEpochMs = 1420070400000
	id := strconv.FormatInt((created.UnixMilli()-discordEpochMs)<<22, 10)

	got := a.AccountCreated(id)
	assert.True(t, created.Equal(got), "want %s, got %s", created, got)

	assert.True(t, a.AccountCreated("not-a-snowflake").IsZero())
}
