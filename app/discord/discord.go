// Package discord adapts a discordgo session to the interfaces the moderation
// pipeline, the verification flow and the event logger consume. Reads are
// served from the session state cache, mutations go to the REST API with 403
// and 404 responses mapped to modcheck error kinds.
package discord

import (
	"slices"
	"time"

	"github.com/bwmarrin/discordgo"
	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/spamguard/spamguard/app/verify"
)

//go:generate moq --out mocks/api.go --pkg mocks --with-resets --skip-ensure . API

// API is an interface for the discord REST API, only subset of methods used
type API interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)

	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberDeleteWithReason(guildID, userID, reason string, options ...discordgo.RequestOption) error
	GuildMemberTimeout(guildID string, userID string, until *time.Time, options ...discordgo.RequestOption) error
	GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error
	GuildBanDelete(guildID, userID string, options ...discordgo.RequestOption) error

	GuildRoleCreate(guildID string, data *discordgo.RoleParams, options ...discordgo.RequestOption) (*discordgo.Role, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, options ...discordgo.RequestOption) error
	ChannelPermissionDelete(channelID, targetID string, options ...discordgo.RequestOption) error
}

const maxCachedDMChannels = 10000

// Adapter bridges a discord session to the moderation, verification and event
// log interfaces. In production api and state come from the same discordgo
// session, tests feed a mock api and a hand-built state.
type Adapter struct {
	api     API
	state   *discordgo.State
	dmCache cache.Cache[string, string] // user id to dm channel id
}

// NewAdapter makes an adapter over the given api and state cache.
func NewAdapter(api API, state *discordgo.State) *Adapter {
	return &Adapter{
		api:     api,
		state:   state,
		dmCache: cache.NewCache[string, string]().WithMaxKeys(maxCachedDMChannels).WithTTL(24 * time.Hour),
	}
}

// BotUserID returns the bot's own user id, empty before the ready event.
func (a *Adapter) BotUserID() string {
	a.state.RLock()
	defer a.state.RUnlock()
	if a.state.User == nil {
		return ""
	}
	return a.state.User.ID
}

// GuildName returns the guild name from the state cache, empty when unknown.
func (a *Adapter) GuildName(guildID string) string {
	guild, err := a.state.Guild(guildID)
	if err != nil {
		return ""
	}
	a.state.RLock()
	defer a.state.RUnlock()
	return guild.Name
}

// RoleExists reports whether the role is present in the guild.
func (a *Adapter) RoleExists(guildID, roleID string) bool {
	_, err := a.state.Role(guildID, roleID)
	return err == nil
}

// RoleByName returns the id of the first role with the given name, empty when
// the guild has no such role.
func (a *Adapter) RoleByName(guildID, name string) string {
	guild, err := a.state.Guild(guildID)
	if err != nil {
		return ""
	}
	a.state.RLock()
	defer a.state.RUnlock()
	for _, r := range guild.Roles {
		if r.Name == name {
			return r.ID
		}
	}
	return ""
}

// RoleName returns the role's name, empty when the role is unknown.
func (a *Adapter) RoleName(guildID, roleID string) string {
	role, err := a.state.Role(guildID, roleID)
	if err != nil {
		return ""
	}
	a.state.RLock()
	defer a.state.RUnlock()
	return role.Name
}

// MemberRoles returns the member's role ids. The bool is false when the member
// is not in the state cache, i.e. left the guild or was never seen.
func (a *Adapter) MemberRoles(guildID, userID string) ([]string, bool) {
	member, err := a.state.Member(guildID, userID)
	if err != nil {
		return nil, false
	}
	a.state.RLock()
	defer a.state.RUnlock()
	return slices.Clone(member.Roles), true
}

// Channel returns the guild channel with the given id.
func (a *Adapter) Channel(guildID, channelID string) (verify.Channel, bool) {
	ch, err := a.state.Channel(channelID)
	if err != nil || ch.GuildID != guildID || !managedChannel(ch) {
		return verify.Channel{}, false
	}
	a.state.RLock()
	defer a.state.RUnlock()
	return toChannel(guildID, ch), true
}

// ChannelByName returns the first guild channel with the given name.
func (a *Adapter) ChannelByName(guildID, name string) (verify.Channel, bool) {
	guild, err := a.state.Guild(guildID)
	if err != nil {
		return verify.Channel{}, false
	}
	a.state.RLock()
	defer a.state.RUnlock()
	for _, ch := range guild.Channels {
		if ch.Name == name && managedChannel(ch) {
			return toChannel(guildID, ch), true
		}
	}
	return verify.Channel{}, false
}

// Channels lists the guild's channels, threads excluded.
func (a *Adapter) Channels(guildID string) []verify.Channel {
	guild, err := a.state.Guild(guildID)
	if err != nil {
		return nil
	}
	a.state.RLock()
	defer a.state.RUnlock()
	res := make([]verify.Channel, 0, len(guild.Channels))
	for _, ch := range guild.Channels {
		if !managedChannel(ch) {
			continue
		}
		res = append(res, toChannel(guildID, ch))
	}
	return res
}

// IsAdmin reports whether the user owns the guild or holds a role with
// administrator or manage-server permission.
func (a *Adapter) IsAdmin(guildID, userID string) bool {
	guild, err := a.state.Guild(guildID)
	if err != nil {
		return false
	}
	a.state.RLock()
	owner := guild.OwnerID == userID
	a.state.RUnlock()
	if owner {
		return true
	}

	member, err := a.state.Member(guildID, userID)
	if err != nil {
		return false
	}
	a.state.RLock()
	defer a.state.RUnlock()
	var perms int64
	for _, r := range guild.Roles {
		if r.ID == guildID || slices.Contains(member.Roles, r.ID) { // everyone role shares the guild id
			perms |= r.Permissions
		}
	}
	return perms&(discordgo.PermissionAdministrator|discordgo.PermissionManageGuild) != 0
}

// AccountCreated extracts the account creation time from the user id
// snowflake, zero when the id doesn't parse.
func (a *Adapter) AccountCreated(userID string) time.Time {
	ts, err := discordgo.SnowflakeTimestamp(userID)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// managedChannel reports whether the channel is a regular guild channel.
// Threads and DM channels are not managed by the verification flow.
func managedChannel(ch *discordgo.Channel) bool {
	switch ch.Type {
	case discordgo.ChannelTypeDM, discordgo.ChannelTypeGroupDM,
		discordgo.ChannelTypeGuildNewsThread, discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread:
		return false
	}
	return true
}

// toChannel converts a discord channel to the verification view, caller holds
// the state read lock.
func toChannel(guildID string, ch *discordgo.Channel) verify.Channel {
	return verify.Channel{ID: ch.ID, Name: ch.Name, EveryoneCanView: everyoneCanView(guildID, ch)}
}

// everyoneCanView checks the everyone-role overwrite, a channel with no view
// deny on it is considered public.
func everyoneCanView(guildID string, ch *discordgo.Channel) bool {
	for _, ow := range ch.PermissionOverwrites {
		if ow.Type == discordgo.PermissionOverwriteTypeRole && ow.ID == guildID {
			return ow.Deny&discordgo.PermissionViewChannel == 0
		}
	}
	return true
}
