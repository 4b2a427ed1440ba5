package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/spamguard/spamguard/app/eventlog"
	"github.com/spamguard/spamguard/app/verify"
	"github.com/spamguard/spamguard/lib/modcheck"
)

// permission bits managed by the verification flow
const (
	bitView        = discordgo.PermissionViewChannel
	bitSend        = discordgo.PermissionSendMessages
	bitHistory     = discordgo.PermissionReadMessageHistory
	bitConnect     = discordgo.PermissionVoiceConnect
	bitAppCommands = discordgo.PermissionUseApplicationCommands
	bitManageMsgs  = discordgo.PermissionManageMessages
)

// DeleteMessage removes a message from a channel.
func (a *Adapter) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if err := a.api.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return mapErr("delete message", err)
	}
	return nil
}

// SendMessage posts a plain text message to a channel.
func (a *Adapter) SendMessage(ctx context.Context, channelID, text string) error {
	_, err := a.PostMessage(ctx, channelID, text)
	return err
}

// PostMessage posts a plain text message and returns the created message id,
// for callers that clean their replies up afterwards.
func (a *Adapter) PostMessage(ctx context.Context, channelID, text string) (string, error) {
	msg, err := a.api.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return "", mapErr("send message", err)
	}
	return msg.ID, nil
}

// SendDM delivers a direct message, creating the DM channel on first use and
// caching it for later sends.
func (a *Adapter) SendDM(ctx context.Context, userID, text string) error {
	chID, ok := a.dmCache.Get(userID)
	if !ok {
		ch, err := a.api.UserChannelCreate(userID, discordgo.WithContext(ctx))
		if err != nil {
			return mapErr("create dm channel", err)
		}
		chID = ch.ID
		a.dmCache.Set(userID, chID, 0)
	}
	if _, err := a.api.ChannelMessageSend(chID, text, discordgo.WithContext(ctx)); err != nil {
		return mapErr("send dm", err)
	}
	return nil
}

// SendEmbed posts an event embed to a channel.
func (a *Adapter) SendEmbed(ctx context.Context, channelID string, embed eventlog.Embed) error {
	res := &discordgo.MessageEmbed{
		Title:       embed.Title,
		Description: embed.Description,
		Color:       embed.Color,
	}
	if !embed.Timestamp.IsZero() {
		res.Timestamp = embed.Timestamp.Format(time.RFC3339)
	}
	if embed.AuthorName != "" {
		res.Author = &discordgo.MessageEmbedAuthor{Name: embed.AuthorName, IconURL: embed.AuthorIcon}
	}
	for _, f := range embed.Fields {
		res.Fields = append(res.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if _, err := a.api.ChannelMessageSendEmbed(channelID, res, discordgo.WithContext(ctx)); err != nil {
		return mapErr("send embed", err)
	}
	return nil
}

// TimeoutMember mutes the member for the given duration via the communication
// disabled flag.
func (a *Adapter) TimeoutMember(ctx context.Context, guildID, userID string, d time.Duration, reason string) error {
	until := time.Now().Add(d)
	if err := a.api.GuildMemberTimeout(guildID, userID, &until, opts(ctx, reason)...); err != nil {
		return mapErr("timeout member", err)
	}
	return nil
}

// BanMember bans the member from the guild, already posted messages are kept.
func (a *Adapter) BanMember(ctx context.Context, guildID, userID, reason string) error {
	if err := a.api.GuildBanCreateWithReason(guildID, userID, reason, 0, discordgo.WithContext(ctx)); err != nil {
		return mapErr("ban member", err)
	}
	return nil
}

// KickMember removes the member from the guild.
func (a *Adapter) KickMember(ctx context.Context, guildID, userID, reason string) error {
	if err := a.api.GuildMemberDeleteWithReason(guildID, userID, reason, discordgo.WithContext(ctx)); err != nil {
		return mapErr("kick member", err)
	}
	return nil
}

// UnbanMember lifts a guild ban.
func (a *Adapter) UnbanMember(ctx context.Context, guildID, userID, reason string) error {
	if err := a.api.GuildBanDelete(guildID, userID, opts(ctx, reason)...); err != nil {
		return mapErr("unban member", err)
	}
	return nil
}

// AddRole assigns a role to a member.
func (a *Adapter) AddRole(ctx context.Context, guildID, userID, roleID, reason string) error {
	if err := a.api.GuildMemberRoleAdd(guildID, userID, roleID, opts(ctx, reason)...); err != nil {
		return mapErr("add role", err)
	}
	return nil
}

// RemoveRole takes a role away from a member.
func (a *Adapter) RemoveRole(ctx context.Context, guildID, userID, roleID, reason string) error {
	if err := a.api.GuildMemberRoleRemove(guildID, userID, roleID, opts(ctx, reason)...); err != nil {
		return mapErr("remove role", err)
	}
	return nil
}

// CreateRole makes a new role and feeds it into the state cache so follow-up
// reads find it before the gateway delivers the create event.
func (a *Adapter) CreateRole(ctx context.Context, guildID, name, reason string) (string, error) {
	role, err := a.api.GuildRoleCreate(guildID, &discordgo.RoleParams{Name: name}, opts(ctx, reason)...)
	if err != nil {
		return "", mapErr("create role", err)
	}
	if err := a.state.RoleAdd(guildID, role); err != nil {
		log.Printf("[WARN] can't cache created role %s: %v", role.ID, err)
	}
	return role.ID, nil
}

// CreateChannel makes a text channel with the given permission overwrites and
// feeds it into the state cache.
func (a *Adapter) CreateChannel(ctx context.Context, guildID, name string, overwrites []verify.Overwrite, reason string) (verify.Channel, error) {
	data := discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		PermissionOverwrites: make([]*discordgo.PermissionOverwrite, 0, len(overwrites)),
	}
	for _, ow := range overwrites {
		targetID, targetType := ow.Target.ID, discordgo.PermissionOverwriteTypeRole
		switch ow.Target.Kind {
		case verify.TargetMember:
			targetType = discordgo.PermissionOverwriteTypeMember
		case verify.TargetEveryone:
			targetID = guildID
		}
		allow, deny := masks(ow.Perms)
		data.PermissionOverwrites = append(data.PermissionOverwrites,
			&discordgo.PermissionOverwrite{ID: targetID, Type: targetType, Allow: allow, Deny: deny})
	}

	ch, err := a.api.GuildChannelCreateComplex(guildID, data, opts(ctx, reason)...)
	if err != nil {
		return verify.Channel{}, mapErr("create channel", err)
	}
	if err := a.state.ChannelAdd(ch); err != nil {
		log.Printf("[WARN] can't cache created channel %s: %v", ch.ID, err)
	}
	a.state.RLock()
	defer a.state.RUnlock()
	return toChannel(guildID, ch), nil
}

// SetPermission applies or clears a channel permission overwrite, nil perms
// removes the overwrite entirely.
func (a *Adapter) SetPermission(ctx context.Context, channelID string, target verify.Target, perms *verify.Permissions, reason string) error {
	targetID, targetType, err := a.resolveTarget(channelID, target)
	if err != nil {
		return err
	}
	if perms == nil {
		if err := a.api.ChannelPermissionDelete(channelID, targetID, opts(ctx, reason)...); err != nil {
			return mapErr("clear permission", err)
		}
		return nil
	}
	allow, deny := masks(*perms)
	if err := a.api.ChannelPermissionSet(channelID, targetID, targetType, allow, deny, opts(ctx, reason)...); err != nil {
		return mapErr("set permission", err)
	}
	return nil
}

// resolveTarget maps an overwrite target to a discord id and overwrite type.
// The everyone role shares its id with the guild, resolved via the channel.
func (a *Adapter) resolveTarget(channelID string, target verify.Target) (string, discordgo.PermissionOverwriteType, error) {
	switch target.Kind {
	case verify.TargetMember:
		return target.ID, discordgo.PermissionOverwriteTypeMember, nil
	case verify.TargetEveryone:
		ch, err := a.state.Channel(channelID)
		if err != nil {
			return "", 0, fmt.Errorf("can't resolve guild for channel %s: %w", channelID, modcheck.ErrNotFound)
		}
		return ch.GuildID, discordgo.PermissionOverwriteTypeRole, nil
	default:
		return target.ID, discordgo.PermissionOverwriteTypeRole, nil
	}
}

// masks converts tri-state permissions to discord allow and deny bitmasks,
// inherit bits stay out of both.
func masks(p verify.Permissions) (allow, deny int64) {
	set := func(perm verify.Perm, bit int64) {
		switch perm {
		case verify.PermAllow:
			allow |= bit
		case verify.PermDeny:
			deny |= bit
		}
	}
	set(p.View, bitView)
	set(p.Send, bitSend)
	set(p.History, bitHistory)
	set(p.Connect, bitConnect)
	set(p.AppCommands, bitAppCommands)
	set(p.ManageMsgs, bitManageMsgs)
	return allow, deny
}

// opts builds request options carrying the caller context and, when set, the
// audit log reason.
func opts(ctx context.Context, reason string) []discordgo.RequestOption {
	res := []discordgo.RequestOption{discordgo.WithContext(ctx)}
	if reason != "" {
		res = append(res, discordgo.WithAuditLogReason(reason))
	}
	return res
}

// mapErr wraps a discord API failure, converting 403 and 404 responses into
// modcheck error kinds so callers can turn them into step statuses.
func mapErr(op string, err error) error {
	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Response != nil {
		switch rest.Response.StatusCode {
		case http.StatusForbidden:
			return fmt.Errorf("can't %s: %w", op, modcheck.ErrForbidden)
		case http.StatusNotFound:
			return fmt.Errorf("can't %s: %w", op, modcheck.ErrNotFound)
		}
	}
	return fmt.Errorf("can't %s: %w", op, err)
}
