package verify

import (
	"context"
	"fmt"
	"log"

	"github.com/go-pkgz/repeater/v2"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/lib/modcheck"
)

// ensureRole resolves a managed role: the configured id when it still exists,
// then a lookup by name, then creation. Discovered ids are persisted through
// the config store. Returns empty when the role can't be resolved.
func (m *Manager) ensureRole(ctx context.Context, guildID string, configured config.ID, name, reason string,
	persist func(g *config.GuildConfig, id config.ID)) string {

	if configured.Defined() && m.Adapter.RoleExists(guildID, configured.String()) {
		return configured.String()
	}

	id := m.Adapter.RoleByName(guildID, name)
	if id == "" {
		created, err := m.Adapter.CreateRole(ctx, guildID, name, reason)
		if err != nil {
			log.Printf("[WARN] failed to create role %q in guild %s: %v", name, guildID, err)
			return ""
		}
		id = created
	}

	if id != configured.String() {
		if err := m.Configs.Update(guildID, func(g *config.GuildConfig) { persist(g, config.ID(id)) }); err != nil {
			log.Printf("[WARN] failed to persist role id %s for guild %s: %v", id, guildID, err)
		}
	}
	return id
}

// ensureChannel resolves the verify channel: configured id, then lookup by
// name, then creation with baseline overwrites.
func (m *Manager) ensureChannel(ctx context.Context, guildID string, configured config.ID) (Channel, bool) {
	if configured.Defined() {
		if ch, ok := m.Adapter.Channel(guildID, configured.String()); ok {
			return ch, true
		}
	}

	if ch, ok := m.Adapter.ChannelByName(guildID, verifyChannelName); ok {
		m.persistChannelID(guildID, configured, ch.ID)
		return ch, true
	}

	overwrites := []Overwrite{
		{Target: Target{Kind: TargetEveryone},
			Perms: Permissions{View: PermAllow, Send: PermDeny, History: PermAllow, AppCommands: PermAllow}},
		{Target: Target{Kind: TargetMember, ID: m.Adapter.BotUserID()},
			Perms: Permissions{View: PermAllow, Send: PermAllow, History: PermAllow, ManageMsgs: PermAllow, AppCommands: PermAllow}},
	}
	ch, err := m.Adapter.CreateChannel(ctx, guildID, verifyChannelName, overwrites, "SpamGuard verification channel auto-create")
	if err != nil {
		log.Printf("[WARN] failed to create verify channel in guild %s: %v", guildID, err)
		return Channel{}, false
	}
	m.persistChannelID(guildID, configured, ch.ID)
	return ch, true
}

func (m *Manager) persistChannelID(guildID string, configured config.ID, id string) {
	if id == configured.String() {
		return
	}
	if err := m.Configs.Update(guildID, func(g *config.GuildConfig) { g.VerifyChannelID = config.ID(id) }); err != nil {
		log.Printf("[WARN] failed to persist verify channel id %s for guild %s: %v", id, guildID, err)
	}
}

// grantVerifyChannelAccess opens the verify channel for the joining member so
// the code can be entered even before isolation overwrites settle.
func (m *Manager) grantVerifyChannelAccess(ctx context.Context, member Member, channelID string) {
	perms := Permissions{View: PermAllow, Send: PermAllow, History: PermAllow, AppCommands: PermAllow}
	if err := m.setPermissions(ctx, channelID, Target{Kind: TargetMember, ID: member.UserID}, &perms,
		"SpamGuard verification temporary member access"); err != nil {
		log.Printf("[WARN] failed to grant verify channel access to %s in guild %s: %v", member.UserID, member.GuildID, err)
	}
}

type permSet struct {
	target Target
	perms  Permissions
}

// applyIsolation locks the unverified role out of the guild: on the verify
// channel unverified members get full access and everyone else is hidden, on
// regular channels unverified is denied and public channels are flipped to
// verified-only. The bot keeps access everywhere. Counts are per overwrite
// applied and per channel failed, a channel is abandoned on its first failure.
func (m *Manager) applyIsolation(ctx context.Context, guildID, unverifiedID, verifiedID, verifyChannelID string) (applied, failed int) {
	const reason = "SpamGuard verification isolation"
	botID := m.Adapter.BotUserID()

	for _, ch := range m.Adapter.Channels(guildID) {
		var sets []permSet
		if ch.ID == verifyChannelID {
			sets = []permSet{
				{target: Target{Kind: TargetRole, ID: unverifiedID},
					perms: Permissions{View: PermAllow, Send: PermAllow, History: PermAllow, Connect: PermAllow, AppCommands: PermAllow}},
				{target: Target{Kind: TargetRole, ID: verifiedID},
					perms: Permissions{View: PermAllow, AppCommands: PermAllow}},
				{target: Target{Kind: TargetEveryone},
					perms: Permissions{View: PermDeny, AppCommands: PermDeny}},
			}
		} else {
			sets = []permSet{
				{target: Target{Kind: TargetRole, ID: unverifiedID},
					perms: Permissions{View: PermDeny, Send: PermDeny, History: PermDeny, Connect: PermDeny, AppCommands: PermDeny}},
			}
			if ch.EveryoneCanView { // keep private channels as they are
				sets = append(sets,
					permSet{target: Target{Kind: TargetEveryone}, perms: Permissions{View: PermDeny}},
					permSet{target: Target{Kind: TargetRole, ID: verifiedID}, perms: Permissions{View: PermAllow}},
				)
			}
		}
		sets = append(sets, permSet{target: Target{Kind: TargetMember, ID: botID},
			perms: Permissions{View: PermAllow, Send: PermAllow, History: PermAllow, ManageMsgs: PermAllow, Connect: PermAllow}})

		chOK := true
		for _, s := range sets {
			perms := s.perms
			if err := m.setPermissions(ctx, ch.ID, s.target, &perms, reason); err != nil {
				log.Printf("[WARN] failed to set isolation overwrite on channel %s in guild %s: %v", ch.ID, guildID, err)
				chOK = false
				break
			}
			applied++
		}
		if !chOK {
			failed++
		}
	}
	return applied, failed
}

// grantAccessAfterVerify restores member visibility on every channel except
// the moderation log channel.
func (m *Manager) grantAccessAfterVerify(ctx context.Context, member Member, logChannelID string) (applied, failed int) {
	for _, ch := range m.Adapter.Channels(member.GuildID) {
		if logChannelID != "" && ch.ID == logChannelID {
			continue
		}
		perms := Permissions{View: PermAllow}
		if err := m.setPermissions(ctx, ch.ID, Target{Kind: TargetMember, ID: member.UserID}, &perms,
			"SpamGuard verification completed member access"); err != nil {
			log.Printf("[WARN] failed to grant channel %s access to %s: %v", ch.ID, member.UserID, err)
			failed++
			continue
		}
		applied++
	}
	return applied, failed
}

// clearVerifyChannelAccess removes the member's temporary overwrite from the
// verify channel.
func (m *Manager) clearVerifyChannelAccess(ctx context.Context, member Member, channelID string) {
	if err := m.setPermissions(ctx, channelID, Target{Kind: TargetMember, ID: member.UserID}, nil,
		"SpamGuard verification access cleanup"); err != nil {
		log.Printf("[WARN] failed to clear verify channel access for %s in guild %s: %v", member.UserID, member.GuildID, err)
	}
}

// notifyMember DMs the code to the member and posts a pointer in the verify
// channel. Delivery failures are logged and swallowed, the session stays open.
func (m *Manager) notifyMember(ctx context.Context, member Member, cfg config.GuildConfig, code, channelID string) {
	expireMinutes := cfg.VerifyExpireMinutes()

	channelHint := "サーバー内で"
	if channelID != "" {
		channelHint = fmt.Sprintf("認証チャンネル <#%s> で", channelID)
	}
	dmText := fmt.Sprintf("%s に参加ありがとうございます。\n認証コード: `%s`\n%d分以内に%s `/verify code:<コード>` を実行してください。",
		member.GuildName, code, expireMinutes, channelHint)
	if err := m.Adapter.SendDM(ctx, member.UserID, dmText); err != nil {
		log.Printf("[WARN] failed to send verification dm to %s: %v", member.UserID, err)
	}

	if channelID == "" {
		return
	}
	notice := fmt.Sprintf("<@%s> 参加ありがとうございます。 %d分以内に `/verify code:<DMで届いた6桁コード>` を入力してください。",
		member.UserID, expireMinutes)
	if err := m.Adapter.SendMessage(ctx, channelID, notice); err != nil {
		log.Printf("[WARN] failed to post verification notice to channel %s: %v", channelID, err)
	}
}

// applyFailureAction enforces the configured action for a failed or expired
// verification.
func (m *Manager) applyFailureAction(ctx context.Context, member Member, cfg config.GuildConfig) modcheck.Status {
	const reason = "SpamGuard verification failed"
	switch cfg.VerifyFailAction {
	case "kick":
		if err := m.Adapter.KickMember(ctx, member.GuildID, member.UserID, reason); err != nil {
			log.Printf("[WARN] failed to kick unverified member %s from guild %s: %v", member.UserID, member.GuildID, err)
			return modcheck.StatusOf(err)
		}
		return modcheck.StatusOK
	case "timeout":
		if err := m.Adapter.TimeoutMember(ctx, member.GuildID, member.UserID, cfg.VerifyTimeout(), reason); err != nil {
			log.Printf("[WARN] failed to timeout unverified member %s in guild %s: %v", member.UserID, member.GuildID, err)
			return modcheck.StatusOf(err)
		}
		return modcheck.StatusOK
	default: // "none" or anything unrecognized leaves the member alone
		return modcheck.StatusNotAttempted
	}
}

// setPermissions applies one overwrite with a single delayed retry. Forbidden
// responses are terminal, retrying them can't succeed.
func (m *Manager) setPermissions(ctx context.Context, channelID string, target Target, perms *Permissions, reason string) error {
	return repeater.NewFixed(2, m.RetryDelay).Do(ctx, func() error {
		return m.Adapter.SetPermission(ctx, channelID, target, perms, reason)
	}, modcheck.ErrForbidden)
}
