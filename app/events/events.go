package events

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/app/security"
	"github.com/spamguard/spamguard/app/verify"
)

//go:generate moq --out mocks/api.go --pkg mocks --with-resets --skip-ensure . API
//go:generate moq --out mocks/security.go --pkg mocks --with-resets --skip-ensure . Security
//go:generate moq --out mocks/verifier.go --pkg mocks --with-resets --skip-ensure . Verifier
//go:generate moq --out mocks/configs.go --pkg mocks --with-resets --skip-ensure . Configs
//go:generate moq --out mocks/directory.go --pkg mocks --with-resets --skip-ensure . Directory

// API is an interface for the discord session, only a subset of methods used
type API interface {
	AddHandler(handler interface{}) func()
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Security screens guild messages and tracks member joins for raid detection
type Security interface {
	HandleMessage(ctx context.Context, msg security.Message) security.Outcome
	HandleJoin(guildID, userID string, joinedAt time.Time)
}

// Verifier runs the member verification flow
type Verifier interface {
	HandleJoin(ctx context.Context, m verify.Member) error
	VerifyCode(ctx context.Context, m verify.Member, input string) (verified bool, reply string)
	Resend(ctx context.Context, m verify.Member) (sent bool, reply string)
	Pending(guildID, userID string) bool
	PendingCount(guildID string) int
}

// Configs provides per-guild settings with persistence
type Configs interface {
	Guild(guildID string) config.GuildConfig
	SetValue(guildID, key, value string) error
	Update(guildID string, fn func(*config.GuildConfig)) error
}

// Directory provides guild state lookups and the rest calls used by admin commands
type Directory interface {
	BotUserID() string
	GuildName(guildID string) string
	IsAdmin(guildID, userID string) bool
	AccountCreated(userID string) time.Time
	RoleName(guildID, roleID string) string
	RoleExists(guildID, roleID string) bool
	RoleByName(guildID, name string) string
	CreateRole(ctx context.Context, guildID, name, reason string) (string, error)
	AddRole(ctx context.Context, guildID, userID, roleID, reason string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID, reason string) error
	Channel(guildID, channelID string) (verify.Channel, bool)
	SetPermission(ctx context.Context, channelID string, target verify.Target, perms *verify.Permissions, reason string) error
	PostMessage(ctx context.Context, channelID, text string) (string, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}
