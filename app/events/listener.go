// Package events provides the discord gateway listener. It receives message,
// member-join and interaction events, routes guild messages through the
// security runtime and the verification flow, and serves the slash command
// tree for guild managers.
package events

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/spamguard/spamguard/app/security"
	"github.com/spamguard/spamguard/app/verify"
)

// Listener subscribes to gateway events and dispatches them to the security
// runtime, the verification manager and the admin command handlers.
type Listener struct {
	API       API
	Directory Directory
	Security  Security
	Verifier  Verifier
	Configs   Configs
	Operators Operators
	ReplyTTL  time.Duration // how long transient channel replies stay up, default 15s

	admin *admin
}

// code attempts are exactly six ascii digits
var codeRe = regexp.MustCompile(`^\d{6}$`)

// Do starts the listener. It registers the slash command tree, subscribes to
// gateway events and blocks until the context is canceled.
func (l *Listener) Do(ctx context.Context) error {
	log.Printf("[INFO] start discord listener, bot id %s", l.Directory.BotUserID())

	if l.ReplyTTL == 0 {
		l.ReplyTTL = 15 * time.Second
	}

	l.admin = &admin{
		directory: l.Directory,
		configs:   l.Configs,
		verifier:  l.Verifier,
		operators: l.Operators,
	}

	if _, err := l.API.ApplicationCommandBulkOverwrite(l.Directory.BotUserID(), "", l.admin.commands()); err != nil {
		return fmt.Errorf("can't register slash commands: %w", err)
	}

	removeMessage := l.API.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		l.procMessage(ctx, m)
	})
	defer removeMessage()

	removeJoin := l.API.AddHandler(func(_ *discordgo.Session, g *discordgo.GuildMemberAdd) {
		l.procJoin(ctx, g)
	})
	defer removeJoin()

	removeInteraction := l.API.AddHandler(func(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
		l.procInteraction(ctx, ic)
	})
	defer removeInteraction()

	<-ctx.Done()
	return ctx.Err()
}

// procMessage routes an incoming message. Bot messages, DMs and own messages
// are ignored, members pending verification are intercepted before the
// security screening.
func (l *Listener) procMessage(ctx context.Context, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" || m.Author.ID == l.Directory.BotUserID() {
		return
	}

	if l.Verifier.Pending(m.GuildID, m.Author.ID) {
		l.procPendingMessage(ctx, m)
		return
	}

	outcome := l.Security.HandleMessage(ctx, l.transform(m))
	if outcome.Enforced {
		log.Printf("[DEBUG] message %s from %s enforced, score %d, action %s, event %s",
			m.ID, m.Author.ID, outcome.Score, outcome.Action, outcome.EventID)
	}
}

// procPendingMessage handles a message from a member who has not completed
// verification. A six-digit message in the verification channel is treated as
// a code attempt and answered with a short-lived reply, everything the member
// posts is removed to keep the guild clean during verification.
func (l *Listener) procPendingMessage(ctx context.Context, m *discordgo.MessageCreate) {
	cfg := l.Configs.Guild(m.GuildID)
	content := strings.TrimSpace(m.Content)

	if cfg.VerifyChannelID.Defined() && m.ChannelID == cfg.VerifyChannelID.String() && codeRe.MatchString(content) {
		_, reply := l.Verifier.VerifyCode(ctx, l.member(m.GuildID, m.Author), content)
		l.transientReply(ctx, m.ChannelID, fmt.Sprintf("<@%s> %s", m.Author.ID, reply))
	}

	if err := l.Directory.DeleteMessage(ctx, m.ChannelID, m.ID); err != nil {
		log.Printf("[WARN] failed to delete message %s from pending member %s: %v", m.ID, m.Author.ID, err)
	}
}

// procJoin registers a member join for raid detection and starts verification
func (l *Listener) procJoin(ctx context.Context, g *discordgo.GuildMemberAdd) {
	if g.User == nil || g.User.Bot {
		return
	}

	joinedAt := g.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}
	l.Security.HandleJoin(g.GuildID, g.User.ID, joinedAt)

	if err := l.Verifier.HandleJoin(ctx, l.member(g.GuildID, g.User)); err != nil {
		log.Printf("[WARN] verification join flow failed for %s in %s: %v", g.User.ID, g.GuildID, err)
	}
}

// procInteraction dispatches slash commands. Member-facing verification
// commands are handled here, management commands go to the admin handler.
func (l *Listener) procInteraction(ctx context.Context, ic *discordgo.InteractionCreate) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := ic.ApplicationCommandData()

	switch data.Name {
	case "verify", "verify_resend":
		l.procVerifyCommand(ctx, ic, data)
	case "help", "spamguard", "security":
		l.respond(ic.Interaction, l.admin.handle(ctx, ic, data))
	}
}

// procVerifyCommand handles /verify and /verify_resend. The code check can
// trigger role changes and channel permission updates, so the response is
// deferred and delivered as a followup.
func (l *Listener) procVerifyCommand(ctx context.Context, ic *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if ic.GuildID == "" || ic.Member == nil || ic.Member.User == nil {
		l.respond(ic.Interaction, msgGuildOnly)
		return
	}

	if err := l.API.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		log.Printf("[WARN] failed to defer interaction response: %v", err)
		return
	}

	member := l.member(ic.GuildID, ic.Member.User)
	var reply string
	switch data.Name {
	case "verify":
		code := ""
		for _, opt := range data.Options {
			if opt.Name == "code" {
				code, _ = opt.Value.(string)
			}
		}
		_, reply = l.Verifier.VerifyCode(ctx, member, strings.TrimSpace(code))
	case "verify_resend":
		_, reply = l.Verifier.Resend(ctx, member)
	}
	l.followup(ic.Interaction, reply)
}

// transform converts a gateway message to the security runtime input
func (l *Listener) transform(m *discordgo.MessageCreate) security.Message {
	msg := security.Message{
		GuildID:          m.GuildID,
		ChannelID:        m.ChannelID,
		MessageID:        m.ID,
		UserID:           m.Author.ID,
		UserName:         m.Author.Username,
		UserIcon:         m.Author.AvatarURL(""),
		Bot:              m.Author.Bot,
		Admin:            l.Directory.IsAdmin(m.GuildID, m.Author.ID),
		Content:          m.Content,
		Mentions:         len(m.Mentions),
		CreatedAt:        m.Timestamp,
		AccountCreatedAt: l.Directory.AccountCreated(m.Author.ID),
	}
	if m.Member != nil {
		msg.RoleIDs = m.Member.Roles
		msg.JoinedAt = m.Member.JoinedAt
	}
	return msg
}

// member converts a discord user to the verification flow input
func (l *Listener) member(guildID string, u *discordgo.User) verify.Member {
	return verify.Member{
		GuildID:   guildID,
		UserID:    u.ID,
		GuildName: l.Directory.GuildName(guildID),
		Bot:       u.Bot,
		Admin:     l.Directory.IsAdmin(guildID, u.ID),
	}
}

// transientReply posts a short-lived reply and schedules its removal
func (l *Listener) transientReply(ctx context.Context, channelID, text string) {
	msgID, err := l.Directory.PostMessage(ctx, channelID, text)
	if err != nil {
		log.Printf("[WARN] failed to post reply in %s: %v", channelID, err)
		return
	}
	time.AfterFunc(l.ReplyTTL, func() {
		delCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := l.Directory.DeleteMessage(delCtx, channelID, msgID); err != nil {
			log.Printf("[WARN] failed to remove reply %s in %s: %v", msgID, channelID, err)
		}
	})
}

// respond sends an immediate ephemeral response to an interaction
func (l *Listener) respond(interaction *discordgo.Interaction, text string) {
	err := l.API.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: text, Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Printf("[WARN] failed to respond to interaction: %v", err)
	}
}

// followup delivers the result of a deferred interaction response
func (l *Listener) followup(interaction *discordgo.Interaction, text string) {
	_, err := l.API.FollowupMessageCreate(interaction, true, &discordgo.WebhookParams{
		Content: text,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("[WARN] failed to send interaction followup: %v", err)
	}
}
