package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/app/events/mocks"
	"github.com/spamguard/spamguard/app/security"
	"github.com/spamguard/spamguard/app/verify"
	"github.com/spamguard/spamguard/lib/modcheck"
)

func TestListener_Do(t *testing.T) {
	removed := 0
	mockAPI := &mocks.APIMock{
		ApplicationCommandBulkOverwriteFunc: func(appID string, guildID string,
			commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
			return commands, nil
		},
		AddHandlerFunc: func(handler interface{}) func() {
			return func() { removed++ }
		},
	}
	mockDirectory := &mocks.DirectoryMock{BotUserIDFunc: func() string { return "700000001" }}

	l := Listener{API: mockAPI, Directory: mockDirectory, Operators: Operators{"100000009"}}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := l.Do(ctx)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.Equal(t, 15*time.Second, l.ReplyTTL, "reply ttl defaulted")

	require.Equal(t, 1, len(mockAPI.ApplicationCommandBulkOverwriteCalls()))
	assert.Equal(t, "700000001", mockAPI.ApplicationCommandBulkOverwriteCalls()[0].AppID)
	assert.Equal(t, "", mockAPI.ApplicationCommandBulkOverwriteCalls()[0].GuildID, "commands registered globally")
	assert.Equal(t, 5, len(mockAPI.ApplicationCommandBulkOverwriteCalls()[0].Commands))

	assert.Equal(t, 3, len(mockAPI.AddHandlerCalls()))
	assert.Equal(t, 3, removed, "all handlers removed on exit")
}

func TestListener_DoRegistrationFailed(t *testing.T) {
	mockAPI := &mocks.APIMock{
		ApplicationCommandBulkOverwriteFunc: func(appID string, guildID string,
			commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
			return nil, errors.New("oh my")
		},
	}
	mockDirectory := &mocks.DirectoryMock{BotUserIDFunc: func() string { return "700000001" }}

	l := Listener{API: mockAPI, Directory: mockDirectory}
	err := l.Do(context.Background())
	assert.EqualError(t, err, "can't register slash commands: oh my")
}

func TestListener_procMessage(t *testing.T) {
	mockDirectory := &mocks.DirectoryMock{
		BotUserIDFunc:      func() string { return "700000001" },
		IsAdminFunc:        func(guildID string, userID string) bool { return false },
		AccountCreatedFunc: func(userID string) time.Time { return time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
	mockSecurity := &mocks.SecurityMock{
		HandleMessageFunc: func(ctx context.Context, msg security.Message) security.Outcome {
			return security.Outcome{}
		},
	}
	mockVerifier := &mocks.VerifierMock{
		PendingFunc: func(guildID string, userID string) bool { return false },
	}
	l := &Listener{Directory: mockDirectory, Security: mockSecurity, Verifier: mockVerifier}

	t.Run("guild message routed to security", func(t *testing.T) {
		mockSecurity.ResetCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000001", GuildID: "200000001", ChannelID: "300000001",
			Content: "hello there", Author: &discordgo.User{ID: "100000001", Username: "member"},
		}})
		require.Equal(t, 1, len(mockSecurity.HandleMessageCalls()))
		assert.Equal(t, "hello there", mockSecurity.HandleMessageCalls()[0].Msg.Content)
		assert.Equal(t, "200000001", mockSecurity.HandleMessageCalls()[0].Msg.GuildID)
		assert.Equal(t, "100000001", mockSecurity.HandleMessageCalls()[0].Msg.UserID)
	})

	t.Run("enforced outcome logged", func(t *testing.T) {
		mockSecurity.ResetCalls()
		mockSecurity.HandleMessageFunc = func(ctx context.Context, msg security.Message) security.Outcome {
			return security.Outcome{Enforced: true, Score: 8, Action: modcheck.ActionTimeout, EventID: "SEC-20240211193555-a1b2c3"}
		}
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000002", GuildID: "200000001", ChannelID: "300000001",
			Content: "spam spam spam", Author: &discordgo.User{ID: "100000001"},
		}})
		assert.Equal(t, 1, len(mockSecurity.HandleMessageCalls()))
	})

	t.Run("bot author ignored", func(t *testing.T) {
		mockSecurity.ResetCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000003", GuildID: "200000001", Author: &discordgo.User{ID: "100000005", Bot: true},
		}})
		assert.Equal(t, 0, len(mockSecurity.HandleMessageCalls()))
	})

	t.Run("direct message ignored", func(t *testing.T) {
		mockSecurity.ResetCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000004", Author: &discordgo.User{ID: "100000001"},
		}})
		assert.Equal(t, 0, len(mockSecurity.HandleMessageCalls()))
	})

	t.Run("own message ignored", func(t *testing.T) {
		mockSecurity.ResetCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000005", GuildID: "200000001", Author: &discordgo.User{ID: "700000001"},
		}})
		assert.Equal(t, 0, len(mockSecurity.HandleMessageCalls()))
	})

	t.Run("nil author ignored", func(t *testing.T) {
		mockSecurity.ResetCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000006", GuildID: "200000001",
		}})
		assert.Equal(t, 0, len(mockSecurity.HandleMessageCalls()))
	})
}

func TestListener_procMessagePending(t *testing.T) {
	cfg := config.Defaults()
	cfg.VerifyChannelID = "300000009"

	mockDirectory := &mocks.DirectoryMock{
		BotUserIDFunc: func() string { return "700000001" },
		GuildNameFunc: func(guildID string) string { return "guild one" },
		IsAdminFunc:   func(guildID string, userID string) bool { return false },
		PostMessageFunc: func(ctx context.Context, channelID string, text string) (string, error) {
			return "900000099", nil
		},
		DeleteMessageFunc: func(ctx context.Context, channelID string, messageID string) error { return nil },
	}
	mockSecurity := &mocks.SecurityMock{
		HandleMessageFunc: func(ctx context.Context, msg security.Message) security.Outcome {
			return security.Outcome{}
		},
	}
	mockVerifier := &mocks.VerifierMock{
		PendingFunc: func(guildID string, userID string) bool { return true },
		VerifyCodeFunc: func(ctx context.Context, m verify.Member, input string) (bool, string) {
			return true, "認証が完了しました。"
		},
	}
	mockConfigs := &mocks.ConfigsMock{GuildFunc: func(guildID string) config.GuildConfig { return cfg }}

	// long ttl keeps the transient reply cleanup out of the picture
	l := &Listener{Directory: mockDirectory, Security: mockSecurity, Verifier: mockVerifier,
		Configs: mockConfigs, ReplyTTL: time.Minute}

	t.Run("code attempt in verification channel", func(t *testing.T) {
		mockDirectory.ResetCalls()
		mockVerifier.ResetVerifyCodeCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000001", GuildID: "200000001", ChannelID: "300000009",
			Content: " 123456 ", Author: &discordgo.User{ID: "100000001"},
		}})

		require.Equal(t, 1, len(mockVerifier.VerifyCodeCalls()))
		assert.Equal(t, "123456", mockVerifier.VerifyCodeCalls()[0].Input)
		assert.Equal(t, "100000001", mockVerifier.VerifyCodeCalls()[0].M.UserID)

		require.Equal(t, 1, len(mockDirectory.PostMessageCalls()))
		assert.Equal(t, "300000009", mockDirectory.PostMessageCalls()[0].ChannelID)
		assert.Equal(t, "<@100000001> 認証が完了しました。", mockDirectory.PostMessageCalls()[0].Text)

		require.Equal(t, 1, len(mockDirectory.DeleteMessageCalls()))
		assert.Equal(t, "900000001", mockDirectory.DeleteMessageCalls()[0].MessageID)
		assert.Equal(t, 0, len(mockSecurity.HandleMessageCalls()), "pending member bypasses security")
	})

	t.Run("ordinary message removed without code check", func(t *testing.T) {
		mockDirectory.ResetCalls()
		mockVerifier.ResetVerifyCodeCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000002", GuildID: "200000001", ChannelID: "300000009",
			Content: "hello can anyone see this", Author: &discordgo.User{ID: "100000001"},
		}})
		assert.Equal(t, 0, len(mockVerifier.VerifyCodeCalls()))
		assert.Equal(t, 0, len(mockDirectory.PostMessageCalls()))
		require.Equal(t, 1, len(mockDirectory.DeleteMessageCalls()))
		assert.Equal(t, "900000002", mockDirectory.DeleteMessageCalls()[0].MessageID)
	})

	t.Run("code outside verification channel removed", func(t *testing.T) {
		mockDirectory.ResetCalls()
		mockVerifier.ResetVerifyCodeCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000003", GuildID: "200000001", ChannelID: "300000001",
			Content: "123456", Author: &discordgo.User{ID: "100000001"},
		}})
		assert.Equal(t, 0, len(mockVerifier.VerifyCodeCalls()))
		assert.Equal(t, 1, len(mockDirectory.DeleteMessageCalls()))
	})

	t.Run("seven digits is not a code", func(t *testing.T) {
		mockDirectory.ResetCalls()
		mockVerifier.ResetVerifyCodeCalls()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000004", GuildID: "200000001", ChannelID: "300000009",
			Content: "1234567", Author: &discordgo.User{ID: "100000001"},
		}})
		assert.Equal(t, 0, len(mockVerifier.VerifyCodeCalls()))
		assert.Equal(t, 1, len(mockDirectory.DeleteMessageCalls()))
	})

	t.Run("delete failure tolerated", func(t *testing.T) {
		mockDirectory.ResetCalls()
		mockVerifier.ResetVerifyCodeCalls()
		mockDirectory.DeleteMessageFunc = func(ctx context.Context, channelID string, messageID string) error {
			return errors.New("oh my")
		}
		defer func() {
			mockDirectory.DeleteMessageFunc = func(ctx context.Context, channelID string, messageID string) error { return nil }
		}()
		l.procMessage(context.Background(), &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "900000005", GuildID: "200000001", ChannelID: "300000009",
			Content: "anything", Author: &discordgo.User{ID: "100000001"},
		}})
		assert.Equal(t, 1, len(mockDirectory.DeleteMessageCalls()))
	})
}

func TestListener_procJoin(t *testing.T) {
	mockDirectory := &mocks.DirectoryMock{
		GuildNameFunc: func(guildID string) string { return "guild one" },
		IsAdminFunc:   func(guildID string, userID string) bool { return false },
	}
	mockSecurity := &mocks.SecurityMock{
		HandleJoinFunc: func(guildID string, userID string, joinedAt time.Time) {},
	}
	mockVerifier := &mocks.VerifierMock{
		HandleJoinFunc: func(ctx context.Context, m verify.Member) error { return nil },
	}
	l := &Listener{Directory: mockDirectory, Security: mockSecurity, Verifier: mockVerifier}

	t.Run("member join recorded and verification started", func(t *testing.T) {
		mockSecurity.ResetCalls()
		mockVerifier.ResetCalls()
		joined := time.Date(2024, 2, 11, 19, 0, 0, 0, time.UTC)
		l.procJoin(context.Background(), &discordgo.GuildMemberAdd{Member: &discordgo.Member{
			GuildID: "200000001", User: &discordgo.User{ID: "100000001"}, JoinedAt: joined,
		}})

		require.Equal(t, 1, len(mockSecurity.HandleJoinCalls()))
		assert.Equal(t, "200000001", mockSecurity.HandleJoinCalls()[0].GuildID)
		assert.Equal(t, "100000001", mockSecurity.HandleJoinCalls()[0].UserID)
		assert.Equal(t, joined, mockSecurity.HandleJoinCalls()[0].JoinedAt)

		require.Equal(t, 1, len(mockVerifier.HandleJoinCalls()))
		assert.Equal(t, verify.Member{GuildID: "200000001", UserID: "100000001", GuildName: "guild one"},
			mockVerifier.HandleJoinCalls()[0].M)
	})

	t.Run("bot join ignored", func(t *testing.T) {
		mockSecurity.ResetCalls()
		mockVerifier.ResetCalls()
		l.procJoin(context.Background(), &discordgo.GuildMemberAdd{Member: &discordgo.Member{
			GuildID: "200000001", User: &discordgo.User{ID: "100000005", Bot: true},
		}})
		assert.Equal(t, 0, len(mockSecurity.HandleJoinCalls()))
		assert.Equal(t, 0, len(mockVerifier.HandleJoinCalls()))
	})

	t.Run("zero join time falls back to now", func(t *testing.T) {
		mockSecurity.ResetCalls()
		mockVerifier.ResetCalls()
		l.procJoin(context.Background(), &discordgo.GuildMemberAdd{Member: &discordgo.Member{
			GuildID: "200000001", User: &discordgo.User{ID: "100000002"},
		}})
		require.Equal(t, 1, len(mockSecurity.HandleJoinCalls()))
		assert.True(t, time.Since(mockSecurity.HandleJoinCalls()[0].JoinedAt) < time.Second)
	})

	t.Run("verification failure tolerated", func(t *testing.T) {
		mockSecurity.ResetCalls()
		mockVerifier.ResetCalls()
		mockVerifier.HandleJoinFunc = func(ctx context.Context, m verify.Member) error { return errors.New("oh my") }
		defer func() {
			mockVerifier.HandleJoinFunc = func(ctx context.Context, m verify.Member) error { return nil }
		}()
		l.procJoin(context.Background(), &discordgo.GuildMemberAdd{Member: &discordgo.Member{
			GuildID: "200000001", User: &discordgo.User{ID: "100000003"},
		}})
		assert.Equal(t, 1, len(mockSecurity.HandleJoinCalls()))
		assert.Equal(t, 1, len(mockVerifier.HandleJoinCalls()))
	})
}

func TestListener_procInteraction(t *testing.T) {
	mockAPI := &mocks.APIMock{
		ApplicationCommandBulkOverwriteFunc: func(appID string, guildID string,
			commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
			return commands, nil
		},
		AddHandlerFunc: func(handler interface{}) func() { return func() {} },
		InteractionRespondFunc: func(interaction *discordgo.Interaction,
			resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
			return nil
		},
		FollowupMessageCreateFunc: func(interaction *discordgo.Interaction, wait bool,
			data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
			return &discordgo.Message{ID: "900000050"}, nil
		},
	}
	mockDirectory := &mocks.DirectoryMock{
		BotUserIDFunc: func() string { return "700000001" },
		GuildNameFunc: func(guildID string) string { return "guild one" },
		IsAdminFunc:   func(guildID string, userID string) bool { return false },
	}
	mockVerifier := &mocks.VerifierMock{
		VerifyCodeFunc: func(ctx context.Context, m verify.Member, input string) (bool, string) {
			return false, "コードが一致しません。"
		},
		ResendFunc: func(ctx context.Context, m verify.Member) (bool, string) {
			return true, "再送しました。"
		},
	}
	mockConfigs := &mocks.ConfigsMock{
		GuildFunc: func(guildID string) config.GuildConfig { return config.Defaults() },
	}
	l := &Listener{API: mockAPI, Directory: mockDirectory, Verifier: mockVerifier, Configs: mockConfigs}

	// run with an already canceled context to wire the admin handler
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, l.Do(ctx), context.Canceled)
	mockAPI.ResetCalls()

	t.Run("verify command deferred and answered", func(t *testing.T) {
		mockAPI.ResetCalls()
		mockVerifier.ResetCalls()
		l.procInteraction(context.Background(), &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "200000001",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "100000001"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "verify",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "code", Type: discordgo.ApplicationCommandOptionString, Value: " 123456 "},
				},
			},
		}})

		require.Equal(t, 1, len(mockAPI.InteractionRespondCalls()))
		assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource,
			mockAPI.InteractionRespondCalls()[0].Resp.Type)

		require.Equal(t, 1, len(mockVerifier.VerifyCodeCalls()))
		assert.Equal(t, "123456", mockVerifier.VerifyCodeCalls()[0].Input, "code trimmed before the check")
		assert.Equal(t, "100000001", mockVerifier.VerifyCodeCalls()[0].M.UserID)

		require.Equal(t, 1, len(mockAPI.FollowupMessageCreateCalls()))
		assert.True(t, mockAPI.FollowupMessageCreateCalls()[0].Wait)
		assert.Equal(t, "コードが一致しません。", mockAPI.FollowupMessageCreateCalls()[0].Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, mockAPI.FollowupMessageCreateCalls()[0].Data.Flags)
	})

	t.Run("verify_resend answered", func(t *testing.T) {
		mockAPI.ResetCalls()
		mockVerifier.ResetCalls()
		l.procInteraction(context.Background(), &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "200000001",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "100000001"}},
			Data:    discordgo.ApplicationCommandInteractionData{Name: "verify_resend"},
		}})

		require.Equal(t, 1, len(mockVerifier.ResendCalls()))
		assert.Equal(t, "100000001", mockVerifier.ResendCalls()[0].M.UserID)
		require.Equal(t, 1, len(mockAPI.FollowupMessageCreateCalls()))
		assert.Equal(t, "再送しました。", mockAPI.FollowupMessageCreateCalls()[0].Data.Content)
	})

	t.Run("verify outside guild rejected", func(t *testing.T) {
		mockAPI.ResetCalls()
		mockVerifier.ResetCalls()
		l.procInteraction(context.Background(), &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			User: &discordgo.User{ID: "100000001"},
			Data: discordgo.ApplicationCommandInteractionData{Name: "verify"},
		}})

		require.Equal(t, 1, len(mockAPI.InteractionRespondCalls()))
		resp := mockAPI.InteractionRespondCalls()[0].Resp
		assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
		assert.Equal(t, "サーバー内で実行してください。", resp.Data.Content)
		assert.Equal(t, 0, len(mockAPI.FollowupMessageCreateCalls()))
		assert.Equal(t, 0, len(mockVerifier.VerifyCodeCalls()))
	})

	t.Run("management command without permission refused", func(t *testing.T) {
		mockAPI.ResetCalls()
		l.procInteraction(context.Background(), &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "200000001",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "100000001"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "spamguard",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "status", Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
		}})

		require.Equal(t, 1, len(mockAPI.InteractionRespondCalls()))
		resp := mockAPI.InteractionRespondCalls()[0].Resp
		assert.Equal(t, "サーバー管理権限(Manage Server)が必要です。", resp.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	})

	t.Run("help answered inline", func(t *testing.T) {
		mockAPI.ResetCalls()
		l.procInteraction(context.Background(), &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "200000001",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "100000001"}},
			Data:    discordgo.ApplicationCommandInteractionData{Name: "help"},
		}})

		require.Equal(t, 1, len(mockAPI.InteractionRespondCalls()))
		assert.Contains(t, mockAPI.InteractionRespondCalls()[0].Resp.Data.Content, "[spamguard]")
	})

	t.Run("non command interaction ignored", func(t *testing.T) {
		mockAPI.ResetCalls()
		l.procInteraction(context.Background(), &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
		}})
		assert.Equal(t, 0, len(mockAPI.InteractionRespondCalls()))
	})
}

func TestListener_transientReply(t *testing.T) {
	mockDirectory := &mocks.DirectoryMock{
		PostMessageFunc: func(ctx context.Context, channelID string, text string) (string, error) {
			return "900000099", nil
		},
		DeleteMessageFunc: func(ctx context.Context, channelID string, messageID string) error { return nil },
	}
	l := &Listener{Directory: mockDirectory, ReplyTTL: 10 * time.Millisecond}

	l.transientReply(context.Background(), "300000001", "short lived")
	require.Equal(t, 1, len(mockDirectory.PostMessageCalls()))
	assert.Equal(t, "short lived", mockDirectory.PostMessageCalls()[0].Text)

	require.Eventually(t, func() bool { return len(mockDirectory.DeleteMessageCalls()) == 1 },
		time.Second, 5*time.Millisecond, "reply removed after ttl")
	assert.Equal(t, "900000099", mockDirectory.DeleteMessageCalls()[0].MessageID)
	assert.Equal(t, "300000001", mockDirectory.DeleteMessageCalls()[0].ChannelID)

	t.Run("post failure skips cleanup", func(t *testing.T) {
		mockDirectory.ResetCalls()
		mockDirectory.PostMessageFunc = func(ctx context.Context, channelID string, text string) (string, error) {
			return "", errors.New("oh my")
		}
		l.transientReply(context.Background(), "300000001", "short lived")
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, 0, len(mockDirectory.DeleteMessageCalls()))
	})
}
