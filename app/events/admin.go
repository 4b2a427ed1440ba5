package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/app/verify"
	"github.com/spamguard/spamguard/lib/modcheck"
)

// logViewerRoleName is the dedicated role granting access to the log channel
const logViewerRoleName = "SpamGuard-Log閲覧者"

const (
	msgNeedManage = "サーバー管理権限(Manage Server)が必要です。"
	msgGuildOnly  = "サーバー内で実行してください。"
	msgSaveFail   = "設定の保存に失敗しました。"
)

// statusKeys is the presentation order of /spamguard status
var statusKeys = []string{
	"window_sec", "max_msg_in_window", "duplicate_window_sec", "dup_threshold",
	"url_threshold", "url_repeat_window_sec", "url_repeat_threshold", "mention_threshold",
	"score_threshold", "timeout_minutes", "warning_threshold", "timeout_threshold",
	"ban_threshold", "ban_enabled", "offense_window_sec",
	"raid_join_window_sec", "raid_join_threshold", "raid_message_window_sec",
	"raid_new_user_message_threshold", "new_member_window_sec",
	"verify_enabled", "verify_channel_id", "verify_unverified_role_id", "verify_member_role_id",
	"verify_timeout_minutes", "verify_max_attempts", "verify_fail_action",
	"log_channel_id", "log_viewer_role_id",
	"ignore_role_ids", "ignore_channel_ids", "whitelist_user_ids", "whitelist_role_ids",
	"allow_domains", "phishing_domains",
}

// securityStatusKeys is the presentation order of /security status
var securityStatusKeys = []string{
	"score_threshold", "warning_threshold", "timeout_threshold", "ban_threshold",
	"ban_enabled", "offense_window_sec", "mention_threshold",
	"raid_join_threshold", "raid_new_user_message_threshold",
	"phishing_domains", "allow_domains", "whitelist_user_ids", "whitelist_role_ids",
	"verify_enabled", "verify_channel_id", "verify_timeout_minutes",
	"verify_max_attempts", "verify_fail_action",
}

// verifyStatusKeys is the presentation order of /security verify status
var verifyStatusKeys = []string{
	"verify_enabled", "verify_channel_id", "verify_unverified_role_id", "verify_member_role_id",
	"verify_timeout_minutes", "verify_max_attempts", "verify_fail_action",
}

// listOnlyKeys are settings managed by dedicated subcommands, /spamguard set refuses them
var listOnlyKeys = map[string]struct{}{
	"ignore_role_ids":    {},
	"ignore_channel_ids": {},
	"whitelist_user_ids": {},
	"whitelist_role_ids": {},
	"allow_domains":      {},
	"phishing_domains":   {},
	"suspicious_tlds":    {},
}

// editableRules are the settings /security rule set accepts
var editableRules = map[string]struct{}{
	"window_sec": {}, "max_msg_in_window": {}, "duplicate_window_sec": {}, "dup_threshold": {},
	"url_threshold": {}, "url_repeat_window_sec": {}, "url_repeat_threshold": {},
	"mention_threshold": {}, "score_threshold": {}, "timeout_minutes": {},
	"warning_threshold": {}, "timeout_threshold": {}, "ban_threshold": {},
	"offense_window_sec": {}, "ban_enabled": {},
	"raid_join_window_sec": {}, "raid_join_threshold": {}, "raid_message_window_sec": {},
	"raid_new_user_message_threshold": {}, "new_member_window_sec": {},
	"log_channel_id": {}, "verify_enabled": {}, "verify_channel_id": {},
	"verify_timeout_minutes": {}, "verify_max_attempts": {}, "verify_fail_action": {},
	"verify_member_role_id": {},
}

// bulkFields lists the batch-update options of /spamguard setting bulk in order
var bulkFields = []struct {
	name  string
	desc  string
	apply func(*config.GuildConfig, int)
}{
	{"window_sec", "連投判定ウィンドウ秒数", func(g *config.GuildConfig, v int) { g.WindowSec = v }},
	{"max_msg_in_window", "連投判定の投稿数閾値", func(g *config.GuildConfig, v int) { g.MaxMsgInWindow = v }},
	{"duplicate_window_sec", "同文判定ウィンドウ秒数", func(g *config.GuildConfig, v int) { g.DuplicateWindowSec = v }},
	{"dup_threshold", "同文判定回数閾値", func(g *config.GuildConfig, v int) { g.DupThreshold = v }},
	{"url_threshold", "1メッセージ内URL数閾値", func(g *config.GuildConfig, v int) { g.URLThreshold = v }},
	{"url_repeat_window_sec", "同一URL監視秒数", func(g *config.GuildConfig, v int) { g.URLRepeatWindowSec = v }},
	{"url_repeat_threshold", "同一URL投稿回数閾値", func(g *config.GuildConfig, v int) { g.URLRepeatThreshold = v }},
	{"mention_threshold", "メンション数閾値", func(g *config.GuildConfig, v int) { g.MentionThreshold = v }},
	{"score_threshold", "スパム判定スコア閾値", func(g *config.GuildConfig, v int) { g.ScoreThreshold = v }},
	{"timeout_minutes", "タイムアウト分数", func(g *config.GuildConfig, v int) { g.TimeoutMinutes = v }},
	{"timeout_threshold", "タイムアウト開始違反回数", func(g *config.GuildConfig, v int) { g.TimeoutThreshold = v }},
	{"ban_threshold", "BAN開始違反回数", func(g *config.GuildConfig, v int) { g.BanThreshold = v }},
}

// admin handles the management slash commands. Everything except /help
// requires the manage-server permission in the guild, or operator status.
type admin struct {
	directory Directory
	configs   Configs
	verifier  Verifier
	operators Operators
}

// handle executes a management command and returns the reply text
func (a *admin) handle(ctx context.Context, ic *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) string {
	if data.Name == "help" {
		return a.help(data.Options)
	}

	if !a.allowed(ic.GuildID, interactionUser(ic)) {
		return msgNeedManage
	}
	if ic.GuildID == "" {
		return msgGuildOnly
	}

	switch data.Name {
	case "spamguard":
		return a.handleSpamguard(ctx, ic.GuildID, data.Options)
	case "security":
		return a.handleSecurity(ic.GuildID, data.Options)
	}
	return ""
}

func (a *admin) allowed(guildID, userID string) bool {
	if a.operators.IsOperator(userID) {
		return true
	}
	return guildID != "" && a.directory.IsAdmin(guildID, userID)
}

// help renders the command reference for the requested category
func (a *admin) help(opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	category := optString(opts, "category")
	if category == "" {
		category = "all"
	}

	var sections []string
	if category == "all" || category == "spamguard" {
		sections = append(sections, strings.Join([]string{
			"[spamguard]",
			"/spamguard status: 現在のスパム検知設定と関連値を表示します。",
			"/spamguard set key value: 単一設定を変更します。",
			"/spamguard setting bulk: スパム検知関連の値を一括更新します。",
			"/spamguard setting log_setup: ログ出力チャンネル設定と閲覧制限をまとめて適用します。",
			"/spamguard setting log_viewer: ログ閲覧ロールをユーザーへ付与/剥奪します。",
			"/spamguard setting log_clear: ログチャンネル設定を解除します。",
			"/spamguard ignore add: チャンネルまたはロールを検知対象から除外します。",
			"/spamguard ignore remove: 除外を解除して検知対象に戻します。",
		}, "\n"))
	}
	if category == "all" || category == "security" {
		sections = append(sections, strings.Join([]string{
			"[security]",
			"/security status: セキュリティ機能全体の状態を表示します。",
			"/security rule list: 更新可能なルールと現在値を表示します。",
			"/security rule set: 指定ルールを1項目更新します。",
			"/security whitelist add: 許可ユーザー/ロール/ドメインを追加します。",
			"/security whitelist remove: 許可ユーザー/ロール/ドメインを削除します。",
			"/security whitelist list: 現在のホワイトリスト一覧を表示します。",
			"/security blocklist domain_add: 危険ドメインを追加します。",
			"/security blocklist domain_remove: 危険ドメインを削除します。",
			"/security blocklist tld_add: 危険TLDを追加します。",
			"/security blocklist tld_remove: 危険TLDを削除します。",
			"/security verify status: 入室認証設定と保留認証数を表示します。",
			"/security verify configure: 入室認証設定を更新します。",
			"/security verify unverified_role: 未認証ユーザー用ロールを設定します。",
		}, "\n"))
	}
	if category == "all" || category == "verify" {
		sections = append(sections, strings.Join([]string{
			"[verify]",
			"/verify code:<6桁コード>: DMで届いたコードを入力して認証を完了します。",
			"/verify_resend: 認証コードを再発行して再送します。",
		}, "\n"))
	}
	sections = append(sections, strings.Join([]string{
		"[note]",
		"管理系コマンド（/spamguard, /security）はManage Server権限が必要です。",
		"認証コードは入室時にDM送信され、認証チャンネルで `/verify` 実行を案内します。",
		"認証チャンネルが未設定なら自動作成され、未認証ユーザーは認証チャンネルのみ閲覧可能です。",
		"認証中の通常メッセージは削除されます。",
	}, "\n"))

	return strings.Join(sections, "\n\n")
}

func (a *admin) handleSpamguard(ctx context.Context, guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	if len(opts) == 0 {
		return ""
	}
	sub := opts[0]
	switch sub.Name {
	case "status":
		return renderKeys(a.configs.Guild(guildID), statusKeys)
	case "set":
		return a.setKey(guildID, optString(sub.Options, "key"), optString(sub.Options, "value"))
	case "setting":
		return a.handleSetting(ctx, guildID, sub.Options)
	case "ignore":
		return a.handleIgnore(guildID, sub.Options)
	}
	return ""
}

func (a *admin) handleSetting(ctx context.Context, guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	if len(opts) == 0 {
		return ""
	}
	sub := opts[0]
	switch sub.Name {
	case "bulk":
		return a.settingBulk(guildID, sub.Options)
	case "log_setup":
		return a.logSetup(ctx, guildID, sub.Options)
	case "log_viewer":
		return a.logViewer(ctx, guildID, sub.Options)
	case "log_clear":
		return a.logClear(guildID)
	}
	return ""
}

func (a *admin) handleIgnore(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	if len(opts) == 0 {
		return ""
	}
	sub := opts[0]
	switch sub.Name {
	case "add":
		return a.ignoreUpdate(guildID, sub.Options, true)
	case "remove":
		return a.ignoreUpdate(guildID, sub.Options, false)
	}
	return ""
}

func (a *admin) handleSecurity(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	if len(opts) == 0 {
		return ""
	}
	sub := opts[0]
	switch sub.Name {
	case "status":
		return renderKeys(a.configs.Guild(guildID), securityStatusKeys)
	case "rule":
		return a.handleRule(guildID, sub.Options)
	case "whitelist":
		return a.handleWhitelist(guildID, sub.Options)
	case "blocklist":
		return a.handleBlocklist(guildID, sub.Options)
	case "verify":
		return a.handleVerifySettings(guildID, sub.Options)
	}
	return ""
}

func (a *admin) handleRule(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	if len(opts) == 0 {
		return ""
	}
	sub := opts[0]
	switch sub.Name {
	case "list":
		return a.ruleList(guildID)
	case "set":
		return a.ruleSet(guildID, optString(sub.Options, "key"), optString(sub.Options, "value"))
	}
	return ""
}

func (a *admin) handleWhitelist(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	if len(opts) == 0 {
		return ""
	}
	sub := opts[0]
	switch sub.Name {
	case "add":
		return a.whitelistUpdate(guildID, sub.Options, true)
	case "remove":
		return a.whitelistUpdate(guildID, sub.Options, false)
	case "list":
		return a.whitelistList(guildID)
	}
	return ""
}

func (a *admin) handleBlocklist(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	if len(opts) == 0 {
		return ""
	}
	sub := opts[0]
	switch sub.Name {
	case "domain_add":
		return a.blocklistDomain(guildID, optString(sub.Options, "domain"), true)
	case "domain_remove":
		return a.blocklistDomain(guildID, optString(sub.Options, "domain"), false)
	case "tld_add":
		return a.blocklistTLD(guildID, optString(sub.Options, "tld"), true)
	case "tld_remove":
		return a.blocklistTLD(guildID, optString(sub.Options, "tld"), false)
	}
	return ""
}

func (a *admin) handleVerifySettings(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	if len(opts) == 0 {
		return ""
	}
	sub := opts[0]
	switch sub.Name {
	case "status":
		return renderKeys(a.configs.Guild(guildID), verifyStatusKeys) +
			fmt.Sprintf("\npending_sessions=%d", a.verifier.PendingCount(guildID))
	case "configure":
		return a.verifyConfigure(guildID, sub.Options)
	case "unverified_role":
		return a.unverifiedRole(guildID, sub.Options)
	}
	return ""
}

// setKey updates a single setting and reports the stored value
func (a *admin) setKey(guildID, key, value string) string {
	if _, listKey := listOnlyKeys[key]; listKey {
		return fmt.Sprintf("%s は専用サブコマンドを使ってください。", key)
	}
	if err := a.configs.SetValue(guildID, key, value); err != nil {
		switch {
		case errors.Is(err, config.ErrUnknownKey):
			return fmt.Sprintf("不明なキーです: %s", key)
		case errors.Is(err, config.ErrCoercionFailed):
			return fmt.Sprintf("%s の値が不正です: %s", key, value)
		default:
			return saveFailed(key, guildID, err)
		}
	}
	return fmt.Sprintf("更新しました: %s=%s", key, configValues(a.configs.Guild(guildID))[key])
}

func (a *admin) ruleList(guildID string) string {
	vals := configValues(a.configs.Guild(guildID))
	keys := make([]string, 0, len(editableRules))
	for k := range editableRules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s=%s", k, vals[k]))
	}
	return strings.Join(lines, "\n")
}

func (a *admin) ruleSet(guildID, key, value string) string {
	if _, ok := editableRules[key]; !ok {
		return fmt.Sprintf("更新できないキーです: %s", key)
	}
	if err := a.configs.SetValue(guildID, key, value); err != nil {
		if errors.Is(err, config.ErrCoercionFailed) {
			return fmt.Sprintf("%s の値が不正です: %s", key, value)
		}
		return saveFailed(key, guildID, err)
	}
	return fmt.Sprintf("更新しました: %s=%s", key, configValues(a.configs.Guild(guildID))[key])
}

func (a *admin) settingBulk(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	var updates []string
	var appliers []func(*config.GuildConfig)
	for _, f := range bulkFields {
		v, ok := optInt(opts, f.name)
		if !ok {
			continue
		}
		appliers = append(appliers, func(g *config.GuildConfig) { f.apply(g, v) })
		updates = append(updates, fmt.Sprintf("%s=%d", f.name, v))
	}
	if len(updates) == 0 {
		return "更新する値が指定されていません。必要な項目だけ入力してください。"
	}

	err := a.configs.Update(guildID, func(g *config.GuildConfig) {
		for _, apply := range appliers {
			apply(g)
		}
	})
	if err != nil {
		return saveFailed("bulk settings", guildID, err)
	}
	return "一括更新しました: " + strings.Join(updates, ", ")
}

// logSetup points the event log at a channel and optionally hides the channel
// from regular members. The channel id is persisted only when the restriction
// is applied cleanly.
func (a *admin) logSetup(ctx context.Context, guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	channelID := optString(opts, "channel")
	restrict := true
	if v, ok := optBool(opts, "restrict"); ok {
		restrict = v
	}

	message := fmt.Sprintf("ログチャンネルを設定しました: <#%s>", channelID)
	if restrict {
		ok, detail := a.applyLogRestriction(ctx, guildID, channelID)
		if !ok {
			return detail
		}
		message += fmt.Sprintf("\n閲覧制限を適用しました（%s）", detail)
	}

	err := a.configs.Update(guildID, func(g *config.GuildConfig) { g.LogChannelID = config.ID(channelID) })
	if err != nil {
		return saveFailed("log channel", guildID, err)
	}
	return message
}

func (a *admin) logViewer(ctx context.Context, guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	action := optString(opts, "action")
	memberID := optString(opts, "member")

	cfg := a.configs.Guild(guildID)
	roleID := cfg.LogViewerRoleID.String()
	if roleID != "" && !a.directory.RoleExists(guildID, roleID) {
		roleID = ""
	}
	if roleID == "" && action == "add" {
		if created, err := a.ensureLogViewerRole(ctx, guildID); err == nil {
			roleID = created
		}
	}
	if roleID == "" {
		return "閲覧ロールがありません。先に /spamguard setting log_setup を実行してください。"
	}

	switch action {
	case "add":
		if err := a.directory.AddRole(ctx, guildID, memberID, roleID, "SpamGuardログ閲覧権限の付与"); err != nil {
			return roleOpError(err)
		}
		return fmt.Sprintf("<@%s> に <@&%s> を付与しました。", memberID, roleID)
	case "remove":
		if err := a.directory.RemoveRole(ctx, guildID, memberID, roleID, "SpamGuardログ閲覧権限の剥奪"); err != nil {
			return roleOpError(err)
		}
		return fmt.Sprintf("<@%s> から <@&%s> を剥奪しました。", memberID, roleID)
	}
	return ""
}

func (a *admin) logClear(guildID string) string {
	err := a.configs.Update(guildID, func(g *config.GuildConfig) { g.LogChannelID = "" })
	if err != nil {
		return saveFailed("log channel", guildID, err)
	}
	return "ログチャンネル設定を解除しました。"
}

func (a *admin) ignoreUpdate(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption, add bool) string {
	roleID := optString(opts, "role")
	channelID := optString(opts, "channel")
	if (roleID == "") == (channelID == "") {
		return "role か channel のどちらか片方だけ指定してください。"
	}

	if roleID != "" {
		err := a.configs.Update(guildID, func(g *config.GuildConfig) {
			if add {
				g.IgnoreRoleIDs = appendID(g.IgnoreRoleIDs, roleID)
			} else {
				g.IgnoreRoleIDs = removeID(g.IgnoreRoleIDs, roleID)
			}
		})
		if err != nil {
			return saveFailed("ignore roles", guildID, err)
		}
		if add {
			return "除外ロールを追加しました: " + a.roleLabel(guildID, roleID)
		}
		return "除外ロールを解除しました: " + a.roleLabel(guildID, roleID)
	}

	err := a.configs.Update(guildID, func(g *config.GuildConfig) {
		if add {
			g.IgnoreChannelIDs = appendID(g.IgnoreChannelIDs, channelID)
		} else {
			g.IgnoreChannelIDs = removeID(g.IgnoreChannelIDs, channelID)
		}
	})
	if err != nil {
		return saveFailed("ignore channels", guildID, err)
	}
	if add {
		return fmt.Sprintf("除外チャンネルを追加しました: <#%s>", channelID)
	}
	return fmt.Sprintf("除外チャンネルを解除しました: <#%s>", channelID)
}

func (a *admin) whitelistUpdate(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption, add bool) string {
	userID := optString(opts, "user")
	roleID := optString(opts, "role")
	domain := optString(opts, "domain")

	provided := 0
	for _, v := range []string{userID, roleID, domain} {
		if v != "" {
			provided++
		}
	}
	if provided != 1 {
		return "user / role / domain のいずれか1つだけ指定してください。"
	}

	switch {
	case userID != "":
		err := a.configs.Update(guildID, func(g *config.GuildConfig) {
			if add {
				g.WhitelistUserIDs = appendID(g.WhitelistUserIDs, userID)
			} else {
				g.WhitelistUserIDs = removeID(g.WhitelistUserIDs, userID)
			}
		})
		if err != nil {
			return saveFailed("whitelist users", guildID, err)
		}
		if add {
			return fmt.Sprintf("許可ユーザーを追加しました: <@%s>", userID)
		}
		return fmt.Sprintf("許可ユーザーを削除しました: <@%s>", userID)

	case roleID != "":
		err := a.configs.Update(guildID, func(g *config.GuildConfig) {
			if add {
				g.WhitelistRoleIDs = appendID(g.WhitelistRoleIDs, roleID)
			} else {
				g.WhitelistRoleIDs = removeID(g.WhitelistRoleIDs, roleID)
			}
		})
		if err != nil {
			return saveFailed("whitelist roles", guildID, err)
		}
		if add {
			return "許可ロールを追加しました: " + a.roleLabel(guildID, roleID)
		}
		return "許可ロールを削除しました: " + a.roleLabel(guildID, roleID)

	default:
		normalized := normalizeDomain(domain)
		if normalized != "" {
			err := a.configs.Update(guildID, func(g *config.GuildConfig) {
				if add {
					g.AllowDomains = appendString(g.AllowDomains, normalized)
				} else {
					g.AllowDomains = removeString(g.AllowDomains, normalized)
				}
			})
			if err != nil {
				return saveFailed("allow domains", guildID, err)
			}
		}
		if add {
			return "許可ドメインを追加しました: " + normalized
		}
		return "許可ドメインを削除しました: " + normalized
	}
}

func (a *admin) whitelistList(guildID string) string {
	cfg := a.configs.Guild(guildID)

	users := make([]string, 0, len(cfg.WhitelistUserIDs))
	for _, id := range cfg.WhitelistUserIDs {
		users = append(users, "<@"+id.String()+">")
	}
	roles := make([]string, 0, len(cfg.WhitelistRoleIDs))
	for _, id := range cfg.WhitelistRoleIDs {
		if a.directory.RoleExists(guildID, id.String()) {
			roles = append(roles, "<@&"+id.String()+">")
			continue
		}
		roles = append(roles, id.String())
	}
	domains := append([]string{}, cfg.AllowDomains...)
	sort.Strings(domains)

	return strings.Join([]string{
		"whitelist users: " + joinOrNone(users),
		"whitelist roles: " + joinOrNone(roles),
		"allow domains: " + joinOrNone(domains),
	}, "\n")
}

func (a *admin) blocklistDomain(guildID, domain string, add bool) string {
	normalized := normalizeDomain(domain)
	if normalized != "" {
		err := a.configs.Update(guildID, func(g *config.GuildConfig) {
			if add {
				g.PhishingDomains = appendString(g.PhishingDomains, normalized)
			} else {
				g.PhishingDomains = removeString(g.PhishingDomains, normalized)
			}
		})
		if err != nil {
			return saveFailed("phishing domains", guildID, err)
		}
	}
	if add {
		return "危険ドメインを追加しました: " + normalized
	}
	return "危険ドメインを削除しました: " + normalized
}

func (a *admin) blocklistTLD(guildID, tld string, add bool) string {
	normalized := normalizeTLD(tld)
	if normalized != "" {
		err := a.configs.Update(guildID, func(g *config.GuildConfig) {
			if add {
				g.SuspiciousTLDs = appendString(g.SuspiciousTLDs, normalized)
			} else {
				g.SuspiciousTLDs = removeString(g.SuspiciousTLDs, normalized)
			}
		})
		if err != nil {
			return saveFailed("suspicious tlds", guildID, err)
		}
	}
	if add {
		return "危険TLDを追加しました: ." + normalized
	}
	return "危険TLDを削除しました: ." + normalized
}

func (a *admin) verifyConfigure(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	var updates []string
	var appliers []func(*config.GuildConfig)

	if enabled, ok := optBool(opts, "enabled"); ok {
		appliers = append(appliers, func(g *config.GuildConfig) { g.VerifyEnabled = enabled })
		updates = append(updates, fmt.Sprintf("verify_enabled=%t", enabled))
	}
	if channelID := optString(opts, "channel"); channelID != "" {
		appliers = append(appliers, func(g *config.GuildConfig) { g.VerifyChannelID = config.ID(channelID) })
		updates = append(updates, "verify_channel_id="+channelID)
	}
	if roleID := optString(opts, "member_role"); roleID != "" {
		appliers = append(appliers, func(g *config.GuildConfig) { g.VerifyMemberRoleID = config.ID(roleID) })
		updates = append(updates, "verify_member_role_id="+roleID)
	}
	if v, ok := optInt(opts, "timeout_minutes"); ok {
		appliers = append(appliers, func(g *config.GuildConfig) { g.VerifyTimeoutMinutes = v })
		updates = append(updates, fmt.Sprintf("verify_timeout_minutes=%d", v))
	}
	if v, ok := optInt(opts, "max_attempts"); ok {
		appliers = append(appliers, func(g *config.GuildConfig) { g.VerifyMaxAttempts = v })
		updates = append(updates, fmt.Sprintf("verify_max_attempts=%d", v))
	}
	if action := optString(opts, "fail_action"); action != "" {
		appliers = append(appliers, func(g *config.GuildConfig) { g.VerifyFailAction = action })
		updates = append(updates, "verify_fail_action="+action)
	}

	if len(updates) == 0 {
		return "更新対象がありません。"
	}
	err := a.configs.Update(guildID, func(g *config.GuildConfig) {
		for _, apply := range appliers {
			apply(g)
		}
	})
	if err != nil {
		return saveFailed("verification settings", guildID, err)
	}
	return "更新しました: " + strings.Join(updates, ", ")
}

func (a *admin) unverifiedRole(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	roleID := a.resolveRoleInput(guildID, optString(opts, "role"))
	if roleID == "" {
		return "ロールを解決できませんでした。メンション・ID・ロール名のいずれかを指定してください。"
	}
	err := a.configs.Update(guildID, func(g *config.GuildConfig) { g.VerifyUnverifiedRoleID = config.ID(roleID) })
	if err != nil {
		return saveFailed("unverified role", guildID, err)
	}
	return "未認証ロールを設定しました: " + a.roleLabel(guildID, roleID)
}

// ensureLogViewerRole returns the dedicated viewer role id, creating the role
// and persisting its id when missing
func (a *admin) ensureLogViewerRole(ctx context.Context, guildID string) (string, error) {
	cfg := a.configs.Guild(guildID)
	if cfg.LogViewerRoleID.Defined() && a.directory.RoleExists(guildID, cfg.LogViewerRoleID.String()) {
		return cfg.LogViewerRoleID.String(), nil
	}

	roleID, err := a.directory.CreateRole(ctx, guildID, logViewerRoleName, "SpamGuardログ閲覧用ロールの自動作成")
	if err != nil {
		return "", fmt.Errorf("can't create log viewer role: %w", err)
	}
	err = a.configs.Update(guildID, func(g *config.GuildConfig) { g.LogViewerRoleID = config.ID(roleID) })
	if err != nil {
		log.Printf("[WARN] failed to persist log viewer role for guild %s: %v", guildID, err)
	}
	return roleID, nil
}

// applyLogRestriction hides the log channel from regular members, leaving it
// visible to the viewer role and the bot itself
func (a *admin) applyLogRestriction(ctx context.Context, guildID, channelID string) (ok bool, detail string) {
	roleID, err := a.ensureLogViewerRole(ctx, guildID)
	if err != nil {
		log.Printf("[WARN] %v", err)
		return false, "閲覧用ロールの作成に失敗しました。"
	}

	const reason = "SpamGuardログ閲覧制限の適用"
	overwrites := []struct {
		target verify.Target
		perms  verify.Permissions
	}{
		{verify.Target{Kind: verify.TargetEveryone}, verify.Permissions{View: verify.PermDeny, History: verify.PermDeny}},
		{verify.Target{Kind: verify.TargetRole, ID: roleID}, verify.Permissions{View: verify.PermAllow, History: verify.PermAllow}},
		{verify.Target{Kind: verify.TargetMember, ID: a.directory.BotUserID()},
			verify.Permissions{View: verify.PermAllow, Send: verify.PermAllow, History: verify.PermAllow}},
	}
	for _, ow := range overwrites {
		perms := ow.perms
		if err := a.directory.SetPermission(ctx, channelID, ow.target, &perms, reason); err != nil {
			log.Printf("[WARN] failed to restrict log channel %s: %v", channelID, err)
			if errors.Is(err, modcheck.ErrForbidden) {
				return false, "チャンネル権限の変更に失敗しました。"
			}
			return false, "チャンネル更新中にAPIエラーが発生しました。"
		}
	}
	return true, fmt.Sprintf("閲覧ロール: <@&%s>", roleID)
}

// resolveRoleInput accepts a role mention, a raw id or a role name
func (a *admin) resolveRoleInput(guildID, raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "<@&") && strings.HasSuffix(text, ">") {
		text = text[3 : len(text)-1]
	}
	if text == "" {
		return ""
	}
	if isDigits(text) {
		if a.directory.RoleExists(guildID, text) {
			return text
		}
		return ""
	}
	return a.directory.RoleByName(guildID, text)
}

// roleLabel renders a role by name with the raw id as fallback
func (a *admin) roleLabel(guildID, roleID string) string {
	if name := a.directory.RoleName(guildID, roleID); name != "" {
		return name
	}
	return roleID
}

// commands builds the slash command tree registered on startup
func (a *admin) commands() []*discordgo.ApplicationCommand {
	minOne := float64(1)
	textChannel := []discordgo.ChannelType{discordgo.ChannelTypeGuildText}

	bulkOpts := make([]*discordgo.ApplicationCommandOption, 0, len(bulkFields))
	for _, f := range bulkFields {
		bulkOpts = append(bulkOpts, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        f.name,
			Description: f.desc,
			MinValue:    &minOne,
		})
	}

	keyValueOpts := []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionString, Name: "key", Description: "設定キー", Required: true},
		{Type: discordgo.ApplicationCommandOptionString, Name: "value", Description: "新しい値", Required: true},
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "help",
			Description: "SpamGuardコマンド一覧を表示します",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "category",
				Description: "表示カテゴリ",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "all", Value: "all"},
					{Name: "spamguard", Value: "spamguard"},
					{Name: "security", Value: "security"},
					{Name: "verify", Value: "verify"},
				},
			}},
		},
		{
			Name:        "verify",
			Description: "入室認証コードを入力します",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "code",
				Description: "DMに届いた認証コード",
				Required:    true,
			}},
		},
		{
			Name:        "verify_resend",
			Description: "入室認証コードを送信します",
		},
		{
			Name:        "spamguard",
			Description: "SpamGuardの管理コマンド",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "現在のSpamGuard設定を表示します",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "設定値を変更します",
					Options:     keyValueOpts,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "setting",
					Description: "設定をDiscord UIで変更します",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "bulk",
							Description: "スパム検知の各種設定を一括更新します",
							Options:     bulkOpts,
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "log_setup",
							Description: "ログチャンネル設定と閲覧制限をまとめて行います",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:         discordgo.ApplicationCommandOptionChannel,
									Name:         "channel",
									Description:  "ログ出力チャンネル",
									Required:     true,
									ChannelTypes: textChannel,
								},
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "restrict",
									Description: "管理者+専用ロールだけ閲覧可能にする",
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "log_viewer",
							Description: "ログ閲覧ロールを付与/剥奪します",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "action",
									Description: "操作",
									Required:    true,
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "add", Value: "add"},
										{Name: "remove", Value: "remove"},
									},
								},
								{
									Type:        discordgo.ApplicationCommandOptionUser,
									Name:        "member",
									Description: "対象ユーザー",
									Required:    true,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "log_clear",
							Description: "ログチャンネル設定を解除します",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "ignore",
					Description: "除外チャンネル・ロールを管理します",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "add",
							Description: "除外するチャンネルまたはロールを追加します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "除外するロール"},
								{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel",
									Description: "除外するチャンネル", ChannelTypes: textChannel},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "remove",
							Description: "除外中のチャンネルまたはロールを解除します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "除外解除するロール"},
								{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel",
									Description: "除外解除するチャンネル", ChannelTypes: textChannel},
							},
						},
					},
				},
			},
		},
		{
			Name:        "security",
			Description: "Security運用コマンド",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "セキュリティ機能の状態を表示します",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "rule",
					Description: "Securityルールの一覧/更新",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "更新可能なルール一覧を表示します",
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "set",
							Description: "Securityルールを更新します",
							Options:     keyValueOpts,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "whitelist",
					Description: "ホワイトリストを管理します",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "add",
							Description: "ユーザー/ロール/許可ドメインを追加します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "許可ユーザー"},
								{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "許可ロール"},
								{Type: discordgo.ApplicationCommandOptionString, Name: "domain", Description: "許可ドメイン"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "remove",
							Description: "ユーザー/ロール/許可ドメインを削除します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "削除ユーザー"},
								{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "削除ロール"},
								{Type: discordgo.ApplicationCommandOptionString, Name: "domain", Description: "削除ドメイン"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "現在のホワイトリストを表示します",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "blocklist",
					Description: "危険ドメイン/TLDを管理します",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "domain_add",
							Description: "危険ドメインを追加します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "domain", Description: "危険ドメイン", Required: true},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "domain_remove",
							Description: "危険ドメインを削除します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "domain", Description: "危険ドメイン", Required: true},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "tld_add",
							Description: "危険TLDを追加します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "tld", Description: "危険TLD(例: zip)", Required: true},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "tld_remove",
							Description: "危険TLDを削除します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "tld", Description: "危険TLD(例: zip)", Required: true},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "verify",
					Description: "入室認証の設定",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "status",
							Description: "入室認証の状態を表示します",
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "configure",
							Description: "入室認証設定を更新します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionBoolean, Name: "enabled", Description: "認証を有効にする"},
								{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel",
									Description: "案内チャンネル", ChannelTypes: textChannel},
								{Type: discordgo.ApplicationCommandOptionRole, Name: "member_role", Description: "認証完了後に付与するロール"},
								{Type: discordgo.ApplicationCommandOptionInteger, Name: "timeout_minutes",
									Description: "認証期限(分)", MinValue: &minOne},
								{Type: discordgo.ApplicationCommandOptionInteger, Name: "max_attempts",
									Description: "最大試行回数", MinValue: &minOne},
								{Type: discordgo.ApplicationCommandOptionString, Name: "fail_action", Description: "失敗時アクション",
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "kick", Value: "kick"},
										{Name: "timeout", Value: "timeout"},
										{Name: "none", Value: "none"},
									}},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "unverified_role",
							Description: "隔離ロールを設定します",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "role", Description: "未認証ユーザー用ロール", Required: true},
							},
						},
					},
				},
			},
		},
	}
}

// renderKeys formats selected settings as key=value lines
func renderKeys(cfg config.GuildConfig, keys []string) string {
	vals := configValues(cfg)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s=%s", k, vals[k]))
	}
	return strings.Join(lines, "\n")
}

// configValues renders all guild settings as display strings keyed by setting name
func configValues(cfg config.GuildConfig) map[string]string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return map[string]string{}
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return map[string]string{}
	}
	res := make(map[string]string, len(raw))
	for k, v := range raw {
		res[k] = renderValue(v)
	}
	return res
}

// renderValue formats a raw JSON value for status output, null shows as none
func renderValue(raw json.RawMessage) string {
	s := string(raw)
	switch {
	case s == "null":
		return "none"
	case strings.HasPrefix(s, `"`):
		var v string
		if json.Unmarshal(raw, &v) == nil {
			return v
		}
		return s
	case strings.HasPrefix(s, "["):
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) == nil {
			if len(items) == 0 {
				return "[]"
			}
			parts := make([]string, len(items))
			for i, it := range items {
				parts[i] = renderValue(it)
			}
			return "[" + strings.Join(parts, ", ") + "]"
		}
		return s
	default:
		return s
	}
}

// roleOpError maps a role rest failure to the user-facing message
func roleOpError(err error) string {
	if errors.Is(err, modcheck.ErrForbidden) {
		return "ロール操作に失敗しました。Botのロール階層を確認してください。"
	}
	return "ロール操作時にAPIエラーが発生しました。"
}

// saveFailed logs the persistence error and returns the generic failure reply
func saveFailed(what, guildID string, err error) string {
	log.Printf("[WARN] failed to save %s for guild %s: %v", what, guildID, err)
	return msgSaveFail
}

// normalizeDomain lowercases, trims and strips a leading www prefix
func normalizeDomain(domain string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "www.")
}

// normalizeTLD lowercases, trims and strips leading dots
func normalizeTLD(tld string) string {
	return strings.TrimLeft(strings.ToLower(strings.TrimSpace(tld)), ".")
}

// interactionUser returns the id of the user who invoked the interaction
func interactionUser(ic *discordgo.InteractionCreate) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}

// optString returns a string-valued option by name, empty when absent. User,
// role and channel options carry their ids as string values.
func optString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, o := range opts {
		if o.Name == name {
			if s, ok := o.Value.(string); ok {
				return s
			}
		}
	}
	return ""
}

// optInt returns an integer option by name, ok reports presence
func optInt(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (int, bool) {
	for _, o := range opts {
		if o.Name == name {
			if f, ok := o.Value.(float64); ok {
				return int(f), true
			}
		}
	}
	return 0, false
}

// optBool returns a boolean option by name, ok reports presence
func optBool(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (val, ok bool) {
	for _, o := range opts {
		if o.Name == name {
			if b, isBool := o.Value.(bool); isBool {
				return b, true
			}
		}
	}
	return false, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func appendID(ids []config.ID, id string) []config.ID {
	for _, v := range ids {
		if v.String() == id {
			return ids
		}
	}
	return append(ids, config.ID(id))
}

func removeID(ids []config.ID, id string) []config.ID {
	res := make([]config.ID, 0, len(ids))
	for _, v := range ids {
		if v.String() != id {
			res = append(res, v)
		}
	}
	return res
}

func appendString(items []string, s string) []string {
	for _, v := range items {
		if v == s {
			return items
		}
	}
	return append(items, s)
}

func removeString(items []string, s string) []string {
	res := make([]string, 0, len(items))
	for _, v := range items {
		if v != s {
			res = append(res, v)
		}
	}
	return res
}

// joinOrNone joins items with comma, "(none)" when empty
func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
