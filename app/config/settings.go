package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spamguard/spamguard/lib/spamguard"
)

// mutation and load failures, checked by the admin surface and the shell
var (
	ErrConfigInvalid  = errors.New("config file invalid")
	ErrUnknownKey     = errors.New("unknown config key")
	ErrCoercionFailed = errors.New("can't coerce value")
)

// ID is a platform snowflake kept as a string, empty means unset. Legacy
// documents stored numeric ids, both forms unmarshal to the string form.
type ID string

// Defined reports whether the id is set.
func (id ID) Defined() bool { return id != "" }

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*id = ""
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to parse id: %w", err)
		}
		*id = ID(v)
	default:
		var v int64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to parse id %s: %w", s, err)
		}
		*id = ID(strconv.FormatInt(v, 10))
	}
	return nil
}

// MarshalJSON writes null for unset ids, a string otherwise.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}

// GuildConfig is a per-tenant configuration document. One default document plus
// one per guild, persisted together in a single JSON file. Unknown keys in the
// file are dropped on load, missing keys take the values set by Defaults.
type GuildConfig struct {
	// scoring thresholds
	WindowSec          int `json:"window_sec"`
	MaxMsgInWindow     int `json:"max_msg_in_window"`
	DuplicateWindowSec int `json:"duplicate_window_sec"`
	DupThreshold       int `json:"dup_threshold"`
	URLThreshold       int `json:"url_threshold"`
	URLRepeatWindowSec int `json:"url_repeat_window_sec"`
	URLRepeatThreshold int `json:"url_repeat_threshold"`
	MentionThreshold   int `json:"mention_threshold"`
	ScoreThreshold     int `json:"score_threshold"`

	// escalation
	TimeoutMinutes   int  `json:"timeout_minutes"`
	WarningThreshold int  `json:"warning_threshold"`
	TimeoutThreshold int  `json:"timeout_threshold"`
	BanThreshold     int  `json:"ban_threshold"`
	BanEnabled       bool `json:"ban_enabled"`
	OffenseWindowSec int  `json:"offense_window_sec"`

	// raid detection
	RaidJoinWindowSec       int `json:"raid_join_window_sec"`
	RaidJoinThreshold       int `json:"raid_join_threshold"`
	RaidMessageWindowSec    int `json:"raid_message_window_sec"`
	RaidNewUserMsgThreshold int `json:"raid_new_user_message_threshold"`
	NewMemberWindowSec      int `json:"new_member_window_sec"`

	// verification
	VerifyEnabled          bool   `json:"verify_enabled"`
	VerifyChannelID        ID     `json:"verify_channel_id"`
	VerifyUnverifiedRoleID ID     `json:"verify_unverified_role_id"`
	VerifyMemberRoleID     ID     `json:"verify_member_role_id"`
	VerifyTimeoutMinutes   int    `json:"verify_timeout_minutes"`
	VerifyMaxAttempts      int    `json:"verify_max_attempts"`
	VerifyFailAction       string `json:"verify_fail_action"`

	// exemption and reputation lists
	IgnoreRoleIDs    []ID     `json:"ignore_role_ids"`
	IgnoreChannelIDs []ID     `json:"ignore_channel_ids"`
	WhitelistUserIDs []ID     `json:"whitelist_user_ids"`
	WhitelistRoleIDs []ID     `json:"whitelist_role_ids"`
	AllowDomains     []string `json:"allow_domains"`
	PhishingDomains  []string `json:"phishing_domains"`
	SuspiciousTLDs   []string `json:"suspicious_tlds"`

	// logging
	LogChannelID    ID `json:"log_channel_id"`
	LogViewerRoleID ID `json:"log_viewer_role_id"`
}

// Defaults returns the factory document new tenants start from.
func Defaults() GuildConfig {
	return GuildConfig{
		WindowSec:          12,
		MaxMsgInWindow:     5,
		DuplicateWindowSec: 120,
		DupThreshold:       3,
		URLThreshold:       2,
		URLRepeatWindowSec: 120,
		URLRepeatThreshold: 3,
		MentionThreshold:   4,
		ScoreThreshold:     6,

		TimeoutMinutes:   10,
		WarningThreshold: 1,
		TimeoutThreshold: 2,
		BanThreshold:     4,
		BanEnabled:       false,
		OffenseWindowSec: 3600,

		RaidJoinWindowSec:       60,
		RaidJoinThreshold:       5,
		RaidMessageWindowSec:    60,
		RaidNewUserMsgThreshold: 10,
		NewMemberWindowSec:      1800,

		VerifyEnabled:        false,
		VerifyTimeoutMinutes: 10,
		VerifyMaxAttempts:    3,
		VerifyFailAction:     "kick",

		IgnoreRoleIDs:    []ID{},
		IgnoreChannelIDs: []ID{},
		WhitelistUserIDs: []ID{},
		WhitelistRoleIDs: []ID{},
		AllowDomains:     []string{},
		PhishingDomains:  []string{},
		SuspiciousTLDs:   []string{"zip", "mov"},
	}
}

// Clone returns a deep copy, list fields are not shared with the receiver.
func (g GuildConfig) Clone() GuildConfig {
	res := g
	res.IgnoreRoleIDs = slices.Clone(g.IgnoreRoleIDs)
	res.IgnoreChannelIDs = slices.Clone(g.IgnoreChannelIDs)
	res.WhitelistUserIDs = slices.Clone(g.WhitelistUserIDs)
	res.WhitelistRoleIDs = slices.Clone(g.WhitelistRoleIDs)
	res.AllowDomains = slices.Clone(g.AllowDomains)
	res.PhishingDomains = slices.Clone(g.PhishingDomains)
	res.SuspiciousTLDs = slices.Clone(g.SuspiciousTLDs)
	return res
}

// Detector converts the document into the scoring engine's parameter set.
func (g GuildConfig) Detector() spamguard.Config {
	return spamguard.Config{
		Window:             time.Duration(g.WindowSec) * time.Second,
		MaxMsgInWindow:     g.MaxMsgInWindow,
		DuplicateWindow:    time.Duration(g.DuplicateWindowSec) * time.Second,
		DupThreshold:       g.DupThreshold,
		URLThreshold:       g.URLThreshold,
		URLRepeatWindow:    time.Duration(g.URLRepeatWindowSec) * time.Second,
		URLRepeatThreshold: g.URLRepeatThreshold,
		MentionThreshold:   g.MentionThreshold,

		WarningThreshold: g.WarningThreshold,
		TimeoutThreshold: g.TimeoutThreshold,
		BanThreshold:     g.BanThreshold,
		BanEnabled:       g.BanEnabled,
		OffenseWindow:    time.Duration(g.OffenseWindowSec) * time.Second,
		TimeoutDuration:  time.Duration(g.TimeoutMinutes) * time.Minute,

		RaidJoinWindow:    time.Duration(g.RaidJoinWindowSec) * time.Second,
		RaidJoinThreshold: g.RaidJoinThreshold,
		RaidMsgWindow:     time.Duration(g.RaidMessageWindowSec) * time.Second,
		RaidMsgThreshold:  g.RaidNewUserMsgThreshold,
		NewMemberWindow:   time.Duration(g.NewMemberWindowSec) * time.Second,

		AllowDomains:    g.AllowDomains,
		PhishingDomains: g.PhishingDomains,
		SuspiciousTLDs:  g.SuspiciousTLDs,
	}
}

// VerifyTimeout returns the verification session lifetime, at least a minute.
func (g GuildConfig) VerifyTimeout() time.Duration {
	return time.Duration(max(1, g.VerifyTimeoutMinutes)) * time.Minute
}

// VerifyExpireMinutes returns the session lifetime in whole minutes for user
// facing text, at least one.
func (g GuildConfig) VerifyExpireMinutes() int {
	return max(1, g.VerifyTimeoutMinutes)
}

// Exempt reports whether a message is exempt from scoring based on its origin
// channel, the author id and the author's roles.
func (g GuildConfig) Exempt(channelID, userID string, roleIDs []string) bool {
	if containsID(g.IgnoreChannelIDs, channelID) {
		return true
	}
	if containsID(g.WhitelistUserIDs, userID) {
		return true
	}
	for _, r := range roleIDs {
		if containsID(g.IgnoreRoleIDs, r) || containsID(g.WhitelistRoleIDs, r) {
			return true
		}
	}
	return false
}

// Whitelisted reports whether the user is on the tenant's whitelist.
func (g GuildConfig) Whitelisted(userID string) bool {
	return containsID(g.WhitelistUserIDs, userID)
}

func containsID(ids []ID, id string) bool {
	if id == "" {
		return false
	}
	return slices.Contains(ids, ID(id))
}

// Set coerces the string value under the key's declared kind and assigns it.
// Booleans accept 1/true/yes/on as true and anything else as false, ids accept
// none/null to clear, list keys are managed by dedicated commands and refuse
// scalar assignment.
func (g *GuildConfig) Set(key, value string) error {
	switch key {
	case "window_sec":
		return setInt(&g.WindowSec, value)
	case "max_msg_in_window":
		return setInt(&g.MaxMsgInWindow, value)
	case "duplicate_window_sec":
		return setInt(&g.DuplicateWindowSec, value)
	case "dup_threshold":
		return setInt(&g.DupThreshold, value)
	case "url_threshold":
		return setInt(&g.URLThreshold, value)
	case "url_repeat_window_sec":
		return setInt(&g.URLRepeatWindowSec, value)
	case "url_repeat_threshold":
		return setInt(&g.URLRepeatThreshold, value)
	case "mention_threshold":
		return setInt(&g.MentionThreshold, value)
	case "score_threshold":
		return setInt(&g.ScoreThreshold, value)
	case "timeout_minutes":
		return setInt(&g.TimeoutMinutes, value)
	case "warning_threshold":
		return setInt(&g.WarningThreshold, value)
	case "timeout_threshold":
		return setInt(&g.TimeoutThreshold, value)
	case "ban_threshold":
		return setInt(&g.BanThreshold, value)
	case "ban_enabled":
		return setBool(&g.BanEnabled, value)
	case "offense_window_sec":
		return setInt(&g.OffenseWindowSec, value)
	case "raid_join_window_sec":
		return setInt(&g.RaidJoinWindowSec, value)
	case "raid_join_threshold":
		return setInt(&g.RaidJoinThreshold, value)
	case "raid_message_window_sec":
		return setInt(&g.RaidMessageWindowSec, value)
	case "raid_new_user_message_threshold":
		return setInt(&g.RaidNewUserMsgThreshold, value)
	case "new_member_window_sec":
		return setInt(&g.NewMemberWindowSec, value)
	case "verify_enabled":
		return setBool(&g.VerifyEnabled, value)
	case "verify_channel_id":
		return setID(&g.VerifyChannelID, value)
	case "verify_unverified_role_id":
		return setID(&g.VerifyUnverifiedRoleID, value)
	case "verify_member_role_id":
		return setID(&g.VerifyMemberRoleID, value)
	case "verify_timeout_minutes":
		return setInt(&g.VerifyTimeoutMinutes, value)
	case "verify_max_attempts":
		return setInt(&g.VerifyMaxAttempts, value)
	case "verify_fail_action":
		return setFailAction(&g.VerifyFailAction, value)
	case "ignore_role_ids", "ignore_channel_ids", "whitelist_user_ids", "whitelist_role_ids",
		"allow_domains", "phishing_domains", "suspicious_tlds":
		return fmt.Errorf("%w: list key %q requires the dedicated list commands", ErrCoercionFailed, key)
	case "log_channel_id":
		return setID(&g.LogChannelID, value)
	case "log_viewer_role_id":
		return setID(&g.LogViewerRoleID, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

func setInt(dst *int, val string) error {
	v, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrCoercionFailed, val)
	}
	*dst = v
	return nil
}

func setBool(dst *bool, val string) error {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		*dst = true
	default:
		*dst = false
	}
	return nil
}

func setID(dst *ID, val string) error {
	v := strings.TrimSpace(val)
	switch strings.ToLower(v) {
	case "", "none", "null":
		*dst = ""
		return nil
	}
	if _, err := strconv.ParseInt(v, 10, 64); err != nil {
		return fmt.Errorf("%w: %q is not a numeric id", ErrCoercionFailed, val)
	}
	*dst = ID(v)
	return nil
}

func setFailAction(dst *string, val string) error {
	v := strings.ToLower(strings.TrimSpace(val))
	switch v {
	case "kick", "timeout", "none":
		*dst = v
		return nil
	}
	return fmt.Errorf("%w: fail action %q not one of kick, timeout, none", ErrCoercionFailed, val)
}

// Keys returns all document keys, sorted. Used by the admin surface for help
// and validation.
func Keys() []string {
	t := reflect.TypeOf(GuildConfig{})
	res := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if tag != "" && tag != "-" {
			res = append(res, tag)
		}
	}
	sort.Strings(res)
	return res
}
