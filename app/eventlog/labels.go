package eventlog

import (
	"strings"

	"github.com/spamguard/spamguard/lib/modcheck"
)

// ReasonLabels maps reason tags to operator-facing labels. Tags are stored and
// matched raw, localization happens only at emission.
var ReasonLabels = map[modcheck.Reason]string{
	modcheck.ReasonRapidPosting:   "短時間の連投",
	modcheck.ReasonDuplicate:      "同文連投",
	modcheck.ReasonURLSpam:        "URL乱投",
	modcheck.ReasonRepeatedURL:    "同一URL連投",
	modcheck.ReasonMentionSpam:    "過剰メンション",
	modcheck.ReasonNewAccount:     "新規アカウント加点",
	modcheck.ReasonPhishingDomain: "フィッシング既知ドメイン",
	modcheck.ReasonSuspiciousTLD:  "危険TLD",
	modcheck.ReasonRaidJoinSurge:  "Join急増",
	modcheck.ReasonRaidActivity:   "レイド活動",
}

// ActionLabels maps enforcement actions to operator-facing labels.
var ActionLabels = map[modcheck.Action]string{
	modcheck.ActionNone:    "未実行",
	modcheck.ActionWarn:    "警告",
	modcheck.ActionTimeout: "タイムアウト",
	modcheck.ActionBan:     "BAN",
}

// FormatReasons renders the reason list as labels, "なし" when empty. Unknown
// tags pass through raw.
func FormatReasons(reasons []modcheck.Reason) string {
	if len(reasons) == 0 {
		return "なし"
	}
	labels := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if l, ok := ReasonLabels[r]; ok {
			labels = append(labels, l)
			continue
		}
		labels = append(labels, string(r))
	}
	return strings.Join(labels, ", ")
}

// FormatAction renders an enforcement action label, unknown values pass through.
func FormatAction(action modcheck.Action) string {
	if l, ok := ActionLabels[action]; ok {
		return l
	}
	return string(action)
}

// FormatStatus renders a per-step outcome label, unknown values pass through.
func FormatStatus(status modcheck.Status) string {
	switch status {
	case modcheck.StatusOK:
		return "成功"
	case modcheck.StatusForbidden:
		return "権限不足"
	case modcheck.StatusHTTPError:
		return "APIエラー"
	case modcheck.StatusNotSupported:
		return "未対応"
	case modcheck.StatusNotAttempted:
		return "未実行"
	}
	return string(status)
}
