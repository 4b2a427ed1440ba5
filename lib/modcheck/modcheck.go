package modcheck

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Snapshot is an immutable view of a single message event as seen at ingest time.
type Snapshot struct {
	UserID           string    `json:"user_id"`            // author id
	Content          string    `json:"content"`            // raw message text
	Mentions         int       `json:"mentions"`           // number of user mentions in the message
	CreatedAt        time.Time `json:"created_at"`         // message timestamp, UTC
	AccountCreatedAt time.Time `json:"account_created_at"` // author account creation time
	JoinedAt         time.Time `json:"joined_at"`          // author guild join time, zero if unknown
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("user:%s, content:%q, mentions:%d", s.UserID, s.Content, s.Mentions)
}

// Reason is a tag naming the signal that contributed to a score. The set is closed,
// labels for humans are attached at emission time only.
type Reason string

// all reasons a score can carry
const (
	ReasonRapidPosting   Reason = "rapid_posting"
	ReasonDuplicate      Reason = "duplicate_messages"
	ReasonURLSpam        Reason = "url_spam"
	ReasonRepeatedURL    Reason = "repeated_url_posts"
	ReasonMentionSpam    Reason = "mention_spam"
	ReasonNewAccount     Reason = "new_account"
	ReasonPhishingDomain Reason = "phishing_domain"
	ReasonSuspiciousTLD  Reason = "suspicious_domain_tld"
	ReasonRaidJoinSurge  Reason = "raid_join_surge"
	ReasonRaidActivity   Reason = "raid_activity"
)

// forcedReasons escalate enforcement even when the score stays below the threshold
var forcedReasons = map[Reason]struct{}{ReasonPhishingDomain: {}, ReasonRaidActivity: {}}

// Result is the outcome of scoring one snapshot.
type Result struct {
	Score   int      `json:"score"`
	Reasons []Reason `json:"reasons"`
}

// Has reports whether the result carries the given reason.
func (r *Result) Has(reason Reason) bool {
	for _, got := range r.Reasons {
		if got == reason {
			return true
		}
	}
	return false
}

// Forced reports whether any reason escalates enforcement regardless of the score.
func (r *Result) Forced() bool {
	for _, got := range r.Reasons {
		if _, ok := forcedReasons[got]; ok {
			return true
		}
	}
	return false
}

func (r *Result) String() string {
	elems := make([]string, 0, len(r.Reasons))
	for _, reason := range r.Reasons {
		elems = append(elems, string(reason))
	}
	return fmt.Sprintf("score:%d, reasons:[%s]", r.Score, strings.Join(elems, ", "))
}

// Action is an enforcement decision.
type Action string

// escalation alphabet, ordered none < warn < timeout < ban
const (
	ActionNone    Action = "none"
	ActionWarn    Action = "warn"
	ActionTimeout Action = "timeout"
	ActionBan     Action = "ban"
)

// Offense is the offense-ledger decision for one user.
type Offense struct {
	Count  int    `json:"count"`  // offenses inside the rolling window, this one included
	Action Action `json:"action"` // escalation picked for this count
}

// Status is the outcome of a single platform step (delete, timeout, ban, kick, role op).
type Status string

// per-step outcome alphabet
const (
	StatusOK           Status = "ok"
	StatusForbidden    Status = "forbidden"
	StatusHTTPError    Status = "http_error"
	StatusNotSupported Status = "not_supported"
	StatusNotAttempted Status = "not_attempted"
)

// adapter error kinds, the platform adapter wraps its failures into these
var (
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrNotSupported = errors.New("not supported")
)

// StatusOf converts an adapter error into a step status. Platform errors are values
// here, they are recorded in events and never propagate.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrForbidden):
		return StatusForbidden
	case errors.Is(err, ErrNotSupported):
		return StatusNotSupported
	default:
		return StatusHTTPError
	}
}
