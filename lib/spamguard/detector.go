// Package spamguard implements the per-tenant scoring engine: sliding-window
// spam heuristics per user, cross-user raid signals and the offense ledger that
// turns repeated violations into escalating enforcement actions. One Detector
// serves one tenant; callers create a fresh instance when the tenant's
// configuration changes.
package spamguard

import (
	"sync"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/spamguard/spamguard/lib/modcheck"
	"github.com/spamguard/spamguard/lib/urlscan"
)

// Config is a set of parameters for Detector.
type Config struct {
	Window             time.Duration // sliding window for rapid posting
	MaxMsgInWindow     int           // messages within Window to trigger rapid posting
	DuplicateWindow    time.Duration // retention for normalized content entries
	DupThreshold       int           // identical messages within DuplicateWindow to trigger
	URLThreshold       int           // urls in a single message to trigger url spam
	URLRepeatWindow    time.Duration // retention for posted url entries
	URLRepeatThreshold int           // posts of the same url within URLRepeatWindow to trigger
	MentionThreshold   int           // mentions in a single message to trigger mention spam

	WarningThreshold int           // offenses to reach a warning
	TimeoutThreshold int           // offenses to reach a timeout
	BanThreshold     int           // offenses to reach a ban
	BanEnabled       bool          // if false, escalation stops at timeout
	OffenseWindow    time.Duration // retention for the offense ledger
	TimeoutDuration  time.Duration // duration of an applied timeout

	RaidJoinWindow    time.Duration // retention for recent joins
	RaidJoinThreshold int           // joins within RaidJoinWindow to flag a surge
	RaidMsgWindow     time.Duration // retention for new-member messages
	RaidMsgThreshold  int           // new-member messages within RaidMsgWindow to flag activity
	NewMemberWindow   time.Duration // how long after join a member counts as new

	AllowDomains    []string // hosts never scored
	PhishingDomains []string // hosts scored as phishing
	SuspiciousTLDs  []string // final host labels scored as suspicious

	MaxUsers int // cap on tracked users per tenant, default 10000
}

const (
	defaultMaxUsers        = 10000
	defaultCleanupInterval = 10 * time.Minute
	newAccountAge          = 24 * time.Hour
)

// Detector is a per-tenant spam detector, thread-safe.
// It keeps sliding-window histories per user plus tenant-wide raid state, scores
// each message snapshot against the configured heuristics and decides an
// escalation action from the user's recent offense count.
type Detector struct {
	Config
	users       cache.Cache[string, userHistory] // LRU cache with max users limit
	raid        raidState
	ttl         time.Duration
	lastCleanup time.Time
	lock        sync.Mutex
}

// NewDetector makes a Detector for a single tenant with the given config.
func NewDetector(cfg Config) *Detector {
	maxUsers := cfg.MaxUsers
	if maxUsers <= 0 {
		maxUsers = defaultMaxUsers
	}

	// ttl covers the longest retention window so an entry evicted by the cache
	// has nothing left that pruning would have kept
	ttl := cfg.Window
	for _, w := range []time.Duration{cfg.DuplicateWindow, cfg.URLRepeatWindow, cfg.OffenseWindow} {
		if w > ttl {
			ttl = w
		}
	}
	ttl *= 2

	return &Detector{
		Config: cfg,
		users:  cache.NewCache[string, userHistory]().WithMaxKeys(maxUsers).WithTTL(ttl),
		ttl:    ttl,
	}
}

// Score evaluates a single message snapshot and returns the accumulated score
// with deduplicated reason tags. It mutates the author's histories and the
// tenant raid state as a side effect.
func (d *Detector) Score(snap modcheck.Snapshot) modcheck.Result {
	d.lock.Lock()
	defer d.lock.Unlock()

	now := snap.CreatedAt

	if now.Sub(d.lastCleanup) > defaultCleanupInterval {
		d.performCleanup(now)
		d.lastCleanup = now
	}

	hist, _ := d.users.Get(snap.UserID)

	hist.messages = pruneTimes(hist.messages, now.Add(-d.Window))
	hist.duplicates = pruneContent(hist.duplicates, now.Add(-d.DuplicateWindow))
	hist.urls = pruneURLs(hist.urls, now.Add(-d.URLRepeatWindow))

	hist.messages = append(hist.messages, now)
	normalized := Normalize(snap.Content)
	hist.duplicates = append(hist.duplicates, contentEntry{text: normalized, time: now})

	res := modcheck.Result{}
	add := func(points int, reason modcheck.Reason) {
		res.Score += points
		res.Reasons = append(res.Reasons, reason)
	}

	if len(hist.messages) >= d.MaxMsgInWindow {
		add(2, modcheck.ReasonRapidPosting)
	}

	if normalized != "" {
		k := 0
		for _, e := range hist.duplicates {
			if e.text == normalized {
				k++
			}
		}
		if k >= d.DupThreshold {
			add(3, modcheck.ReasonDuplicate)
		}
	}

	urls := urlscan.Extract(snap.Content)
	if len(urls) >= d.URLThreshold {
		add(3, modcheck.ReasonURLSpam)
	}

	// record every posted url, then test each distinct one against the repeat
	// window; a single tag regardless of how many qualify
	var distinct []string
	for _, raw := range urls {
		key := urlscan.HostPath(raw)
		if key == "" {
			continue
		}
		hist.urls = append(hist.urls, urlEntry{key: key, time: now})
		if !contains(distinct, key) {
			distinct = append(distinct, key)
		}
	}
	for _, key := range distinct {
		count := 0
		for _, e := range hist.urls {
			if e.key == key {
				count++
			}
		}
		if count >= d.URLRepeatThreshold {
			add(3, modcheck.ReasonRepeatedURL)
			break
		}
	}

	if extra, reasons := urlscan.Classify(urls, d.AllowDomains, d.PhishingDomains, d.SuspiciousTLDs); extra > 0 {
		res.Score += extra
		res.Reasons = append(res.Reasons, reasons...)
	}

	if snap.Mentions >= d.MentionThreshold {
		add(3, modcheck.ReasonMentionSpam)
	}

	if now.Sub(snap.AccountCreatedAt) < newAccountAge {
		add(1, modcheck.ReasonNewAccount)
	}

	if !snap.JoinedAt.IsZero() && now.Sub(snap.JoinedAt) <= d.NewMemberWindow {
		d.raid.messages = append(d.raid.messages, now)
	}
	d.raid.joins = pruneJoins(d.raid.joins, now.Add(-d.RaidJoinWindow))
	d.raid.messages = pruneTimes(d.raid.messages, now.Add(-d.RaidMsgWindow))
	if len(d.raid.joins) >= d.RaidJoinThreshold {
		add(2, modcheck.ReasonRaidJoinSurge)
		if len(d.raid.messages) >= d.RaidMsgThreshold {
			add(5, modcheck.ReasonRaidActivity)
		}
	}

	res.Reasons = dedupReasons(res.Reasons)

	d.users.Set(snap.UserID, hist, d.ttl)
	return res
}

// performCleanup drops users whose histories are fully expired (must be called with lock held)
func (d *Detector) performCleanup(now time.Time) {
	for _, userID := range d.users.Keys() {
		hist, found := d.users.Get(userID)
		if !found {
			continue
		}
		hist.messages = pruneTimes(hist.messages, now.Add(-d.Window))
		hist.duplicates = pruneContent(hist.duplicates, now.Add(-d.DuplicateWindow))
		hist.urls = pruneURLs(hist.urls, now.Add(-d.URLRepeatWindow))
		hist.offenses = pruneTimes(hist.offenses, now.Add(-d.OffenseWindow))

		if hist.empty() {
			d.users.Invalidate(userID)
			continue
		}
		d.users.Set(userID, hist, d.ttl)
	}
}

func contains(elems []string, v string) bool {
	for _, e := range elems {
		if e == v {
			return true
		}
	}
	return false
}

func dedupReasons(reasons []modcheck.Reason) []modcheck.Reason {
	if len(reasons) < 2 {
		return reasons
	}
	seen := make(map[modcheck.Reason]struct{}, len(reasons))
	res := reasons[:0]
	for _, r := range reasons {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		res = append(res, r)
	}
	return res
}
