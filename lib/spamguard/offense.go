package spamguard

import (
	"time"

	"github.com/spamguard/spamguard/lib/modcheck"
)

// Decide records an enforcement event for the user and returns the offense
// count within the rolling window together with the escalation action. The
// action priority is strict: ban when enabled and over its threshold, then
// timeout, then warn, then none.
func (d *Detector) Decide(userID string, now time.Time) modcheck.Offense {
	d.lock.Lock()
	defer d.lock.Unlock()

	hist, _ := d.users.Get(userID)
	hist.offenses = pruneTimes(hist.offenses, now.Add(-d.OffenseWindow))
	hist.offenses = append(hist.offenses, now)
	count := len(hist.offenses)
	d.users.Set(userID, hist, d.ttl)

	action := modcheck.ActionNone
	switch {
	case d.BanEnabled && count >= d.BanThreshold:
		action = modcheck.ActionBan
	case count >= d.TimeoutThreshold:
		action = modcheck.ActionTimeout
	case count >= d.WarningThreshold:
		action = modcheck.ActionWarn
	}
	return modcheck.Offense{Count: count, Action: action}
}

// OffenseCount returns the user's current offense count without recording a new
// offense, pruned to the rolling window.
func (d *Detector) OffenseCount(userID string, now time.Time) int {
	d.lock.Lock()
	defer d.lock.Unlock()

	hist, found := d.users.Get(userID)
	if !found {
		return 0
	}
	hist.offenses = pruneTimes(hist.offenses, now.Add(-d.OffenseWindow))
	d.users.Set(userID, hist, d.ttl)
	return len(hist.offenses)
}
