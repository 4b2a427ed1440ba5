package spamguard

import "time"

// raidState is the tenant-wide overlay shared by all users: a window of recent
// joins and a window of messages posted by members who joined recently.
type raidState struct {
	joins    []joinEntry // pruned by RaidJoinWindow
	messages []time.Time // pruned by RaidMsgWindow
}

type joinEntry struct {
	user string
	time time.Time
}

func pruneJoins(entries []joinEntry, cutoff time.Time) []joinEntry {
	filtered := entries[:0]
	for _, e := range entries {
		if !e.time.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// RegisterJoin records a member join for raid surge detection and prunes the
// join window relative to the join time.
func (d *Detector) RegisterJoin(userID string, joinedAt time.Time) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.raid.joins = append(d.raid.joins, joinEntry{user: userID, time: joinedAt})
	d.raid.joins = pruneJoins(d.raid.joins, joinedAt.Add(-d.RaidJoinWindow))
}
