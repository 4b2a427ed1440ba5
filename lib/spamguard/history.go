package spamguard

import (
	"regexp"
	"strings"
	"time"
)

// userHistory holds the sliding-window state for one user. All sequences are in
// non-decreasing time order; pruning happens before every read.
type userHistory struct {
	messages   []time.Time    // message timestamps, pruned by Window
	duplicates []contentEntry // normalized content, pruned by DuplicateWindow
	urls       []urlEntry     // canonical host+path posts, pruned by URLRepeatWindow
	offenses   []time.Time    // enforcement times, pruned by OffenseWindow
}

type contentEntry struct {
	text string
	time time.Time
}

type urlEntry struct {
	key  string
	time time.Time
}

func (h userHistory) empty() bool {
	return len(h.messages) == 0 && len(h.duplicates) == 0 && len(h.urls) == 0 && len(h.offenses) == 0
}

// pruneTimes drops entries before the cutoff, keeping entries at the cutoff.
// Filters in place, the surviving prefix reuses the backing array.
func pruneTimes(times []time.Time, cutoff time.Time) []time.Time {
	filtered := times[:0]
	for _, t := range times {
		if !t.Before(cutoff) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func pruneContent(entries []contentEntry, cutoff time.Time) []contentEntry {
	filtered := entries[:0]
	for _, e := range entries {
		if !e.time.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func pruneURLs(entries []urlEntry, cutoff time.Time) []urlEntry {
	filtered := entries[:0]
	for _, e := range entries {
		if !e.time.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

var spaceRe = regexp.MustCompile(`\s+`)

// Normalize canonicalizes message content for duplicate comparison: trimmed,
// lower-cased, every whitespace run collapsed to a single space.
func Normalize(content string) string {
	return strings.ToLower(spaceRe.ReplaceAllString(strings.TrimSpace(content), " "))
}
