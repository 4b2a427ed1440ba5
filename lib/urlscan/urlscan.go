// Package urlscan extracts URLs from message text, canonicalizes their hosts and
// classifies them against allow/block/TLD lists. Everything here is pure, the
// detector calls it on every scored message.
package urlscan

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/spamguard/spamguard/lib/modcheck"
)

var urlRe = regexp.MustCompile(`(?i)https?://\S+`)

// Extract returns all URLs found in the text, in order of appearance. A URL is a
// case-insensitive http(s) scheme followed by a maximal run of non-whitespace.
func Extract(text string) []string {
	return urlRe.FindAllString(text, -1)
}

// CanonicalHost parses a raw URL and returns its canonical host: lower-cased,
// trailing dots stripped, leading "www." stripped. Empty string when the URL does
// not parse or has no host.
func CanonicalHost(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimRight(host, ".")
	host = strings.TrimPrefix(host, "www.")
	return host
}

// HostPath returns the canonical host joined with the URL path, the identity used
// for repeated-post tracking. Query strings and fragments are dropped so trivial
// cache-buster variations still count as the same link.
func HostPath(raw string) string {
	host := CanonicalHost(raw)
	if host == "" {
		return ""
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return host
	}
	return host + u.EscapedPath()
}

// TLD returns the final label of a host, empty when the host has no dot.
func TLD(host string) string {
	idx := strings.LastIndex(host, ".")
	if idx < 0 || idx == len(host)-1 {
		return ""
	}
	return host[idx+1:]
}

// NormalizeDomain canonicalizes a human-entered domain for list membership:
// lower-cased, trimmed, leading "www." stripped.
func NormalizeDomain(raw string) string {
	domain := strings.ToLower(strings.TrimSpace(raw))
	domain = strings.TrimPrefix(domain, "www.")
	return domain
}

// NormalizeTLD canonicalizes a human-entered TLD: lower-cased, trimmed, leading
// dots stripped, so ".zip" and "zip" are the same entry.
func NormalizeTLD(raw string) string {
	return strings.TrimLeft(strings.ToLower(strings.TrimSpace(raw)), ".")
}

// Classify scores the given URLs against the allow/block/suspicious-TLD lists.
// Allowed hosts are skipped, blocked hosts add 8 with a phishing reason and
// short-circuit the TLD test for that URL, suspicious TLDs add 4. Reasons come
// back deduplicated.
func Classify(urls, allow, block, suspiciousTLDs []string) (score int, reasons []modcheck.Reason) {
	allowSet := toSet(allow)
	blockSet := toSet(block)
	tldSet := toSet(suspiciousTLDs)

	seen := map[modcheck.Reason]struct{}{}
	addReason := func(r modcheck.Reason) {
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		reasons = append(reasons, r)
	}

	for _, raw := range urls {
		host := CanonicalHost(raw)
		if host == "" {
			continue
		}
		if _, ok := allowSet[host]; ok {
			continue
		}
		if _, ok := blockSet[host]; ok {
			score += 8
			addReason(modcheck.ReasonPhishingDomain)
			continue
		}
		if tld := TLD(host); tld != "" {
			if _, ok := tldSet[tld]; ok {
				score += 4
				addReason(modcheck.ReasonSuspiciousTLD)
			}
		}
	}
	return score, reasons
}

func toSet(elems []string) map[string]struct{} {
	res := make(map[string]struct{}, len(elems))
	for _, e := range elems {
		res[e] = struct{}{}
	}
	return res
}
