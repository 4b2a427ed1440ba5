package urlscan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spamguard/spamguard/lib/modcheck"
)

func TestExtract(t *testing.T) {
	tbl := []struct {
		text string
		urls []string
	}{
		{"no links here", nil},
		{"see https://example.com for details", []string{"https://example.com"}},
		{"HTTP://EXAMPLE.COM and https://other.org/page", []string{"HTTP://EXAMPLE.COM", "https://other.org/page"}},
		{"mixed https://a.com,https://b.com text", []string{"https://a.com,https://b.com"}}, // maximal run, no comma split
		{"ftp://example.com is not matched", nil},
		{"link https://scam.zip/claim?x=1 trailing", []string{"https://scam.zip/claim?x=1"}},
	}

	for i, tt := range tbl {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			assert.Equal(t, tt.urls, Extract(tt.text))
		})
	}
}

func TestCanonicalHost(t *testing.T) {
	tbl := []struct {
		raw  string
		host string
	}{
		{"https://example.com", "example.com"},
		{"HTTPS://WWW.Example.COM/path", "example.com"},
		{"https://example.com.", "example.com"},
		{"https://www.example.com.:8080/x", "example.com"},
		{"https://", ""},
		{"::bad::url", ""},
		{" https://spaced.org ", "spaced.org"},
	}

	for i, tt := range tbl {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			assert.Equal(t, tt.host, CanonicalHost(tt.raw))
		})
	}
}

func TestHostPath(t *testing.T) {
	assert.Equal(t, "example.com/promo", HostPath("https://www.example.com/promo?utm=1#frag"))
	assert.Equal(t, "example.com", HostPath("https://example.com"))
	assert.Equal(t, "", HostPath("not a url"))
}

func TestTLD(t *testing.T) {
	assert.Equal(t, "zip", TLD("files.example.zip"))
	assert.Equal(t, "com", TLD("example.com"))
	assert.Equal(t, "", TLD("localhost"))
	assert.Equal(t, "", TLD("trailing."))
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "example.com", NormalizeDomain("  WWW.Example.COM "))
	assert.Equal(t, "scam.org", NormalizeDomain("scam.org"))
}

func TestNormalizeTLD(t *testing.T) {
	assert.Equal(t, "zip", NormalizeTLD(".ZIP"))
	assert.Equal(t, "mov", NormalizeTLD(" mov "))
}

func TestClassify(t *testing.T) {
	block := []string{"scam.example", "trap.zip"}
	allow := []string{"good.example"}
	tlds := []string{"zip", "mov"}

	tbl := []struct {
		name    string
		urls    []string
		score   int
		reasons []modcheck.Reason
	}{
		{"empty", nil, 0, nil},
		{"clean url", []string{"https://example.com"}, 0, nil},
		{"blocked host", []string{"https://scam.example/claim"}, 8, []modcheck.Reason{modcheck.ReasonPhishingDomain}},
		{"allowed host skipped", []string{"https://good.example"}, 0, nil},
		{"suspicious tld", []string{"https://files.zip"}, 4, []modcheck.Reason{modcheck.ReasonSuspiciousTLD}},
		{"blocked beats tld check", []string{"https://trap.zip"}, 8, []modcheck.Reason{modcheck.ReasonPhishingDomain}},
		{"both kinds accumulate", []string{"https://scam.example", "https://files.zip"}, 12,
			[]modcheck.Reason{modcheck.ReasonPhishingDomain, modcheck.ReasonSuspiciousTLD}},
		{"reasons deduplicated", []string{"https://files.zip", "https://movie.mov"}, 8,
			[]modcheck.Reason{modcheck.ReasonSuspiciousTLD}},
		{"www prefix matches block entry", []string{"https://www.scam.example"}, 8,
			[]modcheck.Reason{modcheck.ReasonPhishingDomain}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := Classify(tt.urls, allow, block, tlds)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.reasons, reasons)
		})
	}
}
