package service

import (
	"strings"

	"github.com/roguepikachu/smileline/internal/domain"
)

// DefaultSpamPatterns are matched case-insensitively against the name and message.
var DefaultSpamPatterns = []string{
	"http://",
	"https://",
	"www.",
	"<a ",
	"[url",
	"viagra",
	"casino",
	"bitcoin",
	"crypto",
	"seo services",
	"backlinks",
	"loan offer",
}

// SpamFilter rejects submissions containing any configured pattern.
type SpamFilter struct {
	patterns []string
}

// NewSpamFilter builds a filter. DefaultSpamPatterns are used when patterns
// holds nothing but blanks.
func NewSpamFilter(patterns []string) *SpamFilter {
	lowered := normalizePatterns(patterns)
	if len(lowered) == 0 {
		lowered = normalizePatterns(DefaultSpamPatterns)
	}
	return &SpamFilter{patterns: lowered}
}

func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Check returns the first reason the request looks like spam, or "" when it is clean.
func (f *SpamFilter) Check(req domain.ContactRequestDTO) string {
	if strings.TrimSpace(req.Website) != "" {
		return "honeypot"
	}
	text := strings.ToLower(req.Name + "\n" + req.Message)
	for _, p := range f.patterns {
		if strings.Contains(text, p) {
			return "pattern:" + p
		}
	}
	return ""
}
