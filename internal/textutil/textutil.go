// Package textutil provides small text helpers shared by the normalizer
// and the report formatters.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	hyphenRe     = regexp.MustCompile(`[-\s]+`)
)

// CollapseWhitespace collapses runs of whitespace into single spaces and
// trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Slugify produces a filesystem and identifier friendly slug.
func Slugify(s string) string {
	s = nonWordRe.ReplaceAllString(s, "")
	s = strings.ToLower(strings.TrimSpace(s))
	return hyphenRe.ReplaceAllString(s, "-")
}

// UniqueStrings returns the distinct non-empty trimmed values, preserving
// first-seen order.
func UniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// JoinPipe joins distinct non-empty fragments with " | ". Returns "" when
// nothing survives the filter.
func JoinPipe(fragments []string) string {
	return strings.Join(UniqueStrings(fragments), " | ")
}
