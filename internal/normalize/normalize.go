// Package normalize strips non-article noise from raw extracted text.
//
// Cleaning is a single pass over a fixed sequence of stages; each stage
// sees only the output of the previous one and rules are never reapplied
// to a fixed point. The pass is nevertheless idempotent: cleaning already
// clean text yields the same text.
package normalize

import (
	"strings"
	"unicode/utf8"
)

// shareHeaderWindow is the leading fraction of the text inside which a
// share marker is treated as page chrome rather than content.
const shareHeaderWindow = 0.3

// Clean applies the full normalization pipeline to raw extracted text.
func Clean(text string) string {
	t := stripShareHeader(text)
	t = applyRules(t, bylineRules)
	t = applyRules(t, copyrightRules)
	t = applyRules(t, promoRules)
	t = filterLines(t)
	t = applyRules(t, cleanupRules)
	// URL stripping can leave a bare noise label on a line the first
	// filter pass saw with its URL still attached.
	t = filterLines(t)
	t = applyRules(t, whitespaceRules)
	t = applyRules(t, trailingRules)
	return strings.TrimSpace(t)
}

func applyRules(text string, rules []Rule) string {
	for _, r := range rules {
		switch r.Scope {
		case ScopePerLine:
			lines := strings.Split(text, "\n")
			for i, line := range lines {
				lines[i] = r.Pattern.ReplaceAllString(line, r.Replacement)
			}
			text = strings.Join(lines, "\n")
		default:
			text = r.Pattern.ReplaceAllString(text, r.Replacement)
		}
	}
	return text
}

// stripShareHeader removes the share/report-abuse block that blog-style
// portals render above the article body. The last marker line found inside
// the leading window wins; everything up to and including it is dropped.
func stripShareHeader(text string) string {
	window := int(float64(utf8.RuneCountInString(text)) * shareHeaderWindow)
	offset := 0
	cut := -1
	for _, line := range strings.Split(text, "\n") {
		lineEnd := offset + utf8.RuneCountInString(line)
		if offset > window {
			break
		}
		if _, ok := markerLine(line); ok {
			cut = lineEnd
		}
		offset = lineEnd + 1
	}
	if cut < 0 {
		return text
	}
	runes := []rune(text)
	if cut >= len(runes) {
		return ""
	}
	return string(runes[cut:])
}

func markerLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, m := range shareHeaderMarkers {
		if trimmed == m {
			return m, true
		}
	}
	return "", false
}

// filterLines drops whole lines matching the noise tables: exact labels,
// known prefixes and suffixes, date-only lines, and leftover reporter-name
// fragments not covered by the exception list.
func filterLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isNoiseLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isNoiseLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false // blank lines are paragraph separators, handled later
	}
	if _, ok := noiseLines[trimmed]; ok {
		return true
	}
	for _, p := range noisePrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	for _, s := range noiseSuffixes {
		if strings.HasSuffix(trimmed, s) {
			return true
		}
	}
	if dateOnlyLine.MatchString(trimmed) {
		return true
	}
	if reporterLine.MatchString(trimmed) {
		return true
	}
	if bareNameLine.MatchString(trimmed) {
		if _, ok := bareNameExceptions[trimmed]; !ok {
			return true
		}
	}
	return false
}
