package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	commaRe      = regexp.MustCompile(`[、，,]`)
	fullStopRe   = regexp.MustCompile(`[。．]`)
	bracketRe    = regexp.MustCompile(`[（）()\[\]【】]`)
	separatorRe  = regexp.MustCompile(`[/|]`)
	hourSuffixRe = regexp.MustCompile(`(?i)(\d)\s*h\b`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// normalizeLine folds width variants and punctuation to canonical forms.
// The / and | separators are deliberately kept: they carry structure for
// date lines and for splitting client from site.
func normalizeLine(s string) string {
	s = norm.NFKC.String(s)
	s = commaRe.ReplaceAllString(s, " ")
	s = fullStopRe.ReplaceAllString(s, ".")
	// NFKC already folds ／ ｜ ＋ and the ideographic space, but messages
	// sometimes carry them pre-composed, so fold explicitly as well.
	s = strings.NewReplacer("／", "/", "｜", "|", "＋", "+", "　", " ").Replace(s)
	return s
}

// tokenizeWorkerLine splits a worker line into whitespace tokens. Only on
// this path are / and | blanked out: they are noise between names, while
// brackets around weekdays or notes are dropped entirely.
func tokenizeWorkerLine(line string) []string {
	s := normalizeLine(line)
	s = bracketRe.ReplaceAllString(s, " ")
	s = separatorRe.ReplaceAllString(s, " ")
	// "残業 1 h" -> "残業 1h"
	s = hourSuffixRe.ReplaceAllString(s, "${1}h")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}

// squash removes all whitespace, for the anchored shorthand patterns.
func squash(s string) string {
	return spaceRe.ReplaceAllString(s, "")
}
