// Package sanitize normalizes free text before it is persisted. Every helper
// is pure and never fails: bad input falls back to a safe result.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^<>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean strips markup tags and normalizes whitespace. Tag removal takes the
// shortest <...> span and repeats until no complete span remains, so nested
// angle brackets collapse pass by pass. Runs of whitespace become a single
// space and the result is trimmed. Clean is idempotent.
func Clean(text string) string {
	for {
		stripped := tagPattern.ReplaceAllString(text, "")
		if stripped == text {
			break
		}
		text = stripped
	}
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
