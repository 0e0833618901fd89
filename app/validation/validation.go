// Package validation checks raw payload text against the content rules and
// reports every violation it finds, in a fixed order, as human-readable
// messages. Validation always runs on raw (pre-sanitization) input so the
// spam and unsafe-content heuristics see the original text; length bounds
// are measured after trimming.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Per-field run-length thresholds for the repeated-character heuristic.
const (
	titleRunLimit   = 5
	commentRunLimit = 6
	authorRunLimit  = 4
)

// Token-frequency heuristic for post content: with more than minSpamTokens
// tokens, any token longer than 3 characters covering more than 30% of the
// token count is treated as spam. Short repeated words are deliberately
// exempt; the thresholds are policy, not a security guarantee.
const (
	minSpamTokens     = 10
	spamTokenMinRunes = 3
	spamFrequency     = 0.3
)

var (
	unsafePattern      = regexp.MustCompile(`(?i)<\s*script|javascript:|\bon\w+\s*=`)
	authorCharsPattern = regexp.MustCompile(`^[\p{Latin}\p{Cyrillic}0-9\s.\-]+$`)
)

type postFields struct {
	Title   string `validate:"required,min=3,max=200"`
	Content string `validate:"required,min=10,max=10000"`
}

type commentFields struct {
	Content string `validate:"required,min=5,max=1000"`
	Author  string `validate:"required,min=2,max=100"`
}

type fieldBounds struct{ min, max int }

var (
	postBounds = map[string]fieldBounds{
		"title":   {3, 200},
		"content": {10, 10000},
	}
	commentBounds = map[string]fieldBounds{
		"content": {5, 1000},
		"author":  {2, 100},
	}
)

// ValidatePost checks post fields and returns every violation in evaluation
// order. An empty result means the payload is valid. For partial updates the
// caller passes the effective values (existing entity overridden by the
// supplied fields).
func ValidatePost(title, content string) []string {
	fields := postFields{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
	violations := structViolations(fields, postBounds)

	if fields.Title != "" && hasCharRun(title, titleRunLimit) {
		violations = append(violations, "title contains too many repeated characters")
	}
	if fields.Content != "" {
		if looksRepetitive(content) {
			violations = append(violations, "content looks like repetitive spam")
		}
		if unsafePattern.MatchString(content) {
			violations = append(violations, "content contains potentially unsafe content")
		}
	}
	return violations
}

// ValidateComment checks comment fields and returns every violation in
// evaluation order.
func ValidateComment(content, author string) []string {
	fields := commentFields{
		Content: strings.TrimSpace(content),
		Author:  strings.TrimSpace(author),
	}
	violations := structViolations(fields, commentBounds)

	if fields.Content != "" && hasCharRun(content, commentRunLimit) {
		violations = append(violations, "content contains too many repeated characters")
	}
	if fields.Author != "" && hasCharRun(author, authorRunLimit) {
		violations = append(violations, "author contains too many repeated characters")
	}
	if fields.Content != "" && unsafePattern.MatchString(content) {
		violations = append(violations, "content contains potentially unsafe content")
	}
	if fields.Author != "" && !authorCharsPattern.MatchString(fields.Author) {
		violations = append(violations, "author contains invalid characters")
	}
	return violations
}

// structViolations runs the tag-based presence and length checks and
// translates field errors into the fixed messages. The validator reports at
// most one error per field, in declaration order, so a missing field
// short-circuits its own length check and nothing else.
func structViolations(fields interface{}, bounds map[string]fieldBounds) []string {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid payload"}
	}
	var violations []string
	for _, fe := range fieldErrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			violations = append(violations, name+" is required")
		default:
			b := bounds[name]
			violations = append(violations,
				fmt.Sprintf("%s must be between %d and %d characters", name, b.min, b.max))
		}
	}
	return violations
}

// hasCharRun reports whether any character repeats consecutively more than
// limit times.
func hasCharRun(text string, limit int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run > limit {
			return true
		}
	}
	return false
}

// looksRepetitive applies the token-frequency spam heuristic to post
// content. Tokens are whitespace-separated and compared case-insensitively;
// only tokens longer than 3 characters count toward a frequency.
func looksRepetitive(content string) bool {
	tokens := strings.Fields(strings.ToLower(content))
	if len(tokens) <= minSpamTokens {
		return false
	}
	counts := make(map[string]int)
	for _, token := range tokens {
		if utf8.RuneCountInString(token) > spamTokenMinRunes {
			counts[token]++
		}
	}
	threshold := spamFrequency * float64(len(tokens))
	for _, count := range counts {
		if float64(count) > threshold {
			return true
		}
	}
	return false
}
