package sanitizer

import (
	"html"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func policy() *bluemonday.Policy {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripTags removes all markup and returns plain text.
// Entities produced by the policy are decoded back, templates escape on
// output.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}
	return html.UnescapeString(policy().Sanitize(s))
}

// Text strips markup, collapses runs of whitespace and trims the result.
func Text(s string) string {
	return strings.Join(strings.Fields(StripTags(s)), " ")
}

// Multiline strips markup and trims each line, keeping line breaks.
// The result is cut to max runes when max > 0.
func Multiline(s string, max int) string {
	lines := strings.Split(strings.ReplaceAll(StripTags(s), "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return Truncate(strings.TrimSpace(strings.Join(lines, "\n")), max)
}

// Email trims and lowercases an address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(StripTags(s)))
}

// Digits keeps ASCII digits only, cut to max digits when max > 0.
func Digits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return Truncate(b.String(), max)
}

// Phone keeps digits, spaces and a leading plus sign.
func Phone(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r <= unicode.MaxASCII && unicode.IsDigit(r), r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Code trims and uppercases a token such as a promo or country code.
func Code(s string) string {
	return strings.ToUpper(strings.TrimSpace(StripTags(s)))
}

// Truncate cuts s to max runes. max <= 0 disables truncation.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
