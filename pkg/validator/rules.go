package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Translation keys reported by the built-in rules.
const (
	KeyRequired  = "validation.required"
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"
	KeyEmail     = "validation.email"
	KeyDigits    = "validation.digits"
	KeyAccepted  = "validation.accepted"
	KeyOneOf     = "validation.one_of"
	KeyPattern   = "validation.pattern"
	KeyPositive  = "validation.positive"
	KeyCard      = "validation.card_number"
	KeyExpiry    = "validation.card_expiry"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequiredString fails on empty or whitespace-only values.
func RequiredString(field, value string) Rule {
	return newRule(func() bool { return strings.TrimSpace(value) != "" },
		field, "is required", KeyRequired, nil)
}

// MinLenString fails when value has fewer than n characters.
func MinLenString(field, value string, n int) Rule {
	return newRule(func() bool { return utf8.RuneCountInString(value) >= n },
		field, fmt.Sprintf("must be at least %d characters long", n), KeyMinLength, map[string]any{"min": n})
}

// MaxLenString fails when value has more than n characters.
func MaxLenString(field, value string, n int) Rule {
	return newRule(func() bool { return utf8.RuneCountInString(value) <= n },
		field, fmt.Sprintf("must not exceed %d characters", n), KeyMaxLength, map[string]any{"max": n})
}

// Email fails when value does not look like an e-mail address.
func Email(field, value string) Rule {
	return newRule(func() bool { return emailPattern.MatchString(value) },
		field, "must be a valid email address", KeyEmail, nil)
}

// Digits fails when value contains anything but ASCII digits.
func Digits(field, value string) Rule {
	return newRule(func() bool {
		for _, r := range value {
			if r > unicode.MaxASCII || !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	}, field, "must contain digits only", KeyDigits, nil)
}

// Matches fails when value does not match re.
func Matches(field, value string, re *regexp.Regexp) Rule {
	return newRule(func() bool { return re.MatchString(value) },
		field, "has an invalid format", KeyPattern, nil)
}

// Accepted fails when a required checkbox is not ticked.
func Accepted(field string, value bool) Rule {
	return newRule(func() bool { return value },
		field, "must be accepted", KeyAccepted, nil)
}

// OneOf fails when value is not in allowed.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	return newRule(func() bool {
		for _, a := range allowed {
			if a == value {
				return true
			}
		}
		return false
	}, field, "is not an allowed value", KeyOneOf, nil)
}

// Positive fails unless ok, which callers compute for their numeric type.
func Positive(field string, ok bool) Rule {
	return newRule(func() bool { return ok },
		field, "must be greater than zero", KeyPositive, nil)
}

// CardNumber fails unless value is 12 to 19 digits with a valid Luhn
// checksum.
func CardNumber(field, value string) Rule {
	return newRule(func() bool { return luhn(value) },
		field, "must be a valid card number", KeyCard, nil)
}

// CardExpiry fails unless value is "MM/YY" or "MM/YYYY" and the month has
// not ended before now.
func CardExpiry(field, value string, now time.Time) Rule {
	return newRule(func() bool {
		month, year, ok := parseExpiry(value)
		if !ok {
			return false
		}
		end := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, now.Location())
		return now.Before(end)
	}, field, "must be a valid expiry date", KeyExpiry, nil)
}

func luhn(digits string) bool {
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func parseExpiry(value string) (month, year int, ok bool) {
	mm, yy, found := strings.Cut(strings.TrimSpace(value), "/")
	if !found || len(mm) != 2 || (len(yy) != 2 && len(yy) != 4) {
		return 0, 0, false
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(yy)
	if err != nil || year < 0 {
		return 0, 0, false
	}
	if len(yy) == 2 {
		year += 2000
	}
	return month, year, true
}
