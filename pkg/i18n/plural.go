package i18n

// PluralRule maps a count to a CLDR plural form.
type PluralRule func(n int) string

const (
	PluralOne   = "one"
	PluralOther = "other"
)

// EnglishPluralRule: 1 is singular, everything else plural.
var EnglishPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// FrenchPluralRule: 0 and 1 are singular.
var FrenchPluralRule PluralRule = func(n int) string {
	if n >= -1 && n <= 1 {
		return PluralOne
	}
	return PluralOther
}

// PluralRuleFor returns the rule for a language tag, English rules otherwise.
func PluralRuleFor(lang string) PluralRule {
	switch baseLanguage(lang) {
	case "fr":
		return FrenchPluralRule
	default:
		return EnglishPluralRule
	}
}
