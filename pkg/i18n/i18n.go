package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

// I18n holds translations for a fixed set of languages.
// It is immutable after New and safe for concurrent use.
type I18n struct {
	// "lang:namespace:key" -> translation
	translations map[string]string

	pluralRules map[string]PluralRule

	missingKeyHandler func(lang, namespace, key string)

	defaultLang string

	// default language first, then the others in registration order
	languages []string
}

// Option configures an I18n instance.
type Option func(*I18n) error

// New creates an I18n instance.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		pluralRules:  make(map[string]PluralRule),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	i.languages = i.orderLanguages()

	return i, nil
}

// WithDefaultLanguage sets the language returned for unmatched requests.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithTranslations registers translations for a language and namespace.
// Nested maps are flattened with dot notation: {"cart": {"empty": "..."}}
// becomes "cart.empty".
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}

		for key, value := range flatten(translations, "") {
			i.translations[buildKey(lang, namespace, key)] = value
		}

		if !i.hasLanguage(lang) {
			i.languages = append(i.languages, lang)
		}
		if _, ok := i.pluralRules[lang]; !ok {
			i.pluralRules[lang] = PluralRuleFor(lang)
		}

		return nil
	}
}

// WithPluralRule overrides the plural rule of a language.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithMissingKeyHandler sets a callback invoked whenever a lookup misses.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// T returns the translation of key for lang, trying the base language of a
// regional tag ("fr-CA" -> "fr") before giving up.
// A missing translation returns the key itself.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	translation, ok := i.lookup(lang, namespace, key)
	if !ok {
		i.missing(lang, namespace, key)
		return key
	}
	return ReplacePlaceholders(translation, merge(placeholders...))
}

// Tn returns the plural form of key for n. Forms are stored as
// "key.one", "key.other" and so on; "{{count}}" is always available.
func (i *I18n) Tn(lang, namespace, key string, n int, placeholders ...M) string {
	form := i.pluralRule(lang)(n)

	translation, ok := i.lookup(lang, namespace, key+"."+form)
	if !ok && form != PluralOther {
		translation, ok = i.lookup(lang, namespace, key+"."+PluralOther)
	}
	if !ok {
		i.missing(lang, namespace, key)
		return key
	}

	values := M{"count": n}
	maps.Copy(values, merge(placeholders...))

	return ReplacePlaceholders(translation, values)
}

// Has reports whether key has a translation for lang.
func (i *I18n) Has(lang, namespace, key string) bool {
	_, ok := i.lookup(lang, namespace, key)
	return ok
}

// Languages returns configured languages, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Supports reports whether lang (or its base language) is configured.
func (i *I18n) Supports(lang string) bool {
	return i.hasLanguage(lang) || i.hasLanguage(baseLanguage(lang))
}

func (i *I18n) lookup(lang, namespace, key string) (string, bool) {
	if v, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return v, true
	}
	if base := baseLanguage(lang); base != lang {
		if v, ok := i.translations[buildKey(base, namespace, key)]; ok {
			return v, true
		}
	}
	return "", false
}

func (i *I18n) missing(lang, namespace, key string) {
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
}

func (i *I18n) pluralRule(lang string) PluralRule {
	if rule, ok := i.pluralRules[lang]; ok {
		return rule
	}
	if rule, ok := i.pluralRules[baseLanguage(lang)]; ok {
		return rule
	}
	return PluralRuleFor(lang)
}

func (i *I18n) hasLanguage(lang string) bool {
	for _, l := range i.languages {
		if l == lang {
			return true
		}
	}
	return false
}

func (i *I18n) orderLanguages() []string {
	ordered := make([]string, 0, len(i.languages)+1)
	ordered = append(ordered, i.defaultLang)
	for _, l := range i.languages {
		if l != i.defaultLang {
			ordered = append(ordered, l)
		}
	}
	return ordered
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string, len(data))

	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[full] = v
		case map[string]any:
			maps.Copy(result, flatten(v, full))
		case map[string]string:
			for k, s := range v {
				result[full+"."+k] = s
			}
		default:
			result[full] = fmt.Sprint(v)
		}
	}

	return result
}

func merge(placeholders ...M) M {
	if len(placeholders) == 0 {
		return nil
	}
	if len(placeholders) == 1 {
		return placeholders[0]
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}

func baseLanguage(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		return strings.ToLower(lang[:i])
	}
	return strings.ToLower(lang)
}
