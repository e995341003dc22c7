package locale

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/pkg/i18n"
)

// Namespace is the i18n namespace holding UI strings.
const Namespace = "ui"

// Lang is a supported two-letter language code.
type Lang string

const (
	French  Lang = "fr"
	English Lang = "en"

	Default = English
)

var tables = map[Lang]*Table{
	French:  &french,
	English: &english,
}

// Supported lists the languages in display order.
func Supported() []Lang { return []Lang{French, English} }

// Parse normalizes s ("FR", "fr-CA") to a supported language.
func Parse(s string) (Lang, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	l := Lang(s)
	_, ok := tables[l]
	return l, ok
}

// Translate returns the text of key in lang, or the key name when the
// language or entry is missing.
func Translate(lang Lang, key Key) string {
	t, ok := tables[lang]
	if !ok || key < 0 || key >= keyCount || t[key] == "" {
		return key.String()
	}
	return t[key]
}

// Format returns the number and date conventions of lang.
func Format(lang Lang) *i18n.LocaleFormat {
	if lang == French {
		return i18n.FormatFr()
	}
	return i18n.FormatEn()
}

// NewI18n loads both tables into an i18n service. Misses are logged at
// debug level.
func NewI18n(log *slog.Logger) (*i18n.I18n, error) {
	opts := []i18n.Option{i18n.WithDefaultLanguage(string(Default))}
	for _, lang := range Supported() {
		opts = append(opts, i18n.WithTranslations(string(lang), Namespace, tables[lang].messages()))
	}
	if log != nil {
		opts = append(opts, i18n.WithMissingKeyHandler(func(lang, ns, key string) {
			log.Debug("missing translation",
				slog.String("lang", lang),
				slog.String("namespace", ns),
				slog.String("key", key),
			)
		}))
	}
	return i18n.New(opts...)
}

func (t *Table) messages() map[string]any {
	out := make(map[string]any, keyCount)
	for k, v := range t {
		out[names[k]] = v
	}
	return out
}

// Translator wraps a request translator with typed keys.
type Translator struct {
	*i18n.Translator
}

// NewTranslator binds svc to lang.
func NewTranslator(svc *i18n.I18n, lang Lang) Translator {
	return Translator{i18n.NewTranslator(svc, string(lang), Namespace, Format(lang))}
}

// Text translates key.
func (t Translator) Text(key Key, placeholders ...i18n.M) string {
	return t.T(key.String(), placeholders...)
}

// Count translates a pluralized key such as "items" for n.
func (t Translator) Count(base string, n int) string {
	return t.Tn(base, n)
}

// Money formats an amount in the translator's currency format.
func (t Translator) Money(amount decimal.Decimal) string {
	return t.FormatCurrency(amount)
}

// Lang returns the language of t.
func (t Translator) Lang() Lang { return Lang(t.Language()) }
