package i18n

import (
	"time"

	"github.com/shopspring/decimal"
)

// Translator binds an I18n instance to one language, namespace and format.
// It is created per request by the i18n middleware.
type Translator struct {
	i18n      *I18n
	format    *LocaleFormat
	language  string
	namespace string
}

// NewTranslator panics if i18n is nil.
func NewTranslator(i18n *I18n, language, namespace string, format *LocaleFormat) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	if format == nil {
		format = FormatEn()
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
		format:    format,
	}
}

func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

// TranslateMessage adapts T to validator.ValidationErrors.Translate.
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	return t.i18n.T(t.language, t.namespace, key, values)
}

func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.language, t.namespace, key, n, placeholders...)
}

func (t *Translator) FormatCurrency(amount decimal.Decimal) string {
	return t.format.FormatCurrency(amount)
}

func (t *Translator) FormatDate(date time.Time) string {
	return t.format.FormatDate(date)
}

func (t *Translator) FormatLongDate(date time.Time) string {
	return t.format.FormatLongDate(date)
}

func (t *Translator) Language() string {
	return t.language
}

func (t *Translator) Namespace() string {
	return t.namespace
}
