package middlewares

import (
	"errors"

	"github.com/dmitrymomot/storefront/internal"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/kv"
)

// LanguagePreferenceKey is the visitor bucket key of the chosen language.
const LanguagePreferenceKey = "language"

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	FormatMap     map[string]*i18n.LocaleFormat
	DefaultFormat *i18n.LocaleFormat
	Namespace     string
	Extractor     internal.Extractor
	extractorSet  bool
}

// I18nOption configures the I18n middleware.
type I18nOption func(*I18nConfig)

// WithI18nNamespace sets the translation namespace of the request translator.
func WithI18nNamespace(ns string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Namespace = ns
	}
}

// WithI18nExtractor replaces the language sources.
func WithI18nExtractor(ext internal.Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithI18nFormatMap sets the number and date format of each language.
func WithI18nFormatMap(m map[string]*i18n.LocaleFormat) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.FormatMap = m
	}
}

// FromVisitorPreference returns a source reading the language stored in
// the visitor bucket. Unsupported values are ignored.
func FromVisitorPreference(svc *i18n.I18n) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		b := GetVisitor(c)
		if b == nil {
			return "", false
		}
		v, err := b.Get(c, LanguagePreferenceKey)
		if err != nil {
			if !errors.Is(err, kv.ErrNotFound) {
				c.LogWarn("language preference unavailable", "error", err)
			}
			return "", false
		}
		lang := string(v)
		return lang, svc.Supports(lang)
	}
}

// FromAcceptLanguage returns a source matching the Accept-Language header
// against the available languages.
func FromAcceptLanguage(available []string) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		header := c.Header("Accept-Language")
		if header == "" {
			return "", false
		}
		return i18n.ParseAcceptLanguage(header, available), true
	}
}

// I18n resolves the request language and stores a *i18n.Translator under
// internal.TranslatorKey and the language under internal.LanguageKey.
//
// Default order: stored visitor preference, Accept-Language, the service's
// default language. Run it after Visitor.
func I18n(svc *i18n.I18n, opts ...I18nOption) internal.Middleware {
	cfg := &I18nConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			FromVisitorPreference(svc),
			FromAcceptLanguage(svc.Languages()),
		)
	}
	if cfg.DefaultFormat == nil {
		cfg.DefaultFormat = i18n.FormatEn()
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			lang, ok := cfg.Extractor.Extract(c)
			if !ok || !svc.Supports(lang) {
				lang = svc.DefaultLanguage()
			}

			format := cfg.DefaultFormat
			if f, exists := cfg.FormatMap[lang]; exists {
				format = f
			}

			c.Set(internal.TranslatorKey{}, i18n.NewTranslator(svc, lang, cfg.Namespace, format))
			c.Set(internal.LanguageKey{}, lang)
			c.SetHeader("Content-Language", lang)
			c.SetHeader("Vary", "Accept-Language, Cookie")

			return next(c)
		}
	}
}

// GetTranslator returns the request translator, or nil without I18n.
func GetTranslator(c internal.Context) *i18n.Translator {
	if v, ok := c.Get(internal.TranslatorKey{}).(*i18n.Translator); ok {
		return v
	}
	return nil
}

// GetLanguage returns the resolved request language.
func GetLanguage(c internal.Context) string {
	return internal.ContextValue[string](c, internal.LanguageKey{})
}
