// Package i18n provides translation lookups, plural forms and locale aware
// formatting of money and dates.
//
// An I18n instance is built once with every translation table and is safe
// for concurrent use:
//
//	svc, err := i18n.New(
//	    i18n.WithDefaultLanguage("en"),
//	    i18n.WithTranslations("en", "shop", map[string]any{
//	        "cart": map[string]any{"title": "Your Cart"},
//	        "items": map[string]any{"one": "{{count}} item", "other": "{{count}} items"},
//	    }),
//	    i18n.WithTranslations("fr", "shop", map[string]any{
//	        "cart": map[string]any{"title": "Votre Panier"},
//	        "items": map[string]any{"one": "{{count}} article", "other": "{{count}} articles"},
//	    }),
//	)
//
//	svc.T("fr", "shop", "cart.title")  // "Votre Panier"
//	svc.Tn("fr", "shop", "items", 0)   // "0 article"
//	svc.T("fr", "shop", "nope")        // "nope"
//
// Lookups try the exact language, then its base language ("fr-CA" ->
// "fr"). A miss returns the key itself and calls the missing key handler.
//
// ParseAcceptLanguage negotiates a configured language from the
// Accept-Language header using golang.org/x/text/language.
//
// LocaleFormat renders decimal amounts without float rounding:
//
//	i18n.FormatFr().FormatCurrency(decimal.RequireFromString("1234.5")) // "1 234,50 €"
package i18n
