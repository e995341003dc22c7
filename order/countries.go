package order

import "github.com/dmitrymomot/storefront/locale"

type countryNames struct{ fr, en string }

var countries = map[string]countryNames{
	"FR": {"France", "France"},
	"BE": {"Belgique", "Belgium"},
	"CH": {"Suisse", "Switzerland"},
	"CA": {"Canada", "Canada"},
	"DE": {"Allemagne", "Germany"},
	"ES": {"Espagne", "Spain"},
	"IT": {"Italie", "Italy"},
	"UK": {"Royaume-Uni", "United Kingdom"},
	"US": {"États-Unis", "United States"},
	"JP": {"Japon", "Japan"},
}

// CountryCodes lists shippable countries in form order.
func CountryCodes() []string {
	return []string{"FR", "BE", "CH", "CA", "DE", "ES", "IT", "UK", "US", "JP"}
}

// CountryName returns the display name of code in lang, or code itself
// when unknown.
func CountryName(code string, lang locale.Lang) string {
	n, ok := countries[code]
	if !ok {
		return code
	}
	if lang == locale.French {
		return n.fr
	}
	return n.en
}
