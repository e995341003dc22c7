package i18n

import (
	"golang.org/x/text/language"
)

// ParseAcceptLanguage picks the best of available for an Accept-Language
// header. It returns available[0] when the header is empty, malformed or
// matches nothing, and "" when available is empty.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, 0, len(available))
	for _, a := range available {
		supported = append(supported, language.Make(a))
	}

	_, idx, confidence := language.NewMatcher(supported).Match(tags...)
	if confidence == language.No {
		return available[0]
	}

	return available[idx]
}
