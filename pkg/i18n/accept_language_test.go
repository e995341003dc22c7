package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"en", "fr"}

	tests := []struct {
		name      string
		header    string
		available []string
		want      string
	}{
		{"empty header returns first available", "", available, "en"},
		{"empty available returns empty", "fr", nil, ""},
		{"exact match", "fr", available, "fr"},
		{"regional tag matches base", "fr-FR,fr;q=0.9", available, "fr"},
		{"respects quality", "en;q=0.5,fr;q=0.9", available, "fr"},
		{"unsupported falls back", "de-DE,de;q=0.9", available, "en"},
		{"garbage falls back", ";;;q=abc", available, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, tt.available))
		})
	}
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Page 2 of 3", i18n.ReplacePlaceholders("Page {{page}} of {{total}}", i18n.M{"page": 2, "total": 3}))
	require.Equal(t, "Hi {{name}}", i18n.ReplacePlaceholders("Hi {{name}}", i18n.M{"other": 1}))
	require.Equal(t, "plain", i18n.ReplacePlaceholders("plain", nil))
}
