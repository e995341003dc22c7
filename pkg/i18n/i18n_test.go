package i18n_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/i18n"
)

func newService(t *testing.T, opts ...i18n.Option) *i18n.I18n {
	t.Helper()

	base := []i18n.Option{
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", "shop", map[string]any{
			"cart": map[string]any{
				"title": "Your Cart",
				"total": "Total: {{amount}}",
			},
			"items": map[string]any{
				"one":   "{{count}} item",
				"other": "{{count}} items",
			},
		}),
		i18n.WithTranslations("fr", "shop", map[string]any{
			"cart": map[string]any{
				"title": "Votre Panier",
			},
			"items": map[string]any{
				"one":   "{{count}} article",
				"other": "{{count}} articles",
			},
		}),
	}

	svc, err := i18n.New(append(base, opts...)...)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to english", func(t *testing.T) {
		t.Parallel()

		svc, err := i18n.New()
		require.NoError(t, err)
		require.Equal(t, "en", svc.DefaultLanguage())
		require.Equal(t, []string{"en"}, svc.Languages())
	})

	t.Run("rejects empty default language", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithDefaultLanguage(""))
		require.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("rejects empty namespace", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithTranslations("en", "", map[string]any{"a": "b"}))
		require.ErrorIs(t, err, i18n.ErrEmptyNamespace)
	})

	t.Run("rejects nil plural rule", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithPluralRule("en", nil))
		require.ErrorIs(t, err, i18n.ErrNilPluralRule)
	})

	t.Run("lists default language first", func(t *testing.T) {
		t.Parallel()

		svc, err := i18n.New(
			i18n.WithTranslations("fr", "shop", map[string]any{"a": "b"}),
			i18n.WithTranslations("en", "shop", map[string]any{"a": "b"}),
			i18n.WithDefaultLanguage("en"),
		)
		require.NoError(t, err)
		require.Equal(t, []string{"en", "fr"}, svc.Languages())
	})
}

func TestI18n_T(t *testing.T) {
	t.Parallel()

	t.Run("translates nested keys", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		require.Equal(t, "Votre Panier", svc.T("fr", "shop", "cart.title"))
		require.Equal(t, "Your Cart", svc.T("en", "shop", "cart.title"))
	})

	t.Run("replaces placeholders", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		require.Equal(t, "Total: €5.00", svc.T("en", "shop", "cart.total", i18n.M{"amount": "€5.00"}))
	})

	t.Run("falls back to base language", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		require.Equal(t, "Votre Panier", svc.T("fr-CA", "shop", "cart.title"))
	})

	t.Run("returns the key when missing", func(t *testing.T) {
		t.Parallel()

		svc := newService(t)
		require.Equal(t, "cart.total", svc.T("fr", "shop", "cart.total"))
		require.Equal(t, "unknown", svc.T("en", "shop", "unknown"))
	})

	t.Run("reports missing keys", func(t *testing.T) {
		t.Parallel()

		var (
			mu     sync.Mutex
			missed []string
		)
		svc := newService(t, i18n.WithMissingKeyHandler(func(lang, ns, key string) {
			mu.Lock()
			defer mu.Unlock()
			missed = append(missed, lang+":"+ns+":"+key)
		}))

		svc.T("fr", "shop", "cart.total")
		require.Equal(t, []string{"fr:shop:cart.total"}, missed)
	})
}

func TestI18n_Tn(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	tests := []struct {
		lang string
		n    int
		want string
	}{
		{"en", 0, "0 items"},
		{"en", 1, "1 item"},
		{"en", 3, "3 items"},
		{"fr", 0, "0 article"},
		{"fr", 1, "1 article"},
		{"fr", 2, "2 articles"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+" "+tt.want, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, svc.Tn(tt.lang, "shop", "items", tt.n))
		})
	}

	t.Run("returns key when no form exists", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "missing", svc.Tn("en", "shop", "missing", 2))
	})
}

func TestI18n_Supports(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	require.True(t, svc.Supports("fr"))
	require.True(t, svc.Supports("fr-BE"))
	require.False(t, svc.Supports("de"))
	require.True(t, svc.Has("fr", "shop", "cart.title"))
	require.False(t, svc.Has("fr", "shop", "cart.total"))
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	t.Run("panics without service", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { i18n.NewTranslator(nil, "en", "shop", nil) })
	})

	t.Run("uses default language and format", func(t *testing.T) {
		t.Parallel()

		tr := i18n.NewTranslator(newService(t), "", "shop", nil)
		require.Equal(t, "en", tr.Language())
		require.Equal(t, "shop", tr.Namespace())
		require.Equal(t, "Your Cart", tr.T("cart.title"))
		require.Equal(t, "2 items", tr.Tn("items", 2))
	})

	t.Run("translates validation messages", func(t *testing.T) {
		t.Parallel()

		tr := i18n.NewTranslator(newService(t), "en", "shop", nil)
		require.Equal(t, "Total: 3", tr.TranslateMessage("cart.total", map[string]any{"amount": 3}))
	})
}
