package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Jean Dupont", "Jean Dupont"},
		{"collapses whitespace", "  Jean \t  Dupont ", "Jean Dupont"},
		{"strips tags", "<b>Jean</b> <script>alert(1)</script>Dupont", "Jean Dupont"},
		{"keeps ampersand", "Tom & Jerry", "Tom & Jerry"},
		{"keeps accents", "Élodie", "Élodie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizer.Text(tt.in))
		})
	}
}

func TestMultiline(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ring twice\nleave at door", sanitizer.Multiline("  ring   twice \r\n leave at door  ", 0))
	require.Equal(t, "ring", sanitizer.Multiline("ring twice", 4))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "jean@example.com", sanitizer.Email("  Jean@Example.COM "))
}

func TestDigits(t *testing.T) {
	t.Parallel()

	require.Equal(t, "75001", sanitizer.Digits("75 001", 5))
	require.Equal(t, "12345", sanitizer.Digits("123456789", 5))
	require.Equal(t, "", sanitizer.Digits("abc", 5))
	require.Equal(t, "123456", sanitizer.Digits("12-34-56", 0))
}

func TestPhone(t *testing.T) {
	t.Parallel()

	require.Equal(t, "+33 6 12 34 56 78", sanitizer.Phone(" +33 6 12  34 56 78x "))
	require.Equal(t, "0612", sanitizer.Phone("06+12"))
}

func TestCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, "WELCOME10", sanitizer.Code("  welcome10 "))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "éé", sanitizer.Truncate("ééé", 2))
	require.Equal(t, "ééé", sanitizer.Truncate("ééé", 0))
}
