package id

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	t.Parallel()

	t.Run("has crockford alphabet and length", func(t *testing.T) {
		t.Parallel()

		v := NewULID()
		require.Len(t, v, 26)
		require.Regexp(t, regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`), v)
	})

	t.Run("sorts by time", func(t *testing.T) {
		t.Parallel()

		earlier := ulidAt(time.UnixMilli(1_700_000_000_000))
		later := ulidAt(time.UnixMilli(1_700_000_000_001))
		require.Less(t, earlier[:10], later[:10])
	})

	t.Run("encodes zero time as zeros", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "0000000000", ulidAt(time.UnixMilli(0))[:10])
	})

	t.Run("is unique", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool, 1000)
		for range 1000 {
			v := NewULID()
			require.False(t, seen[v])
			seen[v] = true
		}
	})
}

func TestNewOrderID(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1760968800123)
	v := NewOrderID("MIMOO", at)

	require.True(t, strings.HasPrefix(v, "MIMOO-1760968800123-"))
	require.Regexp(t, regexp.MustCompile(`^MIMOO-\d+-[0-9A-Z]{5}$`), v)
}

func TestRandomBase36(t *testing.T) {
	t.Parallel()

	require.Empty(t, RandomBase36(0))
	require.Regexp(t, regexp.MustCompile(`^[0-9A-Z]{8}$`), RandomBase36(8))

	t.Run("discards bytes above the last full alphabet cycle", func(t *testing.T) {
		t.Parallel()

		src := []byte{255, 252, 251, 0, 36, 1, 1, 1}
		read := func(b []byte) {
			n := copy(b, src)
			src = src[n:]
		}
		require.Equal(t, "Z00", randomBase36(3, read))
	})

	t.Run("every symbol is reachable", func(t *testing.T) {
		t.Parallel()

		seen := map[rune]bool{}
		for _, r := range RandomBase36(5000) {
			seen[r] = true
		}
		require.Len(t, seen, len(base36))
	})
}
