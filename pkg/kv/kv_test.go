package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/kv"
)

type profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func newBucket(t *testing.T, scope string) (*kv.Bucket, *kv.Memory) {
	t.Helper()

	store := kv.NewMemory()
	t.Cleanup(func() { _ = store.Close() })

	b, err := kv.NewBucket(store, scope, time.Hour)
	require.NoError(t, err)
	return b, store
}

func TestNewBucket(t *testing.T) {
	t.Parallel()

	_, err := kv.NewBucket(kv.NewMemory(), "", time.Hour)
	require.ErrorIs(t, err, kv.ErrEmptyScope)
}

func TestBucket_Scoping(t *testing.T) {
	t.Parallel()

	store := kv.NewMemory()
	defer store.Close()

	ctx := context.Background()
	alice, err := kv.NewBucket(store, "alice", time.Hour)
	require.NoError(t, err)
	bob, err := kv.NewBucket(store, "bob", time.Hour)
	require.NoError(t, err)

	require.NoError(t, alice.Set(ctx, "cart", []byte("a")))

	_, err = bob.Get(ctx, "cart")
	require.ErrorIs(t, err, kv.ErrNotFound)

	raw, err := store.Get(ctx, "alice:cart")
	require.NoError(t, err)
	require.Equal(t, []byte("a"), raw)
}

func TestLoadSave(t *testing.T) {
	t.Parallel()

	t.Run("round trips a struct", func(t *testing.T) {
		t.Parallel()

		b, _ := newBucket(t, "v1")
		ctx := context.Background()

		require.NoError(t, kv.Save(ctx, b, "profile", profile{Name: "Mimoo", Age: 3}))

		got, err := kv.Load[profile](ctx, b, "profile")
		require.NoError(t, err)
		require.Equal(t, profile{Name: "Mimoo", Age: 3}, got)
	})

	t.Run("reports corrupt data", func(t *testing.T) {
		t.Parallel()

		b, _ := newBucket(t, "v2")
		ctx := context.Background()
		require.NoError(t, b.Set(ctx, "profile", []byte("{not json")))

		_, err := kv.Load[profile](ctx, b, "profile")
		require.ErrorIs(t, err, kv.ErrCorrupt)
	})

	t.Run("LoadOr falls back on missing and corrupt values", func(t *testing.T) {
		t.Parallel()

		b, _ := newBucket(t, "v3")
		ctx := context.Background()

		v, err := kv.LoadOr(ctx, b, "flag", true)
		require.NoError(t, err)
		require.True(t, v)

		require.NoError(t, b.Set(ctx, "flag", []byte("nope")))
		v, err = kv.LoadOr(ctx, b, "flag", false)
		require.NoError(t, err)
		require.False(t, v)
	})

	t.Run("LoadOr passes through store errors", func(t *testing.T) {
		t.Parallel()

		b, store := newBucket(t, "v4")
		require.NoError(t, store.Close())

		_, err := kv.LoadOr(context.Background(), b, "flag", false)
		require.ErrorIs(t, err, kv.ErrClosed)
	})
}
