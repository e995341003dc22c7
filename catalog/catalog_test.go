package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/catalog"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	require.NoError(t, err)
	require.Equal(t, 18, c.Len())

	p, err := c.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Cherry Blossom Keychain", p.Name)
	assert.Equal(t, catalog.Keychains, p.Category)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.99")))
	assert.True(t, p.Popular)

	for _, cat := range catalog.Categories() {
		assert.Len(t, c.ByCategory(cat), map[catalog.Category]int{
			catalog.Keychains: 4, catalog.Prints: 4, catalog.Badges: 4, catalog.Charms: 6,
		}[cat], cat)
	}
}

func TestQueries(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	require.NoError(t, err)

	t.Run("by id miss", func(t *testing.T) {
		t.Parallel()
		_, err := c.ByID(99)
		require.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("all category", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, c.ByCategory(catalog.All), 18)
		assert.Len(t, c.ByCategory(""), 18)
	})

	t.Run("popular", func(t *testing.T) {
		t.Parallel()
		for _, p := range c.Popular() {
			assert.True(t, p.Popular)
		}
		assert.Len(t, c.Popular(), 8)
	})

	t.Run("search matches name description and tags", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, c.Search("KAWAII"), 2)
		assert.Len(t, c.Search("holographic"), 2)
		assert.Len(t, c.Search("  "), 18)
		assert.Empty(t, c.Search("dragon"))
	})

	t.Run("filter keeps order", func(t *testing.T) {
		t.Parallel()
		got := c.Filter(catalog.Query{Category: catalog.Charms, Search: "retro"})
		require.Len(t, got, 1)
		assert.Equal(t, 18, got[0].ID)

		ids := []int{}
		for _, p := range c.Filter(catalog.Query{Search: "retro"}) {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []int{4, 12, 18}, ids)
	})

	t.Run("price range", func(t *testing.T) {
		t.Parallel()
		got := c.PriceRange(decimal.NewFromInt(25), decimal.NewFromInt(30))
		require.Len(t, got, 2)
		assert.Equal(t, 6, got[0].ID)
		assert.Equal(t, 8, got[1].ID)
	})

	t.Run("results are copies", func(t *testing.T) {
		t.Parallel()
		all := c.All()
		all[0].Name = "changed"
		p, _ := c.ByID(all[0].ID)
		assert.NotEqual(t, "changed", p.Name)
	})
}

func TestTagsAreCopied(t *testing.T) {
	t.Parallel()

	c, err := catalog.New([]catalog.Product{
		{ID: 1, Name: "Sakura Keychain", Category: catalog.Keychains, Price: decimal.NewFromInt(10), Tags: []string{"kawaii", "pink"}},
	})
	require.NoError(t, err)

	p, err := c.ByID(1)
	require.NoError(t, err)
	p.Tags[0] = "changed"

	c.All()[0].Tags[0] = "changed"
	c.ByCategory(catalog.All)[0].Tags[1] = "changed"
	c.Search("kawaii")[0].Tags[0] = "changed"

	p, err = c.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"kawaii", "pink"}, p.Tags)
	assert.Len(t, c.Search("kawaii"), 1)
}

func TestNewRejectsInvalidProducts(t *testing.T) {
	t.Parallel()

	valid := catalog.Product{ID: 1, Name: "A", Category: catalog.Badges, Price: decimal.NewFromInt(1)}

	tests := []struct {
		name    string
		mutate  func(p *catalog.Product)
		wantErr error
	}{
		{"zero id", func(p *catalog.Product) { p.ID = 0 }, catalog.ErrInvalidProduct},
		{"negative price", func(p *catalog.Product) { p.Price = decimal.NewFromInt(-1) }, catalog.ErrInvalidProduct},
		{"unknown category", func(p *catalog.Product) { p.Category = "stickers" }, catalog.ErrInvalidProduct},
		{"empty name", func(p *catalog.Product) { p.Name = "" }, catalog.ErrInvalidProduct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)
			_, err := catalog.New([]catalog.Product{p})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := catalog.New([]catalog.Product{valid, valid})
	require.ErrorIs(t, err, catalog.ErrDuplicateID)
}

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := catalog.Parse([]byte("- id: 1\n  name: A\n  category: badges\n  price: abc\n"))
	require.ErrorIs(t, err, catalog.ErrInvalidSeed)

	_, err = catalog.Parse([]byte("{not a list"))
	require.ErrorIs(t, err, catalog.ErrInvalidSeed)
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, ok := catalog.ParseCategory("Prints")
	assert.True(t, ok)
	assert.Equal(t, catalog.Prints, c)

	c, ok = catalog.ParseCategory("")
	assert.True(t, ok)
	assert.Equal(t, catalog.All, c)

	_, ok = catalog.ParseCategory("artwork")
	assert.False(t, ok)
}
