package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/domain"
)

func mustCatalog(t *testing.T, products []domain.Product) *Catalog {
	t.Helper()
	c, err := New(products)
	require.NoError(t, err)
	return c
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Oak Desk", Price: 249, Category: "Furniture",
			Description: "Solid oak writing desk", Tags: []string{"oak", "office"}},
		{ID: "p2", Name: "Linen Throw", Price: 44.99, Category: "Textiles",
			Description: "Stonewashed linen", Tags: []string{"linen", "bedroom"}},
		{ID: "p3", Name: "Walnut Shelf", Price: 89, Category: "furniture",
			Description: "Floating shelf", Tags: []string{"walnut"}},
		{ID: "p4", Name: "Ceramic Vase", Price: 29.99, Category: "Decor",
			Description: "Hand-thrown stoneware", Tags: []string{"ceramic"}},
		{ID: "p5", Name: "Rattan Chair", Price: 219, Category: "Furniture",
			Description: "Lounge chair with teak frame", Tags: []string{"rattan"}},
	}
}

func TestNewValidatesSeed(t *testing.T) {
	t.Run("invalid record rejected", func(t *testing.T) {
		_, err := New([]domain.Product{{ID: "p1", Name: "", Price: 1}})
		require.Error(t, err)
		assert.True(t, domain.IsInvalidProductError(err))
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := New([]domain.Product{
			{ID: "p1", Name: "A", Price: 1},
			{ID: "p1", Name: "B", Price: 2},
		})
		require.Error(t, err)
		assert.True(t, domain.IsDuplicateProductError(err))
	})

	t.Run("order preserved", func(t *testing.T) {
		c := mustCatalog(t, testProducts())
		all := c.All()
		require.Len(t, all, 5)
		assert.Equal(t, "p1", all[0].ID)
		assert.Equal(t, "p5", all[4].ID)
	})
}

func TestByID(t *testing.T) {
	c := mustCatalog(t, testProducts())

	p, ok := c.ByID("p3")
	require.True(t, ok)
	assert.Equal(t, "Walnut Shelf", p.Name)

	_, ok = c.ByID("no-such")
	assert.False(t, ok)
}

func TestByCategoryIsCaseInsensitive(t *testing.T) {
	c := mustCatalog(t, testProducts())

	for _, q := range []string{"Furniture", "furniture", "FURNITURE"} {
		got := c.ByCategory(q)
		require.Len(t, got, 3, "query %q", q)
		assert.Equal(t, []string{"p1", "p3", "p5"}, ids(got))
	}
}

func TestSearch(t *testing.T) {
	c := mustCatalog(t, testProducts())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all", "", []string{"p1", "p2", "p3", "p4", "p5"}},
		{"whitespace query returns all", "   ", []string{"p1", "p2", "p3", "p4", "p5"}},
		{"matches name", "oak desk", []string{"p1"}},
		{"matches category case-insensitively", "TEXTILES", []string{"p2"}},
		{"matches description", "stoneware", []string{"p4"}},
		{"matches tag", "rattan", []string{"p5"}},
		{"substring across fields keeps catalog order", "oak", []string{"p1"}},
		{"no match", "zeppelin", []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Search(tt.query)))
		})
	}
}

func TestRelated(t *testing.T) {
	c := mustCatalog(t, testProducts())

	t.Run("same category excluding self", func(t *testing.T) {
		got := c.Related("p1", 4)
		assert.Equal(t, []string{"p3", "p5"}, ids(got))
	})

	t.Run("limit truncates", func(t *testing.T) {
		got := c.Related("p1", 1)
		assert.Equal(t, []string{"p3"}, ids(got))
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		got := c.Related("p1", 0)
		assert.Equal(t, []string{"p3", "p5"}, ids(got))
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.Empty(t, c.Related("no-such", 4))
	})
}

func TestCategories(t *testing.T) {
	c := mustCatalog(t, testProducts())
	// "furniture" differs from "Furniture" only by case: one entry
	assert.Equal(t, []string{"Furniture", "Textiles", "Decor"}, c.Categories())
}

func TestDefaultSeedIsValid(t *testing.T) {
	c, err := New(DefaultSeed())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Len(), 14)
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
