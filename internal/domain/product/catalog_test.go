package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func testProducts() []Product {
	return []Product{
		{ID: "A", Name: "Gardening Basics", Description: "A practical gardening guide", Category: "books", Price: 10, Rating: 4.5, Featured: false},
		{ID: "B", Name: "Advanced Gardening", Description: "Deep dive into soil and plants", Category: "books", Price: 50, Rating: 3.0, Featured: true},
		{ID: "C", Name: "Toy Tractor", Description: "Die-cast tractor for gardening fans", Category: "toys", Price: 20, Rating: 5.0, Featured: false},
		{ID: "D", Name: "Desk Lamp", Description: "LED lamp with dimmer", Category: "home", Price: 35, Rating: 4.0, Featured: false},
	}
}

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(testProducts())
	require.NoError(t, err)
	return c
}

func ids(items []Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	items := testProducts()
	items = append(items, Product{ID: "A", Name: "Impostor", Category: "books"})

	_, err := NewCatalog(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := mustCatalog(t)

	snapshot := c.All()
	snapshot[0].Name = "mutated"

	fresh := c.All()
	assert.Equal(t, "Gardening Basics", fresh[0].Name)
}

func TestFilter_ByCategory(t *testing.T) {
	c := mustCatalog(t)

	items, err := c.Filter(Filter{Category: "books"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids(items))
}

func TestFilter_Conjunction(t *testing.T) {
	c := mustCatalog(t)

	items, err := c.Filter(Filter{Category: "books", MaxPrice: floatPtr(20)})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids(items))
}

func TestFilter_SoundAndComplete(t *testing.T) {
	c := mustCatalog(t)

	f := Filter{MaxPrice: floatPtr(40), MinRating: 4.0}
	items, err := c.Filter(f)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, p := range items {
		assert.LessOrEqual(t, p.Price, 40.0)
		assert.GreaterOrEqual(t, p.Rating, 4.0)
		seen[p.ID]++
	}
	for _, p := range c.All() {
		if p.Price <= 40 && p.Rating >= 4.0 {
			assert.Equal(t, 1, seen[p.ID], "product %s should appear exactly once", p.ID)
		} else {
			assert.Zero(t, seen[p.ID], "product %s should be filtered out", p.ID)
		}
	}
}

func TestFilter_UnknownCategoryIsEmptyNotError(t *testing.T) {
	c := mustCatalog(t)

	items, err := c.Filter(Filter{Category: "appliances"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFilter_FeaturedOnly(t *testing.T) {
	c := mustCatalog(t)

	featured, err := c.Filter(Filter{FeaturedOnly: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids(featured))

	notFeatured, err := c.Filter(Filter{FeaturedOnly: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, ids(notFeatured))
}

func TestFilter_NegativeBoundsRejected(t *testing.T) {
	c := mustCatalog(t)

	_, err := c.Filter(Filter{MaxPrice: floatPtr(-1)})
	assert.ErrorIs(t, err, ErrNegativeBound)

	_, err = c.Filter(Filter{MinRating: -0.5})
	assert.ErrorIs(t, err, ErrNegativeBound)
}

func TestCategories_DistinctSorted(t *testing.T) {
	c := mustCatalog(t)

	assert.Equal(t, []string{"books", "home", "toys"}, c.Categories())
}

func TestTextSearch_EmptyQueryRejected(t *testing.T) {
	c := mustCatalog(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := c.TextSearch(q, Filter{})
		assert.ErrorIs(t, err, ErrEmptyQuery, "query %q", q)
	}
}

func TestTextSearch_CaseInsensitiveSubstring(t *testing.T) {
	c := mustCatalog(t)

	items, err := c.TextSearch("GARDEN", Filter{})
	require.NoError(t, err)
	// A and B match in the name, C only in the description.
	assert.Equal(t, []string{"A", "B", "C"}, ids(items))
}

func TestTextSearch_NameOutranksDescription(t *testing.T) {
	c := mustCatalog(t)

	items, err := c.TextSearch("tractor", Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ids(items))

	items, err = c.TextSearch("gardening", Filter{})
	require.NoError(t, err)
	// A: name+description, B: name only, C: description only.
	assert.Equal(t, []string{"A", "B", "C"}, ids(items))
}

func TestTextSearch_AppliesFilters(t *testing.T) {
	c := mustCatalog(t)

	items, err := c.TextSearch("gardening", Filter{Category: "books", MaxPrice: floatPtr(20)})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids(items))
}

func TestTextSearch_Deterministic(t *testing.T) {
	c := mustCatalog(t)

	first, err := c.TextSearch("gardening", Filter{})
	require.NoError(t, err)
	second, err := c.TextSearch("gardening", Filter{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
