package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	store := NewStore()

	product, ok := store.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Embroidered Maxi Dress", product.Name)

	_, ok = store.ByID(999)
	assert.False(t, ok)
}

func TestAllReturnsACopy(t *testing.T) {
	store := NewStore()

	products := store.All()
	require.NotEmpty(t, products)
	products[0].Name = "mutated"

	fresh, ok := store.ByID(products[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Name)
}

func TestFindByCategory(t *testing.T) {
	store := NewStore()

	for _, product := range store.Find(Filter{Category: "dresses"}) {
		assert.Equal(t, "dresses", product.Category)
	}
	assert.Len(t, store.Find(Filter{Category: "dresses"}), 4)

	// "all" is a pass-through, the storefront's default category.
	assert.Len(t, store.Find(Filter{Category: "all"}), len(store.All()))
}

func TestFindBySearch(t *testing.T) {
	store := NewStore()

	result := store.Find(Filter{Search: "linen"})
	require.NotEmpty(t, result)
	ids := make([]int, 0, len(result))
	for _, product := range result {
		ids = append(ids, product.ID)
	}
	assert.ElementsMatch(t, []int{6, 11}, ids)

	assert.Empty(t, store.Find(Filter{Search: "no such thing"}))
}

func TestFindByPriceRange(t *testing.T) {
	store := NewStore()

	result := store.Find(Filter{MinPrice: 50, MaxPrice: 100})
	require.NotEmpty(t, result)
	for _, product := range result {
		assert.GreaterOrEqual(t, product.Price, 50.0)
		assert.LessOrEqual(t, product.Price, 100.0)
	}
}

func TestFindSortsByPrice(t *testing.T) {
	store := NewStore()

	asc := store.Find(Filter{Sort: SortPriceAsc})
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := store.Find(Filter{Sort: SortPriceDesc})
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestFindDefaultSortPutsFeaturedFirst(t *testing.T) {
	store := NewStore()

	result := store.Find(Filter{})
	require.NotEmpty(t, result)

	seenUnfeatured := false
	for _, product := range result {
		if !product.Featured {
			seenUnfeatured = true
		} else {
			assert.False(t, seenUnfeatured, "featured product after an unfeatured one")
		}
	}
}

func TestFeatured(t *testing.T) {
	store := NewStore()

	featured := store.Featured()
	require.NotEmpty(t, featured)
	for _, product := range featured {
		assert.True(t, product.Featured)
	}
}

func TestCategories(t *testing.T) {
	store := NewStore()
	assert.Equal(t, []string{"accessories", "decor", "dresses"}, store.Categories())
}
