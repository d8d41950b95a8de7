package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spicekitchen/backend/internal/models"
)

func sampleCatalog() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Regular Veg Thali", Description: "Dal, Seasonal Veg, 2 Roti, Rice", Category: models.CategoryThali},
		{ID: 2, Name: "Special Paneer Thali", Description: "Paneer Butter Masala, Dal Makhani", Category: models.CategoryThali},
		{ID: 3, Name: "Gulab Jamun", Description: "Soft homemade khoya jamuns", Category: models.CategorySweets},
		{ID: 4, Name: "Homemade Mango Pickle", Description: "Traditional grandmother's recipe", Category: models.CategoryAchar},
	}
}

func ids(items []models.MenuItem) []uint {
	out := make([]uint, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(sampleCatalog(), models.CategoryThali, "")
	require.Equal(t, []uint{1, 2}, ids(got))
}

func TestFilterAllMatchesEverything(t *testing.T) {
	items := sampleCatalog()
	require.Equal(t, ids(items), ids(Filter(items, models.CategoryAll, "")))
	require.Equal(t, ids(items), ids(Filter(items, "", "")))
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := sampleCatalog()

	require.Equal(t, []uint{1, 2}, ids(Filter(items, "", "THALI")))
	// matches description as well as name
	require.Equal(t, []uint{1, 2}, ids(Filter(items, "", "dal")))
	require.Equal(t, []uint{3}, ids(Filter(items, "", "khoya")))
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	items := sampleCatalog()

	require.Equal(t, []uint{2}, ids(Filter(items, models.CategoryThali, "paneer")))
	require.Empty(t, Filter(items, models.CategorySweets, "thali"))
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	got := Filter(sampleCatalog(), "", "a")
	require.Equal(t, []uint{1, 2, 3, 4}, ids(got))
}

func TestFilterIsIdempotent(t *testing.T) {
	items := sampleCatalog()

	once := Filter(items, models.CategoryThali, "dal")
	twice := Filter(once, models.CategoryThali, "dal")
	require.Equal(t, once, twice)
}
