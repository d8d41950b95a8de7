package catalog

import (
	"strings"

	"github.com/spicekitchen/backend/internal/models"
)

// Filter derives the visible subset of the catalog for an active category and
// a free-text query. Both predicates are ANDed and the catalog order is kept.
// An empty or "All" category matches every item; the query is a
// case-insensitive substring match against name or description.
func Filter(items []models.MenuItem, category, query string) []models.MenuItem {
	q := strings.ToLower(query)

	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !matchesCategory(item, category) {
			continue
		}
		if !matchesQuery(item, q) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesCategory(item models.MenuItem, category string) bool {
	return category == "" || category == models.CategoryAll || item.Category == category
}

func matchesQuery(item models.MenuItem, loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(item.Description), loweredQuery)
}
