package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/spicekitchen/backend/internal/catalog"
	"github.com/spicekitchen/backend/internal/logging"
	"github.com/spicekitchen/backend/internal/models"
	"github.com/spicekitchen/backend/internal/service/search"
	"github.com/spicekitchen/backend/internal/util"
)

type SearchHandler struct {
	DB      *gorm.DB
	ES      *elasticsearch.Client
	ESIndex string
}

// Search serves the menu search. With Elasticsearch configured it runs a
// fuzzy multi_match; otherwise, or when the index is unreachable, it falls
// back to the in-memory catalog filter, which keeps catalog order and the
// exact category-AND-substring semantics.
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	category := c.QueryParam("category")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	if h.ES != nil {
		total, items, err := search.Search(ctx, h.ES, h.ESIndex, q, category, from, limit)
		if err == nil {
			return c.JSON(http.StatusOK, echo.Map{"total": total, "items": items})
		}
		l.Warn("es_search_failed_falling_back", "error", err)
	}

	var all []models.MenuItem
	if err := h.DB.WithContext(ctx).Order("id ASC").Find(&all).Error; err != nil {
		l.Error("search_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load menu")
	}

	filtered := catalog.Filter(all, category, q)
	total := int64(len(filtered))

	if from >= len(filtered) {
		filtered = nil
	} else {
		end := from + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		filtered = filtered[from:end]
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "items": filtered})
}
