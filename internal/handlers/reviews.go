package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/spicekitchen/backend/internal/logging"
	"github.com/spicekitchen/backend/internal/models"
)

type ReviewHandler struct {
	DB *gorm.DB
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reviews.get_reviews")

	var reviews []models.Review
	if err := h.DB.WithContext(ctx).Order("id ASC").Find(&reviews).Error; err != nil {
		l.Error("get_reviews_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load reviews")
	}

	return c.JSON(http.StatusOK, reviews)
}
