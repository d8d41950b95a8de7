package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/spicekitchen/backend/internal/es"
	"github.com/spicekitchen/backend/internal/logging"
	"github.com/spicekitchen/backend/internal/models"
	"github.com/spicekitchen/backend/internal/mykafka"
	"github.com/spicekitchen/backend/internal/validate"
)

type MenuHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

// publish and syncIndex are best effort: a broken broker or index must never
// fail the catalog request itself.
func (h *MenuHandler) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	key := strconv.FormatUint(uint64(event["itemID"].(uint)), 10)
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_failed", "error", err)
	}
}

func (h *MenuHandler) syncIndex(c echo.Context, item models.MenuItem) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := es.IndexMenuItem(ctx, h.ES, h.ESIndex, item); err != nil {
		logging.FromContext(c.Request().Context()).Error("es_index_failed", "item_id", item.ID, "error", err)
	}
}

func (h *MenuHandler) dropIndex(c echo.Context, id uint) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := es.DeleteMenuItem(ctx, h.ES, h.ESIndex, id); err != nil {
		logging.FromContext(c.Request().Context()).Error("es_delete_failed", "item_id", id, "error", err)
	}
}

func (h *MenuHandler) GetMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.get_menu")

	var items []models.MenuItem
	if err := h.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		l.Error("get_menu_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load menu")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.get_menu_item")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_menu_item_failed", "status", 400, "reason", "id is not integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var item models.MenuItem
	if err := h.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return messageResponse(c, http.StatusNotFound, "Item not found")
		}
		l.Error("get_menu_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load menu item")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.create_menu_item")

	var req validate.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_menu_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if fields := validate.Struct(&req); fields != nil {
		l.Warn("create_menu_item_failed", "status", 400, "reason", "validation", "fields", fields)
		return validationResponse(c, fields)
	}

	item := models.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		IsVegetarian: boolDefault(req.IsVegetarian, true),
		Available:    boolDefault(req.Available, true),
	}

	if err := h.DB.WithContext(ctx).Create(&item).Error; err != nil {
		l.Error("create_menu_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create menu item")
	}

	h.publish(c, map[string]any{"type": "menu_created", "itemID": item.ID, "name": item.Name})
	h.syncIndex(c, item)

	l.Info("create_menu_item_success", "item_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) PatchMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.patch_menu_item")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("patch_menu_item_failed", "status", 400, "reason", "id is not integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req validate.PatchMenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_menu_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if fields := validate.Struct(&req); fields != nil {
		l.Warn("patch_menu_item_failed", "status", 400, "reason", "validation", "fields", fields)
		return validationResponse(c, fields)
	}

	var item models.MenuItem
	if err := h.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return messageResponse(c, http.StatusNotFound, "Item not found")
		}
		l.Error("patch_menu_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load menu item")
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.IsVegetarian != nil {
		item.IsVegetarian = *req.IsVegetarian
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := h.DB.WithContext(ctx).Save(&item).Error; err != nil {
		l.Error("patch_menu_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update menu item")
	}

	h.publish(c, map[string]any{"type": "menu_updated", "itemID": item.ID, "name": item.Name})
	h.syncIndex(c, item)

	l.Info("patch_menu_item_success", "item_id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.delete_menu_item")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_menu_item_failed", "status", 400, "reason", "id is not integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	res := h.DB.WithContext(ctx).Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		l.Error("delete_menu_item_failed", "status", 500, "error", res.Error)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete menu item")
	}
	if res.RowsAffected == 0 {
		return messageResponse(c, http.StatusNotFound, "Item not found")
	}

	h.publish(c, map[string]any{"type": "menu_deleted", "itemID": uint(id)})
	h.dropIndex(c, uint(id))

	l.Info("delete_menu_item_success", "item_id", id)
	return messageResponse(c, http.StatusOK, "Menu item deleted")
}

func boolDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
