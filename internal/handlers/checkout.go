package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spicekitchen/backend/internal/cart"
	"github.com/spicekitchen/backend/internal/checkout"
	"github.com/spicekitchen/backend/internal/logging"
)

type CheckoutHandler struct {
	// WhatsAppNumber is the restaurant contact the deep link targets.
	WhatsAppNumber string
}

// OrderLink turns the session cart into a wa.me deep link. Nothing is
// persisted and the cart stays as it was: the user completes the order in the
// external chat and may need to come back and re-confirm.
func (h *CheckoutHandler) OrderLink(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.order_link")

	var req struct {
		Address string      `json:"address"`
		Lines   []cart.Line `json:"lines"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("order_link_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	sessionCart := cart.FromLines(req.Lines)

	link, err := checkout.BuildOrderLink(sessionCart, req.Address, h.WhatsAppNumber)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyAddress) || errors.Is(err, checkout.ErrEmptyCart) {
			return messageResponse(c, http.StatusBadRequest, err.Error())
		}
		l.Error("order_link_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build order link")
	}

	l.Info("order_link_success", "total_items", sessionCart.TotalItems(), "total_amount", sessionCart.TotalAmount())
	return c.JSON(http.StatusOK, echo.Map{
		"url":     link,
		"message": checkout.BuildMessage(sessionCart, req.Address),
	})
}
