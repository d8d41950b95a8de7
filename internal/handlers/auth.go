package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spicekitchen/backend/internal/logging"
	"github.com/spicekitchen/backend/internal/service"
)

type AuthHandler struct {
	Tokens *service.TokenService
}

// Login exchanges the shared staff password for a short-lived bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Tokens.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			l.Warn("login_failed", "status", 401, "reason", "invalid password")
			return messageResponse(c, http.StatusUnauthorized, "invalid password")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot issue token")
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
