package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spicekitchen/backend/internal/chat"
	"github.com/spicekitchen/backend/internal/logging"
)

type ChatHandler struct {
	// Now is swappable so tests can pin the opening-hours gate.
	Now func() time.Time
}

func (h *ChatHandler) Chat(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "chatbot.chat")

	var req struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("chat_failed", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"reply": chat.ErrorReply})
	}

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	return c.JSON(http.StatusOK, echo.Map{"reply": chat.Respond(req.Message, now)})
}
