package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/spicekitchen/backend/internal/handlers"
	"github.com/spicekitchen/backend/internal/service"
)

type Deps struct {
	DB              *gorm.DB
	MenuHandler     *handlers.MenuHandler
	ReviewHandler   *handlers.ReviewHandler
	ChatHandler     *handlers.ChatHandler
	SearchHandler   *handlers.SearchHandler
	CheckoutHandler *handlers.CheckoutHandler
	AuthHandler     *handlers.AuthHandler
	TokenService    *service.TokenService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	api.GET("/menu", d.MenuHandler.GetMenu)
	api.GET("/menu/:id", d.MenuHandler.GetMenuItem)

	staff := d.TokenService.RequireStaff
	api.POST("/menu", d.MenuHandler.CreateMenuItem, staff)
	api.PATCH("/menu/:id", d.MenuHandler.PatchMenuItem, staff)
	api.DELETE("/menu/:id", d.MenuHandler.DeleteMenuItem, staff)

	api.GET("/reviews", d.ReviewHandler.GetReviews)
	api.POST("/chatbot", d.ChatHandler.Chat)
	api.GET("/search", d.SearchHandler.Search)
	api.POST("/checkout/link", d.CheckoutHandler.OrderLink)
	api.POST("/admin/login", d.AuthHandler.Login)
}
