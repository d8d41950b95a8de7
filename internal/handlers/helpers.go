package handlers

import "github.com/labstack/echo/v4"

func messageResponse(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"message": message})
}

func validationResponse(c echo.Context, fields map[string]string) error {
	return c.JSON(400, echo.Map{
		"message": "validation failed",
		"fields":  fields,
	})
}
