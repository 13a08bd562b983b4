package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
)

func Hello(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Hello from loyalty-service")
	return c.JSON(http.StatusOK, echo.Map{"message": "hello from loyalty"})
}
