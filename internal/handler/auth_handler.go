package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
)

// IssueToken mints a bearer token for an address. It stands in for wallet
// connection at the transport boundary: the ledger trusts the address in the
// token as externally authenticated.
func (h *Handler) IssueToken(c echo.Context) error {
	log := logger.FromEcho(c)

	var req struct {
		Address string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse token request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "address is required"})
	}

	token, err := h.JWT.GenerateToken(address)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
