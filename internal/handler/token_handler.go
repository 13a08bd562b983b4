package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/p-chandler/restaurant-loyalty-app/internal/middleware"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
)

// Approve sets the caller's allowance toward the service spender address,
// the precondition for point redemption.
func (h *Handler) Approve(c echo.Context) error {
	log := logger.FromEcho(c)
	caller := middleware.Identity(c)

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse approve request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if err := h.Ledger.Approve(caller, req.Amount); err != nil {
		log.Error("Failed to set allowance", zap.String("owner", caller), zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Allowance approved successfully",
		"spender": h.Ledger.SpenderAddress(),
	})
}

// GetBalance returns the fungible balance of an address. Public read.
func (h *Handler) GetBalance(c echo.Context) error {
	address := c.Param("address")

	balance, err := h.Ledger.BalanceOf(address)
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, echo.Map{"balance": balance})
}
