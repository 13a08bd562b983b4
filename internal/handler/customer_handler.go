package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/p-chandler/restaurant-loyalty-app/internal/middleware"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
	"github.com/p-chandler/restaurant-loyalty-app/prometheus"
)

// RegisterCustomer handles one-time customer registration, optionally minting
// a welcome voucher for the chosen merchant.
func (h *Handler) RegisterCustomer(c echo.Context) error {
	log := logger.FromEcho(c)
	caller := middleware.Identity(c)

	var req struct {
		Name       string `json:"name"`
		MerchantID uint   `json:"merchant_id"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if err := h.Ledger.RegisterCustomer(caller, req.Name, req.MerchantID); err != nil {
		log.Error("Failed to register customer", zap.String("address", caller), zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}

	prometheus.CustomerRegisterCounter.Inc()
	log.Info("Customer registered",
		zap.String("address", caller),
		zap.Uint("merchant_id", req.MerchantID))

	return c.JSON(http.StatusCreated, echo.Map{"message": "Customer registered successfully"})
}

// GetCustomer retrieves the customer record. Public read.
func (h *Handler) GetCustomer(c echo.Context) error {
	address := c.Param("address")

	customer, err := h.Ledger.GetCustomer(address)
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, customer)
}
