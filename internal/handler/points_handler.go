package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/p-chandler/restaurant-loyalty-app/internal/middleware"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
	"github.com/p-chandler/restaurant-loyalty-app/prometheus"
)

// AwardPoints credits points to a customer on behalf of the merchant owner.
func (h *Handler) AwardPoints(c echo.Context) error {
	log := logger.FromEcho(c)
	caller := middleware.Identity(c)

	merchantID, err := parseID(c.Param("id"))
	if err != nil {
		log.Error("Invalid merchant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}

	var req struct {
		Customer string `json:"customer"`
		Amount   int64  `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse award request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if err := h.Ledger.AwardPoints(caller, merchantID, req.Customer, req.Amount); err != nil {
		log.Error("Failed to award points",
			zap.Uint("merchant_id", merchantID),
			zap.String("customer", req.Customer),
			zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}

	prometheus.PointsAwardCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "Points awarded successfully"})
}

// RedeemPoints spends the caller's points at a merchant. Requires a prior
// allowance to the service spender address.
func (h *Handler) RedeemPoints(c echo.Context) error {
	log := logger.FromEcho(c)
	caller := middleware.Identity(c)

	merchantID, err := parseID(c.Param("id"))
	if err != nil {
		log.Error("Invalid merchant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse redeem request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if err := h.Ledger.RedeemPoints(caller, merchantID, req.Amount); err != nil {
		log.Error("Failed to redeem points",
			zap.Uint("merchant_id", merchantID),
			zap.String("customer", caller),
			zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}

	prometheus.PointsRedeemCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "Points redeemed successfully"})
}

// GetCustomerPoints returns the per-merchant points balance. Public read.
func (h *Handler) GetCustomerPoints(c echo.Context) error {
	merchantID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}
	address := c.Param("address")

	points, err := h.Ledger.GetCustomerPoints(merchantID, address)
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, echo.Map{"points": points})
}

// GetCustomerTotalPoints returns the aggregate points balance. Public read.
func (h *Handler) GetCustomerTotalPoints(c echo.Context) error {
	address := c.Param("address")

	total, err := h.Ledger.GetCustomerTotalPoints(address)
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, echo.Map{"total_points": total})
}
