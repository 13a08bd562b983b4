package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/p-chandler/restaurant-loyalty-app/internal/middleware"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
	"github.com/p-chandler/restaurant-loyalty-app/prometheus"
)

// RedeemVoucher marks the caller's welcome voucher as redeemed.
func (h *Handler) RedeemVoucher(c echo.Context) error {
	log := logger.FromEcho(c)
	caller := middleware.Identity(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		log.Error("Invalid voucher ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid voucher ID"})
	}

	if err := h.Ledger.RedeemWelcomeVoucher(caller, id); err != nil {
		log.Error("Failed to redeem voucher",
			zap.Uint("voucher_id", id),
			zap.String("caller", caller),
			zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}

	prometheus.VoucherRedeemCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "Voucher redeemed successfully"})
}

// ListCustomerVouchers enumerates a customer's vouchers in mint order.
// Public read.
func (h *Handler) ListCustomerVouchers(c echo.Context) error {
	address := c.Param("address")

	vouchers, err := h.Ledger.GetCustomerVouchers(address)
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, vouchers)
}

// VoucherRedeemed reports the redeemed flag of a voucher. Public read.
func (h *Handler) VoucherRedeemed(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid voucher ID"})
	}

	redeemed, err := h.Ledger.IsVoucherRedeemed(id)
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, echo.Map{"redeemed": redeemed})
}
