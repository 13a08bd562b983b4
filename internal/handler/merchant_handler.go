package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/p-chandler/restaurant-loyalty-app/internal/middleware"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
	"github.com/p-chandler/restaurant-loyalty-app/prometheus"
)

// CreateMerchant handles merchant creation. Administrator only.
func (h *Handler) CreateMerchant(c echo.Context) error {
	log := logger.FromEcho(c)
	caller := middleware.Identity(c)

	var req struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		Owner           string `json:"owner"`
		VoucherURI      string `json:"voucher_uri"`
		GiftDescription string `json:"gift_description"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse merchant creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	id, err := h.Ledger.AddMerchant(caller, req.Name, req.Description, req.Owner, req.VoucherURI, req.GiftDescription)
	if err != nil {
		log.Error("Failed to create merchant", zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}

	prometheus.MerchantCreateCounter.Inc()
	log.Info("Merchant created",
		zap.Uint("id", id),
		zap.String("name", req.Name),
		zap.String("owner", req.Owner))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Merchant created successfully",
		"merchant_id": id,
	})
}

// UpdateMerchant handles merchant field updates by the stored owner.
func (h *Handler) UpdateMerchant(c echo.Context) error {
	log := logger.FromEcho(c)
	caller := middleware.Identity(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		log.Error("Invalid merchant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Owner       string `json:"owner"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse merchant update request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if err := h.Ledger.UpdateMerchant(caller, id, req.Name, req.Description, req.Owner); err != nil {
		log.Error("Failed to update merchant", zap.Uint("id", id), zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}

	prometheus.MerchantUpdateCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "Merchant updated successfully"})
}

// SetMerchantStatus flips the merchant active flag by the stored owner.
func (h *Handler) SetMerchantStatus(c echo.Context) error {
	log := logger.FromEcho(c)
	caller := middleware.Identity(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		log.Error("Invalid merchant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse merchant status request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if err := h.Ledger.SetMerchantStatus(caller, id, req.Active); err != nil {
		log.Error("Failed to change merchant status", zap.Uint("id", id), zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}

	prometheus.MerchantUpdateCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "Merchant status updated successfully"})
}

// GetMerchant retrieves merchant details. Public read.
func (h *Handler) GetMerchant(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		log.Error("Invalid merchant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}

	m, err := h.Ledger.GetMerchant(id)
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, m)
}

// ListMerchants returns the customer-facing merchant listing. Inactive
// merchants are included only when ?all=true is passed.
func (h *Handler) ListMerchants(c echo.Context) error {
	log := logger.FromEcho(c)

	activeOnly := c.QueryParam("all") != "true"
	merchants, err := h.Ledger.ListMerchants(activeOnly)
	if err != nil {
		log.Error("Failed to retrieve merchants", zap.Error(err))
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, merchants)
}

// MerchantCount returns the monotonic merchant counter.
func (h *Handler) MerchantCount(c echo.Context) error {
	count, err := h.Ledger.MerchantCount()
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// GetMerchantGift returns the merchant's welcome merchandise description.
func (h *Handler) GetMerchantGift(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		log.Error("Invalid merchant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid merchant ID"})
	}

	gift, err := h.Ledger.GetMerchantGift(id)
	if err != nil {
		status, body := fail(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, echo.Map{"gift_description": gift})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
