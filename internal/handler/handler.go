package handler

import (
	"errors"
	"net/http"

	"github.com/p-chandler/restaurant-loyalty-app/internal/ledger"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/jwtutil"
	"github.com/p-chandler/restaurant-loyalty-app/prometheus"
)

// Handler bundles the ledger service and JWT utility behind the HTTP surface.
type Handler struct {
	Ledger *ledger.Service
	JWT    *jwtutil.JWTUtil
}

// New creates the handler set.
func New(svc *ledger.Service, jwt *jwtutil.JWTUtil) *Handler {
	return &Handler{Ledger: svc, JWT: jwt}
}

// httpStatus maps ledger error kinds onto HTTP status codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrAlreadyRegistered), errors.Is(err, ledger.ErrAlreadyRedeemed):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInsufficientPoints), errors.Is(err, ledger.ErrInsufficientAllowance):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorKind labels ledger errors for the rejection metric.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ledger.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ledger.ErrNotFound):
		return "not_found"
	case errors.Is(err, ledger.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ledger.ErrAlreadyRedeemed):
		return "already_redeemed"
	case errors.Is(err, ledger.ErrInsufficientPoints):
		return "insufficient_points"
	case errors.Is(err, ledger.ErrInsufficientAllowance):
		return "insufficient_allowance"
	default:
		return "internal"
	}
}

// fail records the rejection metric and writes the error response.
func fail(err error) (int, map[string]string) {
	prometheus.RecordOperationError(errorKind(err))
	return httpStatus(err), map[string]string{"error": err.Error()}
}
