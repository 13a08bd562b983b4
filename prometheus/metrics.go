package prometheus

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation counters
var MerchantCreateCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "loyalty_merchant_create_total",
		Help: "Total number of merchant creations",
	},
)

var MerchantUpdateCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "loyalty_merchant_update_total",
		Help: "Total number of merchant updates and status changes",
	},
)

var CustomerRegisterCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "loyalty_customer_register_total",
		Help: "Total number of customer registrations",
	},
)

var PointsAwardCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "loyalty_points_award_total",
		Help: "Total number of point awards",
	},
)

var PointsRedeemCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "loyalty_points_redeem_total",
		Help: "Total number of point redemptions",
	},
)

var VoucherRedeemCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "loyalty_voucher_redeem_total",
		Help: "Total number of welcome voucher redemptions",
	},
)

// OperationErrorCounter tracks rejected operations by error kind
var OperationErrorCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loyalty_operation_errors_total",
		Help: "Total number of rejected ledger operations by error kind",
	},
	[]string{"kind"}, // "unauthorized", "not_found", "insufficient_points", etc.
)

var RequestDurationHistogram = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "loyalty_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

func init() {
	prometheus.MustRegister(MerchantCreateCounter)
	prometheus.MustRegister(MerchantUpdateCounter)
	prometheus.MustRegister(CustomerRegisterCounter)
	prometheus.MustRegister(PointsAwardCounter)
	prometheus.MustRegister(PointsRedeemCounter)
	prometheus.MustRegister(VoucherRedeemCounter)
	prometheus.MustRegister(OperationErrorCounter)
	prometheus.MustRegister(RequestDurationHistogram)
}

// RecordOperationError increments the error counter for the given kind
func RecordOperationError(kind string) {
	OperationErrorCounter.WithLabelValues(kind).Inc()
}

func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// MetricsMiddleware is an Echo middleware function that records HTTP request metrics
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			method := c.Request().Method
			path := c.Path()

			duration := time.Since(start).Seconds()
			RequestDurationHistogram.WithLabelValues(method, path).Observe(duration)

			return err
		}
	}
}
