package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/p-chandler/restaurant-loyalty-app/internal/handler"
	"github.com/p-chandler/restaurant-loyalty-app/internal/ledger"
	"github.com/p-chandler/restaurant-loyalty-app/internal/middleware"
	"github.com/p-chandler/restaurant-loyalty-app/internal/model"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/config"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/database"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/jwtutil"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
	"github.com/p-chandler/restaurant-loyalty-app/prometheus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found or error loading: %v\n", err)
	}

	// Load configuration
	conf, err := config.Load("loyalty")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName,
	})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	// Initialize database connection
	db, err := database.InitDB(&conf.Database)
	if err != nil {
		log.Fatal("Failed to initialize database")
	}

	// Run migrations for ledger models
	if err := database.MigrateModels(
		&model.Merchant{},
		&model.Customer{},
		&model.PointsRecord{},
		&model.Balance{},
		&model.Allowance{},
		&model.Voucher{},
	); err != nil {
		log.Fatal("Failed to migrate database models")
	}

	// Initialize JWT utility
	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      conf.JWT.SigningKey,
		ExpirationHours: conf.JWT.ExpirationHours,
	})

	// Initialize the ledger service and handlers
	svc := ledger.NewService(db, log, conf.Loyalty.AdminAddress, conf.Loyalty.SpenderAddress)
	h := handler.New(svc, jwt)

	// Initialize Echo framework
	e := echo.New()

	// Apply middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	// Public routes
	e.GET("/loyalty/hello", handler.Hello)
	e.POST("/auth/token", h.IssueToken)
	e.GET("/merchants", h.ListMerchants)
	e.GET("/merchants/count", h.MerchantCount)
	e.GET("/merchants/:id", h.GetMerchant)
	e.GET("/merchants/:id/gift", h.GetMerchantGift)
	e.GET("/merchants/:id/points/:address", h.GetCustomerPoints)
	e.GET("/customers/:address", h.GetCustomer)
	e.GET("/customers/:address/points/total", h.GetCustomerTotalPoints)
	e.GET("/customers/:address/balance", h.GetBalance)
	e.GET("/customers/:address/vouchers", h.ListCustomerVouchers)
	e.GET("/vouchers/:id/redeemed", h.VoucherRedeemed)

	// Secured routes - require authentication
	auth := e.Group("")
	auth.Use(middleware.JWTAuthMiddleware(jwt))

	auth.POST("/merchants", h.CreateMerchant)
	auth.PUT("/merchants/:id", h.UpdateMerchant)
	auth.PUT("/merchants/:id/status", h.SetMerchantStatus)
	auth.POST("/customers/register", h.RegisterCustomer)
	auth.POST("/merchants/:id/points", h.AwardPoints)
	auth.POST("/merchants/:id/redeem", h.RedeemPoints)
	auth.POST("/vouchers/:id/redeem", h.RedeemVoucher)
	auth.POST("/token/approve", h.Approve)

	// Start server
	log.Info("Starting loyalty-service on port " + conf.Server.Port)
	e.Logger.Fatal(e.Start(":" + conf.Server.Port))
}
