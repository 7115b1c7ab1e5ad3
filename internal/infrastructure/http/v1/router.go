// Package v1 wires the HTTP API: routes, handlers, middleware.
package v1

import (
	"github.com/gin-gonic/gin"

	"stockbook/internal/domain/auth"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/domain/ledger"
	"stockbook/internal/domain/reports"
	"stockbook/internal/infrastructure/http/v1/handlers"
	"stockbook/internal/infrastructure/http/v1/middleware"
	"stockbook/internal/infrastructure/storage/postgres"
	"stockbook/pkg/logger"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	Pool           *postgres.Pool
	Logger         *logger.Logger
	JWTValidator   middleware.JWTValidator
	AuthService    *auth.Service
	ProductService *product.Service
	LedgerService  *ledger.Service
	ReportsService *reports.Service
	Version        string
}

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
	productHandler := handlers.NewProductHandler(base, cfg.ProductService)
	ledgerHandler := handlers.NewLedgerHandler(base, cfg.LedgerService)
	reportsHandler := handlers.NewReportsHandler(base, cfg.ReportsService)

	api := router.Group("/api/v1")

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(api, protected)

	RegisterCatalogRoutes(protected, "/products", productHandler)
	products := protected.Group("/products")
	{
		products.GET("/all", productHandler.GetAll)
		products.GET("/low-stock", productHandler.LowStock)
		products.PUT("/:id/stock", productHandler.SetStock)
	}

	ledgerGroup := protected.Group("/ledger")
	{
		ledgerGroup.POST("/stock-in", ledgerHandler.StockIn)
		ledgerGroup.POST("/stock-out", ledgerHandler.StockOut)
		ledgerGroup.POST("/return", ledgerHandler.Return)
		ledgerGroup.GET("/snapshot", ledgerHandler.GetSnapshot)
		ledgerGroup.GET("/product/:id", ledgerHandler.ListByProduct)
		ledgerGroup.GET("/:id", ledgerHandler.GetByID)
		ledgerGroup.POST("/reset", middleware.RequireRole(auth.RoleAdmin), ledgerHandler.Reset)
	}

	reportsGroup := protected.Group("/reports")
	{
		reportsGroup.GET("/daily/:date", reportsHandler.GetDaily)
		reportsGroup.GET("/daily/:date/text", reportsHandler.GetDailyText)
		reportsGroup.GET("/monthly/:month", reportsHandler.GetMonthly)
		reportsGroup.GET("/monthly/:month/export", reportsHandler.ExportMonthly)
		reportsGroup.GET("/product/:id", reportsHandler.GetPerProduct)
		reportsGroup.GET("/dashboard", reportsHandler.GetDashboard)
	}

	return router
}
