package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/config"
	"github.com/yudhapane/kacapos/internal/presentation/http/handler"
	"github.com/yudhapane/kacapos/internal/presentation/http/middleware"
	"github.com/yudhapane/kacapos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Session  *handler.SessionHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Ledger   *handler.LedgerHandler
	Summary  *handler.SummaryHandler
	Owner    *handler.OwnerHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager     *utils.JWTManager
	SessionService *service.SessionService
	Cfg            *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rlCfg := middleware.DefaultRateLimiterConfig()
	if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
		rlCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
		rlCfg.BurstSize = deps.Cfg.RateLimit.Requests
	}
	rateLimiter := middleware.NewClientRateLimiter(rlCfg)
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.Catalog.List)
		v1.GET("/printer/status", h.Printer.GetStatus)

		v1.POST("/owner/login", h.Owner.Login)

		registerSessionRoutes(v1, h, deps)
		registerLedgerRoutes(v1, h, deps)
	}

	return router
}

func registerSessionRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	v1.POST("/sessions", h.Session.Open)
	v1.DELETE("/sessions/:id", h.Session.Close)

	// Cart and checkout require an active cashier session
	scoped := v1.Group("")
	scoped.Use(middleware.SessionMiddleware(deps.SessionService))
	{
		scoped.GET("/cart", h.Cart.Get)
		scoped.POST("/cart/items", h.Cart.AddLine)
		scoped.DELETE("/cart/items/:index", h.Cart.RemoveLine)
		scoped.DELETE("/cart", h.Cart.Clear)
		scoped.POST("/checkout", h.Checkout.Checkout)
	}
}

func registerLedgerRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	v1.GET("/transactions", h.Ledger.ListDay)
	v1.GET("/ledgers", h.Ledger.ListDates)
	v1.GET("/summary", h.Summary.Get)

	// Destructive and reprint operations require the owner token
	owner := v1.Group("")
	owner.Use(middleware.OwnerAuthMiddleware(deps.JWTManager))
	{
		owner.DELETE("/transactions/:code", h.Ledger.Delete)
		owner.POST("/transactions/:code/print", h.Ledger.Reprint)
		owner.POST("/summary/print", h.Summary.Print)
	}
}
