package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/config"
	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/internal/infrastructure/database"
	"github.com/yudhapane/kacapos/internal/infrastructure/repository"
	"github.com/yudhapane/kacapos/internal/presentation/http/handler"
	"github.com/yudhapane/kacapos/internal/presentation/http/routes"
	"github.com/yudhapane/kacapos/pkg/printer"
	"github.com/yudhapane/kacapos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Build the fixed product catalog
	items := config.LoadCatalog()
	products := make([]entity.Product, 0, len(items))
	for _, item := range items {
		products = append(products, entity.Product{Name: item.Name, BasePrice: item.BasePrice})
	}
	catalog := entity.NewCatalog(products)
	log.Printf("Catalog loaded: %d products", catalog.Len())

	// Initialize JWT manager for owner tokens
	jwtManager := utils.NewJWTManager(cfg.Owner.TokenSecret, cfg.Owner.TokenExpiry)

	// Initialize repositories
	ledgerRepo := repository.NewLedgerRepository(db)

	// Initialize services
	catalogService := service.NewCatalogService(catalog)
	sessionService := service.NewSessionService(12 * time.Hour)
	cartService := service.NewCartService(catalogService, cfg.Shop.ServiceFee)
	checkoutService := service.NewCheckoutService(ledgerRepo, &cfg.Shop, &cfg.Store)
	summaryService := service.NewSummaryService(checkoutService)

	ownerService, err := service.NewOwnerService(cfg.Owner.Passcode, jwtManager)
	if err != nil {
		log.Fatalf("Failed to initialize owner service: %v", err)
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, &cfg.Shop, &cfg.Printer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Session:  handler.NewSessionHandler(sessionService),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService, printerService),
		Ledger:   handler.NewLedgerHandler(checkoutService, printerService),
		Summary:  handler.NewSummaryHandler(summaryService, printerService),
		Owner:    handler.NewOwnerHandler(ownerService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:     jwtManager,
		SessionService: sessionService,
		Cfg:            cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
