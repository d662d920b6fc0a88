package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/application/service"
	"github.com/receiptforge/receiptforge-api/internal/config"
	"github.com/receiptforge/receiptforge-api/internal/infrastructure/assetcache"
	"github.com/receiptforge/receiptforge-api/internal/infrastructure/repository"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/handler"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/routes"
	"github.com/receiptforge/receiptforge-api/pkg/printer"
	"github.com/receiptforge/receiptforge-api/pkg/render"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository()
	preferenceRepo, err := repository.NewPreferenceRepository(cfg.Prefs.Path)
	if err != nil {
		log.Fatalf("Failed to open preference store: %v", err)
	}

	// Initialize the asset cache and install the configured shell version
	var fetcher assetcache.Fetcher
	if cfg.Assets.Origin != "" {
		fetcher = assetcache.OriginFetcher{BaseURL: cfg.Assets.Origin}
	} else {
		fetcher = assetcache.DirFetcher{Root: cfg.Assets.Dir}
	}
	assetManager := assetcache.NewManager(fetcher, cfg.Assets.Manifest)
	if err := assetManager.Install(context.Background(), cfg.Assets.Version); err != nil {
		log.Printf("Warning: asset cache install failed, serving from network only: %v", err)
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

	// Initialize the raster renderer
	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	// Initialize services
	receiptService := service.NewReceiptService(sessionRepo)
	previewService := service.NewPreviewService(sessionRepo)
	generateService := service.NewGenerateService(sessionRepo, thermalPrinter, cfg.Generate.Delay)
	exportService := service.NewExportService(sessionRepo, renderer, cfg.Export.Scale)
	preferenceService := service.NewPreferenceService(preferenceRepo)
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session:    handler.NewSessionHandler(receiptService, preferenceService),
		Item:       handler.NewItemHandler(receiptService),
		Template:   handler.NewTemplateHandler(receiptService, preferenceService),
		Receipt:    handler.NewReceiptHandler(previewService, generateService, exportService),
		Preference: handler.NewPreferenceHandler(preferenceService),
		Assets:     handler.NewAssetsHandler(assetManager),
		Printer:    handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:          cfg,
		AssetManager: assetManager,
		AssetFetcher: fetcher,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
