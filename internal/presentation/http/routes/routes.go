package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/config"
	"github.com/receiptforge/receiptforge-api/internal/infrastructure/assetcache"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/handler"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session    *handler.SessionHandler
	Item       *handler.ItemHandler
	Template   *handler.TemplateHandler
	Receipt    *handler.ReceiptHandler
	Preference *handler.PreferenceHandler
	Assets     *handler.AssetsHandler
	Printer    *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg          *config.Config
	AssetManager *assetcache.Manager
	AssetFetcher assetcache.Fetcher
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(middleware.AssetCacheMiddleware(deps.AssetManager))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Shell requests that miss the cache go to the asset source directly.
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(404, gin.H{"success": false, "message": "Not found"})
			return
		}
		data, contentType, err := deps.AssetFetcher.Fetch(c.Request.Context(), c.Request.URL.Path)
		if err != nil {
			c.JSON(404, gin.H{"success": false, "message": "Not found"})
			return
		}
		c.Data(200, contentType, data)
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerSessionRoutes(v1, h)
		registerTemplateRoutes(v1, h)
		registerPreferenceRoutes(v1, h)
		registerAssetRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerSessionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.Session.Create)
		sessions.GET("/:id", h.Session.Get)
		sessions.DELETE("/:id", h.Session.Delete)
		sessions.POST("/:id/reset", h.Session.Reset)
		sessions.PATCH("/:id/receipt", h.Session.UpdateReceipt)
		sessions.PATCH("/:id/payment", h.Session.UpdatePayment)
		sessions.GET("/:id/totals", h.Session.Totals)

		// Line-item editor
		sessions.POST("/:id/items", h.Item.Add)
		sessions.POST("/:id/items/:index/edit", h.Item.StartEdit)
		sessions.PUT("/:id/items/:index", h.Item.CommitEdit)
		sessions.DELETE("/:id/items/:index", h.Item.Remove)

		// Template selection
		sessions.PUT("/:id/template", h.Template.Select)
		sessions.PATCH("/:id/template/flags", h.Template.UpdateFlags)

		// Preview, generate, export
		sessions.GET("/:id/preview", h.Receipt.Preview)
		sessions.POST("/:id/generate", h.Receipt.Generate)
		sessions.GET("/:id/export", h.Receipt.Export)
	}
}

func registerTemplateRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/templates", h.Template.List)
}

func registerPreferenceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	prefs := v1.Group("/preferences")
	{
		prefs.GET("/lang", h.Preference.GetLang)
		prefs.PUT("/lang", h.Preference.SetLang)
	}
}

func registerAssetRoutes(v1 *gin.RouterGroup, h *Handlers) {
	assets := v1.Group("/assets")
	{
		assets.GET("/status", h.Assets.Status)
		assets.POST("/install", h.Assets.Install)
		assets.POST("/skip-waiting", h.Assets.SkipWaiting)
		assets.GET("/events", h.Assets.Events)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
