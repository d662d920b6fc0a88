package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/infrastructure/assetcache"
)

// AssetCacheMiddleware serves shell requests from the active asset cache
// version. Misses fall through to the next handler, which hits the network
// (static files or the origin proxy); cache lookups never write back.
func AssetCacheMiddleware(manager *assetcache.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/health" {
			c.Next()
			return
		}

		data, contentType, ok := manager.Lookup(path)
		if !ok {
			c.Next()
			return
		}
		c.Data(http.StatusOK, contentType, data)
		c.Abort()
	}
}
