package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/infrastructure/assetcache"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/request"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/response"
	"github.com/receiptforge/receiptforge-api/pkg/apperror"
)

// AssetsHandler exposes the offline asset cache lifecycle.
type AssetsHandler struct {
	manager *assetcache.Manager
}

// NewAssetsHandler creates a new assets handler.
func NewAssetsHandler(manager *assetcache.Manager) *AssetsHandler {
	return &AssetsHandler{manager: manager}
}

// Status reports the cache lifecycle state and cached versions.
func (h *AssetsHandler) Status(c *gin.Context) {
	response.OK(c, "Asset cache status", h.manager.Status())
}

// Install stages a new cache version. The install is all-or-nothing: any
// fetch failure leaves the previously active version in place.
func (h *AssetsHandler) Install(c *gin.Context) {
	var req request.InstallAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.manager.Install(c.Request.Context(), req.Version); err != nil {
		response.Error(c, apperror.ErrCacheInstallFailed)
		return
	}
	response.OK(c, "Asset version installed", h.manager.Status())
}

// SkipWaiting activates a waiting version immediately.
func (h *AssetsHandler) SkipWaiting(c *gin.Context) {
	if !h.manager.SkipWaiting() {
		response.OK(c, "No version waiting", h.manager.Status())
		return
	}
	response.OK(c, "Waiting version activated", h.manager.Status())
}

// Events streams cache notifications (e.g. RELOAD_PAGE) as server-sent
// events until the client disconnects.
func (h *AssetsHandler) Events(c *gin.Context) {
	id, ch := h.manager.Subscribe()
	defer h.manager.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case n, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("message", n)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
