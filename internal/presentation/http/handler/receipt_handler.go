package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/application/service"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles the preview, generate and export endpoints.
type ReceiptHandler struct {
	previewService  *service.PreviewService
	generateService *service.GenerateService
	exportService   *service.ExportService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(
	previewService *service.PreviewService,
	generateService *service.GenerateService,
	exportService *service.ExportService,
) *ReceiptHandler {
	return &ReceiptHandler{
		previewService:  previewService,
		generateService: generateService,
		exportService:   exportService,
	}
}

// Preview returns the displayable document for a session.
func (h *ReceiptHandler) Preview(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	doc, err := h.previewService.Preview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Preview built", doc)
}

// Generate runs the generate/print sequence. A generate on a session that
// is already generating is acknowledged but not restarted.
func (h *ReceiptHandler) Generate(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	session, started, err := h.generateService.Generate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !started {
		response.OK(c, "Generate already in progress", gin.H{
			"started": false,
			"session": session,
		})
		return
	}
	response.OK(c, "Receipt generated", gin.H{
		"started": true,
		"session": session,
	})
}

// Export streams the rendered receipt as a download. The format query
// parameter selects png (default) or pdf.
func (h *ReceiptHandler) Export(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	var export *service.Export
	var err error
	switch format := c.DefaultQuery("format", "png"); format {
	case "png":
		export, err = h.exportService.ExportPNG(c.Request.Context(), id)
	case "pdf":
		export, err = h.exportService.ExportPDF(c.Request.Context(), id)
	default:
		response.BadRequest(c, "Unknown export format. Use 'png' or 'pdf'")
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
