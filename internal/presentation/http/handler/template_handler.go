package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/application/service"
	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/request"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/response"
)

// TemplateHandler serves the template catalog and the per-session
// template selection.
type TemplateHandler struct {
	receiptService    *service.ReceiptService
	preferenceService *service.PreferenceService
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(receiptService *service.ReceiptService, preferenceService *service.PreferenceService) *TemplateHandler {
	return &TemplateHandler{
		receiptService:    receiptService,
		preferenceService: preferenceService,
	}
}

// List returns the catalog with names resolved for the caller's locale.
func (h *TemplateHandler) List(c *gin.Context) {
	locale := c.Query("lang")
	if locale == "" {
		resolved, err := h.preferenceService.ResolveLang(c.Request.Context(), c.GetHeader("Accept-Language"))
		if err != nil {
			response.Error(c, err)
			return
		}
		locale = resolved
	}
	response.OK(c, "Templates retrieved", service.ListTemplates(locale))
}

// Select switches the session to a catalog preset.
func (h *TemplateHandler) Select(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	var req request.SelectTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	session, err := h.receiptService.SelectTemplate(c.Request.Context(), id, enum.TemplateID(req.TemplateID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Template selected", session)
}

// UpdateFlags toggles the session's template flags.
func (h *TemplateHandler) UpdateFlags(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	var req request.TemplateFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	session, err := h.receiptService.UpdateTemplateFlags(c.Request.Context(), id, req.ShowTax, req.ShowTip)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Template flags updated", session)
}
