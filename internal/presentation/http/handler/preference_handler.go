package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/application/service"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/request"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/response"
)

// PreferenceHandler handles the persisted receipt language.
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler.
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// GetLang returns the effective receipt language.
func (h *PreferenceHandler) GetLang(c *gin.Context) {
	lang, err := h.preferenceService.ResolveLang(c.Request.Context(), c.GetHeader("Accept-Language"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Language retrieved", gin.H{"lang": lang})
}

// SetLang persists the receipt language choice.
func (h *PreferenceHandler) SetLang(c *gin.Context) {
	var req request.SetLangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.preferenceService.SetLang(c.Request.Context(), req.Lang); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Language saved", gin.H{"lang": req.Lang})
}
