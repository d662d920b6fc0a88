package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/application/service"
	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/request"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/response"
)

// SessionHandler handles the receipt editing session lifecycle.
type SessionHandler struct {
	receiptService    *service.ReceiptService
	preferenceService *service.PreferenceService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(receiptService *service.ReceiptService, preferenceService *service.PreferenceService) *SessionHandler {
	return &SessionHandler{
		receiptService:    receiptService,
		preferenceService: preferenceService,
	}
}

// Create starts a new editing session. The session locale comes from the
// persisted language preference, falling back to the Accept-Language header.
func (h *SessionHandler) Create(c *gin.Context) {
	locale, err := h.preferenceService.ResolveLang(c.Request.Context(), c.GetHeader("Accept-Language"))
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.receiptService.CreateSession(c.Request.Context(), locale)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Session created", session)
}

// Get returns the current session state.
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	session, err := h.receiptService.GetSession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Session retrieved", session)
}

// Reset replaces the receipt with a fresh default.
func (h *SessionHandler) Reset(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	session, err := h.receiptService.Reset(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Session reset", session)
}

// Delete discards a session.
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	if err := h.receiptService.DeleteSession(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateReceipt applies partial receipt field updates.
func (h *SessionHandler) UpdateReceipt(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	var req request.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	session, err := h.receiptService.UpdateReceipt(c.Request.Context(), id, &service.UpdateReceiptInput{
		StoreName:       req.StoreName,
		Date:            req.Date,
		Time:            req.Time,
		RoomNumber:      req.RoomNumber,
		PatientID:       req.PatientID,
		ServiceDate:     req.ServiceDate,
		InvoiceNumber:   req.InvoiceNumber,
		PropertyAddress: req.PropertyAddress,
		PurchaseAmount:  req.PurchaseAmount,
		BalancePayment:  req.BalancePayment,
		FooterText:      req.FooterText,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt updated", session)
}

// UpdatePayment applies partial payment info updates.
func (h *SessionHandler) UpdatePayment(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.UpdatePaymentInput{CardLastFour: req.CardLastFour}
	if req.Method != nil {
		method, ok := enum.ParsePaymentMethod(*req.Method)
		if !ok {
			response.BadRequest(c, "Unknown payment method")
			return
		}
		input.Method = &method
	}

	session, err := h.receiptService.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment updated", session)
}

// Totals returns the derived monetary figures for the session.
func (h *SessionHandler) Totals(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	totals, err := h.receiptService.Totals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Totals computed", totals)
}
