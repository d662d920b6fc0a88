package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/receiptforge/receiptforge-api/internal/application/service"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/request"
	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/response"
)

// ItemHandler handles the line-item editor.
type ItemHandler struct {
	receiptService *service.ReceiptService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(receiptService *service.ReceiptService) *ItemHandler {
	return &ItemHandler{receiptService: receiptService}
}

func itemInput(req *request.ItemRequest) *service.ItemInput {
	return &service.ItemInput{
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
	}
}

// Add appends a line item. A submission the template rules refuse is not an
// error: the response reports added=false and the receipt stays unchanged.
func (h *ItemHandler) Add(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	session, added, err := h.receiptService.AddItem(c.Request.Context(), id, itemInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item submission processed", gin.H{
		"added":   added,
		"session": session,
	})
}

// StartEdit captures the item at :index into the edit buffer.
func (h *ItemHandler) StartEdit(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	index, ok := ItemIndex(c)
	if !ok {
		return
	}

	session, err := h.receiptService.StartEdit(c.Request.Context(), id, index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item edit started", session)
}

// CommitEdit replaces the item at :index in place.
func (h *ItemHandler) CommitEdit(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	index, ok := ItemIndex(c)
	if !ok {
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	session, committed, err := h.receiptService.CommitEdit(c.Request.Context(), id, index, itemInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item edit processed", gin.H{
		"committed": committed,
		"session":   session,
	})
}

// Remove deletes the item at :index.
func (h *ItemHandler) Remove(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	index, ok := ItemIndex(c)
	if !ok {
		return
	}

	session, err := h.receiptService.RemoveItem(c.Request.Context(), id, index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", session)
}
