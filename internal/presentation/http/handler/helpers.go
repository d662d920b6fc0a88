package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/presentation/http/dto/response"
)

// SessionID extracts and validates the :id path parameter. On failure it
// writes the error response and returns false.
func SessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID format")
		return uuid.Nil, false
	}
	return id, true
}

// ItemIndex extracts and validates the :index path parameter.
func ItemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid item index")
		return 0, false
	}
	return index, true
}
