package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
)

// NoEdit is the EditIndex value when no item is being edited.
const NoEdit = -1

// Session is one live editing session: exactly one Receipt in progress,
// its edit-buffer state and its generate/print state. Sessions live in
// memory only and are owned exclusively by their store.
type Session struct {
	ID      uuid.UUID `json:"id"`
	Locale  string    `json:"locale"`
	Receipt Receipt   `json:"receipt"`

	// Line-item edit mode: at most one index at a time.
	EditIndex  int         `json:"edit_index"`
	EditBuffer ReceiptItem `json:"edit_buffer,omitempty"`

	State     enum.GenerateState `json:"state"`
	Generated bool               `json:"generated"` // true once generate has run; gates export
	Animate   bool               `json:"animate"`   // item-entrance animation hint

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Editing reports whether an item is currently captured for editing.
func (s *Session) Editing() bool {
	return s.EditIndex != NoEdit
}
