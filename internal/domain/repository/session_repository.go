package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
)

// SessionRepository defines the interface for session state access.
//
// Update runs fn under the store's lock, so every mutation runs to
// completion before the next one is applied and the editing path never
// interleaves.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*entity.Session) error) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
