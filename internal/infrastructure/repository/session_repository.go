package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/internal/domain/repository"
	"github.com/receiptforge/receiptforge-api/pkg/apperror"
)

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

// NewSessionRepository creates the in-memory session store. Receipts are
// never persisted; a restart drops every session by design.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*entity.Session),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return apperror.ErrConflict
	}
	r.sessions[session.ID] = session
	return nil
}

// Get returns a snapshot copy so callers can read without holding the lock.
func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}
	return snapshot(session), nil
}

// Update applies fn to the live session under the store lock. The mutation
// runs to completion before any other access; fn returning an error leaves
// the prior state intact.
func (r *sessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(*entity.Session) error) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	staged := snapshot(session)
	if err := fn(staged); err != nil {
		return nil, err
	}
	staged.UpdatedAt = time.Now()
	r.sessions[id] = staged
	return snapshot(staged), nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// snapshot deep-copies a session (items are the only reference field).
func snapshot(s *entity.Session) *entity.Session {
	c := *s
	c.Receipt.Items = make([]entity.ReceiptItem, len(s.Receipt.Items))
	copy(c.Receipt.Items, s.Receipt.Items)
	return &c
}
