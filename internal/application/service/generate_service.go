package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
	"github.com/receiptforge/receiptforge-api/internal/domain/repository"
	"github.com/receiptforge/receiptforge-api/pkg/identifier"
	"github.com/receiptforge/receiptforge-api/pkg/printer"
)

// GenerateService runs the generate/print sequence: stamp fresh
// identifiers, hand the document to the thermal printer and hold the
// session in Generating until the print window elapses.
type GenerateService struct {
	sessions repository.SessionRepository
	printer  printer.Printer
	delay    time.Duration
}

// NewGenerateService creates a new generate service. delay is how long a
// session stays in Generating after a print is dispatched.
func NewGenerateService(sessions repository.SessionRepository, p printer.Printer, delay time.Duration) *GenerateService {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &GenerateService{sessions: sessions, printer: p, delay: delay}
}

// Generate stamps a fresh receipt number, transaction ID and time onto the
// session's receipt, dispatches it to the printer and schedules the return
// to Idle. A generate on a session that is already Generating is ignored:
// started is false and the session comes back unchanged.
//
// The selected template survives untouched; only the identifiers and the
// clock change.
func (g *GenerateService) Generate(ctx context.Context, id uuid.UUID) (*entity.Session, bool, error) {
	started := false
	session, err := g.sessions.Update(ctx, id, func(sess *entity.Session) error {
		if sess.State == enum.GenerateStateGenerating {
			return nil
		}
		sess.Receipt.ReceiptNumber = identifier.GenerateReceiptNumber()
		sess.Receipt.PaymentInfo.TransactionID = identifier.GenerateTransactionID()
		sess.Receipt.Time = time.Now().Format("15:04:05")
		sess.State = enum.GenerateStateGenerating
		sess.Generated = true
		sess.Animate = true
		started = true
		return nil
	})
	if err != nil || !started {
		return session, false, err
	}

	// Printing is best effort. A dead printer never fails a generate.
	if data := FormatDocument(BuildDocument(session)); len(data) > 0 {
		if err := g.printer.Print(data); err != nil {
			log.Printf("Printer error (session %s): %v", id, err)
		}
	}

	go g.finish(id)
	return session, true, nil
}

// finish returns the session to Idle once the print window elapses. The
// session may have been deleted in the meantime; that is fine.
func (g *GenerateService) finish(id uuid.UUID) {
	time.Sleep(g.delay)
	_, _ = g.sessions.Update(context.Background(), id, func(sess *entity.Session) error {
		sess.State = enum.GenerateStateIdle
		sess.Animate = false
		return nil
	})
}
