package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
	"github.com/receiptforge/receiptforge-api/internal/domain/repository"
	"github.com/receiptforge/receiptforge-api/pkg/apperror"
	"github.com/receiptforge/receiptforge-api/pkg/render"
)

// Export is a finished download artifact.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the downloadable receipt artifacts. Exports are
// only available once a receipt has been generated and the generate
// sequence has settled.
type ExportService struct {
	sessions repository.SessionRepository
	renderer *render.Renderer
	scale    float64
}

// NewExportService creates a new export service. scale is the raster
// upscale factor for PNG exports.
func NewExportService(sessions repository.SessionRepository, renderer *render.Renderer, scale float64) *ExportService {
	if scale <= 0 {
		scale = 2
	}
	return &ExportService{sessions: sessions, renderer: renderer, scale: scale}
}

// ExportPNG rasterizes the session's receipt to a PNG download.
func (s *ExportService) ExportPNG(ctx context.Context, id uuid.UUID) (*Export, error) {
	session, err := s.exportable(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := BuildDocument(session)
	data, err := s.renderer.RenderPNG(doc, s.scale)
	if err != nil {
		log.Printf("PNG render error (session %s): %v", id, err)
		return nil, apperror.ErrRenderFailed
	}
	return &Export{
		Filename:    "receipt-" + session.Receipt.ReceiptNumber + ".png",
		ContentType: "image/png",
		Data:        data,
	}, nil
}

// ExportPDF renders the session's receipt to a PDF download.
func (s *ExportService) ExportPDF(ctx context.Context, id uuid.UUID) (*Export, error) {
	session, err := s.exportable(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := BuildDocument(session)
	data, err := render.RenderPDF(doc)
	if err != nil {
		log.Printf("PDF render error (session %s): %v", id, err)
		return nil, apperror.ErrRenderFailed
	}
	return &Export{
		Filename:    "receipt-" + session.Receipt.ReceiptNumber + ".pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// exportable fetches the session and enforces the export gate: at least
// one generate must have completed and none may be in flight.
func (s *ExportService) exportable(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.Generated {
		return nil, apperror.ErrExportUnavailable
	}
	if session.State == enum.GenerateStateGenerating {
		return nil, apperror.ErrGenerateInFlight
	}
	return session, nil
}
