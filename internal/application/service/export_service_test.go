package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
	"github.com/receiptforge/receiptforge-api/internal/infrastructure/repository"
	"github.com/receiptforge/receiptforge-api/pkg/apperror"
	"github.com/receiptforge/receiptforge-api/pkg/printer"
	"github.com/receiptforge/receiptforge-api/pkg/render"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func newExportFixture(t *testing.T, delay time.Duration) (*ReceiptService, *GenerateService, *ExportService) {
	t.Helper()
	sessions := repository.NewSessionRepository()
	renderer, err := render.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return NewReceiptService(sessions),
		NewGenerateService(sessions, printer.NewNullPrinter(), delay),
		NewExportService(sessions, renderer, 1)
}

func waitForIdle(t *testing.T, receipts *ReceiptService, id uuid.UUID) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, err := receipts.GetSession(context.Background(), id)
		if err != nil {
			t.Fatalf("GetSession: %v", err)
		}
		if got.State == enum.GenerateStateIdle {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("session never settled to Idle")
}

func TestExportGatedOnGenerate(t *testing.T) {
	receipts, gen, exports := newExportFixture(t, time.Hour)
	ctx := context.Background()

	session, err := receipts.CreateSession(ctx, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if _, err := exports.ExportPNG(ctx, session.ID); !errors.Is(err, apperror.ErrExportUnavailable) {
		t.Errorf("export before generate: err = %v, want ErrExportUnavailable", err)
	}

	// The settle window is an hour, so the session stays mid-flight.
	if _, _, err := gen.Generate(ctx, session.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := exports.ExportPNG(ctx, session.ID); !errors.Is(err, apperror.ErrGenerateInFlight) {
		t.Errorf("export mid-generate: err = %v, want ErrGenerateInFlight", err)
	}
}

func TestExportArtifacts(t *testing.T) {
	receipts, gen, exports := newExportFixture(t, time.Millisecond)
	ctx := context.Background()

	session, err := receipts.CreateSession(ctx, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, _, err := receipts.AddItem(ctx, session.ID, &ItemInput{Name: "Coffee", Price: "3.50", Quantity: "2"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, _, err := gen.Generate(ctx, session.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	waitForIdle(t, receipts, session.ID)

	png, err := exports.ExportPNG(ctx, session.ID)
	if err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}
	if !bytes.HasPrefix(png.Data, pngMagic) {
		t.Error("PNG export is not a PNG")
	}
	if png.ContentType != "image/png" {
		t.Errorf("PNG content type = %q", png.ContentType)
	}

	pdf, err := exports.ExportPDF(ctx, session.ID)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf.Data, []byte("%PDF")) {
		t.Error("PDF export is not a PDF")
	}

	// Filenames carry the receipt number.
	got, err := receipts.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	wantPNG := "receipt-" + got.Receipt.ReceiptNumber + ".png"
	if png.Filename != wantPNG {
		t.Errorf("PNG filename = %q, want %q", png.Filename, wantPNG)
	}
}
