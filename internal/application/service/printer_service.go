package service

import (
	"fmt"
	"time"

	"github.com/receiptforge/receiptforge-api/internal/domain/catalog"
	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/pkg/i18n"
	"github.com/receiptforge/receiptforge-api/pkg/identifier"
	"github.com/receiptforge/receiptforge-api/pkg/printer"
)

// PrinterService exposes thermal printer status and test printing.
type PrinterService struct {
	printer     printer.Printer
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string) *PrinterService {
	return &PrinterService{printer: p, printerType: printerType}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a sample receipt to the printer. The document is returned
// either way so the caller can inspect it when no printer is attached.
func (s *PrinterService) TestPrint() (*entity.Document, error) {
	now := time.Now()
	session := &entity.Session{
		Locale:  i18n.LocaleEN,
		Receipt: newReceipt(catalog.Default(), now),
	}
	session.Receipt.StoreName = "PRINTER TEST"
	session.Receipt.ReceiptNumber = identifier.GenerateReceiptNumber()
	session.Receipt.Items = []entity.ReceiptItem{
		{Name: "Test Item 1", Price: 10.00, Quantity: 1},
		{Name: "Test Item 2", Price: 5.00, Quantity: 2},
	}

	doc := BuildDocument(session)
	if err := s.printer.Print(FormatDocument(doc)); err != nil {
		return doc, fmt.Errorf("test print failed: %w", err)
	}
	return doc, nil
}
