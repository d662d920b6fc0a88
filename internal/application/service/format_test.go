package service

import (
	"bytes"
	"testing"

	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
)

func TestFormatDocument(t *testing.T) {
	session := sampleSession(t, enum.TemplateRetail, "en")
	data := FormatDocument(BuildDocument(session))

	if !bytes.HasPrefix(data, []byte{0x1B, '@'}) {
		t.Error("ESC/POS stream does not start with the initialize command")
	}
	for _, want := range []string{
		"Corner Deli",
		"Coffee",
		"Subtotal:",
		"Total:",
		"Credit Card",
		"**** 4242",
		"Thank you for your business!",
		"123456789", // barcode payload
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("ESC/POS stream missing %q", want)
		}
	}
	if !bytes.Contains(data, []byte{0x1D, 'V', 0x01}) {
		t.Error("ESC/POS stream missing the partial cut")
	}
}
