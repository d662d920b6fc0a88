package printer

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocumentKeyValueAlignment(t *testing.T) {
	d := NewDocument(32)
	d.KeyValue("Subtotal:", "$9.75")

	data := d.Bytes()
	idx := bytes.Index(data, []byte("Subtotal:"))
	if idx < 0 {
		t.Fatal("key not written")
	}
	line := data[idx:]
	end := bytes.IndexByte(line, LF)
	if end < 0 {
		t.Fatal("no line feed after key/value line")
	}
	if got := len(line[:end]); got != 32 {
		t.Errorf("key/value line width = %d, want 32", got)
	}
}

func TestDocumentItemLine(t *testing.T) {
	d := NewDocument(32)
	d.ItemLine(2, "Coffee", "$7.00")

	out := d.Bytes()
	if !bytes.Contains(out, []byte("2x Coffee")) {
		t.Error("item prefix missing")
	}
	if !bytes.Contains(out, []byte("$7.00")) {
		t.Error("item total missing")
	}
}

func TestDocumentSeparator(t *testing.T) {
	d := NewDocument(32)
	d.Separator('-')
	if !bytes.Contains(d.Bytes(), []byte(strings.Repeat("-", 32))) {
		t.Error("separator not full width")
	}
}

func TestDocumentBarcode(t *testing.T) {
	d := NewDocument(32)
	d.Barcode("123456789")

	out := d.Bytes()
	if !bytes.Contains(out, []byte{GS, 'k', 4}) {
		t.Error("barcode print command missing")
	}
	if !bytes.Contains(out, []byte("123456789")) {
		t.Error("barcode payload missing")
	}
}

func TestDocumentInit(t *testing.T) {
	d := NewDocument(0) // zero width falls back to 32
	if !bytes.HasPrefix(d.Bytes(), []byte{ESC, '@'}) {
		t.Error("document does not start with the initialize command")
	}
}
