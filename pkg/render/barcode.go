package render

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// BarcodeImage produces a scannable Code 128 glyph for a value, scaled to
// the requested pixel dimensions.
func BarcodeImage(value string, width, height int) (image.Image, error) {
	if value == "" {
		return nil, fmt.Errorf("render: empty barcode value")
	}
	bc, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("render: failed to encode barcode: %w", err)
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("render: failed to scale barcode: %w", err)
	}
	return scaled, nil
}
