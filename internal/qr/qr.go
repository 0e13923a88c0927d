// Package qr renders a compact sync payload as a QR image.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize matches the generation parameters the payload was sized for:
// a large, low-error-correction code that stays scannable across two phone
// screens.
const DefaultSize = 1000

// WritePNG renders payload into a size x size PNG at path. Error correction
// stays at the lowest level; the compact format is already near the
// capacity limit of a scannable code.
func WritePNG(payload, path string, size int) error {
	if size <= 0 {
		size = DefaultSize
	}
	if err := qrcode.WriteFile(payload, qrcode.Low, size, path); err != nil {
		return fmt.Errorf("render qr: %w", err)
	}
	return nil
}
