package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"eventattend/internal/domain"
)

const pngSize = 256

type generator struct{}

// NewGenerator returns a QRCodeGenerator that renders PNG data URLs.
func NewGenerator() domain.QRCodeGenerator {
	return &generator{}
}

func (g *generator) DataURL(data string) (string, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, pngSize)
	if err != nil {
		return "", fmt.Errorf("encode QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
