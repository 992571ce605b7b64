package qrcode

import (
	"fmt"
	"strings"

	"vitrine/config"
	"vitrine/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	storefrontBaseURL    string
}

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium
	baseURL := ""

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		switch cfg.QRCode.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
		baseURL = cfg.QRCode.StorefrontBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		storefrontBaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GenerateStorefrontQR returns a PNG QR code encoding the public storefront
// URL for the given store slug.
func (s *qrcodeService) GenerateStorefrontQR(slug string) ([]byte, error) {
	storefrontURL := fmt.Sprintf("%s/%s", s.storefrontBaseURL, slug)

	qrCode, err := qrcode.New(storefrontURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
