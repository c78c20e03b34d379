package qrcode

import (
	"net/url"
	"strings"

	"painel/config"
	"painel/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// LinkPNG renders a dashboard link as a PNG image
func (s *qrcodeService) LinkPNG(link string) ([]byte, error) {
	qrCode, err := s.encode(link)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// LinkTerminal renders a dashboard link with half-block characters
func (s *qrcodeService) LinkTerminal(link string) (string, error) {
	qrCode, err := s.encode(link)
	if err != nil {
		return "", err
	}

	return qrCode.ToSmallString(false), nil
}

func (s *qrcodeService) encode(link string) (*qrcode.QRCode, error) {
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("not an absolute link: %q", link)
	}

	qrCode, err := qrcode.New(u.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	return qrCode, nil
}
