package qrcode

import (
	"strings"

	"socksflow/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size          int
	recoveryLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service. The level accepts L/M/Q/H or
// low/medium/high/highest and defaults to medium.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:          size,
		recoveryLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// PaymentQR renders the payment redirect URL so it can be scanned with a phone
func (s *qrcodeService) PaymentQR(redirectURL string) ([]byte, error) {
	if strings.TrimSpace(redirectURL) == "" {
		return nil, errors.New("payment redirect URL is empty")
	}

	code, err := qrcode.New(redirectURL, s.recoveryLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}
