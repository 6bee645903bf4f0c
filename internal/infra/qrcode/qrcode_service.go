package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const maxCodeLength = 64

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProductQR generates a QR code carrying a product code
func (s *qrcodeService) GenerateProductQR(code string) ([]byte, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("product code is empty")
	}

	data := QRCodeData{
		Code: code,
		Type: constants.QRPayloadTypeProduct,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseScanPayload extracts a product code from a scanned payload.
// JSON payloads must be product QR codes; anything else is treated as a raw barcode.
func (s *qrcodeService) ParseScanPayload(payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", errors.New("scan payload is empty")
	}

	if strings.HasPrefix(payload, "{") {
		var data QRCodeData
		if err := json.Unmarshal([]byte(payload), &data); err != nil {
			return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
		}

		if data.Type != constants.QRPayloadTypeProduct {
			return "", fmt.Errorf("invalid QR code type: %s", data.Type)
		}

		payload = strings.TrimSpace(data.Code)
		if payload == "" {
			return "", errors.New("QR code has no product code")
		}
	}

	if len(payload) > maxCodeLength {
		return "", fmt.Errorf("code longer than %d characters", maxCodeLength)
	}

	return payload, nil
}
