package qrcode

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateProductQR("1234567890123")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProductQR_EmptyCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateProductQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_ParseScanPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")

	productQR, err := json.Marshal(QRCodeData{Code: "1234567890126", Type: "product"})
	require.NoError(t, err)

	otherQR, err := json.Marshal(QRCodeData{Code: "1234567890126", Type: "subscription"})
	require.NoError(t, err)

	emptyQR, err := json.Marshal(QRCodeData{Type: "product"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		want    string
		wantErr string
	}{
		{name: "raw barcode", payload: "1234567890123", want: "1234567890123"},
		{name: "raw barcode with spaces", payload: "  1234567890123\n", want: "1234567890123"},
		{name: "product QR", payload: string(productQR), want: "1234567890126"},
		{name: "empty", payload: "", wantErr: "empty"},
		{name: "invalid JSON", payload: "{not json", wantErr: "failed to unmarshal QR code data"},
		{name: "wrong type", payload: string(otherQR), wantErr: "invalid QR code type"},
		{name: "QR without code", payload: string(emptyQR), wantErr: "no product code"},
		{name: "too long", payload: strings.Repeat("9", 65), wantErr: "longer than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseScanPayload(tt.payload)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
