package service

// QRCodeService defines the interface for product QR code generation and scanner payload parsing
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code carrying the product code
	GenerateProductQR(code string) ([]byte, error)

	// ParseScanPayload extracts a product code from a scanned payload.
	// The payload is either a raw code or the JSON written by GenerateProductQR.
	ParseScanPayload(payload string) (string, error)
}
