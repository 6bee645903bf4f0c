package service

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// CatalogCodec converts catalog products to and from a spreadsheet
type CatalogCodec interface {
	// Encode writes the products as a spreadsheet
	Encode(w io.Writer, products []*entity.Product) error

	// Decode reads products from a spreadsheet. Rows with an invalid name or price are skipped
	// and reported in the returned count.
	Decode(r io.ReaderAt, size int64) (products []*entity.Product, skipped int, err error)
}

// ExportStorage persists exported catalog files
type ExportStorage interface {
	// Write stores the content under key and returns a locator for it
	Write(ctx context.Context, key, contentType string, content []byte) (string, error)

	// Close releases the underlying bucket
	Close() error
}
