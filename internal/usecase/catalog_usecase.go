package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ImportResult summarizes a catalog spreadsheet import
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// CatalogUsecase defines the interface for catalog queries and catalog loading
type CatalogUsecase interface {
	// ListCategories returns the known categories, "Todos" first
	ListCategories() []entity.Category

	// ListProducts returns products matching the optional category and search text in insertion order
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// GetProduct retrieves a single product
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByCode looks up the first product carrying the external code.
	// A missing product is reported through found, not through err.
	FindByCode(ctx context.Context, code string) (product *entity.Product, found bool, err error)

	// ScanCode resolves a scanner payload (raw code or product QR JSON) to a product
	ScanCode(ctx context.Context, payload string) (*entity.Product, error)

	// ProductQR renders the QR code that ScanCode understands for a product
	ProductQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// SeedDefaultCatalog loads the default products when the catalog is empty.
	// It returns the number of products inserted.
	SeedDefaultCatalog(ctx context.Context) (int, error)

	// ImportCatalog appends the products read from a spreadsheet
	ImportCatalog(ctx context.Context, r io.ReaderAt, size int64) (*ImportResult, error)

	// ExportCatalog writes the whole catalog as a spreadsheet and returns the product count
	ExportCatalog(ctx context.Context, w io.Writer) (int, error)

	// ArchiveCatalog exports the catalog to the configured export storage and returns its location
	ArchiveCatalog(ctx context.Context, key string) (string, error)
}
