package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProductRepo   repository.ProductRepository
	QRCodeService service.QRCodeService
	Codec         service.CatalogCodec
	ExportStorage service.ExportStorage `optional:"true"`
	Logger        *slog.Logger
}

type catalogService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	qrCodeService service.QRCodeService
	codec         service.CatalogCodec
	exportStorage service.ExportStorage
	logger        *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		qrCodeService: params.QRCodeService,
		codec:         params.Codec,
		exportStorage: params.ExportStorage,
		logger:        logger,
	}
}

// ListCategories returns the known categories, "Todos" first
func (s *catalogService) ListCategories() []entity.Category {
	return entity.KnownCategories()
}

// ListProducts returns products matching the filter in insertion order
func (s *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetProduct retrieves a single product
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(id.String())
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// FindByCode looks up the first product carrying the external code
func (s *catalogService) FindByCode(ctx context.Context, code string) (*entity.Product, bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, false, nil
	}

	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to find product by code: %w", err)
	}

	return product, true, nil
}

// ScanCode resolves a scanner payload to a product
func (s *catalogService) ScanCode(ctx context.Context, payload string) (*entity.Product, error) {
	code, err := s.qrCodeService.ParseScanPayload(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	product, found, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrProductNotFound.WithDetails("code: " + code)
	}

	return product, nil
}

// ProductQR renders the QR code for a product
func (s *catalogService) ProductQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(product.Code) == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("product has no code")
	}

	png, err := s.qrCodeService.GenerateProductQR(product.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to generate product QR: %w", err)
	}

	return png, nil
}

// SeedDefaultCatalog loads the default products when the catalog is empty
func (s *catalogService) SeedDefaultCatalog(ctx context.Context) (int, error) {
	inserted := 0

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()

		count, err := productRepo.CountProducts(ctx)
		if err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		if count > 0 {
			return nil
		}

		products := s.newCatalogProducts(DefaultCatalog())
		if err := productRepo.CreateProducts(ctx, products); err != nil {
			return fmt.Errorf("failed to create default products: %w", err)
		}
		inserted = len(products)

		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Default catalog loaded",
			slog.Int("products", inserted),
		)
	}

	return inserted, nil
}

// ImportCatalog appends the products read from a spreadsheet
func (s *catalogService) ImportCatalog(ctx context.Context, r io.ReaderAt, size int64) (*usecase.ImportResult, error) {
	products, skipped, err := s.codec.Decode(r, size)
	if err != nil {
		return nil, domainerrors.ErrInvalidCatalogFile.WithDetails(err.Error())
	}

	products = s.newCatalogProducts(products)
	if len(products) > 0 {
		err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewProductRepository().CreateProducts(ctx, products)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to import products: %w", err)
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Catalog imported",
		slog.Int("imported", len(products)),
		slog.Int("skipped", skipped),
	)

	return &usecase.ImportResult{Imported: len(products), Skipped: skipped}, nil
}

// ExportCatalog writes the whole catalog as a spreadsheet
func (s *catalogService) ExportCatalog(ctx context.Context, w io.Writer) (int, error) {
	products, err := s.ListProducts(ctx, entity.ProductFilter{})
	if err != nil {
		return 0, err
	}

	if err := s.codec.Encode(w, products); err != nil {
		return 0, fmt.Errorf("failed to encode catalog: %w", err)
	}

	return len(products), nil
}

// ArchiveCatalog exports the catalog to the export storage
func (s *catalogService) ArchiveCatalog(ctx context.Context, key string) (string, error) {
	if s.exportStorage == nil {
		return "", domainerrors.ErrInvalidArgument.WithDetails("export storage is not configured")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		key = fmt.Sprintf("catalog-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	}

	var buf bytes.Buffer
	count, err := s.ExportCatalog(ctx, &buf)
	if err != nil {
		return "", err
	}

	location, err := s.exportStorage.Write(ctx, key, xlsxContentType, buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to write catalog export: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Catalog exported",
		slog.Int("products", count),
		slog.String("location", location),
	)

	return location, nil
}

// newCatalogProducts assigns ids in slice order so id order matches insertion order.
func (s *catalogService) newCatalogProducts(products []*entity.Product) []*entity.Product {
	now := time.Now()
	for _, product := range products {
		product.ID = uuid.Must(uuid.NewV7())
		product.CreatedAt = now
	}

	return products
}
