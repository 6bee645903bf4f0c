package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/persistence/memory"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service usecase.CatalogUsecase
	store   *memory.Store
	qrcode  *mockSvc.MockQRCodeService
	codec   *mockSvc.MockCatalogCodec
	storage *mockSvc.MockExportStorage
}

func createTestCatalogService(t *testing.T, withStorage bool) catalogServiceFixtures {
	store := memory.NewStore()
	qrcode := mockSvc.NewMockQRCodeService(t)
	codec := mockSvc.NewMockCatalogCodec(t)

	params := CatalogServiceParams{
		TxManager:     memory.NewTransactionManager(store),
		ProductRepo:   memory.NewProductRepository(store),
		QRCodeService: qrcode,
		Codec:         codec,
		Logger:        newDiscardLogger(),
	}

	var storage *mockSvc.MockExportStorage
	if withStorage {
		storage = mockSvc.NewMockExportStorage(t)
		params.ExportStorage = storage
	}

	return catalogServiceFixtures{
		service: NewCatalogService(params),
		store:   store,
		qrcode:  qrcode,
		codec:   codec,
		storage: storage,
	}
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t, false)

	categories := fx.service.ListCategories()
	require.NotEmpty(t, categories)
	assert.Equal(t, entity.CategoryAll, categories[0])
	assert.Contains(t, categories, entity.CategoryGraphics)
}

func TestCatalogService_ListProducts_Filters(t *testing.T) {
	fx := createTestCatalogService(t, false)

	cpu := testProduct("AMD Ryzen 7 7700X", entity.CategoryProcessors, "1269000.10")
	gpu := testProduct("NVIDIA RTX 4070", entity.CategoryGraphics, "4991750.14")
	gpu.Description = "GPU gaming, 12GB GDDR6X"
	ram := testProduct("Corsair Vengeance DDR5 32GB", entity.CategoryMemory, "975620.25")
	seedProducts(t, fx.store, cpu, gpu, ram)

	tests := []struct {
		name   string
		filter entity.ProductFilter
		want   []string
	}{
		{
			name:   "no filter keeps insertion order",
			filter: entity.ProductFilter{},
			want:   []string{cpu.Name, gpu.Name, ram.Name},
		},
		{
			name:   "sentinel category",
			filter: entity.ProductFilter{Category: entity.CategoryAll},
			want:   []string{cpu.Name, gpu.Name, ram.Name},
		},
		{
			name:   "english alias",
			filter: entity.ProductFilter{Category: "all"},
			want:   []string{cpu.Name, gpu.Name, ram.Name},
		},
		{
			name:   "single category",
			filter: entity.ProductFilter{Category: entity.CategoryMemory},
			want:   []string{ram.Name},
		},
		{
			name:   "search is case insensitive",
			filter: entity.ProductFilter{Search: "  ryzen "},
			want:   []string{cpu.Name},
		},
		{
			name:   "search matches description",
			filter: entity.ProductFilter{Search: "gddr6x"},
			want:   []string{gpu.Name},
		},
		{
			name:   "category and search combine",
			filter: entity.ProductFilter{Category: entity.CategoryProcessors, Search: "nvidia"},
			want:   []string{},
		},
		{
			name:   "unknown category",
			filter: entity.ProductFilter{Category: "Periféricos"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := fx.service.ListProducts(context.Background(), tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(products))
			for _, product := range products {
				names = append(names, product.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t, false)

	_, err := fx.service.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_FindByCode(t *testing.T) {
	fx := createTestCatalogService(t, false)

	first := testProduct("Samsung 980 PRO 2TB", entity.CategoryStorage, "415000.58")
	first.Code = "1234567890135"
	duplicate := testProduct("Samsung 980 PRO 2TB (reacondicionado)", entity.CategoryStorage, "300000.00")
	duplicate.Code = "1234567890135"
	seedProducts(t, fx.store, first, duplicate)

	product, found, err := fx.service.FindByCode(context.Background(), " 1234567890135 ")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first.ID, product.ID)

	product, found, err = fx.service.FindByCode(context.Background(), "0000000000000")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, product)

	_, found, err = fx.service.FindByCode(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalogService_ScanCode(t *testing.T) {
	fx := createTestCatalogService(t, false)

	product := testProduct("WD Black SN850X 1TB", entity.CategoryStorage, "2273400.25")
	product.Code = "1234567890136"
	seedProducts(t, fx.store, product)

	fx.qrcode.EXPECT().ParseScanPayload(`{"code":"1234567890136","type":"product"}`).Return("1234567890136", nil)
	fx.qrcode.EXPECT().ParseScanPayload("9999").Return("9999", nil)
	fx.qrcode.EXPECT().ParseScanPayload("").Return("", errors.New("empty scan payload"))

	found, err := fx.service.ScanCode(context.Background(), `{"code":"1234567890136","type":"product"}`)
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	_, err = fx.service.ScanCode(context.Background(), "9999")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = fx.service.ScanCode(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestCatalogService_ProductQR(t *testing.T) {
	fx := createTestCatalogService(t, false)

	withCode := testProduct("Corsair RM850x", entity.CategoryPowerSupply, "930252.85")
	withCode.Code = "1234567890138"
	withoutCode := testProduct("Case genérico", entity.CategoryCases, "150000.00")
	seedProducts(t, fx.store, withCode, withoutCode)

	fx.qrcode.EXPECT().GenerateProductQR("1234567890138").Return([]byte("png"), nil)

	png, err := fx.service.ProductQR(context.Background(), withCode.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.ProductQR(context.Background(), withoutCode.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = fx.service.ProductQR(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_SeedDefaultCatalog(t *testing.T) {
	fx := createTestCatalogService(t, false)
	ctx := context.Background()

	inserted, err := fx.service.SeedDefaultCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCatalog()), inserted)

	inserted, err = fx.service.SeedDefaultCatalog(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	products, err := fx.service.ListProducts(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, len(DefaultCatalog()))
	assert.Equal(t, "AMD Ryzen 9 7950X", products[0].Name)

	for i := 1; i < len(products); i++ {
		assert.Negative(t, strings.Compare(products[i-1].ID.String(), products[i].ID.String()), "ids follow insertion order")
	}
}

func TestCatalogService_ImportCatalog(t *testing.T) {
	fx := createTestCatalogService(t, false)
	ctx := context.Background()

	decoded := []*entity.Product{
		testProduct("Cooler Master Hyper 212", entity.CategoryCooling, "120000.00"),
		testProduct("NZXT H510", entity.CategoryCases, "350000.00"),
	}
	fx.codec.EXPECT().Decode(mock.Anything, int64(3)).Return(decoded, 2, nil)

	result, err := fx.service.ImportCatalog(ctx, bytes.NewReader([]byte("abc")), 3)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ImportResult{Imported: 2, Skipped: 2}, result)

	products, err := fx.service.ListProducts(ctx, entity.ProductFilter{Category: entity.CategoryCooling})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.NotEqual(t, uuid.Nil, products[0].ID)
}

func TestCatalogService_ImportCatalog_InvalidFile(t *testing.T) {
	fx := createTestCatalogService(t, false)

	fx.codec.EXPECT().Decode(mock.Anything, int64(7)).Return(nil, 0, errors.New("zip: not a valid zip file"))

	_, err := fx.service.ImportCatalog(context.Background(), bytes.NewReader([]byte("garbage")), 7)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCatalogFile)
}

func TestCatalogService_ExportCatalog(t *testing.T) {
	fx := createTestCatalogService(t, false)
	seedProducts(t, fx.store,
		testProduct("MSI MAG B550 Tomahawk", entity.CategoryMotherboards, "749000.14"),
		testProduct("Seagate IronWolf 4TB", entity.CategoryStorage, "998500.69"),
	)

	fx.codec.EXPECT().
		Encode(mock.Anything, mock.MatchedBy(func(products []*entity.Product) bool { return len(products) == 2 })).
		RunAndReturn(func(w io.Writer, _ []*entity.Product) error {
			_, err := w.Write([]byte("xlsx"))

			return err
		})

	var buf bytes.Buffer
	count, err := fx.service.ExportCatalog(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "xlsx", buf.String())
}

func TestCatalogService_ArchiveCatalog(t *testing.T) {
	fx := createTestCatalogService(t, true)
	seedProducts(t, fx.store, testProduct("EVGA SuperNOVA 1000W", entity.CategoryPowerSupply, "187520.65"))

	fx.codec.EXPECT().Encode(mock.Anything, mock.Anything).Return(nil)
	fx.storage.EXPECT().
		Write(mock.Anything, "exports/catalog.xlsx", xlsxContentType, mock.Anything).
		Return("file:///tmp/exports/exports/catalog.xlsx", nil)

	location, err := fx.service.ArchiveCatalog(context.Background(), " exports/catalog.xlsx ")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/exports/exports/catalog.xlsx", location)
}

func TestCatalogService_ArchiveCatalog_DefaultKey(t *testing.T) {
	fx := createTestCatalogService(t, true)

	fx.codec.EXPECT().Encode(mock.Anything, mock.Anything).Return(nil)
	fx.storage.EXPECT().
		Write(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "catalog-") && strings.HasSuffix(key, ".xlsx")
		}), xlsxContentType, mock.Anything).
		Return("mem://catalog.xlsx", nil)

	_, err := fx.service.ArchiveCatalog(context.Background(), "")
	require.NoError(t, err)
}

func TestCatalogService_ArchiveCatalog_NotConfigured(t *testing.T) {
	fx := createTestCatalogService(t, false)

	_, err := fx.service.ArchiveCatalog(context.Background(), "catalog.xlsx")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}
