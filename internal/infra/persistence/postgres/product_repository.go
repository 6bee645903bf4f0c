package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const productBatchSize = 100

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListProducts returns the products matching the filter in insertion order.
// Ids are time-ordered, so ordering by id is ordering by insertion.
func (repo *productRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.HasCategory() {
		query = query.Where("category = ?", strings.TrimSpace(string(filter.Category)))
	}

	if term := filter.SearchTerm(); term != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		query = query.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`,
			pattern, pattern,
		)
	}

	if err := query.Order("id ASC").Find(&productModels).Error; err != nil {
		return nil, classifyDBError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, classifyDBError(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindProductByCode retrieves the first product with the given code.
func (repo *productRepository) FindProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		Order("id ASC").
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, classifyDBError(err, "failed to find product by code")
	}

	return toProductDomain(&productM), nil
}

// CreateProducts persists catalog products in the given order.
func (repo *productRepository) CreateProducts(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	productModels := make([]*model.ProductModel, 0, len(products))
	for _, product := range products {
		productModels = append(productModels, fromProductDomain(product))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(productModels, productBatchSize).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product price and stock must not be negative")
		}

		return classifyDBError(err, "failed to create products")
	}

	for i, productM := range productModels {
		products[i].ID = productM.ID
		products[i].CreatedAt = productM.CreatedAt
	}

	return nil
}

// CountProducts returns the number of products in the catalog.
func (repo *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, classifyDBError(err, "failed to count products")
	}

	return count, nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Category:    entity.Category(data.Category),
		Price:       data.Price,
		Description: data.Description,
		Stock:       data.Stock,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
	if data.Code != nil {
		product.Code = *data.Code
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    string(data.Category),
		Price:       data.Price,
		Description: data.Description,
		Stock:       data.Stock,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
	if code := strings.TrimSpace(data.Code); code != "" {
		productM.Code = &code
	}

	return productM
}
