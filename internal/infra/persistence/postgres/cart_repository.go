package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartLockKey is the advisory lock key guarding the cart.
const cartLockKey int64 = 0x5354524543415254

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// LockCart takes a transaction-scoped advisory lock. It is released on commit or rollback.
func (repo *cartRepository) LockCart(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", cartLockKey).Error; err != nil {
		return classifyDBError(err, "failed to lock cart")
	}

	return nil
}

// FindLineByID retrieves a cart line by its unique ID.
func (repo *cartRepository) FindLineByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, classifyDBError(err, "failed to find cart line by ID")
	}

	return toCartLineDomain(&lineM), nil
}

// FindLineByProductID retrieves the cart line for a product.
func (repo *cartRepository) FindLineByProductID(ctx context.Context, productID uuid.UUID) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, classifyDBError(err, "failed to find cart line by product")
	}

	return toCartLineDomain(&lineM), nil
}

// CreateLine persists a new cart line.
func (repo *cartRepository) CreateLine(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)

	if err := repo.db.WithContext(ctx).Omit("Product").Create(lineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCartLine
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("cart line quantity must be positive")
		}

		return classifyDBError(err, "failed to create cart line")
	}

	line.ID = lineM.ID
	line.CreatedAt = lineM.CreatedAt
	line.UpdatedAt = lineM.UpdatedAt

	return nil
}

// UpdateLineQuantity sets the quantity of an existing line.
func (repo *cartRepository) UpdateLineQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("cart line quantity must be positive")
		}

		return classifyDBError(result.Error, "failed to update cart line quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLine removes a cart line by its ID.
func (repo *cartRepository) DeleteLine(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartLineModel{})

	if result.Error != nil {
		return classifyDBError(result.Error, "failed to delete cart line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteAllLines removes every cart line.
func (repo *cartRepository) DeleteAllLines(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.CartLineModel{})

	if result.Error != nil {
		return 0, classifyDBError(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

// ListLines returns the raw cart lines in insertion order.
func (repo *cartRepository) ListLines(ctx context.Context) ([]*entity.CartLine, error) {
	var lineModels []*model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&lineModels).Error; err != nil {
		return nil, classifyDBError(err, "failed to list cart lines")
	}

	lines := make([]*entity.CartLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		lines = append(lines, toCartLineDomain(lineM))
	}

	return lines, nil
}

// ListCartItems joins cart lines with their products.
func (repo *cartRepository) ListCartItems(ctx context.Context) ([]*entity.CartItem, error) {
	var rows []*model.CartItemRow

	if err := repo.db.WithContext(ctx).
		Table("cart_lines AS cl").
		Select("cl.id AS line_id, cl.product_id, p.name AS product_name, cl.quantity, cl.unit_price").
		Joins("JOIN products AS p ON p.id = cl.product_id").
		Order("cl.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, classifyDBError(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.CartItem{
			LineID:      row.LineID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		})
	}

	return items, nil
}

// toCartLineDomain converts a GORM CartLineModel to a domain CartLine entity.
func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ID:        data.ID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartLineDomain converts a domain CartLine entity to a GORM CartLineModel.
func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	return &model.CartLineModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
