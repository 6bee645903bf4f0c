package memory

import (
	"context"
	"sort"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// NewProductRepository returns a product repository that is not bound to a transaction.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{acc: access{store: store}}
}

// NewCartRepository returns a cart repository that is not bound to a transaction.
func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{acc: access{store: store}}
}

// NewOrderRepository returns an order repository that is not bound to a transaction.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{acc: access{store: store}}
}

type productRepository struct {
	acc access
}

// ListProducts returns the products matching the filter in insertion order.
func (repo *productRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products := []*entity.Product{}

	err := repo.acc.read(ctx, func(t *tables) error {
		for _, p := range t.products {
			if filter.Matches(p) {
				products = append(products, copyProduct(p))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var found *entity.Product

	err := repo.acc.read(ctx, func(t *tables) error {
		for _, p := range t.products {
			if p.ID == id {
				found = copyProduct(p)

				return nil
			}
		}

		return repository.ErrProductNotFound
	})

	return found, err
}

// FindProductByCode retrieves the first product with the given code.
func (repo *productRepository) FindProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	var found *entity.Product

	err := repo.acc.read(ctx, func(t *tables) error {
		for _, p := range t.products {
			if p.Code != "" && p.Code == code {
				found = copyProduct(p)

				return nil
			}
		}

		return repository.ErrProductNotFound
	})

	return found, err
}

// CreateProducts appends catalog products in the given order.
func (repo *productRepository) CreateProducts(ctx context.Context, products []*entity.Product) error {
	return repo.acc.write(ctx, func(t *tables) error {
		now := repo.acc.store.now()
		for _, p := range products {
			if p.ID == uuid.Nil {
				p.ID = uuid.Must(uuid.NewV7())
			}
			if p.CreatedAt.IsZero() {
				p.CreatedAt = now
			}
			p.Code = strings.TrimSpace(p.Code)
			t.products = append(t.products, copyProduct(p))
		}

		return nil
	})
}

// CountProducts returns the number of products in the catalog.
func (repo *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64

	err := repo.acc.read(ctx, func(t *tables) error {
		count = int64(len(t.products))

		return nil
	})

	return count, err
}

type cartRepository struct {
	acc access
}

// LockCart is satisfied by the transaction mutex.
func (repo *cartRepository) LockCart(ctx context.Context) error {
	return repo.acc.read(ctx, func(_ *tables) error { return nil })
}

// FindLineByID retrieves a cart line by its unique ID.
func (repo *cartRepository) FindLineByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error) {
	var found *entity.CartLine

	err := repo.acc.read(ctx, func(t *tables) error {
		if idx := lineIndex(t.lines, func(l *entity.CartLine) bool { return l.ID == id }); idx >= 0 {
			found = copyLine(t.lines[idx])

			return nil
		}

		return repository.ErrCartLineNotFound
	})

	return found, err
}

// FindLineByProductID retrieves the cart line for a product.
func (repo *cartRepository) FindLineByProductID(ctx context.Context, productID uuid.UUID) (*entity.CartLine, error) {
	var found *entity.CartLine

	err := repo.acc.read(ctx, func(t *tables) error {
		if idx := lineIndex(t.lines, func(l *entity.CartLine) bool { return l.ProductID == productID }); idx >= 0 {
			found = copyLine(t.lines[idx])

			return nil
		}

		return repository.ErrCartLineNotFound
	})

	return found, err
}

// CreateLine persists a new cart line, keeping at most one line per product.
func (repo *cartRepository) CreateLine(ctx context.Context, line *entity.CartLine) error {
	return repo.acc.write(ctx, func(t *tables) error {
		if lineIndex(t.lines, func(l *entity.CartLine) bool { return l.ProductID == line.ProductID }) >= 0 {
			return repository.ErrDuplicateCartLine
		}

		productExists := false
		for _, p := range t.products {
			if p.ID == line.ProductID {
				productExists = true

				break
			}
		}
		if !productExists {
			return repository.ErrProductNotFound
		}

		now := repo.acc.store.now()
		if line.ID == uuid.Nil {
			line.ID = uuid.Must(uuid.NewV7())
		}
		line.CreatedAt = now
		line.UpdatedAt = now
		t.lines = append(t.lines, copyLine(line))

		return nil
	})
}

// UpdateLineQuantity sets the quantity of an existing line.
func (repo *cartRepository) UpdateLineQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return repo.acc.write(ctx, func(t *tables) error {
		idx := lineIndex(t.lines, func(l *entity.CartLine) bool { return l.ID == id })
		if idx < 0 {
			return repository.ErrCartLineNotFound
		}
		t.lines[idx].Quantity = quantity
		t.lines[idx].UpdatedAt = repo.acc.store.now()

		return nil
	})
}

// DeleteLine removes a cart line by its ID.
func (repo *cartRepository) DeleteLine(ctx context.Context, id uuid.UUID) error {
	return repo.acc.write(ctx, func(t *tables) error {
		idx := lineIndex(t.lines, func(l *entity.CartLine) bool { return l.ID == id })
		if idx < 0 {
			return repository.ErrCartLineNotFound
		}
		t.lines = append(t.lines[:idx:idx], t.lines[idx+1:]...)

		return nil
	})
}

// DeleteAllLines removes every cart line.
func (repo *cartRepository) DeleteAllLines(ctx context.Context) (int64, error) {
	var removed int64

	err := repo.acc.write(ctx, func(t *tables) error {
		removed = int64(len(t.lines))
		t.lines = nil

		return nil
	})

	return removed, err
}

// ListLines returns the raw cart lines in insertion order.
func (repo *cartRepository) ListLines(ctx context.Context) ([]*entity.CartLine, error) {
	lines := []*entity.CartLine{}

	err := repo.acc.read(ctx, func(t *tables) error {
		for _, l := range t.lines {
			lines = append(lines, copyLine(l))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// ListCartItems joins cart lines with their products in insertion order.
func (repo *cartRepository) ListCartItems(ctx context.Context) ([]*entity.CartItem, error) {
	items := []*entity.CartItem{}

	err := repo.acc.read(ctx, func(t *tables) error {
		names := make(map[uuid.UUID]string, len(t.products))
		for _, p := range t.products {
			names[p.ID] = p.Name
		}

		for _, l := range t.lines {
			name, ok := names[l.ProductID]
			if !ok {
				continue
			}
			items = append(items, &entity.CartItem{
				LineID:      l.ID,
				ProductID:   l.ProductID,
				ProductName: name,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

type orderRepository struct {
	acc access
}

// CreateOrder persists an order together with all of its lines.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	return repo.acc.write(ctx, func(t *tables) error {
		if order.ID == uuid.Nil {
			order.ID = uuid.Must(uuid.NewV7())
		}
		if order.CreatedAt.IsZero() {
			order.CreatedAt = repo.acc.store.now()
		}
		for _, line := range order.Lines {
			if line.ID == uuid.Nil {
				line.ID = uuid.Must(uuid.NewV7())
			}
			line.OrderID = order.ID
		}
		t.orders = append(t.orders, copyOrder(order))

		return nil
	})
}

// FindOrderByID retrieves an order and its lines.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var found *entity.Order

	err := repo.acc.read(ctx, func(t *tables) error {
		for _, o := range t.orders {
			if o.ID == id {
				found = copyOrder(o)

				return nil
			}
		}

		return repository.ErrOrderNotFound
	})

	return found, err
}

// ListOrders returns orders newest first.
func (repo *orderRepository) ListOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	orders := []*entity.Order{}

	err := repo.acc.read(ctx, func(t *tables) error {
		for _, o := range t.orders {
			orders = append(orders, copyOrder(o))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].ID.String() > orders[j].ID.String()
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

func lineIndex(lines []*entity.CartLine, match func(*entity.CartLine) bool) int {
	for i, l := range lines {
		if match(l) {
			return i
		}
	}

	return -1
}
