// Package memory contains an in-process implementation of the persistence layer.
// A single mutex serializes transactions, so the transaction lock is also the cart lock.
package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

var errStoreClosed = errors.New("memory store is closed")

// Store holds every table in memory.
type Store struct {
	mu     sync.RWMutex
	data   *tables
	closed bool
	now    func() time.Time
}

type tables struct {
	products []*entity.Product
	lines    []*entity.CartLine
	orders   []*entity.Order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data: &tables{},
		now:  time.Now,
	}
}

// Close makes every later operation fail with StoreUnavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true

	return nil
}

// Reopen undoes Close.
func (s *Store) Reopen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = false
}

func (t *tables) clone() *tables {
	cloned := &tables{
		products: make([]*entity.Product, len(t.products)),
		lines:    make([]*entity.CartLine, len(t.lines)),
		orders:   make([]*entity.Order, len(t.orders)),
	}
	for i, p := range t.products {
		cloned.products[i] = copyProduct(p)
	}
	for i, l := range t.lines {
		cloned.lines[i] = copyLine(l)
	}
	for i, o := range t.orders {
		cloned.orders[i] = copyOrder(o)
	}

	return cloned
}

// contextError mirrors the postgres classification: a cancelled caller is returned as is,
// an expired deadline means the store could not answer in time.
func contextError(ctx context.Context) error {
	err := ctx.Err()
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}

	return domainerrors.NewStoreUnavailableError(err)
}

// access runs fn against the tables. Repositories bound to a transaction already hold the lock.
type access struct {
	store *Store
	inTx  bool
}

func (a access) read(ctx context.Context, fn func(t *tables) error) error {
	if err := contextError(ctx); err != nil {
		return err
	}

	if !a.inTx {
		a.store.mu.RLock()
		defer a.store.mu.RUnlock()
	}

	if a.store.closed {
		return domainerrors.NewStoreUnavailableError(errStoreClosed)
	}

	return fn(a.store.data)
}

func (a access) write(ctx context.Context, fn func(t *tables) error) error {
	if err := contextError(ctx); err != nil {
		return err
	}

	if !a.inTx {
		a.store.mu.Lock()
		defer a.store.mu.Unlock()
	}

	if a.store.closed {
		return domainerrors.NewStoreUnavailableError(errStoreClosed)
	}

	return fn(a.store.data)
}

// transactionManager implements repository.TransactionManager on top of Store.
type transactionManager struct {
	store *Store
}

// repositoryFactory creates repositories bound to the running transaction.
type repositoryFactory struct {
	acc access
}

// NewTransactionManager is the constructor for the in-memory transaction manager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// NewProductRepository creates a product repository bound to the transaction.
func (f *repositoryFactory) NewProductRepository() repository.ProductRepository {
	return &productRepository{acc: f.acc}
}

// NewCartRepository creates a cart repository bound to the transaction.
func (f *repositoryFactory) NewCartRepository() repository.CartRepository {
	return &cartRepository{acc: f.acc}
}

// NewOrderRepository creates an order repository bound to the transaction.
func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{acc: f.acc}
}

// Execute runs fn while holding the store lock. On error or panic the tables are restored.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if ctxErr := contextError(ctx); ctxErr != nil {
		return ctxErr
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	if tm.store.closed {
		return domainerrors.NewStoreUnavailableError(errStoreClosed)
	}

	snapshot := tm.store.data.clone()

	defer func() {
		if r := recover(); r != nil {
			tm.store.data = snapshot
			panic(r)
		}
	}()

	factory := &repositoryFactory{acc: access{store: tm.store, inTx: true}}

	if err := fn(factory); err != nil {
		tm.store.data = snapshot

		return err
	}

	return nil
}

func copyProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	cp := *p

	return &cp
}

func copyLine(l *entity.CartLine) *entity.CartLine {
	if l == nil {
		return nil
	}
	cp := *l

	return &cp
}

func copyOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Lines = make([]*entity.OrderLine, len(o.Lines))
	for i, line := range o.Lines {
		lineCopy := *line
		cp.Lines[i] = &lineCopy
	}

	return &cp
}
