package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	Config           *config.Config
	TxManager        repository.TransactionManager
	CartRepo         repository.CartRepository
	LocationProvider service.LocationProvider
	Publisher        service.EventPublisher
	Notifier         service.CartNotifier `optional:"true"`
	Logger           *slog.Logger
}

// cartService serializes every cart write. The mutex covers this process and the
// transaction-scoped cart lock covers every process sharing the database.
type cartService struct {
	mu sync.RWMutex

	txManager        repository.TransactionManager
	cartRepo         repository.CartRepository
	locationProvider service.LocationProvider
	publisher        service.EventPublisher
	notifier         service.CartNotifier
	defaultAddress   string
	logger           *slog.Logger
	now              func() time.Time
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	defaultAddress := ""
	if params.Config != nil && params.Config.Checkout != nil {
		defaultAddress = params.Config.Checkout.DefaultAddress
	}

	return &cartService{
		txManager:        params.TxManager,
		cartRepo:         params.CartRepo,
		locationProvider: params.LocationProvider,
		publisher:        params.Publisher,
		notifier:         params.Notifier,
		defaultAddress:   defaultAddress,
		logger:           logger,
		now:              time.Now,
	}
}

// AddToCart adds quantity units of a product to the cart
func (s *cartService) AddToCart(ctx context.Context, productID uuid.UUID, quantity int) (*entity.CartLine, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails(fmt.Sprintf("quantity: %d", quantity))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result *entity.CartLine

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		if err := cartRepo.LockCart(ctx); err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}

		product, err := factory.NewProductRepository().FindProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WithDetails(productID.String())
			}

			return fmt.Errorf("failed to find product: %w", err)
		}

		line, err := cartRepo.FindLineByProductID(ctx, product.ID)
		switch {
		case err == nil:
			if quantity > math.MaxInt-line.Quantity {
				return domainerrors.ErrInvalidQuantity.WithDetails(fmt.Sprintf("quantity: %d exceeds the line limit", quantity))
			}
			line.Quantity += quantity
			if err := cartRepo.UpdateLineQuantity(ctx, line.ID, line.Quantity); err != nil {
				return fmt.Errorf("failed to update cart line: %w", err)
			}
		case errors.Is(err, repository.ErrCartLineNotFound):
			line = &entity.CartLine{
				ID:        uuid.Must(uuid.NewV7()),
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: product.Price,
				CreatedAt: s.now(),
				UpdatedAt: s.now(),
			}
			if err := cartRepo.CreateLine(ctx, line); err != nil {
				return fmt.Errorf("failed to create cart line: %w", err)
			}
		default:
			return fmt.Errorf("failed to find cart line: %w", err)
		}

		result = line

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(&entity.CartChange{Kind: entity.CartChangeItemAdded, LineID: &result.ID})

	return result, nil
}

// ListCart returns every line joined with its product and the cart total
func (s *cartService) ListCart(ctx context.Context) (*entity.CartView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, err := s.cartRepo.ListCartItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	return entity.NewCartView(items), nil
}

// RemoveLine deletes a single cart line
func (s *cartService) RemoveLine(ctx context.Context, lineID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		if err := cartRepo.LockCart(ctx); err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}

		if err := cartRepo.DeleteLine(ctx, lineID); err != nil {
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound.WithDetails(lineID.String())
			}

			return fmt.Errorf("failed to delete cart line: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.notify(&entity.CartChange{Kind: entity.CartChangeItemRemoved, LineID: &lineID})

	return nil
}

// ClearCart deletes every line
func (s *cartService) ClearCart(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		if err := cartRepo.LockCart(ctx); err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}

		count, err := cartRepo.DeleteAllLines(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		removed = count

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.notify(&entity.CartChange{Kind: entity.CartChangeCleared, Removed: removed})

	return removed, nil
}

// Checkout snapshots the cart into a pending order and clears the cart atomically
func (s *cartService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if input == nil {
		input = &usecase.CheckoutInput{}
	}

	address := strings.TrimSpace(input.Address)
	if address == "" {
		address = s.defaultAddress
	}

	geoLocation := strings.TrimSpace(input.GeoLocation)
	if geoLocation == "" && s.locationProvider != nil {
		geoLocation = s.locationProvider.CurrentLocation().GeoString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var order *entity.Order

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		if err := cartRepo.LockCart(ctx); err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}

		lines, err := cartRepo.ListLines(ctx)
		if err != nil {
			return fmt.Errorf("failed to list cart lines: %w", err)
		}
		if len(lines) == 0 {
			return domainerrors.ErrEmptyCart
		}

		order = s.buildOrder(lines, address, geoLocation)

		if err := factory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if _, err := cartRepo.DeleteAllLines(ctx); err != nil {
			return fmt.Errorf("failed to clear cart after checkout: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("lines", len(order.Lines)),
	)

	s.publishOrderPlaced(ctx, logger, order)
	s.notify(&entity.CartChange{Kind: entity.CartChangeCheckedOut, OrderID: &order.ID})

	return order, nil
}

// buildOrder freezes the cart lines into a pending order.
func (s *cartService) buildOrder(lines []*entity.CartLine, address, geoLocation string) *entity.Order {
	order := &entity.Order{
		ID:          uuid.Must(uuid.NewV7()),
		Status:      entity.OrderStatusPending,
		Address:     address,
		GeoLocation: geoLocation,
		CreatedAt:   s.now(),
		Lines:       make([]*entity.OrderLine, 0, len(lines)),
	}

	total := decimal.Zero
	for _, line := range lines {
		orderLine := &entity.OrderLine{
			ID:        uuid.Must(uuid.NewV7()),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
		order.Lines = append(order.Lines, orderLine)
		total = total.Add(orderLine.Subtotal())
	}
	order.Total = total

	return order
}

// publishOrderPlaced runs after commit. A failed publish never undoes the order.
func (s *cartService) publishOrderPlaced(ctx context.Context, logger *slog.Logger, order *entity.Order) {
	if s.publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.OrderEventTypePlaced,
		Order:     entity.NewOrderPlacedEvent(order),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Error("Failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *cartService) notify(change *entity.CartChange) {
	if s.notifier == nil {
		return
	}

	change.OccurredAt = s.now()
	s.notifier.NotifyCartChanged(change)
}
