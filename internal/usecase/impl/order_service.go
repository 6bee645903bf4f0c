package impl

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repository.OrderRepository) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
	}
}

// GetOrder retrieves an order with its frozen lines
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails(id.String())
		}

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// ListOrders returns orders newest first
func (s *orderService) ListOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
