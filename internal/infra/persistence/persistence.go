// Package persistence selects the storage backend for the repositories.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the storage backend, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the transaction manager and the repositories of the selected backend.
type Result struct {
	fx.Out

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
}

// New builds the repositories for storage.driver ("postgres" by default, or "memory").
func New(params Params) (Result, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverMemory:
		params.Logger.Info("Using in-memory storage")

		store := memory.NewStore()
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return Result{
			TxManager:   memory.NewTransactionManager(store),
			ProductRepo: memory.NewProductRepository(store),
			CartRepo:    memory.NewCartRepository(store),
			OrderRepo:   memory.NewOrderRepository(store),
		}, nil

	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			TxManager:   postgres.NewTransactionManager(db),
			ProductRepo: postgres.NewProductRepository(db),
			CartRepo:    postgres.NewCartRepository(db),
			OrderRepo:   postgres.NewOrderRepository(db),
		}, nil

	default:
		return Result{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
