package realtime

import (
	"context"

	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

func newHub(lc fx.Lifecycle, hub *CartHub) service.CartNotifier {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

// Module provides the cart hub both as itself and as the CartNotifier
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCartHub),
	fx.Provide(newHub),
)
