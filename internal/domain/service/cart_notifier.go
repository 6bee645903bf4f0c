package service

import (
	"storefront/internal/domain/entity"
)

// CartNotifier pushes committed cart changes to live subscribers
type CartNotifier interface {
	// NotifyCartChanged broadcasts a change. It must not block the caller.
	NotifyCartChanged(change *entity.CartChange)
}
