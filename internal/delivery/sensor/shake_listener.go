// Package sensor reacts to device sensor events.
package sensor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type shakeListener struct {
	motion    service.MotionProvider
	cartUC    usecase.CartUsecase
	threshold float64
	cooldown  time.Duration
	enabled   bool
	logger    *slog.Logger

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	done    chan struct{}
}

// ShakeListenerParams holds dependencies for the shake listener, injected by Fx.
type ShakeListenerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Motion service.MotionProvider
	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// NewShakeListener creates the delivery that clears the cart when the device is shaken
func NewShakeListener(params ShakeListenerParams) delivery.Delivery {
	listener := newShakeListener(params.Motion, params.CartUC, params.Cfg.Motion, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return listener.stop(ctx)
		},
	})

	return listener
}

func newShakeListener(motion service.MotionProvider, cartUC usecase.CartUsecase, cfg *config.MotionConfig, logger *slog.Logger) *shakeListener {
	l := &shakeListener{
		motion: motion,
		cartUC: cartUC,
		logger: logger,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	if cfg != nil {
		l.threshold = cfg.ShakeThreshold
		l.cooldown = cfg.Cooldown
		l.enabled = cfg.ClearCartOnShake
	}

	return l
}

// Serve subscribes to shake events and clears the cart on each one
func (l *shakeListener) Serve(ctx context.Context) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()

		return nil
	}
	l.started = true
	l.mu.Unlock()

	defer close(l.done)

	if !l.enabled {
		l.logger.Info("Shake to clear cart disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := l.motion.OnShake(ctx, l.threshold, l.cooldown)
	l.logger.Info("Listening for shake events",
		slog.Float64("threshold", l.threshold),
		slog.Duration("cooldown", l.cooldown),
	)

	for {
		select {
		case <-l.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}

			requestID := uuid.New().String()
			reqLogger := l.logger.With(slog.String("request_id", requestID))
			eventCtx := deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), reqLogger)

			removed, err := l.cartUC.ClearCart(eventCtx)
			if err != nil {
				reqLogger.Error("Failed to clear cart after shake", slog.Any("error", err))

				continue
			}

			reqLogger.Info("Cart cleared by shake",
				slog.Int64("removed", removed),
				slog.Float64("magnitude", event.Magnitude),
				slog.Bool("simulated", event.Simulated),
			)
		}
	}
}

// stop waits for a running Serve to return. A listener that never started has nothing to wait for.
func (l *shakeListener) stop(ctx context.Context) error {
	l.mu.Lock()
	started := l.started
	if !l.stopped {
		l.stopped = true
		close(l.stopCh)
	}
	l.mu.Unlock()

	if !started {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-l.done:
	case <-waitCtx.Done():
	}

	return nil
}
