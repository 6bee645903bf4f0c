package sensor

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestShakeListener_ClearsCartOnShake(t *testing.T) {
	motion := mockService.NewMockMotionProvider(t)
	cartUC := mockUsecase.NewMockCartUsecase(t)
	cfg := &config.MotionConfig{ShakeThreshold: 2.5, Cooldown: 2 * time.Second, ClearCartOnShake: true}

	events := make(chan entity.ShakeEvent, 2)
	motion.EXPECT().
		OnShake(mock.Anything, 2.5, 2*time.Second).
		Return((<-chan entity.ShakeEvent)(events))

	cleared := make(chan struct{}, 2)
	cartUC.EXPECT().ClearCart(mock.Anything).
		Return(int64(0), errors.New("store down")).Once()
	cartUC.EXPECT().ClearCart(mock.Anything).
		Run(func(context.Context) { cleared <- struct{}{} }).
		Return(int64(3), nil).Once()

	listener := newShakeListener(motion, cartUC, cfg, discardLogger())
	done := make(chan error, 1)
	go func() { done <- listener.Serve(context.Background()) }()

	events <- entity.ShakeEvent{Magnitude: 3.1, DetectedAt: time.Now()}
	events <- entity.ShakeEvent{Simulated: true, DetectedAt: time.Now()}

	select {
	case <-cleared:
	case <-time.After(time.Second):
		t.Fatal("cart was not cleared")
	}

	require.NoError(t, listener.stop(context.Background()))
	assert.NoError(t, <-done)
}

func TestShakeListener_Disabled(t *testing.T) {
	motion := mockService.NewMockMotionProvider(t)
	cartUC := mockUsecase.NewMockCartUsecase(t)

	listener := newShakeListener(motion, cartUC, &config.MotionConfig{ClearCartOnShake: false}, discardLogger())

	assert.NoError(t, listener.Serve(context.Background()))
}

func TestShakeListener_StopsWhenChannelCloses(t *testing.T) {
	motion := mockService.NewMockMotionProvider(t)
	cartUC := mockUsecase.NewMockCartUsecase(t)

	events := make(chan entity.ShakeEvent)
	close(events)
	motion.EXPECT().
		OnShake(mock.Anything, mock.Anything, mock.Anything).
		Return((<-chan entity.ShakeEvent)(events))

	listener := newShakeListener(motion, cartUC, &config.MotionConfig{ClearCartOnShake: true}, discardLogger())

	assert.NoError(t, listener.Serve(context.Background()))
}

func TestShakeListener_StopWithoutServe(t *testing.T) {
	motion := mockService.NewMockMotionProvider(t)
	cartUC := mockUsecase.NewMockCartUsecase(t)

	listener := newShakeListener(motion, cartUC, &config.MotionConfig{ClearCartOnShake: true}, discardLogger())

	stopped := make(chan error, 1)
	go func() { stopped <- listener.stop(context.Background()) }()

	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stop waited for a listener that never started")
	}

	assert.NoError(t, listener.Serve(context.Background()))
	assert.NoError(t, listener.stop(context.Background()))
}
