package sensor

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestLocationTracker_DefaultUntilFix(t *testing.T) {
	tracker := NewLocationTracker(&config.Config{
		Location: &config.LocationConfig{DefaultLatitude: 10.4236, DefaultLongitude: -75.5378},
	})

	assert.Equal(t, entity.Coordinate{Latitude: 10.4236, Longitude: -75.5378}, tracker.CurrentLocation())
	assert.False(t, tracker.HasFix())

	require.NoError(t, tracker.PushLocation(entity.Coordinate{Latitude: 10.43, Longitude: -75.54}))

	assert.Equal(t, entity.Coordinate{Latitude: 10.43, Longitude: -75.54}, tracker.CurrentLocation())
	assert.True(t, tracker.HasFix())
}

func TestLocationTracker_RejectsInvalidFix(t *testing.T) {
	tracker := NewLocationTracker(nil)

	err := tracker.PushLocation(entity.Coordinate{Latitude: 120, Longitude: 0})

	assert.Error(t, err)
	assert.False(t, tracker.HasFix())
}

func TestLocationTracker_ConcurrentPushesKeepOrder(t *testing.T) {
	tracker := NewLocationTracker(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := tracker.Updates(ctx)

	var wg sync.WaitGroup
	for i := range subscriberBuffer {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, tracker.PushLocation(entity.Coordinate{Latitude: float64(i), Longitude: float64(i)}))
		}()
	}
	wg.Wait()

	var last entity.LocationFix
	for range subscriberBuffer {
		select {
		case last = <-updates:
		case <-time.After(time.Second):
			t.Fatal("expected a location fix")
		}
	}

	assert.Equal(t, tracker.CurrentLocation(), last.Coordinate)
}

func TestLocationTracker_Updates(t *testing.T) {
	tracker := NewLocationTracker(nil)
	ctx, cancel := context.WithCancel(context.Background())

	updates := tracker.Updates(ctx)
	require.NoError(t, tracker.PushLocation(entity.Coordinate{Latitude: 1, Longitude: 2}))

	select {
	case fix := <-updates:
		assert.Equal(t, 1.0, fix.Latitude)
		assert.Equal(t, 2.0, fix.Longitude)
	case <-time.After(time.Second):
		t.Fatal("expected a location fix")
	}

	cancel()
	select {
	case _, open := <-updates:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("expected the update stream to close")
	}
}

func TestShakeDetector_ThresholdAndCooldown(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	detector := NewShakeDetector(nil)
	detector.now = clock.Now

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := detector.OnShake(ctx, 2.5, 2*time.Second)

	// Magnitude 1 stays below the threshold.
	assert.False(t, detector.PushSample(entity.AccelerationSample{X: 1}))

	// Magnitude 3 fires.
	assert.True(t, detector.PushSample(entity.AccelerationSample{X: 3}))
	event := <-events
	assert.InDelta(t, 3.0, event.Magnitude, 1e-9)
	assert.False(t, event.Simulated)

	// Inside the cooldown nothing fires.
	clock.Advance(2 * time.Second)
	assert.False(t, detector.PushSample(entity.AccelerationSample{X: 3}))

	// After the cooldown it fires again.
	clock.Advance(time.Millisecond)
	assert.True(t, detector.PushSample(entity.AccelerationSample{X: 2, Y: 2, Z: 2}))
	event = <-events
	assert.InDelta(t, 3.4641, event.Magnitude, 1e-4)
}

func TestShakeDetector_ExactThresholdDoesNotFire(t *testing.T) {
	detector := NewShakeDetector(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = detector.OnShake(ctx, 2.5, time.Second)

	assert.False(t, detector.PushSample(entity.AccelerationSample{X: 2.5}))
}

func TestShakeDetector_Simulate(t *testing.T) {
	detector := NewShakeDetector(&config.Config{Motion: &config.MotionConfig{ShakeThreshold: 3, Cooldown: time.Second}})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := detector.OnShake(ctx, 0, 0)

	detector.Simulate()

	select {
	case event := <-events:
		assert.True(t, event.Simulated)
	case <-time.After(time.Second):
		t.Fatal("expected a simulated shake")
	}
}

func TestShakeDetector_NoSubscribers(t *testing.T) {
	detector := NewShakeDetector(nil)

	assert.False(t, detector.PushSample(entity.AccelerationSample{X: 10}))
}
