package sensor

import (
	"context"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
)

type shakeSubscription struct {
	ch        chan entity.ShakeEvent
	threshold float64
	cooldown  time.Duration
	lastShake time.Time
}

// ShakeDetector turns accelerometer readings into shake events.
// Every subscription applies its own threshold and cooldown.
type ShakeDetector struct {
	mu     sync.Mutex
	subs   map[int]*shakeSubscription
	nextID int
	now    func() time.Time

	defaultThreshold float64
	defaultCooldown  time.Duration
}

// NewShakeDetector creates a detector. Subscriptions with non-positive settings use the configured ones.
func NewShakeDetector(cfg *config.Config) *ShakeDetector {
	detector := &ShakeDetector{
		subs:             make(map[int]*shakeSubscription),
		now:              time.Now,
		defaultThreshold: 2.5,
		defaultCooldown:  2 * time.Second,
	}

	if cfg != nil && cfg.Motion != nil {
		if cfg.Motion.ShakeThreshold > 0 {
			detector.defaultThreshold = cfg.Motion.ShakeThreshold
		}
		if cfg.Motion.Cooldown > 0 {
			detector.defaultCooldown = cfg.Motion.Cooldown
		}
	}

	return detector
}

// OnShake subscribes to shake events. The channel closes when ctx is done.
func (d *ShakeDetector) OnShake(ctx context.Context, threshold float64, cooldown time.Duration) <-chan entity.ShakeEvent {
	if threshold <= 0 {
		threshold = d.defaultThreshold
	}
	if cooldown <= 0 {
		cooldown = d.defaultCooldown
	}

	sub := &shakeSubscription{
		ch:        make(chan entity.ShakeEvent, 1),
		threshold: threshold,
		cooldown:  cooldown,
	}

	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.subs[id] = sub
	d.mu.Unlock()

	go func() {
		<-ctx.Done()

		d.mu.Lock()
		delete(d.subs, id)
		d.mu.Unlock()
		close(sub.ch)
	}()

	return sub.ch
}

// PushSample evaluates a reading. A shake needs a magnitude above the threshold and
// more than the cooldown since the previous shake of that subscription.
func (d *ShakeDetector) PushSample(sample entity.AccelerationSample) bool {
	magnitude := sample.Magnitude()
	now := d.now()
	fired := false

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, sub := range d.subs {
		if magnitude <= sub.threshold {
			continue
		}
		if !sub.lastShake.IsZero() && now.Sub(sub.lastShake) <= sub.cooldown {
			continue
		}

		sub.lastShake = now
		fired = true
		d.emit(sub, entity.ShakeEvent{Magnitude: magnitude, DetectedAt: now})
	}

	return fired
}

// Simulate emits a shake event to every subscriber.
func (d *ShakeDetector) Simulate() {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, sub := range d.subs {
		sub.lastShake = now
		d.emit(sub, entity.ShakeEvent{DetectedAt: now, Simulated: true})
	}
}

// emit drops the event when the subscriber still has one pending.
func (d *ShakeDetector) emit(sub *shakeSubscription, event entity.ShakeEvent) {
	select {
	case sub.ch <- event:
	default:
	}
}
