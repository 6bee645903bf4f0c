package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"queueUrl": "",
		},
		"motion": map[string]any{
			"shakeThreshold": 2.5,
		},
		"storeLocator": map[string]any{
			"maxDistanceKm": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_QUEUEURL", want: "pubsub.queueUrl"},
		{envKey: "MOTION_SHAKETHRESHOLD", want: "motion.shakeThreshold"},
		{envKey: "STORELOCATOR_MAXDISTANCEKM", want: "storeLocator.maxDistanceKm"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.True(t, cfg.Catalog.SeedOnStart)
	assert.Equal(t, 10.4236, cfg.Location.DefaultLatitude)
	assert.Equal(t, -75.5378, cfg.Location.DefaultLongitude)
	assert.Equal(t, 2.5, cfg.Motion.ShakeThreshold)
	assert.Equal(t, 2*time.Second, cfg.Motion.Cooldown)
	assert.True(t, cfg.Motion.ClearCartOnShake)
	assert.Equal(t, "Dirección de envío", cfg.Checkout.DefaultAddress)
	assert.Equal(t, 3.0, cfg.StoreLocator.ETAMinutesPerKm)
	assert.Len(t, cfg.StoreLocator.Stores, 4)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{Driver: "memory"},
		Motion: &MotionConfig{
			ShakeThreshold: 4,
			Cooldown:       5 * time.Second,
		},
		Checkout: &CheckoutConfig{DefaultAddress: "Calle 1"},
		StoreLocator: &StoreLocatorConfig{
			Stores: []StoreConfig{{ID: "only", Name: "Only"}},
		},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 4.0, cfg.Motion.ShakeThreshold)
	assert.Equal(t, 5*time.Second, cfg.Motion.Cooldown)
	assert.False(t, cfg.Motion.ClearCartOnShake)
	assert.Equal(t, "Calle 1", cfg.Checkout.DefaultAddress)
	require.Len(t, cfg.StoreLocator.Stores, 1)
	assert.Equal(t, "only", cfg.StoreLocator.Stores[0].ID)
}
