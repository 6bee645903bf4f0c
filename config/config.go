package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultStorageDriver      = "postgres"
	defaultShakeThreshold     = 2.5
	defaultShakeCooldown      = 2 * time.Second
	defaultCheckoutAddress    = "Dirección de envío"
	defaultLatitude           = 10.4236
	defaultLongitude          = -75.5378
	defaultETAMinutesPerKm    = 3
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the persistence backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Catalog configuration for product loading
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Location configuration for the location provider
	Location *LocationConfig `json:"location" yaml:"location"`

	// Motion configuration for shake detection
	Motion *MotionConfig `json:"motion" yaml:"motion"`

	// Checkout configuration for order creation defaults
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// StoreLocator configuration for the nearby stores screen
	StoreLocator *StoreLocatorConfig `json:"storeLocator" yaml:"storeLocator"`

	// QRCode configuration for product QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for order push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Export configuration for catalog spreadsheet exports
	Export *ExportConfig `json:"export" yaml:"export"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines which persistence backend serves the repositories
type StorageConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates or updates the tables on start (postgres only)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// CatalogConfig defines catalog loading behavior
type CatalogConfig struct {
	// SeedOnStart loads the default catalog when the product table is empty
	SeedOnStart bool `json:"seedOnStart" yaml:"seedOnStart"`
}

// LocationConfig defines the fallback coordinate used until a real fix arrives
type LocationConfig struct {
	DefaultLatitude  float64 `json:"defaultLatitude" yaml:"defaultLatitude"`
	DefaultLongitude float64 `json:"defaultLongitude" yaml:"defaultLongitude"`
}

// MotionConfig defines shake detection parameters
type MotionConfig struct {
	// Acceleration magnitude that counts as a shake
	ShakeThreshold float64 `json:"shakeThreshold" yaml:"shakeThreshold"`

	// Minimum time between two shake events
	Cooldown time.Duration `json:"cooldown" yaml:"cooldown"`

	// Enable clearing the cart on shake
	ClearCartOnShake bool `json:"clearCartOnShake" yaml:"clearCartOnShake"`
}

// CheckoutConfig defines order creation defaults
type CheckoutConfig struct {
	DefaultAddress string `json:"defaultAddress" yaml:"defaultAddress"`
}

// StoreLocatorConfig defines the physical stores and distance settings
type StoreLocatorConfig struct {
	// Maximum distance in kilometers for a store to be listed (0 lists every store)
	MaxDistanceKm float64 `json:"maxDistanceKm" yaml:"maxDistanceKm"`

	// Estimated travel minutes per kilometer for navigation
	ETAMinutesPerKm float64 `json:"etaMinutesPerKm" yaml:"etaMinutesPerKm"`

	Stores []StoreConfig `json:"stores" yaml:"stores"`
}

// StoreConfig describes one physical store
type StoreConfig struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Address   string  `json:"address" yaml:"address"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Phone     string  `json:"phone" yaml:"phone"`
	Specialty string  `json:"specialty" yaml:"specialty"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub or "sqs" for Amazon SQS
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// SQS queue URL (for sqs provider)
	QueueURL string `json:"queueUrl" yaml:"queueUrl"`

	// AWS region (for sqs provider)
	Region string `json:"region" yaml:"region"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// Topic the storefront app subscribes to for order updates
	Topic string `json:"topic" yaml:"topic"`
}

// ExportConfig defines where catalog exports are written
type ExportConfig struct {
	// BucketURL is a gocloud blob URL, e.g. file:///tmp/exports or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	ApplyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section left empty by the config file.
func ApplyDefaults(cfg *Config) {
	if cfg.Storage == nil || strings.TrimSpace(cfg.Storage.Driver) == "" {
		cfg.Storage = &StorageConfig{Driver: defaultStorageDriver}
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{SeedOnStart: true}
	}

	if cfg.Location == nil {
		cfg.Location = &LocationConfig{
			DefaultLatitude:  defaultLatitude,
			DefaultLongitude: defaultLongitude,
		}
	}

	if cfg.Motion == nil {
		cfg.Motion = &MotionConfig{ClearCartOnShake: true}
	}
	if cfg.Motion.ShakeThreshold <= 0 {
		cfg.Motion.ShakeThreshold = defaultShakeThreshold
	}
	if cfg.Motion.Cooldown <= 0 {
		cfg.Motion.Cooldown = defaultShakeCooldown
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if strings.TrimSpace(cfg.Checkout.DefaultAddress) == "" {
		cfg.Checkout.DefaultAddress = defaultCheckoutAddress
	}

	if cfg.StoreLocator == nil {
		cfg.StoreLocator = &StoreLocatorConfig{}
	}
	if cfg.StoreLocator.ETAMinutesPerKm <= 0 {
		cfg.StoreLocator.ETAMinutesPerKm = defaultETAMinutesPerKm
	}
	if len(cfg.StoreLocator.Stores) == 0 {
		cfg.StoreLocator.Stores = DefaultStores()
	}
}

// DefaultStores returns the stores listed when none are configured.
func DefaultStores() []StoreConfig {
	return []StoreConfig{
		{ID: "computerworking", Name: "Computerworking", Address: "Calle 32 #25-45", Latitude: 10.4250, Longitude: -75.5390, Phone: "300-123-4567", Specialty: "Procesadores y GPUs"},
		{ID: "compulago", Name: "Compulago", Address: "Av. Pedro de Heredia #85-12", Latitude: 10.4300, Longitude: -75.5340, Phone: "300-234-5678", Specialty: "RAM y Almacenamiento"},
		{ID: "computo-segunda-mano", Name: "Computo Segunda mano", Address: "Cra 17 #45-23", Latitude: 10.4150, Longitude: -75.5450, Phone: "300-345-6789", Specialty: "Motherboards y Fuentes"},
		{ID: "celuclock", Name: "Celuclock", Address: "Centro Comercial la castellana", Latitude: 10.4100, Longitude: -75.5500, Phone: "300-456-7890", Specialty: "Celulares y Accesorios"},
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
