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
	defaultGeocoderProvider   = "yandex"
	defaultGeocoderTimeout    = 5 * time.Second
	defaultMatchingWorkers    = 8
	defaultWorkerPort         = 8081
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultMaxLoggedSQLLength = 2048
	defaultPoolMonitorPeriod  = 5 * time.Second
	defaultPoolWaitWarn       = 50 * time.Millisecond
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes query logging and pool monitoring on top of the connector
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Worker configuration for the geo worker push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Geocoder configuration for the external address lookup provider
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// Matching configuration for the order-to-restaurant batch
	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	// PubSub configuration for geocode refresh events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines query logging and pool monitoring settings
type DatabaseConfig struct {
	// Queries slower than this are logged at WARN
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// Logged SQL is cut to this many bytes; geocode preloads carry long IN lists
	MaxLoggedSQLLength int `json:"maxLoggedSqlLength" yaml:"maxLoggedSqlLength"`

	// How often connection pool wait statistics are sampled
	PoolMonitorPeriod time.Duration `json:"poolMonitorPeriod" yaml:"poolMonitorPeriod"`

	// Pool waits longer than this in one period are logged at WARN
	PoolWaitWarn time.Duration `json:"poolWaitWarn" yaml:"poolWaitWarn"`
}

// WorkerConfig defines the geo worker HTTP server
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// GeocoderConfig defines the geocoding provider configuration
type GeocoderConfig struct {
	// Provider name, only "yandex" is supported
	Provider string `json:"provider" yaml:"provider"`

	APIKey string `json:"apiKey" yaml:"apiKey"`

	// BaseURL overrides the provider endpoint (used by tests and proxies)
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Lang is the response language, e.g. "ru_RU"
	Lang string `json:"lang" yaml:"lang"`

	// Timeout bounds every single provider call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// MatchingConfig defines the batch matching configuration
type MatchingConfig struct {
	// Number of concurrent geocode resolutions
	Workers int `json:"workers" yaml:"workers"`

	// Upper bound for a whole batch run, zero means no bound
	BatchTimeout time.Duration `json:"batchTimeout" yaml:"batchTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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

	// Try to find and load the config file
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

	// Load YAML config file
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
				// Case-insensitive matching for env var overrides
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

	applyGeocoderDefaults(cfg)
	applyMatchingDefaults(cfg)
	applyDatabaseDefaults(cfg)
	applyWorkerDefaults(cfg)

	if cfg.Postgres == nil {
		return nil, errors.New("postgres section is required")
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyGeocoderDefaults(cfg *Config) {
	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{}
	}
	if cfg.Geocoder.Provider == "" {
		cfg.Geocoder.Provider = defaultGeocoderProvider
	}
	if cfg.Geocoder.Timeout <= 0 {
		cfg.Geocoder.Timeout = defaultGeocoderTimeout
	}
}

func applyMatchingDefaults(cfg *Config) {
	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{}
	}
	if cfg.Matching.Workers <= 0 {
		cfg.Matching.Workers = defaultMatchingWorkers
	}
}

func applyDatabaseDefaults(cfg *Config) {
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.Database.MaxLoggedSQLLength <= 0 {
		cfg.Database.MaxLoggedSQLLength = defaultMaxLoggedSQLLength
	}
	if cfg.Database.PoolMonitorPeriod <= 0 {
		cfg.Database.PoolMonitorPeriod = defaultPoolMonitorPeriod
	}
	if cfg.Database.PoolWaitWarn <= 0 {
		cfg.Database.PoolWaitWarn = defaultPoolWaitWarn
	}
}

func applyWorkerDefaults(cfg *Config) {
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
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
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
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
