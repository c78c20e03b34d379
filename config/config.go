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

	// EnvPrefix namespaces environment overrides, e.g. PAINEL_TENANT_STRATEGY.
	EnvPrefix = "PAINEL_"
	// EnvConfigFile points at an explicit config file, bypassing the search paths.
	EnvConfigFile = EnvPrefix + "CONFIG"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres is optional; the API falls back to in-memory repositories without it.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Seed *SeedConfig `json:"seed" yaml:"seed"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Backend *BackendConfig `json:"backend" yaml:"backend"`

	Tenant *TenantConfig `json:"tenant" yaml:"tenant"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Navigation *NavigationConfig `json:"navigation" yaml:"navigation"`

	// QRCode configuration for tenant link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// SeedConfig describes the tenant and administrator created on an empty API store.
type SeedConfig struct {
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	Tenant        string `json:"tenant" yaml:"tenant"`
	TenantName    string `json:"tenantName" yaml:"tenantName"`
	AdminUsername string `json:"adminUsername" yaml:"adminUsername"`
	AdminPassword string `json:"adminPassword" yaml:"adminPassword"`
}

// RateLimitConfig bounds login attempts per client address.
type RateLimitConfig struct {
	LoginPerMinute int `json:"loginPerMinute" yaml:"loginPerMinute"`
	Burst          int `json:"burst" yaml:"burst"`
}

// BackendConfig is where the client sends API calls.
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// TenantConfig controls tenant resolution.
type TenantConfig struct {
	// Strategy is one of subdomain, query or path.
	Strategy string `json:"strategy" yaml:"strategy"`
	// Default pre-fills the tenant picker; it never counts as a selection.
	Default    string `json:"default" yaml:"default"`
	BaseDomain string `json:"baseDomain" yaml:"baseDomain"`
	QueryParam string `json:"queryParam" yaml:"queryParam"`
	PathPrefix string `json:"pathPrefix" yaml:"pathPrefix"`
	Header     string `json:"header" yaml:"header"`
	// DashboardURL is the location the client starts from and builds links against.
	DashboardURL string `json:"dashboardUrl" yaml:"dashboardUrl"`
}

// StorageConfig selects the persisted state driver.
type StorageConfig struct {
	// Driver is one of memory, file or redis.
	Driver string       `json:"driver" yaml:"driver"`
	Path   string       `json:"path" yaml:"path"`
	Redis  *RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// NavigationConfig bounds redirect attempts.
type NavigationConfig struct {
	MaxAttempts   int           `json:"maxAttempts" yaml:"maxAttempts"`
	ArrivalWait   time.Duration `json:"arrivalWait" yaml:"arrivalWait"`
	LoginPath     string        `json:"loginPath" yaml:"loginPath"`
	DashboardPath string        `json:"dashboardPath" yaml:"dashboardPath"`
	// Launchers are commands tried in order to open a URL; "{url}" is substituted.
	Launchers []string `json:"launchers" yaml:"launchers"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf and overlays PAINEL_ environment variables.
// A missing file is only an error when required is set.
func LoadWithEnv[T any](currEnv string, required bool, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, found, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if !found && required {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if found {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// PAINEL_TENANT_BASEDOMAIN -> tenant.baseDomain
			key := canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap)
			if key == "config" {
				return "", nil
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
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

func findConfigFile(currEnv string, configPath ...string) (string, bool, error) {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", false, errors.Wrapf(err, "config file %s", explicit)
		}

		return explicit, true, nil
	}

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", false, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		}
	}

	return "", false, nil
}

// New loads the API configuration. The config file is required.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", true, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// PAINEL_POSTGRES_REPLICAS_0_HOST, PAINEL_POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, cfg.Validate()
}

// NewClient loads the CLI configuration. Without a config file every value comes from
// defaults and PAINEL_ variables.
func NewClient() (*Config, error) {
	paths := []string{"config", "../config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "painel"))
	}

	cfg, err := LoadWithEnv[Config]("config", false, paths...)
	if err != nil {
		return nil, err
	}

	// command output goes to stdout, so only problems are logged by default
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "warn"
	}
	cfg.applyDefaults()

	return cfg, cfg.Validate()
}

func (c *Config) applyDefaults() {
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = "painel"
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 8 * time.Hour
	}

	if c.Seed == nil {
		c.Seed = &SeedConfig{Enabled: true}
	}
	if c.Seed.Tenant == "" {
		c.Seed.Tenant = "demo"
	}
	if c.Seed.TenantName == "" {
		c.Seed.TenantName = "Município Demonstração"
	}
	if c.Seed.AdminUsername == "" {
		c.Seed.AdminUsername = "admin"
	}
	if c.Seed.AdminPassword == "" {
		c.Seed.AdminPassword = "123456"
	}

	if c.RateLimit == nil {
		c.RateLimit = &RateLimitConfig{}
	}
	if c.RateLimit.LoginPerMinute == 0 {
		c.RateLimit.LoginPerMinute = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 5
	}

	if c.Backend == nil {
		c.Backend = &BackendConfig{}
	}
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8080"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 15 * time.Second
	}

	c.applyClientDefaults()
}

func (c *Config) applyClientDefaults() {
	if c.Tenant == nil {
		c.Tenant = &TenantConfig{}
	}
	if c.Tenant.Strategy == "" {
		c.Tenant.Strategy = "query"
	}
	if c.Tenant.QueryParam == "" {
		c.Tenant.QueryParam = "tenant"
	}
	if c.Tenant.Header == "" {
		c.Tenant.Header = "X-Subdomain"
	}
	if c.Tenant.DashboardURL == "" {
		c.Tenant.DashboardURL = "http://localhost:5173/"
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "file"
	}
	if c.Storage.Driver == "file" && c.Storage.Path == "" {
		c.Storage.Path = defaultStatePath()
	}
	if c.Storage.Redis != nil && c.Storage.Redis.Namespace == "" {
		c.Storage.Redis.Namespace = "painel:state"
	}

	if c.Navigation == nil {
		c.Navigation = &NavigationConfig{}
	}
	if c.Navigation.MaxAttempts == 0 {
		c.Navigation.MaxAttempts = 3
	}
	if c.Navigation.ArrivalWait == 0 {
		c.Navigation.ArrivalWait = 2 * time.Second
	}
	if c.Navigation.LoginPath == "" {
		c.Navigation.LoginPath = "/login"
	}
	if c.Navigation.DashboardPath == "" {
		c.Navigation.DashboardPath = "/dashboard"
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size == 0 {
		c.QRCode.Size = 256
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = "medium"
	}
}

// Validate rejects values the application cannot run with.
func (c *Config) Validate() error {
	switch c.Tenant.Strategy {
	case "subdomain":
		if c.Tenant.BaseDomain == "" {
			return errors.New("tenant.baseDomain is required for the subdomain strategy")
		}
	case "query", "path":
	default:
		return errors.Errorf("unknown tenant.strategy %q", c.Tenant.Strategy)
	}

	switch c.Storage.Driver {
	case "memory", "file":
	case "redis":
		if c.Storage.Redis == nil || c.Storage.Redis.Addr == "" {
			return errors.New("storage.redis.addr is required for the redis driver")
		}
	default:
		return errors.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	if c.Navigation.MaxAttempts < 1 {
		return errors.New("navigation.maxAttempts must be at least 1")
	}

	return nil
}

func defaultStatePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "painel", "state.json")
	}

	return filepath.Join(os.TempDir(), "painel-state.json")
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

// buildReplicasFromEnv reads PAINEL_POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := EnvPrefix + "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
