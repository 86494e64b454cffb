package config

import (
	"net"
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
	defaultCookieName         = "auth_token"
	defaultTokenMinLength     = 32
	defaultTokenMaxLength     = 4096
	defaultSessionTouch       = 3 * time.Second
	defaultRateLimitKeyPrefix = "ratelimit:"
	defaultCleanupInterval    = time.Minute

	minSecretLength = 32

	// EnvProduction enables production-only behavior such as Secure cookies.
	EnvProduction = "production"

	// RateLimitStoreMemory keeps counters in process memory.
	RateLimitStoreMemory = "memory"
	// RateLimitStoreRedis shares counters across instances through Redis.
	RateLimitStoreRedis = "redis"
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
		// TrustedProxies lists the CIDRs whose X-Forwarded-For is believed.
		// Empty means the client address is the TCP peer.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey holds the process-wide token signing secret. Rotating it invalidates every issued token.
	SecretKey struct {
		Token string `json:"token" yaml:"token"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Redis is only required when RateLimit.Store is "redis".
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost          int                         `json:"bcryptCost" yaml:"bcryptCost"`
	Cookie              CookieConfig                `json:"cookie" yaml:"cookie"`
	Token               TokenConfig                 `json:"token" yaml:"token"`
	SessionTouchTimeout time.Duration               `json:"sessionTouchTimeout" yaml:"sessionTouchTimeout"`
	Roles               map[string]RolePolicyConfig `json:"roles" yaml:"roles"`
}

// CookieConfig controls the web-channel cookie.
type CookieConfig struct {
	Name string `json:"name" yaml:"name"`
	// Secure forces the Secure flag outside production.
	Secure bool `json:"secure" yaml:"secure"`
}

// TokenConfig controls token shape checks and claims.
type TokenConfig struct {
	Issuer    string `json:"issuer" yaml:"issuer"`
	MinLength int    `json:"minLength" yaml:"minLength"`
	MaxLength int    `json:"maxLength" yaml:"maxLength"`
}

// RolePolicyConfig is the configured policy of one role.
type RolePolicyConfig struct {
	TokenLifetime         time.Duration `json:"tokenLifetime" yaml:"tokenLifetime"`
	DeviceBindingRequired bool          `json:"deviceBindingRequired" yaml:"deviceBindingRequired"`
	AllowedPlatforms      []string      `json:"allowedPlatforms" yaml:"allowedPlatforms"`
}

// RateLimitConfig defines the request-volume governor.
type RateLimitConfig struct {
	Store           string        `json:"store" yaml:"store"`
	KeyPrefix       string        `json:"keyPrefix" yaml:"keyPrefix"`
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
	Tiers           TierSet       `json:"tiers" yaml:"tiers"`
}

// TierSet groups the three rate limit tiers.
type TierSet struct {
	Login    TierConfig `json:"login" yaml:"login"`
	Critical TierConfig `json:"critical" yaml:"critical"`
	General  TierConfig `json:"general" yaml:"general"`
}

// TierConfig is the fixed window and ceiling of a tier.
type TierConfig struct {
	Window time.Duration `json:"window" yaml:"window"`
	Limit  int           `json:"limit" yaml:"limit"`
}

// RedisConfig defines the shared counter store connection.
type RedisConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Password     string        `json:"password" yaml:"password"`
	DB           int           `json:"db" yaml:"db"`
	PoolSize     int           `json:"poolSize" yaml:"poolSize"`
	DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// TrustedProxyNets parses http.trustedProxies.
func (c *Config) TrustedProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.HTTP.TrustedProxies))
	for _, cidr := range c.HTTP.TrustedProxies {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, errors.Wrapf(err, "http.trustedProxies: invalid CIDR %q", cidr)
		}
		nets = append(nets, ipNet)
	}

	return nets, nil
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

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills in everything the auth core cannot run without.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Cookie.Name == "" {
		cfg.Auth.Cookie.Name = defaultCookieName
	}
	if cfg.Auth.Token.MinLength <= 0 {
		cfg.Auth.Token.MinLength = defaultTokenMinLength
	}
	if cfg.Auth.Token.MaxLength <= 0 {
		cfg.Auth.Token.MaxLength = defaultTokenMaxLength
	}
	if cfg.Auth.SessionTouchTimeout <= 0 {
		cfg.Auth.SessionTouchTimeout = defaultSessionTouch
	}
	if cfg.Auth.Roles == nil {
		cfg.Auth.Roles = DefaultRolePolicies()
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.Store == "" {
		cfg.RateLimit.Store = RateLimitStoreMemory
	}
	if cfg.RateLimit.KeyPrefix == "" {
		cfg.RateLimit.KeyPrefix = defaultRateLimitKeyPrefix
	}
	if cfg.RateLimit.CleanupInterval <= 0 {
		cfg.RateLimit.CleanupInterval = defaultCleanupInterval
	}
	defaults := DefaultTiers()
	tiers := &cfg.RateLimit.Tiers
	if tiers.Login == (TierConfig{}) {
		tiers.Login = defaults.Login
	}
	if tiers.Critical == (TierConfig{}) {
		tiers.Critical = defaults.Critical
	}
	if tiers.General == (TierConfig{}) {
		tiers.General = defaults.General
	}
}

// DefaultRolePolicies returns the built-in role policies: admins are web only,
// inspectors are mobile only and device bound.
func DefaultRolePolicies() map[string]RolePolicyConfig {
	return map[string]RolePolicyConfig{
		"admin": {
			TokenLifetime:         8 * time.Hour,
			DeviceBindingRequired: false,
			AllowedPlatforms:      []string{"web"},
		},
		"inspector": {
			TokenLifetime:         12 * time.Hour,
			DeviceBindingRequired: true,
			AllowedPlatforms:      []string{"android", "ios"},
		},
	}
}

// DefaultTiers returns the built-in rate limit tiers.
func DefaultTiers() TierSet {
	return TierSet{
		Login:    TierConfig{Window: 15 * time.Minute, Limit: 10},
		Critical: TierConfig{Window: time.Minute, Limit: 30},
		General:  TierConfig{Window: time.Minute, Limit: 50},
	}
}

// Validate rejects configurations the auth core cannot run safely with.
func (c *Config) Validate() error {
	if len(c.SecretKey.Token) < minSecretLength {
		return errors.Errorf("secretKey.token must be at least %d bytes", minSecretLength)
	}

	if c.Auth.Token.MinLength > c.Auth.Token.MaxLength {
		return errors.New("auth.token.minLength must not exceed auth.token.maxLength")
	}

	for name, policy := range c.Auth.Roles {
		if policy.TokenLifetime <= 0 {
			return errors.Errorf("auth.roles.%s.tokenLifetime must be positive", name)
		}
	}

	for name, tier := range map[string]TierConfig{
		"login":    c.RateLimit.Tiers.Login,
		"critical": c.RateLimit.Tiers.Critical,
		"general":  c.RateLimit.Tiers.General,
	} {
		if tier.Window <= 0 || tier.Limit <= 0 {
			return errors.Errorf("rateLimit.tiers.%s needs a positive window and limit", name)
		}
	}

	if _, err := c.TrustedProxyNets(); err != nil {
		return err
	}

	switch strings.ToLower(c.RateLimit.Store) {
	case RateLimitStoreMemory:
	case RateLimitStoreRedis:
		if c.Redis == nil || c.Redis.Addr == "" {
			return errors.New("rateLimit.store is redis but redis.addr is empty")
		}
	default:
		return errors.Errorf("unknown rateLimit.store %q", c.RateLimit.Store)
	}

	return nil
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
