package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"crush-hub/internal/crushcfg"
	"crush-hub/internal/env"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

/**
 * Server configuration parameters
 * @property {string} address - Server listening address (e.g. ":3000")
 * @property {string} mode - gin mode (debug/release/test)
 * @property {time.Duration} shutdown_timeout - grace period for in-flight requests
 * @property {[]string} trusted_proxies - proxies allowed to set X-Forwarded-For, none by default
 * @property {bool} enable_reload - expose POST /api/v1/reload, off by default
 */
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	TrustedProxies  []string      `mapstructure:"trusted_proxies"`
	EnableReload    bool          `mapstructure:"enable_reload"`
}

/**
 * Logging configuration
 * @property {string} level - Log level (debug/info/warn/error)
 * @property {string} path - Log file path, "console" or empty for stdout
 */
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

/**
 * Public origin inputs for base URL resolution
 * @property {string} base_url - operator override, used verbatim
 * @property {string} deployment_host - hostname injected by the hosting platform
 */
type PublicConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	DeploymentHost string `mapstructure:"deployment_host"`
}

/**
 * Download redirect settings
 * @property {float64} rate_limit - redirects per second per client, 0 disables limiting
 * @property {int} burst - token bucket size
 * @property {int} cache_max_age - Cache-Control max-age of redirects, in seconds
 */
type DownloadConfig struct {
	RateLimit   float64 `mapstructure:"rate_limit"`
	Burst       int     `mapstructure:"burst"`
	CacheMaxAge int     `mapstructure:"cache_max_age"`
}

type AppConfig struct {
	Server   ServerConfig       `mapstructure:"server"`
	Log      LogConfig          `mapstructure:"log"`
	Public   PublicConfig       `mapstructure:"public"`
	Download DownloadConfig     `mapstructure:"download"`
	Template crushcfg.Overrides `mapstructure:"template"`
}

var ErrInvalidMode = errors.New("invalid server mode")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":3000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.enable_reload", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "console")
	v.SetDefault("public.base_url", "")
	v.SetDefault("public.deployment_host", "")
	v.SetDefault("download.rate_limit", 0)
	v.SetDefault("download.burst", 10)
	v.SetDefault("download.cache_max_age", 300)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(env.CrushHubDir)

	v.SetEnvPrefix("CRUSH_HUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Names used by the hosting platforms take part in the lookup too.
	_ = v.BindEnv("public.base_url", "CRUSH_HUB_BASE_URL", "NEXT_PUBLIC_BASE_URL")
	_ = v.BindEnv("public.deployment_host", "CRUSH_HUB_DEPLOYMENT_HOST", "VERCEL_URL")

	setDefaults(v)
	return v
}

/**
 * Load application configuration
 * @param {string} file - explicit config file, empty to search ./config.yaml and ~/.crush-hub
 * @returns {*AppConfig} validated configuration
 * @returns {error} read, decode or validation error
 * @description
 * - .env in the working directory is loaded first when present
 * - A missing config file is not an error, defaults and env apply
 */
func LoadConfig(file string) (*AppConfig, error) {
	_ = godotenv.Load()

	v := newViper()
	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects a configuration the server could not serve correctly.
func Validate(cfg *AppConfig) error {
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Server.Mode)
	}
	if cfg.Download.RateLimit < 0 || cfg.Download.Burst < 0 {
		return fmt.Errorf("download rate limit must not be negative")
	}
	for _, proxy := range cfg.Server.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("trusted proxy %q is neither an IP nor a CIDR", proxy)
			}
		}
	}
	if _, err := crushcfg.BuildWithOverrides(time.Now(), env.SoftwareVer, cfg.Template); err != nil {
		return err
	}
	return nil
}

var (
	current    atomic.Pointer[AppConfig]
	configFile string
	loadErr    error
)

// Config is the snapshot loaded at start, kept for code that runs before
// the server (logger setup in main).
var Config AppConfig

// App returns the active configuration snapshot.
func App() *AppConfig {
	return current.Load()
}

// SetApp replaces the active snapshot.
func SetApp(cfg *AppConfig) {
	current.Store(cfg)
}

// SetConfigFile records the file used by later ReloadConfig calls.
func SetConfigFile(file string) {
	configFile = file
}

// ReloadConfig reloads from disk and env. On failure the previous snapshot stays active.
func ReloadConfig() error {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	SetApp(cfg)
	return nil
}

func defaultConfig() *AppConfig {
	v := viper.New()
	setDefaults(v)
	var cfg AppConfig
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// LoadError returns the error met while loading the configuration at
// start. The active snapshot holds defaults in that case.
func LoadError() error {
	return loadErr
}

func initialize(file string) {
	cfg, err := LoadConfig(file)
	if err != nil {
		cfg = defaultConfig()
	}
	loadErr = err
	Config = *cfg
	SetApp(cfg)
}

func init() {
	initialize("")
}
