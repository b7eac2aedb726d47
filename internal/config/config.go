package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/multicart-cli/internal/version"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".mcart"
	envPrefix  = "MCART"

	KeyBaseURL           = "storefront.base_url"
	KeyRequestTimeout    = "storefront.request_timeout"
	KeyDeleteConcurrency = "storefront.delete_concurrency"
	KeyUserAgent         = "storefront.user_agent"
	KeySessionCookieName = "storefront.session_cookie_name"
	KeyBannerDuration    = "banner.duration"
	KeyCatalogPath       = "catalog.path"
	KeySecretsDir        = "secrets.dir"
	KeySecretsBackend    = "secrets.backend"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"

	DefaultSessionCookieName = "SHOP_SESSION_TOKEN"
	DefaultBannerDuration    = 3 * time.Second
	DefaultLogLevel          = "warn"
	DefaultLogFormat         = "console"

	SecretsBackendPass = "pass"
	SecretsBackendFile = "file"
)

type Config struct {
	Storefront StorefrontConfig
	Banner     BannerConfig
	Catalog    CatalogConfig
	Secrets    SecretsConfig
	Log        LogConfig
}

type StorefrontConfig struct {
	BaseURL           string
	RequestTimeout    time.Duration
	DeleteConcurrency int
	UserAgent         string
	SessionCookieName string
}

type BannerConfig struct {
	Duration time.Duration
}

type CatalogConfig struct {
	Path string
}

type SecretsConfig struct {
	Dir string
	// Backend is "pass" (pass first, file fallback) or "file".
	Backend string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads ~/.mcart/config.toml (or the file already set on v) and
// MCART_* environment overrides. A missing default config file is not an
// error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	setDefaults(v, baseDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit := v.ConfigFileUsed(); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		Storefront: StorefrontConfig{
			BaseURL:           strings.TrimSpace(v.GetString(KeyBaseURL)),
			RequestTimeout:    v.GetDuration(KeyRequestTimeout),
			DeleteConcurrency: v.GetInt(KeyDeleteConcurrency),
			UserAgent:         v.GetString(KeyUserAgent),
			SessionCookieName: v.GetString(KeySessionCookieName),
		},
		Banner:  BannerConfig{Duration: v.GetDuration(KeyBannerDuration)},
		Catalog: CatalogConfig{Path: v.GetString(KeyCatalogPath)},
		Secrets: SecretsConfig{
			Dir:     v.GetString(KeySecretsDir),
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsBackend))),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}, nil
}

func setDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault(KeyRequestTimeout, time.Duration(0))
	v.SetDefault(KeyDeleteConcurrency, 0)
	v.SetDefault(KeyUserAgent, "mcart/"+version.Version)
	v.SetDefault(KeySessionCookieName, DefaultSessionCookieName)
	v.SetDefault(KeyBannerDuration, DefaultBannerDuration)
	v.SetDefault(KeyCatalogPath, filepath.Join(baseDir, "catalog.toml"))
	v.SetDefault(KeySecretsDir, filepath.Join(baseDir, "secrets"))
	v.SetDefault(KeySecretsBackend, SecretsBackendPass)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
}

// Validate checks the settings every cart command depends on.
func (c Config) Validate() error {
	var errs []error

	if c.Storefront.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyBaseURL))
	}
	if c.Storefront.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyRequestTimeout))
	}
	if c.Storefront.DeleteConcurrency < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyDeleteConcurrency))
	}
	if strings.TrimSpace(c.Storefront.SessionCookieName) == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeySessionCookieName))
	}
	if c.Banner.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyBannerDuration))
	}

	return errors.Join(errs...)
}
