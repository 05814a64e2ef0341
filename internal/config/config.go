package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&config)
	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvAPIBaseURL            = "FINBOARD_API_BASE_URL"
	EnvSiteURL               = "FINBOARD_SITE_URL"
	EnvLinkingClientID       = "FINBOARD_LINKING_CLIENT_ID"
	EnvLinkingClientSecret   = "FINBOARD_LINKING_CLIENT_SECRET"
	EnvLinkingIssuerURL      = "FINBOARD_LINKING_ISSUER_URL"
	EnvLinkingRedirectURL    = "FINBOARD_LINKING_REDIRECT_URL"
	EnvMarketAPIKey          = "FINBOARD_MARKET_API_KEY"
	EnvRedisPassword         = "FINBOARD_REDIS_PASSWORD"
	EnvRedisUsername         = "FINBOARD_REDIS_USERNAME"
	EnvRedisSentinelUsername = "FINBOARD_REDIS_SENTINEL_USERNAME"
	EnvRedisSentinelPassword = "FINBOARD_REDIS_SENTINEL_PASSWORD"
)

func applyDefaults(config *Config) {
	if config.Server.Port == 0 {
		config.Server.Port = DefaultServerConfig.Port
	}

	if config.API.Timeout <= 0 {
		config.API.Timeout = DefaultAPIConfig.Timeout
	}

	if config.Log.Level == "" {
		config.Log.Level = DefaultLogConfig.Level
	}

	if config.Log.Format == "" {
		config.Log.Format = DefaultLogConfig.Format
	}

	if config.Sessions.Store == "" {
		config.Sessions.Store = DefaultSessionConfig.Store
	}

	if config.Sessions.FixedTimeout <= 0 {
		config.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	if config.Sessions.Name == "" {
		config.Sessions.Name = DefaultSessionConfig.Name
	}

	if config.SWR.DedupingInterval <= 0 {
		config.SWR.DedupingInterval = DefaultSWRConfig.DedupingInterval
	}

	if config.Market.QuoteTTL <= 0 {
		config.Market.QuoteTTL = DefaultMarketConfig.QuoteTTL
	}

	if config.Market.NewsTTL <= 0 {
		config.Market.NewsTTL = DefaultMarketConfig.NewsTTL
	}

	if config.Market.FallbackRefreshInterval <= 0 {
		config.Market.FallbackRefreshInterval = DefaultMarketConfig.FallbackRefreshInterval
	}

	if config.Linking != nil && len(config.Linking.Scopes) == 0 {
		config.Linking.Scopes = DefaultLinkingConfig.Scopes
	}

	if config.Distributed != nil && config.Distributed.TTL <= 0 {
		config.Distributed.TTL = DefaultDistributedConfig.TTL
	}
}

func applyEnvironmentOverrides(config *Config) {
	if baseURL := os.Getenv(EnvAPIBaseURL); baseURL != "" {
		config.API.BaseURL = baseURL
	}

	if siteURL := os.Getenv(EnvSiteURL); siteURL != "" {
		config.Server.SiteURL = siteURL
	}

	if clientID := os.Getenv(EnvLinkingClientID); clientID != "" {
		if config.Linking == nil {
			config.Linking = &LinkingConfig{}
		}
		config.Linking.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvLinkingClientSecret); clientSecret != "" {
		if config.Linking == nil {
			config.Linking = &LinkingConfig{}
		}
		config.Linking.ClientSecret = clientSecret
	}

	if issuerURL := os.Getenv(EnvLinkingIssuerURL); issuerURL != "" {
		if config.Linking == nil {
			config.Linking = &LinkingConfig{}
		}
		config.Linking.IssuerURL = issuerURL
	}

	if redirectURL := os.Getenv(EnvLinkingRedirectURL); redirectURL != "" {
		if config.Linking == nil {
			config.Linking = &LinkingConfig{}
		}
		config.Linking.RedirectURI = redirectURL
	}

	if apiKey := os.Getenv(EnvMarketAPIKey); apiKey != "" {
		config.Market.APIKey = apiKey
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvRedisSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateAPIConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateLinkingConfig()
	if err != nil {
		return err
	}

	err = config.validateMarketConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" || (config.Distributed != nil && config.Distributed.Enabled) {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.SiteURL != "" {
		if err := validateURL(c.Server.SiteURL, "server site_url"); err != nil {
			return err
		}
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Port < 1 || c.Server.Debug.Port > 65535 {
			return fmt.Errorf("debug port must be between 1 and 65535, got %d", c.Server.Debug.Port)
		}
	}

	return nil
}

// validateAPIConfig allows an empty base URL: the upstream client fails closed
// in that case and every session check resolves to logged out.
func (c *Config) validateAPIConfig() error {
	if c.API.BaseURL == "" {
		return nil
	}

	return validateURL(c.API.BaseURL, "api base_url")
}

func (c *Config) validateLogConfig() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	switch c.Sessions.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("session store must be memory or redis, got %q", c.Sessions.Store)
	}

	if c.Sessions.Name == "" {
		return fmt.Errorf("session cookie name is required")
	}

	return nil
}

func (c *Config) validateLinkingConfig() error {
	if c.Linking == nil || !c.Linking.Enabled {
		return nil
	}

	if c.Linking.ClientID == "" {
		return fmt.Errorf("linking client_id is required")
	}

	if c.Linking.ClientSecret == "" {
		return fmt.Errorf("linking client_secret is required")
	}

	if err := validateURL(c.Linking.IssuerURL, "linking issuer_url"); err != nil {
		return err
	}

	return validateURL(c.Linking.RedirectURI, "linking redirect_url")
}

func (c *Config) validateMarketConfig() error {
	if c.Market.BaseURL == "" {
		return nil
	}

	return validateURL(c.Market.BaseURL, "market base_url")
}

func (c *Config) validateCacheConfig() error {
	switch c.Cache.Type {
	case "", "memory", "redis":
		return nil
	default:
		return fmt.Errorf("cache type must be memory or redis, got %q", c.Cache.Type)
	}
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis configuration is required when a redis-backed store is selected")
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("redis sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("redis sentinel addresses are required")
		}
		return nil
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	return nil
}
