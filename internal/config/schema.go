package config

import (
	"time"
)

type Config struct {
	Server      ServerConfig       `yaml:"server"`
	API         APIConfig          `yaml:"api"`
	Log         LogConfig          `yaml:"log"`
	CORS        CORSConfig         `yaml:"cors"`
	Sessions    SessionConfig      `yaml:"sessions"`
	SWR         SWRConfig          `yaml:"swr"`
	Market      MarketConfig       `yaml:"market"`
	Cache       CacheConfig        `yaml:"cache"`
	Linking     *LinkingConfig     `yaml:"linking"`
	Redis       *RedisConfig       `yaml:"redis"`
	Distributed *DistributedConfig `yaml:"distributed"`
}

type ServerConfig struct {
	Port    int    `yaml:"port"`
	SiteURL string `yaml:"site_url"`

	// TrustProxyHeaders enables client-IP extraction from forwarding headers.
	// Set only when a trusted reverse proxy fronts every instance.
	TrustProxyHeaders bool               `yaml:"trust_proxy_headers"`
	Debug             *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// APIConfig points at the upstream portfolio/auth REST API. BaseURL may be
// empty, in which case every upstream call fails closed and the session layer
// treats the user as logged out.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

var DefaultAPIConfig = APIConfig{
	Timeout: 10 * time.Second,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Name         string        `yaml:"name"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: 24 * time.Hour,
	Name:         "session_id",
	Secure:       true,
}

// SWRConfig tunes the per-browser-context session cache.
type SWRConfig struct {
	DedupingInterval time.Duration `yaml:"deduping_interval"`
}

var DefaultSWRConfig = SWRConfig{
	DedupingInterval: 2 * time.Second,
}

type MarketConfig struct {
	BaseURL                 string        `yaml:"base_url"`
	APIKey                  string        `yaml:"api_key"`
	Symbols                 []string      `yaml:"symbols"`
	QuoteTTL                time.Duration `yaml:"quote_ttl"`
	NewsTTL                 time.Duration `yaml:"news_ttl"`
	FallbackRefreshInterval time.Duration `yaml:"fallback_refresh_interval"`
}

var DefaultMarketConfig = MarketConfig{
	QuoteTTL:                time.Minute,
	NewsTTL:                 15 * time.Minute,
	FallbackRefreshInterval: 10 * time.Minute,
}

type CacheConfig struct {
	Type string `yaml:"type"` //  "memory" or "redis"
}

// LinkingConfig configures the brokerage account-linking provider. The flow is
// OAuth/OIDC shaped; the provider's internals are a black box.
type LinkingConfig struct {
	Enabled      bool     `yaml:"enabled"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultLinkingConfig = LinkingConfig{
	Scopes: []string{"openid", "accounts:read"},
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
	CacheIndex   int                  `yaml:"cache_index"`
	LeaderIndex  int                  `yaml:"leader_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
	LeaderIndex:  2,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}

type DistributedConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

var DefaultDistributedConfig = DistributedConfig{
	Enabled: false,
	TTL:     30 * time.Second,
}
