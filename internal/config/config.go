package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Owner resolution strategies. Which one a deployment uses depends on the
// scopes granted to its HubSpot credential: "live" needs read access to the
// owners endpoint, "static" works with a hand-maintained directory.
const (
	OwnerResolutionLive   = "live"
	OwnerResolutionStatic = "static"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	HubSpot HubSpotConfig
	Portal  PortalConfig
	Audit   AuditConfig
	Redis   RedisConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// HubSpotConfig holds the outbound CRM credential and endpoint.
type HubSpotConfig struct {
	BaseURL        string
	Token          string
	TimeoutSeconds int
}

// PortalConfig carries the intake queue identifiers and the owner resolution
// strategy for this deployment.
type PortalConfig struct {
	PipelineID      string
	IntakeStageID   string
	Source          string
	OwnerResolution string
	OwnerDirectory  map[string]string
}

// AuditConfig locates the append-only audit log.
type AuditConfig struct {
	LogPath string
}

// RedisConfig holds optional owner-name cache connection values. An empty
// Addr disables the cache.
type RedisConfig struct {
	Addr                 string
	Password             string
	DB                   int
	OwnerCacheTTLSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	ownerDirectory := map[string]string{}
	if raw := os.Getenv("OWNER_DIRECTORY"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &ownerDirectory); err != nil {
			return nil, fmt.Errorf("invalid OWNER_DIRECTORY: %w", err)
		}
	}

	ownerResolution := getEnv("OWNER_RESOLUTION", OwnerResolutionLive)
	if ownerResolution != OwnerResolutionLive && ownerResolution != OwnerResolutionStatic {
		return nil, fmt.Errorf("invalid OWNER_RESOLUTION: %q", ownerResolution)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "support-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "3001"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		HubSpot: HubSpotConfig{
			BaseURL:        getEnv("HUBSPOT_BASE_URL", "https://api.hubapi.com"),
			Token:          os.Getenv("HUBSPOT_TOKEN"),
			TimeoutSeconds: getEnvAsInt("HUBSPOT_TIMEOUT_SECONDS", 15),
		},
		Portal: PortalConfig{
			PipelineID:      getEnv("PORTAL_PIPELINE_ID", "866504349"),
			IntakeStageID:   getEnv("PORTAL_INTAKE_STAGE_ID", "1297561004"),
			Source:          getEnv("PORTAL_SOURCE", "portal_cliente"),
			OwnerResolution: ownerResolution,
			OwnerDirectory:  ownerDirectory,
		},
		Audit: AuditConfig{
			LogPath: getEnv("AUDIT_LOG_PATH", "audit.log"),
		},
		Redis: RedisConfig{
			Addr:                 os.Getenv("REDIS_ADDR"),
			Password:             os.Getenv("REDIS_PASSWORD"),
			DB:                   redisDB,
			OwnerCacheTTLSeconds: getEnvAsInt("REDIS_OWNER_CACHE_TTL_SECONDS", 300),
		},
	}

	if cfg.HubSpot.Token == "" {
		return nil, fmt.Errorf("HUBSPOT_TOKEN is required")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the outbound call timeout duration.
func (h HubSpotConfig) Timeout() time.Duration {
	if h.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// OwnerCacheTTL returns the cache entry lifetime.
func (r RedisConfig) OwnerCacheTTL() time.Duration {
	if r.OwnerCacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(r.OwnerCacheTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
