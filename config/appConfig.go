package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SystembolagetConfig holds everything needed to talk to the remote
// catalog API. The subscription key is usually supplied through the
// SYSTEMBOLAGET_API_KEY environment variable rather than the yaml file.
type SystembolagetConfig struct {
	ProductsURL            string `yaml:"products_url"`
	SitesURL               string `yaml:"sites_url"`
	AvailabilityURL        string `yaml:"availability_url"`
	ApiKeyHeader           string `yaml:"api_key_header"`
	ApiKey                 string `yaml:"api_key"`
	RequestTimeoutSeconds  int    `yaml:"request_timeout_seconds"`
	RefreshIntervalMinutes int    `yaml:"refresh_interval_minutes"`
	RateLimitPerMinute     int    `yaml:"rate_limit_per_minute"`
}

func (sc *SystembolagetConfig) RequestTimeout() time.Duration {
	return time.Duration(sc.RequestTimeoutSeconds) * time.Second
}

func (sc *SystembolagetConfig) RefreshInterval() time.Duration {
	return time.Duration(sc.RefreshIntervalMinutes) * time.Minute
}

type ServerConfig struct {
	Bind string `yaml:"bind"`
}

type AppConfig struct {
	Systembolaget SystembolagetConfig `yaml:"systembolaget"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	Server        ServerConfig        `yaml:"server"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return config, nil
}

// DefaultConfig returns a configuration usable without a yaml file.
func DefaultConfig() *AppConfig {
	config := &AppConfig{}
	config.applyDefaults()
	return config
}

func (c *AppConfig) applyDefaults() {
	sb := &c.Systembolaget
	if sb.ProductsURL == "" {
		sb.ProductsURL = "https://api-extern.systembolaget.se/product/v1/product"
	}
	if sb.SitesURL == "" {
		sb.SitesURL = "https://api-extern.systembolaget.se/site/v1/site"
	}
	if sb.AvailabilityURL == "" {
		sb.AvailabilityURL = "https://api-extern.systembolaget.se/product/v1/product/getproductswithstore"
	}
	if sb.ApiKeyHeader == "" {
		sb.ApiKeyHeader = "Ocp-Apim-Subscription-Key"
	}
	if sb.ApiKey == "" {
		sb.ApiKey = os.Getenv("SYSTEMBOLAGET_API_KEY")
	}
	if sb.RequestTimeoutSeconds == 0 {
		sb.RequestTimeoutSeconds = 100
	}
	if sb.RefreshIntervalMinutes == 0 {
		sb.RefreshIntervalMinutes = 180
	}
	if sb.RateLimitPerMinute == 0 {
		sb.RateLimitPerMinute = 50
	}
	if c.Postgres.Host == "" {
		c.Postgres = *GetPostgresConfig()
	}
	if c.Server.Bind == "" {
		c.Server.Bind = "127.0.0.1:8080"
	}
}
