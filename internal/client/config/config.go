package config

import (
	"strings"
	"time"
)

// Endpoints are the four backend services. The backend deploys them as
// separate functions, so each can be overridden; empty values are derived
// from ServerURL.
type Endpoints struct {
	Auth   string
	Posts  string
	Social string
	Upload string
}

// Config holds runtime settings for the SocialNet CLI.
type Config struct {
	ServerURL      string
	Endpoints      Endpoints
	DatabasePath   string
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       string
	MetricsAddr    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DatabasePath = "socialnet.db"
	c.RequestTimeout = 15 * time.Second
	c.LogFile = "logs/client.log"
	c.LogLevel = "info"
}

// ResolveEndpoints fills every empty endpoint from ServerURL.
func (c *Config) ResolveEndpoints() {
	base := strings.TrimRight(c.ServerURL, "/")
	fill := func(dst *string, path string) {
		if *dst == "" {
			*dst = base + path
		}
	}
	fill(&c.Endpoints.Auth, "/auth")
	fill(&c.Endpoints.Posts, "/posts")
	fill(&c.Endpoints.Social, "/social")
	fill(&c.Endpoints.Upload, "/upload")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	cfg.ResolveEndpoints()
	return cfg
}
