package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/socialnet/internal/flagx"
	"github.com/dmitrijs2005/socialnet/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	AuthURL        *string         `json:"auth_url"`
	PostsURL       *string         `json:"posts_url"`
	SocialURL      *string         `json:"social_url"`
	UploadURL      *string         `json:"upload_url"`
	DatabasePath   *string         `json:"database_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogFile        *string         `json:"log_file"`
	LogLevel       *string         `json:"log_level"`
	MetricsAddr    *string         `json:"metrics_addr"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. Nothing happens without the flag. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.ServerURL, jc.ServerURL)
	set(&cfg.Endpoints.Auth, jc.AuthURL)
	set(&cfg.Endpoints.Posts, jc.PostsURL)
	set(&cfg.Endpoints.Social, jc.SocialURL)
	set(&cfg.Endpoints.Upload, jc.UploadURL)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.LogFile, jc.LogFile)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.MetricsAddr, jc.MetricsAddr)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
