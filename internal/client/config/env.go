package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/socialnet/internal/flagx"
)

const envPrefix = "SOCIALNET_"

// parseEnv overlays Config with SOCIALNET_* environment variables. A dotenv
// file is loaded first: the one given with -e/-env, or ".env" when present.
// Variables already set in the process environment win over the file.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}

	str("SERVER_URL", &cfg.ServerURL)
	str("AUTH_URL", &cfg.Endpoints.Auth)
	str("POSTS_URL", &cfg.Endpoints.Posts)
	str("SOCIAL_URL", &cfg.Endpoints.Social)
	str("UPLOAD_URL", &cfg.Endpoints.Upload)
	str("DATABASE_PATH", &cfg.DatabasePath)
	str("LOG_FILE", &cfg.LogFile)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("METRICS_ADDR", &cfg.MetricsAddr)

	if v, ok := os.LookupEnv(envPrefix + "REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			secs, convErr := strconv.Atoi(v)
			if convErr != nil {
				panic(err)
			}
			d = time.Duration(secs) * time.Second
		}
		cfg.RequestTimeout = d
	}
}
