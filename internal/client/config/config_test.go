package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, "socialnet.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Empty(t, c.MetricsAddr)
}

func TestResolveEndpoints(t *testing.T) {
	c := Config{ServerURL: "https://api.example.org/", Endpoints: Endpoints{Upload: "https://cdn.example.org/up"}}
	c.ResolveEndpoints()

	assert.Equal(t, "https://api.example.org/auth", c.Endpoints.Auth)
	assert.Equal(t, "https://api.example.org/posts", c.Endpoints.Posts)
	assert.Equal(t, "https://api.example.org/social", c.Endpoints.Social)
	assert.Equal(t, "https://cdn.example.org/up", c.Endpoints.Upload)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerURL)
	assert.Equal(t, "http://127.0.0.1:8080/auth", cfg.Endpoints.Auth)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
