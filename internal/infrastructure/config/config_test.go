package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Shopping.Backend = "memory"
	cfg.Shopping.StorageKey = "nutrismart-shopping-list"
	cfg.Shopping.DefaultSelection = 2
	return cfg
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfigRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Server.Port = 0 }},
		{"unknown shopping backend", func(c *Config) { c.Shopping.Backend = "sqlite" }},
		{"file backend without path", func(c *Config) {
			c.Shopping.Backend = "file"
			c.Shopping.SnapshotFile = ""
		}},
		{"empty storage key", func(c *Config) { c.Shopping.StorageKey = "" }},
		{"negative default selection", func(c *Config) { c.Shopping.DefaultSelection = -1 }},
		{"cache enabled without ttl", func(c *Config) {
			c.Cache.Enabled = true
			c.Cache.TTL = 0
		}},
		{"rate limit enabled without requests", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.Requests = 0
			c.RateLimit.Window = time.Minute
		}},
		{"rate limit enabled without window", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.Requests = 10
			c.RateLimit.Window = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey(""))
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "sk-a...wxyz", MaskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
}
