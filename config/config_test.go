package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BcryptCostDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 10, cfg.BcryptCost())

	cfg.Auth = &AuthConfig{BcryptCost: 12}
	assert.Equal(t, 12, cfg.BcryptCost())
}

func TestConfig_TokenTTLDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())

	cfg.Auth = &AuthConfig{TokenTTL: time.Hour}
	assert.Equal(t, time.Hour, cfg.TokenTTL())
}

func TestDBConn_DSN(t *testing.T) {
	conn := &DBConn{
		Host:     "localhost",
		Port:     5432,
		UserName: "tastebook",
		Password: "secret",
		Database: "recipes",
	}

	// sslmode falls back to disable when unset
	assert.Equal(t,
		"host=localhost port=5432 user=tastebook password=secret dbname=recipes sslmode=disable",
		conn.DSN(),
	)

	conn.SSLMode = "require"
	assert.Contains(t, conn.DSN(), "sslmode=require")
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"accountDb": map[string]any{
			"sslMode": "disable",
		},
		"secretKey": map[string]any{
			"token": "",
		},
	}

	// Segments align with existing YAML keys case-insensitively
	assert.Equal(t, "accountDb.sslMode", canonicalizeEnvKey("ACCOUNTDB_SSLMODE", existing))
	assert.Equal(t, "secretKey.token", canonicalizeEnvKey("SECRETKEY_TOKEN", existing))

	// Unknown segments pass through lowercased
	assert.Equal(t, "http.port", canonicalizeEnvKey("HTTP_PORT", existing))
}
