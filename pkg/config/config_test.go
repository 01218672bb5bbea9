package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "JWT_ISSUER",
		"ACCESS_TOKEN_SECRET", "REFRESH_TOKEN_SECRET",
		"ACCESS_TOKEN_TTL_MINUTES", "REFRESH_TOKEN_TTL_HOURS", "BCRYPT_COST",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60, cfg.AccessTokenTTLMinutes)
	assert.Equal(t, 168, cfg.RefreshTokenTTLHours)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.NotEqual(t, cfg.AccessTokenSecret, cfg.RefreshTokenSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_SECRET", "s1")
	t.Setenv("REFRESH_TOKEN_SECRET", "s2")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("REFRESH_TOKEN_TTL_HOURS", "24")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s1", cfg.AccessTokenSecret)
	assert.Equal(t, "s2", cfg.RefreshTokenSecret)
	assert.Equal(t, 5, cfg.AccessTokenTTLMinutes)
	assert.Equal(t, 24, cfg.RefreshTokenTTLHours)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_IgnoresUnparsableInt(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "one hour")

	cfg := Load()
	assert.Equal(t, 60, cfg.AccessTokenTTLMinutes)
}
