package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("LOGIN_RATE_LIMIT", "not-a-number")
	t.Setenv("CORS_ORIGIN", " http://a.test , ,http://b.test")

	cfg := Load()

	assert.Equal(t, 12*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 50, cfg.LoginRateLimit)
	assert.Equal(t, 15*time.Minute, cfg.LoginRateWindow)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestAllowsOrigin(t *testing.T) {
	cfg := &Config{CORSOrigins: []string{"http://app.test"}}
	assert.True(t, cfg.AllowsOrigin("http://APP.test"))
	assert.False(t, cfg.AllowsOrigin("http://evil.test"))

	cfg.CORSOrigins = append(cfg.CORSOrigins, "*")
	assert.True(t, cfg.AllowsOrigin("http://evil.test"))
}

func TestAddr(t *testing.T) {
	cfg := &Config{ServerPort: "9090"}
	assert.Equal(t, ":9090", cfg.Addr())
}
