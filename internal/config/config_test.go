package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 14*24*time.Hour, cfg.PendingBookingMaxAge)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://linguanest.example,https://admin.linguanest.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"https://linguanest.example", "https://admin.linguanest.example"}, cfg.CORSOrigins)
}

func TestBadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}
