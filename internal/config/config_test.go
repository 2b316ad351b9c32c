package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecretAndDatabase(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/backoffice")

	_, err := Load()
	require.ErrorContains(t, err, "JWT_SECRET_KEY")

	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("DATABASE_URL", "")

	_, err = Load()
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost/backoffice")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("JWT_REFRESH_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, cfg.JWTAccessTTL)
	require.Equal(t, 720*time.Hour, cfg.JWTRefreshTTL)
	require.Equal(t, "8080", cfg.ServerPort)
}

func TestValidateRefreshMustOutliveAccess(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost/backoffice")
	t.Setenv("JWT_ACCESS_TTL", "1h")
	t.Setenv("JWT_REFRESH_TTL", "30m")

	_, err := Load()
	require.ErrorContains(t, err, "JWT_REFRESH_TTL")
}
