package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "access-secret")
	t.Setenv("REFRESH_SECRET", "refresh-secret")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example,")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 14*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 1000*time.Hour, cfg.Auth.SessionTokenTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 20, cfg.DB.MaxOpenConns)
	assert.Empty(t, cfg.Storage.Bucket)
}

func TestFromViperRequiresSecrets(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("REFRESH_SECRET", "")

	_, err := FromViper(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY is required")
	assert.Contains(t, err.Error(), "REFRESH_SECRET is required")
}

func TestDSN(t *testing.T) {
	d := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "agri", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=agri sslmode=disable", d.DSN())
}
