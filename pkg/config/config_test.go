package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.Enabled(), "sin DB_HOST ni DATABASE_URL se usa el store en memoria")
	assert.False(t, cfg.Persistence.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, 10*time.Second, cfg.Persistence.Timeout)
	assert.True(t, cfg.App.SeedDemoData)
}

func TestFromViper_ValoresExplicitos(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("PERSISTENCE_API_URL", "http://127.0.0.1:8000/")
	v.Set("PERSISTENCE_API_TIMEOUT_MS", "2500")
	v.Set("KAFKA_BROKERS", "k1:9092, k2:9092,")
	v.Set("SEED_DEMO_DATA", "false")
	v.Set("DB_HOST", "db")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Persistence.BaseURL, "se elimina la barra final")
	assert.Equal(t, 2500*time.Millisecond, cfg.Persistence.Timeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.App.SeedDemoData)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, "postgres://postgres:@db:5432/pos?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_ProduccionSinSecretFalla(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.Error(t, err)
}
