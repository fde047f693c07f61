package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "tcp://localhost:1883", cfg.Broker.URL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "appdb")
	t.Setenv("MQTT_BROKER", "tcp://broker.internal:1883")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "svc:secret@tcp(db.internal:3307)/appdb?charset=utf8mb4&parseTime=True", cfg.Database.DSN())
	assert.Equal(t, "tcp://broker.internal:1883", cfg.Broker.URL)
}

func TestLoad_InvalidDBPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := Load()

	assert.Error(t, err)
}
