package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("TZ", "")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", c.HTTP.Addr)
	assert.Equal(t, BackendSQLite, c.Storage.Backend)
	assert.Equal(t, time.Minute, c.Scheduler.TickInterval)
	assert.Equal(t, time.Hour, c.Scheduler.CatchUpLimit)
	assert.False(t, c.Redis.Enabled())
	assert.False(t, c.MQTT.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://u:p@localhost/medisafe")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_TIMEOUT", "15")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MQTT_BROKER", "tcp://localhost:1883")
	t.Setenv("SCHEDULER_CATCH_UP_LIMIT", "90m")
	t.Setenv("MEDBOX_SIMULATE", "true")
	t.Setenv("TZ", "America/Argentina/Buenos_Aires")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.HTTP.Addr)
	assert.Equal(t, BackendPostgres, c.Storage.Backend)
	assert.Equal(t, "key", c.Gemini.APIKey)
	assert.Equal(t, 15*time.Second, c.Gemini.Timeout)
	assert.True(t, c.Redis.Enabled())
	assert.Equal(t, 2, c.Redis.DB)
	assert.True(t, c.MQTT.Enabled())
	assert.Equal(t, 90*time.Minute, c.Scheduler.CatchUpLimit)
	assert.True(t, c.Scheduler.SimulateMedBox)

	loc, err := c.Scheduler.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Argentina/Buenos_Aires", loc.String())
}

func TestLoad_ExplicitBackendWins(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://u:p@localhost/medisafe")
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("TZ", "")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, c.Storage.Backend)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Storage.Backend = "mongo"
	assert.Error(t, c.Validate())

	c = Default()
	c.Storage.Backend = BackendPostgres
	assert.Error(t, c.Validate())

	c = Default()
	c.Scheduler.Timezone = "Mars/Olympus"
	assert.Error(t, c.Validate())
}
