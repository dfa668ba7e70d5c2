// Package config arma la configuración del proceso desde variables de entorno.
// Cada sección tiene su LoadFromEnv(prefix); los defaults levantan un server de desarrollo.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"medisafe-companion/internal/platform/logger"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	FiredStoreMemory = "memory"
	FiredStoreRedis  = "redis"
)

type Config struct {
	HTTP      HTTPConfig
	Log       LogConfig
	Storage   StorageConfig
	Gemini    GeminiConfig
	Redis     RedisConfig
	MQTT      MQTTConfig
	MinHealth MinHealthConfig
	Scheduler SchedulerConfig
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type StorageConfig struct {
	Backend    string
	SQLitePath string // vacío => ruta XDG por defecto
	DSN        string
}

type GeminiConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	VisionModel string
	Timeout     time.Duration
}

type RedisConfig struct {
	Addr     string // vacío => fired-state en memoria
	Password string
	DB       int
}

type MQTTConfig struct {
	Broker   string // vacío => sin listener
	ClientID string
	Username string
	Password string
}

type MinHealthConfig struct {
	BaseURL string
	APIKey  string
}

type SchedulerConfig struct {
	TickInterval     time.Duration
	CatchUpLimit     time.Duration
	Timezone         string
	SimulateMedBox   bool
	SimulateInterval time.Duration
}

// Default devuelve la configuración de desarrollo.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":3000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "medisafe-companion",
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
		},
		Gemini: GeminiConfig{
			Timeout: 30 * time.Second,
		},
		Scheduler: SchedulerConfig{
			TickInterval:     60 * time.Second,
			CatchUpLimit:     60 * time.Minute,
			SimulateInterval: 10 * time.Second,
		},
	}
}

// Load aplica el entorno sobre Default y valida.
func Load() (Config, error) {
	c := Default()

	c.HTTP.LoadFromEnv("HTTP")
	c.Log.LoadFromEnv("LOG")
	c.Storage.LoadFromEnv("STORAGE")
	c.Gemini.LoadFromEnv("GEMINI")
	c.Redis.LoadFromEnv("REDIS")
	c.MQTT.LoadFromEnv("MQTT")
	c.MinHealth.LoadFromEnv("MINHEALTH")
	c.Scheduler.LoadFromEnv("SCHEDULER")

	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage backend postgres requires DB_DSN")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Scheduler.TickInterval <= 0 {
		return fmt.Errorf("scheduler tick interval must be positive")
	}
	if _, err := c.Scheduler.Location(); err != nil {
		return err
	}
	return nil
}

// LoadFromEnv: PORT (como siempre) o HTTP_ADDR, más los timeouts.
func (c *HTTPConfig) LoadFromEnv(prefix string) {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if addr := os.Getenv(prefix + "_ADDR"); addr != "" {
		c.Addr = addr
	}
	loadDuration(prefix+"_READ_TIMEOUT", &c.ReadTimeout)
	loadDuration(prefix+"_WRITE_TIMEOUT", &c.WriteTimeout)
	loadDuration(prefix+"_SHUTDOWN_TIMEOUT", &c.ShutdownTimeout)
}

func (c *LogConfig) LoadFromEnv(prefix string) {
	loadString(prefix+"_LEVEL", &c.Level)
	loadString(prefix+"_FORMAT", &c.Format)
	loadString("APP_NAME", &c.App)
}

func (c LogConfig) Options() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.Level),
		Format: logger.ParseFormat(c.Format),
		App:    c.App,
	}
}

// LoadFromEnv: DB_DSN sin STORAGE_BACKEND elige postgres.
func (c *StorageConfig) LoadFromEnv(prefix string) {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.DSN = dsn
		c.Backend = BackendPostgres
	}
	if b := os.Getenv(prefix + "_BACKEND"); b != "" {
		c.Backend = strings.ToLower(strings.TrimSpace(b))
	}
	loadString("SQLITE_PATH", &c.SQLitePath)
}

func (c *GeminiConfig) LoadFromEnv(prefix string) {
	loadString(prefix+"_API_KEY", &c.APIKey)
	loadString(prefix+"_BASE_URL", &c.BaseURL)
	loadString(prefix+"_MODEL", &c.Model)
	loadString(prefix+"_VISION_MODEL", &c.VisionModel)
	loadDuration(prefix+"_TIMEOUT", &c.Timeout)
}

func (c *RedisConfig) LoadFromEnv(prefix string) {
	loadString(prefix+"_ADDR", &c.Addr)
	loadString(prefix+"_PASSWORD", &c.Password)
	loadInt(prefix+"_DB", &c.DB)
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

func (c *MQTTConfig) LoadFromEnv(prefix string) {
	loadString(prefix+"_BROKER", &c.Broker)
	loadString(prefix+"_CLIENT_ID", &c.ClientID)
	loadString(prefix+"_USERNAME", &c.Username)
	loadString(prefix+"_PASSWORD", &c.Password)
}

func (c MQTTConfig) Enabled() bool { return c.Broker != "" }

func (c *MinHealthConfig) LoadFromEnv(prefix string) {
	loadString(prefix+"_BASE_URL", &c.BaseURL)
	loadString(prefix+"_API_KEY", &c.APIKey)
}

func (c *SchedulerConfig) LoadFromEnv(prefix string) {
	loadDuration(prefix+"_TICK", &c.TickInterval)
	loadDuration(prefix+"_CATCH_UP_LIMIT", &c.CatchUpLimit)
	loadString("TZ", &c.Timezone)
	loadBool("MEDBOX_SIMULATE", &c.SimulateMedBox)
	loadDuration("MEDBOX_SIMULATE_INTERVAL", &c.SimulateInterval)
}

// Location resuelve TZ; vacío => zona local del proceso.
func (c SchedulerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func loadString(key string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func loadInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func loadBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = b
		}
	}
}

// loadDuration acepta "90s", "5m" o segundos enteros.
func loadDuration(key string, dst *time.Duration) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(n) * time.Second
	}
}
