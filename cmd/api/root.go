package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"medisafe-companion/internal/adapters/ai/gemini"
	rediscache "medisafe-companion/internal/adapters/cache/redis"
	"medisafe-companion/internal/adapters/export/xlsx"
	pg "medisafe-companion/internal/adapters/storage/postgres"
	"medisafe-companion/internal/adapters/storage/sqlite"
	"medisafe-companion/internal/adapters/sync/minhealth"
	"medisafe-companion/internal/config"
	"medisafe-companion/internal/domain/scheduler"
	"medisafe-companion/internal/platform/logger"
	"medisafe-companion/internal/router"
)

var version = "dev"

var (
	cfg config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "medisafe",
	Short: "Medication adherence companion",
	Long: `MediSafe keeps a daily medication schedule, reminds the patient when a
dose is due, escalates when it is missed and records every dose taken.

COMMANDS:

  serve     Run the HTTP API with the reminder loop (default)
  migrate   Create or update the database schema
  next      Print the next scheduled dose
  export    Write the dose log report to an .xlsx file
  mcp       Start the MCP server on stdin/stdout

CONFIGURATION:

  Everything comes from the environment. The default is a SQLite database
  under $XDG_DATA_HOME/medisafe. Set DB_DSN for Postgres, GEMINI_API_KEY for
  the AI companion, REDIS_ADDR to share reminder state across restarts and
  MQTT_BROKER to listen to the smart pill box.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		opts := cfg.Log.Options()
		// stdout es del protocolo MCP
		opts.Stderr = cmd.Name() == mcpCmd.Name()
		log = logger.New(opts)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if z, ok := log.(*logger.ZapLogger); ok {
			_ = z.Sync()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// storage abre el backend configurado. close libera la conexión.
type storage struct {
	sqlite   *sqlite.DB
	postgres *sql.DB
}

func openStorage(ctx context.Context, c config.StorageConfig) (storage, error) {
	switch c.Backend {
	case config.BackendPostgres:
		db, err := pg.Open(c.DSN)
		if err != nil {
			return storage{}, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return storage{}, fmt.Errorf("migrate postgres: %w", err)
		}
		return storage{postgres: db}, nil
	case config.BackendSQLite:
		path := c.SQLitePath
		if path == "" {
			path = sqlite.DefaultPath()
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return storage{}, fmt.Errorf("open sqlite: %w", err)
		}
		return storage{sqlite: db}, nil
	default:
		return storage{}, nil
	}
}

func (s storage) close() {
	if s.sqlite != nil {
		_ = s.sqlite.Close()
	}
	if s.postgres != nil {
		_ = s.postgres.Close()
	}
}

// buildApp arma el grafo completo a partir de cfg. El cleanup cierra storage y redis.
func buildApp(ctx context.Context) (*router.App, func(), error) {
	st, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	cleanups := []func(){st.close}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	loc, err := cfg.Scheduler.Location()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	opts := router.Options{
		Logger: log,
		DB:     st.postgres,
		SQLite: st.sqlite,
		Report: xlsx.NewReport(loc),
		Scheduler: scheduler.Config{
			TickInterval: cfg.Scheduler.TickInterval,
			CatchUpLimit: cfg.Scheduler.CatchUpLimit,
			Location:     loc,
		},
	}

	if cfg.Gemini.APIKey != "" {
		opts.Model = gemini.NewClient(gemini.Config{
			BaseURL:     cfg.Gemini.BaseURL,
			APIKey:      cfg.Gemini.APIKey,
			Model:       cfg.Gemini.Model,
			VisionModel: cfg.Gemini.VisionModel,
			Timeout:     cfg.Gemini.Timeout,
		}, log)
	} else {
		log.Warn("GEMINI_API_KEY not set; assistant answers with fallback texts", nil)
	}

	if cfg.Redis.Enabled() {
		client, err := rediscache.NewClient(ctx, rediscache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		cleanups = append(cleanups, func() { _ = client.Close() })
		opts.FiredStore = rediscache.NewFiredStore(client, "", 0)
	}

	mh, err := minhealth.NewClient(minhealth.Config{
		BaseURL: cfg.MinHealth.BaseURL,
		APIKey:  cfg.MinHealth.APIKey,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("minhealth client: %w", err)
	}
	opts.MinHealth = mh

	return router.New(opts), cleanup, nil
}
