package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "medisafe-companion/docs"
	"medisafe-companion/internal/adapters/storage/sqlite"
	"medisafe-companion/internal/adapters/sync/minhealth"
	"medisafe-companion/internal/domain/assistant"
	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/domain/profile"
	"medisafe-companion/internal/domain/scheduler"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/middleware"
	"medisafe-companion/internal/platform/logger"
	"medisafe-companion/internal/ports/ai"
)

type Options struct {
	Logger logger.Logger // nil => no-op

	// Backend: Postgres si viene DB, si no SQLite si viene, si no in-memory.
	DB     *sql.DB
	SQLite *sqlite.DB

	// Opcional: nil => el asistente degrada a textos fijos.
	Model ai.Model

	// Opcional: nil => marcas del scheduler en memoria.
	FiredStore scheduler.FiredStore

	// Opcional: nil o sin configurar => no se sincroniza.
	MinHealth *minhealth.Client

	// Opcional: nil => sin /api/logs/export.
	Report doselogs.ReportWriter

	Scheduler scheduler.Config
}

// App es el grafo de servicios ya conectado. cmd/api arranca los loops
// (Runner, Simulator, MQTT) y el servidor MCP a partir de acá.
type App struct {
	Handler http.Handler

	Medications   *medications.Service
	Logs          *doselogs.Service
	Profile       *profile.Service
	Settings      *settings.Service
	MedBox        *medbox.Service
	Notifications *notifications.Service
	Assistant     *assistant.Service

	Feed      *notifications.Feed
	Runner    *scheduler.Runner
	Simulator *medbox.Simulator
}

func NewRouter(opts Options) http.Handler {
	return New(opts).Handler
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var repos Repos
	switch {
	case opts.DB != nil:
		repos = PostgresRepos(opts.DB)
	case opts.SQLite != nil:
		repos = SQLiteRepos(opts.SQLite)
	default:
		repos = MemoryRepos()
	}

	loc := opts.Scheduler.Location
	if loc == nil {
		loc = time.Local
	}

	// Services por módulo
	feed := notifications.NewFeed(notifications.NewIDSource(time.Now), 0)
	notifSvc := notifications.NewService(repos.Notifications, feed)
	medsSvc := medications.NewService(repos.Medications)
	profileSvc := profile.NewService(repos.Profile)
	settingsSvc := settings.NewService(repos.Settings)
	medboxSvc := medbox.NewService(repos.MedBox, notifSvc, log)

	tracker := scheduler.NewTracker(opts.FiredStore, loc)
	runner := scheduler.NewRunner(medsSvc, settingsSvc, tracker, feed, log, opts.Scheduler)

	logsSvc := doselogs.NewService(repos.DoseLogs, log, tracker)
	if opts.MinHealth.IsConfigured() {
		logsSvc.AddObserver(minhealth.NewSyncer(opts.MinHealth, settingsSvc, log))
	}

	assistantSvc := assistant.NewService(assistant.Deps{
		Model:       opts.Model,
		Profile:     profileSvc,
		Medications: medsSvc,
		Logs:        logsSvc,
		MedBox:      medboxSvc,
		Notifier:    notifSvc,
		Settings:    settingsSvc,
		Scheduler:   runner,
		Logger:      log,
	})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	medications.RegisterRoutes(r, medsSvc)
	doselogs.RegisterRoutes(r, logsSvc, opts.Report)
	profile.RegisterRoutes(r, profileSvc)
	medbox.RegisterRoutes(r, medboxSvc)
	notifications.RegisterRoutes(r, notifSvc)
	settings.RegisterRoutes(r, settingsSvc)
	scheduler.RegisterRoutes(r, runner, settingsSvc, assistantSvc)
	assistant.RegisterRoutes(r, assistantSvc)

	return &App{
		Handler:       r,
		Medications:   medsSvc,
		Logs:          logsSvc,
		Profile:       profileSvc,
		Settings:      settingsSvc,
		MedBox:        medboxSvc,
		Notifications: notifSvc,
		Assistant:     assistantSvc,
		Feed:          feed,
		Runner:        runner,
		Simulator:     medbox.NewSimulator(medboxSvc, log),
	}
}
