package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"medisafe-companion/internal/adapters/devices/mqtt"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the reminder loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, cleanup, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		var wg sync.WaitGroup
		run := func(fn func()) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				fn()
			}()
		}

		run(func() { app.Runner.Start(ctx) })

		if cfg.Scheduler.SimulateMedBox {
			app.Simulator.Interval = cfg.Scheduler.SimulateInterval
			run(func() { app.Simulator.Run(ctx) })
		}

		if cfg.MQTT.Enabled() {
			st, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			listener := mqtt.NewListener(mqtt.Config{
				Broker:   cfg.MQTT.Broker,
				ClientID: cfg.MQTT.ClientID,
				Username: cfg.MQTT.Username,
				Password: cfg.MQTT.Password,
				MedBoxID: st.MedBoxID,
			}, app.MedBox, log)
			run(func() {
				if err := listener.Run(ctx); err != nil {
					log.Error("mqtt listener stopped", map[string]any{"err": err.Error()})
				}
			})
		}

		srv := &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      app.Handler,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr, "storage": cfg.Storage.Backend, "version": version})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			stop()
			wg.Wait()
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)

		wg.Wait()
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
