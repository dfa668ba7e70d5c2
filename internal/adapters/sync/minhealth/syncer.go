package minhealth

import (
	"context"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/platform/logger"
)

type SettingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// Syncer implementa doselogs.Observer. Solo empuja si el cliente está configurado
// y el paciente activó minhealth_sync_enabled.
type Syncer struct {
	client   *Client
	settings SettingsReader
	log      logger.Logger
}

func NewSyncer(client *Client, st SettingsReader, log logger.Logger) *Syncer {
	if log == nil {
		log = logger.Nop()
	}
	return &Syncer{
		client:   client,
		settings: st,
		log:      log.With(map[string]any{"adapter": "minhealth"}),
	}
}

func (s *Syncer) OnDoseLogged(ctx context.Context, e doselogs.Entry) error {
	if !s.client.IsConfigured() {
		return nil
	}
	st, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if !st.MinHealthSyncEnabled {
		return nil
	}

	if err := s.client.PushDoseLog(ctx, e); err != nil {
		s.log.Error("minhealth push failed", map[string]any{"log_id": e.ID, "err": err.Error()})
		return err
	}
	s.log.Debug("minhealth push ok", map[string]any{"log_id": e.ID})
	return nil
}
