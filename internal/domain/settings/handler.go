package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/settings", getSettingsHandler(svc))
	r.Post("/api/settings", updateSettingsHandler(svc))
}

type settingsPayload struct {
	ID                     int64  `json:"id,omitempty"`
	MedBoxID               string `json:"medbox_id"`
	SnoozeDurationMinutes  int    `json:"snooze_duration_minutes"`
	NotificationsEnabled   bool   `json:"notifications_enabled"`
	VoiceAgentEnabled      bool   `json:"voice_agent_enabled"`
	DistressMonitorEnabled bool   `json:"distress_monitor_enabled"`
	MinHealthSyncEnabled   bool   `json:"minhealth_sync_enabled"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// getSettingsHandler godoc
// @Summary Configuración
// @Tags settings
// @Produce json
// @Success 200 {object} settingsPayload
// @Router /api/settings [get]
func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPayload(st))
	}
}

// updateSettingsHandler godoc
// @Summary Actualizar configuración
// @Description Reemplaza todos los campos. `snooze_duration_minutes` entre 1 y 240.
// @Tags settings
// @Accept json
// @Produce json
// @Param payload body settingsPayload true "Configuración completa"
// @Success 200 {object} successResponse
// @Failure 400 {string} string "invalid json / snooze_duration_minutes must be between 1 and 240 minutes"
// @Router /api/settings [post]
func updateSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req settingsPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		_, err := svc.Update(r.Context(), Settings{
			MedBoxID:               req.MedBoxID,
			SnoozeDurationMinutes:  req.SnoozeDurationMinutes,
			NotificationsEnabled:   req.NotificationsEnabled,
			VoiceAgentEnabled:      req.VoiceAgentEnabled,
			DistressMonitorEnabled: req.DistressMonitorEnabled,
			MinHealthSyncEnabled:   req.MinHealthSyncEnabled,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidSnooze):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "medbox_id required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func toPayload(s Settings) settingsPayload {
	return settingsPayload{
		ID:                     s.ID,
		MedBoxID:               s.MedBoxID,
		SnoozeDurationMinutes:  s.SnoozeDurationMinutes,
		NotificationsEnabled:   s.NotificationsEnabled,
		VoiceAgentEnabled:      s.VoiceAgentEnabled,
		DistressMonitorEnabled: s.DistressMonitorEnabled,
		MinHealthSyncEnabled:   s.MinHealthSyncEnabled,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
