package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"medisafe-companion/internal/domain/medications"
)

// FallbackDisclaimer se usa si no hay asistente configurado.
const FallbackDisclaimer = "Delaying medication increases health risks. Please take it as soon as possible."

// DisclaimerWriter redacta el aviso de riesgo al posponer. Nunca falla: degrada a un texto fijo.
type DisclaimerWriter interface {
	SnoozeDisclaimer(ctx context.Context, m medications.Medication) string
}

func RegisterRoutes(r chi.Router, runner *Runner, st SettingsReader, disclaimers DisclaimerWriter) {
	r.Route("/api/scheduler", func(sr chi.Router) {
		sr.Get("/next-dose", nextDoseHandler(runner))

		sr.Get("/snooze", getSnoozeHandler(runner))
		sr.Post("/snooze", snoozeHandler(runner, st, disclaimers))
		sr.Delete("/snooze", clearSnoozeHandler(runner))
	})
}

type snoozeRequest struct {
	MedicationID *int64 `json:"medication_id"`
}

type snoozeResponse struct {
	Active       bool       `json:"active"`
	Until        *time.Time `json:"until"`
	Disclaimer   *string    `json:"disclaimer"`
	MedicationID *int64     `json:"medication_id,omitempty"`
}

type nextDoseResponse struct {
	MedicationID int64     `json:"medication_id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Time         string    `json:"time"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	State        DoseState `json:"state"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// nextDoseHandler godoc
// @Summary Próxima toma
// @Description Primera medicación cuya hora es posterior a la actual (o la más temprana de mañana), con su estado del día.
// @Tags scheduler
// @Produce json
// @Success 200 {object} nextDoseResponse
// @Failure 404 {string} string "no medications scheduled"
// @Router /api/scheduler/next-dose [get]
func nextDoseHandler(runner *Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nd, ok, err := runner.NextDose(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "no medications scheduled", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, nextDoseResponse{
			MedicationID: nd.Medication.ID,
			Name:         nd.Medication.Name,
			Dosage:       nd.Medication.Dosage,
			Time:         nd.Medication.Time,
			ScheduledAt:  nd.Scheduled,
			State:        nd.State,
		})
	}
}

// getSnoozeHandler godoc
// @Summary Estado del snooze
// @Tags scheduler
// @Produce json
// @Success 200 {object} snoozeResponse
// @Router /api/scheduler/snooze [get]
func getSnoozeHandler(runner *Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toSnoozeResponse(runner.SnoozeState(), runner.Now()))
	}
}

// snoozeHandler godoc
// @Summary Posponer recordatorios
// @Description Suprime todos los avisos durante `snooze_duration_minutes` de la configuración y devuelve un aviso de riesgo.
// @Tags scheduler
// @Accept json
// @Produce json
// @Param payload body snoozeRequest false "Medicación a posponer (por defecto la próxima)"
// @Success 200 {object} snoozeResponse
// @Router /api/scheduler/snooze [post]
func snoozeHandler(runner *Runner, st SettingsReader, disclaimers DisclaimerWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req snoozeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cfg, err := st.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		med, found := findMedication(r.Context(), runner, req.MedicationID)
		if req.MedicationID != nil && !found {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}

		disclaimer := FallbackDisclaimer
		if found && disclaimers != nil {
			disclaimer = disclaimers.SnoozeDisclaimer(r.Context(), med)
		}

		var medID *int64
		if found {
			id := med.ID
			medID = &id
		}
		s := runner.Snooze(cfg.SnoozeDurationMinutes, medID, disclaimer)
		writeJSON(w, http.StatusOK, toSnoozeResponse(s, runner.Now()))
	}
}

// clearSnoozeHandler godoc
// @Summary Cancelar snooze
// @Tags scheduler
// @Produce json
// @Success 200 {object} successResponse
// @Router /api/scheduler/snooze [delete]
func clearSnoozeHandler(runner *Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runner.ClearSnooze()
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func findMedication(ctx context.Context, runner *Runner, id *int64) (medications.Medication, bool) {
	if id == nil {
		nd, ok, err := runner.NextDose(ctx)
		if err != nil || !ok {
			return medications.Medication{}, false
		}
		return nd.Medication, true
	}

	meds, err := runner.meds.List(ctx)
	if err != nil {
		return medications.Medication{}, false
	}
	for _, m := range meds {
		if m.ID == *id {
			return m, true
		}
	}
	return medications.Medication{}, false
}

func toSnoozeResponse(s SnoozeState, now time.Time) snoozeResponse {
	out := snoozeResponse{Active: s.Active(now), MedicationID: s.MedicationID}
	if out.Active {
		out.Until = s.Until
		if s.Disclaimer != "" {
			d := s.Disclaimer
			out.Disclaimer = &d
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
