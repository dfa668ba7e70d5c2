package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc))
		mr.Post("/", createMedicationHandler(svc))

		// Borrador desde QR (no persiste)
		mr.Post("/scan", scanMedicationHandler())

		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))
	})
}

// createMedicationRequest es el cuerpo para registrar una medicación.
type createMedicationRequest struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Time      string `json:"time"` // HH:MM
	QRData    string `json:"qr_data"`
}

// medicationResponse representa una medicación devuelta por la API.
type medicationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	Time      string    `json:"time"`
	QRData    string    `json:"qr_data,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type scanRequest struct {
	QRData string `json:"qr_data"`
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Description Devuelve todas las medicaciones programadas, ordenadas por id.
// @Tags medications
// @Produce json
// @Success 200 {array} medicationResponse
// @Failure 500 {string} string "internal error"
// @Router /api/medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createMedicationHandler godoc
// @Summary Crear medicación
// @Description Registra una medicación diaria. `time` debe ser HH:MM en 24h.
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "Datos de la medicación"
// @Success 200 {object} idResponse
// @Failure 400 {string} string "invalid json / name required / time must be HH:MM (24h)"
// @Failure 500 {string} string "internal error"
// @Router /api/medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Dosage:    req.Dosage,
			Frequency: req.Frequency,
			Time:      req.Time,
			QRData:    req.QRData,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "name required", http.StatusBadRequest)
			case errors.Is(err, ErrInvalidTime):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, idResponse{ID: m.ID})
	}
}

// deleteMedicationHandler godoc
// @Summary Borrar medicación
// @Description Borra la medicación. Los registros de toma existentes quedan marcados como huérfanos.
// @Tags medications
// @Produce json
// @Param medicationID path int true "ID de la medicación"
// @Success 200 {object} successResponse
// @Failure 404 {string} string "medication not found"
// @Router /api/medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "medicationID"), 10, 64)
		if err != nil {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "medication not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// scanMedicationHandler godoc
// @Summary Borrador desde QR
// @Description Arma un borrador de medicación con el contenido del QR. No persiste nada.
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body scanRequest true "Contenido del QR"
// @Success 200 {object} createMedicationRequest
// @Failure 400 {string} string "invalid json / qr_data required"
// @Router /api/medications/scan [post]
func scanMedicationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		draft, err := DraftFromQR(req.QRData)
		if err != nil {
			http.Error(w, "qr_data required", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, createMedicationRequest{
			Name:      draft.Name,
			Dosage:    draft.Dosage,
			Frequency: draft.Frequency,
			Time:      draft.Time,
			QRData:    draft.QRData,
		})
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:        m.ID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		Time:      m.Time,
		QRData:    m.QRData,
		CreatedAt: m.CreatedAt,
	}
}

// writeJSON está duplicado en cada módulo de dominio a propósito (igual que el resto de handlers).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
