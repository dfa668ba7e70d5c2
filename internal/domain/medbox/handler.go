package medbox

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/medbox", getMedBoxHandler(svc))
	r.Post("/api/medbox/weight", recordWeightHandler(svc))
}

type weightRequest struct {
	Weight *float64 `json:"weight"`
}

type medboxResponse struct {
	ID                 int64     `json:"id"`
	CurrentWeightGrams float64   `json:"current_weight_grams"`
	LastWeightGrams    float64   `json:"last_weight_grams"`
	Status             string    `json:"status"`
	LastUpdated        time.Time `json:"last_updated"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// getMedBoxHandler godoc
// @Summary Estado del pastillero
// @Tags medbox
// @Produce json
// @Success 200 {object} medboxResponse
// @Router /api/medbox [get]
func getMedBoxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMedBoxResponse(m))
	}
}

// recordWeightHandler godoc
// @Summary Registrar peso
// @Description Nueva lectura de la balanza del pastillero. Una caída > 5 g genera una notificación.
// @Tags medbox
// @Accept json
// @Produce json
// @Param payload body weightRequest true "Peso en gramos"
// @Success 200 {object} successResponse
// @Failure 400 {string} string "invalid json / weight must be a non-negative number"
// @Router /api/medbox/weight [post]
func recordWeightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req weightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Weight == nil {
			http.Error(w, "weight required", http.StatusBadRequest)
			return
		}

		if _, err := svc.RecordWeight(r.Context(), *req.Weight, "api"); err != nil {
			if errors.Is(err, ErrInvalidWeight) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func toMedBoxResponse(m MedBox) medboxResponse {
	return medboxResponse{
		ID:                 m.ID,
		CurrentWeightGrams: m.CurrentWeightGrams,
		LastWeightGrams:    m.LastWeightGrams,
		Status:             m.Status,
		LastUpdated:        m.LastUpdated,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
