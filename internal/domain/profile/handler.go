package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/profile", getProfileHandler(svc))
	r.Post("/api/profile", updateProfileHandler(svc))
}

type profileRequest struct {
	Name        string `json:"name"`
	Condition   string `json:"condition"`
	DoctorNotes string `json:"doctor_notes"`
}

type profileResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Condition   string `json:"condition"`
	DoctorNotes string `json:"doctor_notes"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// getProfileHandler godoc
// @Summary Perfil del paciente
// @Description Devuelve el perfil; si no existe se crea con valores por defecto.
// @Tags profile
// @Produce json
// @Success 200 {object} profileResponse
// @Failure 500 {string} string "internal error"
// @Router /api/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// updateProfileHandler godoc
// @Summary Actualizar perfil
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body profileRequest true "Perfil completo"
// @Success 200 {object} successResponse
// @Failure 400 {string} string "invalid json"
// @Failure 500 {string} string "internal error"
// @Router /api/profile [post]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if _, err := svc.Update(r.Context(), UpdateInput{
			Name:        req.Name,
			Condition:   req.Condition,
			DoctorNotes: req.DoctorNotes,
		}); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Condition:   p.Condition,
		DoctorNotes: p.DoctorNotes,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
