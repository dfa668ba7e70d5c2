package notifications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/ai-notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Post("/", createNotificationHandler(svc))
		nr.Post("/{notificationID}/read", markReadHandler(svc))
	})

	r.Get("/api/notifications/feed", feedHandler(svc))
	r.Post("/api/notifications/feed/{source}/{notificationID}/ack", ackHandler(svc))
}

type createNotificationRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Type  Category `json:"type" enums:"info,urgent,recommendation"`
}

type notificationResponse struct {
	ID           int64     `json:"id"`
	Source       Source    `json:"source"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Type         Category  `json:"type"`
	Read         bool      `json:"read"`
	RequiresAck  bool      `json:"requires_ack"`
	MedicationID *int64    `json:"medication_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// listNotificationsHandler godoc
// @Summary Notificaciones de la IA
// @Description Últimas 20 notificaciones persistidas, más nuevas primero.
// @Tags notifications
// @Produce json
// @Success 200 {array} notificationResponse
// @Router /api/ai-notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Latest(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// createNotificationHandler godoc
// @Summary Crear notificación
// @Tags notifications
// @Accept json
// @Produce json
// @Param payload body createNotificationRequest true "Notificación"
// @Success 200 {object} successResponse
// @Failure 400 {string} string "invalid json / type must be info, urgent or recommendation"
// @Router /api/ai-notifications [post]
func createNotificationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		_, err := svc.Create(r.Context(), CreateInput{Title: req.Title, Body: req.Body, Category: req.Type})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidCategory):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "title or body required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// markReadHandler godoc
// @Summary Marcar como leída
// @Tags notifications
// @Produce json
// @Param notificationID path int true "ID de la notificación"
// @Success 200 {object} successResponse
// @Failure 404 {string} string "notification not found"
// @Router /api/ai-notifications/{notificationID}/read [post]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "notificationID"), 10, 64)
		if err != nil {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		if err := svc.MarkRead(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "notification not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// feedHandler godoc
// @Summary Feed de notificaciones
// @Description Mezcla recordatorios del scheduler (efímeros) con las notificaciones persistidas, sin duplicados, más nuevas primero.
// @Tags notifications
// @Produce json
// @Success 200 {array} notificationResponse
// @Router /api/notifications/feed [get]
func feedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Feed(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// ackHandler godoc
// @Summary Confirmar aviso del feed
// @Description Confirma un aviso (los urgentes lo requieren). `source` es scheduler o ai.
// @Tags notifications
// @Produce json
// @Param source path string true "Origen" Enums(scheduler, ai)
// @Param notificationID path int true "ID en el feed"
// @Success 200 {object} successResponse
// @Failure 404 {string} string "notification not found"
// @Router /api/notifications/feed/{source}/{notificationID}/ack [post]
func ackHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src := Source(chi.URLParam(r, "source"))
		id, err := strconv.ParseInt(chi.URLParam(r, "notificationID"), 10, 64)
		if err != nil || (src != SourceAI && src != SourceScheduler) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		if err := svc.Ack(r.Context(), src, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "notification not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func toResponses(items []Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, notificationResponse{
			ID:           n.ID,
			Source:       n.Source,
			Title:        n.Title,
			Body:         n.Body,
			Type:         n.Category,
			Read:         n.Read,
			RequiresAck:  n.RequiresAck(),
			MedicationID: n.MedicationID,
			Timestamp:    n.Timestamp,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
