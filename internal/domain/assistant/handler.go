package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxFrameBytes: un frame JPEG en base64 de una webcam entra holgado.
const maxFrameBytes = 8 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/assistant", func(ar chi.Router) {
		ar.Post("/chat", chatHandler(svc))
		ar.Post("/summary", summaryHandler(svc))
		ar.Get("/insight", insightHandler(svc))
		ar.Post("/distress", distressHandler(svc))
		ar.Post("/verify-ingestion", verifyIngestionHandler(svc))
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type actionResponse struct {
	Type           ActionType `json:"type"`
	NotificationID int64      `json:"notification_id,omitempty"`
	Title          string     `json:"title,omitempty"`
	Body           string     `json:"body,omitempty"`
	Category       string     `json:"category,omitempty"`
	Message        string     `json:"message,omitempty"`
	Reason         string     `json:"reason,omitempty"`
}

type chatResponse struct {
	Messages []messageResponse `json:"messages"`
	Actions  []actionResponse  `json:"actions"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type insightResponse struct {
	Insight string `json:"insight"`
	Cached  bool   `json:"cached"`
}

type distressResponse struct {
	Accepted bool          `json:"accepted"`
	Reason   string        `json:"reason,omitempty"`
	Message  string        `json:"message,omitempty"`
	Mood     string        `json:"mood,omitempty"`
	Chat     *chatResponse `json:"chat,omitempty"`
}

type verifyRequest struct {
	Frame        string `json:"frame"`
	MedicationID *int64 `json:"medication_id"`
}

type verifyResponse struct {
	Verified     bool  `json:"verified"`
	LogID        int64 `json:"log_id,omitempty"`
	MedicationID int64 `json:"medication_id,omitempty"`
}

// chatHandler godoc
// @Summary Chat con el agente
// @Description Envía un mensaje al agente. Puede devolver acciones ejecutadas (notificación, voz, despertar).
// @Tags assistant
// @Accept json
// @Produce json
// @Param payload body chatRequest true "Mensaje"
// @Success 200 {object} chatResponse
// @Failure 400 {string} string "message required"
// @Router /api/assistant/chat [post]
func chatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		reply, err := svc.Chat(r.Context(), req.Message, false)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "message required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toChatResponse(reply))
	}
}

// summaryHandler godoc
// @Summary Resumen para el médico
// @Description Resumen clínico breve a partir de los últimos 20 registros. Sin IA devuelve un texto fijo.
// @Tags assistant
// @Produce json
// @Success 200 {object} summaryResponse
// @Router /api/assistant/summary [post]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, summaryResponse{Summary: svc.Summary(r.Context())})
	}
}

// insightHandler godoc
// @Summary Insight del día
// @Description Una oración sobre la adherencia. Como máximo una llamada a la IA cada 30s; dentro de la ventana vuelve la última con `cached`.
// @Tags assistant
// @Produce json
// @Success 200 {object} insightResponse
// @Router /api/assistant/insight [get]
func insightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := svc.Insight(r.Context())
		writeJSON(w, http.StatusOK, insightResponse{Insight: in.Text, Cached: in.Cached})
	}
}

// distressHandler godoc
// @Summary Señal de angustia
// @Description El cliente detectó un grito o ruido fuerte. Cooldown de 10s y una sola a la vez.
// @Tags assistant
// @Produce json
// @Success 200 {object} distressResponse
// @Failure 409 {string} string "distress monitor disabled"
// @Router /api/assistant/distress [post]
func distressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Distress(r.Context())
		if err != nil {
			if errors.Is(err, ErrDistressDisabled) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := distressResponse{Accepted: d.Accepted, Reason: d.Reason, Message: d.Message, Mood: d.Mood}
		if d.Chat != nil {
			c := toChatResponse(*d.Chat)
			out.Chat = &c
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// verifyIngestionHandler godoc
// @Summary Verificar toma por cámara
// @Description Analiza un frame JPEG en base64. Si el paciente traga la pastilla registra la toma.
// @Tags assistant
// @Accept json
// @Produce json
// @Param payload body verifyRequest true "Frame"
// @Success 200 {object} verifyResponse
// @Failure 400 {string} string "frame must be base64 jpeg"
// @Router /api/assistant/verify-ingestion [post]
func verifyIngestionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFrameBytes)

		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.VerifyIngestion(r.Context(), req.Frame, req.MedicationID)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "frame must be base64 jpeg", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, verifyResponse{Verified: v.Verified, LogID: v.LogID, MedicationID: v.MedicationID})
	}
}

func toChatResponse(c ChatReply) chatResponse {
	out := chatResponse{
		Messages: make([]messageResponse, 0, len(c.Messages)),
		Actions:  make([]actionResponse, 0, len(c.Actions)),
	}
	for _, m := range c.Messages {
		out.Messages = append(out.Messages, messageResponse{Role: m.Role, Content: m.Content})
	}
	for _, a := range c.Actions {
		out.Actions = append(out.Actions, actionResponse{
			Type:           a.Type,
			NotificationID: a.NotificationID,
			Title:          a.Title,
			Body:           a.Body,
			Category:       a.Category,
			Message:        a.Message,
			Reason:         a.Reason,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
