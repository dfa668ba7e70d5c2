package doselogs

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// ReportWriter serializa los registros a un formato descargable (xlsx).
type ReportWriter interface {
	ContentType() string
	FileExtension() string
	WriteDoseLogs(w io.Writer, items []EntryView, generatedAt time.Time) error
}

func RegisterRoutes(r chi.Router, svc *Service, report ReportWriter) {
	r.Route("/api/logs", func(lr chi.Router) {
		lr.Get("/", listLogsHandler(svc))
		lr.Post("/", createLogHandler(svc))
		lr.Get("/adherence", adherenceHandler(svc))

		if report != nil {
			lr.Get("/export", exportLogsHandler(svc, report))
		}
	})
}

type createLogRequest struct {
	MedicationID *int64 `json:"medication_id"`
	Status       Status `json:"status" enums:"taken,missed"`
	Mood         string `json:"mood"`
	Notes        string `json:"notes"`
}

// logResponse: medication_name vacío + orphaned=true si la medicación fue borrada.
type logResponse struct {
	ID             int64     `json:"id"`
	MedicationID   *int64    `json:"medication_id"`
	MedicationName *string   `json:"medication_name"`
	Orphaned       bool      `json:"orphaned"`
	Status         Status    `json:"status"`
	Mood           string    `json:"mood"`
	Notes          string    `json:"notes"`
	Timestamp      time.Time `json:"timestamp"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type adherenceResponse struct {
	TodayPercent float64 `json:"today_percent"`
	PastPercent  float64 `json:"past_percent"`
	Message      string  `json:"message"`
}

// listLogsHandler godoc
// @Summary Listar registros de toma
// @Description Registros de toma (taken/missed) más recientes primero, con el nombre de la medicación. Si la medicación fue borrada, `orphaned` es true.
// @Tags logs
// @Produce json
// @Param limit query int false "Máximo de registros (por defecto todos)"
// @Success 200 {array} logResponse
// @Failure 500 {string} string "internal error"
// @Router /api/logs [get]
func listLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		items, err := svc.List(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]logResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toLogResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createLogHandler godoc
// @Summary Registrar toma
// @Description Registra una toma (`taken`) u omisión (`missed`). El registro es inmutable.
// @Tags logs
// @Accept json
// @Produce json
// @Param payload body createLogRequest true "Registro"
// @Success 200 {object} idResponse
// @Failure 400 {string} string "invalid json / status must be taken or missed"
// @Failure 500 {string} string "internal error"
// @Router /api/logs [post]
func createLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			MedicationID: req.MedicationID,
			Status:       req.Status,
			Mood:         req.Mood,
			Notes:        req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidStatus) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, idResponse{ID: e.ID})
	}
}

// adherenceHandler godoc
// @Summary Adherencia
// @Description Porcentaje de tomas de hoy contra días anteriores. Con menos de 2 registros no hay comparación.
// @Tags logs
// @Produce json
// @Success 200 {object} adherenceResponse
// @Failure 500 {string} string "internal error"
// @Router /api/logs/adherence [get]
func adherenceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Adherence(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, adherenceResponse{
			TodayPercent: a.TodayPercent,
			PastPercent:  a.PastPercent,
			Message:      a.Message,
		})
	}
}

// exportLogsHandler godoc
// @Summary Exportar registros
// @Description Descarga el historial de tomas como planilla para el médico.
// @Tags logs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {string} string "internal error"
// @Router /api/logs/export [get]
func exportLogsHandler(svc *Service, report ReportWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), 0)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := svc.now()

		// Se arma en memoria para poder responder 500 si falla a mitad.
		var buf bytes.Buffer
		if err := report.WriteDoseLogs(&buf, items, now); err != nil {
			svc.log.Error("export dose logs failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		filename := "dose-logs-" + now.Format("20060102") + report.FileExtension()
		w.Header().Set("Content-Type", report.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

func toLogResponse(it EntryView) logResponse {
	out := logResponse{
		ID:           it.ID,
		MedicationID: it.MedicationID,
		Orphaned:     it.Orphaned,
		Status:       it.Status,
		Mood:         it.Mood,
		Notes:        it.Notes,
		Timestamp:    it.Timestamp,
	}
	if it.MedicationName != "" {
		name := it.MedicationName
		out.MedicationName = &name
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
