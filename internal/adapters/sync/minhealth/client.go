package minhealth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("minhealth client not configured")
	ErrUnauthorized  = errors.New("minhealth unauthorized")
	ErrUpstream      = errors.New("minhealth upstream error")
)

const doseLogsPath = "/v1/dose-logs"

type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío se usa "X-Api-Key".
	APIKeyHeader string

	Timeout   time.Duration
	Transport http.RoundTripper // tests
}

// Client empuja registros de toma al registro nacional MinHealth.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return &Client{}, nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	hc, err := httpclient.New(httpclient.Config{
		BaseURL:      cfg.BaseURL,
		Timeout:      timeout,
		Transport:    cfg.Transport,
		APIKey:       cfg.APIKey,
		APIKeyHeader: cfg.APIKeyHeader,
		UserAgent:    "medisafe-companion",
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil
}

// DoseLogPayload es el cuerpo que espera MinHealth.
type DoseLogPayload struct {
	ExternalID   int64  `json:"external_id"`
	MedicationID *int64 `json:"medication_id,omitempty"`
	Status       string `json:"status"`
	Mood         string `json:"mood"`
	Notes        string `json:"notes,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// PushDoseLog manda un registro. Cada llamada lleva un Idempotency-Key nuevo.
func (c *Client) PushDoseLog(ctx context.Context, e doselogs.Entry) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	body := DoseLogPayload{
		ExternalID:   e.ID,
		MedicationID: e.MedicationID,
		Status:       string(e.Status),
		Mood:         e.Mood,
		Notes:        e.Notes,
		Timestamp:    e.Timestamp.UTC().Format(time.RFC3339),
	}
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}

	err := c.http.DoJSON(ctx, http.MethodPost, doseLogsPath, headers, body, nil)
	switch status := httpclient.StatusOf(err); {
	case err == nil:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
