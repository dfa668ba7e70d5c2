package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"medisafe-companion/internal/platform/logger"
	"medisafe-companion/internal/ports/ai"
)

const (
	DefaultBaseURL     = "https://generativelanguage.googleapis.com"
	DefaultModel       = "gemini-2.0-flash"
	DefaultVisionModel = "gemini-2.5-flash"
	DefaultTimeout     = 30 * time.Second
)

var (
	ErrUpstream      = errors.New("gemini upstream error")
	ErrEmptyResponse = errors.New("gemini returned no candidates")
)

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	VisionModel string
	Timeout     time.Duration
}

// Client implementa ai.Model contra la API REST generateContent.
type Client struct {
	http        *resty.Client
	apiKey      string
	model       string
	visionModel string
	log         logger.Logger
}

func NewClient(cfg Config, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// sin reintentos: el llamador degrada a un texto fijo
	client := resty.New().
		SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:        client,
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       orDefault(cfg.Model, DefaultModel),
		visionModel: orDefault(cfg.VisionModel, DefaultVisionModel),
		log:         log.With(map[string]any{"adapter": "gemini"}),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) Generate(ctx context.Context, req ai.Request) (ai.Response, error) {
	if !c.IsConfigured() {
		return ai.Response{}, ai.ErrNotConfigured
	}

	model := c.model
	if req.Vision {
		model = c.visionModel
	}

	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(buildRequest(req)).
		SetResult(&out).
		Post("/v1beta/models/" + model + ":generateContent")
	if err != nil {
		c.log.Error("generateContent failed", map[string]any{"model": model, "err": err.Error()})
		return ai.Response{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusTooManyRequests:
		c.log.Warn("generateContent quota exceeded", map[string]any{"model": model})
		return ai.Response{}, ai.ErrQuota
	case code < 200 || code >= 300:
		c.log.Error("generateContent returned error", map[string]any{
			"model":       model,
			"status_code": code,
			"body":        truncate(resp.String(), 512),
		})
		return ai.Response{}, fmt.Errorf("%w: status=%d", ErrUpstream, code)
	}

	if len(out.Candidates) == 0 {
		return ai.Response{}, ErrEmptyResponse
	}
	return out.Candidates[0].toResponse(), nil
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
