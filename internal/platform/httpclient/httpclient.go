package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Client envuelve *http.Client con helpers JSON para adapters de sistemas externos
// (MinHealth, etc). Sin reintentos: el siguiente intento es el siguiente evento.
type Client struct {
	HTTP    *http.Client
	BaseURL string // opcional; si se define, DoJSON acepta paths relativos

	// Headers que se mandan en cada request (API key, user agent...).
	Headers map[string]string
}

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper // opcional (tests)

	APIKey       string
	APIKeyHeader string // default "X-Api-Key"
	UserAgent    string
}

// New crea un Client a partir de Config. BaseURL inválida => error.
func New(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := cfg.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}

	c := &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
		Headers: map[string]string{},
	}

	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("invalid base url: %w", err)
		}
		c.BaseURL = strings.TrimRight(base, "/")
	}

	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		h := strings.TrimSpace(cfg.APIKeyHeader)
		if h == "" {
			h = "X-Api-Key"
		}
		c.Headers[h] = key
	}
	if ua := strings.TrimSpace(cfg.UserAgent); ua != "" {
		c.Headers["User-Agent"] = ua
	}

	return c, nil
}

// HTTPError es una respuesta fuera de 2xx; Body va recortado a 1MB.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("httpclient: unexpected status %d", e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// StatusOf devuelve el status de un *HTTPError envuelto, o 0.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// DoJSON manda in como JSON (nil => sin body) y decodifica la respuesta en out (nil => se ignora).
// pathOrURL es absoluta o relativa a BaseURL; headers pisa a c.Headers.
// Un status fuera de 2xx vuelve como *HTTPError.
func (c *Client) DoJSON(ctx context.Context, method, pathOrURL string, headers map[string]string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	req, err := c.newRequest(ctx, method, pathOrURL, headers, in)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	return decode(resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, pathOrURL string, headers map[string]string, in any) (*http.Request, error) {
	target, err := c.resolveURL(pathOrURL)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, set := range []map[string]string{c.Headers, headers} {
		for k, v := range set {
			if k = strings.TrimSpace(k); k != "" {
				req.Header.Set(k, v)
			}
		}
	}
	return req, nil
}

func decode(resp *http.Response, out any) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode/100 != 2 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: decode body: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	p := strings.TrimSpace(pathOrURL)
	switch {
	case p == "":
		return "", errors.New("httpclient: empty url")
	case strings.HasPrefix(p, "http://"), strings.HasPrefix(p, "https://"):
		return p, nil
	case c.BaseURL == "":
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	return c.BaseURL + "/" + strings.TrimPrefix(p, "/"), nil
}
