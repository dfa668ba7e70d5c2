package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_SendsDefaultHeadersAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/v1/echo", r.URL.Path)

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL + "/", APIKey: "secret"})
	require.NoError(t, err)

	var out struct {
		Echo string `json:"echo"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "v1/echo", nil, map[string]string{"msg": "hola"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hola", out.Echo)
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, StatusOf(err))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDoJSON_RelativePathWithoutBaseURL(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	require.Error(t, err)
	assert.Zero(t, StatusOf(err))
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "::not a url"})
	assert.Error(t, err)
}
