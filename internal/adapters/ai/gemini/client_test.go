package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/ports/ai"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewClient(Config{BaseURL: ts.URL, APIKey: "k"}, nil)
}

func TestGenerate_TextAndFunctionCalls(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/"+DefaultModel+":generateContent", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-goog-api-key"))

		var in generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Len(t, in.Tools, 1)
		decl := in.Tools[0].FunctionDeclarations[0]
		assert.Equal(t, "send_notification", decl.Name)
		assert.Equal(t, []string{"title"}, decl.Parameters.Required)
		assert.Equal(t, []string{"info", "urgent"}, decl.Parameters.Properties["type"].Enum)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[
			{"text":"Hello "},
			{"text":"there"},
			{"functionCall":{"name":"send_notification","args":{"title":"Drink water","type":"info"}}}
		]}}]}`))
	})

	req := ai.TextRequest("hi")
	req.Tools = []ai.Tool{{
		Name: "send_notification",
		Params: []ai.Param{
			{Name: "title", Required: true},
			{Name: "type", Enum: []string{"info", "urgent"}},
		},
	}}

	resp, err := c.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Hello there", resp.Text)
	require.Len(t, resp.Calls, 1)
	assert.Equal(t, "Drink water", resp.Calls[0].Args["title"])
}

func TestGenerate_VisionUsesVisionModel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/"+DefaultVisionModel+":generateContent", r.URL.Path)

		var in generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Len(t, in.Contents[0].Parts, 2)
		assert.Equal(t, "image/jpeg", in.Contents[0].Parts[0].InlineData.MIMEType)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"YES"}]}}]}`))
	})

	resp, err := c.Generate(context.Background(), ai.Request{
		Vision: true,
		Parts: []ai.Part{
			{InlineData: &ai.Blob{MIMEType: "image/jpeg", Data: "AAAA"}},
			{Text: "Is the patient swallowing a pill?"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "YES", resp.Text)
}

func TestGenerate_QuotaMapsToErrQuota(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"status":"RESOURCE_EXHAUSTED"}}`, http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), ai.TextRequest("hi"))
	assert.ErrorIs(t, err, ai.ErrQuota)
}

func TestGenerate_UpstreamAndEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := c.Generate(context.Background(), ai.TextRequest("hi"))
	assert.ErrorIs(t, err, ErrUpstream)

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})
	_, err = c.Generate(context.Background(), ai.TextRequest("hi"))
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerate_NotConfigured(t *testing.T) {
	c := NewClient(Config{}, nil)
	assert.False(t, c.IsConfigured())

	_, err := c.Generate(context.Background(), ai.TextRequest("hi"))
	assert.ErrorIs(t, err, ai.ErrNotConfigured)
}
