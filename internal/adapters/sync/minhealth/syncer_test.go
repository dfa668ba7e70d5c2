package minhealth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/settings"
)

type fakeSettings struct{ s settings.Settings }

func (f fakeSettings) Get(context.Context) (settings.Settings, error) { return f.s, nil }

func enabled(on bool) fakeSettings {
	s := settings.Defaults()
	s.MinHealthSyncEnabled = on
	return fakeSettings{s: s}
}

func entry() doselogs.Entry {
	id := int64(4)
	return doselogs.Entry{
		ID:           12,
		MedicationID: &id,
		Status:       doselogs.StatusTaken,
		Mood:         "Good",
		Timestamp:    time.Date(2026, 3, 1, 8, 2, 0, 0, time.UTC),
	}
}

func TestSyncer_PushesWhenEnabled(t *testing.T) {
	var (
		calls int
		keys  []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, doseLogsPath, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		keys = append(keys, r.Header.Get("Idempotency-Key"))

		var in DoseLogPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, int64(12), in.ExternalID)
		assert.Equal(t, "taken", in.Status)
		assert.Equal(t, "2026-03-01T08:02:00Z", in.Timestamp)
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "secret"})
	require.NoError(t, err)

	s := NewSyncer(c, enabled(true), nil)
	require.NoError(t, s.OnDoseLogged(context.Background(), entry()))
	require.NoError(t, s.OnDoseLogged(context.Background(), entry()))

	assert.Equal(t, 2, calls)
	require.Len(t, keys, 2)
	_, err = uuid.Parse(keys[0])
	assert.NoError(t, err)
	assert.NotEqual(t, keys[0], keys[1])
}

func TestSyncer_SkipsWhenDisabledOrUnconfigured(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "secret"})
	require.NoError(t, err)
	require.NoError(t, NewSyncer(c, enabled(false), nil).OnDoseLogged(context.Background(), entry()))

	bare, err := NewClient(Config{})
	require.NoError(t, err)
	assert.False(t, bare.IsConfigured())
	require.NoError(t, NewSyncer(bare, enabled(true), nil).OnDoseLogged(context.Background(), entry()))

	assert.Zero(t, calls)
}

func TestClient_ErrorMapping(t *testing.T) {
	status := http.StatusUnauthorized
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "secret"})
	require.NoError(t, err)

	assert.ErrorIs(t, c.PushDoseLog(context.Background(), entry()), ErrUnauthorized)

	status = http.StatusBadGateway
	assert.ErrorIs(t, c.PushDoseLog(context.Background(), entry()), ErrUpstream)

	assert.ErrorIs(t, (&Client{}).PushDoseLog(context.Background(), entry()), ErrNotConfigured)
}
