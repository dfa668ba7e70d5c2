package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/adapters/storage/memory"
	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/domain/scheduler"
	"medisafe-companion/internal/domain/settings"
)

type testEnv struct {
	server  *Server
	meds    *medications.Service
	tracker *scheduler.Tracker
}

func setupServer(t *testing.T) testEnv {
	t.Helper()

	medRepo := memory.NewMedicationRepo()
	meds := medications.NewService(medRepo)
	st := settings.NewService(memory.NewSettingsRepo())

	tracker := scheduler.NewTracker(nil, time.UTC)
	feed := notifications.NewFeed(notifications.NewIDSource(time.Now), 0)
	runner := scheduler.NewRunner(meds, st, tracker, feed, nil, scheduler.Config{Location: time.UTC})

	logs := doselogs.NewService(memory.NewDoseLogRepo(medRepo), nil, tracker)

	return testEnv{
		server:  NewServer(meds, logs, runner, "test"),
		meds:    meds,
		tracker: tracker,
	}
}

func TestNewServer(t *testing.T) {
	env := setupServer(t)
	require.NotNil(t, env.server.mcpServer)
}

func TestHandleListMedicationsAndNextDose(t *testing.T) {
	env := setupServer(t)
	ctx := context.Background()

	_, next, err := env.server.handleNextDose(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	assert.False(t, next.Found)
	assert.Equal(t, "No medications scheduled", next.Message)

	_, err = env.meds.Create(ctx, medications.CreateInput{Name: "Metformin", Dosage: "850mg", Time: "08:00"})
	require.NoError(t, err)

	_, list, err := env.server.handleListMedications(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Metformin", list.Medications[0].Name)
	assert.Equal(t, "Daily", list.Medications[0].Frequency)

	// una sola medicación siempre es la próxima (hoy o mañana)
	_, next, err = env.server.handleNextDose(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	assert.True(t, next.Found)
	assert.Equal(t, "Metformin", next.Medication.Name)
	assert.Equal(t, string(scheduler.StatePending), next.State)
}

func TestHandleLogDose(t *testing.T) {
	env := setupServer(t)
	ctx := context.Background()

	m, err := env.meds.Create(ctx, medications.CreateInput{Name: "Lisinopril", Time: "09:00"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   logDoseInput
		wantErr string
	}{
		{name: "taken with medication", input: logDoseInput{MedicationID: m.ID, Status: "taken", Mood: "Good"}},
		{name: "general missed", input: logDoseInput{Status: "missed"}},
		{name: "unknown medication", input: logDoseInput{MedicationID: 99, Status: "taken"}, wantErr: "not found"},
		{name: "bad status", input: logDoseInput{Status: "skipped"}, wantErr: "invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := env.server.handleLogDose(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, out.Log.ID)
			assert.Equal(t, tt.input.Status, out.Log.Status)
		})
	}

	_, logs, err := env.server.handleListLogs(ctx, &mcp.CallToolRequest{}, listLogsInput{})
	require.NoError(t, err)
	require.Equal(t, 2, logs.Count)
	assert.Equal(t, "missed", logs.Logs[0].Status)
	assert.Equal(t, "Lisinopril", logs.Logs[1].MedicationName)
	assert.Equal(t, "Good", logs.Logs[1].Mood)

	// el registro cerró la instancia del día
	st, err := env.tracker.State(ctx, scheduler.KeyFor(m.ID, time.Now().In(time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, scheduler.StateTaken, st)
}

func TestHandleListLogs_Limit(t *testing.T) {
	env := setupServer(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := env.server.handleLogDose(ctx, &mcp.CallToolRequest{}, logDoseInput{Status: "taken"})
		require.NoError(t, err)
	}

	_, out, err := env.server.handleListLogs(ctx, &mcp.CallToolRequest{}, listLogsInput{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
}

func TestHandleAdherenceResource(t *testing.T) {
	env := setupServer(t)

	res, err := env.server.handleAdherenceResource(context.Background(), &mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, adherenceURI, res.Contents[0].URI)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &out))
	assert.Equal(t, "Not enough data to compare.", out["message"])
}
