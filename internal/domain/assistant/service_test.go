package assistant

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/domain/profile"
	"medisafe-companion/internal/domain/scheduler"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/ports/ai"
)

type fakeModel struct {
	calls []ai.Request
	resp  ai.Response
	err   error

	// block, si no es nil, se espera antes de responder
	block chan struct{}
}

func (m *fakeModel) Generate(ctx context.Context, req ai.Request) (ai.Response, error) {
	m.calls = append(m.calls, req)
	if m.block != nil {
		<-m.block
	}
	return m.resp, m.err
}

type fakeProfile struct{}

func (fakeProfile) Get(ctx context.Context) (profile.Profile, error) {
	return profile.Profile{ID: 1, Name: "Ana", Condition: "Asthma"}, nil
}

type fakeMeds struct{}

func (fakeMeds) List(ctx context.Context) ([]medications.Medication, error) {
	return []medications.Medication{{ID: 3, Name: "Salbutamol", Dosage: "2 puffs", Time: "08:00"}}, nil
}

type fakeLogs struct {
	created []doselogs.CreateInput
}

func (l *fakeLogs) Create(ctx context.Context, in doselogs.CreateInput) (doselogs.Entry, error) {
	l.created = append(l.created, in)
	return doselogs.Entry{ID: int64(len(l.created)), MedicationID: in.MedicationID, Status: in.Status}, nil
}

func (l *fakeLogs) List(ctx context.Context, limit int) ([]doselogs.EntryView, error) {
	return nil, nil
}

type fakeNotifier struct {
	got []notifications.CreateInput
}

func (n *fakeNotifier) Create(ctx context.Context, in notifications.CreateInput) (notifications.Notification, error) {
	if in.Category != "" && !in.Category.Valid() {
		return notifications.Notification{}, notifications.ErrInvalidCategory
	}
	n.got = append(n.got, in)
	cat := in.Category
	if cat == "" {
		cat = notifications.CategoryInfo
	}
	return notifications.Notification{ID: int64(len(n.got)), Title: in.Title, Body: in.Body, Category: cat}, nil
}

type fakeSettings struct {
	s settings.Settings
}

func (f *fakeSettings) Get(ctx context.Context) (settings.Settings, error) {
	return f.s, nil
}

type fakeScheduler struct {
	due     *medications.Medication
	cleared int
}

func (f *fakeScheduler) DueDose(ctx context.Context) (scheduler.NextDose, bool, error) {
	if f.due == nil {
		return scheduler.NextDose{}, false, nil
	}
	return scheduler.NextDose{Medication: *f.due}, true, nil
}

func (f *fakeScheduler) ClearSnooze() { f.cleared++ }

type fixture struct {
	svc      *Service
	model    *fakeModel
	logs     *fakeLogs
	notifier *fakeNotifier
	settings *fakeSettings
	sched    *fakeScheduler
	now      time.Time
}

func newFixture() *fixture {
	f := &fixture{
		model:    &fakeModel{},
		logs:     &fakeLogs{},
		notifier: &fakeNotifier{},
		settings: &fakeSettings{s: settings.Defaults()},
		sched:    &fakeScheduler{},
		now:      time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(Deps{
		Model:       f.model,
		Profile:     fakeProfile{},
		Medications: fakeMeds{},
		Logs:        f.logs,
		Notifier:    f.notifier,
		Settings:    f.settings,
		Scheduler:   f.sched,
	})
	f.svc.st.now = func() time.Time { return f.now }
	return f
}

func TestChat_RunsTools(t *testing.T) {
	f := newFixture()
	f.model.resp = ai.Response{
		Text: "Remember your inhaler.",
		Calls: []ai.FunctionCall{
			{Name: "send_notification", Args: map[string]string{"title": "Hydrate", "body": "Drink water", "type": "recommendation"}},
			{Name: "send_notification", Args: map[string]string{"title": "Odd", "body": "x", "type": "alarm"}},
			{Name: "talk_to_patient", Args: map[string]string{"message": "Hello Ana"}},
			{Name: "wake_up", Args: map[string]string{"reason": "Patient spoke"}},
			{Name: "self_destruct"},
		},
	}

	reply, err := f.svc.Chat(context.Background(), "hi", false)
	require.NoError(t, err)

	require.Len(t, f.model.calls, 1)
	req := f.model.calls[0]
	assert.Len(t, req.Tools, 3)
	assert.Contains(t, req.Parts[0].Text, "- Condition: Asthma")
	assert.Contains(t, req.Parts[0].Text, "- Current Meds: Salbutamol")

	require.Len(t, f.notifier.got, 2)
	// categoría desconocida cae a info
	assert.Equal(t, notifications.CategoryInfo, f.notifier.got[1].Category)

	require.Len(t, reply.Actions, 4)
	assert.Equal(t, ActionSpeak, reply.Actions[2].Type)
	assert.Equal(t, ActionWakeUp, reply.Actions[3].Type)

	require.Len(t, reply.Messages, 2)
	assert.Equal(t, "I'm awake! Reason: Patient spoke. How can I help?", reply.Messages[0].Content)
	assert.Equal(t, "Remember your inhaler.", reply.Messages[1].Content)
}

func TestChat_VoiceDisabledShowsText(t *testing.T) {
	f := newFixture()
	f.settings.s.VoiceAgentEnabled = false
	f.model.resp = ai.Response{Calls: []ai.FunctionCall{{Name: "talk_to_patient", Args: map[string]string{"message": "Breathe slowly"}}}}

	reply, err := f.svc.Chat(context.Background(), "hi", false)
	require.NoError(t, err)
	assert.Empty(t, reply.Actions)
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, "Breathe slowly", reply.Messages[0].Content)
}

func TestChat_FallbackAndValidation(t *testing.T) {
	f := newFixture()
	f.model.err = errors.New("boom")

	_, err := f.svc.Chat(context.Background(), "  ", false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	reply, err := f.svc.Chat(context.Background(), "hi", false)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.Equal(t, FallbackChat, reply.Messages[0].Content)
}

func TestSummary_Fallbacks(t *testing.T) {
	f := newFixture()

	f.model.resp = ai.Response{Text: ""}
	assert.Equal(t, EmptySummary, f.svc.Summary(context.Background()))

	f.model.err = ai.ErrQuota
	assert.Equal(t, FallbackSummary, f.svc.Summary(context.Background()))

	noModel := NewService(Deps{})
	assert.Equal(t, FallbackSummary, noModel.Summary(context.Background()))
}

func TestInsight_ThrottledTo30Seconds(t *testing.T) {
	f := newFixture()
	f.model.resp = ai.Response{Text: "Great consistency this week."}

	in := f.svc.Insight(context.Background())
	assert.Equal(t, "Great consistency this week.", in.Text)
	assert.False(t, in.Cached)

	f.now = f.now.Add(29 * time.Second)
	f.model.resp = ai.Response{Text: "other"}
	in = f.svc.Insight(context.Background())
	assert.True(t, in.Cached)
	assert.Equal(t, "Great consistency this week.", in.Text)
	assert.Len(t, f.model.calls, 1)

	f.now = f.now.Add(time.Second)
	f.model.err = ai.ErrQuota
	in = f.svc.Insight(context.Background())
	assert.Equal(t, QuotaInsight, in.Text)
	assert.Len(t, f.model.calls, 2)
}

func TestDistress_CooldownMoodAndWakeUp(t *testing.T) {
	f := newFixture()
	f.model.resp = ai.Response{Text: "Sit upright. You may be in panic; use your inhaler."}

	d, err := f.svc.Distress(context.Background())
	require.NoError(t, err)
	assert.True(t, d.Accepted)
	assert.Equal(t, "Panic", d.Mood)
	require.NotNil(t, d.Chat)
	assert.True(t, strings.HasPrefix(d.Chat.Messages[0].Content, "[Autonomous Wake-up]: EMERGENCY: Distress detected for patient with Asthma. Context: "))

	// el segundo llamado al modelo es el chat con la emergencia
	require.Len(t, f.model.calls, 2)
	assert.Contains(t, f.model.calls[1].Parts[0].Text, "User Message: EMERGENCY")

	f.now = f.now.Add(9 * time.Second)
	d, err = f.svc.Distress(context.Background())
	require.NoError(t, err)
	assert.False(t, d.Accepted)
	assert.Equal(t, "cooldown", d.Reason)

	f.now = f.now.Add(time.Second)
	f.model.err = ai.ErrQuota
	d, err = f.svc.Distress(context.Background())
	require.NoError(t, err)
	assert.True(t, d.Accepted)
	assert.Equal(t, QuotaDistress, d.Message)
	assert.Equal(t, "Distressed", d.Mood)
}

func TestDistress_InFlightAndDisabled(t *testing.T) {
	f := newFixture()
	f.model.block = make(chan struct{})
	f.model.resp = ai.Response{Text: "calm"}

	done := make(chan DistressReply)
	go func() {
		d, _ := f.svc.Distress(context.Background())
		done <- d
	}()

	require.Eventually(t, func() bool {
		f.svc.st.mu.Lock()
		defer f.svc.st.mu.Unlock()
		return f.svc.st.distressInFlight
	}, time.Second, time.Millisecond)

	f.now = f.now.Add(time.Minute)
	d, err := f.svc.Distress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "in_flight", d.Reason)

	close(f.model.block)
	assert.True(t, (<-done).Accepted)

	f.settings.s.DistressMonitorEnabled = false
	_, err = f.svc.Distress(context.Background())
	assert.ErrorIs(t, err, ErrDistressDisabled)
}

func TestSnoozeDisclaimer(t *testing.T) {
	f := newFixture()
	m := medications.Medication{Name: "Salbutamol", Dosage: "2 puffs"}

	f.model.resp = ai.Response{Text: "Do not delay."}
	assert.Equal(t, "Do not delay.", f.svc.SnoozeDisclaimer(context.Background(), m))
	assert.Contains(t, f.model.calls[0].Parts[0].Text, "snooze their Salbutamol (2 puffs). Their condition is Asthma.")

	f.model.resp = ai.Response{}
	assert.Equal(t, EmptyDisclaimer, f.svc.SnoozeDisclaimer(context.Background(), m))

	f.model.err = errors.New("down")
	assert.Equal(t, scheduler.FallbackDisclaimer, f.svc.SnoozeDisclaimer(context.Background(), m))
}

func TestVerifyIngestion(t *testing.T) {
	frame := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff})

	t.Run("yes logs the due dose", func(t *testing.T) {
		f := newFixture()
		f.sched.due = &medications.Medication{ID: 3, Name: "Salbutamol"}
		f.model.resp = ai.Response{Text: "YES"}

		v, err := f.svc.VerifyIngestion(context.Background(), frame, nil)
		require.NoError(t, err)
		assert.True(t, v.Verified)
		assert.Equal(t, int64(1), v.LogID)
		assert.Equal(t, int64(3), v.MedicationID)

		require.Len(t, f.logs.created, 1)
		assert.Equal(t, doselogs.StatusTaken, f.logs.created[0].Status)
		assert.Equal(t, 1, f.sched.cleared)

		req := f.model.calls[0]
		assert.True(t, req.Vision)
		require.Len(t, req.Parts, 2)
		assert.Equal(t, "image/jpeg", req.Parts[1].InlineData.MIMEType)
		assert.False(t, strings.HasPrefix(req.Parts[1].InlineData.Data, "data:"))
	})

	t.Run("known medication id is logged as given", func(t *testing.T) {
		f := newFixture()
		f.model.resp = ai.Response{Text: "YES"}
		id := int64(3)

		v, err := f.svc.VerifyIngestion(context.Background(), frame, &id)
		require.NoError(t, err)
		assert.Equal(t, int64(3), v.MedicationID)
		require.Len(t, f.logs.created, 1)
		assert.Equal(t, int64(3), *f.logs.created[0].MedicationID)
	})

	t.Run("unknown medication id falls back to the due dose", func(t *testing.T) {
		f := newFixture()
		f.sched.due = &medications.Medication{ID: 3, Name: "Salbutamol"}
		f.model.resp = ai.Response{Text: "YES"}
		deleted := int64(42)

		v, err := f.svc.VerifyIngestion(context.Background(), frame, &deleted)
		require.NoError(t, err)
		assert.True(t, v.Verified)
		assert.Equal(t, int64(3), v.MedicationID)
		require.Len(t, f.logs.created, 1)
		assert.Equal(t, int64(3), *f.logs.created[0].MedicationID)
	})

	t.Run("unknown medication id without due dose logs nothing", func(t *testing.T) {
		f := newFixture()
		f.model.resp = ai.Response{Text: "YES"}
		deleted := int64(42)

		v, err := f.svc.VerifyIngestion(context.Background(), frame, &deleted)
		require.NoError(t, err)
		assert.True(t, v.Verified)
		assert.Zero(t, v.LogID)
		assert.Empty(t, f.logs.created)
	})

	t.Run("no or error is not verified", func(t *testing.T) {
		f := newFixture()
		f.model.resp = ai.Response{Text: "NO"}

		v, err := f.svc.VerifyIngestion(context.Background(), frame, nil)
		require.NoError(t, err)
		assert.False(t, v.Verified)

		f.model.err = errors.New("vision down")
		v, err = f.svc.VerifyIngestion(context.Background(), frame, nil)
		require.NoError(t, err)
		assert.False(t, v.Verified)
		assert.Empty(t, f.logs.created)
		assert.Zero(t, f.sched.cleared)
	})

	t.Run("invalid frame", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.VerifyIngestion(context.Background(), "not base64!!", nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, f.model.calls)
	})
}

func TestExtractMood(t *testing.T) {
	assert.Equal(t, "Panic", ExtractMood("signs of PANIC"))
	assert.Equal(t, "Pain", ExtractMood("chest pain"))
	assert.Equal(t, "Fear", ExtractMood("fear of"))
	assert.Equal(t, "Distressed", ExtractMood("stay calm"))
}
