package assistant

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/domain/profile"
	"medisafe-companion/internal/domain/scheduler"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/platform/logger"
	"medisafe-companion/internal/ports/ai"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDistressDisabled = errors.New("distress monitor disabled")
)

type ProfileReader interface {
	Get(ctx context.Context) (profile.Profile, error)
}

type MedicationLister interface {
	List(ctx context.Context) ([]medications.Medication, error)
}

type DoseLogs interface {
	Create(ctx context.Context, in doselogs.CreateInput) (doselogs.Entry, error)
	List(ctx context.Context, limit int) ([]doselogs.EntryView, error)
}

type MedBoxReader interface {
	Get(ctx context.Context) (medbox.MedBox, error)
}

type Notifier interface {
	Create(ctx context.Context, in notifications.CreateInput) (notifications.Notification, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

type DoseScheduler interface {
	DueDose(ctx context.Context) (scheduler.NextDose, bool, error)
	ClearSnooze()
}

type Deps struct {
	Model       ai.Model // nil = sin IA, todo degrada a textos fijos
	Profile     ProfileReader
	Medications MedicationLister
	Logs        DoseLogs
	MedBox      MedBoxReader
	Notifier    Notifier
	Settings    SettingsReader
	Scheduler   DoseScheduler
	Logger      logger.Logger
}

type Service struct {
	d   Deps
	log logger.Logger
	st  *state
}

func NewService(d Deps) *Service {
	log := d.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		d:   d,
		log: log.With(map[string]any{"component": "assistant"}),
		st:  &state{now: time.Now},
	}
}

func (s *Service) generate(ctx context.Context, req ai.Request) (ai.Response, error) {
	if s.d.Model == nil {
		return ai.Response{}, ai.ErrNotConfigured
	}
	return s.d.Model.Generate(ctx, req)
}

type ChatReply struct {
	Messages []Message
	Actions  []Action
}

// Chat manda el mensaje con el contexto del paciente y ejecuta las tools que pida el modelo.
// autonomous = despertado por el sistema (distress), no por el paciente.
func (s *Service) Chat(ctx context.Context, message string, autonomous bool) (ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{}, ErrInvalidInput
	}

	var reply ChatReply
	if autonomous {
		reply.Messages = append(reply.Messages, Message{Role: RoleAssistant, Content: autonomousMessage(message)})
	}

	p, meds, box := s.context(ctx)
	resp, err := s.generate(ctx, ai.Request{
		Parts: []ai.Part{{Text: chatPrompt(message, p, meds, box)}},
		Tools: agentTools,
	})
	if err != nil {
		s.log.Warn("chat generate failed", map[string]any{"err": err})
		reply.Messages = append(reply.Messages, Message{Role: RoleAssistant, Content: FallbackChat})
		return reply, nil
	}

	for _, call := range resp.Calls {
		a, msg, ok := s.runTool(ctx, call)
		if ok {
			reply.Actions = append(reply.Actions, a)
		}
		if msg != "" {
			reply.Messages = append(reply.Messages, Message{Role: RoleAssistant, Content: msg})
		}
	}
	if t := strings.TrimSpace(resp.Text); t != "" {
		reply.Messages = append(reply.Messages, Message{Role: RoleAssistant, Content: t})
	}
	return reply, nil
}

// runTool ejecuta una llamada. Args faltantes o inválidos descartan la llamada (se loguea).
func (s *Service) runTool(ctx context.Context, call ai.FunctionCall) (Action, string, bool) {
	switch call.Name {
	case toolSendNotification:
		in := notifications.CreateInput{
			Title:    call.Args["title"],
			Body:     call.Args["body"],
			Category: notifications.Category(call.Args["type"]),
		}
		if s.d.Notifier == nil {
			return Action{}, "", false
		}
		n, err := s.d.Notifier.Create(ctx, in)
		if errors.Is(err, notifications.ErrInvalidCategory) {
			in.Category = notifications.CategoryInfo
			n, err = s.d.Notifier.Create(ctx, in)
		}
		if err != nil {
			s.log.Warn("send_notification failed", map[string]any{"err": err})
			return Action{}, "", false
		}
		return Action{
			Type:           ActionNotification,
			NotificationID: n.ID,
			Title:          n.Title,
			Body:           n.Body,
			Category:       string(n.Category),
		}, "", true

	case toolTalkToPatient:
		msg := strings.TrimSpace(call.Args["message"])
		if msg == "" {
			return Action{}, "", false
		}
		// con la voz apagada se muestra como texto
		if !s.voiceEnabled(ctx) {
			return Action{}, msg, false
		}
		return Action{Type: ActionSpeak, Message: msg}, "", true

	case toolWakeUp:
		reason := strings.TrimSpace(call.Args["reason"])
		if reason == "" {
			return Action{}, "", false
		}
		return Action{Type: ActionWakeUp, Reason: reason}, wakeUpMessage(reason), true

	default:
		s.log.Warn("unknown tool call", map[string]any{"name": call.Name})
		return Action{}, "", false
	}
}

// Summary genera el resumen para el médico con los últimos 20 registros.
func (s *Service) Summary(ctx context.Context) string {
	p, meds, _ := s.context(ctx)

	var logs []doselogs.EntryView
	if s.d.Logs != nil {
		var err error
		logs, err = s.d.Logs.List(ctx, summaryLogLimit)
		if err != nil {
			s.log.Warn("summary logs read failed", map[string]any{"err": err})
		}
	}

	resp, err := s.generate(ctx, ai.TextRequest(summaryPrompt(p, meds, logs)))
	if err != nil {
		s.log.Warn("summary generate failed", map[string]any{"err": err})
		return FallbackSummary
	}
	if t := strings.TrimSpace(resp.Text); t != "" {
		return t
	}
	return EmptySummary
}

type Insight struct {
	Text   string
	Cached bool
}

// Insight pide una frase del día, como mucho una vez cada InsightInterval.
func (s *Service) Insight(ctx context.Context) Insight {
	due, last := s.st.insightDue()
	if last == "" {
		last = DefaultInsight
	}
	if !due {
		return Insight{Text: last, Cached: true}
	}

	p, meds, _ := s.context(ctx)
	resp, err := s.generate(ctx, ai.TextRequest(insightPrompt(p, meds)))
	if err != nil {
		s.log.Warn("insight generate failed", map[string]any{"err": err})
		if errors.Is(err, ai.ErrQuota) {
			s.st.setInsight(QuotaInsight)
			return Insight{Text: QuotaInsight}
		}
		return Insight{Text: last, Cached: true}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		text = DefaultInsight
	}
	s.st.setInsight(text)
	return Insight{Text: text}
}

type DistressReply struct {
	Accepted bool
	Reason   string // cooldown | in_flight
	Message  string
	Mood     string
	Chat     *ChatReply
}

// Distress responde a una señal de angustia: primeros auxilios, ánimo probable y
// un despertar autónomo del chat con el contexto de emergencia.
func (s *Service) Distress(ctx context.Context) (DistressReply, error) {
	if st, err := s.settings(ctx); err == nil && !st.DistressMonitorEnabled {
		return DistressReply{}, ErrDistressDisabled
	}

	if gate := s.st.beginDistress(); gate != gateOpen {
		return DistressReply{Reason: string(gate)}, nil
	}
	defer s.st.endDistress()

	p, _, _ := s.context(ctx)
	out := DistressReply{Accepted: true, Message: DistressAck, Mood: "Distressed"}

	resp, err := s.generate(ctx, ai.TextRequest(distressPrompt(p.Condition)))
	if err != nil {
		s.log.Warn("distress generate failed", map[string]any{"err": err})
		if errors.Is(err, ai.ErrQuota) {
			out.Message = QuotaDistress
		}
		return out, nil
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		text = DistressEmpty
	}
	out.Message = text
	out.Mood = ExtractMood(text)

	chat, err := s.Chat(ctx, emergencyMessage(p.Condition, text), true)
	if err == nil {
		out.Chat = &chat
	}
	return out, nil
}

// SnoozeDisclaimer implementa scheduler.DisclaimerWriter.
func (s *Service) SnoozeDisclaimer(ctx context.Context, m medications.Medication) string {
	p, _, _ := s.context(ctx)
	resp, err := s.generate(ctx, ai.TextRequest(disclaimerPrompt(m, p.Condition)))
	if err != nil {
		s.log.Warn("disclaimer generate failed", map[string]any{"err": err})
		return scheduler.FallbackDisclaimer
	}
	if t := strings.TrimSpace(resp.Text); t != "" {
		return t
	}
	return EmptyDisclaimer
}

type Verification struct {
	Verified     bool
	LogID        int64
	MedicationID int64
}

// VerifyIngestion analiza un frame JPEG (base64, con o sin prefijo data:). Con "YES" registra
// la toma de la dosis pendiente y levanta el snooze. Un "NO" o un error devuelven
// Verified=false: el cliente manda el próximo frame.
func (s *Service) VerifyIngestion(ctx context.Context, frame string, medicationID *int64) (Verification, error) {
	data, err := normalizeFrame(frame)
	if err != nil {
		return Verification{}, err
	}

	resp, err := s.generate(ctx, ai.Request{
		Vision: true,
		Parts: []ai.Part{
			{Text: ingestionVerifyPrompt},
			{InlineData: &ai.Blob{MIMEType: "image/jpeg", Data: data}},
		},
	})
	if err != nil {
		s.log.Warn("vision generate failed", map[string]any{"err": err})
		return Verification{}, nil
	}
	if !strings.Contains(resp.Text, "YES") {
		return Verification{}, nil
	}

	out := Verification{Verified: true}

	medID := medicationID
	if medID != nil && !s.medicationExists(ctx, *medID) {
		// borrada o inventada: se registra contra la dosis pendiente
		s.log.Warn("verify ingestion: unknown medication", map[string]any{"medication_id": *medID})
		medID = nil
	}
	if medID == nil && s.d.Scheduler != nil {
		nd, ok, err := s.d.Scheduler.DueDose(ctx)
		if err != nil {
			s.log.Warn("due dose read failed", map[string]any{"err": err})
		}
		if ok {
			id := nd.Medication.ID
			medID = &id
		}
	}

	if medID != nil && s.d.Logs != nil {
		e, err := s.d.Logs.Create(ctx, doselogs.CreateInput{
			MedicationID: medID,
			Status:       doselogs.StatusTaken,
			Notes:        "Verified by camera",
		})
		if err != nil {
			s.log.Warn("verified dose log failed", map[string]any{"err": err})
		} else {
			out.LogID = e.ID
			out.MedicationID = *medID
		}
	}
	if s.d.Scheduler != nil {
		s.d.Scheduler.ClearSnooze()
	}

	s.log.Info("ingestion verified", map[string]any{"medication_id": out.MedicationID, "log_id": out.LogID})
	return out, nil
}

func (s *Service) medicationExists(ctx context.Context, id int64) bool {
	if s.d.Medications == nil {
		return false
	}
	meds, err := s.d.Medications.List(ctx)
	if err != nil {
		s.log.Warn("medication list failed", map[string]any{"err": err})
		return false
	}
	for _, m := range meds {
		if m.ID == id {
			return true
		}
	}
	return false
}

func normalizeFrame(frame string) (string, error) {
	frame = strings.TrimSpace(frame)
	if i := strings.Index(frame, ","); strings.HasPrefix(frame, "data:") && i >= 0 {
		frame = frame[i+1:]
	}
	if frame == "" {
		return "", ErrInvalidInput
	}
	if _, err := base64.StdEncoding.DecodeString(frame); err != nil {
		return "", ErrInvalidInput
	}
	return frame, nil
}

// context junta perfil, medicaciones y pastillero. Lo que falle se loguea y va vacío.
func (s *Service) context(ctx context.Context) (profile.Profile, []medications.Medication, medbox.MedBox) {
	var (
		p    profile.Profile
		meds []medications.Medication
		box  medbox.MedBox
		err  error
	)
	if s.d.Profile != nil {
		if p, err = s.d.Profile.Get(ctx); err != nil {
			s.log.Warn("profile read failed", map[string]any{"err": err})
		}
	}
	if s.d.Medications != nil {
		if meds, err = s.d.Medications.List(ctx); err != nil {
			s.log.Warn("medications read failed", map[string]any{"err": err})
		}
	}
	if s.d.MedBox != nil {
		if box, err = s.d.MedBox.Get(ctx); err != nil {
			s.log.Warn("medbox read failed", map[string]any{"err": err})
		}
	}
	return p, meds, box
}

func (s *Service) settings(ctx context.Context) (settings.Settings, error) {
	if s.d.Settings == nil {
		return settings.Defaults(), nil
	}
	return s.d.Settings.Get(ctx)
}

func (s *Service) voiceEnabled(ctx context.Context) bool {
	st, err := s.settings(ctx)
	if err != nil {
		return true
	}
	return st.VoiceAgentEnabled
}
