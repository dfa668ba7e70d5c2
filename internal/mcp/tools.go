package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medications"
)

const defaultLogLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_medications",
		Description: "List the patient's scheduled medications ordered by id",
	}, s.handleListMedications)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "next_dose",
		Description: "Get the next scheduled dose and its state for that day",
	}, s.handleNextDose)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_dose",
		Description: "Record a dose as taken or missed",
	}, s.handleLogDose)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_logs",
		Description: "List recent dose logs, newest first",
	}, s.handleListLogs)
}

type emptyInput struct{}

type medicationOutput struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Time      string `json:"time"`
}

type listMedicationsOutput struct {
	Medications []medicationOutput `json:"medications"`
	Count       int                `json:"count"`
}

type nextDoseOutput struct {
	Found      bool              `json:"found"`
	Medication *medicationOutput `json:"medication,omitempty"`
	Scheduled  string            `json:"scheduled,omitempty"`
	State      string            `json:"state,omitempty"`
	Message    string            `json:"message"`
}

type logDoseInput struct {
	MedicationID int64  `json:"medication_id,omitempty" jsonschema:"Medication id; omit for a general log"`
	Status       string `json:"status" jsonschema:"taken or missed"`
	Mood         string `json:"mood,omitempty" jsonschema:"How the patient feels (defaults to Normal)"`
	Notes        string `json:"notes,omitempty" jsonschema:"Free text notes"`
}

type logOutput struct {
	ID             int64  `json:"id"`
	MedicationID   *int64 `json:"medication_id,omitempty"`
	MedicationName string `json:"medication_name,omitempty"`
	Orphaned       bool   `json:"orphaned,omitempty"`
	Status         string `json:"status"`
	Mood           string `json:"mood"`
	Notes          string `json:"notes,omitempty"`
	Timestamp      string `json:"timestamp"`
}

type logDoseOutput struct {
	Log     logOutput `json:"log"`
	Message string    `json:"message"`
}

type listLogsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listLogsOutput struct {
	Logs  []logOutput `json:"logs"`
	Count int         `json:"count"`
}

func (s *Server) handleListMedications(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, listMedicationsOutput, error) {
	meds, err := s.meds.List(ctx)
	if err != nil {
		return nil, listMedicationsOutput{}, fmt.Errorf("failed to list medications: %w", err)
	}

	out := listMedicationsOutput{Medications: make([]medicationOutput, 0, len(meds))}
	for _, m := range meds {
		out.Medications = append(out.Medications, toMedicationOutput(m))
	}
	out.Count = len(out.Medications)
	return nil, out, nil
}

func (s *Server) handleNextDose(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, nextDoseOutput, error) {
	next, ok, err := s.runner.NextDose(ctx)
	if err != nil {
		return nil, nextDoseOutput{}, fmt.Errorf("failed to compute next dose: %w", err)
	}
	if !ok {
		return nil, nextDoseOutput{Message: "No medications scheduled"}, nil
	}

	m := toMedicationOutput(next.Medication)
	return nil, nextDoseOutput{
		Found:      true,
		Medication: &m,
		Scheduled:  next.Scheduled.Format("2006-01-02 15:04"),
		State:      string(next.State),
		Message:    fmt.Sprintf("Next dose: %s at %s", m.Name, m.Time),
	}, nil
}

func (s *Server) handleLogDose(ctx context.Context, _ *mcp.CallToolRequest, input logDoseInput) (*mcp.CallToolResult, logDoseOutput, error) {
	in := doselogs.CreateInput{
		Status: doselogs.Status(input.Status),
		Mood:   input.Mood,
		Notes:  input.Notes,
	}

	var name string
	if input.MedicationID != 0 {
		m, err := s.meds.GetByID(ctx, input.MedicationID)
		if errors.Is(err, medications.ErrNotFound) {
			return nil, logDoseOutput{}, fmt.Errorf("medication %d not found", input.MedicationID)
		}
		if err != nil {
			return nil, logDoseOutput{}, err
		}
		id := m.ID
		in.MedicationID = &id
		name = m.Name
	}

	e, err := s.logs.Create(ctx, in)
	if errors.Is(err, doselogs.ErrInvalidStatus) {
		return nil, logDoseOutput{}, fmt.Errorf("invalid status %q: use taken or missed", input.Status)
	}
	if err != nil {
		return nil, logDoseOutput{}, fmt.Errorf("failed to log dose: %w", err)
	}

	log := toLogOutput(doselogs.EntryView{Entry: e, MedicationName: name})
	msg := fmt.Sprintf("Logged %s", e.Status)
	if name != "" {
		msg += " for " + name
	}
	return nil, logDoseOutput{Log: log, Message: msg}, nil
}

func (s *Server) handleListLogs(ctx context.Context, _ *mcp.CallToolRequest, input listLogsInput) (*mcp.CallToolResult, listLogsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}

	items, err := s.logs.List(ctx, limit)
	if err != nil {
		return nil, listLogsOutput{}, fmt.Errorf("failed to list logs: %w", err)
	}

	out := listLogsOutput{Logs: make([]logOutput, 0, len(items))}
	for _, it := range items {
		out.Logs = append(out.Logs, toLogOutput(it))
	}
	out.Count = len(out.Logs)
	return nil, out, nil
}

func toMedicationOutput(m medications.Medication) medicationOutput {
	return medicationOutput{
		ID:        m.ID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		Time:      m.Time,
	}
}

func toLogOutput(it doselogs.EntryView) logOutput {
	return logOutput{
		ID:             it.ID,
		MedicationID:   it.MedicationID,
		MedicationName: it.MedicationName,
		Orphaned:       it.Orphaned,
		Status:         string(it.Status),
		Mood:           it.Mood,
		Notes:          it.Notes,
		Timestamp:      it.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
	}
}
