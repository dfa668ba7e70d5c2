package xlsx

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"medisafe-companion/internal/domain/doselogs"
)

const (
	LogsSheet    = "Dose Logs"
	SummarySheet = "Summary"

	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	logHeaders   = []string{"Timestamp", "Medication", "Status", "Mood", "Notes"}
	columnWidths = []float64{22, 28, 10, 14, 48}
)

// Report escribe el historial de tomas como planilla para el médico.
type Report struct {
	Location *time.Location
}

func NewReport(loc *time.Location) *Report {
	if loc == nil {
		loc = time.Local
	}
	return &Report{Location: loc}
}

func (r *Report) ContentType() string   { return contentType }
func (r *Report) FileExtension() string { return ".xlsx" }

func (r *Report) WriteDoseLogs(w io.Writer, items []doselogs.EntryView, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(LogsSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for col, h := range logHeaders {
		if err := setCell(f, LogsSheet, col+1, 1, h); err != nil {
			return err
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(LogsSheet, name, name, columnWidths[col]); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	if err := f.SetCellStyle(LogsSheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("set header style: %w", err)
	}

	var taken, missed int
	for i, it := range items {
		row := i + 2
		if it.Status == doselogs.StatusTaken {
			taken++
		} else {
			missed++
		}

		values := []any{
			it.Timestamp.In(r.Location).Format("2006-01-02 15:04"),
			medicationLabel(it),
			string(it.Status),
			it.Mood,
			it.Notes,
		}
		for col, v := range values {
			if err := setCell(f, LogsSheet, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(LogsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze panes: %w", err)
	}

	summary := [][]any{
		{"Generated at", generatedAt.In(r.Location).Format("2006-01-02 15:04")},
		{"Total logs", len(items)},
		{"Taken", taken},
		{"Missed", missed},
		{"Adherence %", adherencePercent(taken, len(items))},
	}
	for i, kv := range summary {
		for col, v := range kv {
			if err := setCell(f, SummarySheet, col+1, i+1, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func medicationLabel(it doselogs.EntryView) string {
	switch {
	case it.MedicationID == nil:
		return "General"
	case it.Orphaned:
		return fmt.Sprintf("Deleted medication #%d", *it.MedicationID)
	default:
		return it.MedicationName
	}
}

func adherencePercent(taken, total int) int {
	if total == 0 {
		return 0
	}
	return taken * 100 / total
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
