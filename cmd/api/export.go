package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medisafe-companion/internal/adapters/export/xlsx"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dose log report to an .xlsx file",
	Long: `Write every dose log, newest first, to a workbook for the doctor.
The Summary sheet carries taken/missed counts and the adherence percentage.

EXAMPLES:

  medisafe export                      # dose-logs-YYYYMMDD.xlsx in the current dir
  medisafe export -o report.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		items, err := app.Logs.List(cmd.Context(), 0)
		if err != nil {
			return err
		}

		loc, err := cfg.Scheduler.Location()
		if err != nil {
			return err
		}
		now := time.Now().In(loc)

		out := exportOutput
		if out == "" {
			out = "dose-logs-" + now.Format("20060102") + ".xlsx"
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()

		if err := xlsx.NewReport(loc).WriteDoseLogs(f, items, now); err != nil {
			return err
		}
		color.Green("✓ Exported %d logs to %s", len(items), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file")
	rootCmd.AddCommand(exportCmd)
}
