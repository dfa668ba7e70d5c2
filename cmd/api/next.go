package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medisafe-companion/internal/domain/scheduler"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next scheduled dose",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		nd, ok, err := app.Runner.NextDose(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			color.Yellow("No medications scheduled.")
			return nil
		}
		printNextDose(cmd.OutOrStdout(), nd, app.Runner.Now())
		return nil
	},
}

func printNextDose(w io.Writer, nd scheduler.NextDose, now time.Time) {
	faint := color.New(color.Faint)

	when := "today"
	if nd.Scheduled.YearDay() != now.YearDay() || nd.Scheduled.Year() != now.Year() {
		when = "tomorrow"
	}

	name := color.New(color.Bold).Sprint(nd.Medication.Name)
	fmt.Fprintf(w, "%s %s at %s %s\n", name, nd.Medication.Dosage, nd.Medication.Time, faint.Sprint("("+when+")"))

	state := string(nd.State)
	switch nd.State {
	case scheduler.StateTaken:
		state = color.GreenString(state)
	case scheduler.StateUrgentFired, scheduler.StateMissed:
		state = color.RedString(state)
	case scheduler.StateReminderFired:
		state = color.YellowString(state)
	}
	fmt.Fprintf(w, "state: %s\n", state)
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
