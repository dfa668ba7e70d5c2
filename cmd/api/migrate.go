package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medisafe-companion/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Apply the schema to the configured backend. Both backends use idempotent
CREATE TABLE IF NOT EXISTS statements, so running it twice is harmless.
The in-memory backend has nothing to migrate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Storage.Backend == config.BackendMemory {
			color.Yellow("Storage backend is memory; nothing to migrate.")
			return nil
		}

		// openStorage ya migra al abrir
		st, err := openStorage(cmd.Context(), cfg.Storage)
		if err != nil {
			return err
		}
		defer st.close()

		where := cfg.Storage.Backend
		if st.sqlite != nil {
			where = st.sqlite.Path()
		}
		color.Green("✓ Schema up to date (%s)", where)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
