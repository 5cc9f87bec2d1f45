package cmd

import (
	"context"
	"fmt"

	"industry-flow/config"
	"industry-flow/internal/render"
	"industry-flow/internal/repository/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <up|down|status|version|redo|reset>",
	Short: "Manage the database schema",
	Long: `Run a goose command against the configured Postgres database.

Only the postgres settings are required; auth and integration settings are
not validated.`,
	Example: `  industry-flow migrate up
  industry-flow migrate status
  industry-flow migrate up-to 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Postgres.Validate(); err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.Postgres.MigrationsDir
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Postgres.MigrateTimeout)
		defer cancel()

		if err := postgres.Migrate(ctx, cfg.Postgres.DSN(), dir, args[0], args[1:]...); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.OK("migrate "+args[0]+" done"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().String("dir", "", "Migrations directory (defaults to postgres.migrations_dir)")
}
