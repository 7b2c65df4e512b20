package cli

import (
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/softbarber/internal/db"
)

func NewMigrateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones del esquema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dbpkg.Migrate(app.Config.DBUrl, app.Log)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revierte migraciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dbpkg.Rollback(app.Config.DBUrl, steps, app.Log)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")

	cmd.AddCommand(up, down)
	return cmd
}
