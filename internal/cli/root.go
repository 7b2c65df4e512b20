// Package cli wires the softbarber binary: the HTTP server, schema
// migrations and operator commands.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/softbarber/internal/config"
	"github.com/BruksfildServices01/softbarber/internal/logger"
)

// App is shared by every subcommand once PersistentPreRunE has run.
type App struct {
	Config *config.Config
	Log    *zap.Logger
}

func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "softbarber",
		Short: "Backend de gestión para barberías",
		Long: `Backend de gestión para barberías: turnos, cortes, clientes y estadísticas.

Ejemplos:
  softbarber serve
  softbarber migrate up
  softbarber create-admin --name Ana --last-name Gomez --email ana@corte.co --password secreto123
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}

			app.Config = cfg
			app.Log = logger.New(logger.Options{
				Level: cfg.LogLevel,
				File:  cfg.LogFile,
				Dev:   cfg.Env == "dev",
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Log != nil {
				_ = app.Log.Sync()
			}
		},
	}

	cmd.AddCommand(
		NewServeCmd(app),
		NewMigrateCmd(app),
		NewCreateAdminCmd(app),
		NewVersionCmd(buildVersion, buildDate),
	)

	return cmd
}

// Execute runs the root command against os.Args.
func Execute(buildVersion, buildDate string) error {
	return NewRootCmd(buildVersion, buildDate).Execute()
}
