package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	dbpkg "github.com/BruksfildServices01/softbarber/internal/db"
	"github.com/BruksfildServices01/softbarber/internal/infra/repository"
	ucAuth "github.com/BruksfildServices01/softbarber/internal/usecase/auth"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

// NewCreateAdminCmd seeds an administrator account.
//
//	softbarber create-admin --name Ana --last-name Gomez --email ana@corte.co --password secreto123
func NewCreateAdminCmd(app *App) *cobra.Command {
	var in ucAuth.CreateAdminInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Crea un usuario administrador",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := dbpkg.NewDB(app.Config, app.Log)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			dispatcher := audit.NewDispatcher(audit.New(db), app.Log)
			defer dispatcher.Close(cmd.Context())

			uc := ucAuth.NewCreateAdmin(
				repository.NewUserGormRepository(db),
				validators.EmailChecker{CheckDomain: app.Config.CheckEmailDomain},
				dispatcher,
			)

			u, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created with id %d\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&in.Email, "email", "", "login email")
	cmd.Flags().StringVar(&in.Password, "password", "", "login password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
