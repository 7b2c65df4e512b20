package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Versión y fecha de compilación",
		// the root pre-run loads config, which version does not need
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "softbarber %s (%s)\n", orNA(buildVersion), orNA(buildDate))
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
