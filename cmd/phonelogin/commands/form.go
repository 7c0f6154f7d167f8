package commands

import (
	"github.com/spf13/cobra"

	"phonelogin/internal/tui"
)

func formCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive login form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd)
		},
	}
}

func runForm(cmd *cobra.Command) error {
	wire.Log.Info("form opened")
	return tui.Run(cmd.Context(), wire.Form, settings.Form)
}
