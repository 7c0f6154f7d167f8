package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored phone number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Form.Load(cmd.Context()); err != nil {
				return err
			}
			if _, ok := wire.Form.StoredValue(); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), notLoggedIn)
				return nil
			}
			notice, err := wire.Form.OnLogout(cmd.Context())
			printNotice(cmd, notice)
			return err
		},
	}
}
