package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const notLoggedIn = "Not logged in."

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Form.Load(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if greeting := wire.Form.Greeting(); greeting != "" {
				fmt.Fprintln(out, greeting)
			} else {
				fmt.Fprintln(out, notLoggedIn)
			}
			fmt.Fprintf(out, "Installation: %s\n", wire.Installation)
			return nil
		},
	}
}
