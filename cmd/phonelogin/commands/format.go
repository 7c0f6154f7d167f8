package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"phonelogin/internal/phone"
)

func formatCmd() *cobra.Command {
	return offline(&cobra.Command{
		Use:   "format <raw...>",
		Short: "Print the display form of a raw number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), phone.Format(strings.Join(args, " ")))
			return nil
		},
	})
}
