package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"phonelogin/internal/domain"
	"phonelogin/internal/phone"
)

func validateCmd() *cobra.Command {
	return offline(&cobra.Command{
		Use:   "validate <raw...>",
		Short: "Check whether a raw number has exactly 10 digits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")
			digits := phone.Clean(raw)
			if !phone.Valid(digits) {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %q has %d digits\n", raw, len(digits))
				return domain.NewValidationError(raw)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %s\n", phone.Format(digits))
			return nil
		},
	})
}
