package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"phonelogin/internal/form"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <number...>",
		Short: "Log in with a 10-digit phone number",
		Long: "Log in with a 10-digit phone number. Separators are ignored, so\n" +
			"\"555 123 4567\", \"(555) 123-4567\" and 5551234567 are equivalent.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Form.OnInputChange(strings.Join(args, " "))
			notice, err := wire.Form.OnSubmit(cmd.Context())
			printNotice(cmd, notice)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), wire.Form.Greeting())
			return nil
		},
	}
}

func printNotice(cmd *cobra.Command, n form.Notice) {
	switch n.Kind {
	case form.NoticeInfo:
		fmt.Fprintln(cmd.OutOrStdout(), n.Text)
	case form.NoticeError:
		fmt.Fprintln(cmd.ErrOrStderr(), n.Text)
	}
}
