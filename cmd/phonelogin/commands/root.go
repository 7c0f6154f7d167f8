package commands

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"phonelogin/internal/app"
	"phonelogin/internal/config"
)

const offlineAnnotation = "offline"

var (
	home      string
	cfgFile   string
	logLevel  string
	ephemeral bool

	settings *config.Config
	wire     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	defer func() { _ = wire.Close() }()
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	settings, wire = nil, nil

	root := &cobra.Command{
		Use:          "phonelogin",
		Short:        "Log in with a phone number stored on this device",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := config.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			home = filepath.Clean(home)

			if cmd.Annotations[offlineAnnotation] == "true" {
				return nil
			}

			v := viper.New()
			if err := bindFlags(v, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, home, cfgFile)
			if err != nil {
				return err
			}
			settings = cfg

			w, err := app.NewWire(app.Config{Home: home, Settings: cfg})
			if err != nil {
				return err
			}
			wire = w
			wire.Log.Debug("command started", "command", cmd.CommandPath())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd)
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.phonelogin)")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	root.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the session in memory only")

	root.AddCommand(
		formCmd(),
		loginCmd(),
		logoutCmd(),
		statusCmd(),
		formatCmd(),
		validateCmd(),
		configCmd(),
	)
	return root
}

// bindFlags lets explicitly set flags override file and environment values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	keys := map[string]string{
		"log-level": "logging.level",
		"ephemeral": "storage.ephemeral",
	}
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func offline(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[offlineAnnotation] = "true"
	return cmd
}
