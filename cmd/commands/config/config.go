package config

import (
	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/config"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage taoquotes configuration",
		Long: "View and modify persistent taoquotes configuration.\n\n" +
			"Configuration is stored at ~/.config/taoquotes/config.json. Any key\n" +
			"can be overridden for one run with a TAOQUOTES_ environment variable,\n" +
			"e.g. TAOQUOTES_LOG_LEVEL=debug.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
