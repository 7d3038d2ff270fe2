package settings

import (
	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/domain"
	"nathanbeddoewebdev/taoquotes/internal/services/app"
)

// NewCommand returns the "settings" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change display preferences",
		Long: "View and change the preferences shared with the interactive viewer.\n\n" +
			"Settings are saved to the configured storage backend, separate from\n" +
			"the configuration file.\n\n" +
			domain.SettingsHelp(),
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(EditCommand())

	return cmd
}

func openApp(cmd *cobra.Command) (*app.App, error) {
	return app.Open(cmd.Context(), app.Options{LogWriter: cmd.ErrOrStderr()})
}
