package favorites

import (
	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/services/app"
)

// NewCommand returns the "favorites" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav", "favs"},
		Short:   "Manage favorite quotes",
		Long: "List, add, remove, export and import favorite quotes.\n\n" +
			"Favorites are saved to the configured storage backend and shared\n" +
			"with the interactive viewer.",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(RemoveCommand())
	cmd.AddCommand(ExportCommand())
	cmd.AddCommand(ImportCommand())

	return cmd
}

func openApp(cmd *cobra.Command) (*app.App, error) {
	return app.Open(cmd.Context(), app.Options{LogWriter: cmd.ErrOrStderr()})
}
