package favorites

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RemoveCommand returns the "favorites remove" command.
func RemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "remove <id>...",
		Aliases:      []string{"rm"},
		Short:        "Remove quotes from favorites",
		Args:         cobra.MinimumNArgs(1),
		RunE:         runRemove,
		SilenceUsage: true,
	}

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	for _, id := range args {
		was := a.Store.IsFavorite(id)
		a.Store.RemoveFavorite(id)
		if was {
			fmt.Fprintf(out, "Removed %s\n", id)
		} else {
			fmt.Fprintf(out, "%s was not a favorite\n", id)
		}
	}
	return nil
}
