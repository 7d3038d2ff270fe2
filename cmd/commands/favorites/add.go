package favorites

import (
	"fmt"

	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// AddCommand returns the "favorites add" command.
func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <id>...",
		Short: "Add quotes to favorites",
		Long: "Add one or more catalog quotes to favorites by ID.\n\n" +
			"Adding a quote that is already a favorite does nothing.\n\n" +
			"Examples:\n" +
			"  taoquotes favorites add ttc-1 zz-4",
		Args:         cobra.MinimumNArgs(1),
		RunE:         runAdd,
		SilenceUsage: true,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	// Validate every ID before touching favorites.
	quotes := make([]domain.Quote, 0, len(args))
	for _, id := range args {
		q, ok := a.Catalog.GetByID(id)
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrNotFound, id)
		}
		quotes = append(quotes, q)
	}

	out := cmd.OutOrStdout()
	for _, q := range quotes {
		if a.Store.IsFavorite(q.ID) {
			fmt.Fprintf(out, "%s is already a favorite\n", q.ID)
			continue
		}
		a.Store.AddFavorite(q)
		fmt.Fprintf(out, "Added %s\n", q.ID)
	}
	return nil
}
