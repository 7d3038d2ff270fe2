package favorites

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/cmd/commands/quote"
)

// ListCommand returns the "favorites list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List favorite quotes",
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("json", false, "Print as JSON")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	favorites := a.Store.Favorites()
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(favorites)
	}

	if len(favorites) == 0 {
		fmt.Fprintln(out, "No favorites yet.")
		return nil
	}
	return quote.WriteTable(out, favorites)
}
