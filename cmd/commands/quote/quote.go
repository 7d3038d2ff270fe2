package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/catalog"
	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// NewCommand returns the "quote" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a quote",
		Long: "Print a random quote from the built-in catalog, or a specific one by ID.\n\n" +
			"Examples:\n" +
			"  taoquotes quote                    # random quote\n" +
			"  taoquotes quote --exclude ttc-1    # random, but not ttc-1\n" +
			"  taoquotes quote --id zz-3 --json   # one quote as JSON\n" +
			"  taoquotes quote --all              # list the catalog",
		Args:         cobra.NoArgs,
		RunE:         runQuote,
		SilenceUsage: true,
	}

	cmd.Flags().String("id", "", "Print the quote with this ID")
	cmd.Flags().String("exclude", "", "Never pick the quote with this ID")
	cmd.Flags().Bool("json", false, "Print as JSON")
	cmd.Flags().Bool("all", false, "List every quote in the catalog")
	cmd.MarkFlagsMutuallyExclusive("id", "exclude")
	cmd.MarkFlagsMutuallyExclusive("id", "all")

	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	id, _ := cmd.Flags().GetString("id")
	exclude, _ := cmd.Flags().GetString("exclude")
	asJSON, _ := cmd.Flags().GetBool("json")
	all, _ := cmd.Flags().GetBool("all")

	cat := catalog.Default()
	out := cmd.OutOrStdout()

	if all {
		if asJSON {
			return writeJSON(out, cat.All())
		}
		return WriteTable(out, cat.All())
	}

	var q domain.Quote
	if id = strings.TrimSpace(id); id != "" {
		var ok bool
		q, ok = cat.GetByID(id)
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrNotFound, id)
		}
	} else {
		q = cat.PickRandom(strings.TrimSpace(exclude))
	}

	if asJSON {
		return writeJSON(out, q)
	}
	Print(out, q)
	return nil
}

// Print writes q as a plain-text block.
func Print(w io.Writer, q domain.Quote) {
	fmt.Fprintf(w, "“%s”\n  — %s\n", q.Text, q.Attribution())
}

// WriteTable writes quotes as an aligned ID/SOURCE/TEXT table, truncating
// long text.
func WriteTable(w io.Writer, quotes []domain.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tSOURCE\tTEXT")
	fmt.Fprintln(tw, "--\t------\t----")
	for _, q := range quotes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", q.ID, q.Source, ansi.Truncate(q.Text, 60, "…"))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
