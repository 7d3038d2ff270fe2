package favorites

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/export"
)

// ImportCommand returns the "favorites import" command.
func ImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import favorites from JSON, YAML or TOML",
		Long: "Add every quote in a file to favorites. Quotes that are already\n" +
			"favorites are skipped. Use - to read stdin.\n\n" +
			"The format defaults to the file's extension, or JSON.",
		Args:         cobra.ExactArgs(1),
		RunE:         runImport,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("format", "f", "", "Input format: json, yaml or toml")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	path := args[0]

	var r io.Reader = cmd.InOrStdin()
	source := path
	if path == "-" {
		source = ""
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	format, err := resolveFormat(formatFlag, source)
	if err != nil {
		return err
	}

	quotes, err := export.Decode(r, format)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	added := 0
	for _, q := range quotes {
		if a.Store.IsFavorite(q.ID) {
			continue
		}
		a.Store.AddFavorite(q)
		added++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d favorites (%d already present)\n", added, len(quotes)-added)
	return nil
}
