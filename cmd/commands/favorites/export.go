package favorites

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/export"
)

// ExportCommand returns the "favorites export" command.
func ExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export favorites as JSON, YAML or TOML",
		Long: "Write favorites to stdout or a file.\n\n" +
			"The format defaults to the output file's extension, or JSON.\n\n" +
			"Examples:\n" +
			"  taoquotes favorites export > favorites.json\n" +
			"  taoquotes favorites export --output favorites.toml\n" +
			"  taoquotes favorites export --format yaml",
		Args:         cobra.NoArgs,
		RunE:         runExport,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("format", "f", "", "Output format: json, yaml or toml")
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format, err := resolveFormat(formatFlag, output)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	favorites := a.Store.Favorites()

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Encode(w, format, favorites); err != nil {
		return err
	}

	if output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d favorites to %s\n", len(favorites), output)
	}
	return nil
}

// resolveFormat prefers the explicit flag, then the file extension, then JSON.
func resolveFormat(flag, path string) (export.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return export.ParseFormat(flag)
	}
	if path != "" {
		if f, err := export.FormatForPath(path); err == nil {
			return f, nil
		}
	}
	return export.JSON, nil
}
