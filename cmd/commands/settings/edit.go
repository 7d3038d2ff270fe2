package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nathanbeddoewebdev/taoquotes/internal/domain"
	"nathanbeddoewebdev/taoquotes/internal/tui"
)

// EditCommand returns the "settings edit" command.
func EditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		Long: "Open a form to change every setting at once. Only the fields you\n" +
			"change are saved.\n\n" +
			"Use --accessible for a screen-reader friendly prompt sequence.",
		Args:         cobra.ExactArgs(0),
		RunE:         runEdit,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("accessible", false, "Use plain prompts instead of the full form")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	accessible, _ := cmd.Flags().GetBool("accessible")

	if !accessible && !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("settings edit needs a terminal; use \"taoquotes settings set\" instead")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	patch, err := tui.RunSettingsForm(a.Store.Settings(), accessible)
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "No changes saved.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("settings form failed: %w", err)
	}

	if patch == (domain.SettingsPatch{}) {
		fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
		return nil
	}

	a.Store.UpdateSettings(patch)
	fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")
	return nil
}
