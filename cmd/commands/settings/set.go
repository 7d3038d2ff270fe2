package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// SetCommand returns the "settings set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Long: "Change a single setting. Other settings keep their values.\n\n" +
			domain.SettingsHelp() +
			"\nExamples:\n" +
			"  taoquotes settings set theme dark\n" +
			"  taoquotes settings set sound on",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := domain.LookupSetting(args[0])
	if spec == nil {
		return fmt.Errorf("unknown setting %q (valid: %s)", args[0], strings.Join(domain.SettingNames(), ", "))
	}

	patch, err := spec.Parse(args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Store.UpdateSettings(patch)

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, spec.Get(a.Store.Settings()))
	return nil
}
