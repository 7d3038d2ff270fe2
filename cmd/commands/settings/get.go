package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nathanbeddoewebdev/taoquotes/internal/domain"
)

// GetCommand returns the "settings get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show settings",
		Long: "Print every setting, or a single value with --key.\n\n" +
			domain.SettingsHelp() +
			"\nExamples:\n" +
			"  taoquotes settings get\n" +
			"  taoquotes settings get --key theme",
		Args:         cobra.ExactArgs(0),
		RunE:         runGet,
		SilenceUsage: true,
	}

	cmd.Flags().String("key", "", "Setting to print (prints a single value)")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	keyFlag, _ := cmd.Flags().GetString("key")
	keyFlag = strings.TrimSpace(keyFlag)

	var spec *domain.SettingKey
	if keyFlag != "" {
		spec = domain.LookupSetting(keyFlag)
		if spec == nil {
			return fmt.Errorf("unknown setting %q (valid: %s)", keyFlag, strings.Join(domain.SettingNames(), ", "))
		}
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	current := a.Store.Settings()
	out := cmd.OutOrStdout()

	if spec != nil {
		fmt.Fprintln(out, spec.Get(current))
		return nil
	}

	for _, k := range domain.SettingKeys {
		fmt.Fprintf(out, "%s: %s\n", k.Name, k.Get(current))
	}
	fmt.Fprintf(out, "resolved-theme: %s\n", a.Store.ResolvedTheme())
	return nil
}
