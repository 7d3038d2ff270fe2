package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	cfgcmd "nathanbeddoewebdev/taoquotes/cmd/commands/config"
	"nathanbeddoewebdev/taoquotes/cmd/commands/favorites"
	"nathanbeddoewebdev/taoquotes/cmd/commands/quote"
	"nathanbeddoewebdev/taoquotes/cmd/commands/settings"
	"nathanbeddoewebdev/taoquotes/internal/services/app"
	"nathanbeddoewebdev/taoquotes/internal/tui"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "taoquotes",
		Short: "Daily Taoist wisdom in your terminal",
		Long: `taoquotes shows quotes from the Tao Te Ching, the Zhuangzi and other
Taoist classics. Run it in a terminal for the interactive viewer, where
you can step through quotes, keep favorites and change how they look.
When stdout is not a terminal it prints one random quote.

Quick start:
  taoquotes                          # interactive viewer
  taoquotes quote                    # print a random quote
  taoquotes favorites list           # list saved favorites
  taoquotes settings set theme dark  # change a display preference`,
		Args:         cobra.NoArgs,
		RunE:         runRoot,
		SilenceUsage: true,
	}

	cmd.AddCommand(quote.NewCommand())
	cmd.AddCommand(favorites.NewCommand())
	cmd.AddCommand(settings.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printRandom(cmd)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := app.Open(ctx, app.Options{Interactive: true})
	if err != nil {
		return err
	}
	defer a.Close()

	go a.WatchAppearance(ctx)

	return tui.Run(ctx, a.Store, a.Catalog)
}

func printRandom(cmd *cobra.Command) error {
	a, err := app.Open(cmd.Context(), app.Options{LogWriter: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer a.Close()

	q := a.Catalog.PickRandom("")
	a.Store.SetCurrentQuote(q)
	quote.Print(cmd.OutOrStdout(), q)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
