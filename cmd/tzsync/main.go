package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/five82/tzsync/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "tzsync: %v\n", err)
		return 1
	}
	return 0
}

type rootFlags struct {
	configPath string
	prefsPath  string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "tzsync",
		Short: "Compare wall clocks across time zones",
		Long: `tzsync shows a list of locations at one shared instant. The first
location is home; editing any row's time moves every other row with it.

Run without arguments to start the interactive view, or use 'tzsync show'
to print the table once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				LogFile:    flags.logFile,
				Verbose:    flags.verbose,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config path (default ~/.config/tzsync/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "prefs path (default ~/.config/tzsync/prefs.toml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "log file for the interactive view (overrides config)")

	cmd.AddCommand(newShowCmd(flags), newCitiesCmd())
	return cmd
}
