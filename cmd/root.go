package cmd

import (
	"github.com/spf13/cobra"
	"github.com/velolib/valolab/internal/logging"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "valolab",
		Short:         "valolab: plan agent compositions per map and share them as a link",
		Long:          "valolab keeps a five-player agent composition for every map in the pool and stores the whole board in a compact code inside the share URL.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger, err := logging.New(app.cfg.GetString(logLevelKey), verbose)
		if err != nil {
			return err
		}
		app.logger = logger
		app.checkCapabilities()
		return nil
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newShowCmd(app),
		newSetCmd(app),
		newResetCmd(app),
		newAgentsCmd(app),
		newShareCmd(app),
		newDecodeCmd(app),
		newCatalogCmd(app),
	)

	return rootCmd
}
