package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpstat/swissdata/cmd/swissdata/commands"
	"github.com/alpstat/swissdata/config"
	"github.com/alpstat/swissdata/logger"
)

var rootCmd = &cobra.Command{
	Use:   "swissdata",
	Short: "swissdata - Swiss official statistical datasets",
	Long: `swissdata - typed access to official Swiss statistical datasets.

Available commands:
  communes - Report on the FSO historicized commune registry

Examples:
  swissdata communes           # registry report for canton BE
  swissdata communes ZH        # registry report for canton ZH
  swissdata communes --cite    # print the dataset citation entries`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithVerbosity(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.CommunesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
