// Package cmd wires the foafgraph command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/semlab/foafgraph/internal/config"
	"github.com/semlab/foafgraph/internal/observability"
)

var (
	cfgFile string
	cloud   bool
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "foafgraph",
	Short: "Load FOAF RDF data into graph databases under three property-graph models",
	Long: `foafgraph demonstrates three ways of storing RDF data in a property
graph: RPT keeps every statement reified, PGT groups resources into
per-class collections, and LPGT collapses everything into a single
node and relation collection.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cloud {
			cfg.Profile = "cloud"
		}
		if verbose {
			cfg.Logger.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = observability.NewLogger(cfg.Logger)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./foafgraph.yaml)")
	rootCmd.PersistentFlags().BoolVar(&cloud, "cloud", false, "use the cloud ArangoDB profile")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newLPGTCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newVerifyCmd())
}
