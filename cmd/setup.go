package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/semlab/foafgraph/graphs"
)

func newSetupCmd() *cobra.Command {
	var modelNames []string

	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Convert the RDF data and load it into one database per model",
		Long: `Reads the RDF input, runs the selected converters and recreates one
ArangoDB database per model (FOAF-RPT, FOAF-PGT, FOAF-LPGT by default).
Existing databases for the selected models are dropped first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			models, err := parseModels(modelNames)
			if err != nil {
				return err
			}

			triples, err := loadTriples()
			if err != nil {
				return fmt.Errorf("load RDF data: %w", err)
			}
			logger.Info("loaded RDF data", zap.Int("triples", len(triples)))

			for _, model := range models {
				result, err := convert(model, triples)
				if err != nil {
					return fmt.Errorf("convert %s: %w", model, err)
				}
				logWarnings(result)

				store, err := openArango(ctx, model)
				if err != nil {
					return fmt.Errorf("connect for %s: %w", model, err)
				}

				err = store.ReplaceGraph(ctx, result.Document)
				if err == nil {
					var stats *graphs.Stats
					stats, err = store.Stats(ctx)
					if err == nil {
						printStats(stats)
					}
				}
				store.Close()
				if err != nil {
					return fmt.Errorf("load %s: %w", model, err)
				}

				logger.Info("model loaded",
					zap.String("model", string(model)),
					zap.Int("nodes", len(result.Document.Nodes)),
					zap.Int("relations", len(result.Document.Relations)))
			}
			return nil
		},
	}

	setupCmd.Flags().StringSliceVar(&modelNames, "model", nil, "models to load (rpt, pgt, lpgt; default all)")

	return setupCmd
}
