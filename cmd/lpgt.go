package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/semlab/foafgraph/foaf"
	"github.com/semlab/foafgraph/graphs"
)

func newLPGTCmd() *cobra.Command {
	var (
		mirrorNeo4j bool
		runDemo     bool
	)

	lpgtCmd := &cobra.Command{
		Use:   "lpgt",
		Short: "Run the manual LPGT conversion end to end",
		Long: `Walks through the LPGT pipeline step by step: decode the RDF input,
build the unified Node and relation collections, recreate the FOAF-LPGT
database, register the named graph and run the demonstration queries.
With --neo4j the same document is also mirrored into Neo4j.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			triples, err := loadTriples()
			if err != nil {
				return fmt.Errorf("load RDF data: %w", err)
			}
			logger.Info("decoded RDF data", zap.Int("triples", len(triples)))

			result, err := convert(graphs.ModelLPGT, triples)
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}
			logWarnings(result)
			logger.Info("conversion finished",
				zap.Int("nodes", len(result.Document.Nodes)),
				zap.Int("relations", len(result.Document.Relations)))

			store, err := openArango(ctx, graphs.ModelLPGT)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ReplaceGraph(ctx, result.Document); err != nil {
				return fmt.Errorf("load graph: %w", err)
			}
			logger.Info("graph loaded",
				zap.String("database", store.DatabaseName()),
				zap.String("graph", graphs.GraphName(graphs.ModelLPGT)))

			stats, err := store.Stats(ctx)
			if err != nil {
				return err
			}
			printStats(stats)

			if runDemo {
				if err := runQueries(ctx, store, foaf.DemoQueries(graphs.ModelLPGT)); err != nil {
					return err
				}
			}

			if !mirrorNeo4j {
				return nil
			}

			neo, err := openNeo4j(ctx)
			if err != nil {
				return fmt.Errorf("connect to Neo4j: %w", err)
			}
			defer neo.Close()

			if err := neo.ReplaceGraph(ctx, result.Document); err != nil {
				return fmt.Errorf("load graph into Neo4j: %w", err)
			}
			logger.Info("graph mirrored into Neo4j", zap.String("uri", cfg.Neo4j.URI))

			if runDemo {
				if err := runQueries(ctx, neo, foaf.CypherQueries); err != nil {
					return err
				}
			}
			return nil
		},
	}

	lpgtCmd.Flags().BoolVar(&mirrorNeo4j, "neo4j", false, "also mirror the LPGT graph into Neo4j")
	lpgtCmd.Flags().BoolVar(&runDemo, "demo", true, "run the demonstration queries after loading")

	return lpgtCmd
}
