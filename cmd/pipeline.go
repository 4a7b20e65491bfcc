package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/semlab/foafgraph/foaf"
	"github.com/semlab/foafgraph/graphs"
	"github.com/semlab/foafgraph/graphs/arango"
	neo4jstore "github.com/semlab/foafgraph/graphs/neo4j"
	"github.com/semlab/foafgraph/rdf"
	"github.com/semlab/foafgraph/transform"
)

// loadTriples reads the configured RDF input, or the embedded sample dataset
// when no path is set.
func loadTriples() ([]rdf.Triple, error) {
	if cfg.Data.Path == "" {
		logger.Debug("loading embedded sample dataset")
		return foaf.SampleTriples()
	}

	if cfg.Data.Format != "" {
		format, err := rdf.ParseFormat(cfg.Data.Format)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(cfg.Data.Path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg.Data.Path, err)
		}
		defer f.Close()
		return rdf.DecodeAll(f, format)
	}

	logger.Debug("loading RDF data", zap.String("path", cfg.Data.Path))
	return rdf.DecodeFile(cfg.Data.Path)
}

func converterOptions() ([]transform.Option, error) {
	policy, err := transform.ParsePolicy(cfg.Converter.MergePolicy)
	if err != nil {
		return nil, err
	}
	opts := []transform.Option{
		transform.WithMergePolicy(policy),
		transform.WithLogger(logger),
	}
	if cfg.Converter.StableKeys {
		opts = append(opts, transform.WithStableKeys(true))
	}
	return opts, nil
}

// convert runs the converter for one model.
func convert(model graphs.Model, triples []rdf.Triple) (*transform.Result, error) {
	opts, err := converterOptions()
	if err != nil {
		return nil, err
	}
	switch model {
	case graphs.ModelRPT:
		return transform.RPT(triples, opts...)
	case graphs.ModelPGT:
		return transform.PGT(triples, opts...)
	case graphs.ModelLPGT:
		return transform.LPGT(triples, opts...)
	default:
		return nil, fmt.Errorf("unknown model %q", model)
	}
}

// openArango opens the store for one model against the active profile.
func openArango(ctx context.Context, model graphs.Model) (*arango.Store, error) {
	profile := cfg.Arango()
	return arango.New(ctx, model,
		arango.WithEndpoints(profile.Endpoint),
		arango.WithCredentials(profile.Username, profile.Password),
		arango.WithDatabasePrefix(profile.DatabasePrefix),
	)
}

func openNeo4j(ctx context.Context) (*neo4jstore.Store, error) {
	return neo4jstore.New(ctx,
		neo4jstore.WithConnectionURL(cfg.Neo4j.URI),
		neo4jstore.WithCredentials(cfg.Neo4j.Username, cfg.Neo4j.Password),
		neo4jstore.WithDatabase(cfg.Neo4j.Database),
	)
}

// runQueries executes a demonstration query set against a store and prints
// each result set as indented JSON.
func runQueries(ctx context.Context, store graphs.GraphStore, queries []foaf.Query) error {
	for _, q := range queries {
		fmt.Printf("\n-- %s: %s\n", q.Name, q.Description)
		rows, err := store.Query(ctx, q.Text, q.Params)
		if err != nil {
			return fmt.Errorf("query %s: %w", q.Name, err)
		}
		if err := printRows(rows); err != nil {
			return err
		}
	}
	return nil
}

func printRows(rows []map[string]interface{}) error {
	if len(rows) == 0 {
		fmt.Println("(no results)")
		return nil
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("format results: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printStats(stats *graphs.Stats) {
	fmt.Printf("database %s:\n", stats.Database)
	for _, c := range stats.Collections {
		kind := "vertex"
		if c.Edge {
			kind = "edge"
		}
		fmt.Printf("  %-12s %6d  (%s)\n", c.Name, c.Count, kind)
	}
}

// logWarnings surfaces the converter's reclassification warnings after a
// run.
func logWarnings(result *transform.Result) {
	for _, w := range result.Warnings {
		logger.Warn("conversion warning",
			zap.String("identifier", w.Identifier),
			zap.String("message", w.Message))
	}
}

func parseModels(names []string) ([]graphs.Model, error) {
	if len(names) == 0 {
		return graphs.Models, nil
	}
	models := make([]graphs.Model, 0, len(names))
	for _, name := range names {
		m, err := graphs.ParseModel(name)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}
