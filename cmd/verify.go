package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/semlab/foafgraph/graphs"
)

func newVerifyCmd() *cobra.Command {
	var modelNames []string

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the loaded databases against a fresh conversion of the input",
		Long: `Re-runs the converters in memory and compares per-collection document
counts against what the databases actually hold. A mismatch means the
stored graphs are stale relative to the RDF input or the converter
settings.`,
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

			failed := false
			for _, model := range models {
				result, err := convert(model, triples)
				if err != nil {
					return fmt.Errorf("convert %s: %w", model, err)
				}

				store, err := openArango(ctx, model)
				if err != nil {
					return err
				}
				stats, err := store.Stats(ctx)
				store.Close()
				if err != nil {
					return fmt.Errorf("stats for %s: %w", model, err)
				}

				mismatches := compareCounts(result.Document, stats)
				if len(mismatches) == 0 {
					logger.Info("model verified", zap.String("model", string(model)))
					continue
				}
				failed = true
				for _, m := range mismatches {
					logger.Error("count mismatch", zap.String("model", string(model)), zap.String("detail", m))
				}
			}

			if failed {
				return fmt.Errorf("verification failed")
			}
			return nil
		},
	}

	verifyCmd.Flags().StringSliceVar(&modelNames, "model", nil, "models to verify (rpt, pgt, lpgt; default all)")

	return verifyCmd
}

// compareCounts diffs the per-collection counts of a freshly converted
// document against the stored collection statistics.
func compareCounts(doc *graphs.Document, stats *graphs.Stats) []string {
	expected := make(map[string]int64)
	for _, n := range doc.Nodes {
		expected[n.Collection]++
	}
	for _, r := range doc.Relations {
		expected[r.Collection]++
	}
	// Fixed-schema models define their canonical collections even when a
	// conversion produced nothing for them.
	cv, ce := graphs.CanonicalCollections(doc.Model)
	for _, name := range append(cv, ce...) {
		if _, ok := expected[name]; !ok {
			expected[name] = 0
		}
	}

	stored := make(map[string]int64, len(stats.Collections))
	for _, c := range stats.Collections {
		stored[c.Name] = c.Count
	}

	var mismatches []string
	for name, want := range expected {
		got, ok := stored[name]
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("collection %s missing (want %d documents)", name, want))
			continue
		}
		if got != want {
			mismatches = append(mismatches, fmt.Sprintf("collection %s holds %d documents, want %d", name, got, want))
		}
	}
	for name := range stored {
		if _, ok := expected[name]; !ok {
			mismatches = append(mismatches, fmt.Sprintf("unexpected collection %s", name))
		}
	}
	return mismatches
}
