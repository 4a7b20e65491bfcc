package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semlab/foafgraph/graphs/arango"
)

func newStatsCmd() *cobra.Command {
	var modelNames []string

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print collection counts for the loaded model databases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			models, err := parseModels(modelNames)
			if err != nil {
				return err
			}

			for _, model := range models {
				store, err := openArango(ctx, model)
				if err != nil {
					return err
				}

				stats, err := store.Stats(ctx)
				store.Close()
				if errors.Is(err, arango.ErrDatabaseNotFound) {
					fmt.Printf("model %s: not loaded\n", model)
					continue
				}
				if err != nil {
					return fmt.Errorf("stats for %s: %w", model, err)
				}
				printStats(stats)
			}
			return nil
		},
	}

	statsCmd.Flags().StringSliceVar(&modelNames, "model", nil, "models to inspect (rpt, pgt, lpgt; default all)")

	return statsCmd
}
