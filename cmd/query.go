package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semlab/foafgraph/foaf"
	"github.com/semlab/foafgraph/graphs"
)

func newQueryCmd() *cobra.Command {
	var modelName string

	queryCmd := &cobra.Command{
		Use:   "query [aql]",
		Short: "Run the demonstration queries, or a single AQL query, against a loaded model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			model, err := graphs.ParseModel(modelName)
			if err != nil {
				return err
			}

			store, err := openArango(ctx, model)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				rows, err := store.Query(ctx, args[0], nil)
				if err != nil {
					return fmt.Errorf("query: %w", err)
				}
				return printRows(rows)
			}

			return runQueries(ctx, store, foaf.DemoQueries(model))
		},
	}

	queryCmd.Flags().StringVarP(&modelName, "model", "m", "lpgt", "model database to query (rpt, pgt, lpgt)")

	return queryCmd
}
