package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pillbox/internal/services/indexer/domain"
	indexmod "pillbox/internal/services/indexer/module"
)

func (a *app) reindexCmd() *cobra.Command {
	var opt domain.RunOptions

	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the search index from the medicines catalog",
		Long: `reindex pages through the postgres catalog by id and writes every medicine
into the clickhouse search table, creating the table when missing.

Use --truncate to drop rows for medicines that no longer exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx, true)
			if err != nil {
				return err
			}
			defer a.closeStore(st)

			stats, err := indexmod.New(a.deps(st)).Runner().Reindex(ctx, opt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d docs in %d pages (last id %d) in %s\n",
				stats.Docs, stats.Pages, stats.LastID, stats.Elapsed.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().BoolVar(&opt.Truncate, "truncate", false, "empty the search table before writing")
	cmd.Flags().BoolVar(&opt.DryRun, "dry-run", false, "read the catalog without writing")
	return cmd
}
