package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/salesprep/internal/cli"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded validation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			p, err := loadPipeline()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			store, err := initStorage(ctx, p)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			runs, err := store.ListRuns(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Validation runs"))
			fmt.Fprintln(out, cli.RenderRuns(runs))
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "maximum number of runs to show (0 for all)")
	cmd.AddCommand(runsShowCmd())

	return cmd
}

func runsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the data quality summary of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPipeline()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			store, err := initStorage(ctx, p)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			run, err := store.GetRun(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(*run))
			return nil
		},
	}
}
