package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/salesprep/internal/cli"
	"github.com/Veraticus/salesprep/internal/common"
	"github.com/Veraticus/salesprep/internal/dataio"
)

func pricesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Manage stored reference prices",
		Long: `Reference prices are dated unit prices per item. They are used by
'validate' to check Price Per Unit when no --prices file is given.`,
	}

	cmd.AddCommand(pricesImportCmd())
	cmd.AddCommand(pricesListCmd())

	return cmd
}

func pricesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace stored reference prices with the contents of a file",
		Long: `Import a CSV or XLSX price list with the columns Item, Start_date,
End_date and Price Per Unit. The stored table is replaced as a whole.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := dataio.LoadPriceTable(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not read prices from %s", args[0]), err)
			}

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

			if err := store.SavePriceTable(ctx, table); err != nil {
				return fmt.Errorf("failed to save prices: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Imported %d reference prices", len(table))))
			return nil
		},
	}
}

func pricesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show stored reference prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			table, err := store.GetPriceTable(ctx)
			if err != nil {
				return fmt.Errorf("failed to load prices: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Reference prices"))
			fmt.Fprintln(out, cli.RenderPrices(table))
			return nil
		},
	}
}
