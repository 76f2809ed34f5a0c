package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/salesprep/internal/cleaning"
	"github.com/Veraticus/salesprep/internal/cli"
	"github.com/Veraticus/salesprep/internal/common"
)

func cleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <records>",
		Short: "Fill derivable gaps in sales records",
		Long: `Fill missing prices, items, quantities and discount flags from the other
columns and recompute Total Spent. The cleaned records are written as CSV to
stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runClean,
	}

	cmd.Flags().StringP("output", "o", "", "write the cleaned records to this file (CSV or XLSX)")

	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	records, err := readRecords(args[0])
	if err != nil {
		return err
	}

	cleaned, err := cleaning.Clean(records)
	if err != nil {
		return common.NewUserError("cleaning failed", err)
	}

	if err := writeDataset(cmd.OutOrStdout(), output, cleaned); err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Cleaned %d records into %s", cleaned.Len(), output)))
	}
	return nil
}
