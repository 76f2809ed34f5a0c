package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/salesprep/internal/cleaning"
	"github.com/Veraticus/salesprep/internal/cli"
	"github.com/Veraticus/salesprep/internal/common"
	"github.com/Veraticus/salesprep/internal/features"
)

func featuresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features <records>",
		Short: "Build the weekly feature table",
		Long: `Aggregate sales records into one row per week with lagged copies of every
weekly feature and total sales targets for the following weeks.

Records are cleaned first unless --raw is set. Week bounds compare week keys
(YYYY-MM-DD of the week's Sunday) and are inclusive.`,
		Args: cobra.ExactArgs(1),
		RunE: runFeatures,
	}

	cmd.Flags().Int("lags", features.DefaultLags, "number of past weeks copied as lag columns")
	cmd.Flags().Int("horizon", features.DefaultHorizon, "number of future weeks of total sales targets")
	cmd.Flags().String("start", "", "first week key to output (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "last week key to output (YYYY-MM-DD)")
	cmd.Flags().StringP("output", "o", "", "write the feature table to this file (CSV or XLSX)")
	cmd.Flags().Bool("raw", false, "skip cleaning before aggregation")

	_ = viper.BindPFlag("features.lags", cmd.Flags().Lookup("lags"))
	_ = viper.BindPFlag("features.horizon", cmd.Flags().Lookup("horizon"))
	_ = viper.BindPFlag("features.start", cmd.Flags().Lookup("start"))
	_ = viper.BindPFlag("features.end", cmd.Flags().Lookup("end"))

	return cmd
}

func runFeatures(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	raw, _ := cmd.Flags().GetBool("raw")

	p, err := loadPipeline()
	if err != nil {
		return err
	}

	records, err := readRecords(args[0])
	if err != nil {
		return err
	}

	if !raw {
		if records, err = cleaning.Clean(records); err != nil {
			return common.NewUserError("cleaning failed", err)
		}
	}

	table, err := features.Build(records, p.FeatureOptions())
	if err != nil {
		return common.NewUserError("could not build weekly features", err)
	}

	if err := writeDataset(cmd.OutOrStdout(), output, table); err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Wrote %d weeks with %d columns to %s", table.Len(), len(table.Columns()), output)))
	}
	return nil
}
