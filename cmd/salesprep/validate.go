package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/salesprep/internal/cli"
	"github.com/Veraticus/salesprep/internal/common"
	"github.com/Veraticus/salesprep/internal/validation"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <records>",
		Short: "Check sales records for completeness and validity",
		Long: `Annotate every record with completeness, validity and uniqueness columns
and print a data quality summary.

Reference prices are read from --prices when given and from the database
otherwise. Each run is recorded in the database unless --no-record is set.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().String("prices", "", "reference price file (CSV or XLSX)")
	cmd.Flags().StringP("output", "o", "", "write the annotated records to this file (CSV or XLSX)")
	cmd.Flags().Bool("no-record", false, "do not store the run summary")
	cmd.Flags().Bool("no-progress", false, "hide the progress bar")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	pricesPath, _ := cmd.Flags().GetString("prices")
	output, _ := cmd.Flags().GetString("output")
	noRecord, _ := cmd.Flags().GetBool("no-record")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

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

	records, prices, err := loadInputs(ctx, store, args[0], pricesPath)
	if err != nil {
		return err
	}

	var opts []validation.Option
	var progress *cli.StepProgress
	if !noProgress {
		steps := validation.NewValidator().Steps()
		progress = cli.NewStepProgress(cmd.ErrOrStderr(), steps, "Validating records")
		opts = append(opts, validation.WithStepHook(progress.Step))
	}

	validated, err := validation.NewValidator(opts...).Validate(records, prices)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return common.NewUserError("validation failed", err)
	}

	summary := validation.Summarize(validated)
	summary.Source = sourceName(args[0])
	if !noRecord {
		// The report is still printed when the history write fails.
		if err := store.SaveRun(ctx, &summary); err != nil {
			common.LogError(err, "Failed to record validation run", common.Fields{"source": summary.Source})
		} else {
			slog.Debug("Recorded validation run", "id", summary.ID)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.RenderSummary(summary))

	if output != "" {
		if err := writeDataset(out, output, validated); err != nil {
			return err
		}
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Annotated records written to %s", output)))
	}
	return nil
}
