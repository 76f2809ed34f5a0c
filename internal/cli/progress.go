package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// StepProgress shows a progress bar over a fixed number of named steps.
type StepProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
	done   int
}

// NewStepProgress creates a progress bar for total steps written to writer.
func NewStepProgress(writer io.Writer, total int, description string) *StepProgress {
	p := &StepProgress{writer: writer}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return p
}

// Step advances the bar by one and labels it with the finished step.
// Its signature matches validation.WithStepHook.
func (p *StepProgress) Step(name string) {
	p.done++
	p.bar.Describe("[cyan][bold]" + name + "[reset]")
	if err := p.bar.Add(1); err != nil {
		slog.Debug("Failed to update progress bar", "error", err)
	}
}

// Done returns the number of completed steps.
func (p *StepProgress) Done() int {
	return p.done
}

// Finish completes the bar even if fewer steps than expected ran.
func (p *StepProgress) Finish() {
	if err := p.bar.Finish(); err != nil {
		slog.Debug("Failed to finish progress bar", "error", err)
	}
}
