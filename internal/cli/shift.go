package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcphillips/skope-interface/internal/temporal"
)

// ShiftOptions holds flags for the shift command.
type ShiftOptions struct {
	*RootOptions
	Resolution string
	By         int
}

// ShiftResult holds the outcome of shifting one date.
type ShiftResult struct {
	Input      string `json:"input"`
	Resolution string `json:"resolution"`
	Offset     int    `json:"offset"`
	Date       string `json:"date"`
}

// NewShiftCommand creates the shift command.
func NewShiftCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShiftOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "shift <date>",
		Short: "Shift a date by whole units of its resolution",
		Long: `Shift a date by whole units of the field its resolution addresses.

Shifting a year-resolution date by -250 moves it 250 years earlier. Month
arithmetic carries through year boundaries, so large offsets stay exact.

Examples:
  skope shift 1200 --by -250 --resolution year
  skope shift 2020-01 --by 25 --resolution month`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Resolution, "resolution", "r", "day", "date resolution (year|month|day)")
	cmd.Flags().IntVar(&opts.By, "by", 0, "offset in resolution units (required)")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func runShift(opts *ShiftOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	p, err := temporal.ParsePrecision(opts.Resolution)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeBadResolution, err.Error())
	}

	d, err := temporal.ParseDate(input, p)
	if err != nil {
		return outputError(formatter, ExitFailure, ErrCodeBadDate, err.Error())
	}

	shifted := d.Shift(opts.By)
	result := ShiftResult{
		Input:      input,
		Resolution: p.String(),
		Offset:     opts.By,
		Date:       shifted.Format(),
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	formatter.VerboseLog("%s %+d %s(s) -> %s", d.Format(), opts.By, p, result.Date)
	fmt.Fprintln(formatter.Writer, result.Date)
	return nil
}
