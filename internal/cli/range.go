package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcphillips/skope-interface/internal/temporal"
)

// RangeOptions holds flags for the range command.
type RangeOptions struct {
	*RootOptions
	Resolution string
	Min        string
	Max        string
}

// RangeResult holds a formatted date range.
type RangeResult struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Resolution string `json:"resolution"`
	Range      string `json:"range"`
}

// NewRangeCommand creates the range command.
func NewRangeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RangeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "range <start> <end>",
		Short: "Format a date range, optionally clamped to coverage",
		Long: `Parse a start and end date and print them as a range.

With --min and --max the endpoints clamp into the given coverage window
before formatting. The minimum bound wins when the window itself is
inverted.

Examples:
  skope range 1500 1600 --resolution year
  skope range --resolution year --min 1 --max 2000 -- -500 2100`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRange(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Resolution, "resolution", "r", "day", "date resolution (year|month|day)")
	cmd.Flags().StringVar(&opts.Min, "min", "", "coverage minimum to clamp into")
	cmd.Flags().StringVar(&opts.Max, "max", "", "coverage maximum to clamp into")

	return cmd
}

func runRange(opts *RangeOptions, startArg, endArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if (opts.Min == "") != (opts.Max == "") {
		return outputError(formatter, ExitCommandError, ErrCodeBadInput, "either both --min and --max or neither must be set")
	}

	p, err := temporal.ParsePrecision(opts.Resolution)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeBadResolution, err.Error())
	}

	start, err := temporal.ParseDate(startArg, p)
	if err != nil {
		return outputError(formatter, ExitFailure, ErrCodeBadDate, fmt.Sprintf("start date: %v", err))
	}
	end, err := temporal.ParseDate(endArg, p)
	if err != nil {
		return outputError(formatter, ExitFailure, ErrCodeBadDate, fmt.Sprintf("end date: %v", err))
	}

	if opts.Min != "" {
		min, err := temporal.ParseDate(opts.Min, p)
		if err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeBadDate, fmt.Sprintf("--min: %v", err))
		}
		max, err := temporal.ParseDate(opts.Max, p)
		if err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeBadDate, fmt.Sprintf("--max: %v", err))
		}

		clampedStart := start.Clamp(min.Time(), max.Time())
		clampedEnd := end.Clamp(min.Time(), max.Time())
		if !clampedStart.Equal(start) {
			formatter.VerboseLog("start clamped %s -> %s", start, clampedStart)
		}
		if !clampedEnd.Equal(end) {
			formatter.VerboseLog("end clamped %s -> %s", end, clampedEnd)
		}
		start, end = clampedStart, clampedEnd
	}

	s, e := start.Time(), end.Time()
	result := RangeResult{
		Start:      start.Format(),
		End:        end.Format(),
		Resolution: p.String(),
		Range:      temporal.FormatRange(p, &s, &e),
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintln(formatter.Writer, result.Range)
	return nil
}
