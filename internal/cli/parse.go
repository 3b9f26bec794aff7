package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcphillips/skope-interface/internal/temporal"
)

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	*RootOptions
	Resolution string
}

// ParseResult holds the outcome of parsing one date string.
type ParseResult struct {
	Input      string `json:"input"`
	Resolution string `json:"resolution"`
	Date       string `json:"date"`
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse <date>",
		Short: "Parse a date string at a resolution",
		Long: `Parse a date string at the given resolution and print its canonical form.

Dates are year-first with "-" between segments. Missing segments default
to the first month or day, segments finer than the resolution are dropped,
and years before 1 CE carry a leading minus sign.

Examples:
  skope parse 1200-7 --resolution month
  skope parse --resolution year -- -450`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Resolution, "resolution", "r", "day", "date resolution (year|month|day)")

	return cmd
}

func runParse(opts *ParseOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	p, err := temporal.ParsePrecision(opts.Resolution)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeBadResolution, err.Error())
	}

	d, err := temporal.ParseDate(input, p)
	if err != nil {
		return outputError(formatter, ExitFailure, ErrCodeBadDate, err.Error())
	}

	result := ParseResult{Input: input, Resolution: p.String(), Date: d.Format()}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	formatter.VerboseLog("parsed %q at %s resolution", input, p)
	fmt.Fprintln(formatter.Writer, result.Date)
	return nil
}
