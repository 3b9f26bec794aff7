package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmcphillips/skope-interface/internal/config"
	"github.com/tmcphillips/skope-interface/internal/temporal"
)

// DatasetsOptions holds flags for the datasets command.
type DatasetsOptions struct {
	*RootOptions
}

// DatasetSummary describes one configured dataset for display.
type DatasetSummary struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Resolution string   `json:"resolution"`
	Coverage   string   `json:"coverage"`
	Variables  []string `json:"variables"`
}

// DatasetsResult holds the datasets command output.
type DatasetsResult struct {
	Datasets []DatasetSummary `json:"datasets"`
	PageSize int              `json:"page_size"`
}

// NewDatasetsCommand creates the datasets command.
func NewDatasetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DatasetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "datasets <config-file>",
		Short: "List datasets from a configuration file",
		Long: `Load an endpoint configuration file and list its datasets.

Loading validates the file: unknown fields, schema violations, and
unresolvable resolutions or date bounds are reported as errors. A clean
listing therefore doubles as a configuration check.

Examples:
  skope datasets ./skope.yaml
  skope datasets ./skope.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasets(opts, args[0], cmd)
		},
	}

	return cmd
}

func runDatasets(opts *DatasetsOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := config.Load(path)
	if err != nil {
		if code := configErrorCode(err); code == ErrCodeConfigRead {
			return outputError(formatter, ExitCommandError, code, err.Error())
		}
		// The file was readable but its contents failed validation.
		return outputError(formatter, ExitFailure, ErrCodeConfigInvalid, err.Error())
	}

	result := DatasetsResult{PageSize: cfg.PageSize}
	for i := range cfg.Datasets {
		d := &cfg.Datasets[i]
		minT, maxT := d.Min().Time(), d.Max().Time()
		result.Datasets = append(result.Datasets, DatasetSummary{
			Name:       d.Name,
			Title:      d.Title,
			Resolution: d.Precision().String(),
			Coverage:   temporal.FormatRange(d.Precision(), &minT, &maxT),
			Variables:  d.Variables,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%d dataset(s), page size %d\n\n", len(result.Datasets), result.PageSize)
	for _, d := range result.Datasets {
		fmt.Fprintf(w, "  %-16s %-12s %s\n", d.Name, d.Resolution, d.Coverage)
		if opts.Verbose {
			fmt.Fprintf(w, "      %s\n", d.Title)
			fmt.Fprintf(w, "      variables: %s\n", strings.Join(d.Variables, ", "))
		}
	}
	return nil
}

// configErrorCode distinguishes a config file that could not be read from
// one whose contents failed validation.
func configErrorCode(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ErrCodeConfigRead
	}
	return ErrCodeConfigInvalid
}
