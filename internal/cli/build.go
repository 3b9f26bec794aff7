package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcphillips/skope-interface/internal/config"
	"github.com/tmcphillips/skope-interface/internal/query"
	"github.com/tmcphillips/skope-interface/internal/store"
	"github.com/tmcphillips/skope-interface/internal/temporal"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Config   string
	Variable string
	Start    string
	End      string
	Filter   string
	Database string
	SaveAs   string
}

// BuildResult holds the built request for display.
type BuildResult struct {
	Token    string          `json:"token"`
	Seq      int64           `json:"seq"`
	Dataset  string          `json:"dataset"`
	Variable string          `json:"variable"`
	Path     string          `json:"path"`
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Payload  json.RawMessage `json:"payload"`
	SavedAs  string          `json:"saved_as,omitempty"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <dataset>",
		Short: "Build a data-service request for a dataset",
		Long: `Build a data-service request against a configured dataset.

The variable defaults to the dataset's configured default, range bounds
default to its coverage and clamp into it, and filter values still equal
to the dataset defaults are suppressed. The result is the filled URL path
plus a canonical JSON payload.

With --db the request sequence resumes above the store's highest saved
sequence, and --save records the request as a named saved query.

Examples:
  skope build paleocar --config ./skope.yaml --start 1500 --end 1600
  skope build paleocar --config ./skope.yaml --variable PPT --filter '{"area":"12.5"}'
  skope build paleocar --config ./skope.yaml --db ./skope.db --save drought-sw`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "path to endpoint configuration (required)")
	_ = cmd.MarkFlagRequired("config")
	cmd.Flags().StringVar(&opts.Variable, "variable", "", "dataset variable (defaults to the configured default)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "range start (defaults to coverage minimum)")
	cmd.Flags().StringVar(&opts.End, "end", "", "range end (defaults to coverage maximum)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "{}", "filter values as JSON")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite query store")
	cmd.Flags().StringVar(&opts.SaveAs, "save", "", "save the request under this name (requires --db)")

	return cmd
}

func runBuild(opts *BuildOptions, datasetName string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.SaveAs != "" && opts.Database == "" {
		return outputError(formatter, ExitCommandError, ErrCodeBadInput, "--save requires --db")
	}

	var filter map[string]interface{}
	if err := json.Unmarshal([]byte(opts.Filter), &filter); err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeBadInput, fmt.Sprintf("invalid --filter JSON: %v", err))
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return outputError(formatter, ExitCommandError, configErrorCode(err), err.Error())
	}

	d := cfg.DatasetByName(datasetName)
	if d == nil {
		return outputError(formatter, ExitCommandError, ErrCodeUnknownDataset,
			fmt.Sprintf("dataset %q not found in %s", datasetName, opts.Config))
	}

	ctx := commandContext(cmd)

	// With a store attached, sequence numbers continue above whatever has
	// already been saved.
	var builderOpts []query.Option
	var st *store.Store
	if opts.Database != "" {
		st, err = store.Open(opts.Database)
		if err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, fmt.Sprintf("failed to open query store: %v", err))
		}
		defer st.Close()

		seq, err := st.MaxSeq(ctx)
		if err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, fmt.Sprintf("failed to read sequence: %v", err))
		}
		builderOpts = append(builderOpts, query.WithClock(query.NewClockAt(seq)))
		formatter.VerboseLog("sequence resuming above %d", seq)
	}

	req, err := query.NewBuilder(d, builderOpts...).Build(query.Query{
		Variable: opts.Variable,
		Start:    opts.Start,
		End:      opts.End,
		Filter:   filter,
	})
	if err != nil {
		switch {
		case query.IsUnknownVariable(err):
			return outputError(formatter, ExitCommandError, ErrCodeUnknownVariable, err.Error())
		case temporal.IsMalformedDate(err):
			return outputError(formatter, ExitFailure, ErrCodeBadDate, err.Error())
		default:
			return outputError(formatter, ExitFailure, ErrCodeGeneric, err.Error())
		}
	}

	result := BuildResult{
		Token:    req.Token,
		Seq:      req.Seq,
		Dataset:  req.Dataset,
		Variable: req.Variable,
		Path:     req.Path,
		Start:    req.Start.Format(),
		End:      req.End.Format(),
		Payload:  json.RawMessage(req.Payload),
	}

	if opts.SaveAs != "" {
		saved := store.SavedQuery{
			Name:     opts.SaveAs,
			Dataset:  req.Dataset,
			Variable: req.Variable,
			Start:    result.Start,
			End:      result.End,
			Filter:   req.Filter,
			Token:    req.Token,
			Seq:      req.Seq,
		}
		if err := st.Save(ctx, saved); err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, fmt.Sprintf("failed to save query: %v", err))
		}
		result.SavedAs = opts.SaveAs
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	return outputBuildText(formatter, result)
}

// outputBuildText renders the built request as text.
func outputBuildText(f *OutputFormatter, r BuildResult) error {
	w := f.Writer
	fmt.Fprintf(w, "Request %s (seq %d)\n", r.Token, r.Seq)
	fmt.Fprintf(w, "  Dataset:  %s\n", r.Dataset)
	fmt.Fprintf(w, "  Variable: %s\n", r.Variable)
	fmt.Fprintf(w, "  Range:    %s - %s\n", r.Start, r.End)
	fmt.Fprintf(w, "  Path:     %s\n", r.Path)
	fmt.Fprintf(w, "  Payload:  %s\n", r.Payload)
	if r.SavedAs != "" {
		fmt.Fprintf(w, "  Saved as: %s\n", r.SavedAs)
	}
	return nil
}
