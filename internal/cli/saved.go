package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcphillips/skope-interface/internal/query"
	"github.com/tmcphillips/skope-interface/internal/store"
	"github.com/tmcphillips/skope-interface/internal/value"
)

// maxListLimit bounds --limit; larger requests clamp down.
const maxListLimit = 500

// SavedOptions holds flags shared by the saved subcommands.
type SavedOptions struct {
	*RootOptions
	Database string
	Dataset  string
	Limit    int
}

// NewSavedCommand creates the saved command group.
func NewSavedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SavedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved queries",
		Long: `Manage the saved-query store.

Saved queries are written by "skope build --save" and keyed by name.`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite query store (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newSavedListCommand(opts))
	cmd.AddCommand(newSavedShowCommand(opts))
	cmd.AddCommand(newSavedRemoveCommand(opts))

	return cmd
}

func newSavedListCommand(opts *SavedOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List saved queries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavedList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dataset, "dataset", "", "only queries for this dataset")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show at most this many queries (0 shows all)")

	return cmd
}

func runSavedList(opts *SavedOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, fmt.Sprintf("failed to open query store: %v", err))
	}
	defer st.Close()

	ctx := commandContext(cmd)
	var queries []store.SavedQuery
	if opts.Dataset != "" {
		queries, err = st.ListByDataset(ctx, opts.Dataset)
	} else {
		queries, err = st.List(ctx)
	}
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, err.Error())
	}

	if opts.Limit != 0 {
		limit := value.ClampInt(opts.Limit, 1, maxListLimit)
		if len(queries) > limit {
			queries = queries[:limit]
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(queries)
	}

	if len(queries) == 0 {
		fmt.Fprintln(formatter.Writer, "No saved queries.")
		return nil
	}
	for _, q := range queries {
		fmt.Fprintf(formatter.Writer, "  %-20s %-16s %-10s %s - %s\n", q.Name, q.Dataset, q.Variable, q.Start, q.End)
	}
	return nil
}

func newSavedShowCommand(opts *SavedOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <name>",
		Short:         "Show one saved query",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavedShow(opts, args[0], cmd)
		},
	}
}

func runSavedShow(opts *SavedOptions, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, fmt.Sprintf("failed to open query store: %v", err))
	}
	defer st.Close()

	q, err := st.GetByName(commandContext(cmd), name)
	if err != nil {
		if store.IsNotFound(err) {
			return outputError(formatter, ExitCommandError, ErrCodeQueryNotFound, err.Error())
		}
		return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(q)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%s\n", q.Name)
	fmt.Fprintf(w, "  Dataset:  %s\n", q.Dataset)
	fmt.Fprintf(w, "  Variable: %s\n", q.Variable)
	fmt.Fprintf(w, "  Range:    %s - %s\n", q.Start, q.End)
	if len(q.Filter) > 0 {
		fmt.Fprintf(w, "  Filter:   %s\n", formatFilter(q.Filter))
	}
	fmt.Fprintf(w, "  Token:    %s\n", q.Token)
	fmt.Fprintf(w, "  Seq:      %d\n", q.Seq)
	fmt.Fprintf(w, "  Created:  %s\n", q.CreatedAt)
	return nil
}

func newSavedRemoveCommand(opts *SavedOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rm <name>",
		Aliases:       []string{"remove"},
		Short:         "Delete a saved query",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavedRemove(opts, args[0], cmd)
		},
	}
}

func runSavedRemove(opts *SavedOptions, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, fmt.Sprintf("failed to open query store: %v", err))
	}
	defer st.Close()

	if err := st.Delete(commandContext(cmd), name); err != nil {
		if store.IsNotFound(err) {
			return outputError(formatter, ExitCommandError, ErrCodeQueryNotFound, err.Error())
		}
		return outputError(formatter, ExitCommandError, ErrCodeStoreFailed, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]string{"deleted": name})
	}
	fmt.Fprintf(formatter.Writer, "Deleted %s\n", name)
	return nil
}

// formatFilter renders a filter map deterministically for display.
func formatFilter(filter map[string]interface{}) string {
	data, err := query.MarshalCanonical(filter)
	if err != nil {
		return fmt.Sprintf("%v", filter)
	}
	return string(data)
}
