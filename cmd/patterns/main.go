package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"patterns/internal/bootstrap"
	browsedto "patterns/internal/modules/browse/dto"
	progressin "patterns/internal/modules/progress/adapter/in"
	progressport "patterns/internal/modules/progress/port/in"
	"patterns/internal/platform/config"
	"patterns/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir string
	dataset string
	backend string
	verbose bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "patterns",
		Short:         "Track coding interview problems by pattern",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initLogger(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "", "data directory (default ~/.patterns)")
	flags.StringVar(&opts.dataset, "dataset", "", "problem dataset file, JSON or YAML (default bundled)")
	flags.StringVar(&opts.backend, "backend", "", "storage backend: sqlite|file|memory")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newPatternsCmd(opts))
	root.AddCommand(newCompaniesCmd(opts))
	root.AddCommand(newDoneCmd(opts))
	root.AddCommand(newSourceCmd(opts))
	root.AddCommand(newClearCmd(opts))
	root.AddCommand(newThemeCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newReportCmd(opts))
	return root
}

func (o *rootOptions) resolveDataDir() (string, error) {
	if strings.TrimSpace(o.dataDir) != "" {
		return o.dataDir, nil
	}
	return config.DefaultDataDir()
}

// initLogger logs to stderr, except for the TUI which owns the terminal and
// logs to <data-dir>/patterns.log instead.
func (o *rootOptions) initLogger(cmd *cobra.Command) error {
	if isTUI(cmd) {
		dir, err := o.resolveDataDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		logger, err := logging.NewFile(filepath.Join(dir, "patterns.log"), o.verbose)
		if err != nil {
			return err
		}
		o.logger = logger
		return nil
	}
	logger, err := logging.New(o.verbose)
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}

func isTUI(cmd *cobra.Command) bool {
	return cmd.Name() == "tui" || !cmd.HasParent()
}

func (o *rootOptions) config(cmd *cobra.Command) (config.Config, error) {
	dir, err := o.resolveDataDir()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.DatasetPath = o.dataset
	}
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	return cfg, cfg.Validate()
}

func loadApp(cmd *cobra.Command, opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := opts.config(cmd)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cmd.Context(), cfg, opts.logger)
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(cmd, opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(cmd.Context(), app)
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
		return bootstrap.RunTUI(ctx, app)
	})
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var input browsedto.ViewInput
	var asJSON bool

	list := &cobra.Command{
		Use:   "list",
		Short: "List problems matching the filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.BrowseCLI.View(ctx, input)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if asJSON {
					return writeJSON(w, out)
				}
				for _, r := range out.Rows {
					check := " "
					if r.Completed {
						check = "x"
					}
					_, _ = fmt.Fprintf(w, "[%s]\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
						check, r.ID, r.Title, r.Difficulty, strings.Join(r.Patterns, ", "), r.CompanyPreview(), r.DateCompleted, r.Source)
				}
				_, _ = fmt.Fprintf(w, "Showing %d of %d problems\n", out.Shown, out.Total)
				return nil
			})
		},
	}
	f := list.Flags()
	f.StringVar(&input.Pattern, "pattern", "", "only problems tagged with this pattern")
	f.StringVar(&input.Difficulty, "difficulty", "", "Easy|Medium|Hard")
	f.StringVar(&input.Company, "company", "", "only problems asked by this company")
	f.BoolVar(&input.CompletedOnly, "completed", false, "only completed problems")
	f.StringVar(&input.Source, "source", "", "only problems solved on your own (own) or with help (help)")
	f.StringVar(&input.Sort, "sort", "none", "none|date-asc|date-desc")
	f.BoolVar(&asJSON, "json", false, "print JSON")
	return list
}

func newPatternsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the patterns present in the dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				options, err := app.BrowseCLI.Options(ctx)
				if err != nil {
					return err
				}
				return writeLines(cmd.OutOrStdout(), options.Patterns)
			})
		},
	}
}

func newCompaniesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "List the companies present in the dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				options, err := app.BrowseCLI.Options(ctx)
				if err != nil {
					return err
				}
				return writeLines(cmd.OutOrStdout(), options.Companies)
			})
		},
	}
}

func newDoneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle whether a problem is completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				id, title, err := resolveProblem(ctx, app, args[0])
				if err != nil {
					return err
				}
				out, err := app.ProgressCLI.ToggleCompleted(ctx, id)
				if err != nil {
					return err
				}
				if out.Completed {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed %d %s on %s (%s)\n", id, title, out.DateCompleted, out.Source)
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reopened %d %s\n", id, title)
				}
				return nil
			})
		},
	}
}

func newSourceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "source <id>",
		Short: "Flip a completed problem between solved on your own and with help",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				id, title, err := resolveProblem(ctx, app, args[0])
				if err != nil {
					return err
				}
				out, err := app.ProgressCLI.ToggleSolutionSource(ctx, id)
				if err != nil {
					return err
				}
				if !out.Completed {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d %s is not completed; nothing changed\n", id, title)
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d %s solved with %s\n", id, title, out.Source)
				return nil
			})
		},
	}
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all completed problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				var confirmer progressport.Confirmer = progressin.PromptConfirmer{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				if yes {
					confirmer = progressin.StaticConfirmer(true)
				}
				out, err := app.ProgressCLI.ClearAll(ctx, confirmer)
				if err != nil {
					return err
				}
				if !out.Cleared {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared %d completed problems\n", out.Removed)
				return nil
			})
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return clearCmd
}

func newThemeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if len(args) == 0 {
					out, err := app.PreferenceCLI.Theme(ctx)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Theme)
					return nil
				}
				out, err := app.PreferenceCLI.Apply(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", out.Theme)
				return nil
			})
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				options, err := app.BrowseCLI.Options(ctx)
				if err != nil {
					return err
				}
				all, err := app.BrowseCLI.View(ctx, browsedto.ViewInput{})
				if err != nil {
					return err
				}
				summary, err := app.ProgressCLI.Summary(ctx, all.Total)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "completed\t%d / %d (%d%%)\n", summary.Completed, summary.Total, summary.Percent)
				for _, level := range options.Difficulties {
					total, err := app.BrowseCLI.View(ctx, browsedto.ViewInput{Difficulty: level})
					if err != nil {
						return err
					}
					done, err := app.BrowseCLI.View(ctx, browsedto.ViewInput{Difficulty: level, CompletedOnly: true})
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(w, "%s\t%d / %d\n", strings.ToLower(level), done.Shown, total.Shown)
				}
				for _, source := range []string{"own", "help"} {
					bySource, err := app.BrowseCLI.View(ctx, browsedto.ViewInput{Source: source})
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(w, "%s\t%d\n", source, bySource.Shown)
				}
				if !options.Updated.IsZero() {
					_, _ = fmt.Fprintf(w, "dataset\t%s\n", options.Updated.Format("2006-01-02"))
				}
				return nil
			})
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Print completion records as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				raw, err := app.ProgressCLI.Export(ctx)
				if err != nil {
					return err
				}
				if outPath == "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), raw)
					return nil
				}
				if err := os.WriteFile(outPath, []byte(raw+"\n"), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outPath)
				return nil
			})
		},
	}
	export.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	return export
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace completion records from an export (current or legacy format)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProgressCLI.Import(ctx, string(raw))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d records (%s format)\n", out.Count, out.Shape)
				if len(out.Dropped) > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "skipped unreadable entries: %s\n", strings.Join(out.Dropped, ", "))
				}
				if len(out.Repaired) > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "defaulted source or date for %d records\n", len(out.Repaired))
				}
				return nil
			})
		},
	}
}

func resolveProblem(ctx context.Context, app *bootstrap.App, arg string) (int, string, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, "", fmt.Errorf("problem id must be an integer, got %q", arg)
	}
	p, err := app.CatalogCLI.GetProblem(ctx, id)
	if err != nil {
		return 0, "", err
	}
	return p.ID, p.Title, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
