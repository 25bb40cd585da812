package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"patterns/internal/bootstrap"
	browsedto "patterns/internal/modules/browse/dto"
	"patterns/internal/platform/markdown"
)

// newReportCmd writes completed problems into a markdown note. Text outside
// the generated block and unrelated frontmatter keys are preserved.
func newReportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report <file.md>",
		Short: "Write a markdown progress report, updating it in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			existing, err := os.ReadFile(path)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("read report: %w", err)
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				content, err := renderReport(ctx, app, string(existing))
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", path)
				return nil
			})
		},
	}
}

func renderReport(ctx context.Context, app *bootstrap.App, existing string) (string, error) {
	doc, err := markdown.Parse(existing)
	if err != nil {
		return "", err
	}
	done, err := app.BrowseCLI.View(ctx, browsedto.ViewInput{CompletedOnly: true, Sort: "date-desc"})
	if err != nil {
		return "", err
	}
	summary, err := app.ProgressCLI.Summary(ctx, done.Total)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(done.Rows))
	for _, r := range done.Rows {
		rows = append(rows, []string{
			r.DateCompleted,
			fmt.Sprintf("[%s](%s)", r.Title, r.URL),
			r.Difficulty,
			strings.Join(r.Patterns, ", "),
			r.Source,
		})
	}
	generated := fmt.Sprintf("%d of %d problems completed.", done.Shown, done.Total)
	if len(rows) > 0 {
		generated += "\n\n" + markdown.Table([]string{"Date", "Problem", "Difficulty", "Patterns", "Solved"}, rows)
	}

	doc.Merge(map[string]any{
		"completed": summary.Completed,
		"total":     summary.Total,
		"percent":   summary.Percent,
	})
	doc.ReplaceBlock(generated)
	return doc.Render()
}
