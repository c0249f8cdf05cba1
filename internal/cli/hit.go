package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/core/layout"
	"github.com/matzehuels/stackchart/pkg/core/shape"
	"github.com/matzehuels/stackchart/pkg/pipeline"
)

// hitCommand creates the hit command for testing a pointer against a layout.
func (c *CLI) hitCommand() *cobra.Command {
	var (
		x, y   float64
		hidden []string
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "hit [chart.toml]",
		Short: "List the shapes under a pointer",
		Long: `List the shapes under a pointer.

The hit command lays out the chart and reports every shape whose hit area
contains the pointer at (--x, --y), in drawing order. Markers match within
their radius, step markers within a vertical band, bars within their
rectangle plus a margin. Lines and areas always match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			l, err := c.loadLayout(cmd.Context(), opts)
			if err != nil {
				return err
			}
			for _, id := range hidden {
				l.SetVisible(id, false)
			}

			hits := l.Hits(gg.Pt(x, y))
			if len(hits) == 0 {
				printInfo("No shapes at (%g, %g)", x, y)
				return nil
			}
			printSuccess("%d shapes at (%g, %g)", len(hits), x, y)
			fmt.Fprintln(stdout, hitTable(hits))
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "pointer x in pixels")
	cmd.Flags().Float64Var(&y, "y", 0, "pointer y in pixels")
	cmd.Flags().StringSliceVar(&hidden, "hide", nil, "series to exclude from hit testing")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height")

	return cmd
}

// loadLayout loads the chart named by opts.Input and lays it out.
func (c *CLI) loadLayout(ctx context.Context, opts pipeline.Options) (layout.Layout, error) {
	opts.Logger = c.Logger
	runner := c.newRunner()

	ch, err := runner.Load(ctx, opts)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("load chart %s: %w", opts.Input, err)
	}
	l, err := runner.Layout(ctx, ch, opts)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("compute layout: %w", err)
	}
	return l, nil
}

// hitTable renders hits as a bordered table.
func hitTable(hits []shape.Shape) string {
	rows := make([][]string, 0, len(hits))
	for _, h := range hits {
		index, x, value := "—", "—", "—"
		if h.Kind == shape.KindPoint || h.Kind == shape.KindBar {
			index = strconv.Itoa(h.Datum.Index)
			x = h.Datum.X.String()
			value = strconv.FormatFloat(h.Datum.Value, 'g', -1, 64)
		}
		rows = append(rows, []string{h.Kind.String(), h.ID, index, x, value})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Series", "Index", "X", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleHighlight
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
