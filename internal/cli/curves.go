package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/curve"
)

// samplePoints is the polyline traced to summarize each curve.
var samplePoints = []gg.Point{gg.Pt(0, 0), gg.Pt(40, 30), gg.Pt(80, 10), gg.Pt(120, 40)}

// curvesCommand creates the curves command listing supported interpolations.
func (c *CLI) curvesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the supported interpolations",
		Long: `List the supported interpolations.

Spline and area-spline series accept any of these names in
[config.spline] interpolation. Step series accept the step modes in
[config.line] step_type. The commands column shows the path commands each
curve emits for a four point polyline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, StyleTitle.Render("Interpolations"))
			fmt.Fprintln(stdout, curvesTable())
			printKeyValue("step types", strings.Join(chart.StepTypes(), ", "))
			printKeyValue("default", chart.DefaultInterpolation)
			return nil
		},
	}
}

// curvesTable renders one row per interpolation name.
func curvesTable() string {
	rows := [][]string{}
	for _, name := range curve.Names() {
		rows = append(rows, []string{name, variantOf(name), pathCommands(curve.MustLookup(name))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Variant", "Commands").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0 && rows[row][0] == chart.DefaultInterpolation:
				return StyleHighlight.Bold(true)
			case col == 0:
				return StyleValue
			default:
				return StyleDim
			}
		}).
		Render()
}

func variantOf(name string) string {
	switch {
	case strings.HasSuffix(name, "-closed"):
		return "closed"
	case strings.HasSuffix(name, "-open"):
		return "open"
	default:
		return "—"
	}
}

// pathCommands returns the command letters of c traced over samplePoints.
func pathCommands(c curve.Curve) string {
	data := curve.PathData(c.Path(samplePoints))
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, data)
}
