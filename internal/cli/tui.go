package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/core/layout"
	"github.com/matzehuels/stackchart/pkg/pipeline"
)

// maxDetailPoints caps the points listed for an expanded series.
const maxDetailPoints = 8

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing a layout.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "inspect [chart.toml]",
		Short: "Browse the series of a layout interactively",
		Long: `Browse the series of a layout interactively.

Lists every laid out series with its type, axis, group index and curve.
Space toggles a series out of hit testing; enter shows its points.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			l, err := c.loadLayout(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(l.Series) == 0 {
				printWarning("No visible series in %s", args[0])
				return nil
			}

			p := tea.NewProgram(NewSeriesListModel(&l), tea.WithContext(cmd.Context()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(SeriesListModel)
			if !ok {
				return nil
			}
			if hidden := fm.HiddenIDs(); len(hidden) > 0 {
				printDetail("Excluded from hit testing: %s", strings.Join(hidden, ", "))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height")

	return cmd
}

// =============================================================================
// SeriesListModel - Interactive series browser
// =============================================================================

// SeriesListModel is the bubbletea model for browsing laid out series.
type SeriesListModel struct {
	Layout   *layout.Layout
	Cursor   int
	Height   int
	Offset   int
	Expanded bool
	Hidden   map[string]bool
}

// NewSeriesListModel creates a new series list model over l. Toggling a
// series updates the visibility of its shapes in l.
func NewSeriesListModel(l *layout.Layout) SeriesListModel {
	return SeriesListModel{
		Layout: l,
		Height: 15,
		Hidden: make(map[string]bool),
	}
}

// HiddenIDs returns the toggled-off series in layout order.
func (m SeriesListModel) HiddenIDs() []string {
	var ids []string
	for _, s := range m.Layout.Series {
		if m.Hidden[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func (m SeriesListModel) Init() tea.Cmd {
	return nil
}

func (m SeriesListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.Layout.Series)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space":
			if n == 0 {
				return m, nil
			}
			id := m.Layout.Series[m.Cursor].ID
			m.Hidden[id] = !m.Hidden[id]
			m.Layout.SetVisible(id, !m.Hidden[id])
		case "enter":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8 - maxDetailPoints
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SeriesListModel) View() string {
	var b strings.Builder
	series := m.Layout.Series

	b.WriteString(StyleTitle.Render("Series"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle hits  ⏎ points  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(series) {
		end = len(series)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := series[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		hits := "on"
		if m.Hidden[s.ID] {
			hits = "off"
		}
		curveName := s.Curve
		if curveName == "" {
			curveName = "—"
		}
		rows = append(rows, []string{
			cursor, s.ID, string(s.Type), s.Axis,
			strconv.Itoa(s.Group), curveName, strconv.Itoa(len(s.Points)), hits,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Series", "Type", "Axis", "Group", "Curve", "Points", "Hits").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(series) {
				return lipgloss.NewStyle()
			}
			hidden := m.Hidden[series[actualIdx].ID]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if hidden {
				base = base.Foreground(colorDim)
			} else if col == 1 {
				base = base.Foreground(colorGreen)
			}
			if isCurrent {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(series))))

	if m.Expanded && m.Cursor < len(series) {
		b.WriteString("\n\n")
		b.WriteString(pointDetails(series[m.Cursor]))
	}

	return b.String()
}

// pointDetails lists the first points of s with their pixel positions.
func pointDetails(s layout.SeriesLayout) string {
	var b strings.Builder
	for i, p := range s.Points {
		if i == maxDetailPoints {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  … %d more", len(s.Points)-i)))
			b.WriteString("\n")
			break
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			StyleNumber.Render(fmt.Sprintf("#%d", p.Datum.Index)),
			StyleValue.Render(fmt.Sprintf("x=%s value=%g", p.Datum.X, p.Datum.Value)),
			listDimStyle.Render(fmt.Sprintf("at (%.1f, %.1f) base %.1f", p.X, p.Y, p.Base)))
	}
	return b.String()
}
