package chart

import (
	"slices"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Chart is a chart definition: configuration plus data.
type Chart struct {
	Config     Config   `json:"config"`
	Series     []Series `json:"series"`
	Categories []string `json:"categories,omitempty"`
}

// Validate checks the configuration and the series ids.
func (c *Chart) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Series))
	for _, s := range c.Series {
		if err := errors.ValidateSeriesID(s.ID); err != nil {
			return err
		}
		if seen[s.ID] {
			return errors.New(errors.ErrCodeInvalidSeries, "duplicate series id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Lookup returns the series with the given id.
func (c *Chart) Lookup(id string) (Series, bool) {
	for _, s := range c.Series {
		if s.ID == id {
			return s, true
		}
	}
	return Series{}, false
}

// TypeOf returns the shape type of a series, falling back to the chart
// default.
func (c *Chart) TypeOf(id string) ShapeType {
	if t, ok := c.Config.Types[id]; ok && t != "" {
		return t
	}
	if c.Config.Type != "" {
		return c.Config.Type
	}
	return DefaultType
}

// AxisOf returns the vertical axis a series is plotted against.
func (c *Chart) AxisOf(id string) string {
	if c.Config.Axes[id] == AxisY2 {
		return AxisY2
	}
	return AxisY
}

// IsVisible reports whether the series is not hidden.
func (c *Chart) IsVisible(id string) bool {
	return !slices.Contains(c.Config.Hidden, id)
}

// Categorized reports whether the x axis is categorical.
func (c *Chart) Categorized() bool {
	return c.Config.XType == XCategory
}

// Visible returns the visible series accepted by keep, in declared order.
// A nil keep accepts every series.
func (c *Chart) Visible(keep func(Series) bool) []Series {
	var out []Series
	for _, s := range c.Series {
		if !c.IsVisible(s.ID) {
			continue
		}
		if keep != nil && !keep(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// OfType returns a filter accepting series whose type satisfies pred.
func (c *Chart) OfType(pred func(ShapeType) bool) func(Series) bool {
	return func(s Series) bool { return pred(c.TypeOf(s.ID)) }
}

// Ordered returns a copy of series sorted by the configured order. The
// sort is stable so equal sums keep declared order.
func (c *Chart) Ordered(series []Series) []Series {
	out := slices.Clone(series)
	switch c.Config.Order {
	case OrderAsc:
		slices.SortStableFunc(out, func(a, b Series) int { return cmpFloat(a.Sum(), b.Sum()) })
	case OrderDesc:
		slices.SortStableFunc(out, func(a, b Series) int { return cmpFloat(b.Sum(), a.Sum()) })
	}
	return out
}

// IDs returns the ids of series in order.
func IDs(series []Series) []string {
	ids := make([]string, len(series))
	for i, s := range series {
		ids[i] = s.ID
	}
	return ids
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
