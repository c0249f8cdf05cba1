package chart

import (
	"github.com/matzehuels/stackchart/pkg/core/curve"
	"github.com/matzehuels/stackchart/pkg/errors"
)

// ===== Enumerations =====

// Axis names a vertical axis.
const (
	AxisY  = "y"
	AxisY2 = "y2"
)

// Order values.
const (
	OrderNone = "none"
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// X axis types.
const (
	XIndexed    = "indexed"
	XCategory   = "category"
	XTimeseries = "timeseries"
)

// Step interpolation modes.
const (
	StepMiddle = "step"
	StepAfter  = "step-after"
	StepBefore = "step-before"
)

var (
	axisNames  = []string{AxisY, AxisY2}
	orderNames = []string{OrderNone, OrderAsc, OrderDesc}
	xTypeNames = []string{XIndexed, XCategory, XTimeseries}
	stepNames  = []string{StepMiddle, StepAfter, StepBefore}
)

// ===== Defaults =====

const (
	DefaultType             = TypeLine
	DefaultStepType         = StepMiddle
	DefaultInterpolation    = "cardinal"
	DefaultPointRadius      = 2.5
	DefaultPointSensitivity = 10.0
	DefaultStepSensitivity  = 30.0
	DefaultBarSensitivity   = 2.0
	DefaultBarWidthRatio    = 0.6
	DefaultBubbleMaxRadius  = 35.0
)

// ===== Config =====

// Config holds the chart-wide layout options.
type Config struct {
	Type   ShapeType            `toml:"type" json:"type,omitempty"`
	Types  map[string]ShapeType `toml:"types" json:"types,omitempty"`
	Groups [][]string           `toml:"groups" json:"groups,omitempty"`
	Axes   map[string]string    `toml:"axes" json:"axes,omitempty"`
	Hidden []string             `toml:"hidden" json:"hidden,omitempty"`
	Order  string               `toml:"order" json:"order,omitempty"`
	XType  string               `toml:"x_type" json:"x_type,omitempty"`

	Bar    BarConfig    `toml:"bar" json:"bar"`
	Point  PointConfig  `toml:"point" json:"point"`
	Bubble BubbleConfig `toml:"bubble" json:"bubble"`
	Line   LineConfig   `toml:"line" json:"line"`
	Spline SplineConfig `toml:"spline" json:"spline"`
	Stack  StackConfig  `toml:"stack" json:"stack"`
}

// BarConfig controls bar width and spacing.
type BarConfig struct {
	// Padding is the pixel gap between adjacent bars of one x slot.
	Padding float64 `toml:"padding" json:"padding,omitempty"`
	// Width fixes every bar to this pixel width when positive.
	Width float64 `toml:"width" json:"width,omitempty"`
	// WidthRatio is the share of one tick interval used by all bars of a slot.
	WidthRatio float64 `toml:"width_ratio" json:"width_ratio,omitempty"`
	// WidthMax caps the computed width when positive.
	WidthMax float64 `toml:"width_max" json:"width_max,omitempty"`
	// Widths sets per-series pixel widths.
	Widths map[string]float64 `toml:"widths" json:"widths,omitempty"`
	// Sensitivity inflates bar rectangles for hit testing.
	Sensitivity float64 `toml:"sensitivity" json:"sensitivity,omitempty"`
}

// PointConfig controls markers and their hit radius.
type PointConfig struct {
	Radius       float64 `toml:"radius" json:"radius,omitempty"`
	SelectRadius float64 `toml:"select_radius" json:"select_radius,omitempty"`
	Sensitivity  float64 `toml:"sensitivity" json:"sensitivity,omitempty"`
}

// BubbleConfig controls value-sized markers.
type BubbleConfig struct {
	MaxRadius float64 `toml:"max_radius" json:"max_radius,omitempty"`
}

// LineConfig controls step lines.
type LineConfig struct {
	StepType        string  `toml:"step_type" json:"step_type,omitempty"`
	StepSensitivity float64 `toml:"step_sensitivity" json:"step_sensitivity,omitempty"`
}

// SplineConfig selects the curve used by spline types.
type SplineConfig struct {
	Interpolation string `toml:"interpolation" json:"interpolation,omitempty"`
}

// StackConfig controls stacking.
type StackConfig struct {
	Normalize bool `toml:"normalize" json:"normalize,omitempty"`
}

// SetDefaults fills zero-valued options with their defaults.
func (c *Config) SetDefaults() {
	if c.Type == "" {
		c.Type = DefaultType
	}
	if c.Order == "" {
		c.Order = OrderNone
	}
	if c.XType == "" {
		c.XType = XIndexed
	}
	if c.Line.StepType == "" {
		c.Line.StepType = DefaultStepType
	}
	if c.Line.StepSensitivity == 0 {
		c.Line.StepSensitivity = DefaultStepSensitivity
	}
	if c.Spline.Interpolation == "" {
		c.Spline.Interpolation = DefaultInterpolation
	}
	if c.Point.Radius == 0 {
		c.Point.Radius = DefaultPointRadius
	}
	if c.Point.SelectRadius == 0 {
		c.Point.SelectRadius = c.Point.Radius * 4
	}
	if c.Point.Sensitivity == 0 {
		c.Point.Sensitivity = DefaultPointSensitivity
	}
	if c.Bar.WidthRatio == 0 {
		c.Bar.WidthRatio = DefaultBarWidthRatio
	}
	if c.Bar.Sensitivity == 0 {
		c.Bar.Sensitivity = DefaultBarSensitivity
	}
	if c.Bubble.MaxRadius == 0 {
		c.Bubble.MaxRadius = DefaultBubbleMaxRadius
	}
}

// Validate rejects options the layout core would otherwise silently
// replace with defaults. Empty values are accepted.
func (c *Config) Validate() error {
	if c.Type != "" && !c.Type.Valid() {
		return errors.New(errors.ErrCodeInvalidShapeType, "invalid type: %q", c.Type)
	}
	for id, t := range c.Types {
		if err := errors.ValidateSeriesID(id); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "types")
		}
		if !t.Valid() {
			return errors.New(errors.ErrCodeInvalidShapeType, "invalid type for %q: %q", id, t)
		}
	}
	if err := errors.ValidateGroups(c.Groups); err != nil {
		return err
	}
	for id, axis := range c.Axes {
		if err := errors.ValidateOneOf(errors.ErrCodeInvalidConfig, "axis for "+id, axis, axisNames); err != nil {
			return err
		}
	}
	if err := errors.ValidateOneOf(errors.ErrCodeInvalidConfig, "order", c.Order, orderNames); err != nil {
		return err
	}
	if err := errors.ValidateOneOf(errors.ErrCodeInvalidConfig, "x type", c.XType, xTypeNames); err != nil {
		return err
	}
	if err := errors.ValidateOneOf(errors.ErrCodeInvalidStepType, "step type", c.Line.StepType, stepNames); err != nil {
		return err
	}
	if name := c.Spline.Interpolation; name != "" && !curve.IsInterpolation(name) {
		return errors.New(errors.ErrCodeInvalidInterpolation, "unknown interpolation %q", name)
	}

	nonNegative := []struct {
		field string
		v     float64
	}{
		{"bar padding", c.Bar.Padding},
		{"bar width", c.Bar.Width},
		{"bar width ratio", c.Bar.WidthRatio},
		{"bar width max", c.Bar.WidthMax},
		{"bar sensitivity", c.Bar.Sensitivity},
		{"point radius", c.Point.Radius},
		{"point select radius", c.Point.SelectRadius},
		{"point sensitivity", c.Point.Sensitivity},
		{"bubble max radius", c.Bubble.MaxRadius},
		{"step sensitivity", c.Line.StepSensitivity},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s cannot be negative", f.field)
		}
	}
	for id, w := range c.Bar.Widths {
		if w < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "bar width for %q cannot be negative", id)
		}
	}
	return nil
}

// StepTypes returns the supported step interpolation modes.
func StepTypes() []string {
	return append([]string(nil), stepNames...)
}
