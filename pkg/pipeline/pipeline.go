// Package pipeline provides the load → layout → export pipeline shared by
// the command line and the HTTP adapter.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a chart definition and its data from disk
//  2. Layout: fit scales to the frame and compute shape geometry
//  3. Export: serialize the layout (JSON document or SVG path data)
//
// Each stage can be run independently or as part of the complete pipeline.
// Stages are synchronous; the context is checked between them.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "chart.toml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output)
//
// Run individual stages:
//
//	c, err := runner.Load(ctx, opts)
//	l, err := runner.Layout(ctx, c, opts)
//	data, err := runner.Export(ctx, l, id, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/layout"
	"github.com/matzehuels/stackchart/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = layout.DefaultWidth

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = layout.DefaultHeight

	// DefaultFormat is the default export format.
	DefaultFormat = FormatJSON
)

// Format constants for output formats.
const (
	FormatJSON  = "json"
	FormatPaths = "paths"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:  true,
	FormatPaths: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Input string `json:"input,omitempty"`

	// Layout options
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	TickInterval float64 `json:"tick_interval,omitempty"`

	// Export options
	Format string `json:"format,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	// Chart skips the load stage when set.
	Chart *chart.Chart `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the pass.
	ID string

	// Chart is the loaded chart definition.
	Chart *chart.Chart

	// Layout is the computed geometry.
	Layout layout.Layout

	// Output is the exported layout in the requested format.
	Output []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount int
	ShapeCount  int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	ExportTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, paths)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Chart == nil && o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frame size must be positive, got %gx%g", o.Width, o.Height)
	}
	if o.TickInterval < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "tick interval cannot be negative")
	}
	return nil
}

// SetExportDefaults sets default values for exporting.
func (o *Options) SetExportDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.setLogger()
}

// ValidateForExport validates and sets defaults for exporting.
func (o *Options) ValidateForExport() error {
	o.SetExportDefaults()
	return ValidateFormat(o.Format)
}

// Validate checks every stage and applies all defaults.
func (o *Options) Validate() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForExport()
}

// LayoutOptions returns the layout options implied by o.
func (o *Options) LayoutOptions() []layout.Option {
	opts := []layout.Option{layout.WithSize(o.Width, o.Height)}
	if o.TickInterval > 0 {
		opts = append(opts, layout.WithTickInterval(o.TickInterval))
	}
	return opts
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// String implements fmt.Stringer for log output.
func (s Stats) String() string {
	return fmt.Sprintf("%d series, %d shapes (load %s, layout %s, export %s)",
		s.SeriesCount, s.ShapeCount, s.LoadTime, s.LayoutTime, s.ExportTime)
}
