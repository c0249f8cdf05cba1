package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/chartio"
	"github.com/matzehuels/stackchart/pkg/core/layout"
	"github.com/matzehuels/stackchart/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{ID: uuid.NewString()}
	logger := opts.Logger.With("pass", result.ID)

	// Stage 1: Load
	loadStart := time.Now()
	c, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Chart = c
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SeriesCount = len(c.Series)

	logger.Debug("loaded chart",
		"series", len(c.Series),
		"type", c.Config.Type,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := r.Layout(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.ShapeCount = len(l.Shapes)

	logger.Debug("computed layout",
		"shapes", len(l.Shapes),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Export
	exportStart := time.Now()
	out, err := r.Export(ctx, l, result.ID, opts)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	result.Output = out
	result.Stats.ExportTime = time.Since(exportStart)

	logger.Debug("exported layout",
		"format", opts.Format,
		"bytes", len(out),
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Load reads the chart named by opts.Input, or returns opts.Chart when set.
func (r *Runner) Load(ctx context.Context, opts Options) (c *chart.Chart, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.Chart != nil {
		if err := opts.Chart.Validate(); err != nil {
			return nil, err
		}
		return opts.Chart, nil
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()
	defer func() {
		n := 0
		if c != nil {
			n = len(c.Series)
		}
		hooks.OnLoadComplete(ctx, opts.Input, n, time.Since(start), err)
	}()

	return chartio.ReadChartFile(opts.Input)
}

// Layout fits scales to the frame and computes the layout of c.
func (r *Runner) Layout(ctx context.Context, c *chart.Chart, opts Options) (l layout.Layout, err error) {
	if err := ctx.Err(); err != nil {
		return layout.Layout{}, err
	}
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, string(c.Config.Type), len(c.Series))
	start := time.Now()
	defer func() {
		hooks.OnLayoutComplete(ctx, len(l.Shapes), time.Since(start), err)
	}()

	axes := layout.AutoScales(c, opts.Width, opts.Height)
	return layout.Build(c, axes, opts.LayoutOptions()...), nil
}

// Export serializes l in the requested format.
func (r *Runner) Export(ctx context.Context, l layout.Layout, id string, opts Options) (data []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.ValidateForExport(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, opts.Format)
	start := time.Now()
	defer func() {
		hooks.OnExportComplete(ctx, opts.Format, len(data), time.Since(start), err)
	}()

	switch opts.Format {
	case FormatPaths:
		return ExportPaths(l), nil
	default:
		return chartio.MarshalLayout(l, id)
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
