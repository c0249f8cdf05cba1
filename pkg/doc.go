// Package pkg provides the core libraries for Stackchart chart layout.
//
// # Overview
//
// Stackchart computes where the shapes of a chart go: which group slot a
// series occupies, where each bar sits and how tall it is, how stacked
// series rest on the series below them, which curve connects line points,
// and which shapes lie under a pointer. Drawing is left to the caller; the
// output is geometry. The pkg directory is organized into four areas:
//
//  1. [chart] - Chart model (series, data points, configuration)
//  2. [core] - Layout engine (scales, shape resolvers, curves, layout passes)
//  3. [chartio] - Chart files and spreadsheets in, layout documents out
//  4. [pipeline] - Orchestration (load → layout → export)
//
// # Architecture
//
// The typical data flow through Stackchart:
//
//	chart.toml / chart.json (+ data.csv, data.xlsx)
//	         ↓
//	    [chartio] package (decode and validate)
//	         ↓
//	    [core/scale] package (fit x/y/y2 scales to the frame)
//	         ↓
//	    [core/layout] package (one layout pass over [core/shape] resolvers)
//	         ↓
//	    JSON layout document / SVG path data / hit tests
//
// # Quick Start
//
// Lay out a chart and test a pointer:
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/matzehuels/stackchart/pkg/chartio"
//	    "github.com/matzehuels/stackchart/pkg/core/layout"
//	)
//
//	// 1. Load the chart
//	c, _ := chartio.ReadChartFile("sales.toml")
//
//	// 2. Fit scales and compute the layout
//	axes := layout.AutoScales(c, 800, 600)
//	l := layout.Build(c, axes, layout.WithSize(800, 600))
//
//	// 3. Hit test
//	for _, s := range l.Hits(gg.Pt(120, 340)) {
//	    fmt.Println(s.Kind, s.ID, s.Datum.Value)
//	}
//
//	// 4. Export
//	chartio.WriteLayoutFile(l, "pass-1", "sales.layout.json")
//
// # Main Packages
//
// [core/shape] - The shape resolvers: group index assignment, x position
// with bar offsets, y value with stacking and normalization, stack offset
// accumulation, curve selection and hit testing.
//
// [core/curve] - The closed set of interpolations (linear, basis, cardinal,
// Catmull-Rom, monotone, natural and step variants) traced into a
// *gg.Path.
//
// [core/scale] - Linear scales and the axis set a layout reads from.
//
// [core/layout] - One layout pass: bar blocks, traced lines and areas,
// markers and the hit-testable shape list.
//
// [pipeline] - Load, layout and export with timing stats and observability
// hooks. Used by the CLI and the HTTP server.
//
// [errors] - Structured error codes shared by loading, validation and the
// HTTP adapter.
//
// [observability] - Hook interfaces for pipeline stages and HTTP requests.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/core/...     # Layout engine
//	go test -run Example       # Examples only
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/chart
// [core]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/core
// [core/shape]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/core/shape
// [core/curve]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/core/curve
// [core/scale]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/core/scale
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/core/layout
// [chartio]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/chartio
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/stackchart/pkg/observability
package pkg
