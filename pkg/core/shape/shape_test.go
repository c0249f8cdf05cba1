package shape

import (
	"fmt"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/curve"
	"github.com/matzehuels/stackchart/pkg/core/scale"
)

// yPixel puts zero at 100 and grows upwards two pixels per unit.
var yPixel = scale.Func(func(v float64) float64 { return 100 - 2*v })

func series(id string, values ...float64) chart.Series {
	xs := make([]chart.XValue, len(values))
	for i := range values {
		xs[i] = chart.Num(float64(i))
	}
	return chart.NewSeries(id, xs, values)
}

func seriesAt(id string, xs []float64, values ...float64) chart.Series {
	xv := make([]chart.XValue, len(xs))
	for i, x := range xs {
		xv[i] = chart.Num(x)
	}
	return chart.NewSeries(id, xv, values)
}

func testEnv() *Env {
	return &Env{Scales: &scale.Axes{XScale: scale.Identity, YScale: yPixel}}
}

// ===== Group Index Assigner =====

func TestComputeIndices(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		groups  [][]string
		want    map[string]int
		max     int
	}{
		{"no targets", nil, nil, map[string]int{}, -1},
		{"ungrouped", []string{"a", "b", "c"}, nil, map[string]int{"a": 0, "b": 1, "c": 2}, 2},
		{"one group", []string{"a", "b", "c"}, [][]string{{"a", "b"}}, map[string]int{"a": 0, "b": 0, "c": 1}, 1},
		{"group order does not matter", []string{"a", "b", "c"}, [][]string{{"c", "a"}}, map[string]int{"a": 0, "b": 1, "c": 0}, 1},
		{"transitive", []string{"a", "b", "c"}, [][]string{{"a", "b"}, {"b", "c"}}, map[string]int{"a": 0, "b": 0, "c": 0}, 0},
		{"traversal order tie-break", []string{"c", "a", "b"}, [][]string{{"a", "b"}, {"b", "c"}}, map[string]int{"c": 0, "a": 1, "b": 1}, 1},
		{"unknown members ignored", []string{"a", "b"}, [][]string{{"ghost", "a"}, {"b"}}, map[string]int{"a": 0, "b": 1}, 1},
		{"later group joins", []string{"a", "b"}, [][]string{{"b", "x"}, {"a", "b"}}, map[string]int{"a": 0, "b": 0}, 0},
		{"overlapping groups", []string{"a", "c", "b"}, [][]string{{"b", "a"}, {"b", "c"}}, map[string]int{"a": 0, "c": 1, "b": 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var targets []chart.Series
			for _, id := range tt.targets {
				targets = append(targets, series(id, 1))
			}
			got := ComputeIndices(targets, tt.groups)
			assert.Equal(t, tt.want, got.ByID)
			assert.Equal(t, tt.max, got.Max)
			assert.Equal(t, tt.max+1, got.Count())
		})
	}
}

func TestComputeIndicesDeterministic(t *testing.T) {
	targets := []chart.Series{series("a", 1), series("b", 1), series("c", 1), series("d", 1)}
	groups := [][]string{{"b", "d"}, {"a", "c"}}

	first := ComputeIndices(targets, groups)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, ComputeIndices(targets, groups))
	}
	assert.Equal(t, []string{"b", "d"}, first.Members(first.Of("b"), targets))
}

func TestIndicesOfUnknown(t *testing.T) {
	ix := ComputeIndices([]chart.Series{series("a", 1), series("b", 1)}, nil)
	assert.Equal(t, 0, ix.Of("missing"))
	assert.False(t, ix.Has("missing"))
	assert.True(t, ix.Has("b"))
}

// ===== X Position Resolver =====

func TestXBarPaddingCentersCluster(t *testing.T) {
	targets := []chart.Series{series("a", 1), series("b", 1), series("c", 1)}
	ix := ComputeIndices(targets, nil)
	env := testEnv()

	at := func(id string) chart.DataPoint {
		return chart.DataPoint{X: chart.Num(100), Value: 1, ID: id}
	}

	plain := env.X(Width(10), 3, ix, 0)
	padded := env.X(Width(10), 3, ix, 2)

	want := map[string]float64{"a": -2, "b": 0, "c": 2}
	for id, shift := range want {
		assert.InDelta(t, shift, padded(at(id))-plain(at(id)), 1e-9, id)
	}
	assert.InDelta(t, 85, plain(at("a")), 1e-9)
	assert.InDelta(t, 95, plain(at("b")), 1e-9)
	assert.InDelta(t, 105, plain(at("c")), 1e-9)
}

func TestXPaddingForTwoBars(t *testing.T) {
	ix := ComputeIndices([]chart.Series{series("a", 1), series("b", 1)}, nil)
	env := testEnv()
	plain := env.X(Width(10), 2, ix, 0)
	padded := env.X(Width(10), 2, ix, 4)

	a := chart.DataPoint{X: chart.Num(50), ID: "a"}
	b := chart.DataPoint{X: chart.Num(50), ID: "b"}
	assert.InDelta(t, -2, padded(a)-plain(a), 1e-9)
	assert.InDelta(t, 2, padded(b)-plain(b), 1e-9)
}

func TestXPaddingSkippedForSingleBar(t *testing.T) {
	ix := ComputeIndices([]chart.Series{series("a", 1)}, nil)
	x := testEnv().X(Width(10), 1, ix, 4)
	assert.InDelta(t, 45, x(chart.DataPoint{X: chart.Num(50), ID: "a"}), 1e-9)
}

func TestXMissingIsZero(t *testing.T) {
	ix := ComputeIndices([]chart.Series{series("a", 1), series("b", 1)}, nil)
	x := testEnv().X(Width(10), 2, ix, 4)
	assert.Equal(t, 0.0, x(chart.DataPoint{ID: "b", Value: 3}))
}

func TestXPerSeriesWidths(t *testing.T) {
	ix := ComputeIndices([]chart.Series{series("a", 1), series("b", 1)}, nil)
	off := Offset{Width: 10, ByID: map[string]float64{"a": 20}, Total: []float64{20, 10}}
	x := testEnv().X(off, 2, ix, 0)

	// half width 15: a spans [-15, 5], b spans [5, 15] around x
	assert.InDelta(t, 85, x(chart.DataPoint{X: chart.Num(100), ID: "a"}), 1e-9)
	assert.InDelta(t, 105, x(chart.DataPoint{X: chart.Num(100), ID: "b"}), 1e-9)
}

func TestXUsesSubScale(t *testing.T) {
	ix := ComputeIndices([]chart.Series{series("a", 1)}, nil)
	env := &Env{Scales: &scale.Axes{
		XScale:    scale.Identity,
		SubXScale: scale.Func(func(v float64) float64 { return v / 2 }),
	}}
	d := chart.DataPoint{X: chart.Num(40), ID: "a"}
	assert.Equal(t, 40.0, env.X(Width(0), 1, ix, 0)(d))
	assert.Equal(t, 20.0, env.WithSub().X(Width(0), 1, ix, 0)(d))
}

// ===== Y Value Resolver =====

func TestY(t *testing.T) {
	ix := ComputeIndices([]chart.Series{series("a", 1), series("b", 1)}, nil)
	env := &Env{Scales: &scale.Axes{
		YScale:  yPixel,
		Y2Scale: scale.Func(func(v float64) float64 { return 200 - v }),
		Y2IDs:   map[string]bool{"b": true},
	}}
	y := env.Y(ix)
	assert.Equal(t, 80.0, y(chart.DataPoint{ID: "a", Value: 10}))
	assert.Equal(t, 190.0, y(chart.DataPoint{ID: "b", Value: 10}))
}

func TestYNormalized(t *testing.T) {
	a, b := series("a", 30), series("b", 10)
	targets := []chart.Series{a, b}
	ix := ComputeIndices(targets, [][]string{{"a", "b"}})

	c := &chart.Chart{Config: chart.Config{Stack: chart.StackConfig{Normalize: true}}, Series: targets}
	env := NewEnv(c, &scale.Axes{}, targets, ix)
	require.True(t, env.Normalized())

	y := env.Y(ix)
	assert.InDelta(t, 75, y(a.Values[0]), 1e-9)
	assert.InDelta(t, 25, y(b.Values[0]), 1e-9)

	offset := env.Offset(targets, ix)
	assert.InDelta(t, 75, offset(b.Values[0], 0), 1e-9)
}

// ===== Stack Offset Accumulator =====

func TestOffsetStackAccumulation(t *testing.T) {
	a, b := series("a", 5, 5), series("b", 3, 2)
	targets := []chart.Series{a, b}
	ix := ComputeIndices(targets, [][]string{{"a", "b"}})
	offset := testEnv().Offset(targets, ix)

	y0 := yPixel(0)
	assert.Equal(t, y0, offset(a.Values[0], 0), "first series sits on zero")
	assert.Equal(t, y0+(yPixel(5)-y0), offset(b.Values[0], 0))
	assert.Equal(t, yPixel(5), offset(b.Values[1], 1))
}

func TestOffsetSignIsolation(t *testing.T) {
	p, n, q := series("p", 10), series("n", -5), series("q", 4)
	targets := []chart.Series{p, n, q}
	ix := ComputeIndices(targets, [][]string{{"p", "n", "q"}})
	offset := testEnv().Offset(targets, ix)

	y0 := yPixel(0)
	assert.Equal(t, y0, offset(p.Values[0], 0))
	assert.Equal(t, y0, offset(n.Values[0], 0))
	assert.Equal(t, yPixel(10), offset(q.Values[0], 0), "q stacks on p only")
}

func TestOffsetZeroStacksWithAnySign(t *testing.T) {
	z, n := series("z", 0), series("n", -5)
	targets := []chart.Series{z, n}
	ix := ComputeIndices(targets, [][]string{{"z", "n"}})
	offset := testEnv().Offset(targets, ix)

	// zero contributes scale(0) - y0 = 0 but is not rejected
	assert.Equal(t, yPixel(0), offset(n.Values[0], 0))
}

func TestOffsetIgnoresOtherGroupsAndLaterSeries(t *testing.T) {
	a, b, c := series("a", 5), series("b", 7), series("c", 9)
	targets := []chart.Series{a, b, c}
	ix := ComputeIndices(targets, [][]string{{"a", "b"}})
	offset := testEnv().Offset(targets, ix)

	y0 := yPixel(0)
	assert.Equal(t, y0, offset(a.Values[0], 0), "b comes later")
	assert.Equal(t, yPixel(5), offset(b.Values[0], 0))
	assert.Equal(t, y0, offset(c.Values[0], 0), "c is in its own group")
}

func TestOffsetMisalignedSeries(t *testing.T) {
	a := seriesAt("a", []float64{0, 1, 2}, 5, 6, 7)
	b := seriesAt("b", []float64{1, 2, 5}, 1, 1, 1)
	targets := []chart.Series{a, b}
	ix := ComputeIndices(targets, [][]string{{"a", "b"}})
	offset := testEnv().Offset(targets, ix)

	assert.Equal(t, yPixel(6), offset(b.Values[0], 0), "falls back to searching x=1")
	assert.Equal(t, yPixel(7), offset(b.Values[1], 1))
	assert.Equal(t, yPixel(0), offset(b.Values[2], 2), "no point at x=5")
}

func TestOffsetDuplicateX(t *testing.T) {
	a := seriesAt("a", []float64{0, 1, 1}, 5, 6, 8)
	b := seriesAt("b", []float64{1}, 1)
	targets := []chart.Series{a, b}
	ix := ComputeIndices(targets, [][]string{{"a", "b"}})
	offset := testEnv().Offset(targets, ix)

	assert.Equal(t, yPixel(8), offset(b.Values[0], 0), "last point at x=1 wins")
}

func TestOffsetTimeX(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	// same instants, built separately and in another zone
	berlin := time.FixedZone("CET", 3600)
	shifted := func(d int) time.Time { return day(d).In(berlin) }

	a := chart.NewSeries("a", []chart.XValue{chart.Time(day(1)), chart.Time(day(2))}, []float64{5, 6})
	b := chart.NewSeries("b", []chart.XValue{chart.Time(shifted(2)), chart.Time(shifted(3))}, []float64{1, 1})
	targets := []chart.Series{a, b}
	ix := ComputeIndices(targets, [][]string{{"a", "b"}})
	offset := testEnv().Offset(targets, ix)

	assert.Equal(t, yPixel(6), offset(b.Values[0], 0), "aligned by timestamp, not position")
	assert.Equal(t, yPixel(0), offset(b.Values[1], 1), "a has no point on day 3")
}

func TestOffsetShorterSeries(t *testing.T) {
	a := series("a", 5)
	b := series("b", 1, 1, 1)
	targets := []chart.Series{a, b}
	ix := ComputeIndices(targets, [][]string{{"a", "b"}})
	offset := testEnv().Offset(targets, ix)

	assert.Equal(t, yPixel(5), offset(b.Values[0], 0))
	assert.Equal(t, yPixel(0), offset(b.Values[2], 2))
}

func TestOffsetStepResampling(t *testing.T) {
	a, b := series("a", 5, 6), series("b", 1, 1)
	targets := []chart.Series{a, b}
	ix := ComputeIndices(targets, [][]string{{"a", "b"}})
	env := testEnv()
	env.Categorized = true
	env.TypeOf = func(string) chart.ShapeType { return chart.TypeStep }
	offset := env.Offset(targets, ix)

	assert.Equal(t, yPixel(5), offset(b.Values[0], 0))
	assert.Equal(t, yPixel(6), offset(b.Values[1], 1))
	assert.Equal(t, yPixel(6), offset(chart.DataPoint{X: chart.Num(2), Value: 1, ID: "b"}, 2),
		"resampled tail covers the next category")
}

func TestOffsetUnknownSeries(t *testing.T) {
	targets := []chart.Series{series("a", 5)}
	ix := ComputeIndices(targets, nil)
	offset := testEnv().Offset(targets, ix)
	assert.Equal(t, yPixel(0), offset(chart.DataPoint{X: chart.Num(0), Value: 1, ID: "zz"}, 0))
}

func TestOffsetDeterministic(t *testing.T) {
	a, b, c := series("a", 5, -2, 3), series("b", 3, -1, 2), series("c", 1, 1, 1)
	targets := []chart.Series{a, b, c}
	ix := ComputeIndices(targets, [][]string{{"a", "b", "c"}})
	env := testEnv()

	first := env.Offset(targets, ix)
	second := env.Offset(targets, ix)
	for _, s := range targets {
		for i, d := range s.Values {
			assert.Equal(t, first(d, i), second(d, i))
		}
	}
}

// ===== Curve Selector =====

func TestInterpolation(t *testing.T) {
	for _, name := range curve.Names() {
		assert.Equal(t, name, Interpolation(chart.TypeSpline, name, ""), "spline %s", name)
		assert.Equal(t, name, Interpolation(chart.TypeAreaSpline, name, ""), "area-spline %s", name)
		assert.Equal(t, name, Curve(chart.TypeSpline, name, "").Name())
	}

	tests := []struct {
		name   string
		typ    chart.ShapeType
		spline string
		step   string
		want   string
	}{
		{"unknown spline", chart.TypeSpline, "wiggly", "", curve.Cardinal},
		{"empty spline", chart.TypeSpline, "", "", curve.Cardinal},
		{"step ignores spline", chart.TypeStep, curve.Natural, curve.StepAfter, curve.StepAfter},
		{"area step", chart.TypeAreaStep, "", curve.StepBefore, curve.StepBefore},
		{"step default", chart.TypeStep, "", "", curve.Step},
		{"step rejects non-step", chart.TypeStep, "", curve.Basis, curve.Step},
		{"line", chart.TypeLine, curve.Natural, curve.StepAfter, curve.Linear},
		{"area", chart.TypeArea, curve.Natural, "", curve.Linear},
		{"bar", chart.TypeBar, curve.Natural, "", curve.Linear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolation(tt.typ, tt.spline, tt.step))
		})
	}
}

// ===== Hit Tester =====

func TestWithinPointBoundaryInclusive(t *testing.T) {
	d := chart.DataPoint{X: chart.Num(0), Value: 1, ID: "a"}
	s := PointShape(d, gg.Pt(0, 0), true)
	tol := DefaultTolerance()

	edge := gg.Pt(6, 8) // distance exactly 10
	for i := 0; i < 5; i++ {
		assert.True(t, Within(s, edge, tol))
	}
	assert.False(t, Within(s, gg.Pt(6, 8.01), tol))
}

func TestWithin(t *testing.T) {
	d := chart.DataPoint{X: chart.Num(0), Value: 1, ID: "a"}
	tol := DefaultTolerance()
	bar := BarShape(d, gg.NewRect(gg.Pt(10, 10), gg.Pt(20, 50)), true)

	tests := []struct {
		name    string
		shape   Shape
		pointer gg.Point
		want    bool
	}{
		{"hidden point", PointShape(d, gg.Pt(0, 0), false), gg.Pt(0, 0), false},
		{"point center", PointShape(d, gg.Pt(5, 5), true), gg.Pt(5, 5), true},
		{"bubble edge", BubbleShape(d, gg.Pt(0, 0), 4, true), gg.Pt(0, 6), true},
		{"bubble outside", BubbleShape(d, gg.Pt(0, 0), 4, true), gg.Pt(0, 6.5), false},
		{"step band edge", StepShape(d, gg.Pt(0, 50), 50, true), gg.Pt(500, 80), true},
		{"step band outside", StepShape(d, gg.Pt(0, 50), 50, true), gg.Pt(0, 80.5), false},
		{"bar inside", bar, gg.Pt(15, 30), true},
		{"bar sensitivity edge", bar, gg.Pt(8, 30), true},
		{"bar outside", bar, gg.Pt(7.9, 30), false},
		{"bar below", bar, gg.Pt(15, 52.5), false},
		{"hidden bar", BarShape(d, bar.Bounds, false), gg.Pt(15, 30), false},
		{"line anywhere", LineShape("a", gg.NewPath(), true), gg.Pt(-999, 999), true},
		{"area anywhere", AreaShape("a", gg.NewPath(), true), gg.Pt(1, 1), true},
		{"hidden line", LineShape("a", gg.NewPath(), false), gg.Pt(1, 1), false},
		{"zero kind", Shape{Visible: true}, gg.Pt(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Within(tt.shape, tt.pointer, tol))
		})
	}
}

func TestToleranceOf(t *testing.T) {
	var cfg chart.Config
	cfg.SetDefaults()
	assert.Equal(t, DefaultTolerance(), ToleranceOf(cfg))
}

func ExampleComputeIndices() {
	targets := []chart.Series{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}
	ix := ComputeIndices(targets, [][]string{{"a", "c"}})
	fmt.Println(ix.Of("a"), ix.Of("b"), ix.Of("c"), ix.Of("d"), ix.Max)
	// Output: 0 1 0 2 2
}
