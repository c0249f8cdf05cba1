package chartio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/core/layout"
	"github.com/matzehuels/stackchart/pkg/core/scale"
	"github.com/matzehuels/stackchart/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("x,a,b\n0,1,2\n1,,4\n2,5\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "b"}, tbl.Header)
	assert.Len(t, tbl.Rows, 3)

	series, _, err := tbl.Series(chart.XIndexed, nil)
	require.NoError(t, err)
	require.Len(t, series, 2)

	a := series[0]
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, 1.0, a.Values[0].Value)
	assert.True(t, math.IsNaN(a.Values[1].Value), "empty cell")
	assert.False(t, a.Values[1].Plotted())
	assert.Equal(t, 1, a.Values[1].Index)
	assert.True(t, series[1].Values[2].X.Equal(chart.Num(2)))
	assert.True(t, math.IsNaN(series[1].Values[2].Value), "short row")
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))

	tbl, err := ReadCSV(strings.NewReader("x\n1\n"))
	require.NoError(t, err)
	_, _, err = tbl.Series(chart.XIndexed, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))

	tbl, err = ReadCSV(strings.NewReader("x,a\n0,abc\n"))
	require.NoError(t, err)
	_, _, err = tbl.Series(chart.XIndexed, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestTableSeriesXTypes(t *testing.T) {
	t.Run("indexed falls back to row", func(t *testing.T) {
		tbl := Table{Header: []string{"x", "a"}, Rows: [][]string{{"10", "1"}, {"n/a", "2"}, {"", "3"}}}
		series, _, err := tbl.Series(chart.XIndexed, nil)
		require.NoError(t, err)
		assert.Equal(t, 10.0, series[0].Values[0].X.Float())
		assert.Equal(t, 1.0, series[0].Values[1].X.Float())
		assert.Equal(t, 2.0, series[0].Values[2].X.Float())
	})

	t.Run("category", func(t *testing.T) {
		tbl := Table{Header: []string{"x", "a"}, Rows: [][]string{{"tue", "1"}, {"mon", "2"}, {"wed", "3"}}}
		series, cats, err := tbl.Series(chart.XCategory, []string{"mon", "tue"})
		require.NoError(t, err)
		assert.Equal(t, []string{"mon", "tue", "wed"}, cats)
		assert.Equal(t, 1.0, series[0].Values[0].X.Float())
		assert.Equal(t, 0.0, series[0].Values[1].X.Float())
		assert.Equal(t, 2.0, series[0].Values[2].X.Float())
	})

	t.Run("timeseries", func(t *testing.T) {
		tbl := Table{Header: []string{"x", "a"}, Rows: [][]string{{"2024-01-02", "1"}, {"86400000", "2"}, {"", "3"}}}
		series, _, err := tbl.Series(chart.XTimeseries, nil)
		require.NoError(t, err)
		v := series[0].Values
		assert.True(t, v[0].X.IsTime())
		assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), v[0].X.Time())
		assert.Equal(t, float64(86400000), v[1].X.Float())
		assert.False(t, v[2].X.Valid())
	})

	t.Run("timeseries rejects text", func(t *testing.T) {
		tbl := Table{Header: []string{"x", "a"}, Rows: [][]string{{"soon", "1"}}}
		_, _, err := tbl.Series(chart.XTimeseries, nil)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
	})
}

func TestReadColumnsJSON(t *testing.T) {
	in := `{"columns": [["x", 0, 1, 2], ["a", 30, null, 10], ["b", 5]]}`
	tbl, err := ReadColumnsJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "b"}, tbl.Header)
	assert.Equal(t, [][]string{{"0", "30", "5"}, {"1", "", ""}, {"2", "10", ""}}, tbl.Rows)

	_, err = ReadColumnsJSON(strings.NewReader(`{"columns": [[1, 2]]}`))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestReadXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"x", "a", "b"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{0, 1, 2}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{1, 3}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := ReadXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "b"}, tbl.Header)

	series, _, err := tbl.Series(chart.XIndexed, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, series[0].Values[1].Value)
	assert.False(t, series[1].Values[1].Plotted())

	_, err = ReadXLSX(path, "Missing")
	assert.Error(t, err)
}

func TestReadChartFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "chart.toml", `
categories = ["mon", "tue"]

[config]
type = "bar"
x_type = "category"
groups = [["a", "b"]]

[config.spline]
interpolation = "monotone-x"

[[series]]
id = "a"
x = ["mon", "tue", "wed"]
values = [1, 2.5, 3]

[[series]]
id = "b"
values = [4, 5]
`)

	c, err := ReadChartFile(path)
	require.NoError(t, err)
	assert.Equal(t, chart.TypeBar, c.Config.Type)
	assert.Equal(t, [][]string{{"a", "b"}}, c.Config.Groups)
	assert.Equal(t, "monotone-x", c.Config.Spline.Interpolation)
	assert.Equal(t, []string{"mon", "tue", "wed"}, c.Categories)
	require.Len(t, c.Series, 2)
	assert.Equal(t, 2.5, c.Series[0].Values[1].Value)
	assert.Equal(t, 2.0, c.Series[0].Values[2].X.Float())
	assert.Equal(t, 1.0, c.Series[1].Values[1].X.Float())
}

func TestReadChartFileDataFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", "x,b,c\n0,1,2\n1,3,4\n")
	path := writeFile(t, dir, "chart.json", `{
  "config": {"type": "line", "types": {"c": "area"}},
  "series": [{"id": "a", "x": [0, 1], "values": [5, null]}],
  "data_file": "data.csv"
}`)

	c, err := ReadChartFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, chart.IDs(c.Series))
	assert.False(t, c.Series[0].Values[1].Plotted())
	assert.Equal(t, chart.TypeArea, c.TypeOf("c"))
	assert.Equal(t, 4.0, c.Series[2].Values[1].Value)
}

func TestReadChartFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		code    errors.Code
	}{
		{"unknown extension", "chart.yaml", "a: 1", errors.ErrCodeInvalidFormat},
		{"bad toml", "bad.toml", "[config", errors.ErrCodeInvalidFormat},
		{"bad interpolation", "interp.toml", "[config.spline]\ninterpolation = \"wiggly\"\n", errors.ErrCodeInvalidInterpolation},
		{"duplicate series", "dup.json", `{"series": [{"id": "a", "values": [1]}, {"id": "a", "values": [2]}]}`, errors.ErrCodeInvalidSeries},
		{"path traversal", "trav.toml", "data_file = \"../data.csv\"\n", errors.ErrCodeInvalidPath},
		{"missing data file", "missing.toml", "data_file = \"nope.csv\"\n", errors.ErrCodeFileNotFound},
		{"unknown data format", "fmt.toml", "data_file = \"data.txt\"\n", errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			_, err := ReadChartFile(path)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}

	_, err := ReadChartFile(filepath.Join(dir, "absent.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestReadChartRejectsDataFile(t *testing.T) {
	_, err := ReadChart(strings.NewReader(`{"data_file": "data.csv"}`), FormatJSON)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))

	c, err := ReadChart(strings.NewReader(`{"series": [{"id": "a", "values": [1, 2]}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, c.Series[0].Values, 2)
}

func testLayout() layout.Layout {
	c := &chart.Chart{
		Config: chart.Config{
			Type:  chart.TypeBar,
			Types: map[string]chart.ShapeType{"l": chart.TypeLine},
		},
		Series: []chart.Series{
			chart.NewSeries("a", []chart.XValue{chart.Num(0), chart.Num(1)}, []float64{5, 10}),
			chart.NewSeries("l", []chart.XValue{chart.Num(0), chart.Num(1)}, []float64{1, 2}),
		},
	}
	axes := &scale.Axes{
		XScale: scale.Func(func(v float64) float64 { return 100 + 100*v }),
		YScale: scale.Func(func(v float64) float64 { return 100 - 2*v }),
	}
	return layout.Build(c, axes, layout.WithTickInterval(100))
}

func TestExport(t *testing.T) {
	doc := Export(testLayout(), "pass-1")

	assert.Equal(t, "pass-1", doc.ID)
	assert.Equal(t, layout.DefaultWidth, doc.Width)
	assert.Equal(t, []string{"a"}, doc.Bars.Order)
	assert.Equal(t, 60.0, doc.Bars.Width)
	require.Len(t, doc.Series, 2)

	bars := doc.Series[0]
	assert.Empty(t, bars.Path)
	require.Len(t, bars.Bars, 2)
	assert.Equal(t, Bar{Index: 1, X: 170, Y: 80, Width: 60, Height: 20}, bars.Bars[1])

	line := doc.Series[1]
	assert.Equal(t, "linear", line.Curve)
	assert.Equal(t, "M100,98L200,96", line.Path)
	assert.Equal(t, 96.0, line.Points[1].PY)
}

func TestLayoutRoundTrip(t *testing.T) {
	l := testLayout()

	var buf bytes.Buffer
	require.NoError(t, WriteLayout(&buf, l, "x"))
	doc, err := UnmarshalLayout(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Export(l, "x"), doc)

	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, WriteLayoutFile(l, "y", path))
	doc, err = ReadLayoutFile(path)
	require.NoError(t, err)
	assert.Equal(t, "y", doc.ID)

	_, err = UnmarshalLayout([]byte(`{"width": 0}`))
	assert.Error(t, err)
}
