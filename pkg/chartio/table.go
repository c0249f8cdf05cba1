package chartio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/errors"
)

// Table is row-oriented tabular data. The first column holds x values and
// every other column one series named by its header.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSV reads a table from CSV with a header row.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode csv")
	}
	return tableOf(records)
}

// ReadXLSX reads a table from a worksheet. An empty sheet selects the
// first sheet of the workbook.
func ReadXLSX(path, sheet string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Table{}, errors.New(errors.ErrCodeInvalidFormat, "%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "%s: read sheet %q", path, sheet)
	}
	return tableOf(rows)
}

// ReadColumnsJSON reads a table from a JSON object holding column arrays.
// Each column starts with its name; the first column is the x column.
func ReadColumnsJSON(r io.Reader) (Table, error) {
	var data struct {
		Columns [][]any `json:"columns"`
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode columns")
	}

	var t Table
	rows := 0
	for i, col := range data.Columns {
		if len(col) == 0 {
			return Table{}, errors.New(errors.ErrCodeInvalidFormat, "column %d has no name", i)
		}
		name, ok := col[0].(string)
		if !ok {
			return Table{}, errors.New(errors.ErrCodeInvalidFormat, "column %d: name must be a string", i)
		}
		t.Header = append(t.Header, name)
		rows = max(rows, len(col)-1)
	}

	t.Rows = make([][]string, rows)
	for i := range t.Rows {
		t.Rows[i] = make([]string, len(data.Columns))
		for j, col := range data.Columns {
			if i+1 < len(col) {
				t.Rows[i][j] = cellString(col[i+1])
			}
		}
	}
	return t, nil
}

func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func tableOf(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, errors.New(errors.ErrCodeInvalidFormat, "missing header row")
	}
	return Table{Header: records[0], Rows: records[1:]}, nil
}

// Series converts the table into series.
//
// X cells are parsed for the given x axis type. In category mode the
// returned names extend categories with every new name seen, in order.
func (t Table) Series(xType string, categories []string) ([]chart.Series, []string, error) {
	if len(t.Header) < 2 {
		return nil, nil, errors.New(errors.ErrCodeInvalidFormat, "table needs an x column and at least one series column")
	}

	p := newXParser(xType, categories)
	xs := make([]chart.XValue, len(t.Rows))
	for i, row := range t.Rows {
		x, err := p.parse(cell(row, 0), i)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "row %d", i+1)
		}
		xs[i] = x
	}

	series := make([]chart.Series, 0, len(t.Header)-1)
	for j, name := range t.Header[1:] {
		id := strings.TrimSpace(name)
		if err := errors.ValidateSeriesID(id); err != nil {
			return nil, nil, err
		}
		s := chart.Series{ID: id, Values: make([]chart.DataPoint, len(t.Rows))}
		for i, row := range t.Rows {
			v, err := parseValue(cell(row, j+1))
			if err != nil {
				return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "row %d, series %q", i+1, id)
			}
			s.Values[i] = chart.DataPoint{X: xs[i], Value: v, ID: id, Index: i}
		}
		series = append(series, s)
	}
	return series, p.categories, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// parseValue parses a value cell; an empty cell is NaN.
func parseValue(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", s)
	}
	return v, nil
}

// xParser reads x cells according to the x axis type.
type xParser struct {
	xType      string
	categories []string
	seen       map[string]int
}

func newXParser(xType string, categories []string) *xParser {
	p := &xParser{xType: xType, seen: make(map[string]int, len(categories))}
	for _, c := range categories {
		p.category(c)
	}
	return p
}

func (p *xParser) category(name string) int {
	if i, ok := p.seen[name]; ok {
		return i
	}
	i := len(p.categories)
	p.categories = append(p.categories, name)
	p.seen[name] = i
	return i
}

// parse converts one raw x value. raw is a string cell or a decoded
// TOML/JSON scalar; index is the row position.
func (p *xParser) parse(raw any, index int) (chart.XValue, error) {
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	if raw == nil || raw == "" {
		if p.xType == chart.XTimeseries {
			return chart.XValue{}, nil
		}
		return chart.Num(float64(index)), nil
	}

	switch p.xType {
	case chart.XCategory:
		return chart.Num(float64(p.category(cellString(raw)))), nil

	case chart.XTimeseries:
		switch v := raw.(type) {
		case time.Time:
			return chart.Time(v), nil
		case string:
			if x, err := chart.ParseTimeX(v); err == nil {
				return x, nil
			}
			ms, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return chart.XValue{}, fmt.Errorf("invalid date %q", v)
			}
			return chart.Time(time.UnixMilli(int64(ms)).UTC()), nil
		}
		ms, ok := number(raw)
		if !ok {
			return chart.XValue{}, fmt.Errorf("unsupported x value of type %T", raw)
		}
		return chart.Time(time.UnixMilli(int64(ms)).UTC()), nil

	default:
		if s, ok := raw.(string); ok {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				return chart.Num(v), nil
			}
			return chart.Num(float64(index)), nil
		}
		if v, ok := number(raw); ok {
			return chart.Num(v), nil
		}
		return chart.Num(float64(index)), nil
	}
}

func number(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
