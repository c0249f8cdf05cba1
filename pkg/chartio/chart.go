package chartio

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/errors"
)

// Supported chart file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

type chartFile struct {
	Config     chart.Config  `toml:"config" json:"config"`
	Categories []string      `toml:"categories" json:"categories,omitempty"`
	Series     []seriesEntry `toml:"series" json:"series,omitempty"`
	DataFile   string        `toml:"data_file" json:"data_file,omitempty"`
	Sheet      string        `toml:"sheet" json:"sheet,omitempty"`
}

type seriesEntry struct {
	ID     string     `toml:"id" json:"id"`
	X      []any      `toml:"x" json:"x,omitempty"`
	Values []*float64 `toml:"values" json:"values"`
}

// FormatOf returns the chart file format implied by the extension of path.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported chart file %q (want .toml or .json)", filepath.Base(path))
	}
}

// ReadChartFile reads and validates the chart definition at path. A
// referenced data file is loaded relative to the chart file.
func ReadChartFile(path string) (*chart.Chart, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return decodeChart(data, format, filepath.Dir(path))
}

// ReadChart decodes and validates a chart definition from r. Definitions
// read this way cannot reference data files.
func ReadChart(r io.Reader, format string) (*chart.Chart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read chart")
	}
	return decodeChart(data, format, "")
}

func decodeChart(data []byte, format, baseDir string) (*chart.Chart, error) {
	var def chartFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
	}

	c, err := def.build(baseDir)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (def *chartFile) build(baseDir string) (*chart.Chart, error) {
	c := &chart.Chart{Config: def.Config}
	p := newXParser(def.Config.XType, def.Categories)

	for _, e := range def.Series {
		s, err := e.series(p)
		if err != nil {
			return nil, err
		}
		c.Series = append(c.Series, s)
	}
	categories := p.categories

	if def.DataFile != "" {
		if baseDir == "" {
			return nil, errors.New(errors.ErrCodeUnsupported, "data_file requires a chart file")
		}
		series, cats, err := readDataFile(baseDir, def.DataFile, def.Sheet, def.Config.XType, categories)
		if err != nil {
			return nil, err
		}
		c.Series = append(c.Series, series...)
		categories = cats
	}

	if def.Config.XType == chart.XCategory {
		c.Categories = categories
	}
	return c, nil
}

func (e seriesEntry) series(p *xParser) (chart.Series, error) {
	if err := errors.ValidateSeriesID(e.ID); err != nil {
		return chart.Series{}, err
	}
	s := chart.Series{ID: e.ID, Values: make([]chart.DataPoint, len(e.Values))}
	for i, v := range e.Values {
		var raw any
		if i < len(e.X) {
			raw = e.X[i]
		}
		x, err := p.parse(raw, i)
		if err != nil {
			return chart.Series{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "series %q, point %d", e.ID, i)
		}
		d := chart.DataPoint{X: x, Value: math.NaN(), ID: e.ID, Index: i}
		if v != nil {
			d.Value = *v
		}
		s.Values[i] = d
	}
	return s, nil
}

func readDataFile(baseDir, name, sheet, xType string, categories []string) ([]chart.Series, []string, error) {
	if err := errors.ValidatePath(filepath.ToSlash(name)); err != nil {
		return nil, nil, err
	}
	path := filepath.Join(baseDir, filepath.FromSlash(name))

	var (
		t   Table
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, statErr, "data file %s", name)
		}
		t, err = ReadXLSX(path, sheet)
	case ".csv":
		t, err = readWith(path, name, ReadCSV)
	case ".json":
		t, err = readWith(path, name, ReadColumnsJSON)
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported data file %q (want .csv, .xlsx or .json)", name)
	}
	if err != nil {
		return nil, nil, err
	}
	return t.Series(xType, categories)
}

func readWith(path, name string, read func(io.Reader) (Table, error)) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s", name)
		}
		return Table{}, errors.Wrap(errors.ErrCodeInternal, err, "open %s", name)
	}
	defer f.Close()
	return read(f)
}
