package chart

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type xKind uint8

const (
	xMissing xKind = iota
	xNumber
	xTime
)

// Date layouts accepted for timeseries x values, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// XValue is the horizontal coordinate of a data point: a number, a
// timestamp, or missing. The zero value is missing.
type XValue struct {
	num  float64
	t    time.Time
	kind xKind
}

// Num returns a numeric x value. NaN is treated as missing.
func Num(v float64) XValue {
	if math.IsNaN(v) {
		return XValue{}
	}
	return XValue{num: v, kind: xNumber}
}

// Time returns a timestamp x value.
func Time(t time.Time) XValue {
	return XValue{t: t, kind: xTime}
}

// Valid reports whether the value is present.
func (x XValue) Valid() bool { return x.kind != xMissing }

// IsTime reports whether the value is a timestamp.
func (x XValue) IsTime() bool { return x.kind == xTime }

// Float returns the numeric form of x. Timestamps convert to Unix
// milliseconds. Missing values return NaN.
func (x XValue) Float() float64 {
	switch x.kind {
	case xNumber:
		return x.num
	case xTime:
		return float64(x.t.UnixMilli())
	default:
		return math.NaN()
	}
}

// Time returns the timestamp form of x. Numbers are read as Unix
// milliseconds.
func (x XValue) Time() time.Time {
	if x.kind == xTime {
		return x.t
	}
	return time.UnixMilli(int64(x.num)).UTC()
}

// Equal reports whether two values sit at the same horizontal position.
// The comparison is numeric so a number and a timestamp with the same
// millisecond value are equal. Missing values are never equal.
func (x XValue) Equal(o XValue) bool {
	if !x.Valid() || !o.Valid() {
		return false
	}
	return x.Float() == o.Float()
}

// Shift returns x moved by d. Timestamps move by d milliseconds.
func (x XValue) Shift(d float64) XValue {
	switch x.kind {
	case xNumber:
		return Num(x.num + d)
	case xTime:
		return Time(x.t.Add(time.Duration(d * float64(time.Millisecond))))
	default:
		return x
	}
}

// String implements fmt.Stringer.
func (x XValue) String() string {
	switch x.kind {
	case xNumber:
		return strconv.FormatFloat(x.num, 'g', -1, 64)
	case xTime:
		return x.t.Format(time.RFC3339)
	default:
		return "<missing>"
	}
}

// ParseX parses a textual x value. Numbers become numeric values; strings
// matching one of the supported date layouts become timestamps. Empty
// input is missing.
func ParseX(s string) (XValue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return XValue{}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Num(f), nil
	}
	if t, ok := parseDate(s); ok {
		return Time(t), nil
	}
	return XValue{}, fmt.Errorf("invalid x value %q", s)
}

// ParseTimeX parses s strictly as a timestamp.
func ParseTimeX(s string) (XValue, error) {
	if t, ok := parseDate(strings.TrimSpace(s)); ok {
		return Time(t), nil
	}
	return XValue{}, fmt.Errorf("invalid date %q", s)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MarshalJSON encodes numbers as JSON numbers, timestamps as RFC 3339
// strings and missing values as null.
func (x XValue) MarshalJSON() ([]byte, error) {
	switch x.kind {
	case xNumber:
		return json.Marshal(x.num)
	case xTime:
		return json.Marshal(x.t.Format(time.RFC3339Nano))
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts numbers, date strings and null.
func (x *XValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := xFromAny(raw)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// UnmarshalTOML accepts TOML integers, floats, strings and datetimes.
func (x *XValue) UnmarshalTOML(data any) error {
	v, err := xFromAny(data)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func xFromAny(raw any) (XValue, error) {
	switch v := raw.(type) {
	case nil:
		return XValue{}, nil
	case float64:
		return Num(v), nil
	case int64:
		return Num(float64(v)), nil
	case int:
		return Num(float64(v)), nil
	case time.Time:
		return Time(v), nil
	case string:
		return ParseX(v)
	default:
		return XValue{}, fmt.Errorf("unsupported x value of type %T", raw)
	}
}
