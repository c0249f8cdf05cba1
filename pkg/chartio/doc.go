// Package chartio reads chart definitions and writes computed layouts.
//
// # Chart Files
//
// A chart file is TOML or JSON, selected by extension. It holds a config
// table and either inline series or a reference to a data file:
//
//	data_file = "sales.csv"
//
//	[config]
//	type = "bar"
//	groups = [["north", "south"]]
//
//	[[series]]
//	id = "west"
//	x = [0, 1, 2]
//	values = [3, 4, 5]
//
// Inline series and data file columns are merged, inline series first.
// Data files are resolved relative to the chart file and must not leave
// its directory.
//
// # Data Files
//
// Three tabular formats are supported, each with an x column followed by
// one column per series:
//
//   - CSV with a header row ([ReadCSV])
//   - XLSX worksheets with a header row ([ReadXLSX])
//   - JSON column arrays, {"columns": [["x", 0, 1], ["a", 3, 4]]} ([ReadColumnsJSON])
//
// Empty cells become points without a value; they keep their position but
// are never plotted.
//
// # X Values
//
// How x cells are read depends on the configured x axis type:
//
//   - indexed: numbers, falling back to the row index
//   - timeseries: RFC 3339 or date-only timestamps, numbers as epoch milliseconds
//   - category: category names, mapped to their position in the category list
//
// # Layout Export
//
// [Export] converts a computed layout into a [Document], the stable JSON
// form written by [WriteLayout] and [WriteLayoutFile] and read back by
// [UnmarshalLayout].
package chartio
