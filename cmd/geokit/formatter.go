package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/markdrayton/geokit/batch"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

const alwaysShow bool = true

type columnOpts struct {
	rhumb     bool
	precision int
}

type column struct {
	header string
	align  alignment
	show   bool
	format func(rf *ResultFormatter, r batch.Result) string
}

type ResultFormatter struct {
	columns   []column
	precision int
}

func NewResultFormatter(opts columnOpts) *ResultFormatter {
	return &ResultFormatter{
		columns: []column{
			{"#", alignRight, alwaysShow, nil},
			{"From", alignLeft, alwaysShow, formatFrom},
			{"To", alignLeft, alwaysShow, formatTo},
			{"Dist", alignRight, alwaysShow, formatDistance},
			{"Rhumb", alignRight, opts.rhumb, formatRhumbDistance},
			{"Brg", alignRight, opts.rhumb, formatRhumbBearing},
		},
		precision: opts.precision,
	}
}

// Format renders a header line and one line per result. Every shown column
// is as wide as its widest cell and columns are separated by two spaces.
func (rf *ResultFormatter) Format(results []batch.Result) []string {
	shown := rf.shown()
	table := make([][]string, len(results)+1)
	widths := make([]int, len(shown))
	for row := range table {
		cells := make([]string, len(shown))
		for i, col := range shown {
			if row == 0 {
				cells[i] = col.header
			} else {
				cells[i] = col.cell(rf, row, results[row-1])
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(cells[i]))
		}
		table[row] = cells
	}

	lines := make([]string, len(table))
	for row, cells := range table {
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			fill := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
			if shown[i].align == alignLeft {
				b.WriteString(cell + fill)
			} else {
				b.WriteString(fill + cell)
			}
		}
		lines[row] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

func (rf *ResultFormatter) shown() []column {
	cols := make([]column, 0, len(rf.columns))
	for _, col := range rf.columns {
		if col.show {
			cols = append(cols, col)
		}
	}
	return cols
}

func (col column) cell(rf *ResultFormatter, n int, r batch.Result) string {
	if col.format == nil {
		return strconv.Itoa(n)
	}
	return col.format(rf, r)
}

func (rf *ResultFormatter) float(f float64) string {
	return strconv.FormatFloat(f, 'f', rf.precision, 64)
}

func formatFrom(rf *ResultFormatter, r batch.Result) string {
	return rf.float(r.From.Lat()) + "," + rf.float(r.From.Lng())
}

func formatTo(rf *ResultFormatter, r batch.Result) string {
	return rf.float(r.To.Lat()) + "," + rf.float(r.To.Lng())
}

func formatDistance(rf *ResultFormatter, r batch.Result) string {
	return rf.float(r.Distance)
}

func formatRhumbDistance(rf *ResultFormatter, r batch.Result) string {
	return rf.float(r.RhumbDistance)
}

func formatRhumbBearing(rf *ResultFormatter, r batch.Result) string {
	return rf.float(r.RhumbBearing)
}
