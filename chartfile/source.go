/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package chartfile

import (
	"encoding/csv"
	"iter"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/points"
	"github.com/xuri/excelize/v2"
)

// Source is where a series' data comes from.
type Source struct {
	// Points are inline [x, y] pairs.
	Points [][2]float64 `toml:"points"`

	// CSV and XLSX name data files.  XColumn and YColumn select the columns
	// holding x and y: header names for CSV files, and column letters for
	// XLSX sheets.  By default the first two columns are used.  Header
	// skips the first row.
	CSV     string `toml:"csv"`
	XLSX    string `toml:"xlsx"`
	Sheet   string `toml:"sheet"`
	XColumn string `toml:"x_column"`
	YColumn string `toml:"y_column"`
	Header  bool   `toml:"header"`

	// Range is [start, end, step]; Func names the function of x plotted over
	// it.
	Range []float64 `toml:"range"`
	Func  string    `toml:"func"`

	// XScale multiplies every x value, e.g. 1000 to turn Unix seconds into
	// flot's milliseconds.
	XScale float64 `toml:"x_scale"`
}

var funcs = map[string]func(float64) float64{
	"identity": func(x float64) float64 { return x },
	"square":   func(x float64) float64 { return x * x },
	"sin":      math.Sin,
	"cos":      math.Cos,
	"exp":      math.Exp,
	"log":      math.Log,
	"sqrt":     math.Sqrt,
}

// load reads the receiver's data.  File-backed sources are read eagerly, so
// that their errors are reported here.
func (s *Source) load(dir string) (iter.Seq[points.Pair], error) {
	set := 0
	for _, isSet := range []bool{s.Points != nil, s.CSV != "", s.XLSX != "", s.Range != nil} {
		if isSet {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "a series needs exactly one of points, csv, xlsx, or range; got %d", set)
	}
	var (
		ret iter.Seq[points.Pair]
		err error
	)
	switch {
	case s.Points != nil:
		ret = points.Tuples(s.Points)
	case s.CSV != "":
		ret, err = s.loadCSV(resolve(dir, s.CSV))
	case s.XLSX != "":
		ret, err = s.loadXLSX(resolve(dir, s.XLSX))
	default:
		ret, err = s.generate()
	}
	if err != nil {
		return nil, err
	}
	if s.XScale != 0 && s.XScale != 1 {
		ret = points.Scale(ret, s.XScale, 1)
	}
	return ret, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

func (s *Source) generate() (iter.Seq[points.Pair], error) {
	if len(s.Range) != 3 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "range must be [start, end, step], got %d values", len(s.Range))
	}
	for _, v := range s.Range {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "range values must be finite, got %v", s.Range)
		}
	}
	name := s.Func
	if name == "" {
		name = "identity"
	}
	f, ok := funcs[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown func %q", s.Func)
	}
	return points.MapSeq(points.Range(s.Range[0], s.Range[1], s.Range[2]), f), nil
}

func (s *Source) loadCSV(path string) (iter.Seq[points.Pair], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "cannot open %s", path)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot read %s", path)
	}
	xCol, yCol := 0, 1
	if s.XColumn != "" || s.YColumn != "" {
		if !s.Header || len(rows) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: selecting CSV columns by name needs a header", path)
		}
		if xCol, err = headerColumn(rows[0], s.XColumn, xCol); err != nil {
			return nil, err
		}
		if yCol, err = headerColumn(rows[0], s.YColumn, yCol); err != nil {
			return nil, err
		}
	}
	return s.pairs(path, rows, xCol, yCol)
}

func headerColumn(header []string, name string, dflt int) (int, error) {
	if name == "" {
		return dflt, nil
	}
	idx := slices.IndexFunc(header, func(h string) bool {
		return strings.TrimSpace(h) == name
	})
	if idx < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "no column %q in header %v", name, header)
	}
	return idx, nil
}

func (s *Source) loadXLSX(path string) (iter.Seq[points.Pair], error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "cannot open %s", path)
	}
	defer f.Close()
	sheet := s.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot read sheet %q of %s", sheet, path)
	}
	xCol, err := letterColumn(s.XColumn, 0)
	if err != nil {
		return nil, err
	}
	yCol, err := letterColumn(s.YColumn, 1)
	if err != nil {
		return nil, err
	}
	return s.pairs(path, rows, xCol, yCol)
}

func letterColumn(name string, dflt int) (int, error) {
	if name == "" {
		return dflt, nil
	}
	num, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "bad column %q", name)
	}
	return num - 1, nil
}

// pairs extracts (x, y) pairs from rows.  Blank rows are skipped.
func (s *Source) pairs(path string, rows [][]string, xCol, yCol int) (iter.Seq[points.Pair], error) {
	if s.Header && len(rows) > 0 {
		rows = rows[1:]
	}
	var ret []points.Pair
	for idx, row := range rows {
		if blank(row) {
			continue
		}
		if xCol >= len(row) || yCol >= len(row) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s: row %d has %d columns", path, idx+1, len(row))
		}
		x, err := parseNumber(row[xCol])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: row %d", path, idx+1)
		}
		y, err := parseNumber(row[yCol])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: row %d", path, idx+1)
		}
		ret = append(ret, points.P(x, y))
	}
	return points.Of(ret...), nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseNumber(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}
