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

// Package chartfile describes pages of flot plots in TOML, and builds them.
//
// A chart file looks like:
//
//	title = "Exchange rates"
//
//	[[plot]]
//	title = "USD/EUR"
//	legend = "se"
//
//	[[plot.yaxis]]
//	suffix = "€"
//
//	[[plot.series]]
//	kind = "lines"
//	label = "rate"
//	csv = "usd_eur.csv"
//
//	[[plot.marking]]
//	kind = "hline"
//	at = 0.8
//	color = "#f00"
//
// Data files are resolved relative to the chart file's directory.
package chartfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	configtree "github.com/ilhamster/flotviz/config_tree"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/page"
)

// Chart is a parsed chart file.
type Chart struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Plots  []Plot `toml:"plot"`

	// Dir is the directory data files are resolved against.
	Dir string `toml:"-"`
}

// Plot describes one plot.
type Plot struct {
	Title   string    `toml:"title"`
	Width   int       `toml:"width"`
	Height  int       `toml:"height"`
	Legend  string    `toml:"legend"`
	Text    []string  `toml:"text"`
	HTML    []string  `toml:"html"`
	Symbols bool      `toml:"symbols"`
	Palette []string  `toml:"palette"`
	Options string    `toml:"options"`
	Grid    *Grid     `toml:"grid"`
	XAxes   []Axis    `toml:"xaxis"`
	YAxes   []Axis    `toml:"yaxis"`
	Marks   []Marking `toml:"marking"`
	Series  []Series  `toml:"series"`
}

// Grid describes a plot's grid.
type Grid struct {
	Color         string   `toml:"color"`
	Background    []string `toml:"background"`
	BorderWidth   *float64 `toml:"border_width"`
	BorderColor   string   `toml:"border_color"`
	MarkingsColor string   `toml:"markings_color"`
	Hoverable     bool     `toml:"hoverable"`
	Clickable     bool     `toml:"clickable"`
	Hide          bool     `toml:"hide"`
}

// Axis describes one axis.  Axes are numbered by their position in the
// file.
type Axis struct {
	Min              *float64  `toml:"min"`
	Max              *float64  `toml:"max"`
	Position         string    `toml:"position"`
	Time             bool      `toml:"time"`
	TimeFormat       string    `toml:"time_format"`
	TickSize         *float64  `toml:"tick_size"`
	TickDecimals     *int      `toml:"tick_decimals"`
	Ticks            []float64 `toml:"ticks"`
	TickLabels       []string  `toml:"tick_labels"`
	Transform        string    `toml:"transform"`
	InverseTransform string    `toml:"inverse_transform"`
	TickFormatter    string    `toml:"tick_formatter"`
	Prefix           string    `toml:"prefix"`
	Suffix           string    `toml:"suffix"`
	Color            string    `toml:"color"`
	Hide             bool      `toml:"hide"`
}

// Marking describes one grid marking.  Kind is one of "hline", "vline",
// "harea", "varea", or "area".
type Marking struct {
	Kind      string    `toml:"kind"`
	At        float64   `toml:"at"`
	From      float64   `toml:"from"`
	To        float64   `toml:"to"`
	X         []float64 `toml:"x"`
	Y         []float64 `toml:"y"`
	Color     string    `toml:"color"`
	LineWidth *float64  `toml:"line_width"`
}

// Series describes one series and where its data comes from.  Exactly one
// data source (Points, CSV, XLSX, or Range) must be set.
type Series struct {
	Kind       string   `toml:"kind"`
	Label      string   `toml:"label"`
	Color      string   `toml:"color"`
	XAxis      int      `toml:"xaxis"`
	YAxis      int      `toml:"yaxis"`
	Fill       *float64 `toml:"fill"`
	FillColor  string   `toml:"fill_color"`
	LineWidth  *float64 `toml:"line_width"`
	ShadowSize *float64 `toml:"shadow_size"`
	Radius     *float64 `toml:"radius"`
	Symbol     string   `toml:"symbol"`
	Steps      bool     `toml:"steps"`
	BarWidth   *float64 `toml:"bar_width"`
	Align      string   `toml:"align"`
	Horizontal bool     `toml:"horizontal"`

	Source
}

// Parse parses a chart file's contents.  Unknown keys are rejected.
func Parse(data []byte) (*Chart, error) {
	var ret Chart
	md, err := toml.Decode(string(data), &ret)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse chart")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for idx, k := range undecoded {
			keys[idx] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown chart keys: %s", strings.Join(keys, ", "))
	}
	return &ret, nil
}

// Load reads and parses the chart file at path.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "no chart at %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "cannot read chart %s", path)
	}
	ret, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "in %s", path)
	}
	ret.Dir = filepath.Dir(path)
	return ret, nil
}

// Build builds the receiver into a new, unsealed page.  Misconfigurations
// that the builders reject, such as a radius on a line series, are returned
// as ErrCodeInvalidConfig errors.
func (c *Chart) Build(opts ...page.Option) (pg *page.Page, err error) {
	if c.Width > 0 && c.Height > 0 {
		opts = append([]page.Option{page.WithDefaultSize(c.Width, c.Height)}, opts...)
	}
	pg = page.New(c.Title, opts...)
	defer func() {
		if r := recover(); r != nil {
			pg = nil
			err = errors.Wrap(errors.ErrCodeInvalidConfig, errors.Recovered(r), "cannot build chart")
		}
	}()
	for idx := range c.Plots {
		if err := c.Plots[idx].build(pg, c.Dir); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "plot %d", idx+1)
		}
	}
	return pg, nil
}

// rawOptions parses a plot's raw JSON options into updates setting each of
// its top-level keys.
func rawOptions(options string) ([]configtree.Update, error) {
	if strings.TrimSpace(options) == "" {
		return nil, nil
	}
	tree, err := configtree.Parse([]byte(options))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "bad options")
	}
	if tree.Type() != configtree.ObjectType {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "options must be a JSON object, got %s", tree.Type())
	}
	var ret []configtree.Update
	for _, k := range tree.Keys() {
		ret = append(ret, configtree.Property(configtree.Keys(k), tree.Prop(k)))
	}
	return ret, nil
}
