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

// Package series builds a single flot data series: one sequence of (x, y)
// points drawn as lines, points, or bars, plus its display options.
//
// Series are allocated by a plot:
//
//	s := plot.Lines("exchange rate", data).YAxis(2).Fill(0.3).LineWidth(0)
//
// A series' configuration tree has the shape flot expects:
//
//	{
//	  "label": <label, omitted if empty>,
//	  "data": [[x, y], ...],
//	  <kind>: {"show": true, <kind-specific options>},
//	  <cross-kind options such as color, xaxis, yaxis>
//	}
//
// where <kind> is "lines", "points", or "bars".  Options that only make sense
// for one kind, such as Radius for points, panic with an ErrCodeKindMismatch
// error when applied to a series of another kind; the tree is left untouched.
package series

import (
	"iter"

	"github.com/ilhamster/flotviz/arena"
	configtree "github.com/ilhamster/flotviz/config_tree"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/points"
)

const (
	labelKey          = "label"
	dataKey           = "data"
	showKey           = "show"
	colorKey          = "color"
	xAxisKey          = "xaxis"
	yAxisKey          = "yaxis"
	shadowSizeKey     = "shadowSize"
	highlightColorKey = "highlightColor"
	fillKey           = "fill"
	fillColorKey      = "fillColor"
	lineWidthKey      = "lineWidth"
	radiusKey         = "radius"
	symbolKey         = "symbol"
	stepsKey          = "steps"
	barWidthKey       = "barWidth"
	alignKey          = "align"
	horizontalKey     = "horizontal"
)

// Kind is the way a series is drawn.
type Kind int

// The closed set of series kinds.
const (
	Lines Kind = iota
	Points
	Bars
)

// String returns the kind's flot option key.
func (k Kind) String() string {
	switch k {
	case Lines:
		return "lines"
	case Points:
		return "points"
	case Bars:
		return "bars"
	}
	return "unknown"
}

// BarAlign is the alignment of a bar relative to its x value.
type BarAlign string

// Bar alignments.
const (
	AlignLeft   BarAlign = "left"
	AlignCenter BarAlign = "center"
	AlignRight  BarAlign = "right"
)

// Series is a handle to one data series of a plot.  It remains valid and
// mutable until the owning page is sealed.
type Series struct {
	guard   *arena.Guard
	kind    Kind
	label   string
	tree    *configtree.Node
	symbols bool
}

// New returns a new Series of the specified kind over data.  An empty label
// leaves the series out of the legend.  New consumes data immediately.
func New(guard *arena.Guard, kind Kind, label string, data iter.Seq[points.Pair]) *Series {
	arr := configtree.Array()
	if data != nil {
		for p := range data {
			mustAppend(arr, configtree.Numbers(p.X, p.Y))
		}
	}
	tree := configtree.Object()
	if err := tree.With(
		configtree.If(label != "", configtree.Property(configtree.Keys(labelKey), configtree.String(label))),
		configtree.Property(configtree.Keys(dataKey), arr),
		configtree.Property(configtree.Keys(kind.String(), showKey), configtree.Bool(true)),
	); err != nil {
		panic(err)
	}
	return &Series{
		guard: guard,
		kind:  kind,
		label: label,
		tree:  tree,
	}
}

// Kind returns the receiver's kind.
func (s *Series) Kind() Kind {
	return s.kind
}

// Label returns the receiver's label, which may be empty.
func (s *Series) Label() string {
	return s.label
}

// UsesSymbols returns true if the receiver draws points with a custom
// symbol, which requires the flot symbol plugin.
func (s *Series) UsesSymbols() bool {
	return s.symbols
}

// Tree returns the receiver's configuration tree.
func (s *Series) Tree() *configtree.Node {
	return s.tree
}

func (s *Series) check(op string) {
	s.guard.Check("Series." + op)
}

// set sets a cross-kind option.
func (s *Series) set(op, key string, v *configtree.Node) *Series {
	s.check(op)
	mustSet(s.tree, configtree.Keys(key), v)
	return s
}

// setKind sets an option in the receiver's kind-specific subtree, after
// checking that op applies to the receiver's kind.
func (s *Series) setKind(op, key string, v *configtree.Node, kinds ...Kind) *Series {
	s.check(op)
	s.expectKind(op, kinds...)
	mustSet(s.tree, configtree.Keys(s.kind.String(), key), v)
	return s
}

func (s *Series) expectKind(op string, kinds ...Kind) {
	if len(kinds) == 0 {
		return
	}
	for _, k := range kinds {
		if k == s.kind {
			return
		}
	}
	panic(errors.New(errors.ErrCodeKindMismatch, "%s only applies to %s, not %s", op, kinds[0], s.kind))
}

func mustSet(tree *configtree.Node, path configtree.Path, v *configtree.Node) {
	if err := tree.Set(path, v); err != nil {
		panic(err)
	}
}

func mustAppend(arr *configtree.Node, v *configtree.Node) {
	if err := arr.Append(nil, v); err != nil {
		panic(err)
	}
}

func mustPositive(op string, which int) {
	if which < 1 {
		panic(errors.New(errors.ErrCodeInvalidInput, "%s: axis numbers start at 1, got %d", op, which))
	}
}

// SetOption sets an arbitrary cross-kind option.
func (s *Series) SetOption(key string, v *configtree.Node) *Series {
	return s.set("SetOption", key, v)
}

// SetKindOption sets an arbitrary option in the receiver's kind-specific
// subtree.
func (s *Series) SetKindOption(key string, v *configtree.Node) *Series {
	return s.setKind("SetKindOption", key, v)
}

// XAxis plots the receiver against the specified x axis, counting from 1.
func (s *Series) XAxis(which int) *Series {
	s.check("XAxis")
	mustPositive("Series.XAxis", which)
	return s.set("XAxis", xAxisKey, configtree.Int(which))
}

// YAxis plots the receiver against the specified y axis, counting from 1.
func (s *Series) YAxis(which int) *Series {
	s.check("YAxis")
	mustPositive("Series.YAxis", which)
	return s.set("YAxis", yAxisKey, configtree.Int(which))
}

// Color sets the receiver's color.
func (s *Series) Color(color string) *Series {
	return s.set("Color", colorKey, configtree.String(color))
}

// HighlightColor sets the color used when the receiver is highlighted.
func (s *Series) HighlightColor(color string) *Series {
	return s.set("HighlightColor", highlightColorKey, configtree.String(color))
}

// ShadowSize sets the width of the receiver's shadow; 0 disables it.
func (s *Series) ShadowSize(px float64) *Series {
	return s.set("ShadowSize", shadowSizeKey, configtree.Number(px))
}

// Fill fills the receiver's area, bars, or points with the specified
// opacity.
func (s *Series) Fill(opacity float64) *Series {
	return s.setKind("Fill", fillKey, configtree.Number(opacity))
}

// FillColor sets the receiver's fill color.
func (s *Series) FillColor(color string) *Series {
	return s.setKind("FillColor", fillColorKey, configtree.String(color))
}

// FillGradient sets the receiver's fill to a gradient, as built by the color
// package.
func (s *Series) FillGradient(gradient *configtree.Node) *Series {
	return s.setKind("FillGradient", fillColorKey, gradient)
}

// LineWidth sets the width of the receiver's lines or outlines.
func (s *Series) LineWidth(px float64) *Series {
	return s.setKind("LineWidth", lineWidthKey, configtree.Number(px))
}

// Radius sets the radius of the receiver's points.  Points only.
func (s *Series) Radius(px float64) *Series {
	return s.setKind("Radius", radiusKey, configtree.Number(px), Points)
}

// Symbol draws the receiver's points with the named symbol, such as
// "circle", "square", "diamond", "triangle", or "cross".  Points only.
func (s *Series) Symbol(name string) *Series {
	s.setKind("Symbol", symbolKey, configtree.String(name), Points)
	s.symbols = true
	return s
}

// Steps draws the receiver's lines as steps.  Lines only.
func (s *Series) Steps() *Series {
	return s.setKind("Steps", stepsKey, configtree.Bool(true), Lines)
}

// Width sets the width of the receiver's bars, in x-axis units.  Bars only.
func (s *Series) Width(width float64) *Series {
	return s.setKind("Width", barWidthKey, configtree.Number(width), Bars)
}

// Align sets the alignment of the receiver's bars.  Bars only.
func (s *Series) Align(align BarAlign) *Series {
	return s.setKind("Align", alignKey, configtree.String(string(align)), Bars)
}

// Horizontal draws the receiver's bars horizontally.  Bars only.
func (s *Series) Horizontal() *Series {
	return s.setKind("Horizontal", horizontalKey, configtree.Bool(true), Bars)
}
