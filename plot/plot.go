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

// Package plot builds a single flot plot: its series, its option tree, and
// the placeholder block that surrounds it in the page.
//
// A Plot is allocated by a page, and hands out Series handles and scoped
// sub-builders (Axis, Markings, Grid, Legend) that write into its option
// tree:
//
//	p := page.Plot("Exchange rates")
//	p.Lines("USD/EUR", usd).Color("blue")
//	p.Lines("oil", oil).YAxis(2)
//	p.YAxis2().Position(plot.Right).LabelPost("$")
//	p.Markings().HorizontalLine(1.2).Color("#f00")
//
// All handles stay valid, and may be mutated in any order, until the owning
// page is sealed.  Afterwards every mutating call panics with an
// ErrCodeSealed error.
package plot

import (
	"fmt"
	"iter"

	"github.com/ilhamster/flotviz/arena"
	"github.com/ilhamster/flotviz/color"
	configtree "github.com/ilhamster/flotviz/config_tree"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/points"
	"github.com/ilhamster/flotviz/series"
)

// Paragraph is a descriptive block shown below a plot.
type Paragraph struct {
	// Text is the paragraph body.
	Text string
	// Raw is true if Text is markup to be emitted verbatim, and false if it
	// is plain text to be escaped.
	Raw bool
}

// Assignment is a foreign expression assigned into a plot's options after
// they are declared, such as an axis transform.
type Assignment struct {
	Path configtree.Path
	Expr string
}

// Plot is a handle to one plot of a page.
type Plot struct {
	guard         *arena.Guard
	series        *arena.Arena[series.Series]
	index         int
	title         string
	width, height int
	paragraphs    []Paragraph
	options       *configtree.Node
	assignments   []Assignment
	time          bool
	symbols       bool
}

// New returns a new Plot with the specified 1-based index within its page.
// Plots are normally created through a page.
func New(guard *arena.Guard, index int, title string, width, height int) *Plot {
	return &Plot{
		guard:   guard,
		series:  arena.New[series.Series](guard),
		index:   index,
		title:   title,
		width:   width,
		height:  height,
		options: configtree.Object(),
	}
}

func (p *Plot) check(op string) {
	p.guard.Check("Plot." + op)
}

func mustSet(tree *configtree.Node, path configtree.Path, v *configtree.Node) {
	if err := tree.Set(path, v); err != nil {
		panic(err)
	}
}

// Index returns the receiver's 1-based index within its page.
func (p *Plot) Index() int {
	return p.index
}

// Placeholder returns the identifier of the element the receiver is drawn
// into.
func (p *Plot) Placeholder() string {
	return fmt.Sprintf("plot-%d", p.index)
}

// VarName returns the prefix of the receiver's script variables.
func (p *Plot) VarName() string {
	return fmt.Sprintf("plot%d", p.index)
}

// TitleText returns the receiver's title, which may be empty.
func (p *Plot) TitleText() string {
	return p.title
}

// Dimensions returns the receiver's width and height in pixels.
func (p *Plot) Dimensions() (width, height int) {
	return p.width, p.height
}

// Paragraphs returns the receiver's descriptive paragraphs in the order they
// were added.
func (p *Plot) Paragraphs() []Paragraph {
	return append([]Paragraph(nil), p.paragraphs...)
}

// Options returns the receiver's option tree.
func (p *Plot) Options() *configtree.Node {
	return p.options
}

// Assignments returns the receiver's foreign-expression assignments, in the
// order their targets were first assigned.
func (p *Plot) Assignments() []Assignment {
	return append([]Assignment(nil), p.assignments...)
}

// Series returns the receiver's series in creation order.
func (p *Plot) Series() []*series.Series {
	return p.series.All()
}

// UsesTime returns true if any of the receiver's axes is a time axis.
func (p *Plot) UsesTime() bool {
	return p.time
}

// UsesSymbols returns true if the receiver needs the flot symbol plugin.
func (p *Plot) UsesSymbols() bool {
	if p.symbols {
		return true
	}
	for _, s := range p.series.All() {
		if s.UsesSymbols() {
			return true
		}
	}
	return false
}

// Size sets the receiver's size in pixels.
func (p *Plot) Size(width, height int) *Plot {
	p.check("Size")
	p.width, p.height = width, height
	return p
}

// Title sets the receiver's title, shown as a heading above it.
func (p *Plot) Title(title string) *Plot {
	p.check("Title")
	p.title = title
	return p
}

// Text adds a plain-text paragraph below the receiver.  The text is escaped.
func (p *Plot) Text(text string) *Plot {
	p.check("Text")
	p.paragraphs = append(p.paragraphs, Paragraph{Text: text})
	return p
}

// HTML adds a paragraph of markup below the receiver.  The markup is emitted
// verbatim.
func (p *Plot) HTML(markup string) *Plot {
	p.check("HTML")
	p.paragraphs = append(p.paragraphs, Paragraph{Text: markup, Raw: true})
	return p
}

// ExtraSymbols requests the flot symbol plugin even if no series names a
// symbol.
func (p *Plot) ExtraSymbols() *Plot {
	p.check("ExtraSymbols")
	p.symbols = true
	return p
}

// SetOption sets options[key][subkey] to v.
func (p *Plot) SetOption(key, subkey string, v *configtree.Node) *Plot {
	p.check("SetOption")
	mustSet(p.options, configtree.Keys(key, subkey), v)
	return p
}

// Update applies the provided updates to the receiver's option tree,
// returning the first error encountered.
func (p *Plot) Update(updates ...configtree.Update) error {
	p.check("Update")
	return p.options.With(updates...)
}

// Palette sets the colors assigned to series without an explicit color.
func (p *Plot) Palette(palette *color.Palette) *Plot {
	p.check("Palette")
	if err := p.options.With(palette.Define()); err != nil {
		panic(err)
	}
	return p
}

// LegendPos positions the receiver's legend; None hides it.
func (p *Plot) LegendPos(corner Corner) *Plot {
	p.Legend().Position(corner)
	return p
}

// Lines adds a new line series over data.
func (p *Plot) Lines(label string, data iter.Seq[points.Pair]) *series.Series {
	return p.newSeries(series.Lines, label, data)
}

// Points adds a new point series over data.
func (p *Plot) Points(label string, data iter.Seq[points.Pair]) *series.Series {
	return p.newSeries(series.Points, label, data)
}

// Bars adds a new bar series over data.
func (p *Plot) Bars(label string, data iter.Seq[points.Pair]) *series.Series {
	return p.newSeries(series.Bars, label, data)
}

func (p *Plot) newSeries(kind series.Kind, label string, data iter.Seq[points.Pair]) *series.Series {
	p.check(kindOp(kind))
	return p.series.Alloc(series.New(p.guard, kind, label, data))
}

func kindOp(kind series.Kind) string {
	switch kind {
	case series.Points:
		return "Points"
	case series.Bars:
		return "Bars"
	}
	return "Lines"
}

// assign records a foreign-expression assignment at path, replacing any
// earlier assignment to the same path.
func (p *Plot) assign(path configtree.Path, expr string) {
	key := path.String()
	for idx, a := range p.assignments {
		if a.Path.String() == key {
			p.assignments[idx].Expr = expr
			return
		}
	}
	p.assignments = append(p.assignments, Assignment{Path: path, Expr: expr})
}

func noMarking(op string) *errors.Error {
	return errors.New(errors.ErrCodeNoMarking, "Markings.%s called with no marking to apply it to", op)
}
