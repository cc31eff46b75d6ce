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

package plot

import (
	configtree "github.com/ilhamster/flotviz/config_tree"
)

const (
	gridKey      = "grid"
	markingsKey  = "markings"
	xAxisKey     = "xaxis"
	yAxisKey     = "yaxis"
	fromKey      = "from"
	toKey        = "to"
	lineWidthKey = "lineWidth"
)

var markingsPath = configtree.Keys(gridKey, markingsKey)

// Markings is a view onto a plot's grid markings: lines and areas drawn
// behind its series.  Color and LineWidth apply to the most recently added
// marking.
type Markings struct {
	plot *Plot
}

// Markings returns a view onto the receiver's markings.  Existing markings
// are kept.
func (p *Plot) Markings() *Markings {
	p.check("Markings")
	if p.options.Get(markingsPath).IsNull() {
		mustSet(p.options, markingsPath, configtree.Array())
	}
	return &Markings{plot: p}
}

func span(from, to float64) *configtree.Node {
	ret := configtree.Object()
	mustSet(ret, configtree.Keys(fromKey), configtree.Number(from))
	mustSet(ret, configtree.Keys(toKey), configtree.Number(to))
	return ret
}

func marking(axisKey string, from, to float64) *configtree.Node {
	ret := configtree.Object()
	mustSet(ret, configtree.Keys(axisKey), span(from, to))
	return ret
}

// AddMarking appends an arbitrary marking.
func (m *Markings) AddMarking(marking *configtree.Node) *Markings {
	m.plot.guard.Check("Markings.AddMarking")
	if err := m.plot.options.Append(markingsPath, marking); err != nil {
		panic(err)
	}
	return m
}

// VerticalArea marks the band between x1 and x2.
func (m *Markings) VerticalArea(x1, x2 float64) *Markings {
	return m.AddMarking(marking(xAxisKey, x1, x2))
}

// HorizontalArea marks the band between y1 and y2.
func (m *Markings) HorizontalArea(y1, y2 float64) *Markings {
	return m.AddMarking(marking(yAxisKey, y1, y2))
}

// VerticalLine marks a vertical line at x.
func (m *Markings) VerticalLine(x float64) *Markings {
	return m.VerticalArea(x, x)
}

// HorizontalLine marks a horizontal line at y.
func (m *Markings) HorizontalLine(y float64) *Markings {
	return m.HorizontalArea(y, y)
}

// Area marks the rectangle [x1, x2] by [y1, y2].
func (m *Markings) Area(x1, x2, y1, y2 float64) *Markings {
	ret := marking(xAxisKey, x1, x2)
	mustSet(ret, configtree.Keys(yAxisKey), span(y1, y2))
	return m.AddMarking(ret)
}

// last returns the most recently added marking, panicking with an
// ErrCodeNoMarking error if there is none.
func (m *Markings) last(op string) *configtree.Node {
	m.plot.guard.Check("Markings." + op)
	last, err := m.plot.options.Last(markingsPath)
	if err != nil {
		panic(noMarking(op))
	}
	return last
}

// Color sets the color of the most recently added marking.
func (m *Markings) Color(color string) *Markings {
	mustSet(m.last("Color"), configtree.Keys(colorKey), configtree.String(color))
	return m
}

// LineWidth sets the line width of the most recently added marking.
func (m *Markings) LineWidth(px float64) *Markings {
	mustSet(m.last("LineWidth"), configtree.Keys(lineWidthKey), configtree.Number(px))
	return m
}

// Len returns the number of markings.
func (m *Markings) Len() int {
	return m.plot.options.Get(markingsPath).Len()
}
