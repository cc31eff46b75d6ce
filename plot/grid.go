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
	"github.com/ilhamster/flotviz/color"
	configtree "github.com/ilhamster/flotviz/config_tree"
)

const (
	legendKey            = "legend"
	backgroundColorKey   = "backgroundColor"
	backgroundOpacityKey = "backgroundOpacity"
	borderWidthKey       = "borderWidth"
	borderColorKey       = "borderColor"
	hoverableKey         = "hoverable"
	clickableKey         = "clickable"
	markingsColorKey     = "markingsColor"
	noColumnsKey         = "noColumns"
	marginKey            = "margin"
)

// Grid is a view onto a plot's grid options.
type Grid struct {
	plot *Plot
}

// Grid returns a view onto the receiver's grid.
func (p *Plot) Grid() *Grid {
	p.check("Grid")
	return &Grid{plot: p}
}

func (g *Grid) set(op, key string, v *configtree.Node) *Grid {
	g.plot.guard.Check("Grid." + op)
	mustSet(g.plot.options, configtree.Keys(gridKey, key), v)
	return g
}

// Color sets the color of the grid's border and tick labels.
func (g *Grid) Color(color string) *Grid {
	return g.set("Color", colorKey, configtree.String(color))
}

// BackgroundColor sets the plot area's background color.
func (g *Grid) BackgroundColor(color string) *Grid {
	return g.set("BackgroundColor", backgroundColorKey, configtree.String(color))
}

// BackgroundGradient fills the plot area with a gradient from the top color
// to the bottom one.
func (g *Grid) BackgroundGradient(from, to string) *Grid {
	return g.set("BackgroundGradient", backgroundColorKey, color.Gradient(from, to))
}

// BorderWidth sets the width of the grid's border.
func (g *Grid) BorderWidth(px float64) *Grid {
	return g.set("BorderWidth", borderWidthKey, configtree.Number(px))
}

// BorderColor sets the color of the grid's border.
func (g *Grid) BorderColor(color string) *Grid {
	return g.set("BorderColor", borderColorKey, configtree.String(color))
}

// MarkingsColor sets the default color of markings.
func (g *Grid) MarkingsColor(color string) *Grid {
	return g.set("MarkingsColor", markingsColorKey, configtree.String(color))
}

// Hoverable enables plothover events.
func (g *Grid) Hoverable() *Grid {
	return g.set("Hoverable", hoverableKey, configtree.Bool(true))
}

// Clickable enables plotclick events.
func (g *Grid) Clickable() *Grid {
	return g.set("Clickable", clickableKey, configtree.Bool(true))
}

// Show shows or hides the grid.
func (g *Grid) Show(show bool) *Grid {
	return g.set("Show", showKey, configtree.Bool(show))
}

// Corner is a legend position.
type Corner int

// Legend positions.  None hides the legend.
const (
	None Corner = iota
	TopRight
	TopLeft
	BottomRight
	BottomLeft
)

// String returns the corner's flot position.
func (c Corner) String() string {
	switch c {
	case TopRight:
		return "ne"
	case TopLeft:
		return "nw"
	case BottomRight:
		return "se"
	case BottomLeft:
		return "sw"
	}
	return "none"
}

// Legend is a view onto a plot's legend options.
type Legend struct {
	plot *Plot
}

// Legend returns a view onto the receiver's legend.
func (p *Plot) Legend() *Legend {
	p.check("Legend")
	return &Legend{plot: p}
}

func (l *Legend) set(op, key string, v *configtree.Node) *Legend {
	l.plot.guard.Check("Legend." + op)
	mustSet(l.plot.options, configtree.Keys(legendKey, key), v)
	return l
}

// Position places the legend in the specified corner.  None hides it.
func (l *Legend) Position(corner Corner) *Legend {
	if corner == None {
		return l.Hide()
	}
	l.plot.guard.Check("Legend.Position")
	l.plot.options.Delete(configtree.Keys(legendKey, showKey))
	return l.set("Position", positionKey, configtree.String(corner.String()))
}

// Hide hides the legend.
func (l *Legend) Hide() *Legend {
	return l.set("Hide", showKey, configtree.Bool(false))
}

// Columns sets the number of columns the legend is laid out in.
func (l *Legend) Columns(n int) *Legend {
	return l.set("Columns", noColumnsKey, configtree.Int(n))
}

// BackgroundOpacity sets the opacity of the legend's background.
func (l *Legend) BackgroundOpacity(opacity float64) *Legend {
	return l.set("BackgroundOpacity", backgroundOpacityKey, configtree.Number(opacity))
}

// BackgroundColor sets the legend's background color.
func (l *Legend) BackgroundColor(color string) *Legend {
	return l.set("BackgroundColor", backgroundColorKey, configtree.String(color))
}

// Margin sets the legend's distance from the plot edges, in pixels.
func (l *Legend) Margin(x, y int) *Legend {
	return l.set("Margin", marginKey, configtree.Array(configtree.Int(x), configtree.Int(y)))
}
