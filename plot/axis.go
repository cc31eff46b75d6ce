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
	"math"

	configtree "github.com/ilhamster/flotviz/config_tree"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/label"
)

const (
	xAxesKey              = "xaxes"
	yAxesKey              = "yaxes"
	minKey                = "min"
	maxKey                = "max"
	positionKey           = "position"
	alignTicksWithAxisKey = "alignTicksWithAxis"
	modeKey               = "mode"
	timeMode              = "time"
	timeFormatKey         = "timeformat"
	tickSizeKey           = "tickSize"
	tickDecimalsKey       = "tickDecimals"
	ticksKey              = "ticks"
	transformKey          = "transform"
	inverseTransformKey   = "inverseTransform"
	tickFormatterKey      = "tickFormatter"
	colorKey              = "color"
	showKey               = "show"
)

// AxisKind distinguishes x axes from y axes.
type AxisKind int

// Axis kinds.
const (
	X AxisKind = iota
	Y
)

func (k AxisKind) key() string {
	if k == X {
		return xAxesKey
	}
	return yAxesKey
}

// Side is the side of the plot an axis is drawn on.
type Side string

// Axis sides.
const (
	Right  Side = "right"
	Left   Side = "left"
	Bottom Side = "bottom"
	Top    Side = "top"
)

// Tick is an explicit axis tick with a label.
type Tick struct {
	Value float64
	Label string
}

// Axis is a view onto one of a plot's axes.  It owns nothing; all of its
// operations write into the plot's option tree at xaxes[i] or yaxes[i].
type Axis struct {
	plot *Plot
	kind AxisKind
	pos  int
}

// XAxis returns the receiver's first x axis.
func (p *Plot) XAxis() *Axis {
	return p.axis("XAxis", X, 1)
}

// YAxis returns the receiver's first y axis.
func (p *Plot) YAxis() *Axis {
	return p.axis("YAxis", Y, 1)
}

// YAxis2 returns the receiver's second y axis, creating the first if needed.
func (p *Plot) YAxis2() *Axis {
	return p.axis("YAxis2", Y, 2)
}

// XAxisN returns the receiver's nth x axis, counting from 1.
func (p *Plot) XAxisN(n int) *Axis {
	return p.axis("XAxisN", X, n)
}

// YAxisN returns the receiver's nth y axis, counting from 1.
func (p *Plot) YAxisN(n int) *Axis {
	return p.axis("YAxisN", Y, n)
}

// axis returns a view onto the nth axis of the specified kind, creating it
// and every missing axis before it.
func (p *Plot) axis(op string, kind AxisKind, n int) *Axis {
	p.check(op)
	if n < 1 {
		panic(errors.New(errors.ErrCodeInvalidInput, "Plot.%s: axis numbers start at 1, got %d", op, n))
	}
	if err := p.options.Grow(configtree.Keys(kind.key()), n); err != nil {
		panic(err)
	}
	return &Axis{
		plot: p,
		kind: kind,
		pos:  n - 1,
	}
}

func (a *Axis) path() configtree.Path {
	return configtree.Keys(a.kind.key()).Index(a.pos)
}

// Kind returns the kind of the receiver.
func (a *Axis) Kind() AxisKind {
	return a.kind
}

// Number returns the receiver's 1-based axis number, as used by
// Series.XAxis and Series.YAxis.
func (a *Axis) Number() int {
	return a.pos + 1
}

func (a *Axis) set(op, key string, v *configtree.Node) *Axis {
	a.plot.guard.Check("Axis." + op)
	mustSet(a.plot.options, a.path().Key(key), v)
	return a
}

// SetOption sets an arbitrary option on the receiver.
func (a *Axis) SetOption(key string, v *configtree.Node) *Axis {
	return a.set("SetOption", key, v)
}

// Min sets the receiver's minimum.
func (a *Axis) Min(min float64) *Axis {
	return a.set("Min", minKey, configtree.Number(min))
}

// Max sets the receiver's maximum.
func (a *Axis) Max(max float64) *Axis {
	return a.set("Max", maxKey, configtree.Number(max))
}

// Bounds sets the receiver's minimum and maximum.  A NaN end is left unset.
func (a *Axis) Bounds(min, max float64) *Axis {
	if !math.IsNaN(min) {
		a.Min(min)
	}
	if !math.IsNaN(max) {
		a.Max(max)
	}
	return a
}

// Position places the receiver on the specified side.  Right-hand axes
// align their ticks with the first axis.
func (a *Axis) Position(side Side) *Axis {
	if side == Right {
		a.set("Position", alignTicksWithAxisKey, configtree.Int(1))
	}
	return a.set("Position", positionKey, configtree.String(string(side)))
}

// Time makes the receiver a time axis, with values in milliseconds since the
// epoch.
func (a *Axis) Time() *Axis {
	a.set("Time", modeKey, configtree.String(timeMode))
	a.plot.time = true
	return a
}

// TimeFormat sets the strftime-like format of a time axis's tick labels.
func (a *Axis) TimeFormat(format string) *Axis {
	return a.set("TimeFormat", timeFormatKey, configtree.String(format))
}

// TickSize sets the interval between the receiver's ticks.
func (a *Axis) TickSize(size float64) *Axis {
	return a.set("TickSize", tickSizeKey, configtree.Number(size))
}

// TickDecimals sets the number of decimals shown in tick labels.
func (a *Axis) TickDecimals(n int) *Axis {
	return a.set("TickDecimals", tickDecimalsKey, configtree.Int(n))
}

// TickValues places the receiver's ticks at the provided values.
func (a *Axis) TickValues(values ...float64) *Axis {
	return a.set("TickValues", ticksKey, configtree.Numbers(values...))
}

// TickValuesAndLabels places labeled ticks on the receiver.
func (a *Axis) TickValuesAndLabels(ticks ...Tick) *Axis {
	arr := configtree.Array()
	for _, t := range ticks {
		if err := arr.Append(nil, configtree.Array(configtree.Number(t.Value), configtree.String(t.Label))); err != nil {
			panic(err)
		}
	}
	return a.set("TickValuesAndLabels", ticksKey, arr)
}

// Color sets the color of the receiver's ticks and labels.
func (a *Axis) Color(color string) *Axis {
	return a.set("Color", colorKey, configtree.String(color))
}

// Show shows or hides the receiver.
func (a *Axis) Show(show bool) *Axis {
	return a.set("Show", showKey, configtree.Bool(show))
}

func (a *Axis) assign(op, key, expr string) *Axis {
	a.plot.guard.Check("Axis." + op)
	a.plot.assign(a.path().Key(key), expr)
	return a
}

// Transform sets the receiver's transform, a JavaScript function of the
// value v, such as "Math.log(v)".  Bare expressions are wrapped in a
// function; function text is emitted unchanged.
func (a *Axis) Transform(expr string) *Axis {
	return a.assign("Transform", transformKey, label.Transform(expr))
}

// InverseTransform sets the inverse of the receiver's transform.
func (a *Axis) InverseTransform(expr string) *Axis {
	return a.assign("InverseTransform", inverseTransformKey, label.Transform(expr))
}

// TickFormatter sets the JavaScript function formatting the receiver's tick
// labels, a function of the value v and the axis.
func (a *Axis) TickFormatter(expr string) *Axis {
	return a.assign("TickFormatter", tickFormatterKey, label.Formatter(expr))
}

// LabelPre prefixes each of the receiver's tick labels.
func (a *Axis) LabelPre(prefix string) *Axis {
	return a.Affixes(prefix, "")
}

// LabelPost suffixes each of the receiver's tick labels, as with units.
func (a *Axis) LabelPost(suffix string) *Axis {
	return a.Affixes("", suffix)
}

// Affixes wraps each of the receiver's tick labels in a prefix and suffix.
func (a *Axis) Affixes(prefix, suffix string) *Axis {
	return a.assign("Affixes", tickFormatterKey, label.Formatter(label.Affixed(prefix, suffix)))
}
