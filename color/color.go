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

// Package color supports coloring flot plots and series.
//
// Flot accepts a color wherever a plain HTML color string is valid: a color
// name or an RGB, RGBA, HSL, HSLA, or hex specifier.  Backgrounds and fills
// may instead be given as gradients, which this package builds:
//
//	plot.Grid().BackgroundGradient("#FFF", "#AAA")
//	plot.Lines("area", data).FillGradient(color.OpacityGradient(0.8, 0.1))
//
// A Palette replaces the sequence of colors flot assigns to series that do
// not specify their own:
//
//	warm := color.NewPalette("#edc240", "#cb4b4b", "#afd8f8")
//	plot.Palette(warm)
package color

import configtree "github.com/ilhamster/flotviz/config_tree"

const (
	colorsKey     = "colors"
	opacityKey    = "opacity"
	brightnessKey = "brightness"
)

// Gradient returns a gradient running through the provided colors, from top
// to bottom.
func Gradient(colors ...string) *configtree.Node {
	ret := configtree.Object()
	mustSet(ret, configtree.Keys(colorsKey), configtree.Strings(colors...))
	return ret
}

// OpacityGradient returns a gradient of the base color through the provided
// opacities, from top to bottom.
func OpacityGradient(opacities ...float64) *configtree.Node {
	return stopsGradient(opacityKey, opacities)
}

// BrightnessGradient returns a gradient of the base color through the
// provided brightness factors, from top to bottom.
func BrightnessGradient(brightnesses ...float64) *configtree.Node {
	return stopsGradient(brightnessKey, brightnesses)
}

func stopsGradient(key string, values []float64) *configtree.Node {
	stops := configtree.Array()
	for _, v := range values {
		stop := configtree.Object()
		mustSet(stop, configtree.Keys(key), configtree.Number(v))
		if err := stops.Append(nil, stop); err != nil {
			panic(err)
		}
	}
	ret := configtree.Object()
	mustSet(ret, configtree.Keys(colorsKey), stops)
	return ret
}

func mustSet(tree *configtree.Node, path configtree.Path, v *configtree.Node) {
	if err := tree.Set(path, v); err != nil {
		panic(err)
	}
}

// Palette is the ordered list of colors assigned to series without an
// explicit color.
type Palette struct {
	colors []string
}

// NewPalette returns a new Palette of the provided colors.
func NewPalette(colors ...string) *Palette {
	return &Palette{
		colors: colors,
	}
}

// Colors returns the receiver's colors.
func (p *Palette) Colors() []string {
	return append([]string(nil), p.colors...)
}

// Define returns an Update defining the receiver into a plot's options.
func (p *Palette) Define() configtree.Update {
	return configtree.Property(configtree.Keys(colorsKey), configtree.Strings(p.colors...))
}
