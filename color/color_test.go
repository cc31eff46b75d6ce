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

package color

import (
	"testing"

	configtree "github.com/ilhamster/flotviz/config_tree"
	testutil "github.com/ilhamster/flotviz/test_util"
)

func TestGradients(t *testing.T) {
	for _, test := range []struct {
		description string
		got         *configtree.Node
		want        string
	}{{
		description: "color gradient",
		got:         Gradient("#FFF", "#AAA"),
		want:        `{"colors":["#FFF","#AAA"]}`,
	}, {
		description: "opacity gradient",
		got:         OpacityGradient(0.8, 0.1),
		want:        `{"colors":[{"opacity":0.8},{"opacity":0.1}]}`,
	}, {
		description: "brightness gradient",
		got:         BrightnessGradient(1, 0.6),
		want:        `{"colors":[{"brightness":1},{"brightness":0.6}]}`,
	}} {
		t.Run(test.description, func(t *testing.T) {
			testutil.CompareJSON(t, test.got, test.want)
		})
	}
}

func TestPalette(t *testing.T) {
	for _, test := range []struct {
		description string
		palettes    []*Palette
		want        string
	}{{
		description: "single palette",
		palettes:    []*Palette{NewPalette("grey")},
		want:        `{"colors":["grey"]}`,
	}, {
		description: "redefinition overwrites previous",
		palettes: []*Palette{
			NewPalette("blue", "purple"),
			NewPalette("purple", "blue"),
		},
		want: `{"colors":["purple","blue"]}`,
	}} {
		t.Run(test.description, func(t *testing.T) {
			opts := configtree.Object()
			for _, p := range test.palettes {
				if err := opts.With(p.Define()); err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
			}
			testutil.CompareJSON(t, opts, test.want)
		})
	}
}
