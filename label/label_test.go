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

package label

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFunction(t *testing.T) {
	for _, test := range []struct {
		description string
		got         string
		want        string
	}{{
		description: "bare transform is wrapped",
		got:         Transform("Math.log(v+0.0001)"),
		want:        "function (v) { return Math.log(v+0.0001); }",
	}, {
		description: "trailing semicolon is not doubled",
		got:         Transform(" -v; "),
		want:        "function (v) { return -v; }",
	}, {
		description: "full function passes through",
		got:         Transform("function (v) { return Math.exp(v); }"),
		want:        "function (v) { return Math.exp(v); }",
	}, {
		description: "named function passes through",
		got:         Formatter("function fmt(v, axis) { return v + 'x'; }"),
		want:        "function fmt(v, axis) { return v + 'x'; }",
	}, {
		description: "arrow function passes through",
		got:         Formatter("(v, axis) => v.toFixed(1)"),
		want:        "(v, axis) => v.toFixed(1)",
	}, {
		description: "identifier starting with function is wrapped",
		got:         Formatter("functionValue"),
		want:        "function (v, axis) { return functionValue; }",
	}, {
		description: "suffix",
		got:         Formatter(Affixed("", "€")),
		want:        `function (v, axis) { return v.toFixed(axis.tickDecimals) + "€"; }`,
	}, {
		description: "prefix and suffix are quoted",
		got:         Affixed("$", `"`),
		want:        `"$" + v.toFixed(axis.tickDecimals) + "\""`,
	}} {
		t.Run(test.description, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.got); diff != "" {
				t.Errorf("Got %s, diff (-want +got):\n%s", test.got, diff)
			}
		})
	}
}

func TestIsFunction(t *testing.T) {
	for expr, want := range map[string]bool{
		"function (v) { return v; }":  true,
		"function(v) { return v; }":   true,
		"function f(v) { return v; }": true,
		"v => v * 2":                  true,
		"(v, axis) => v":              true,
		"functionValue(3)":            false,
		"Math.log(v)":                 false,
		"v * 2":                       false,
	} {
		if got := IsFunction(expr); got != want {
			t.Errorf("IsFunction(%q) = %t, want %t", expr, got, want)
		}
	}
}
