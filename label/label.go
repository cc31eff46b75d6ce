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

// Package label builds the JavaScript functions flot uses to transform axes
// and format tick labels.
//
// Such functions are opaque to this module: they are caller-supplied text in
// JavaScript syntax, emitted into the page unmodified.  A caller may supply a
// full function expression, which passes through as is, or a bare expression
// over the function's parameters, which is wrapped into a function:
//
//	label.Function("Math.log(v+0.0001)", "v")
//	// function (v) { return Math.log(v+0.0001); }
//	label.Function("function (v) { return -v; }", "v")
//	// function (v) { return -v; }
package label

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Parameter lists of the functions flot calls.
var (
	TransformParams = []string{"v"}
	FormatterParams = []string{"v", "axis"}
)

// Function returns expr as a JavaScript function expression taking params.
// Expressions that already are functions are returned unchanged.
func Function(expr string, params ...string) string {
	trimmed := strings.TrimSpace(expr)
	if IsFunction(trimmed) {
		return trimmed
	}
	trimmed = strings.TrimSuffix(trimmed, ";")
	return "function (" + strings.Join(params, ", ") + ") { return " + trimmed + "; }"
}

var (
	functionRE = regexp.MustCompile(`^function(\s+[A-Za-z_$][\w$]*)?\s*\(`)
	arrowRE    = regexp.MustCompile(`^(\([^)]*\)|[A-Za-z_$][\w$]*)\s*=>`)
)

// IsFunction returns true if expr is already a function expression.
func IsFunction(expr string) bool {
	expr = strings.TrimSpace(expr)
	return functionRE.MatchString(expr) || arrowRE.MatchString(expr)
}

// Transform returns expr as an axis transform function over v.
func Transform(expr string) string {
	return Function(expr, TransformParams...)
}

// Formatter returns expr as a tick formatter function over v and axis.
func Formatter(expr string) string {
	return Function(expr, FormatterParams...)
}

// Affixed returns a tick formatter expression printing the tick value with
// the axis' decimals, between the literal prefix and suffix.
func Affixed(prefix, suffix string) string {
	parts := []string{"v.toFixed(axis.tickDecimals)"}
	if prefix != "" {
		parts = append([]string{quote(prefix)}, parts...)
	}
	if suffix != "" {
		parts = append(parts, quote(suffix))
	}
	return strings.Join(parts, " + ")
}

func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
