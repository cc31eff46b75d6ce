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

// Package style supports the CSS styling of plot placeholders.
//
// A Style instance comprises an ordered mapping from CSS property name to
// value, both represented as strings.  A Style is attached to a placeholder
// element as a safehtml.Style via the `Define()` method.
package style

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
)

// Properties and values are restricted to characters that cannot leave a
// declaration.
var (
	propertyRE = regexp.MustCompile(`^-?[a-z][a-z0-9-]*$`)
	valueRE    = regexp.MustCompile(`^[-a-zA-Z0-9.#%, ()]*$`)
)

// Style defines a set of CSS declarations.
type Style struct {
	props []string
	vals  map[string]string
}

// New returns a new, empty Style.
func New() *Style {
	return &Style{
		vals: map[string]string{},
	}
}

// Size returns a new Style with the specified pixel width and height.
func Size(widthPx, heightPx int) *Style {
	return New().With("width", Px(widthPx)).With("height", Px(heightPx))
}

// Px formats the provided value as a pixel specifier.
func Px(valPx int) string {
	return fmt.Sprintf("%dpx", valPx)
}

// With sets the specified property in the receiver.  Properties or values
// containing characters that could escape the declaration are dropped.
func (s *Style) With(property, value string) *Style {
	if !propertyRE.MatchString(property) || !valueRE.MatchString(value) {
		return s
	}
	if _, ok := s.vals[property]; !ok {
		s.props = append(s.props, property)
	}
	s.vals[property] = value
	return s
}

// String returns the receiver as CSS declarations, in the order the
// properties were first set.
func (s *Style) String() string {
	decls := make([]string, len(s.props))
	for idx, prop := range s.props {
		decls[idx] = prop + ":" + s.vals[prop]
	}
	return strings.Join(decls, ";")
}

// Define returns the receiver as a safehtml.Style, suitable for a style
// attribute.
func (s *Style) Define() safehtml.Style {
	return uncheckedconversions.StyleFromStringKnownToSatisfyTypeContract(s.String())
}
