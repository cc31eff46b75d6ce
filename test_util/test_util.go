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

// Package testutil provides types and methods facilitating testing
// configuration tree construction.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	configtree "github.com/ilhamster/flotviz/config_tree"
	"github.com/ilhamster/flotviz/errors"
)

// UpdateComparator facilitates testing of Updates, ensuring that a 'got' set
// of Updates-under-test yields the same tree as a provided 'want' set of
// Updates.
type UpdateComparator struct {
	got  []configtree.Update
	want []configtree.Update
}

// NewUpdateComparator returns a new, empty UpdateComparator.
func NewUpdateComparator() *UpdateComparator {
	return &UpdateComparator{}
}

// WithTestUpdates specifies the receiver's set of Updates-under-test.
func (uc *UpdateComparator) WithTestUpdates(got ...configtree.Update) *UpdateComparator {
	uc.got = got
	return uc
}

// WithWantUpdates specifies a set of Updates that should yield the same
// result as the receiver's 'WithTestUpdates'.
func (uc *UpdateComparator) WithWantUpdates(want ...configtree.Update) *UpdateComparator {
	uc.want = want
	return uc
}

// Compare the receiver's 'got' and 'want' Updates, each applied to a fresh
// object, returning a difference message (empty if no difference) and a
// boolean indicating whether the two are different (true) or not (false).
// Key order must match.
func (uc *UpdateComparator) Compare(t *testing.T) (string, bool) {
	t.Helper()
	got, want := configtree.Object(), configtree.Object()
	if err := got.With(uc.got...); err != nil {
		t.Fatalf("applying test updates: %s", err)
	}
	if err := want.With(uc.want...); err != nil {
		t.Fatalf("applying wanted updates: %s", err)
	}
	if diff := cmp.Diff(want.PrettyPrint(), got.PrettyPrint()); diff != "" {
		return fmt.Sprintf("Got tree %s, diff (-want +got):\n%s", got.PrettyPrint(), diff), true
	}
	return "", false
}

// CompareJSON compares the provided tree with the JSON document wantJSON,
// raising an error on the provided testing.T if they differ.  Key order must
// match; whitespace in wantJSON is ignored.
func CompareJSON(t *testing.T, got *configtree.Node, wantJSON string) {
	t.Helper()
	want, err := configtree.Parse([]byte(wantJSON))
	if err != nil {
		t.Fatalf("malformed wanted JSON %q: %s", wantJSON, err)
	}
	if diff := cmp.Diff(want.PrettyPrint(), got.PrettyPrint()); diff != "" {
		t.Errorf("Got tree %s, diff (-want +got):\n%s", got.PrettyPrint(), diff)
	}
}

// ExpectPanic runs fn, raising an error on the provided testing.T unless fn
// panics with an error carrying the specified code.  It returns the
// recovered error.
func ExpectPanic(t *testing.T, code errors.Code, fn func()) (err error) {
	t.Helper()
	defer func() {
		t.Helper()
		err = errors.Recovered(recover())
		if err == nil {
			t.Errorf("expected a %s panic, got none", code)
			return
		}
		if !errors.Is(err, code) {
			t.Errorf("expected a %s panic, got %v", code, err)
		}
	}()
	fn()
	return nil
}
