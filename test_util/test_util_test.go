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

package testutil

import (
	"testing"

	configtree "github.com/ilhamster/flotviz/config_tree"
	"github.com/ilhamster/flotviz/errors"
)

func TestUpdateComparator(t *testing.T) {
	for _, test := range []struct {
		description string
		got, want   []configtree.Update
		wantDiff    bool
	}{{
		description: "equivalent chained and flat updates",
		got: []configtree.Update{
			configtree.Chain(
				configtree.Property(configtree.Keys("grid", "color"), configtree.String("red")),
				configtree.Property(configtree.Keys("legend", "show"), configtree.Bool(false)),
			),
		},
		want: []configtree.Update{
			configtree.Property(configtree.Keys("grid", "color"), configtree.String("red")),
			configtree.Property(configtree.Keys("legend", "show"), configtree.Bool(false)),
		},
	}, {
		description: "key order matters",
		got: []configtree.Update{
			configtree.Property(configtree.Keys("a"), configtree.Int(1)),
			configtree.Property(configtree.Keys("b"), configtree.Int(2)),
		},
		want: []configtree.Update{
			configtree.Property(configtree.Keys("b"), configtree.Int(2)),
			configtree.Property(configtree.Keys("a"), configtree.Int(1)),
		},
		wantDiff: true,
	}} {
		t.Run(test.description, func(t *testing.T) {
			msg, failed := NewUpdateComparator().
				WithTestUpdates(test.got...).
				WithWantUpdates(test.want...).
				Compare(t)
			if failed != test.wantDiff {
				t.Errorf("Compare() reported difference %t, want %t: %s", failed, test.wantDiff, msg)
			}
		})
	}
}

func TestCompareJSON(t *testing.T) {
	root := configtree.Object()
	root.Set(configtree.Keys("data"), configtree.Array(configtree.Numbers(0, 1)))
	CompareJSON(t, root, `{ "data": [ [0, 1] ] }`)
}

func TestExpectPanic(t *testing.T) {
	err := ExpectPanic(t, errors.ErrCodeNoMarking, func() {
		panic(errors.New(errors.ErrCodeNoMarking, "no marking"))
	})
	if !errors.Is(err, errors.ErrCodeNoMarking) {
		t.Errorf("ExpectPanic returned %v", err)
	}
}
