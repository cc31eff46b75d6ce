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

package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestErrorCodes(t *testing.T) {
	for _, test := range []struct {
		description string
		err         error
		wantCode    Code
		wantMessage string
	}{{
		description: "plain",
		err:         New(ErrCodeKindMismatch, "radius() only applies to %s", "points"),
		wantCode:    ErrCodeKindMismatch,
		wantMessage: "KIND_MISMATCH: radius() only applies to points",
	}, {
		description: "wrapped cause",
		err:         Wrap(ErrCodeIO, fs.ErrPermission, "writing %s", "out.html"),
		wantCode:    ErrCodeIO,
		wantMessage: "IO_ERROR: writing out.html: permission denied",
	}, {
		description: "wrapped by fmt",
		err:         fmt.Errorf("render: %w", New(ErrCodeSealed, "page already sealed")),
		wantCode:    ErrCodeSealed,
		wantMessage: "render: SEALED: page already sealed",
	}, {
		description: "foreign error",
		err:         fs.ErrNotExist,
		wantCode:    "",
		wantMessage: "file does not exist",
	}} {
		t.Run(test.description, func(t *testing.T) {
			if diff := cmp.Diff(test.wantCode, GetCode(test.err)); diff != "" {
				t.Errorf("Got code %s, diff (-want +got):\n%s", GetCode(test.err), diff)
			}
			if test.wantCode != "" && !Is(test.err, test.wantCode) {
				t.Errorf("Is(%v, %s) = false, want true", test.err, test.wantCode)
			}
			if diff := cmp.Diff(test.wantMessage, test.err.Error()); diff != "" {
				t.Errorf("Got message %q, diff (-want +got):\n%s", test.err.Error(), diff)
			}
		})
	}
}

func TestRecovered(t *testing.T) {
	if err := Recovered(nil); err != nil {
		t.Errorf("Recovered(nil) = %v, want nil", err)
	}
	sealed := New(ErrCodeSealed, "sealed")
	if err := Recovered(sealed); err != sealed {
		t.Errorf("Recovered(err) = %v, want %v", err, sealed)
	}
	if err := Recovered("boom"); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("Recovered(\"boom\") = %v, want an %s error", err, ErrCodeInvalidInput)
	}
}
