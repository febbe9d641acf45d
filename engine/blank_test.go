/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/xport/engine"
	"dirpx.dev/xport/result"
	"dirpx.dev/xport/utils/foldmap"
)

type title string

func TestIsBlank(t *testing.T) {
	var nilPtr *sampleSubnet
	var nilMap map[string]any

	full := result.New(1)
	full.Set("k", "v")
	folded := foldmap.New()
	folded.Set("K", "v")

	cases := []struct {
		label string
		v     any
		want  bool
	}{
		{"nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"empty string", "", true},
		{"empty named string", title(""), true},
		{"empty result", result.New(0), true},
		{"empty foldmap", foldmap.New(), true},
		{"empty map", map[string]any{}, true},
		{"nil map", nilMap, true},
		{"zero", 0, false},
		{"false", false, false},
		{"zero float", 0.0, false},
		{"empty slice", []string{}, false},
		{"string", "x", false},
		{"named string", title("x"), false},
		{"result", full, false},
		{"foldmap", folded, false},
		{"map", map[int]int{1: 1}, false},
		{"struct", sampleSubnet{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.IsBlank(tc.v))
		})
	}
}
