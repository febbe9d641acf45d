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

package engine

import (
	"reflect"

	"dirpx.dev/xport/apis"
	uref "dirpx.dev/xport/utils/reflect"
)

// IsBlank reports whether v is null, an empty string, or a container with
// no entries. Zero numbers and false are not blank.
func IsBlank(v any) bool {
	if uref.IsNull(v) {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case apis.Container:
		return x.Len() == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}
