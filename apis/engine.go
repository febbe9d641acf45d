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

package apis

import "dirpx.dev/xport/result"

// Exporter is the export capability. Nested values implementing it are
// replaced by their own export, with the same includeBlank flag. When the
// nested type is declared in the exporting engine's registry and
// RecurseDeclared is set, that engine exports it directly instead.
type Exporter interface {
	Export(includeBlank bool) (*result.Map, error)
}

// Engine computes the export of an instance from its type's attribute table.
type Engine interface {
	// Export walks the table of instance's type in order and returns a fresh result.
	Export(instance any, includeBlank bool) (*result.Map, error)
}

// Container is a key/value structure that is copied as an opaque leaf into
// export results. result.Map and foldmap.Map implement it.
type Container interface {
	// Len returns the number of entries.
	Len() int
	// Range calls fn for each entry in order until fn returns false.
	Range(fn func(key string, value any) bool)
}
