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

// Config carries read-only knobs that influence declaration and export.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// TagName is the struct tag consulted when matching an attribute name
	// to a struct field (e.g. `export:"custom_attr"`). A tag value of "-"
	// hides the field from name-based matching.
	TagName string

	// FoldNames makes accessor matching case-insensitive and ignores '_' and
	// '-' separators, so "mac_address" matches MacAddress and "id" matches ID.
	// If false, the attribute name must camelize exactly to the Go identifier.
	FoldNames bool

	// SortMapKeys orders the entries of plain Go maps by key when they are
	// normalized into an export result. Go map iteration order is random.
	SortMapKeys bool

	// RecurseDeclared exports nested values whose type declared exportable
	// attributes even when the value does not implement Exporter itself.
	RecurseDeclared bool

	// MaxUnwrap limits pointer unwrapping when normalizing a type to the key
	// of its attribute table. Acts as a safety guard against pathological nesting.
	MaxUnwrap int
}
