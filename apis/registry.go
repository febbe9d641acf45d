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

import "reflect"

// Registry holds the attribute table of every type that declared an
// exportable surface. Declarations accumulate until the first Lookup of a
// type, which freezes that type's table for the rest of the process.
type Registry interface {
	// Declare merges specs into the table of t (nearest named type).
	// The first occurrence of a name fixes its position; later occurrences
	// replace only its transform.
	Declare(t reflect.Type, specs ...Spec) error
	// Lookup returns the frozen table of t, or a *ConfigurationError.
	Lookup(t reflect.Type) (Table, error)
	// Declared reports whether t declared an exportable surface, without freezing it.
	Declared(t reflect.Type) bool
	// Entries returns a snapshot for diagnostics/docs, sorted by type name.
	Entries() []Table
	// Count returns the number of declared types.
	Count() int
	// Reset clears all declarations.
	Reset()
}

// Table is the ordered, deduplicated attribute table of one type.
// Implementations returned by Registry.Lookup are immutable.
type Table interface {
	// Type is the normalized type the table belongs to.
	Type() reflect.Type
	// Specs returns the specs in export order. The slice is a copy.
	Specs() []Spec
	// Names returns the attribute names in export order.
	Names() []string
	// Lookup returns the spec declared under name.
	Lookup(name string) (Spec, bool)
	// Len returns the number of specs.
	Len() int
	// Frozen reports whether the table was published by a lookup and no
	// longer accepts declarations.
	Frozen() bool
}

// TransformFunc computes an attribute value from the exported instance.
type TransformFunc func(instance any) (any, error)

// Spec is a single declared attribute. A nil Transform means the value is
// read from the instance's accessor of the same name.
type Spec struct {
	// Name is the key of the attribute in the export result.
	Name string
	// Transform optionally replaces direct accessor reads.
	Transform TransformFunc
}

// HasTransform reports whether s is resolved through its transform.
func (s Spec) HasTransform() bool {
	return s.Transform != nil
}
