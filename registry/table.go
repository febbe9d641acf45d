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

package registry

import (
	"reflect"

	"dirpx.dev/xport/apis"
)

// table is the ordered attribute table of one type. While a type is still
// being declared its table is private to the registry; Lookup publishes a
// frozen copy that is never mutated again.
type table struct {
	typ    reflect.Type
	specs  []apis.Spec
	index  map[string]int
	frozen bool
}

// Ensure table implements apis.Table.
var _ apis.Table = (*table)(nil)

func newTable(t reflect.Type) *table {
	return &table{typ: t, index: make(map[string]int)}
}

// merge applies specs in order: the first occurrence of a name fixes its
// position, later occurrences overwrite only the transform.
func (t *table) merge(specs []apis.Spec) {
	for _, s := range specs {
		if i, ok := t.index[s.Name]; ok {
			t.specs[i].Transform = s.Transform
			continue
		}
		t.index[s.Name] = len(t.specs)
		t.specs = append(t.specs, s)
	}
}

// clone returns a deep copy of t's ordering and index. The copy is open.
func (t *table) clone() *table {
	c := &table{
		typ:   t.typ,
		specs: make([]apis.Spec, len(t.specs)),
		index: make(map[string]int, len(t.index)),
	}
	copy(c.specs, t.specs)
	for k, v := range t.index {
		c.index[k] = v
	}
	return c
}

// Type returns the normalized type the table belongs to.
func (t *table) Type() reflect.Type {
	return t.typ
}

// Specs returns a copy of the specs in export order.
func (t *table) Specs() []apis.Spec {
	out := make([]apis.Spec, len(t.specs))
	copy(out, t.specs)
	return out
}

// Names returns the attribute names in export order.
func (t *table) Names() []string {
	out := make([]string, len(t.specs))
	for i, s := range t.specs {
		out[i] = s.Name
	}
	return out
}

// Lookup returns the spec declared under name.
func (t *table) Lookup(name string) (apis.Spec, bool) {
	i, ok := t.index[name]
	if !ok {
		return apis.Spec{}, false
	}
	return t.specs[i], true
}

// Len returns the number of specs.
func (t *table) Len() int {
	return len(t.specs)
}

// Frozen reports whether the table was published by a lookup.
func (t *table) Frozen() bool {
	return t.frozen
}
