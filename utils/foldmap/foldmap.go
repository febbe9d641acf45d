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

// Package foldmap provides an insertion-ordered map with case-insensitive
// key lookup. Keys are compared by Unicode case folding; the spelling used
// on first insertion is kept.
package foldmap

import (
	"maps"
	"slices"

	"golang.org/x/text/cases"
)

// Map is an insertion-ordered, case-insensitive string-keyed map.
// It is not safe for concurrent mutation.
type Map struct {
	keys  []string       // original spelling, in order
	index map[string]int // folded key -> position in keys
	vals  map[string]any // folded key -> value
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		index: make(map[string]int),
		vals:  make(map[string]any),
	}
}

// FromMap builds a Map from m. Keys listed in order come first, in that
// order; the remaining keys of m follow in sorted order.
func FromMap(m map[string]any, order ...string) *Map {
	out := New()
	listed := make(map[string]struct{}, len(order))
	for _, k := range order {
		if v, ok := m[k]; ok {
			out.Set(k, v)
			listed[k] = struct{}{}
		}
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if _, ok := listed[k]; !ok {
			out.Set(k, m[k])
		}
	}
	return out
}

// fold returns the lookup form of key. A Caser is stateful, so one is
// created per call.
func fold(key string) string {
	return cases.Fold().String(key)
}

// Set stores v under key. If a key with the same folding exists, its value
// is replaced and its original spelling and position are kept.
func (m *Map) Set(key string, v any) {
	f := fold(key)
	if _, ok := m.index[f]; !ok {
		m.index[f] = len(m.keys)
		m.keys = append(m.keys, key)
	}
	m.vals[f] = v
}

// Get returns the value stored under any spelling of key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.vals[fold(key)]
	return v, ok
}

// Delete removes any spelling of key.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	f := fold(key)
	i, ok := m.index[f]
	if !ok {
		return false
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	delete(m.index, f)
	delete(m.vals, f)
	for j := i; j < len(m.keys); j++ {
		m.index[fold(m.keys[j])] = j
	}
	return true
}

// Keys returns the keys in insertion order, as first spelled.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, value any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.vals[fold(k)]) {
			return
		}
	}
}
