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

package reflect

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrReflectKeyCollision indicates that two distinct keys of a Go map
// stringify to the same key, e.g. 1 and "1" in a map[any]any.
var ErrReflectKeyCollision = errors.New("reflect: map keys collide once stringified")

// IsNull reports whether v is nil or a nil pointer, interface, func or chan.
// Nil maps and slices are not null: they keep their container shape.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Indirect dereferences pointers until a non-pointer value is reached.
// It returns false if a nil pointer is met on the way.
func Indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

// Entry is a single key/value pair extracted from a Go map.
type Entry struct {
	Key   string
	Value any
}

// MapEntries returns the entries of v if it is a Go map (nil maps included).
// Keys are stringified: string kinds are used as is, other kinds through fmt.
// Two keys stringifying alike fail with ErrReflectKeyCollision.
// If sorted is true, entries are ordered by key.
func MapEntries(v any, sorted bool) ([]Entry, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false, nil
	}

	out := make([]Entry, 0, rv.Len())
	seen := make(map[string]struct{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := keyString(iter.Key())
		if _, dup := seen[k]; dup {
			return nil, true, fmt.Errorf("%w: %q in %T", ErrReflectKeyCollision, k, v)
		}
		seen[k] = struct{}{}
		out = append(out, Entry{
			Key:   k,
			Value: iter.Value().Interface(),
		})
	}
	if sorted {
		slices.SortStableFunc(out, func(a, b Entry) int {
			return cmp.Compare(a.Key, b.Key)
		})
	}
	return out, true, nil
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return fmt.Sprint(nil)
		}
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// As converts v to T. Besides a plain type assertion it accepts a *T when
// T is not a pointer (the pointer is dereferenced) and a T when T is a
// pointer to it (a pointer to a copy is returned).
func As[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	if v == nil {
		return zero, false
	}

	target := reflect.TypeFor[T]()
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Type().Elem() == target:
		return rv.Elem().Interface().(T), true
	case target.Kind() == reflect.Pointer && target.Elem() == rv.Type():
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		return p.Interface().(T), true
	}
	return zero, false
}
