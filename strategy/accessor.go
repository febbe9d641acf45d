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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/xport/apis"
	uref "dirpx.dev/xport/utils/reflect"
)

// NewMethodStrategy creates an apis.Strategy that calls a zero-argument
// getter method named after the attribute.
func NewMethodStrategy() apis.Strategy {
	return methodStrategy{}
}

// NewFieldStrategy creates an apis.Strategy that reads an exported struct
// field named (or tagged) after the attribute.
func NewFieldStrategy() apis.Strategy {
	return fieldStrategy{}
}

// methodStrategy resolves "mac" to instance.Mac(). Accepted signatures are
// func() V and func() (V, error).
type methodStrategy struct{}

// fieldStrategy resolves "mac" to instance.Mac, following pointers and
// promoted fields of embedded structs.
type fieldStrategy struct{}

// Ensure both implement apis.Strategy.
var (
	_ apis.Strategy = methodStrategy{}
	_ apis.Strategy = fieldStrategy{}
)

// planKey ensures memoization respects all config knobs that affect matching.
type planKey struct {
	t    reflect.Type
	name string
	tag  string
	fold bool
}

var (
	// methodPlans caches method indexes by planKey; -1 means no match.
	methodPlans sync.Map // key: planKey, val: int
	// fieldPlans caches field index paths by planKey; nil means no match.
	fieldPlans sync.Map // key: planKey, val: []int

	errorType = reflect.TypeFor[error]()
)

// TryResolve calls the matching getter. Its error, if any, is returned as is.
func (methodStrategy) TryResolve(instance any, spec apis.Spec, cfg apis.Config) (any, bool, error) {
	if instance == nil || spec.HasTransform() {
		return nil, false, nil
	}
	rv := reflect.ValueOf(instance)
	idx := methodIndex(rv.Type(), spec.Name, cfg)
	if idx < 0 {
		return nil, false, nil
	}

	out := rv.Method(idx).Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, true, out[1].Interface().(error)
	}
	return out[0].Interface(), true, nil
}

// TryResolve reads the matching field. A field reached through a nil
// embedded pointer resolves to nil.
func (fieldStrategy) TryResolve(instance any, spec apis.Spec, cfg apis.Config) (any, bool, error) {
	if instance == nil || spec.HasTransform() {
		return nil, false, nil
	}
	rv, ok := uref.Indirect(reflect.ValueOf(instance))
	if !ok || rv.Kind() != reflect.Struct {
		return nil, false, nil
	}
	path := fieldIndex(rv.Type(), spec.Name, cfg)
	if path == nil {
		return nil, false, nil
	}

	fv, err := rv.FieldByIndexErr(path)
	if err != nil {
		return nil, true, nil
	}
	if !fv.CanInterface() {
		return nil, false, nil
	}
	return fv.Interface(), true, nil
}

// methodIndex returns the index of the getter of t matching name, or -1.
func methodIndex(t reflect.Type, name string, cfg apis.Config) int {
	key := planKey{t: t, name: name, fold: cfg.FoldNames}
	if v, ok := methodPlans.Load(key); ok {
		return v.(int)
	}

	idx := -1
	want, loose := camelize(name), foldName(name)
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !isGetter(m.Type) {
			continue
		}
		if m.Name == want {
			idx = i
			break
		}
		if cfg.FoldNames && idx < 0 && foldName(m.Name) == loose {
			idx = i
		}
	}

	methodPlans.Store(key, idx)
	return idx
}

// isGetter reports whether mt (a method type with receiver) has one of the
// accepted getter signatures.
func isGetter(mt reflect.Type) bool {
	if mt.NumIn() != 1 {
		return false
	}
	switch mt.NumOut() {
	case 1:
		return true
	case 2:
		return mt.Out(1) == errorType
	default:
		return false
	}
}

// fieldIndex returns the index path of the field of struct type t matching
// name, or nil. Precedence: tag, exact camelized name, folded name.
func fieldIndex(t reflect.Type, name string, cfg apis.Config) []int {
	key := planKey{t: t, name: name, tag: cfg.TagName, fold: cfg.FoldNames}
	if v, ok := fieldPlans.Load(key); ok {
		return v.([]int)
	}

	var byTag, byName, byFold []int
	want, loose := camelize(name), foldName(name)
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if cfg.TagName != "" {
			if tag, ok := f.Tag.Lookup(cfg.TagName); ok {
				tn := tagName(tag)
				if tn == "-" {
					continue
				}
				if tn == name && byTag == nil {
					byTag = f.Index
				}
			}
		}
		if f.Name == want && byName == nil {
			byName = f.Index
		}
		if cfg.FoldNames && byFold == nil && foldName(f.Name) == loose {
			byFold = f.Index
		}
	}

	path := byTag
	if path == nil {
		path = byName
	}
	if path == nil {
		path = byFold
	}
	fieldPlans.Store(key, path)
	return path
}
