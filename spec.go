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

package xport

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dirpx.dev/xport/apis"
	uref "dirpx.dev/xport/utils/reflect"
)

// ErrInstanceType is returned by typed transforms when the exported
// instance cannot be converted to the transform's input type.
var ErrInstanceType = errors.New("xport: transform input type mismatch")

// Attr declares an attribute read directly from the instance.
func Attr(name string) apis.Spec {
	return apis.Spec{Name: name}
}

// Attrs declares several attributes read directly from the instance.
func Attrs(names ...string) []apis.Spec {
	out := make([]apis.Spec, len(names))
	for i, n := range names {
		out[i] = Attr(n)
	}
	return out
}

// Func declares an attribute computed by fn. The instance is converted to T;
// T and *T are interchangeable.
func Func[T any](name string, fn func(T) any) apis.Spec {
	return FuncErr(name, func(v T) (any, error) { return fn(v), nil })
}

// FuncErr is like Func for transforms that can fail. The error is returned
// unmodified by the export.
func FuncErr[T any](name string, fn func(T) (any, error)) apis.Spec {
	return apis.Spec{Name: name, Transform: func(instance any) (any, error) {
		v, ok := uref.As[T](instance)
		if !ok {
			return nil, fmt.Errorf("%w: %q wants %v, got %T", ErrInstanceType, name, reflect.TypeFor[T](), instance)
		}
		return fn(v)
	}}
}

// Const declares an attribute with a fixed value.
func Const(name string, v any) apis.Spec {
	return apis.Spec{Name: name, Transform: func(any) (any, error) { return v, nil }}
}

// Upper declares an attribute whose value is fn's result in upper case.
// An empty result exports as nil, like an unset value.
func Upper[T any](name string, fn func(T) string) apis.Spec {
	return Func(name, func(v T) any { return caseOrNil(cases.Upper(language.Und), fn(v)) })
}

// Lower declares an attribute whose value is fn's result in lower case.
// An empty result exports as nil, like an unset value.
func Lower[T any](name string, fn func(T) string) apis.Spec {
	return Func(name, func(v T) any { return caseOrNil(cases.Lower(language.Und), fn(v)) })
}

func caseOrNil(c cases.Caser, s string) any {
	if s == "" {
		return nil
	}
	return c.String(s)
}
