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

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotExportable is matched by every *ConfigurationError.
	ErrNotExportable = errors.New("xport: type declares no exportable attributes")
	// ErrNoAccessor is matched by every *AttributeError.
	ErrNoAccessor = errors.New("xport: no accessor for declared attribute")
)

// ConfigurationError is returned when a type without a declared attribute
// table is exported or looked up.
type ConfigurationError struct {
	Type reflect.Type
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("xport: %v declares no exportable attributes", e.Type)
}

// Unwrap returns ErrNotExportable.
func (e *ConfigurationError) Unwrap() error {
	return ErrNotExportable
}

// AttributeError is returned when a plain declared attribute has no
// matching accessor on the instance.
type AttributeError struct {
	Type reflect.Type
	Name string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("xport: %v has no accessor for attribute %q", e.Type, e.Name)
}

// Unwrap returns ErrNoAccessor.
func (e *AttributeError) Unwrap() error {
	return ErrNoAccessor
}
