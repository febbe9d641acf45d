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
	"dirpx.dev/xport/apis"
)

// NewTransformStrategy creates an apis.Strategy that invokes spec transforms.
func NewTransformStrategy() apis.Strategy {
	return transformStrategy{}
}

// transformStrategy handles every spec carrying a transform and stops the
// chain, so an accessor of the same name is never read.
type transformStrategy struct{}

// Ensure transformStrategy implements apis.Strategy.
var _ apis.Strategy = transformStrategy{}

// TryResolve calls spec.Transform(instance). Errors are returned unmodified.
func (transformStrategy) TryResolve(instance any, spec apis.Spec, _ apis.Config) (any, bool, error) {
	if spec.Transform == nil {
		return nil, false, nil
	}
	v, err := spec.Transform(instance)
	return v, true, err
}
