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

// NewAttributesStrategy creates an apis.Strategy that reads from apis.Attributer.
func NewAttributesStrategy() apis.Strategy {
	return attributesStrategy{}
}

// attributesStrategy is the reflection-free path: if instance implements
// apis.Attributer and the key is present, its value is used.
type attributesStrategy struct{}

// Ensure attributesStrategy implements apis.Strategy.
var _ apis.Strategy = attributesStrategy{}

// TryResolve looks spec.Name up in instance.Attributes().
func (attributesStrategy) TryResolve(instance any, spec apis.Spec, _ apis.Config) (any, bool, error) {
	if instance == nil || spec.HasTransform() {
		return nil, false, nil
	}
	a, ok := instance.(apis.Attributer)
	if !ok {
		return nil, false, nil
	}
	v, ok := a.Attributes()[spec.Name]
	return v, ok, nil
}
