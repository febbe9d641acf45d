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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/xport/apis"
	"dirpx.dev/xport/engine"
	"dirpx.dev/xport/registry"
	"dirpx.dev/xport/resolver"
	"dirpx.dev/xport/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration.
// If a previous registry is provided, its declarations are replayed into the new one.
// Tables frozen in prev are frozen again in the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, logger *zap.Logger) apis.Registry {
	nreg := registry.New(cfg, logger)
	if prev != nil {
		for _, tbl := range prev.Entries() {
			if err := nreg.Declare(tbl.Type(), tbl.Specs()...); err != nil {
				continue
			}
			if tbl.Frozen() {
				_, _ = nreg.Lookup(tbl.Type())
			}
		}
	}
	return nreg
}

// BuildEngine builds and returns a new apis.Engine resolving attributes with
// the default strategy chain: transform, getter method, struct field, Attributes().
func (b *builder) BuildEngine(cfg apis.Config, reg apis.Registry, logger *zap.Logger) apis.Engine {
	res := resolver.New(
		strategy.NewTransformStrategy(),
		strategy.NewMethodStrategy(),
		strategy.NewFieldStrategy(),
		strategy.NewAttributesStrategy(),
	)
	return engine.New(cfg, reg, res, logger)
}
