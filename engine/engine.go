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

// Package engine computes export results from declared attribute tables.
package engine

import (
	"errors"
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/xport/apis"
	"dirpx.dev/xport/result"
	uref "dirpx.dev/xport/utils/reflect"
)

// ErrNilInstance is returned when a nil instance is exported.
var ErrNilInstance = errors.New("xport(engine): nil instance")

// New constructs an apis.Engine over reg and res. A nil logger disables logging.
// The engine holds no per-call state and is safe for concurrent use.
func New(cfg apis.Config, reg apis.Registry, res apis.Resolver, logger *zap.Logger) apis.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &engine{
		cfg:    cfg,
		reg:    reg,
		res:    res,
		logger: logger.Named("engine"),
	}
}

type engine struct {
	cfg    apis.Config
	reg    apis.Registry
	res    apis.Resolver
	logger *zap.Logger
}

// Export walks the attribute table of instance's type and returns a fresh
// result in table order. Any failure aborts the whole export.
func (e *engine) Export(instance any, includeBlank bool) (*result.Map, error) {
	if uref.IsNull(instance) {
		return nil, ErrNilInstance
	}
	tbl, err := e.reg.Lookup(reflect.TypeOf(instance))
	if err != nil {
		return nil, err
	}

	specs := tbl.Specs()
	out := result.New(len(specs))
	for _, spec := range specs {
		raw, err := e.res.Resolve(instance, spec, e.cfg)
		if err != nil {
			return nil, err
		}
		v, err := e.value(raw, includeBlank)
		if err != nil {
			return nil, err
		}
		if !includeBlank && IsBlank(v) {
			if ce := e.logger.Check(zap.DebugLevel, "blank attribute omitted"); ce != nil {
				ce.Write(zap.Stringer("type", tbl.Type()), zap.String("attribute", spec.Name))
			}
			continue
		}
		out.Set(spec.Name, v)
	}
	return out, nil
}

// value recurses into exportable values and normalizes containers.
// Everything else is returned unchanged.
//
// A value whose type is declared in this engine's registry is exported by
// this engine, so its configuration holds at every depth. An Exporter
// declared elsewhere runs its own Export method.
func (e *engine) value(raw any, includeBlank bool) (any, error) {
	if uref.IsNull(raw) {
		return nil, nil
	}
	if e.cfg.RecurseDeclared && e.reg.Declared(reflect.TypeOf(raw)) {
		return e.Export(raw, includeBlank)
	}
	if x, ok := raw.(apis.Exporter); ok {
		m, err := x.Export(includeBlank)
		if err != nil || m == nil {
			return nil, err
		}
		return m, nil
	}
	if c, ok := raw.(apis.Container); ok {
		return copyContainer(c), nil
	}
	entries, ok, err := uref.MapEntries(raw, e.cfg.SortMapKeys)
	if err != nil {
		return nil, err
	}
	if ok {
		out := result.New(len(entries))
		for _, en := range entries {
			out.Set(en.Key, en.Value)
		}
		return out, nil
	}
	return raw, nil
}

// copyContainer makes a shallow, order-preserving copy of c. Values are
// neither recursed into nor filtered.
func copyContainer(c apis.Container) *result.Map {
	out := result.New(c.Len())
	c.Range(func(k string, v any) bool {
		out.Set(k, v)
		return true
	})
	return out
}
