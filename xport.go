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
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/xport/apis"
	"dirpx.dev/xport/builder"
	"dirpx.dev/xport/config"
	"dirpx.dev/xport/result"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig(), log: zap.NewNop()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, s.log)
	s.eng = b.BuildEngine(s.cfg, s.reg, s.log)
	s.bld = b
	st.Store(s)
}

var (
	// ErrNilRegistry is the panic value when a builder returns a nil registry.
	ErrNilRegistry = errors.New("xport: builder returned nil registry")
	// ErrNilEngine is the panic value when a builder returns a nil engine.
	ErrNilEngine = errors.New("xport: builder returned nil engine")
)

// Export returns the export of v with blank values included.
// This is a convenience wrapper around the global engine.
func Export(v any) (*result.Map, error) {
	return st.Load().eng.Export(v, true)
}

// ExportWith returns the export of v. If includeBlank is false, attributes
// resolving to nil, "" or an empty container are omitted at every depth.
// Types implementing apis.Exporter typically delegate to it:
//
//	func (h *Host) Export(includeBlank bool) (*result.Map, error) {
//		return xport.ExportWith(h, includeBlank)
//	}
func ExportWith(v any, includeBlank bool) (*result.Map, error) {
	return st.Load().eng.Export(v, includeBlank)
}

// Declare merges specs into the global attribute table of T.
// T and *T share one table. It is meant to be called from package init;
// once a type has been exported its table is frozen and Declare fails.
func Declare[T any](specs ...apis.Spec) error {
	return DeclareType(reflect.TypeFor[T](), specs...)
}

// MustDeclare is like Declare but panics on error.
func MustDeclare[T any](specs ...apis.Spec) {
	if err := Declare[T](specs...); err != nil {
		panic(err)
	}
}

// DeclareType merges specs into the global attribute table of t.
func DeclareType(t reflect.Type, specs ...apis.Spec) error {
	return st.Load().reg.Declare(t, specs...)
}

// Lookup returns the frozen global attribute table of T.
func Lookup[T any]() (apis.Table, error) {
	return LookupType(reflect.TypeFor[T]())
}

// LookupType returns the frozen global attribute table of t.
func LookupType(t reflect.Type) (apis.Table, error) {
	return st.Load().reg.Lookup(t)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged. A non-nil reg
// is pinned; a nil reg is rebuilt from the current one. The engine is always
// rebuilt. This is mainly used by tests to get a clean deterministic state.
func SetAll(cfg *apis.Config, logger *zap.Logger, reg apis.Registry, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nlog := old.log
	if logger != nil {
		nlog = logger
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nreg := reg
	npreg := reg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, nlog)
	}

	publish(&state{cfg: ncfg, log: nlog, reg: nreg, bld: nbld, preg: npreg})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// It rebuilds the engine and, unless pinned, the registry, replaying the
// existing declarations into it. Frozen tables stay frozen.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.cfg = cfg
	if !old.preg {
		next.reg = old.bld.BuildRegistry(cfg, old.reg, old.log)
	}
	publish(&next)
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return st.Load().log
}

// SetLogger sets the logger handed to the registry and engine.
// A nil logger is ignored.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.log = logger
	if !old.preg {
		next.reg = old.bld.BuildRegistry(old.cfg, old.reg, logger)
	}
	publish(&next)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets and pins the global registry. A nil registry is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.reg = reg
	next.preg = true
	publish(&next)
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets the next reconfiguration rebuild the registry again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.preg = false
	st.Store(&next)
}

// Engine returns the global engine.
func Engine() apis.Engine {
	return st.Load().eng
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds with it.
// A nil builder is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.bld = b
	if !old.preg {
		next.reg = b.BuildRegistry(old.cfg, old.reg, old.log)
	}
	publish(&next)
}

// publish builds the engine of s and stores s atomically.
// Callers must hold buildMu.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	s.eng = s.bld.BuildEngine(s.cfg, s.reg, s.log)
	if s.eng == nil {
		panic(ErrNilEngine)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// log is the logger handed to the registry and engine.
	log *zap.Logger
	// reg is the global registry.
	reg apis.Registry
	// eng is the global engine, always built over reg.
	eng apis.Engine
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
}
