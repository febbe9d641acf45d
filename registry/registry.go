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

package registry

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/xport/apis"
	"dirpx.dev/xport/config"
	uref "dirpx.dev/xport/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("xport(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when a spec with an empty name is declared.
	ErrEmptyName = errors.New("xport(registry): empty attribute name provided")
	// ErrFrozen indicates a declaration for a type whose table was already
	// used by an export or lookup.
	ErrFrozen = errors.New("xport(registry): attribute table is frozen")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here. A nil logger disables logging.
func New(cfg apis.Config, logger *zap.Logger) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &registry{
		cfg:     cfg,
		logger:  logger.Named("registry"),
		pending: make(map[reflect.Type]*table),
	}
}

// registry keeps tables under declaration in pending and frozen tables in a
// sync.Map, so that the export hot path never takes the mutex.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// logger receives debug entries on declaration and freeze.
	logger *zap.Logger
	// mu guards pending, count and the pending -> frozen transition.
	mu sync.Mutex
	// pending maps normalized types to tables still open for declaration.
	pending map[reflect.Type]*table
	// frozen maps normalized types to published tables.
	frozen sync.Map // map[reflect.Type]*table
	// declared holds every normalized type with a table, pending or frozen.
	declared sync.Map // map[reflect.Type]struct{}
	// count tracks the number of declared types.
	count int
}

// Declare merges specs into the table of t. Calls accumulate; declaring an
// existing name again replaces its transform without moving it.
func (r *registry) Declare(t reflect.Type, specs ...apis.Spec) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	for _, s := range specs {
		if s.Name == "" {
			return ErrEmptyName
		}
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.frozen.Load(b); ok {
		return fmt.Errorf("%w: %v", ErrFrozen, b)
	}

	tbl, ok := r.pending[b]
	if !ok {
		tbl = newTable(b)
		r.pending[b] = tbl
		r.declared.Store(b, struct{}{})
		r.count++
	}
	tbl.merge(specs)

	r.logger.Debug("attributes declared",
		zap.Stringer("type", b),
		zap.Int("declared", len(specs)),
		zap.Strings("attributes", tbl.Names()),
	)
	return nil
}

// Lookup returns the frozen table of t. The first lookup of a type freezes it.
func (r *registry) Lookup(t reflect.Type) (apis.Table, error) {
	if t == nil {
		return nil, ErrNilType
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, err
	}

	// Fast read path.
	if v, ok := r.frozen.Load(b); ok {
		return v.(*table), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine froze it meanwhile.
	if v, ok := r.frozen.Load(b); ok {
		return v.(*table), nil
	}
	tbl, ok := r.pending[b]
	if !ok {
		return nil, &apis.ConfigurationError{Type: b}
	}

	delete(r.pending, b)
	tbl.frozen = true
	r.frozen.Store(b, tbl)
	r.logger.Debug("attribute table frozen", zap.Stringer("type", b), zap.Int("attributes", tbl.Len()))
	return tbl, nil
}

// Declared reports whether t has a table, without freezing it.
// It never takes the registry mutex.
func (r *registry) Declared(t reflect.Type) bool {
	if t == nil {
		return false
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return false
	}
	_, ok := r.declared.Load(b)
	return ok
}

// Entries returns a snapshot of all tables, sorted by type name.
// Tables still under declaration are copied, so the snapshot is stable.
func (r *registry) Entries() []apis.Table {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]apis.Table, 0, r.count)
	for _, tbl := range r.pending {
		entries = append(entries, tbl.clone())
	}
	r.frozen.Range(func(_, value any) bool {
		entries = append(entries, value.(*table))
		return true
	})
	slices.SortFunc(entries, func(a, b apis.Table) int {
		return cmp.Compare(a.Type().String(), b.Type().String())
	})
	return entries
}

// Count returns the number of declared types.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all declarations, frozen ones included.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = make(map[reflect.Type]*table)
	r.frozen.Clear()
	r.declared.Clear()
	r.count = 0
}
