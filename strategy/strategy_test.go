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

package strategy_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/xport/apis"
	"dirpx.dev/xport/config"
	"dirpx.dev/xport/strategy"
)

var errBroken = errors.New("broken getter")

type Base struct {
	Zone string
}

type host struct {
	*Base
	Name       string
	MacAddress string
	CustomAttr string `export:"custom"`
	Password   string `export:"-"`
	ID         int
	secret     string
}

func (h *host) Upper() string { return "UPPER:" + h.Name }
func (h *host) Checked() (string, error) { return "ok", nil }
func (h *host) Broken() (string, error) { return "", errBroken }
func (h *host) Takes(int) string { return "never" }
func (h *host) Name2() (int, int) { return 1, 2 }

type attrsHost struct{}

func (attrsHost) Attributes() map[string]any {
	return map[string]any{"name": "from-attrs", "empty": nil}
}

func spec(name string) apis.Spec { return apis.Spec{Name: name} }

func TestTransformStrategy(t *testing.T) {
	s := strategy.NewTransformStrategy()
	conf := config.DefaultConfig()

	v, ok, err := s.TryResolve(&host{Name: "n"}, apis.Spec{
		Name:      "name",
		Transform: func(i any) (any, error) { return i.(*host).Name + "!", nil },
	}, conf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "n!", v)

	boom := errors.New("boom")
	_, ok, err = s.TryResolve(&host{}, apis.Spec{
		Name:      "name",
		Transform: func(any) (any, error) { return nil, boom },
	}, conf)
	assert.True(t, ok)
	assert.Same(t, boom, err)

	_, ok, err = s.TryResolve(&host{}, spec("name"), conf)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestMethodStrategy(t *testing.T) {
	s := strategy.NewMethodStrategy()
	conf := config.DefaultConfig()
	h := &host{Name: "n"}

	cases := []struct {
		name    string
		attr    string
		want    any
		handled bool
	}{
		{"exact", "upper", "UPPER:n", true},
		{"with error nil", "checked", "ok", true},
		{"takes args", "takes", nil, false},
		{"bad second result", "name2", nil, false},
		{"unknown", "missing", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok, err := s.TryResolve(h, spec(tc.attr), conf)
			require.NoError(t, err)
			assert.Equal(t, tc.handled, ok)
			assert.Equal(t, tc.want, v)
		})
	}

	_, ok, err := s.TryResolve(h, spec("broken"), conf)
	assert.True(t, ok)
	assert.Same(t, errBroken, err)

	// Pointer receivers are not in the method set of a value.
	_, ok, _ = s.TryResolve(host{Name: "n"}, spec("upper"), conf)
	assert.False(t, ok)
}

func TestFieldStrategy(t *testing.T) {
	s := strategy.NewFieldStrategy()
	conf := config.DefaultConfig()
	h := &host{
		Base:       &Base{Zone: "eu"},
		Name:       "n",
		MacAddress: "aa",
		CustomAttr: "tagged",
		Password:   "pw",
		ID:         7,
		secret:     "s",
	}

	cases := []struct {
		name    string
		attr    string
		want    any
		handled bool
	}{
		{"camelized", "name", "n", true},
		{"snake case", "mac_address", "aa", true},
		{"tag", "custom", "tagged", true},
		{"folded initialism", "id", 7, true},
		{"promoted", "zone", "eu", true},
		{"hidden by tag", "password", nil, false},
		{"unexported", "secret", nil, false},
		{"unknown", "missing", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok, err := s.TryResolve(h, spec(tc.attr), conf)
			require.NoError(t, err)
			assert.Equal(t, tc.handled, ok)
			assert.Equal(t, tc.want, v)
		})
	}

	// Value instances work too.
	v, ok, err := s.TryResolve(*h, spec("name"), conf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "n", v)

	// A nil embedded pointer resolves to nil.
	v, ok, err = s.TryResolve(&host{}, spec("zone"), conf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, v)

	// Non-struct instances are not handled.
	_, ok, _ = s.TryResolve(map[string]any{"name": 1}, spec("name"), conf)
	assert.False(t, ok)
}

func TestFieldStrategy_StrictNames(t *testing.T) {
	s := strategy.NewFieldStrategy()
	conf := config.NewConfig(config.WithFoldNames(false))
	h := &host{ID: 7, MacAddress: "aa"}

	_, ok, _ := s.TryResolve(h, spec("id"), conf)
	assert.False(t, ok, "id does not camelize to ID")

	v, ok, _ := s.TryResolve(h, spec("mac_address"), conf)
	assert.True(t, ok)
	assert.Equal(t, "aa", v)

	_, ok, _ = s.TryResolve(h, spec("macaddress"), conf)
	assert.False(t, ok)
}

func TestFieldStrategy_CustomTagName(t *testing.T) {
	s := strategy.NewFieldStrategy()
	type tagged struct {
		Value string `json:"value_json"`
	}

	v, ok, _ := s.TryResolve(tagged{Value: "x"}, spec("value_json"), config.NewConfig(config.WithTagName("json")))
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok, _ = s.TryResolve(tagged{Value: "x"}, spec("value_json"), config.DefaultConfig())
	assert.False(t, ok)
}

func TestAttributesStrategy(t *testing.T) {
	s := strategy.NewAttributesStrategy()
	conf := config.DefaultConfig()

	v, ok, err := s.TryResolve(attrsHost{}, spec("name"), conf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-attrs", v)

	v, ok, _ = s.TryResolve(attrsHost{}, spec("empty"), conf)
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok, _ = s.TryResolve(attrsHost{}, spec("missing"), conf)
	assert.False(t, ok)

	_, ok, _ = s.TryResolve(&host{}, spec("name"), conf)
	assert.False(t, ok)
}

func TestAccessorStrategies_IgnoreTransformSpecs(t *testing.T) {
	conf := config.DefaultConfig()
	sp := apis.Spec{Name: "name", Transform: func(any) (any, error) { return 1, nil }}

	for _, s := range []apis.Strategy{
		strategy.NewMethodStrategy(),
		strategy.NewFieldStrategy(),
		strategy.NewAttributesStrategy(),
	} {
		_, ok, _ := s.TryResolve(&host{Name: "n"}, sp, conf)
		assert.False(t, ok)
	}
}

// This test stresses the memoized plans under concurrency.
func TestAccessorStrategies_Concurrent(t *testing.T) {
	method := strategy.NewMethodStrategy()
	field := strategy.NewFieldStrategy()
	conf := config.DefaultConfig()
	h := &host{Name: "n", MacAddress: "aa", ID: 7}

	attrs := []string{"name", "mac_address", "id"}
	want := []any{"n", "aa", 7}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := (i + id) % len(attrs)
				v, ok, err := field.TryResolve(h, spec(attrs[idx]), conf)
				if !ok || err != nil || v != want[idx] {
					errCh <- attrs[idx]
					return
				}
				if v, ok, _ := method.TryResolve(h, spec("upper"), conf); !ok || v != "UPPER:n" {
					errCh <- "upper"
					return
				}
			}
		}(w)
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		require.Failf(t, "concurrent resolve mismatch", "attribute %q", e)
	}
}
