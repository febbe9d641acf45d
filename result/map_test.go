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

package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/xport/result"
)

func TestMap_SetKeepsInsertionOrder(t *testing.T) {
	m := result.New(0)
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("a", 4) // overwrite keeps position

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 3, m.Len())
}

func TestMap_Delete(t *testing.T) {
	m := result.New(3)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))
}

func TestMap_RangeStopsEarly(t *testing.T) {
	m := result.New(3)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	m.Range(func(k string, _ any) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMap_NilReadsAsEmpty(t *testing.T) {
	var m *result.Map

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.Nil(t, m.ToMap())
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.False(t, m.Delete("a"))
	assert.Equal(t, 0, m.Clone().Len())
}

func TestMap_CloneIsShallow(t *testing.T) {
	inner := result.New(1)
	inner.Set("x", 1)
	m := result.New(2)
	m.Set("inner", inner)
	m.Set("n", 1)

	c := m.Clone()
	c.Set("n", 2)
	c.Set("extra", true)

	v, _ := m.Get("n")
	assert.Equal(t, 1, v)
	assert.False(t, m.Has("extra"))
	got, _ := c.Get("inner")
	assert.Same(t, inner, got)
}

func TestMap_ToMapConvertsNested(t *testing.T) {
	inner := result.New(1)
	inner.Set("name", "pxe")
	m := result.New(2)
	m.Set("subnet", inner)
	m.Set("name", "host")

	assert.Equal(t, map[string]any{
		"subnet": map[string]any{"name": "pxe"},
		"name":   "host",
	}, m.ToMap())
}
