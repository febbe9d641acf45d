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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/xport/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	assert.Equal(t, config.DefaultTagName, got.TagName)
	assert.Equal(t, config.DefaultFoldNames, got.FoldNames)
	assert.Equal(t, config.DefaultSortMapKeys, got.SortMapKeys)
	assert.Equal(t, config.DefaultRecurseDeclared, got.RecurseDeclared)
	assert.Equal(t, config.DefaultMaxUnwrap, got.MaxUnwrap)
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	assert.Equal(t, config.DefaultConfig(), config.NewConfig())
}

func TestWithTagName(t *testing.T) {
	assert.Equal(t, "json", config.NewConfig(config.WithTagName("json")).TagName)
	assert.Equal(t, config.DefaultTagName, config.NewConfig(config.WithTagName("")).TagName)
}

func TestWithFoldNames(t *testing.T) {
	assert.False(t, config.NewConfig(config.WithFoldNames(false)).FoldNames)
}

func TestWithSortMapKeys(t *testing.T) {
	assert.False(t, config.NewConfig(config.WithSortMapKeys(false)).SortMapKeys)
}

func TestWithRecurseDeclared(t *testing.T) {
	assert.False(t, config.NewConfig(config.WithRecurseDeclared(false)).RecurseDeclared)
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	assert.Equal(t, 3, config.NewConfig(config.WithMaxUnwrap(3)).MaxUnwrap)
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	assert.Equal(t, config.DefaultMaxUnwrap, config.NewConfig(config.WithMaxUnwrap(-1)).MaxUnwrap)
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithFoldNames(false),
		config.WithFoldNames(true),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithTagName("a"),
		config.WithTagName("b"),
	)

	assert.True(t, c.FoldNames, "last option wins")
	assert.Equal(t, 5, c.MaxUnwrap, "last option wins")
	assert.Equal(t, "b", c.TagName, "last option wins")
}
