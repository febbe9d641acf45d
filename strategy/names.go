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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// camelize maps an attribute name to the Go identifier it designates:
// "custom_attr" -> "CustomAttr", "mac" -> "Mac". Runes after the first of
// each segment are kept as written.
func camelize(name string) string {
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	b.Grow(len(name))
	for _, seg := range strings.FieldsFunc(name, isSeparator) {
		b.WriteString(title.String(seg))
	}
	return b.String()
}

// foldName returns the case-folded form of name without separators, used
// for loose matching: "mac_address", "MacAddress" and "MACADDRESS" agree.
func foldName(name string) string {
	return cases.Fold().String(strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}
		return r
	}, name))
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-'
}

// tagName returns the name part of a struct tag value ("name,opts" -> "name").
func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}
