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

package apis

// Strategy is a pluggable attribute resolution step. A Resolver chains
// multiple strategies in order (e.g., Transform -> Method -> Field -> Attributes).
type Strategy interface {
	// TryResolve attempts to produce the raw value of spec for instance.
	// It returns handled=false to fall through to the next strategy.
	// A non-nil error is returned as is and stops the chain.
	TryResolve(instance any, spec Spec, cfg Config) (value any, handled bool, err error)
}

// Attributer is implemented by host objects exposing a flat mapping of their
// current field values.
type Attributer interface {
	Attributes() map[string]any
}
