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

// Package xport provides a global, process-wide attribute export service.
//
// xport turns domain objects into ordered, JSON-ready maps of named
// attributes. Each exportable type declares, once, which attributes make
// up its export and optionally how each one is computed. Exporting an
// object walks that declaration in order and builds a fresh result.
//
// # Declaring
//
// Declarations are usually made from package init:
//
//	func init() {
//		xport.MustDeclare[Host](
//			xport.Attr("name"),
//			xport.Attr("subnet"),
//			xport.Upper("mac", func(h *Host) string { return h.Mac }),
//		)
//	}
//
// Repeated declarations of the same type merge: a new name is appended, an
// existing name keeps its position and only has its transform replaced.
// T and *T share one table. The first export of a type freezes its table;
// declaring it afterwards fails with registry.ErrFrozen.
//
// # Resolving
//
// Attributes without a transform are read from the instance, trying in
// order a getter method (name camelized, e.g. "mac_address" -> MacAddress),
// an exported field (tag export:"name" first), and an
// Attributes() map[string]any bag. A name nothing can answer is an
// apis.AttributeError; exporting an undeclared type is an
// apis.ConfigurationError.
//
// # Exporting
//
//	res, err := xport.Export(host)
//	res, err := xport.ExportWith(host, false)
//
// Nested values of declared types, and values implementing apis.Exporter,
// are exported recursively with the same includeBlank flag. A declared type
// is exported by the engine at hand, so an engine built with its own config
// keeps it at every depth. Containers and Go maps become shallow result.Map
// copies; map keys that collide once stringified fail the export. With includeBlank false, attributes that are nil, "" or empty
// containers are dropped at every depth; 0 and false are kept.
//
// # Design
//
// The package holds an atomic pointer to an immutable snapshot of Config,
// logger, Registry, Engine and Builder. Readers load the pointer and never
// lock. Writers (SetConfig, SetLogger, SetBuilder, SetRegistry, SetAll)
// take a build mutex, build a new snapshot and swap it in. Rebuilding a
// registry replays the previous declarations into it. SetRegistry pins the
// registry so reconfiguration leaves it alone until UnpinRegistry. Tables
// frozen in the previous registry stay frozen in the rebuilt one.
package xport
