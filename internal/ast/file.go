// Copyright 2024 The Slice Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

// File represents one Slice source file's compilation-relevant metadata:
// its declared mode and file-wide attributes. Every Entity
// reaches its owning File via Entity.File(), which is how the encoding
// computer and the mode-mismatch diagnostics know which
// CompilationMode to check an entity against.
type File struct {
	// Path is the file path as given to the compiler (one of
	// Options.Sources / Options.References).
	Path string

	// Mode is the file's declared compilation mode. Defaults to Slice2
	// when no `mode = ...` directive is present.
	Mode CompilationMode

	// ModeExplicit records whether a `mode = ...` directive was actually
	// present. When it is false, the NotSupportedInCompilationMode
	// diagnostic reported for a type of this file carries a note that the
	// file has no mode directive and defaults to Slice2; the diagnostics
	// reported for operation parameters and throws clauses carry no such
	// note.
	ModeExplicit bool

	// IsReference marks a file supplied via Options.References: fully
	// parsed and validated, but excluded from code generation. Every
	// pass in this package treats reference files identically to source
	// files; only downstream generators care about the distinction.
	IsReference bool

	// Attrs holds file-level attributes, chiefly `[[allow(...)]]`
	// and the supplemental `[[enc = N]]` encoding-version attribute.
	Attrs Attributes

	// TopLevelModules are the modules declared at this file's top level,
	// in declaration order.
	TopLevelModules []*Module
}
