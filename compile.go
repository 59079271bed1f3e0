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

// Package slicec is the compiler-facing API: the two entry
// points downstream code generators call, CompileFromSources and
// CompileFromStrings, plus the Options and CompilationState values they
// thread through the five phases of package parser/compile/validate.
//
// This is the single public entry point wrapping the lower-level
// parser/compile/validate phases; the wrapping is flat since there is
// only one compilation-unit shape to thread through it.
package slicec

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/compile"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
	"github.com/InsertCreativityHere/slicec-go/internal/parser"
	itoken "github.com/InsertCreativityHere/slicec-go/internal/token"
	"github.com/InsertCreativityHere/slicec-go/internal/validate"
)

// DiagnosticFormat selects which renderer of package render (JSON or
// Human) a caller uses for a CompilationState's diagnostics.
type DiagnosticFormat int

const (
	// Human is plain text, optionally ANSI-colored.
	Human DiagnosticFormat = iota
	// JSON is a JSON array of diagnostic objects.
	JSON
)

// Options bundles every recognized field the compiler-facing API accepts.
type Options struct {
	// Sources are files fully compiled: parsed, resolved, validated, and
	// eligible for code generation.
	Sources []string
	// References are files parsed and validated but excluded from
	// generation.
	References []string
	// Definitions are preprocessor symbols defined on entry.
	Definitions []string
	// WarnAsError elevates warning presence to failure exit status.
	WarnAsError bool
	// AllowedWarnings lists codes to suppress globally; "All" suppresses
	// every code.
	AllowedWarnings []string
	// DiagnosticFormat is consulted only by callers that render
	// diagnostics themselves (e.g. cmd/slicec); the core does not format
	// anything.
	DiagnosticFormat DiagnosticFormat
	// DisableColor is consulted only by human-readable rendering.
	DisableColor bool
	// OutputDir is consumed by generators, not the core.
	OutputDir string
}

// definitionSet turns Options.Definitions into the map the preprocessor
// wants.
func (o Options) definitionSet() map[string]bool {
	set := make(map[string]bool, len(o.Definitions))
	for _, d := range o.Definitions {
		set[d] = true
	}
	return set
}

// CompilationState is the result of running all five phases
// over a set of sources and references: the fully linked AST plus every
// diagnostic raised along the way.
//
// RunID uniquely tags one run. Nothing in this compiler's own logic
// depends on it; it exists so a caller juggling multiple concurrent
// CompilationStates (a long-running language server, for instance) has
// a stable handle to correlate logs and diagnostics against.
type CompilationState struct {
	AST         *ast.Store
	Diagnostics []errors.Diagnostic
	RunID       uuid.UUID
	ExitCode    int
}

// fileInput is one source file paired with its path and reference status,
// threaded through compileAll as a slice rather than a map: Go map
// iteration order is randomized per process, and the order files are
// folded into the AST determines the order their declarations land in
// Module.Decls and the order their diagnostics are reported, so it must
// stay fixed across runs for identical input.
type fileInput struct {
	path        string
	src         string
	isReference bool
}

// CompileFromSources reads every file named in options.Sources and
// options.References from disk and runs the full pipeline, preserving
// the order those two lists were given in (sources first, then
// references).
func CompileFromSources(options Options) (*CompilationState, error) {
	isReference := make(map[string]bool, len(options.References))
	for _, p := range options.References {
		isReference[p] = true
	}

	var files []fileInput
	for _, path := range append(append([]string{}, options.Sources...), options.References...) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("slicec: reading %s: %w", path, err)
		}
		files = append(files, fileInput{path: path, src: string(content), isReference: isReference[path]})
	}
	return compileAll(files, options)
}

// CompileFromStrings runs the full pipeline over in-memory sources, e.g.
// for editor tooling or tests that should not touch a filesystem.
// inputs maps a synthetic file path to its Slice source text; every key
// also present in options.References is treated as a reference file, the
// rest as sources. Only the keys of inputs are compiled; options.Sources
// is not read.
// A map carries no file order of its own, so paths are sorted before
// compileAll sees them, to keep repeated calls with the same inputs
// deterministic.
func CompileFromStrings(inputs map[string]string, options Options) (*CompilationState, error) {
	isReference := make(map[string]bool, len(options.References))
	for _, p := range options.References {
		isReference[p] = true
	}

	paths := make([]string, 0, len(inputs))
	for p := range inputs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	files := make([]fileInput, len(paths))
	for i, p := range paths {
		files[i] = fileInput{path: p, src: inputs[p], isReference: isReference[p]}
	}
	return compileAll(files, options)
}

func compileAll(inputs []fileInput, options Options) (*CompilationState, error) {
	r := errors.NewReporter(options.AllowedWarnings, options.WarnAsError)
	store := ast.NewStore()
	defs := options.definitionSet()

	var files []*ast.File
	for _, in := range inputs {
		tf := itoken.NewFile(in.path, []byte(in.src))
		f := parser.ParseFile(tf, []byte(in.src), in.path, defs, r)
		f.IsReference = in.isReference
		files = append(files, f)
	}

	// Phase 2: scope/identifier resolution.
	compile.ResolveScopes(store, files, r)

	// Phase 3: type-reference patching.
	compile.PatchTypeRefs(store, r)

	// Phase 4: supported-encoding computation.
	compile.ComputeEncodings(store, r)

	// Phase 5: validation. Cycle detection runs first and short-circuits
	// the rest if it finds anything, so later passes never traverse an
	// infinite value-type graph.
	if !compile.DetectCycles(store, r) {
		runValidators(store, r)
	}

	diags := r.Finish()
	state := &CompilationState{
		AST:         store,
		Diagnostics: diags,
		RunID:       newRunID(),
		ExitCode:    r.ExitCode(),
	}
	return state, nil
}

// runValidators invokes every phase-5 validation pass. Passes that
// implement a per-entity Visitor hook are driven by ast.WalkAll over every
// top-level module, in definition order; passes that need to iterate the
// Store directly (dictionaries, attributes, comments) carry their own
// Run method.
func runValidators(store *ast.Store, r *errors.Reporter) {
	perEntity := []ast.Visitor{
		&validate.StructValidator{R: r},
		&validate.TagValidator{R: r},
		&validate.OperationValidator{R: r},
		&validate.EnumValidator{R: r},
		&validate.TypeAliasValidator{R: r},
		&validate.IdentifierValidator{R: r},
	}
	for _, v := range perEntity {
		ast.WalkAll(store.TopLevelModules, v)
	}

	(&validate.DictionaryValidator{Store: store, R: r}).Run()
	(&validate.AttributeValidator{Store: store, R: r}).Run()
	(&validate.CommentValidator{Store: store, R: r}).Run()
}

// newRunID is split out so tests can't accidentally depend on it (uuid
// generation is otherwise unobservable from outside this package).
func newRunID() uuid.UUID {
	return uuid.New()
}
