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

package slicec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// codesOf extracts the diagnostic codes from a CompilationState, in order,
// for terse comparisons against the expected scenario outcome.
func codesOf(diags []errors.Diagnostic) []errors.Code {
	out := make([]errors.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

// S1 — basic parse and resolve.
func TestCompile_S1_BasicParseAndResolve(t *testing.T) {
	src := `
module M
{
    struct Point
    {
        x: int32,
        y: int32,
    }
}
`
	state, err := CompileFromStrings(map[string]string{"s1.slice": src}, Options{})
	if err != nil {
		t.Fatalf("CompileFromStrings: %v", err)
	}
	if diff := cmp.Diff([]errors.Code{}, codesOf(state.Diagnostics)); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}

	point, ok := state.AST.LookupType("M::Point", "")
	if !ok {
		t.Fatalf("M::Point not found")
	}
	s, ok := point.(*ast.Struct)
	if !ok {
		t.Fatalf("M::Point is a %T, not *ast.Struct", point)
	}
	if len(s.FieldList) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(s.FieldList))
	}
	for _, f := range s.FieldList {
		if f.Type.Definition == nil {
			t.Fatalf("field %q has an unpatched type reference", f.Identifier())
		}
		prim, ok := f.Type.Definition.(*ast.Primitive)
		if !ok || prim.Kind != ast.Int32 {
			t.Fatalf("field %q resolved to %#v, want int32", f.Identifier(), f.Type.Definition)
		}
	}
}

// S2 — cross-module relative reference.
func TestCompile_S2_CrossModuleReference(t *testing.T) {
	src := `
module A
{
    struct P {}
}
module B
{
    struct Q { p: A::P }
}
`
	state, err := CompileFromStrings(map[string]string{"s2.slice": src}, Options{})
	if err != nil {
		t.Fatalf("CompileFromStrings: %v", err)
	}
	if diff := cmp.Diff([]errors.Code{}, codesOf(state.Diagnostics)); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}

	q, ok := state.AST.LookupType("B::Q", "")
	if !ok {
		t.Fatalf("B::Q not found")
	}
	qs := q.(*ast.Struct)
	p, ok := state.AST.LookupType("A::P", "")
	if !ok {
		t.Fatalf("A::P not found")
	}
	if qs.FieldList[0].Type.Definition != p {
		t.Fatalf("B::Q.p did not resolve to A::P")
	}
}

// S3 — value-type cycle: exactly one InfiniteSizeCycle, against
// whichever of S/T is the closing node.
func TestCompile_S3_ValueTypeCycle(t *testing.T) {
	src := `
module M
{
    struct S { t: T }
    struct T { s: S }
}
`
	state, err := CompileFromStrings(map[string]string{"s3.slice": src}, Options{})
	if err != nil {
		t.Fatalf("CompileFromStrings: %v", err)
	}
	codes := codesOf(state.Diagnostics)
	if diff := cmp.Diff([]errors.Code{errors.InfiniteSizeCycle}, codes); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

// S4 — class in Slice2.
func TestCompile_S4_ClassInSlice2(t *testing.T) {
	src := `
[[mode = Slice2]]
module M
{
    class C {}
}
`
	state, err := CompileFromStrings(map[string]string{"s4.slice": src}, Options{})
	if err != nil {
		t.Fatalf("CompileFromStrings: %v", err)
	}
	codes := codesOf(state.Diagnostics)
	if diff := cmp.Diff([]errors.Code{errors.NotSupportedInCompilationMode}, codes); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

// S5 — dictionary with float key.
func TestCompile_S5_DictionaryFloatKey(t *testing.T) {
	src := `
module M
{
    struct X { m: dictionary<float32, string> }
}
`
	state, err := CompileFromStrings(map[string]string{"s5.slice": src}, Options{})
	if err != nil {
		t.Fatalf("CompileFromStrings: %v", err)
	}
	codes := codesOf(state.Diagnostics)
	if diff := cmp.Diff([]errors.Code{errors.KeyTypeNotSupported}, codes); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

// S6 — tagged, shadowing, and duplicate tag: only CannotHaveDuplicateTag
// fires, with a note pointing at the first use.
func TestCompile_S6_DuplicateTag(t *testing.T) {
	src := `
module M
{
    interface I
    {
        op(a: int32, tag(1) b: int32?, tag(1) c: string?);
    }
}
`
	state, err := CompileFromStrings(map[string]string{"s6.slice": src}, Options{})
	if err != nil {
		t.Fatalf("CompileFromStrings: %v", err)
	}
	codes := codesOf(state.Diagnostics)
	if diff := cmp.Diff([]errors.Code{errors.CannotHaveDuplicateTag}, codes); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
	if len(state.Diagnostics[0].Notes) != 1 {
		t.Fatalf("expected exactly one note pointing at the first use of tag 1")
	}
}

func TestCompile_ExitCode(t *testing.T) {
	okState, _ := CompileFromStrings(map[string]string{"ok.slice": "module M { struct S { x: int32 } }"}, Options{})
	if okState.ExitCode != 0 {
		t.Fatalf("expected exit code 0 for a clean compile, got %d", okState.ExitCode)
	}

	badState, _ := CompileFromStrings(map[string]string{"bad.slice": "module M { struct S { x: Bogus } }"}, Options{})
	if badState.ExitCode != 1 {
		t.Fatalf("expected exit code 1 when DoesNotExist fires, got %d", badState.ExitCode)
	}
}

func TestCompileFromSources_MissingFile(t *testing.T) {
	if _, err := CompileFromSources(Options{Sources: []string{"/nonexistent/path/does-not-exist.slice"}}); err == nil {
		t.Fatalf("expected an error reading a nonexistent source file")
	}
}

func TestCompile_InvalidEncodingVersion(t *testing.T) {
	src := `
[[enc = 3]]
module M
{
    struct S { x: int32 }
}
`
	state, err := CompileFromStrings(map[string]string{"bad-enc.slice": src}, Options{})
	if err != nil {
		t.Fatalf("CompileFromStrings: %v", err)
	}
	if diff := cmp.Diff([]errors.Code{errors.InvalidEncodingVersion}, codesOf(state.Diagnostics)); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

func TestCompile_MultipleEncodingVersions(t *testing.T) {
	src := `
[[enc = 1]]
[[enc = 2]]
module M
{
    struct S { x: int32 }
}
`
	state, err := CompileFromStrings(map[string]string{"dup-enc.slice": src}, Options{})
	if err != nil {
		t.Fatalf("CompileFromStrings: %v", err)
	}
	if diff := cmp.Diff([]errors.Code{errors.MultipleEncodingVersions}, codesOf(state.Diagnostics)); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

// Compiling the same multi-file input repeatedly must fold declarations
// into the AST, and report diagnostics, in the same order every time:
// file order must not depend on Go's randomized map iteration.
func TestCompile_MultiFileOrderIsDeterministic(t *testing.T) {
	inputs := map[string]string{
		"a.slice": "module M { struct A { x: Bogus1 } }",
		"b.slice": "module M { struct B { x: Bogus2 } }",
		"c.slice": "module M { struct C { x: Bogus3 } }",
		"d.slice": "module M { struct D { x: Bogus4 } }",
	}
	var first []string
	for i := 0; i < 10; i++ {
		state, err := CompileFromStrings(inputs, Options{})
		if err != nil {
			t.Fatalf("CompileFromStrings: %v", err)
		}
		var msgs []string
		for _, d := range state.Diagnostics {
			msgs = append(msgs, d.Message)
		}
		if i == 0 {
			first = msgs
			continue
		}
		if diff := cmp.Diff(first, msgs); diff != "" {
			t.Fatalf("diagnostic order changed across runs (-run0 +run%d):\n%s", i, diff)
		}
	}
}
