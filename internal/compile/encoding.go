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

package compile

import (
	"fmt"

	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// ComputeEncodings computes and caches SupportedEncodings for every
// user-defined type, then separately walks every
// interface's operations checking each parameter, return member, and
// throws clause against the interface's file compilation mode. It must run
// after PatchTypeRefs.
//
// ast.EncodingCache.Computing marks a type as "currently being computed",
// breaking self-referential cycles (a class field referencing its own
// class) by handing back the dummy "supports everything" set instead of
// recursing forever.
func ComputeEncodings(store *ast.Store, r *errors.Reporter) {
	for _, t := range store.IterateTypes() {
		computeType(t, r)
	}
	for _, e := range store.IterateEntities() {
		if op, ok := e.(*ast.Operation); ok {
			checkOperation(op, r)
		}
	}
}

func computeType(t ast.Type, r *errors.Reporter) ast.EncodingSet {
	cache := t.EncodingCache()
	if cache.Done {
		return cache.Set
	}
	if cache.Computing {
		return ast.AllEncodings
	}
	cache.Computing = true

	var set ast.EncodingSet
	switch n := t.(type) {
	case *ast.Primitive:
		set = primitiveEncodings(n.Kind)
	case *ast.Enum:
		set = enumEncodings(n, r)
	case *ast.Struct:
		set = structEncodings(n, r)
	case *ast.Class:
		set = classEncodings(n, r)
	case *ast.Exception:
		set = exceptionEncodings(n, r)
	case *ast.Interface:
		set = ast.AllEncodings
	case *ast.Sequence:
		set = memberEncodings(n.Element, false, r)
	case *ast.Dictionary:
		set = memberEncodings(n.Key, false, r).Intersect(memberEncodings(n.Value, false, r))
	case *ast.TypeAlias:
		set = aliasEncodings(n, r)
	case *ast.CustomType:
		set = ast.AllEncodings
	default:
		set = ast.AllEncodings
	}

	cache.Computing = false
	cache.Done = true
	cache.Set = finalize(t, set, r)
	return cache.Set
}

// finalize applies the final check: if the computed set does
// not include the type's own file's compilation mode, report
// NotSupportedInCompilationMode and substitute the dummy set so downstream
// uses of this type don't cascade further errors.
func finalize(t ast.Type, set ast.EncodingSet, r *errors.Reporter) ast.EncodingSet {
	ent, ok := t.(ast.Entity)
	if !ok || ent.File() == nil {
		return set
	}
	mode := ent.File().Mode
	if !set.Has(mode) {
		d := errors.New(errors.Error, errors.NotSupportedInCompilationMode, ent.IdentifierSpan(),
			"%q is not supported in %s mode", ent.Identifier(), mode)
		if !ent.File().ModeExplicit {
			d.Notes = append(d.Notes, errors.Note{
				Message: fmt.Sprintf("this file has no mode directive, so it defaults to %s", mode),
			})
		}
		r.Report(d)
		return ast.AllEncodings
	}
	return set
}

func primitiveEncodings(kind ast.PrimitiveKind) ast.EncodingSet {
	if kind == ast.AnyClassKind {
		return ast.EncodingSet(ast.Slice1)
	}
	return ast.AllEncodings
}

func enumEncodings(e *ast.Enum, r *errors.Reporter) ast.EncodingSet {
	set := ast.AllEncodings
	if e.Underlying != nil {
		set = set.Intersect(memberEncodings(e.Underlying, false, r))
		set = set.Without(ast.Slice1)
	} else if e.File() != nil && e.File().Mode == ast.Slice2 {
		r.Report(errors.New(errors.Error, errors.EnumUnderlyingTypeNotSupported, e.IdentifierSpan(),
			"enum %q has no underlying type; Slice2 requires one", e.Identifier()))
	}
	return set
}

func structEncodings(s *ast.Struct, r *errors.Reporter) ast.EncodingSet {
	set := ast.AllEncodings
	for _, f := range s.FieldList {
		set = set.Intersect(memberEncodings(f.Type, f.TagValue != nil, r))
	}
	if !s.IsCompact {
		set = set.Without(ast.Slice1)
	}
	return set
}

func classEncodings(c *ast.Class, r *errors.Reporter) ast.EncodingSet {
	set := ast.AllEncodings
	for _, f := range c.AllFields() {
		set = set.Intersect(memberEncodings(f.Type, f.TagValue != nil, r))
	}
	return set.Without(ast.Slice2)
}

func exceptionEncodings(e *ast.Exception, r *errors.Reporter) ast.EncodingSet {
	set := ast.AllEncodings
	for _, f := range e.AllFields() {
		set = set.Intersect(memberEncodings(f.Type, f.TagValue != nil, r))
	}
	if e.Base() != nil {
		set = set.Without(ast.Slice2)
	}
	return set
}

func aliasEncodings(t *ast.TypeAlias, r *errors.Reporter) ast.EncodingSet {
	if t.Underlying == nil {
		return ast.AllEncodings
	}
	return memberEncodings(t.Underlying, false, r)
}

// memberEncodings computes the encodings contributed by one TypeRef use
// site, applying the optional-drops-Slice1 rule unless the
// use site is tagged or the referenced type is itself Slice1-privileged
// (a class, an interface, or AnyClass).
func memberEncodings(ref *ast.TypeRef, tagged bool, r *errors.Reporter) ast.EncodingSet {
	if ref == nil || ref.Definition == nil {
		return ast.AllEncodings
	}
	set := computeType(ref.Definition, r)
	if ref.Optional && !tagged && !isSlice1Privileged(ref.Definition) {
		set = set.Without(ast.Slice1)
	}
	return set
}

func isSlice1Privileged(t ast.Type) bool {
	switch n := t.(type) {
	case *ast.Class, *ast.Interface:
		return true
	case *ast.Primitive:
		return n.Kind == ast.AnyClassKind
	}
	return false
}

// checkOperation validates every parameter, return member and throws-clause
// entry of op against its interface's file compilation mode.
func checkOperation(op *ast.Operation, r *errors.Reporter) {
	if op.Fil == nil {
		return
	}
	mode := op.Fil.Mode
	for _, p := range op.Contents() {
		set := memberEncodings(p.Type, p.TagValue != nil, r)
		if p.Streamed {
			set = set.Without(ast.Slice1)
		}
		if !set.Has(mode) {
			r.Report(errors.New(errors.Error, errors.UnsupportedType, p.Type.Span(),
				"type %q is not supported as a parameter in %s mode", p.Type.Name, mode))
		}
	}
	if op.AnyException && mode != ast.Slice1 {
		r.Report(errors.New(errors.Error, errors.NotSupportedInCompilationMode, op.IdentifierSpan(),
			"'throws AnyException' is only supported in Slice1 mode"))
	}
	for _, tr := range op.Throws {
		set := memberEncodings(tr, false, r)
		if !set.Has(mode) {
			r.Report(errors.New(errors.Error, errors.UnsupportedType, tr.Span(),
				"exception %q is not supported in %s mode", tr.Name, mode))
		}
	}
}
