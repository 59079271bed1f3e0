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

// Package compile implements phases 2-4 of the pipeline:
// scope/identifier resolution, type-reference patching, and
// supported-encoding computation. Phase 1 (parsing) lives in package
// parser; phase 5 (validation) lives in package validate.
//
// A small scope-stack "compiler" struct walks the raw AST once,
// installing every declaration into a shared index as it descends,
// threading the two parallel scopes (module scope and parser scope) a
// Slice entity carries.
package compile

import (
	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// ResolveScopes walks every file's top-level modules, assigning each
// entity its fully qualified module scope and parser scope,
// registering it into store, and installing the file itself. It is safe to
// call once per compilation, after every file has been parsed.
func ResolveScopes(store *ast.Store, files []*ast.File, r *errors.Reporter) {
	for _, f := range files {
		for _, m := range f.TopLevelModules {
			resolveModule(m, "", "", f, store, r)
		}
		store.InstallFile(f)
	}
}

func resolveModule(m *ast.Module, modScope, parScope string, f *ast.File, store *ast.Store, r *errors.Reporter) {
	m.ModScope = modScope
	m.ParScope = parScope
	m.Fil = f
	store.RegisterEntity(parScope, m, r)

	childModScope := qualify(modScope, m.Ident)
	childParScope := qualify(parScope, m.Ident)
	r.SetParentScope(errors.Scope(childParScope), errors.Scope(parScope))
	for _, decl := range m.Decls {
		resolveDefinition(decl, childModScope, childParScope, f, store, r)
	}
}

func resolveDefinition(def ast.Definition, modScope, parScope string, f *ast.File, store *ast.Store, r *errors.Reporter) {
	switch n := def.(type) {
	case *ast.Module:
		resolveModule(n, modScope, parScope, f, store, r)
		return
	case *ast.Struct:
		setScope(&n.EntityBase, modScope, parScope, f)
		store.RegisterType(modScope, n, r)
		store.RegisterEntity(parScope, n, r)
		childPar := qualify(parScope, n.Ident)
		r.SetParentScope(errors.Scope(childPar), errors.Scope(parScope))
		for _, field := range n.FieldList {
			resolveField(field, modScope, childPar, f, store, r)
		}
	case *ast.Class:
		setScope(&n.EntityBase, modScope, parScope, f)
		store.RegisterType(modScope, n, r)
		store.RegisterEntity(parScope, n, r)
		if n.BaseRef != nil {
			setTypeRefScope(n.BaseRef, modScope, store)
		}
		childPar := qualify(parScope, n.Ident)
		r.SetParentScope(errors.Scope(childPar), errors.Scope(parScope))
		for _, field := range n.FieldList {
			resolveField(field, modScope, childPar, f, store, r)
		}
	case *ast.Exception:
		setScope(&n.EntityBase, modScope, parScope, f)
		store.RegisterType(modScope, n, r)
		store.RegisterEntity(parScope, n, r)
		if n.BaseRef != nil {
			setTypeRefScope(n.BaseRef, modScope, store)
		}
		childPar := qualify(parScope, n.Ident)
		r.SetParentScope(errors.Scope(childPar), errors.Scope(parScope))
		for _, field := range n.FieldList {
			resolveField(field, modScope, childPar, f, store, r)
		}
	case *ast.Interface:
		setScope(&n.EntityBase, modScope, parScope, f)
		store.RegisterType(modScope, n, r)
		store.RegisterEntity(parScope, n, r)
		for _, base := range n.BaseRefs {
			setTypeRefScope(base, modScope, store)
		}
		childPar := qualify(parScope, n.Ident)
		r.SetParentScope(errors.Scope(childPar), errors.Scope(parScope))
		for _, op := range n.Ops {
			resolveOperation(op, modScope, childPar, f, store, r)
		}
	case *ast.Enum:
		setScope(&n.EntityBase, modScope, parScope, f)
		store.RegisterType(modScope, n, r)
		store.RegisterEntity(parScope, n, r)
		if n.Underlying != nil {
			setTypeRefScope(n.Underlying, modScope, store)
		}
		childPar := qualify(parScope, n.Ident)
		r.SetParentScope(errors.Scope(childPar), errors.Scope(parScope))
		for _, enumerator := range n.Enumerators {
			setScope(&enumerator.EntityBase, modScope, childPar, f)
			store.RegisterEntity(childPar, enumerator, r)
		}
	case *ast.TypeAlias:
		setScope(&n.EntityBase, modScope, parScope, f)
		store.RegisterType(modScope, n, r)
		store.RegisterEntity(parScope, n, r)
		if n.Underlying != nil {
			setTypeRefScope(n.Underlying, modScope, store)
		}
	case *ast.CustomType:
		setScope(&n.EntityBase, modScope, parScope, f)
		store.RegisterType(modScope, n, r)
		store.RegisterEntity(parScope, n, r)
	}
}

func resolveOperation(op *ast.Operation, modScope, parScope string, f *ast.File, store *ast.Store, r *errors.Reporter) {
	op.ModScope = modScope
	op.ParScope = parScope
	op.Fil = f
	store.RegisterEntity(parScope, op, r)

	childPar := qualify(parScope, op.Ident)
	r.SetParentScope(errors.Scope(childPar), errors.Scope(parScope))
	for _, tr := range op.Throws {
		setTypeRefScope(tr, modScope, store)
	}
	for _, p := range op.Params {
		resolveParameter(p, modScope, childPar, f, store, r)
	}
	for _, p := range op.ReturnMembers {
		resolveParameter(p, modScope, childPar, f, store, r)
	}
}

func resolveField(field *ast.Field, modScope, parScope string, f *ast.File, store *ast.Store, r *errors.Reporter) {
	setScope(&field.EntityBase, modScope, parScope, f)
	store.RegisterEntity(parScope, field, r)
	setTypeRefScope(field.Type, modScope, store)
}

func resolveParameter(p *ast.Parameter, modScope, parScope string, f *ast.File, store *ast.Store, r *errors.Reporter) {
	setScope(&p.EntityBase, modScope, parScope, f)
	store.RegisterEntity(parScope, p, r)
	setTypeRefScope(p.Type, modScope, store)
}

// setTypeRefScope records the lexical module scope a TypeRef was written
// in (lookup-by-scope begins from this scope), and for an inline
// sequence/dictionary literal, recurses into its element/key/value
// references and installs the literal as an anonymous type.
func setTypeRefScope(ref *ast.TypeRef, modScope string, store *ast.Store) {
	if ref == nil {
		return
	}
	ref.LexicalScope = modScope
	switch inline := ref.Inline.(type) {
	case *ast.Sequence:
		store.AddAnonymousType(inline)
		setTypeRefScope(inline.Element, modScope, store)
	case *ast.Dictionary:
		store.AddAnonymousType(inline)
		setTypeRefScope(inline.Key, modScope, store)
		setTypeRefScope(inline.Value, modScope, store)
	}
}

func setScope(e *ast.EntityBase, modScope, parScope string, f *ast.File) {
	e.ModScope = modScope
	e.ParScope = parScope
	e.Fil = f
}

func qualify(scope, ident string) string {
	if scope == "" {
		return ident
	}
	return scope + "::" + ident
}
