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
	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// PatchTypeRefs resolves every TypeRef's Definition link.
// It must run after ResolveScopes has registered every named type and
// assigned every TypeRef its LexicalScope. Ordering among references does
// not matter ("never depends on the target's own patched
// state"), so a single linear pass over every registered entity's type
// references is sufficient.
func PatchTypeRefs(store *ast.Store, r *errors.Reporter) {
	for _, e := range store.IterateEntities() {
		switch n := e.(type) {
		case *ast.Class:
			patchRef(n.BaseRef, store, r)
			for _, field := range n.FieldList {
				patchRef(field.Type, store, r)
			}
		case *ast.Exception:
			patchRef(n.BaseRef, store, r)
			for _, field := range n.FieldList {
				patchRef(field.Type, store, r)
			}
		case *ast.Struct:
			for _, field := range n.FieldList {
				patchRef(field.Type, store, r)
			}
		case *ast.Interface:
			for _, base := range n.BaseRefs {
				patchRef(base, store, r)
			}
		case *ast.Operation:
			for _, tr := range n.Throws {
				patchRef(tr, store, r)
			}
			for _, p := range n.Params {
				patchRef(p.Type, store, r)
			}
			for _, p := range n.ReturnMembers {
				patchRef(p.Type, store, r)
			}
		case *ast.Enum:
			patchRef(n.Underlying, store, r)
		case *ast.TypeAlias:
			patchRef(n.Underlying, store, r)
		}
		patchComment(e, store)
	}
}

// patchComment resolves the EntityRef links inside e's doc comment, if any
// (the `@throws` and `@see` cross-references), against e's own
// parser scope. Unlike patchRef, a dangling EntityRef is not an error here:
// the comment validator (package validate) is what decides whether an
// unresolved reference is worth reporting.
func patchComment(e ast.Entity, store *ast.Store) {
	c := e.Comment()
	if c == nil {
		return
	}
	for i := range c.Throws {
		patchEntityRef(c.Throws[i].ExceptionRef, e.ParserScope(), store)
	}
	for _, ref := range c.SeeAlso {
		patchEntityRef(ref, e.ParserScope(), store)
	}
}

func patchEntityRef(ref *ast.EntityRef, fromScope string, store *ast.Store) {
	if ref == nil || ref.Resolution != nil {
		return
	}
	if ent, ok := store.LookupEntity(ref.Name, fromScope); ok {
		ref.Resolution = ent
	}
}

// patchRef classifies and resolves one TypeRef: primitive
// keyword, inline sequence/dictionary literal (recursively patched), or a
// named lookup starting from the reference's lexical module scope.
func patchRef(ref *ast.TypeRef, store *ast.Store, r *errors.Reporter) {
	if ref == nil || ref.IsPatched() {
		return
	}
	if seq, ok := ref.Inline.(*ast.Sequence); ok {
		patchRef(seq.Element, store, r)
		ref.Definition = seq
		return
	}
	if dict, ok := ref.Inline.(*ast.Dictionary); ok {
		patchRef(dict.Key, store, r)
		patchRef(dict.Value, store, r)
		ref.Definition = dict
		return
	}
	if prim, ok := store.PrimitiveByName(ref.Name); ok {
		ref.Definition = prim
		return
	}
	if t, ok := store.LookupType(ref.Name, ref.LexicalScope); ok {
		ref.Definition = t
		return
	}
	r.Report(errors.New(errors.Error, errors.DoesNotExist, ref.Span(),
		"no type named %q exists in scope %q", ref.Name, ref.LexicalScope))
}
