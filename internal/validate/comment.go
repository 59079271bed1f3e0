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

package validate

import (
	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// CommentValidator cross-checks a doc comment's structured sections
// against the entity it is attached to ("Comment
// validator"): `@param` names must name an actual parameter, `@return`
// only makes sense on an operation with a return value, `@throws` must
// name something the operation can actually throw, and every `@see`/
// `@throws` cross-reference must resolve to a real entity.
type CommentValidator struct {
	ast.NoopVisitor
	Store *ast.Store
	R     *errors.Reporter
}

// Run checks every doc comment in the store, including ones attached to
// entities the Visitor walk doesn't reach on its own (modules, enumerators
// reached indirectly, etc.) - it iterates every registered entity directly
// rather than relying on the visitor hooks below.
func (v *CommentValidator) Run() {
	for _, e := range v.Store.IterateEntities() {
		v.checkComment(e, e.Comment())
		if op, ok := e.(*ast.Operation); ok {
			v.VisitOperation(op)
		}
	}
}

func (v *CommentValidator) VisitOperation(op *ast.Operation) {
	c := op.Comment()
	if c == nil {
		return
	}
	paramNames := map[string]bool{}
	for _, p := range op.Params {
		paramNames[p.Identifier()] = true
	}
	for _, dp := range c.Params {
		if !paramNames[dp.Name] {
			v.R.Report(errors.New(errors.Error, errors.CommentParamDoesNotExist, dp.Span(),
				"comment refers to parameter %q, but %q has no such parameter", dp.Name, op.Identifier()))
		}
	}
	if len(c.Returns) > 0 && len(op.ReturnMembers) == 0 {
		v.R.Report(errors.New(errors.Error, errors.CommentReturnsOnVoidOperation, op.IdentifierSpan(),
			"comment has a @return section, but %q does not return a value", op.Identifier()))
	}
	for _, dt := range c.Throws {
		if !v.throwable(op, dt) {
			v.R.Report(errors.New(errors.Error, errors.CommentThrowsMismatch, dt.Span(),
				"comment documents throwing %q, but %q cannot throw it", dt.ExceptionRef.Name, op.Identifier()))
		}
	}
}

// throwable reports whether dt names something op's throws clause
// actually lists, preferring the resolved entity (so aliases and
// qualified/unqualified spellings of the same exception match) and
// falling back to the as-written name when resolution failed.
func (v *CommentValidator) throwable(op *ast.Operation, dt ast.DocThrows) bool {
	if op.AnyException {
		return true
	}
	for _, tr := range op.Throws {
		if dt.ExceptionRef.Resolution != nil && tr.Definition == dt.ExceptionRef.Resolution {
			return true
		}
		if tr.Name == dt.ExceptionRef.Name {
			return true
		}
	}
	return false
}

// checkComment validates the parts of a doc comment common to every kind
// of commented entity, independent of what the entity is.
func (v *CommentValidator) checkComment(owner ast.Entity, c *ast.DocComment) {
	if c == nil {
		return
	}
	for _, ref := range c.SeeAlso {
		v.checkLink(ref)
	}
	for _, dt := range c.Throws {
		v.checkLink(dt.ExceptionRef)
	}
}

func (v *CommentValidator) checkLink(ref *ast.EntityRef) {
	if ref == nil || ref.Resolution != nil {
		return
	}
	v.R.Report(errors.New(errors.Error, errors.CommentLinkDoesNotResolve, ref.Span(),
		"comment reference to %q does not resolve to a known entity", ref.Name))
}
