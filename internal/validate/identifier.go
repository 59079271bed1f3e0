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

// IdentifierValidator detects shadowing of inherited members.
// Redefinitions are reported earlier, at
// registration time, by the Store itself (internal/ast/store.go) since
// that is where a colliding name is first discovered; this pass only adds
// the inheritance-aware shadowing check, which needs base references
// already patched.
type IdentifierValidator struct {
	ast.NoopVisitor
	R *errors.Reporter
}

func (v *IdentifierValidator) VisitClass(c *ast.Class) {
	base := c.Base()
	if base == nil {
		return
	}
	inherited := map[string]*ast.Field{}
	for _, f := range base.AllFields() {
		inherited[f.Identifier()] = f
	}
	for _, f := range c.FieldList {
		if prior, ok := inherited[f.Identifier()]; ok {
			v.report(f, prior)
		}
	}
}

func (v *IdentifierValidator) VisitException(e *ast.Exception) {
	base := e.Base()
	if base == nil {
		return
	}
	inherited := map[string]*ast.Field{}
	for _, f := range base.AllFields() {
		inherited[f.Identifier()] = f
	}
	for _, f := range e.FieldList {
		if prior, ok := inherited[f.Identifier()]; ok {
			v.report(f, prior)
		}
	}
}

func (v *IdentifierValidator) VisitInterface(i *ast.Interface) {
	inherited := map[string]*ast.Operation{}
	for _, base := range i.Bases() {
		for _, op := range base.AllOperations() {
			inherited[op.Identifier()] = op
		}
	}
	for _, op := range i.Ops {
		if prior, ok := inherited[op.Identifier()]; ok {
			v.report(op, prior)
		}
	}
}

func (v *IdentifierValidator) report(shadowing, shadowed ast.HasIdentifier) {
	v.R.Report(errors.New(errors.Error, errors.ShadowedMember, shadowing.IdentifierSpan(),
		"%q shadows an inherited member of the same name", shadowing.Identifier()).
		WithNote(shadowed.IdentifierSpan(), "the inherited member is defined here"))
}
