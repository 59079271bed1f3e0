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

const maxTagValue = 1<<31 - 1

// TagValidator checks tag-value bounds and uniqueness, that tagged members
// are optional and class-free, and that required operation parameters
// precede tagged ones ("Tag validator").
type TagValidator struct {
	ast.NoopVisitor
	R *errors.Reporter
}

func (v *TagValidator) VisitStruct(s *ast.Struct)       { v.checkMembers(memberList(s.FieldList), false) }
func (v *TagValidator) VisitClass(c *ast.Class)         { v.checkMembers(memberList(c.FieldList), false) }
func (v *TagValidator) VisitException(e *ast.Exception) { v.checkMembers(memberList(e.FieldList), false) }

func (v *TagValidator) VisitOperation(op *ast.Operation) {
	v.checkMembers(paramList(op.Params), true)
	v.checkMembers(paramList(op.ReturnMembers), true)
}

func memberList(fields []*ast.Field) []ast.Member {
	out := make([]ast.Member, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

func paramList(params []*ast.Parameter) []ast.Member {
	out := make([]ast.Member, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}

func (v *TagValidator) checkMembers(members []ast.Member, isOperationSignature bool) {
	seen := map[int]ast.Member{}
	sawTagged := false
	for _, m := range members {
		tag := m.Tag()
		if tag == nil {
			if isOperationSignature && sawTagged {
				v.R.Report(errors.New(errors.Error, errors.RequiredMustPrecedeTagged, m.IdentifierSpan(),
					"required parameter %q must precede tagged parameters", m.Identifier()))
			}
			continue
		}
		sawTagged = true
		if *tag < 0 || *tag > maxTagValue {
			v.R.Report(errors.New(errors.Error, errors.TagValueOutOfBounds, m.IdentifierSpan(),
				"tag value %d is out of bounds", *tag))
		}
		if prior, ok := seen[*tag]; ok {
			v.R.Report(errors.New(errors.Error, errors.CannotHaveDuplicateTag, m.IdentifierSpan(),
				"tag %d duplicates the tag used by %q", *tag, prior.Identifier()).
				WithNote(prior.IdentifierSpan(), "%q uses this tag here", prior.Identifier()))
		} else {
			seen[*tag] = m
		}
		ref := m.TypeReference()
		if ref != nil && !ref.Optional {
			v.R.Report(errors.New(errors.Error, errors.TaggedMemberMustBeOptional, m.IdentifierSpan(),
				"tagged member %q must be optional", m.Identifier()))
		}
		if ref != nil && ref.Definition != nil {
			if isClass(ref.Definition) {
				v.R.Report(errors.New(errors.Error, errors.CannotTagClass, m.IdentifierSpan(),
					"tagged member %q cannot be a class", m.Identifier()))
			} else if containsClass(ref.Definition, map[ast.Type]bool{}) {
				v.R.Report(errors.New(errors.Error, errors.CannotTagContainingClass, m.IdentifierSpan(),
					"tagged member %q cannot contain a class", m.Identifier()))
			}
		}
	}
}

func isClass(t ast.Type) bool {
	_, ok := t.(*ast.Class)
	return ok
}

// containsClass reports whether t transitively contains a class field,
// recursing through structs only (sequences/dictionaries/classes
// themselves are reference-like indirection and do not propagate the
// restriction further, except that an empty class is explicitly
// permitted.
func containsClass(t ast.Type, visited map[ast.Type]bool) bool {
	if visited[t] {
		return false
	}
	visited[t] = true
	switch n := t.(type) {
	case *ast.Class:
		return len(n.AllFields()) > 0
	case *ast.Struct:
		for _, f := range n.FieldList {
			if f.Type == nil || f.Type.Definition == nil {
				continue
			}
			if isClass(f.Type.Definition) || containsClass(f.Type.Definition, visited) {
				return true
			}
		}
	}
	return false
}
