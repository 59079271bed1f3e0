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

// Visitor implements one hook per entity kind: a read-only,
// double-dispatch traversal with no state of its own. Validators and
// other passes carry their own state (typically a diagnostic reporter) by
// embedding a concrete struct that implements Visitor.
type Visitor interface {
	VisitModule(*Module)
	VisitStruct(*Struct)
	VisitClass(*Class)
	VisitException(*Exception)
	VisitInterface(*Interface)
	VisitOperation(*Operation)
	VisitParameter(*Parameter)
	VisitField(*Field)
	VisitEnum(*Enum)
	VisitEnumerator(*Enumerator)
	VisitTypeAlias(*TypeAlias)
	VisitCustomType(*CustomType)
}

// NoopVisitor implements Visitor with every hook a no-op, so a pass can
// embed it and override only the hooks it cares about.
type NoopVisitor struct{}

func (NoopVisitor) VisitModule(*Module)           {}
func (NoopVisitor) VisitStruct(*Struct)           {}
func (NoopVisitor) VisitClass(*Class)             {}
func (NoopVisitor) VisitException(*Exception)     {}
func (NoopVisitor) VisitInterface(*Interface)     {}
func (NoopVisitor) VisitOperation(*Operation)     {}
func (NoopVisitor) VisitParameter(*Parameter)     {}
func (NoopVisitor) VisitField(*Field)             {}
func (NoopVisitor) VisitEnum(*Enum)               {}
func (NoopVisitor) VisitEnumerator(*Enumerator)   {}
func (NoopVisitor) VisitTypeAlias(*TypeAlias)     {}
func (NoopVisitor) VisitCustomType(*CustomType)   {}

// Walk traverses def and its descendants depth-first, in definition order
//, invoking the matching hook on v for every entity
// encountered. Containers descend into their children automatically; the
// visitor only needs to implement the hooks it cares about.
func Walk(def Definition, v Visitor) {
	switch n := def.(type) {
	case *Module:
		v.VisitModule(n)
		for _, child := range n.Decls {
			Walk(child, v)
		}
	case *Struct:
		v.VisitStruct(n)
		for _, f := range n.FieldList {
			v.VisitField(f)
		}
	case *Class:
		v.VisitClass(n)
		for _, f := range n.FieldList {
			v.VisitField(f)
		}
	case *Exception:
		v.VisitException(n)
		for _, f := range n.FieldList {
			v.VisitField(f)
		}
	case *Interface:
		v.VisitInterface(n)
		for _, op := range n.Ops {
			v.VisitOperation(op)
			for _, p := range op.Params {
				v.VisitParameter(p)
			}
			for _, p := range op.ReturnMembers {
				v.VisitParameter(p)
			}
		}
	case *Enum:
		v.VisitEnum(n)
		for _, e := range n.Enumerators {
			v.VisitEnumerator(e)
		}
	case *TypeAlias:
		v.VisitTypeAlias(n)
	case *CustomType:
		v.VisitCustomType(n)
	}
}

// WalkAll walks every top-level module of a file and its descendants.
func WalkAll(modules []*Module, v Visitor) {
	for _, m := range modules {
		Walk(m, v)
	}
}
