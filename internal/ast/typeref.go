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

// TypeRef is a *use site* of a type: it stores the textual
// name and lexical scope the parser saw, plus a Definition link the
// type-reference patcher fills in. Every TypeRef in a fully
// patched AST must have Definition set.
type TypeRef struct {
	Base

	// Name is the textual type name as written at the use site, e.g.
	// "int32" or "::A::P" or "B::Q". Empty when Inline is set.
	Name string

	// LexicalScope is the module scope the reference was written in,
	// i.e. the module scope of the entity/container that contains this
	// use site. Lookup walks up from here.
	LexicalScope string

	Optional bool
	Streamed bool

	Attrs Attributes

	// Inline holds a Sequence or Dictionary literal constructed directly
	// at this use site ("sequence<T>", "dictionary<K, V>"); such
	// anonymous types are installed into the AST store under their
	// defining use rather than a name table.
	Inline Type

	// Definition is the resolved target. Nil until the patcher runs, or
	// if resolution failed (in which case a DoesNotExist diagnostic has
	// already been reported).
	Definition Type
}

// IsPatched reports whether this reference has been bound to a concrete
// type; it is false before patching and after a failed resolution.
func (t *TypeRef) IsPatched() bool { return t.Definition != nil }

func (t *TypeRef) Attributes() *Attributes { return &t.Attrs }
