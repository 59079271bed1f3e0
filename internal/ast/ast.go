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

// Package ast defines the compiler's Abstract Syntax Tree: the graph of
// nodes produced by the parser collaborator and progressively linked and
// validated by the phases in package compile and package validate.
//
// The AST exclusively owns every node: nodes are plain Go
// values reachable only through the tree/graph itself or through the
// lookup tables in a Store (store.go). Every cross-node reference --
// TypeRef.Definition, Class.BaseRef, Interface's base interfaces -- is a
// plain pointer, safe to follow for as long as the AST is reachable, with
// no ownership implied; Go's garbage collector is what makes this safe
// without any arena/handle indirection.
//
// Node kinds share behavior through capability interfaces
// (Node / HasIdentifier / HasScope / HasAttributes) rather than a single
// monolithic base type, so a validator can depend on just the capability
// it needs.
package ast

import "github.com/InsertCreativityHere/slicec-go/internal/token"

// Node is implemented by every AST node; it is the "HasSpan" capability
// every node carries.
type Node interface {
	Span() token.Span
}

// HasIdentifier is implemented by every named node.
type HasIdentifier interface {
	Node
	Identifier() string
	IdentifierSpan() token.Span
}

// HasScope is implemented by every Entity: the two parallel scopes
// (module scope and parser scope) it carries.
type HasScope interface {
	// ModuleScope is the dotted path of enclosing modules only.
	ModuleScope() string
	// ParserScope is the dotted path of all enclosing entities.
	ParserScope() string
}

// HasAttributes is implemented by every node that can carry attributes.
type HasAttributes interface {
	Attributes() *Attributes
}

// HasComment is implemented by every node that can carry a doc comment.
type HasComment interface {
	Comment() *DocComment
}

// Entity is any named, attributable, commentable, scoped AST node.
type Entity interface {
	HasIdentifier
	HasScope
	HasAttributes
	HasComment
	File() *File
	entityNode()
}

// Type is anything usable as a TypeRef target: entities that are types,
// plus Primitive, Sequence and Dictionary.
type Type interface {
	Node
	EncodingCache() *EncodingCache
	typeNode()
}

// Definition is anything that can appear directly inside a Module: nested
// modules and every user-defined type.
type Definition interface {
	Entity
	definitionNode()
}

// Member is a typed child of an aggregate or operation: Field or
// Parameter.
type Member interface {
	Entity
	TypeReference() *TypeRef
	Tag() *int
	memberNode()
}

// IsContainer is implemented by every aggregate with an ordered list of
// typed children of kind T. Children must be visited in definition order.
type IsContainer[T Node] interface {
	Contents() []T
}

// Base is embedded by every node to provide its source span.
type Base struct {
	span token.Span
}

// NewBase constructs a Base carrying the given span.
func NewBase(span token.Span) Base { return Base{span: span} }

// Span returns the node's source span.
func (b *Base) Span() token.Span { return b.span }

// SetSpan is used by the parser while building nodes incrementally (e.g.
// extending a span to cover a closing brace discovered later).
func (b *Base) SetSpan(span token.Span) { b.span = span }
