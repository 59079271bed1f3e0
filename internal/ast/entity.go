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

import "github.com/InsertCreativityHere/slicec-go/internal/token"

// EntityBase is embedded by every named, scoped AST node. It is filled in
// by the scope resolver ("Record the entity's fully
// qualified parser scope and module scope onto the entity").
type EntityBase struct {
	Base
	Ident      string
	IdentSpan  token.Span
	ModScope   string
	ParScope   string
	Attrs      Attributes
	DocComment_ *DocComment
	Fil        *File
}

func (e *EntityBase) Identifier() string          { return e.Ident }
func (e *EntityBase) IdentifierSpan() token.Span   { return e.IdentSpan }
func (e *EntityBase) ModuleScope() string          { return e.ModScope }
func (e *EntityBase) ParserScope() string          { return e.ParScope }
func (e *EntityBase) Attributes() *Attributes      { return &e.Attrs }
func (e *EntityBase) Comment() *DocComment         { return e.DocComment_ }
func (e *EntityBase) SetComment(c *DocComment)     { e.DocComment_ = c }
func (e *EntityBase) File() *File                  { return e.Fil }
func (e *EntityBase) entityNode()                  {}

// TypeEntityBase is embedded by every named Entity that is also a Type:
// Struct, Class, Exception, Interface, Enum, TypeAlias, CustomType.
type TypeEntityBase struct {
	EntityBase
	Enc EncodingCache
}

func (e *TypeEntityBase) EncodingCache() *EncodingCache { return &e.Enc }
func (e *TypeEntityBase) typeNode()                     {}

// MemberBase is embedded by Field and Parameter: typed, optionally tagged
// children of an aggregate or operation.
type MemberBase struct {
	EntityBase
	Type *TypeRef
	TagValue *int
}

func (m *MemberBase) TypeReference() *TypeRef { return m.Type }
func (m *MemberBase) Tag() *int                { return m.TagValue }
func (m *MemberBase) memberNode()              {}
