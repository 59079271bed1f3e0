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

// Field is a typed member of a Struct, Class or Exception.
type Field struct {
	MemberBase
}

// Struct is an aggregate value type. Compact structs use
// positional, non-tagged encoding.
type Struct struct {
	TypeEntityBase
	IsCompact bool
	FieldList []*Field
}

func (s *Struct) Contents() []*Field { return s.FieldList }
func (s *Struct) Fields() []*Field   { return s.FieldList }

// AllFields returns own fields; structs do not inherit (only
// Class/Exception/Interface support inheritance).
func (s *Struct) AllFields() []*Field { return s.FieldList }
func (s *Struct) definitionNode()     {}

// Class is an aggregate reference type, Slice1 only. It may
// extend one other Class.
type Class struct {
	TypeEntityBase
	BaseRef   *TypeRef // nil if no base class
	FieldList []*Field
}

func (c *Class) Contents() []*Field { return c.FieldList }
func (c *Class) Fields() []*Field   { return c.FieldList }

// Base returns the resolved base class, or nil if there is none or the
// base reference has not been patched yet.
func (c *Class) Base() *Class {
	if c.BaseRef == nil || c.BaseRef.Definition == nil {
		return nil
	}
	base, _ := c.BaseRef.Definition.(*Class)
	return base
}

// AllFields returns inherited fields (base-first) followed by this
// class's own fields, per the "intersect over all fields
// (including inherited)".
func (c *Class) AllFields() []*Field {
	if base := c.Base(); base != nil {
		return append(append([]*Field{}, base.AllFields()...), c.FieldList...)
	}
	return c.FieldList
}

func (c *Class) definitionNode() {}

// Exception is an aggregate used as a thrown type. It may
// extend one other Exception, Slice1 only.
type Exception struct {
	TypeEntityBase
	BaseRef   *TypeRef // nil if no base exception
	FieldList []*Field
}

func (e *Exception) Contents() []*Field { return e.FieldList }
func (e *Exception) Fields() []*Field   { return e.FieldList }

// Base returns the resolved base exception, or nil.
func (e *Exception) Base() *Exception {
	if e.BaseRef == nil || e.BaseRef.Definition == nil {
		return nil
	}
	base, _ := e.BaseRef.Definition.(*Exception)
	return base
}

// AllFields returns inherited fields (base-first) followed by this
// exception's own fields.
func (e *Exception) AllFields() []*Field {
	if base := e.Base(); base != nil {
		return append(append([]*Field{}, base.AllFields()...), e.FieldList...)
	}
	return e.FieldList
}

func (e *Exception) definitionNode() {}
