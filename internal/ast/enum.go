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

// Enumerator is a named member of an Enum with an explicit or
// auto-assigned integer value.
type Enumerator struct {
	EntityBase
	// Value is nil until the enum validator assigns an auto-incremented
	// value; ExplicitValue records whether the source text gave one
	// explicitly, which matters for the
	// "auto-assigned values continue from the previous enumerator"
	// semantics.
	Value         *int64
	ExplicitValue bool
}

// Enum is a named set of integral enumerators; it may
// declare an underlying integral type and may be "unchecked".
type Enum struct {
	TypeEntityBase
	Underlying  *TypeRef // nil if no underlying type was declared
	Unchecked   bool
	Enumerators []*Enumerator
}

func (e *Enum) Contents() []*Enumerator { return e.Enumerators }
func (e *Enum) definitionNode()         {}
