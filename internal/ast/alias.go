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

// TypeAlias is a named alias for an underlying type reference. Aliasing
// an optional type is forbidden.
type TypeAlias struct {
	TypeEntityBase
	Underlying *TypeRef
}

func (t *TypeAlias) definitionNode() {}

// CustomType is a named opaque type bound externally to a target-language
// type; it carries no Slice-visible structure, so it
// supports every encoding unconditionally.
type CustomType struct {
	TypeEntityBase
}

func (c *CustomType) definitionNode() {}
