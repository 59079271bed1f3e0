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

// Sequence is an anonymous container type: an element type reference.
// Sequences appear inline at use sites and are installed in the AST
// store alongside their defining TypeRef, not in a name table.
type Sequence struct {
	Base
	Enc     EncodingCache
	Element *TypeRef
}

func (s *Sequence) EncodingCache() *EncodingCache { return &s.Enc }
func (s *Sequence) typeNode()                     {}

// Dictionary is an anonymous container type: a key type and a value type
// reference.
type Dictionary struct {
	Base
	Enc   EncodingCache
	Key   *TypeRef
	Value *TypeRef
}

func (d *Dictionary) EncodingCache() *EncodingCache { return &d.Enc }
func (d *Dictionary) typeNode()                     {}
