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

// PrimitiveKind enumerates the sixteen-plus-one closed, bit-exact
// primitive set.
type PrimitiveKind int

const (
	Bool PrimitiveKind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	VarInt32
	VarUint32
	VarInt62
	VarUint62
	Float32
	Float64
	StringKind
	// AnyClassKind is the seventeenth primitive, Slice1 only.
	AnyClassKind
)

var primitiveNames = map[PrimitiveKind]string{
	Bool:         "bool",
	Int8:         "int8",
	Uint8:        "uint8",
	Int16:        "int16",
	Uint16:       "uint16",
	Int32:        "int32",
	Uint32:       "uint32",
	Int64:        "int64",
	Uint64:       "uint64",
	VarInt32:     "varint32",
	VarUint32:    "varuint32",
	VarInt62:     "varint62",
	VarUint62:    "varuint62",
	Float32:      "float32",
	Float64:      "float64",
	StringKind:   "string",
	AnyClassKind: "AnyClass",
}

// PrimitiveKindByName is the reverse lookup used by the type-reference
// patcher to classify a textual name as a primitive keyword. It is built
// once, at package initialization, from primitiveNames so the two stay in
// sync automatically.
var PrimitiveKindByName = func() map[string]PrimitiveKind {
	m := make(map[string]PrimitiveKind, len(primitiveNames))
	for k, v := range primitiveNames {
		m[v] = k
	}
	return m
}()

// Primitive is an interned, shared AST node for one of the fixed
// primitive keywords, installed once per kind.
// Unlike every other Type, a Primitive has no owning File or module scope:
// it is the same node wherever it is referenced, across every file.
type Primitive struct {
	Base
	Kind PrimitiveKind
	Enc  EncodingCache
}

// Identifier returns the primitive's keyword spelling, e.g. "int32".
func (p *Primitive) Identifier() string { return primitiveNames[p.Kind] }

func (p *Primitive) EncodingCache() *EncodingCache { return &p.Enc }
func (p *Primitive) typeNode()                     {}
