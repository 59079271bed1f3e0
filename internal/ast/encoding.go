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

// CompilationMode identifies one of the two wire-encoding modes a Slice
// file may declare. It reuses the same bit values as EncodingSet so a
// mode can be tested directly against a type's computed set.
type CompilationMode uint8

const (
	// Slice1 is the legacy encoding: classes, AnyClass, exception
	// inheritance, implicit int32 enum underlying type.
	Slice1 CompilationMode = 1 << iota
	// Slice2 is the current encoding: no classes, explicit enum
	// underlying types, streamed parameters.
	Slice2
)

func (m CompilationMode) String() string {
	switch m {
	case Slice1:
		return "Slice1"
	case Slice2:
		return "Slice2"
	default:
		return "Unknown"
	}
}

// EncodingSet is a subset of {Slice1, Slice2}: the set of modes a type can
// be used under.
type EncodingSet uint8

// AllEncodings is the "supports everything" dummy value inserted while a
// type's encodings are being computed, to break cycles and suppress
// cascading errors after a root failure.
const AllEncodings EncodingSet = EncodingSet(Slice1) | EncodingSet(Slice2)

// NoEncodings is the empty set.
const NoEncodings EncodingSet = 0

// Has reports whether mode is a member of the set.
func (s EncodingSet) Has(mode CompilationMode) bool { return s&EncodingSet(mode) != 0 }

// Without returns the set with mode removed.
func (s EncodingSet) Without(mode CompilationMode) EncodingSet { return s &^ EncodingSet(mode) }

// With returns the set with mode added.
func (s EncodingSet) With(mode CompilationMode) EncodingSet { return s | EncodingSet(mode) }

// Intersect returns the intersection of s and other.
func (s EncodingSet) Intersect(other EncodingSet) EncodingSet { return s & other }

// Empty reports whether the set has no members; a non-empty
// SupportedEncodings is required of every entity.
func (s EncodingSet) Empty() bool { return s == 0 }

func (s EncodingSet) String() string {
	switch s {
	case NoEncodings:
		return "{}"
	case EncodingSet(Slice1):
		return "{Slice1}"
	case EncodingSet(Slice2):
		return "{Slice2}"
	case AllEncodings:
		return "{Slice1, Slice2}"
	default:
		return "{?}"
	}
}

// EncodingCache is the per-type memoization slot for supported-encodings
// computation. Computing is set for the duration of the
// recursive computation for this type, so that a self-reference (e.g. a
// class field referencing its own class) observes AllEncodings instead of
// recursing forever; Done marks that Set holds the final answer.
type EncodingCache struct {
	Computing bool
	Done      bool
	Set       EncodingSet
}
