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

package validate

import (
	"testing"

	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

func TestEnumValidator_EmptyCheckedEnumRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    enum Color: uint8 {}
}
`)
	ast.WalkAll(store.TopLevelModules, &EnumValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.MustContainEnumerators {
		t.Fatalf("got %v, want [MustContainEnumerators]", got)
	}
}

func TestEnumValidator_EmptyUncheckedEnumAllowed(t *testing.T) {
	store, r := linked(t, `
module M
{
    unchecked enum Color: uint8 {}
}
`)
	ast.WalkAll(store.TopLevelModules, &EnumValidator{R: r})
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestEnumValidator_OutOfBoundsValueRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    enum Color: uint8 { Red = 300 }
}
`)
	ast.WalkAll(store.TopLevelModules, &EnumValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.EnumeratorValueOutOfBounds {
		t.Fatalf("got %v, want [EnumeratorValueOutOfBounds]", got)
	}
}

func TestEnumValidator_DuplicateValueRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    enum Color: uint8 { Red = 1, Green = 1 }
}
`)
	ast.WalkAll(store.TopLevelModules, &EnumValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.DuplicateEnumeratorValue {
		t.Fatalf("got %v, want [DuplicateEnumeratorValue]", got)
	}
	if len(r.Diagnostics()[0].Notes) != 1 {
		t.Fatalf("expected a note pointing at the first use of the value")
	}
}

func TestEnumValidator_ImplicitValuesIncrementFromPriorExplicit(t *testing.T) {
	store, r := linked(t, `
module M
{
    enum Color: uint8 { Red = 5, Green, Blue }
}
`)
	ast.WalkAll(store.TopLevelModules, &EnumValidator{R: r})
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}

	e, _ := store.LookupType("M::Color", "")
	enumerators := e.(*ast.Enum).Enumerators
	want := []int64{5, 6, 7}
	for i, en := range enumerators {
		if en.Value == nil || *en.Value != want[i] {
			t.Fatalf("enumerator %q = %v, want %d", en.Identifier(), en.Value, want[i])
		}
	}
}

func TestEnumValidator_FloatUnderlyingTypeRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    enum Color: float32 { Red }
}
`)
	ast.WalkAll(store.TopLevelModules, &EnumValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.InvalidUnderlyingType {
		t.Fatalf("got %v, want [InvalidUnderlyingType]", got)
	}
}
