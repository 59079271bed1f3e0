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

func TestIdentifierValidator_ClassFieldShadowsInheritedFieldRejected(t *testing.T) {
	store, r := linked(t, `
[[mode = Slice1]]
module M
{
    class Base { a: int32 }
    class Derived extends Base { a: int32 }
}
`)
	ast.WalkAll(store.TopLevelModules, &IdentifierValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.ShadowedMember {
		t.Fatalf("got %v, want [ShadowedMember]", got)
	}
	if len(r.Diagnostics()[0].Notes) != 1 {
		t.Fatalf("expected a note pointing at the inherited field")
	}
}

func TestIdentifierValidator_ClassWithDistinctFieldNamesAllowed(t *testing.T) {
	store, r := linked(t, `
[[mode = Slice1]]
module M
{
    class Base { a: int32 }
    class Derived extends Base { b: int32 }
}
`)
	ast.WalkAll(store.TopLevelModules, &IdentifierValidator{R: r})
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestIdentifierValidator_ExceptionFieldShadowsInheritedFieldRejected(t *testing.T) {
	store, r := linked(t, `
[[mode = Slice1]]
module M
{
    exception Base { a: int32 }
    exception Derived extends Base { a: int32 }
}
`)
	ast.WalkAll(store.TopLevelModules, &IdentifierValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.ShadowedMember {
		t.Fatalf("got %v, want [ShadowedMember]", got)
	}
}

func TestIdentifierValidator_InterfaceOperationShadowsInheritedOperationRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    interface Base { op(a: int32); }
    interface Derived extends Base { op(b: int32); }
}
`)
	ast.WalkAll(store.TopLevelModules, &IdentifierValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.ShadowedMember {
		t.Fatalf("got %v, want [ShadowedMember]", got)
	}
}

func TestIdentifierValidator_InterfaceWithDistinctOperationNamesAllowed(t *testing.T) {
	store, r := linked(t, `
module M
{
    interface Base { op1(a: int32); }
    interface Derived extends Base { op2(b: int32); }
}
`)
	ast.WalkAll(store.TopLevelModules, &IdentifierValidator{R: r})
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}
