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

func TestStructValidator_EmptyCompactStructRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    compact struct S {}
}
`)
	ast.WalkAll(store.TopLevelModules, &StructValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.CompactStructCannotBeEmpty {
		t.Fatalf("got %v, want [CompactStructCannotBeEmpty]", got)
	}
}

func TestStructValidator_NonCompactEmptyStructAllowed(t *testing.T) {
	store, r := linked(t, `
module M
{
    struct S {}
}
`)
	ast.WalkAll(store.TopLevelModules, &StructValidator{R: r})
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestStructValidator_CompactStructWithTaggedFieldRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    compact struct S { tag(1) a: int32? }
}
`)
	ast.WalkAll(store.TopLevelModules, &StructValidator{R: r})
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.CompactStructCannotContainTaggedFields {
		t.Fatalf("got %v, want [CompactStructCannotContainTaggedFields]", got)
	}
}
