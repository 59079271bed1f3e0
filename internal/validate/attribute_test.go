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

func TestAttributeValidator_DeprecatedPromotesReason(t *testing.T) {
	store, r := linked(t, `
module M
{
    [[deprecated("use T2 instead")]]
    struct S { a: int32 }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
	s, _ := store.LookupType("M::S", "")
	attrs := s.(*ast.Struct).Attributes()
	if !attrs.Deprecated || attrs.DeprecatedReason != "use T2 instead" {
		t.Fatalf("deprecated = %v %q, want true %q", attrs.Deprecated, attrs.DeprecatedReason, "use T2 instead")
	}
}

func TestAttributeValidator_DeprecatedAppliedTwiceRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    [[deprecated, deprecated]]
    struct S { a: int32 }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.AttributeIsNotRepeatable {
		t.Fatalf("got %v, want [AttributeIsNotRepeatable]", got)
	}
}

func TestAttributeValidator_CompressOnOperationRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    interface I
    {
        [[compress]]
        op(a: int32);
    }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.UnexpectedAttribute {
		t.Fatalf("got %v, want [UnexpectedAttribute]", got)
	}
}

func TestAttributeValidator_OnewayOnOperationAllowed(t *testing.T) {
	store, r := linked(t, `
module M
{
    interface I
    {
        [[oneway]]
        op(a: int32);
    }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestAttributeValidator_FormatRequiresKnownArgument(t *testing.T) {
	store, r := linked(t, `
[[mode = Slice1]]
module M
{
    [[format(bogus)]]
    class C { a: int32 }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.ArgumentNotSupported {
		t.Fatalf("got %v, want [ArgumentNotSupported]", got)
	}
}

func TestAttributeValidator_UnknownAllowCodeWarns(t *testing.T) {
	store, r := linked(t, `
module M
{
    [[allow(W999)]]
    struct S { a: int32 }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.WUnknownAllow {
		t.Fatalf("got %v, want [WUnknownAllow]", got)
	}
}

func TestAttributeValidator_UsingDeprecatedTypeWarns(t *testing.T) {
	store, r := linked(t, `
module M
{
    [[deprecated("use NewThing instead")]]
    struct OldThing { a: int32 }

    struct Wrapper { thing: OldThing }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.WDeprecated {
		t.Fatalf("got %v, want [WDeprecated]", got)
	}
}

func TestAttributeValidator_AllowDeprecatedSuppressesUsageWarning(t *testing.T) {
	store, r := linked(t, `
[[allow(W002)]]
module M
{
    [[deprecated]]
    struct OldThing { a: int32 }

    struct Wrapper { thing: OldThing }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	diags := r.Finish()
	if len(diags) != 0 {
		t.Fatalf("got %v, want none", diags)
	}
}

func TestAttributeValidator_UsingNonDeprecatedTypeDoesNotWarn(t *testing.T) {
	store, r := linked(t, `
module M
{
    struct OtherThing { a: int32 }

    struct Wrapper { thing: OtherThing }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestAttributeValidator_KnownAllowCodeDoesNotWarn(t *testing.T) {
	store, r := linked(t, `
module M
{
    [[allow(All)]]
    struct S { a: int32 }
}
`)
	(&AttributeValidator{Store: store, R: r}).Run()
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}
