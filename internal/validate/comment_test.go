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

	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

func TestCommentValidator_ParamNameMismatchRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    interface I
    {
        /// @param b the wrong name
        op(a: int32);
    }
}
`)
	(&CommentValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.CommentParamDoesNotExist {
		t.Fatalf("got %v, want [CommentParamDoesNotExist]", got)
	}
}

func TestCommentValidator_ValidParamNameAccepted(t *testing.T) {
	store, r := linked(t, `
module M
{
    interface I
    {
        /// @param a the right name
        op(a: int32);
    }
}
`)
	(&CommentValidator{Store: store, R: r}).Run()
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestCommentValidator_ReturnsOnVoidOperationRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    interface I
    {
        /// @return nothing, this op is void
        op(a: int32);
    }
}
`)
	(&CommentValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.CommentReturnsOnVoidOperation {
		t.Fatalf("got %v, want [CommentReturnsOnVoidOperation]", got)
	}
}

func TestCommentValidator_ReturnsOnOperationWithReturnValueAccepted(t *testing.T) {
	store, r := linked(t, `
module M
{
    interface I
    {
        /// @return the answer
        op(a: int32) -> int32;
    }
}
`)
	(&CommentValidator{Store: store, R: r}).Run()
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestCommentValidator_ThrowsMismatchRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    exception Boom { }

    interface I
    {
        /// @throws Boom when something goes wrong
        op(a: int32);
    }
}
`)
	(&CommentValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.CommentThrowsMismatch {
		t.Fatalf("got %v, want [CommentThrowsMismatch]", got)
	}
}

func TestCommentValidator_ThrowsMatchingDeclaredExceptionAccepted(t *testing.T) {
	store, r := linked(t, `
module M
{
    exception Boom { }

    interface I
    {
        /// @throws Boom when something goes wrong
        op(a: int32) throws Boom;
    }
}
`)
	(&CommentValidator{Store: store, R: r}).Run()
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestCommentValidator_SeeAlsoUnresolvedLinkRejected(t *testing.T) {
	store, r := linked(t, `
module M
{
    /// @see DoesNotExist
    struct S { a: int32 }
}
`)
	(&CommentValidator{Store: store, R: r}).Run()
	got := codes(r.Diagnostics())
	if len(got) != 1 || got[0] != errors.CommentLinkDoesNotResolve {
		t.Fatalf("got %v, want [CommentLinkDoesNotResolve]", got)
	}
}

func TestCommentValidator_SeeAlsoResolvedLinkAccepted(t *testing.T) {
	store, r := linked(t, `
module M
{
    struct Other { a: int32 }

    /// @see Other
    struct S { a: int32 }
}
`)
	(&CommentValidator{Store: store, R: r}).Run()
	if got := codes(r.Diagnostics()); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}
