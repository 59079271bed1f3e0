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
	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// OperationValidator checks streamed-parameter placement/cardinality and
// return-tuple arity ("Operation validator").
type OperationValidator struct {
	ast.NoopVisitor
	R *errors.Reporter
}

func (v *OperationValidator) VisitOperation(op *ast.Operation) {
	v.checkStreamed(op.Params)
	v.checkStreamed(op.ReturnMembers)
	if op.ReturnIsTuple && len(op.ReturnMembers) < 2 {
		v.R.Report(errors.New(errors.Error, errors.ReturnTuplesMustContainAtLeastTwoElements, op.IdentifierSpan(),
			"return tuple of %q must contain at least two elements", op.Identifier()))
	}
}

func (v *OperationValidator) checkStreamed(params []*ast.Parameter) {
	streamedCount := 0
	for i, p := range params {
		if !p.Streamed {
			continue
		}
		streamedCount++
		if i != len(params)-1 {
			v.R.Report(errors.New(errors.Error, errors.StreamedMembersMustBeLast, p.IdentifierSpan(),
				"streamed member %q must be the last in its list", p.Identifier()))
		}
	}
	if streamedCount > 1 {
		last := params[len(params)-1]
		v.R.Report(errors.New(errors.Error, errors.MultipleStreamedMembers, last.IdentifierSpan(),
			"at most one member may be streamed"))
	}
}
