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

// EnumValidator checks enumerator value bounds and uniqueness, the
// underlying type's legality, and that a checked enum is non-empty
// ("Enum validator").
type EnumValidator struct {
	ast.NoopVisitor
	R *errors.Reporter
}

func (v *EnumValidator) VisitEnum(e *ast.Enum) {
	if !e.Unchecked && len(e.Enumerators) == 0 {
		v.R.Report(errors.New(errors.Error, errors.MustContainEnumerators, e.IdentifierSpan(),
			"enum %q must contain at least one enumerator unless marked unchecked", e.Identifier()))
	}

	lower, upper, integral := enumBounds(e)
	if e.Underlying != nil && e.Underlying.Definition != nil {
		if e.Underlying.Optional {
			v.R.Report(errors.New(errors.Error, errors.CannotUseOptionalUnderlyingType, e.Underlying.Span(),
				"enum underlying type cannot be optional"))
		}
		if !integral {
			v.R.Report(errors.New(errors.Error, errors.InvalidUnderlyingType, e.Underlying.Span(),
				"enum underlying type must be an integral type"))
		}
	}

	seen := map[int64]*ast.Enumerator{}
	next := lower
	for _, en := range e.Enumerators {
		if en.ExplicitValue && en.Value != nil {
			next = *en.Value
		} else {
			en.Value = new(int64)
			*en.Value = next
		}
		if *en.Value < lower || *en.Value > upper {
			v.R.Report(errors.New(errors.Error, errors.EnumeratorValueOutOfBounds, en.IdentifierSpan(),
				"enumerator %q value %d is out of the underlying type's range", en.Identifier(), *en.Value))
		}
		if prior, ok := seen[*en.Value]; ok {
			v.R.Report(errors.New(errors.Error, errors.DuplicateEnumeratorValue, en.IdentifierSpan(),
				"enumerator %q duplicates the value of %q", en.Identifier(), prior.Identifier()).
				WithNote(prior.IdentifierSpan(), "%q was assigned this value here", prior.Identifier()))
		} else {
			seen[*en.Value] = en
		}
		next = *en.Value + 1
	}
}

// enumBounds returns the legal [lower, upper] range for e's underlying
// type, and whether that type is integral at all. Slice1 enums have no
// explicit underlying type and use an implicit int32.
func enumBounds(e *ast.Enum) (lower, upper int64, integral bool) {
	if e.Underlying == nil || e.Underlying.Definition == nil {
		return 0, 1<<31 - 1, true
	}
	prim, ok := e.Underlying.Definition.(*ast.Primitive)
	if !ok {
		return 0, 0, false
	}
	switch prim.Kind {
	case ast.Uint8:
		return 0, 1<<8 - 1, true
	case ast.Int16:
		return -1 << 15, 1<<15 - 1, true
	case ast.Uint16:
		return 0, 1<<16 - 1, true
	case ast.Int32, ast.VarInt32:
		return -1 << 31, 1<<31 - 1, true
	case ast.Uint32, ast.VarUint32:
		return 0, 1<<32 - 1, true
	case ast.Int8:
		return -1 << 7, 1<<7 - 1, true
	default:
		return 0, 0, false
	}
}
