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

// StructValidator checks that compact structs are non-empty and carry no
// tagged fields ("Struct validator").
type StructValidator struct {
	ast.NoopVisitor
	R *errors.Reporter
}

func (v *StructValidator) VisitStruct(s *ast.Struct) {
	if !s.IsCompact {
		return
	}
	if len(s.FieldList) == 0 {
		v.R.Report(errors.New(errors.Error, errors.CompactStructCannotBeEmpty, s.IdentifierSpan(),
			"compact struct %q cannot be empty", s.Identifier()))
	}
	for _, f := range s.FieldList {
		if f.TagValue != nil {
			v.R.Report(errors.New(errors.Error, errors.CompactStructCannotContainTaggedFields, f.IdentifierSpan(),
				"compact struct %q cannot contain tagged fields", s.Identifier()))
		}
	}
}
