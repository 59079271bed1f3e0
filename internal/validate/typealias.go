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

// TypeAliasValidator checks that an alias's underlying type is not
// optional ("Type-alias validator").
type TypeAliasValidator struct {
	ast.NoopVisitor
	R *errors.Reporter
}

func (v *TypeAliasValidator) VisitTypeAlias(t *ast.TypeAlias) {
	if t.Underlying != nil && t.Underlying.Optional {
		v.R.Report(errors.New(errors.Error, errors.TypeAliasOfOptional, t.Underlying.Span(),
			"typealias %q cannot alias an optional type", t.Identifier()))
	}
}
