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

// Package validate implements phase 5: one Visitor per
// concern, each a pure reader over the by-now-stable AST that reports
// diagnostics without mutating topology.
//
// Each validator follows the same read-only double-dispatch visitor
// pattern used for traversal elsewhere in the AST package, specialized
// to one fixed structural check apiece.
package validate

import (
	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// DictionaryValidator checks dictionary key-type legality wherever a
// Dictionary appears ("Dictionary validator"): the key must
// be non-optional, non-class, non-interface, non-exception, non-sequence,
// non-dictionary, and not floating point; a struct key must be compact
// with every field itself a valid key, recursively.
type DictionaryValidator struct {
	ast.NoopVisitor
	Store *ast.Store
	R     *errors.Reporter
}

// Run checks every Dictionary installed in the store, named or anonymous
// (dictionaries are always anonymous, stored alongside their
// defining use).
func (v *DictionaryValidator) Run() {
	for _, t := range v.Store.IterateTypes() {
		if d, ok := t.(*ast.Dictionary); ok {
			v.checkKey(d.Key)
		}
	}
}

func (v *DictionaryValidator) checkKey(key *ast.TypeRef) {
	if key == nil || key.Definition == nil {
		return
	}
	if key.Optional {
		v.R.Report(errors.New(errors.Error, errors.KeyMustBeNonOptional, key.Span(),
			"dictionary key type cannot be optional"))
		return
	}
	// isValidKeyType reports StructKeyMustBeCompact itself; the generic
	// KeyTypeNotSupported is reported only when no such specific reason was.
	before := len(v.R.Diagnostics())
	if !v.isValidKeyType(key.Definition) && len(v.R.Diagnostics()) == before {
		v.R.Report(errors.New(errors.Error, errors.KeyTypeNotSupported, key.Span(),
			"type %q is not a valid dictionary key type", key.Name))
	}
}

func (v *DictionaryValidator) isValidKeyType(t ast.Type) bool {
	switch n := t.(type) {
	case *ast.Primitive:
		switch n.Kind {
		case ast.Float32, ast.Float64, ast.AnyClassKind:
			return false
		default:
			return true
		}
	case *ast.Enum:
		return true
	case *ast.Struct:
		if !n.IsCompact {
			v.R.Report(errors.New(errors.Error, errors.StructKeyMustBeCompact, n.IdentifierSpan(),
				"struct %q must be compact to be used as a dictionary key", n.Identifier()))
			return false
		}
		for _, f := range n.FieldList {
			if f.Type == nil || f.Type.Definition == nil {
				continue
			}
			if f.Type.Optional || !v.isValidKeyType(f.Type.Definition) {
				return false
			}
		}
		return true
	case *ast.CustomType:
		return true
	case *ast.TypeAlias:
		if n.Underlying == nil || n.Underlying.Definition == nil {
			return false
		}
		return !n.Underlying.Optional && v.isValidKeyType(n.Underlying.Definition)
	default:
		// Class, Interface, Sequence, Dictionary.
		return false
	}
}
