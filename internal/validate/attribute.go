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
	"github.com/InsertCreativityHere/slicec-go/internal/token"
)

// AttributeValidator is the "parse-attributes pass" the Design
// Notes describe: it promotes the core's known directives from an
// entity's raw attribute list onto Attributes' strongly typed fields, and
// reports misuse - an unrecognized target, wrong argument count, a
// non-repeatable directive applied twice, or an allow(...) code this
// compiler doesn't know. Unknown directives are left untouched in Raw
// (forward-compatible with target-language-specific
// attributes).
type AttributeValidator struct {
	ast.NoopVisitor
	Store *ast.Store
	R     *errors.Reporter
}

// Run promotes and validates every entity's attributes, plus every file's
// file-scoped allow(...). It must run after scope resolution so an
// entity's ParserScope is available to register as an allow(...) scope.
//
// Promotion and the deprecated-usage check run as two separate passes
// over the same entity list: a member can reference a type registered
// later than itself (forward reference within a module is allowed), so
// every entity's own [[deprecated]] must be promoted before
// any entity's field/parameter types are checked against it.
func (v *AttributeValidator) Run() {
	for _, f := range v.Store.Files {
		v.checkAllow(errors.Scope(""), f.Attrs.Allow, token.Span{})
	}
	entities := v.Store.IterateEntities()
	for _, e := range entities {
		v.checkEntity(e)
	}
	for _, e := range entities {
		v.checkDeprecatedUsage(e)
	}
}

// checkDeprecatedUsage reports WDeprecated on every field or parameter
// whose type resolves to an entity carrying [[deprecated]].
func (v *AttributeValidator) checkDeprecatedUsage(e ast.Entity) {
	switch t := e.(type) {
	case *ast.Struct:
		v.checkMembersDeprecated(t.FieldList)
	case *ast.Class:
		v.checkMembersDeprecated(t.FieldList)
	case *ast.Exception:
		v.checkMembersDeprecated(t.FieldList)
	case *ast.Operation:
		v.checkMembersDeprecatedParams(t.Params)
		v.checkMembersDeprecatedParams(t.ReturnMembers)
	}
}

func (v *AttributeValidator) checkMembersDeprecated(members []*ast.Field) {
	for _, m := range members {
		v.checkTypeRefDeprecated(m)
	}
}

func (v *AttributeValidator) checkMembersDeprecatedParams(members []*ast.Parameter) {
	for _, m := range members {
		v.checkTypeRefDeprecated(m)
	}
}

func (v *AttributeValidator) checkTypeRefDeprecated(m ast.Member) {
	ref := m.TypeReference()
	if ref == nil || ref.Definition == nil {
		return
	}
	def, ok := ref.Definition.(ast.Entity)
	if !ok {
		return
	}
	attrs := def.Attributes()
	if !attrs.Deprecated {
		return
	}
	if attrs.DeprecatedReason != "" {
		v.R.Report(errors.New(errors.Warning, errors.WDeprecated, ref.Span(),
			"%q uses %q, which is deprecated: %s", m.Identifier(), def.Identifier(), attrs.DeprecatedReason))
		return
	}
	v.R.Report(errors.New(errors.Warning, errors.WDeprecated, ref.Span(),
		"%q uses %q, which is deprecated", m.Identifier(), def.Identifier()))
}

func (v *AttributeValidator) checkEntity(e ast.Entity) {
	attrs := e.Attributes()
	v.checkRepeatable(e, attrs, "deprecated")
	v.checkRepeatable(e, attrs, "compress")
	v.checkRepeatable(e, attrs, "oneway")
	v.checkRepeatable(e, attrs, "format")

	if a := attrs.Find("deprecated"); a != nil {
		attrs.Deprecated = true
		if len(a.Arguments) > 1 {
			v.R.Report(errors.New(errors.Error, errors.ArgumentNotSupported, a.Span(),
				"deprecated takes at most one argument"))
		} else if len(a.Arguments) == 1 {
			attrs.DeprecatedReason = a.Arguments[0]
		}
	}

	if a := attrs.Find("compress"); a != nil {
		switch e.(type) {
		case *ast.Struct, *ast.Class, *ast.Exception, *ast.Enum:
			attrs.Compress = true
			if len(a.Arguments) != 0 {
				v.R.Report(errors.New(errors.Error, errors.ArgumentNotSupported, a.Span(),
					"compress takes no arguments"))
			}
		default:
			v.R.Report(errors.New(errors.Error, errors.UnexpectedAttribute, a.Span(),
				"compress cannot be applied to %q", e.Identifier()))
		}
	}

	if a := attrs.Find("oneway"); a != nil {
		if _, ok := e.(*ast.Operation); ok {
			attrs.Oneway = true
			if len(a.Arguments) != 0 {
				v.R.Report(errors.New(errors.Error, errors.ArgumentNotSupported, a.Span(),
					"oneway takes no arguments"))
			}
		} else {
			v.R.Report(errors.New(errors.Error, errors.UnexpectedAttribute, a.Span(),
				"oneway cannot be applied to %q", e.Identifier()))
		}
	}

	if a := attrs.Find("format"); a != nil {
		switch e.(type) {
		case *ast.Class, *ast.Exception:
			switch len(a.Arguments) {
			case 0:
				v.R.Report(errors.New(errors.Error, errors.MissingRequiredArgument, a.Span(),
					"format requires an argument"))
			case 1:
				if a.Arguments[0] != "compact" && a.Arguments[0] != "sliced" {
					v.R.Report(errors.New(errors.Error, errors.ArgumentNotSupported, a.Span(),
						"unknown format %q", a.Arguments[0]))
				} else {
					attrs.Format = a.Arguments[0]
				}
			default:
				v.R.Report(errors.New(errors.Error, errors.ArgumentNotSupported, a.Span(),
					"format takes exactly one argument"))
			}
		default:
			v.R.Report(errors.New(errors.Error, errors.UnexpectedAttribute, a.Span(),
				"format cannot be applied to %q", e.Identifier()))
		}
	}

	if a := attrs.Find("allow"); a != nil {
		attrs.Allow = append(attrs.Allow, a.Arguments...)
		v.checkAllow(errors.Scope(e.ParserScope()), a.Arguments, a.Span())
	}
}

// checkRepeatable reports AttributeIsNotRepeatable once per extra
// occurrence of a non-repeatable directive.
func (v *AttributeValidator) checkRepeatable(e ast.Entity, attrs *ast.Attributes, directive string) {
	all := attrs.FindAll(directive)
	if len(all) <= 1 {
		return
	}
	for _, dup := range all[1:] {
		v.R.Report(errors.New(errors.Error, errors.AttributeIsNotRepeatable, dup.Span(),
			"%s cannot be applied more than once to %q", directive, e.Identifier()))
	}
}

// checkAllow registers scope's allow(...) codes with the reporter and
// flags any code this compiler doesn't recognize.
func (v *AttributeValidator) checkAllow(scope errors.Scope, codes []string, span token.Span) {
	if len(codes) == 0 {
		return
	}
	v.R.AllowScope(scope, codes)
	for _, code := range codes {
		if !errors.IsKnownWarningCode(code) {
			v.R.Report(errors.New(errors.Warning, errors.WUnknownAllow, span,
				"unknown warning code %q in allow(...)", code))
		}
	}
}
