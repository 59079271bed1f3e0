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

// Package errors implements the diagnostic system shared by every phase of
// the compiler: an ordered list of Diagnostic values, each
// attributing a Code and message to a source Span, with Notes for secondary
// locations ("note: previous definition here").
//
// The diagnostic shape is fixed and closed (human text or JSON) since
// downstream code generators consume exactly that shape, not an
// arbitrary error chain.
package errors

import (
	"fmt"

	"github.com/InsertCreativityHere/slicec-go/internal/token"
)

// Note is a secondary annotation on a Diagnostic, e.g. pointing at the
// original definition of a redefined symbol.
type Note struct {
	Message string `json:"message"`
	Span    *token.Span `json:"span,omitempty"`
}

// Scope is the fully-qualified parser-scope identifier the
// diagnostic is attached to, used for attribute-based warning
// suppression. Empty for diagnostics with no enclosing entity.
type Scope string

// Diagnostic is a single reported error or warning.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     Code     `json:"error_code"`
	Message  string   `json:"message"`
	Span     *token.Span `json:"span,omitempty"`
	Notes    []Note   `json:"notes"`
	Scope    Scope    `json:"-"`
}

// IsError reports whether this diagnostic is an error (never suppressible).
func (d Diagnostic) IsError() bool { return d.Severity == Error }

func (d Diagnostic) String() string {
	loc := "-"
	if d.Span != nil {
		loc = d.Span.Start.String()
	}
	s := fmt.Sprintf("%s: %s [%s]: %s", loc, d.Severity, d.Code, d.Message)
	for _, n := range d.Notes {
		nloc := "-"
		if n.Span != nil {
			nloc = n.Span.Start.String()
		}
		s += fmt.Sprintf("\n    note: %s: %s", nloc, n.Message)
	}
	return s
}

// New builds a Diagnostic with no notes and no scope; use the Reporter's
// methods, or WithNote/WithScope, to attach those.
func New(severity Severity, code Code, span token.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     &span,
	}
}

// WithNote returns a copy of d with an additional Note appended.
func (d Diagnostic) WithNote(span token.Span, format string, args ...interface{}) Diagnostic {
	d.Notes = append(append([]Note{}, d.Notes...), Note{
		Message: fmt.Sprintf(format, args...),
		Span:    &span,
	})
	return d
}

// WithScope returns a copy of d attributed to the given parser-scoped
// identifier, enabling allow(...) suppression lookups.
func (d Diagnostic) WithScope(scope Scope) Diagnostic {
	d.Scope = scope
	return d
}
