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

// Package render implements two diagnostic output shapes: a
// human-readable text form with optional ANSI styling, and a JSON array
// of diagnostic objects. Terminal rendering beyond that is out of scope:
// this package only ever writes to an io.Writer the caller supplies.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/InsertCreativityHere/slicec-go/internal/errors"
	"github.com/InsertCreativityHere/slicec-go/internal/token"
)

// jsonDiagnostic mirrors the wire shape exactly; errors.Diagnostic
// carries a few internal-only fields (Scope) JSON must not expose.
type jsonDiagnostic struct {
	Severity  string     `json:"severity"`
	Message   string     `json:"message"`
	ErrorCode string     `json:"error_code"`
	Span      *jsonSpan  `json:"span,omitempty"`
	Notes     []jsonNote `json:"notes"`
}

type jsonSpan struct {
	File  string      `json:"file"`
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"col"`
}

type jsonNote struct {
	Message string    `json:"message"`
	Span    *jsonSpan `json:"span,omitempty"`
}

func toJSONSpan(s *token.Span) *jsonSpan {
	if s == nil || !s.IsValid() {
		return nil
	}
	return &jsonSpan{
		File:  s.Start.Filename,
		Start: jsonPosition{Line: s.Start.Line, Column: s.Start.Column},
		End:   jsonPosition{Line: s.End.Line, Column: s.End.Column},
	}
}

func toJSON(d errors.Diagnostic) jsonDiagnostic {
	jd := jsonDiagnostic{
		Severity:  d.Severity.String(),
		Message:   d.Message,
		ErrorCode: string(d.Code),
		Span:      toJSONSpan(d.Span),
	}
	for _, n := range d.Notes {
		jd.Notes = append(jd.Notes, jsonNote{Message: n.Message, Span: toJSONSpan(n.Span)})
	}
	return jd
}

// JSON writes diagnostics to w as a single JSON array,
// using encoding/json: a fixed, already-modeled struct is exactly what the
// standard library's marshaler is for.
func JSON(w io.Writer, diagnostics []errors.Diagnostic) error {
	out := make([]jsonDiagnostic, len(diagnostics))
	for i, d := range diagnostics {
		out[i] = toJSON(d)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ANSI SGR codes used by Human when color is enabled.
const (
	sgrReset    = "\x1b[0m"
	sgrBold     = "\x1b[1m"
	sgrRed      = "\x1b[31m"
	sgrYellow   = "\x1b[33m"
	sgrFaint    = "\x1b[2m"
)

// Human writes diagnostics to w as plain text, one per paragraph, each
// followed by its notes indented by four spaces. color enables ANSI
// styling; callers gate this on Options.DisableColor plus a TTY check of
// their own (terminal rendering concerns, like TTY detection, belong to
// the CLI collaborator, not this package).
func Human(w io.Writer, diagnostics []errors.Diagnostic, color bool) {
	for _, d := range diagnostics {
		fmt.Fprintln(w, formatLine(d, color))
		for _, n := range d.Notes {
			fmt.Fprintln(w, formatNote(n, color))
		}
	}
}

func formatLine(d errors.Diagnostic, color bool) string {
	loc := "-"
	if d.Span != nil {
		loc = d.Span.Start.String()
	}
	sev := d.Severity.String()
	if color {
		c := sgrYellow
		if d.IsError() {
			c = sgrRed
		}
		sev = c + sgrBold + sev + sgrReset
	}
	return fmt.Sprintf("%s: %s [%s]: %s", loc, sev, d.Code, d.Message)
}

func formatNote(n errors.Note, color bool) string {
	loc := "-"
	if n.Span != nil {
		loc = n.Span.Start.String()
	}
	label := "note"
	if color {
		label = sgrFaint + label + sgrReset
	}
	return fmt.Sprintf("    %s: %s: %s", label, loc, n.Message)
}

// Summary writes a one-line "N errors, M warnings" trailer, matching the
// short summary most CLI tools print after a diagnostic dump.
func Summary(w io.Writer, diagnostics []errors.Diagnostic) {
	errs, warns := 0, 0
	for _, d := range diagnostics {
		if d.IsError() {
			errs++
		} else {
			warns++
		}
	}
	parts := make([]string, 0, 2)
	if errs > 0 {
		parts = append(parts, pluralize(errs, "error"))
	}
	if warns > 0 {
		parts = append(parts, pluralize(warns, "warning"))
	}
	if len(parts) == 0 {
		return
	}
	fmt.Fprintln(w, strings.Join(parts, ", "))
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
