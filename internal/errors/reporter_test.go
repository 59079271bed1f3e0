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

package errors

import (
	"testing"

	"github.com/InsertCreativityHere/slicec-go/internal/token"
)

func TestReporter_ExitCode(t *testing.T) {
	tests := []struct {
		name        string
		warnAsError bool
		diags       []Diagnostic
		want        int
	}{
		{name: "clean", want: 0},
		{
			name:  "warning only",
			diags: []Diagnostic{New(Warning, WDeprecated, token.NoSpan, "x")},
			want:  0,
		},
		{
			name:        "warning with warn-as-error",
			warnAsError: true,
			diags:       []Diagnostic{New(Warning, WDeprecated, token.NoSpan, "x")},
			want:        1,
		},
		{
			name:  "error always fails",
			diags: []Diagnostic{New(Error, Syntax, token.NoSpan, "x")},
			want:  1,
		},
		{
			name:        "error beats warn-as-error=false",
			warnAsError: false,
			diags:       []Diagnostic{New(Error, Syntax, token.NoSpan, "x")},
			want:        1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReporter(nil, tt.warnAsError)
			for _, d := range tt.diags {
				r.Report(d)
			}
			r.Finish()
			if got := r.ExitCode(); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReporter_CLIAllowedWarningsSuppressed(t *testing.T) {
	r := NewReporter([]string{string(WDeprecated)}, false)
	r.Report(New(Warning, WDeprecated, token.NoSpan, "deprecated"))
	r.Report(New(Warning, WDocComment, token.NoSpan, "missing doc"))

	diags := r.Finish()
	if len(diags) != 1 || diags[0].Code != WDocComment {
		t.Fatalf("expected only WDocComment to survive, got %v", diags)
	}
}

func TestReporter_CLIAllowAll(t *testing.T) {
	r := NewReporter([]string{"All"}, false)
	r.Report(New(Warning, WDeprecated, token.NoSpan, "x"))
	r.Report(New(Warning, WDocComment, token.NoSpan, "y"))
	if diags := r.Finish(); len(diags) != 0 {
		t.Fatalf("expected \"All\" to suppress every warning, got %v", diags)
	}
}

func TestReporter_ErrorsAreNeverSuppressed(t *testing.T) {
	r := NewReporter([]string{"All"}, false)
	r.Report(New(Error, Syntax, token.NoSpan, "x"))
	if diags := r.Finish(); len(diags) != 1 {
		t.Fatalf("expected the error to survive \"All\", got %v", diags)
	}
}

func TestReporter_AllowScope_SuppressesByScopeAndAncestor(t *testing.T) {
	r := NewReporter(nil, false)
	r.SetParentScope(Scope("M::S"), Scope("M"))
	r.AllowScope(Scope("M"), []string{string(WDeprecated)})

	d := New(Warning, WDeprecated, token.NoSpan, "x").WithScope(Scope("M::S"))
	r.Report(d)

	diags := r.Finish()
	if len(diags) != 0 {
		t.Fatalf("expected the ancestor's allow(...) to suppress a child-scoped warning, got %v", diags)
	}
}

func TestReporter_AllowScope_DoesNotSuppressUnrelatedScope(t *testing.T) {
	r := NewReporter(nil, false)
	r.AllowScope(Scope("M"), []string{string(WDeprecated)})

	d := New(Warning, WDeprecated, token.NoSpan, "x").WithScope(Scope("N"))
	r.Report(d)

	diags := r.Finish()
	if len(diags) != 1 {
		t.Fatalf("expected a warning in an unrelated scope to survive, got %v", diags)
	}
}

func TestReporter_FileWideAllowAppliesEverywhere(t *testing.T) {
	r := NewReporter(nil, false)
	r.AllowScope(Scope(""), []string{string(WDeprecated)})

	d := New(Warning, WDeprecated, token.NoSpan, "x").WithScope(Scope("Anywhere::Deep"))
	r.Report(d)

	if diags := r.Finish(); len(diags) != 0 {
		t.Fatalf("expected the file-wide allow(...) to suppress a deeply scoped warning, got %v", diags)
	}
}

func TestReporter_DedupNotes(t *testing.T) {
	r := NewReporter(nil, false)
	d := New(Error, Redefinition, token.NoSpan, "dup").
		WithNote(token.NoSpan, "previously defined here").
		WithNote(token.NoSpan, "previously defined here")
	r.Report(d)

	diags := r.Finish()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if len(diags[0].Notes) != 1 {
		t.Fatalf("expected duplicate notes to be deduplicated, got %d notes", len(diags[0].Notes))
	}
}

func TestIsKnownWarningCode(t *testing.T) {
	if !IsKnownWarningCode("All") {
		t.Fatalf(`IsKnownWarningCode("All") = false, want true`)
	}
	if !IsKnownWarningCode(string(WDeprecated)) {
		t.Fatalf("expected WDeprecated to be a known warning code")
	}
	if IsKnownWarningCode("W999") {
		t.Fatalf("expected an unknown code to report false")
	}
}
