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
	"sort"

	"github.com/mpvl/unique"

	"github.com/InsertCreativityHere/slicec-go/internal/token"
)

// Reporter accumulates diagnostics across all five phases and applies
// allow(...) suppression once compilation is finished. A single Reporter
// is threaded explicitly through one CompilationState's run; there is no
// global or singleton reporter.
type Reporter struct {
	diagnostics []Diagnostic

	// allowedScopes maps a parser-scoped identifier (or "" for file-wide
	// allow attributes) to the set of warning codes it suppresses.
	allowedScopes map[Scope]map[Code]bool
	// cliAllowed are codes suppressed globally via Options.AllowedWarnings.
	cliAllowed map[Code]bool
	// ancestor maps a scope to its immediately enclosing scope, so
	// suppression on a module also suppresses warnings raised by its
	// children ("or any ancestor").
	ancestor map[Scope]Scope

	warnAsError bool
}

// NewReporter creates an empty Reporter. allowedWarnings mirrors
// Options.AllowedWarnings; "All" suppresses every code.
func NewReporter(allowedWarnings []string, warnAsError bool) *Reporter {
	r := &Reporter{
		allowedScopes: map[Scope]map[Code]bool{},
		cliAllowed:    map[Code]bool{},
		ancestor:      map[Scope]Scope{},
		warnAsError:   warnAsError,
	}
	for _, c := range allowedWarnings {
		r.cliAllowed[Code(c)] = true
	}
	return r
}

// Report records a diagnostic. It is not suppressed yet; suppression is a
// finishing pass run once by Finish, mirroring the fact that an allow(...)
// attribute may be discovered on an ancestor entity visited after the
// diagnostic was raised.
func (r *Reporter) Report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// AllowScope registers that scope (an entity's parser-scoped identifier, or
// "" for a file-wide attribute) suppresses the given warning codes via an
// allow(...) attribute. "All" suppresses every code.
func (r *Reporter) AllowScope(scope Scope, codes []string) {
	set := r.allowedScopes[scope]
	if set == nil {
		set = map[Code]bool{}
		r.allowedScopes[scope] = set
	}
	for _, c := range codes {
		set[Code(c)] = true
	}
}

// SetParentScope records that child is lexically nested inside parent, so
// that an allow(...) on parent also suppresses warnings raised against
// child ("or any ancestor").
func (r *Reporter) SetParentScope(child, parent Scope) {
	r.ancestor[child] = parent
}

func (r *Reporter) isSuppressed(d Diagnostic) bool {
	if d.IsError() {
		return false
	}
	if r.cliAllowed["All"] || r.cliAllowed[d.Code] {
		return true
	}
	for scope := d.Scope; ; {
		if set := r.allowedScopes[scope]; set != nil && (set["All"] || set[d.Code]) {
			return true
		}
		parent, ok := r.ancestor[scope]
		if !ok {
			break
		}
		scope = parent
	}
	// The file-wide allow(...) is registered under the empty Scope.
	if set := r.allowedScopes[Scope("")]; set != nil && (set["All"] || set[d.Code]) {
		return true
	}
	return false
}

// Finish applies suppression and returns the final, ordered diagnostic list.
// Errors are never suppressed; warnings are dropped per isSuppressed.
func (r *Reporter) Finish() []Diagnostic {
	out := make([]Diagnostic, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		if r.isSuppressed(d) {
			continue
		}
		d.Notes = dedupNotes(d.Notes)
		out = append(out, d)
	}
	r.diagnostics = out
	return out
}

// Diagnostics returns everything reported so far, without applying
// suppression. Useful for phases (like the cycle detector) that need to
// check "did anything fail yet" before Finish is called.
func (r *Reporter) Diagnostics() []Diagnostic { return r.diagnostics }

// HasErrors reports whether any error-severity diagnostic has been
// reported so far.
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.IsError() {
			return true
		}
	}
	return false
}

// ExitCode implements the exit-status rule: 1 if any error, or
// if warnAsError and any (unsuppressed) warning; else 0. Call after Finish.
func (r *Reporter) ExitCode() int {
	sawWarning := false
	for _, d := range r.diagnostics {
		if d.IsError() {
			return 1
		}
		sawWarning = true
	}
	if r.warnAsError && sawWarning {
		return 1
	}
	return 0
}

// noteSort adapts []Note to sort.Interface so mpvl/unique can remove
// duplicate notes (the same "note: previous definition" can otherwise be
// attached twice when a validator and the resolver both notice the same
// conflict).
type noteSort []Note

func (s noteSort) Len() int      { return len(s) }
func (s noteSort) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s noteSort) Less(i, j int) bool {
	if s[i].Message != s[j].Message {
		return s[i].Message < s[j].Message
	}
	si, sj := spanKey(s[i].Span), spanKey(s[j].Span)
	return si < sj
}

func spanKey(s *token.Span) string {
	if s == nil {
		return ""
	}
	return s.String()
}

func dedupNotes(notes []Note) []Note {
	if len(notes) < 2 {
		return notes
	}
	cp := append([]Note{}, notes...)
	n := unique.Sort(noteSort(cp))
	return cp[:n]
}

var _ sort.Interface = noteSort(nil)
