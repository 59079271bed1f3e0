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

package compile

import (
	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// state of a value-aggregate node during the cycle DFS.
type state int

const (
	unvisited state = iota
	visiting
	done
)

// DetectCycles walks every struct and exception's fields along the
// value-type graph: sequences, dictionaries, and class/
// interface references all act as indirection that breaks a cycle safely,
// so only a field whose type resolves (through any TypeAlias chain)
// directly to another struct or exception is followed. It reports
// InfiniteSizeCycle only against the node that closes the cycle -- the
// node rediscovered while still on the DFS stack -- to avoid duplicate
// reports for every node further up the chain. Returns true if any cycle
// was found, so the caller can skip the remaining validators: a cyclic
// value-type graph would make later traversals run forever.
func DetectCycles(store *ast.Store, r *errors.Reporter) bool {
	states := map[ast.Type]state{}
	cycleFound := false

	var visit func(ast.Type)
	visit = func(t ast.Type) {
		switch states[t] {
		case visiting:
			if ent, ok := t.(ast.Entity); ok {
				r.Report(errors.New(errors.Error, errors.InfiniteSizeCycle, ent.IdentifierSpan(),
					"%q is part of a cycle of value types", ent.Identifier()))
			}
			cycleFound = true
			return
		case done:
			return
		}
		states[t] = visiting

		var fields []*ast.Field
		switch n := t.(type) {
		case *ast.Struct:
			fields = n.FieldList
		case *ast.Exception:
			fields = n.AllFields()
		}
		for _, f := range fields {
			if f.Type == nil || f.Type.Definition == nil {
				continue
			}
			if target := resolveAggregate(f.Type.Definition); target != nil {
				visit(target)
			}
		}
		states[t] = done
	}

	for _, t := range store.IterateTypes() {
		switch t.(type) {
		case *ast.Struct, *ast.Exception:
			visit(t)
		}
	}
	return cycleFound
}

// resolveAggregate follows a chain of TypeAlias indirections and returns
// the underlying Struct or Exception, or nil if the chain bottoms out in
// anything else (a primitive, class, interface, sequence, dictionary, or
// an unpatched reference).
func resolveAggregate(t ast.Type) ast.Type {
	for {
		alias, ok := t.(*ast.TypeAlias)
		if !ok {
			break
		}
		if alias.Underlying == nil || alias.Underlying.Definition == nil {
			return nil
		}
		t = alias.Underlying.Definition
	}
	switch t.(type) {
	case *ast.Struct, *ast.Exception:
		return t
	}
	return nil
}
