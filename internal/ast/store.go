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

package ast

import (
	"strings"

	"github.com/InsertCreativityHere/slicec-go/internal/errors"
)

// Store exclusively owns every AST node for one compilation: it holds
// the indexed name tables scope resolution and type patching need, and
// the list of files that make up the compilation.
type Store struct {
	// typesByModuleScope indexes every named Type by its fully qualified
	// module-scoped identifier, e.g. "A::B::P".
	typesByModuleScope map[string]Type
	// entitiesByParserScope indexes every named Entity (types and
	// non-type entities alike: fields, operations, parameters,
	// enumerators) by its fully qualified parser-scoped identifier.
	entitiesByParserScope map[string]Entity

	primitives map[PrimitiveKind]*Primitive

	// anonymous holds every Sequence/Dictionary installed via
	// AddAnonymousType, in installation order ("stored
	// alongside their defining use, not in the name tables").
	anonymous []Type

	// order is the ordered enumeration of every named node, in
	// installation order, for patchers that need to iterate every node
	// exactly once ("Iterate nodes").
	order []Entity

	Files           []*File
	TopLevelModules []*Module
}

// NewStore creates an empty Store with every primitive interned, ready
// for files to be installed into it.
func NewStore() *Store {
	s := &Store{
		typesByModuleScope:    map[string]Type{},
		entitiesByParserScope: map[string]Entity{},
		primitives:            map[PrimitiveKind]*Primitive{},
	}
	for kind := range primitiveNames {
		s.primitives[kind] = &Primitive{Kind: kind}
	}
	return s
}

// Primitive returns the single interned node for kind, installed once.
func (s *Store) Primitive(kind PrimitiveKind) *Primitive { return s.primitives[kind] }

// PrimitiveByName resolves a primitive keyword to its interned node.
func (s *Store) PrimitiveByName(name string) (*Primitive, bool) {
	kind, ok := PrimitiveKindByName[name]
	if !ok {
		return nil, false
	}
	return s.primitives[kind], true
}

// AddAnonymousType installs a Sequence or Dictionary literal encountered
// at a use site ("Add anonymous type"). Anonymous types are
// never name-addressable.
func (s *Store) AddAnonymousType(t Type) {
	s.anonymous = append(s.anonymous, t)
}

// AnonymousTypes returns every Sequence/Dictionary installed so far.
func (s *Store) AnonymousTypes() []Type { return s.anonymous }

// qualify builds the fully qualified dotted key for an identifier
// declared in the given scope; scope is "" for top-level declarations.
func qualify(scope, ident string) string {
	if scope == "" {
		return ident
	}
	return scope + "::" + ident
}

// RegisterType installs a named Type under its fully qualified module
// scope. If a different node already occupies that key, a Redefinition
// diagnostic is reported against r and the existing entry is kept
// ("reports Redefinition and drops the colliding entry").
// Modules are not Types and never reach this table; re-opened modules
// are merged by RegisterEntity instead.
func (s *Store) RegisterType(scope string, t Type, r *errors.Reporter) {
	ent, isEntity := t.(Entity)
	if !isEntity {
		return
	}
	key := qualify(scope, ent.Identifier())
	if existing, ok := s.typesByModuleScope[key]; ok {
		if s.mergeIfModules(existing, t) {
			return
		}
		s.reportRedefinition(existing.(Entity), ent, r)
		return
	}
	s.typesByModuleScope[key] = t
}

// RegisterEntity installs any named Entity (type or not) under its fully
// qualified parser scope, applying the same redefinition/merge policy as
// RegisterType.
func (s *Store) RegisterEntity(scope string, e Entity, r *errors.Reporter) {
	key := qualify(scope, e.Identifier())
	if existing, ok := s.entitiesByParserScope[key]; ok {
		if s.mergeIfModules(existing, e) {
			return
		}
		s.reportRedefinition(existing, e, r)
		return
	}
	s.entitiesByParserScope[key] = e
	s.order = append(s.order, e)
}

func (s *Store) mergeIfModules(existing, incoming interface{}) bool {
	oldMod, ok1 := existing.(*Module)
	newMod, ok2 := incoming.(*Module)
	if !ok1 || !ok2 || oldMod == newMod {
		return ok1 && ok2 && oldMod == newMod
	}
	oldMod.Append(newMod.Decls...)
	return true
}

func (s *Store) reportRedefinition(original, dup Entity, r *errors.Reporter) {
	if r == nil {
		return
	}
	d := errors.New(errors.Error, errors.Redefinition, dup.IdentifierSpan(),
		"redefinition of %q", dup.Identifier()).
		WithNote(original.IdentifierSpan(), "%q was previously defined here", original.Identifier())
	r.Report(d)
}

// LookupType resolves a textual type name seen at lexical module scope
// fromScope ("Lookup type by name with scope"). Absolute
// names ("::A::B") are looked up directly; relative names are tried
// against each ancestor module scope from innermost to outermost, and the
// first hit wins.
func (s *Store) LookupType(name, fromScope string) (Type, bool) {
	if strings.HasPrefix(name, "::") {
		t, ok := s.typesByModuleScope[strings.TrimPrefix(name, "::")]
		return t, ok
	}
	for _, ancestor := range ancestorScopes(fromScope) {
		if t, ok := s.typesByModuleScope[qualify(ancestor, name)]; ok {
			return t, ok
		}
	}
	return nil, false
}

// LookupEntity resolves a textual identifier seen at lexical parser scope
// fromScope, using the identical walk-up algorithm as LookupType but
// against the parser-scope table ("Lookup entity by name
// with scope").
func (s *Store) LookupEntity(name, fromScope string) (Entity, bool) {
	if strings.HasPrefix(name, "::") {
		e, ok := s.entitiesByParserScope[strings.TrimPrefix(name, "::")]
		return e, ok
	}
	for _, ancestor := range ancestorScopes(fromScope) {
		if e, ok := s.entitiesByParserScope[qualify(ancestor, name)]; ok {
			return e, ok
		}
	}
	return nil, false
}

// ancestorScopes returns scope, then each of its enclosing scopes, ending
// with "" (the global scope), e.g. "A::B::C" -> ["A::B::C", "A::B", "A", ""].
func ancestorScopes(scope string) []string {
	if scope == "" {
		return []string{""}
	}
	parts := strings.Split(scope, "::")
	out := make([]string, 0, len(parts)+1)
	for i := len(parts); i > 0; i-- {
		out = append(out, strings.Join(parts[:i], "::"))
	}
	out = append(out, "")
	return out
}

// IterateEntities returns every named entity registered so far, in
// installation order ("Iterate nodes").
func (s *Store) IterateEntities() []Entity { return s.order }

// IterateTypes returns every named type plus every anonymous
// sequence/dictionary installed so far.
func (s *Store) IterateTypes() []Type {
	types := make([]Type, 0, len(s.typesByModuleScope)+len(s.anonymous))
	for _, t := range s.typesByModuleScope {
		types = append(types, t)
	}
	types = append(types, s.anonymous...)
	return types
}

// InstallFile registers a parsed File (and its top-level modules) into
// the store. The scope resolver (package compile) is responsible for
// having already walked the file and registered every descendant via
// RegisterType/RegisterEntity; InstallFile just tracks file-level
// bookkeeping ("Install top-level module").
func (s *Store) InstallFile(f *File) {
	s.Files = append(s.Files, f)
	for _, m := range f.TopLevelModules {
		s.addTopLevelModule(m)
	}
}

func (s *Store) addTopLevelModule(m *Module) {
	for _, existing := range s.TopLevelModules {
		if existing == m {
			return
		}
	}
	s.TopLevelModules = append(s.TopLevelModules, m)
}
