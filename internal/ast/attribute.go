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

// Attribute is a single `[[directive(arguments...)]]` or `[directive(...)]`
// directive attached to some entity, stored structurally before any
// known-directive promotion so unrecognized attributes stay
// forward-compatible with target-language-specific tooling.
type Attribute struct {
	Base
	Directive string
	Arguments []string
}

// Attributes holds both the raw attribute list a node was parsed with and
// the strongly typed view over the directives the core itself understands
// (the "parse-attributes pass"). Unknown directives remain only
// in Raw and pass through unexamined by the core.
type Attributes struct {
	Raw []*Attribute

	// Allow lists warning codes (or "All") suppressed by an allow(...)
	// attribute on this entity.
	Allow []string

	Deprecated       bool
	DeprecatedReason string

	// Compress marks a type eligible for compressed encoding; it has no
	// effect on any pass in this package but is preserved for downstream
	// code generators.
	Compress bool

	// Oneway marks an operation as fire-and-forget.
	Oneway bool

	// Format pins a serialization hint ("compact", "sliced") for class
	// and exception hierarchies; downstream-only, like Compress.
	Format string

	// EncodingVersion is set by a file-level `[[enc = N]]` attribute;
	// nil if absent.
	EncodingVersion *int
}

// Find returns the raw attribute with the given directive name, or nil.
func (a *Attributes) Find(directive string) *Attribute {
	for _, attr := range a.Raw {
		if attr.Directive == directive {
			return attr
		}
	}
	return nil
}

// FindAll returns every raw attribute with the given directive name, used
// to detect non-repeatable attributes applied more than once.
func (a *Attributes) FindAll(directive string) []*Attribute {
	var out []*Attribute
	for _, attr := range a.Raw {
		if attr.Directive == directive {
			out = append(out, attr)
		}
	}
	return out
}

// EntityRef is an unresolved-until-patched doc-comment reference: the
// name after `@throws` or `@see`. It is intentionally
// simpler than TypeRef: it resolves to any Entity, not just a Type, since
// a linked identifier must resolve in the scope of the commented entity
// but need not itself be a type.
type EntityRef struct {
	Base
	Name       string
	Resolution Entity
}
