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

// Parameter is a typed member of an Operation: a request parameter or a
// return-tuple member, distinguished by IsReturn.
type Parameter struct {
	MemberBase
	Streamed bool
	IsReturn bool
}

// Operation is a named member of an Interface: parameters, return
// members, and a throws clause.
type Operation struct {
	EntityBase
	Params        []*Parameter
	ReturnMembers []*Parameter
	// ReturnIsTuple records whether the return spec was written in
	// parenthesized tuple form ("-> (a: T, b: U)") as opposed to a single
	// unnamed type ("-> T"); the two are indistinguishable once reduced to
	// a ReturnMembers slice, so the parser records it here for the
	// operation validator's return-tuple-arity check.
	ReturnIsTuple bool
	Throws        []*TypeRef // exception types this operation may throw
	// AnyException marks a throws clause of the literal form
	// `throws AnyException`, Slice1 only.
	AnyException bool
}

// Contents returns parameters followed by return members, in declaration
// order, satisfying the Visitor's definition-order contract by treating
// the operation's full signature as one ordered list.
func (o *Operation) Contents() []*Parameter {
	all := make([]*Parameter, 0, len(o.Params)+len(o.ReturnMembers))
	all = append(all, o.Params...)
	all = append(all, o.ReturnMembers...)
	return all
}

// Interface is a set of operations; it may extend multiple interfaces.
type Interface struct {
	TypeEntityBase
	BaseRefs []*TypeRef
	Ops      []*Operation
}

func (i *Interface) Contents() []*Operation { return i.Ops }
func (i *Interface) Operations() []*Operation { return i.Ops }

// Bases returns the resolved base interfaces, skipping any reference that
// has not been patched (already reported by the patcher).
func (i *Interface) Bases() []*Interface {
	var bases []*Interface
	for _, ref := range i.BaseRefs {
		if ref.Definition == nil {
			continue
		}
		if b, ok := ref.Definition.(*Interface); ok {
			bases = append(bases, b)
		}
	}
	return bases
}

// AllOperations returns every operation reachable from this interface,
// inherited operations first (base declaration order, depth first),
// followed by this interface's own operations, with later (more derived)
// declarations of an identifier shadowing earlier ones removed - the
// identifier validator is what reports the shadowing, this accessor just
// gives validators and the encoding computer the flattened view they
// need to check every parameter, return member, and throws entry
// reachable through inheritance.
func (i *Interface) AllOperations() []*Operation {
	index := map[string]int{}
	var all []*Operation
	var walk func(iface *Interface)
	walk = func(iface *Interface) {
		for _, base := range iface.Bases() {
			walk(base)
		}
		for _, op := range iface.Ops {
			if idx, ok := index[op.Identifier()]; ok {
				// A more-derived declaration shadows the inherited one;
				// keep its position but take the derived signature.
				all[idx] = op
				continue
			}
			index[op.Identifier()] = len(all)
			all = append(all, op)
		}
	}
	walk(i)
	return all
}

func (i *Interface) definitionNode() {}
