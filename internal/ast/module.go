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

// Module is a named scope containing other definitions, including nested
// modules. Re-opening (multiple declarations of the same
// module, possibly across files) merges their Decls in declaration order;
// the merge itself happens in the Store's installation step (store.go),
// since it requires comparing against already-installed modules.
type Module struct {
	EntityBase
	Decls []Definition
}

func (m *Module) Contents() []Definition { return m.Decls }
func (m *Module) definitionNode()        {}

// Append is used by the Store when re-opening a module: the new
// declaration's contents are appended to the existing Module node so both
// declarations' children end up reachable from the single merged node.
func (m *Module) Append(decls ...Definition) {
	m.Decls = append(m.Decls, decls...)
}
