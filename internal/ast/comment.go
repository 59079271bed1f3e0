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

// DocParam is an `@param name description` entry in a doc comment.
type DocParam struct {
	Base
	Name string
	Text string
}

// DocThrows is an `@throws ExceptionName description` entry.
type DocThrows struct {
	Base
	ExceptionRef *EntityRef
	Text         string
}

// DocComment is a structured comment attached to an entity: an overview
// plus the cross-referencing sections the comment validator checks.
type DocComment struct {
	Base
	Overview []string
	Params   []DocParam
	Returns  []string
	Throws   []DocThrows
	SeeAlso  []*EntityRef
	// Deprecated mirrors an `@deprecated` tag inside the comment body,
	// independent of the `[[deprecated]]` attribute.
	Deprecated bool
}
