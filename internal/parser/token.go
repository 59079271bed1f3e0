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

package parser

import "github.com/InsertCreativityHere/slicec-go/internal/token"

// tokenKind classifies one lexical token. Slice keywords ("module",
// "struct", "tag", ...) are not reserved words at the lexer level -- they
// lex as plain identifiers -- so the parser itself decides, from context,
// whether an identifier token is being used as a keyword.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokString
	tokDocComment // a contiguous run of "///" lines, text already stripped of the marker

	tokLBrace    // {
	tokRBrace    // }
	tokLParen    // (
	tokRParen    // )
	tokLBracket  // [
	tokRBracket  // ]
	tokLDBracket // [[
	tokRDBracket // ]]
	tokColon     // :
	tokColonColon
	tokSemicolon // ;
	tokComma     // ,
	tokQuestion  // ?
	tokLAngle    // <
	tokRAngle    // >
	tokEquals    // =
	tokArrow     // ->
)

type lexToken struct {
	kind tokenKind
	text string // identifier/int/string literal text, doc comment body
	span token.Span
}
