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

import (
	"strings"

	itoken "github.com/InsertCreativityHere/slicec-go/internal/token"
)

// lexer is a simple hand-rolled scanner over Slice source text:
// rune-at-a-time scanning with an explicit byte offset, sized for a
// small, declaration-shaped grammar with no need for a generated
// lexer or lookahead beyond one token.
type lexer struct {
	file   *itoken.File
	src    []byte
	offset int
	errf   func(span itoken.Span, format string, args ...interface{})

	// docLines accumulates consecutive "///" comment bodies seen since the
	// last real token, so the parser can attach them to whichever
	// declaration follows.
	docLines    []string
	docSpan     itoken.Span
	hasDoc      bool
}

func newLexer(file *itoken.File, src []byte, errf func(itoken.Span, string, ...interface{})) *lexer {
	return &lexer{file: file, src: src, errf: errf}
}

func (l *lexer) peekByte() byte {
	if l.offset >= len(l.src) {
		return 0
	}
	return l.src[l.offset]
}

func (l *lexer) byteAt(n int) byte {
	if l.offset+n >= len(l.src) {
		return 0
	}
	return l.src[l.offset+n]
}

func (l *lexer) span(start int) itoken.Span {
	return l.file.Span(start, l.offset)
}

// lexAll tokenizes the entire source, stripping ordinary comments, doc
// comments and whitespace. Doc-comment ("///") lines are not returned as
// tokens; next buffers them for takeDocComment, through which the parser
// attaches them to the declaration that follows.
func (l *lexer) lexAll() []lexToken {
	var toks []lexToken
	for {
		t := l.next()
		toks = append(toks, t)
		if t.kind == tokEOF {
			break
		}
	}
	return toks
}

func (l *lexer) next() lexToken {
	l.skipWhitespaceAndComments()
	start := l.offset
	if l.offset >= len(l.src) {
		return lexToken{kind: tokEOF, span: l.span(start)}
	}
	c := l.src[l.offset]
	switch {
	case isIdentStart(c):
		return l.lexIdent(start)
	case c >= '0' && c <= '9':
		return l.lexInt(start)
	case c == '"':
		return l.lexString(start)
	}
	switch c {
	case '{':
		l.offset++
		return lexToken{kind: tokLBrace, span: l.span(start)}
	case '}':
		l.offset++
		return lexToken{kind: tokRBrace, span: l.span(start)}
	case '(':
		l.offset++
		return lexToken{kind: tokLParen, span: l.span(start)}
	case ')':
		l.offset++
		return lexToken{kind: tokRParen, span: l.span(start)}
	case '[':
		if l.byteAt(1) == '[' {
			l.offset += 2
			return lexToken{kind: tokLDBracket, span: l.span(start)}
		}
		l.offset++
		return lexToken{kind: tokLBracket, span: l.span(start)}
	case ']':
		if l.byteAt(1) == ']' {
			l.offset += 2
			return lexToken{kind: tokRDBracket, span: l.span(start)}
		}
		l.offset++
		return lexToken{kind: tokRBracket, span: l.span(start)}
	case ':':
		if l.byteAt(1) == ':' {
			l.offset += 2
			return lexToken{kind: tokColonColon, span: l.span(start)}
		}
		l.offset++
		return lexToken{kind: tokColon, span: l.span(start)}
	case ';':
		l.offset++
		return lexToken{kind: tokSemicolon, span: l.span(start)}
	case ',':
		l.offset++
		return lexToken{kind: tokComma, span: l.span(start)}
	case '?':
		l.offset++
		return lexToken{kind: tokQuestion, span: l.span(start)}
	case '<':
		l.offset++
		return lexToken{kind: tokLAngle, span: l.span(start)}
	case '>':
		l.offset++
		return lexToken{kind: tokRAngle, span: l.span(start)}
	case '=':
		l.offset++
		return lexToken{kind: tokEquals, span: l.span(start)}
	case '-':
		if l.byteAt(1) == '>' {
			l.offset += 2
			return lexToken{kind: tokArrow, span: l.span(start)}
		}
	}
	l.offset++
	if l.errf != nil {
		l.errf(l.span(start), "unexpected character %q", string(c))
	}
	return l.next()
}

func (l *lexer) skipWhitespaceAndComments() {
	for l.offset < len(l.src) {
		c := l.src[l.offset]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.offset++
		case c == '/' && l.byteAt(1) == '/' && l.byteAt(2) == '/':
			l.lexDocCommentLine()
		case c == '/' && l.byteAt(1) == '/':
			for l.offset < len(l.src) && l.src[l.offset] != '\n' {
				l.offset++
			}
		case c == '/' && l.byteAt(1) == '*':
			l.offset += 2
			for l.offset < len(l.src) && !(l.peekByte() == '*' && l.byteAt(1) == '/') {
				l.offset++
			}
			if l.offset < len(l.src) {
				l.offset += 2
			}
		default:
			return
		}
	}
}

// lexDocCommentLine consumes one "/// rest-of-line" run and appends its
// trimmed body to the pending doc-comment buffer. Consecutive doc-comment
// lines, separated only by whitespace other passes treat as insignificant,
// accumulate into a single DocComment attached by the parser to whichever
// declaration follows.
func (l *lexer) lexDocCommentLine() {
	start := l.offset
	if !l.hasDoc {
		l.docSpan = l.span(start)
	}
	l.offset += 3
	lineStart := l.offset
	for l.offset < len(l.src) && l.src[l.offset] != '\n' {
		l.offset++
	}
	l.docLines = append(l.docLines, strings.TrimSpace(string(l.src[lineStart:l.offset])))
	l.docSpan.End = l.file.Position(l.offset)
	l.hasDoc = true
}

// takeDocComment returns the accumulated doc-comment body since the last
// call, clearing the buffer.
func (l *lexer) takeDocComment() (string, itoken.Span, bool) {
	if !l.hasDoc {
		return "", itoken.Span{}, false
	}
	text := strings.Join(l.docLines, "\n")
	span := l.docSpan
	l.docLines = nil
	l.hasDoc = false
	return text, span, true
}

func (l *lexer) lexIdent(start int) lexToken {
	for l.offset < len(l.src) && isIdentPart(l.src[l.offset]) {
		l.offset++
	}
	return lexToken{kind: tokIdent, text: string(l.src[start:l.offset]), span: l.span(start)}
}

func (l *lexer) lexInt(start int) lexToken {
	for l.offset < len(l.src) && l.src[l.offset] >= '0' && l.src[l.offset] <= '9' {
		l.offset++
	}
	return lexToken{kind: tokInt, text: string(l.src[start:l.offset]), span: l.span(start)}
}

func (l *lexer) lexString(start int) lexToken {
	l.offset++ // opening quote
	for l.offset < len(l.src) && l.src[l.offset] != '"' {
		if l.src[l.offset] == '\\' {
			l.offset++
		}
		l.offset++
	}
	text := string(l.src[start+1 : min(l.offset, len(l.src))])
	if l.offset < len(l.src) {
		l.offset++ // closing quote
	}
	return lexToken{kind: tokString, text: text, span: l.span(start)}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
