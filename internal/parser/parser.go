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

// Package parser implements the Parse phase: lexing and
// recursive-descent parsing of one Slice source file into a raw *ast.File,
// with type names left as unresolved textual ast.TypeRef values for the
// later scope-resolution and patching phases to fill in.
//
// The grammar models Slice's real surface syntax; the parser itself is a
// single-pass recursive descent over a hand-rolled token cursor, the
// natural shape for a small, fixed grammar with no ambiguity to resolve.
package parser

import (
	"strconv"

	"github.com/InsertCreativityHere/slicec-go/internal/ast"
	"github.com/InsertCreativityHere/slicec-go/internal/errors"
	itoken "github.com/InsertCreativityHere/slicec-go/internal/token"
)

type parser struct {
	lex  *lexer
	tf   *itoken.File
	r    *errors.Reporter
	mode ast.CompilationMode

	tok        lexToken
	doc        string
	docSpan    itoken.Span
	hasDoc     bool
}

// ParseFile lexes and parses one Slice source file, returning the raw
// *ast.File. definitions is the preprocessor symbol table
// (Options.Definitions); src is run through Preprocess before lexing so
// conditional blocks never reach the grammar.
// Syntax errors are reported to r and parsing recovers at the next
// declaration boundary so a single mistake does not abort the whole file
// ("accumulate, don't abort").
func ParseFile(tf *itoken.File, src []byte, path string, definitions map[string]bool, r *errors.Reporter) *ast.File {
	src = Preprocess(src, definitions)
	p := &parser{tf: tf, r: r, mode: ast.Slice2}
	p.lex = newLexer(tf, src, func(span itoken.Span, format string, args ...interface{}) {
		r.Report(errors.New(errors.Error, errors.Syntax, span, format, args...))
	})
	p.advance()

	f := &ast.File{Path: path, Mode: ast.Slice2}
	p.parseFileAttributes(f)
	for p.tok.kind != tokEOF {
		mod := p.parseModule()
		if mod != nil {
			f.TopLevelModules = append(f.TopLevelModules, mod)
		}
	}
	return f
}

func (p *parser) advance() {
	p.tok = p.lex.next()
	p.doc, p.docSpan, p.hasDoc = p.lex.takeDocComment()
}

func (p *parser) takePendingDoc() *ast.DocComment {
	if !p.hasDoc {
		return nil
	}
	doc := parseDocCommentBody(p.doc, p.docSpan)
	p.hasDoc = false
	return doc
}

func (p *parser) errorf(span itoken.Span, format string, args ...interface{}) {
	p.r.Report(errors.New(errors.Error, errors.Syntax, span, format, args...))
}

func (p *parser) expect(kind tokenKind, what string) lexToken {
	tok := p.tok
	if tok.kind != kind {
		p.errorf(tok.span, "expected %s, found %q", what, tok.text)
	} else {
		p.advance()
	}
	return tok
}

func (p *parser) at(kind tokenKind) bool { return p.tok.kind == kind }

// atKeyword reports whether the current token is the identifier kw;
// Slice keywords are not reserved at the lexer level (token.go), so every
// keyword check is spelled this way.
func (p *parser) atKeyword(kw string) bool {
	return p.tok.kind == tokIdent && p.tok.text == kw
}

func (p *parser) expectKeyword(kw string) {
	if !p.atKeyword(kw) {
		p.errorf(p.tok.span, "expected %q, found %q", kw, p.tok.text)
		return
	}
	p.advance()
}

func (p *parser) expectIdent(what string) (string, itoken.Span) {
	tok := p.tok
	if tok.kind != tokIdent {
		p.errorf(tok.span, "expected %s, found %q", what, tok.text)
		return "", tok.span
	}
	p.advance()
	return tok.text, tok.span
}

// recoverToDeclBoundary skips tokens until the next ';', '}', or EOF, so a
// malformed declaration does not desynchronize the whole file.
func (p *parser) recoverToDeclBoundary() {
	for p.tok.kind != tokSemicolon && p.tok.kind != tokRBrace && p.tok.kind != tokEOF {
		p.advance()
	}
	if p.tok.kind == tokSemicolon {
		p.advance()
	}
}

// --- file level -------------------------------------------------------

// parseFileAttributes consumes the leading run of file-level
// `[[directive(...)]]` attributes, including the `mode = Slice1|Slice2`
// directive and the supplemental `enc = N` directive.
func (p *parser) parseFileAttributes(f *ast.File) {
	for p.at(tokLDBracket) {
		start := p.tok.span
		attrs := p.parseAttributeList()
		for _, a := range attrs {
			switch a.Directive {
			case "mode":
				if len(a.Arguments) == 1 {
					switch a.Arguments[0] {
					case "Slice1":
						f.Mode, f.ModeExplicit = ast.Slice1, true
						p.mode = ast.Slice1
					case "Slice2":
						f.Mode, f.ModeExplicit = ast.Slice2, true
						p.mode = ast.Slice2
					default:
						p.errorf(start, "unknown mode %q", a.Arguments[0])
					}
				}
			case "enc":
				if len(a.Arguments) == 1 {
					if n, err := strconv.Atoi(a.Arguments[0]); err == nil {
						if n != 1 && n != 2 {
							p.r.Report(errors.New(errors.Error, errors.InvalidEncodingVersion, start,
								"%d is not a recognized encoding version; expected 1 or 2", n))
						} else if f.Attrs.EncodingVersion != nil {
							p.r.Report(errors.New(errors.Error, errors.MultipleEncodingVersions, start,
								"multiple encoding-version attributes"))
						} else {
							f.Attrs.EncodingVersion = &n
						}
					}
				}
			case "allow":
				f.Attrs.Allow = append(f.Attrs.Allow, a.Arguments...)
			default:
				f.Attrs.Raw = append(f.Attrs.Raw, a)
			}
		}
	}
}

// parseAttributeList parses any number of adjacent attribute blocks, each
// either `[[d(args), d2(args)]]` (double-bracket, used at file, entity and
// type-ref-use scope) or `[d(args)]` (single-bracket, which the original
// grammar reserves for member-local attributes like `tag`), in any mix.
func (p *parser) parseAttributeList() []*ast.Attribute {
	var attrs []*ast.Attribute
	for p.at(tokLDBracket) || p.at(tokLBracket) {
		double := p.at(tokLDBracket)
		p.advance()
		for {
			a := p.parseAttribute()
			if a != nil {
				attrs = append(attrs, a)
			}
			if p.at(tokComma) {
				p.advance()
				continue
			}
			break
		}
		if double {
			p.expect(tokRDBracket, "']]'")
		} else {
			p.expect(tokRBracket, "']'")
		}
	}
	return attrs
}

func (p *parser) parseAttribute() *ast.Attribute {
	if !p.at(tokIdent) {
		p.errorf(p.tok.span, "expected attribute directive")
		return nil
	}
	start := p.tok.span
	name, _ := p.expectIdent("attribute directive")
	if p.at(tokColonColon) {
		// Scoped directive spelling, e.g. "cs::identifier"; the core only
		// recognizes unscoped directive names, so scoped ones always end
		// up in Attributes.Raw untouched, forward-compatible with
		// target-language-specific tooling.
		for p.at(tokColonColon) {
			p.advance()
			part, _ := p.expectIdent("attribute directive segment")
			name = name + "::" + part
		}
	}
	attr := &ast.Attribute{Base: ast.NewBase(start), Directive: name}
	if p.at(tokEquals) {
		p.advance()
		attr.Arguments = append(attr.Arguments, p.parseAttributeArgument())
	} else if p.at(tokLParen) {
		p.advance()
		if !p.at(tokRParen) {
			for {
				attr.Arguments = append(attr.Arguments, p.parseAttributeArgument())
				if p.at(tokComma) {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(tokRParen, "')'")
	}
	attr.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return attr
}

func (p *parser) parseAttributeArgument() string {
	switch p.tok.kind {
	case tokString, tokIdent, tokInt:
		s := p.tok.text
		p.advance()
		return s
	default:
		p.errorf(p.tok.span, "expected attribute argument")
		p.advance()
		return ""
	}
}

// --- modules ------------------------------------------------------------

func (p *parser) parseModule() *ast.Module {
	doc := p.takePendingDoc()
	attrs := p.parseAttributeList()
	start := p.tok.span
	if !p.atKeyword("module") {
		p.errorf(p.tok.span, "expected 'module', found %q", p.tok.text)
		p.recoverToDeclBoundary()
		if p.at(tokRBrace) {
			p.advance()
		}
		return nil
	}
	p.advance()

	name, identSpan := p.parseScopedIdentPath()
	m := &ast.Module{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}
	m.Attrs.Raw = attrs
	m.DocComment_ = doc

	if p.at(tokLBrace) {
		p.advance()
		for !p.at(tokRBrace) && !p.at(tokEOF) {
			if decl := p.parseDefinition(); decl != nil {
				m.Decls = append(m.Decls, decl)
			}
		}
		p.expect(tokRBrace, "'}'")
	} else {
		// File-scoped module: "module A::B;" - everything that follows in
		// the file, up to EOF, belongs to it; a later "module X;" is parsed
		// as a nested module declaration. This is a simplification of the real
		// grammar's file-scoped-module rule, sufficient for the AST shapes
		// this compiler cares about.
		p.expect(tokSemicolon, "';'")
		for !p.at(tokEOF) {
			if decl := p.parseDefinition(); decl != nil {
				m.Decls = append(m.Decls, decl)
			}
		}
	}
	m.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return m
}

// parseScopedIdentPath parses a "A::B::C"-shaped dotted identifier, used
// for module names and base-type references.
func (p *parser) parseScopedIdentPath() (string, itoken.Span) {
	start := p.tok.span
	name, _ := p.expectIdent("identifier")
	for p.at(tokColonColon) {
		p.advance()
		part, _ := p.expectIdent("identifier")
		name += "::" + part
	}
	return name, start
}

// parseDefinition parses one module-level declaration: a nested module or
// any of the named type kinds.
func (p *parser) parseDefinition() ast.Definition {
	doc := p.takePendingDoc()
	attrs := p.parseAttributeList()

	switch {
	case p.atKeyword("module"):
		// Doc/attrs on a nested module were already consumed above; push
		// them back through a tiny local re-parse path.
		return p.finishModuleWith(doc, attrs)
	case p.atKeyword("struct"), p.atKeyword("compact"):
		return p.parseStruct(doc, attrs)
	case p.atKeyword("class"):
		return p.parseClass(doc, attrs)
	case p.atKeyword("exception"):
		return p.parseException(doc, attrs)
	case p.atKeyword("interface"):
		return p.parseInterface(doc, attrs)
	case p.atKeyword("enum"), p.atKeyword("unchecked"):
		return p.parseEnum(doc, attrs)
	case p.atKeyword("typealias"):
		return p.parseTypeAlias(doc, attrs)
	case p.atKeyword("custom"):
		return p.parseCustomType(doc, attrs)
	case p.at(tokEOF):
		return nil
	default:
		p.errorf(p.tok.span, "expected a definition, found %q", p.tok.text)
		p.recoverToDeclBoundary()
		return nil
	}
}

func (p *parser) finishModuleWith(doc *ast.DocComment, attrs []*ast.Attribute) ast.Definition {
	start := p.tok.span
	p.advance() // "module"
	name, identSpan := p.parseScopedIdentPath()
	m := &ast.Module{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}
	m.Attrs.Raw = attrs
	m.DocComment_ = doc
	p.expect(tokLBrace, "'{'")
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		if decl := p.parseDefinition(); decl != nil {
			m.Decls = append(m.Decls, decl)
		}
	}
	p.expect(tokRBrace, "'}'")
	m.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return m
}

// --- aggregates -----------------------------------------------------------

func (p *parser) parseStruct(doc *ast.DocComment, attrs []*ast.Attribute) *ast.Struct {
	start := p.tok.span
	compact := false
	if p.atKeyword("compact") {
		compact = true
		p.advance()
	}
	p.expectKeyword("struct")
	name, identSpan := p.expectIdent("struct name")
	s := &ast.Struct{TypeEntityBase: ast.TypeEntityBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}, IsCompact: compact}
	s.Attrs.Raw = attrs
	s.DocComment_ = doc

	p.expect(tokLBrace, "'{'")
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		s.FieldList = append(s.FieldList, p.parseField())
		p.consumeOptionalComma()
	}
	p.expect(tokRBrace, "'}'")
	s.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return s
}

func (p *parser) parseClass(doc *ast.DocComment, attrs []*ast.Attribute) *ast.Class {
	start := p.tok.span
	p.expectKeyword("class")
	name, identSpan := p.expectIdent("class name")
	c := &ast.Class{TypeEntityBase: ast.TypeEntityBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}}
	c.Attrs.Raw = attrs
	c.DocComment_ = doc
	if p.atKeyword("extends") {
		p.advance()
		c.BaseRef = p.parseTypeRefByName()
	}
	p.expect(tokLBrace, "'{'")
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		c.FieldList = append(c.FieldList, p.parseField())
		p.consumeOptionalComma()
	}
	p.expect(tokRBrace, "'}'")
	c.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return c
}

func (p *parser) parseException(doc *ast.DocComment, attrs []*ast.Attribute) *ast.Exception {
	start := p.tok.span
	p.expectKeyword("exception")
	name, identSpan := p.expectIdent("exception name")
	e := &ast.Exception{TypeEntityBase: ast.TypeEntityBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}}
	e.Attrs.Raw = attrs
	e.DocComment_ = doc
	if p.atKeyword("extends") {
		p.advance()
		e.BaseRef = p.parseTypeRefByName()
	}
	p.expect(tokLBrace, "'{'")
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		e.FieldList = append(e.FieldList, p.parseField())
		p.consumeOptionalComma()
	}
	p.expect(tokRBrace, "'}'")
	e.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return e
}

func (p *parser) parseField() *ast.Field {
	doc := p.takePendingDoc()
	attrs := p.parseAttributeList()
	tag := p.parseOptionalTag()
	start := p.tok.span
	name, identSpan := p.expectIdent("field name")
	p.expect(tokColon, "':'")
	typ := p.parseTypeUse()
	f := &ast.Field{MemberBase: ast.MemberBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}, Type: typ, TagValue: tag}}
	f.Attrs.Raw = attrs
	f.DocComment_ = doc
	f.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return f
}

func (p *parser) consumeOptionalComma() {
	if p.at(tokComma) {
		p.advance()
	}
}

// parseOptionalTag parses a leading `tag(N)` single-bracket-attribute-like
// marker on a field or parameter, here ("Members ... may carry
// a tag").
func (p *parser) parseOptionalTag() *int {
	if !p.atKeyword("tag") {
		return nil
	}
	p.advance()
	p.expect(tokLParen, "'('")
	tok := p.expect(tokInt, "tag value")
	p.expect(tokRParen, "')'")
	n, err := strconv.Atoi(tok.text)
	if err != nil {
		return nil
	}
	return &n
}

// --- interfaces -----------------------------------------------------------

func (p *parser) parseInterface(doc *ast.DocComment, attrs []*ast.Attribute) *ast.Interface {
	start := p.tok.span
	p.expectKeyword("interface")
	name, identSpan := p.expectIdent("interface name")
	i := &ast.Interface{TypeEntityBase: ast.TypeEntityBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}}
	i.Attrs.Raw = attrs
	i.DocComment_ = doc
	if p.atKeyword("extends") {
		p.advance()
		i.BaseRefs = append(i.BaseRefs, p.parseTypeRefByName())
		for p.at(tokComma) {
			p.advance()
			i.BaseRefs = append(i.BaseRefs, p.parseTypeRefByName())
		}
	}
	p.expect(tokLBrace, "'{'")
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		i.Ops = append(i.Ops, p.parseOperation())
	}
	p.expect(tokRBrace, "'}'")
	i.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return i
}

func (p *parser) parseOperation() *ast.Operation {
	doc := p.takePendingDoc()
	attrs := p.parseAttributeList()
	start := p.tok.span
	idempotent := false
	if p.atKeyword("idempotent") {
		idempotent = true
		p.advance()
	}
	name, identSpan := p.expectIdent("operation name")
	op := &ast.Operation{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}
	op.Attrs.Raw = attrs
	op.DocComment_ = doc
	if idempotent {
		op.Attrs.Raw = append(op.Attrs.Raw, &ast.Attribute{Base: ast.NewBase(start), Directive: "idempotent"})
	}

	p.expect(tokLParen, "'('")
	for !p.at(tokRParen) && !p.at(tokEOF) {
		op.Params = append(op.Params, p.parseParameter(false))
		p.consumeOptionalComma()
	}
	p.expect(tokRParen, "')'")

	if p.at(tokArrow) {
		p.advance()
		if p.at(tokLParen) {
			op.ReturnIsTuple = true
			p.advance()
			for !p.at(tokRParen) && !p.at(tokEOF) {
				op.ReturnMembers = append(op.ReturnMembers, p.parseParameter(true))
				p.consumeOptionalComma()
			}
			p.expect(tokRParen, "')'")
		} else {
			op.ReturnMembers = append(op.ReturnMembers, p.parseUnnamedReturn())
		}
	}

	if p.atKeyword("throws") {
		p.advance()
		if p.atKeyword("AnyException") {
			op.AnyException = true
			p.advance()
		} else {
			op.Throws = append(op.Throws, p.parseTypeRefByName())
			for p.at(tokComma) {
				p.advance()
				op.Throws = append(op.Throws, p.parseTypeRefByName())
			}
		}
	}
	p.expect(tokSemicolon, "';'")
	op.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return op
}

// parseParameter parses one named member of an operation's parameter list
// or of a parenthesized return tuple; both positions always spell
// "name: Type".
func (p *parser) parseParameter(isReturn bool) *ast.Parameter {
	doc := p.takePendingDoc()
	attrs := p.parseAttributeList()
	tag := p.parseOptionalTag()
	streamed := false
	if p.atKeyword("stream") {
		streamed = true
		p.advance()
	}
	start := p.tok.span
	name, identSpan := p.expectIdent("parameter name")
	p.expect(tokColon, "':'")
	typ := p.parseTypeUse()
	param := &ast.Parameter{MemberBase: ast.MemberBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}, Type: typ, TagValue: tag}, Streamed: streamed, IsReturn: isReturn}
	param.Attrs.Raw = attrs
	param.DocComment_ = doc
	param.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return param
}

// parseUnnamedReturn parses a single, unnamed return type following a bare
// "-> Type" (as opposed to a parenthesized, named return tuple). The
// resulting Parameter is synthesized with the conventional identifier
// "returnValue" (a return-tuple member still needs an
// Identifier for diagnostics and code generation to name it by).
func (p *parser) parseUnnamedReturn() *ast.Parameter {
	streamed := false
	if p.atKeyword("stream") {
		streamed = true
		p.advance()
	}
	start := p.tok.span
	typ := p.parseTypeUse()
	param := &ast.Parameter{MemberBase: ast.MemberBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: "returnValue", IdentSpan: start,
	}, Type: typ}, Streamed: streamed, IsReturn: true}
	param.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return param
}

// --- enums ------------------------------------------------------------

func (p *parser) parseEnum(doc *ast.DocComment, attrs []*ast.Attribute) *ast.Enum {
	start := p.tok.span
	unchecked := false
	if p.atKeyword("unchecked") {
		unchecked = true
		p.advance()
	}
	p.expectKeyword("enum")
	name, identSpan := p.expectIdent("enum name")
	e := &ast.Enum{TypeEntityBase: ast.TypeEntityBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}, Unchecked: unchecked}
	e.Attrs.Raw = attrs
	e.DocComment_ = doc
	if p.at(tokColon) {
		p.advance()
		e.Underlying = p.parseTypeUse()
	}
	p.expect(tokLBrace, "'{'")
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		e.Enumerators = append(e.Enumerators, p.parseEnumerator())
		p.consumeOptionalComma()
	}
	p.expect(tokRBrace, "'}'")
	e.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return e
}

func (p *parser) parseEnumerator() *ast.Enumerator {
	doc := p.takePendingDoc()
	attrs := p.parseAttributeList()
	start := p.tok.span
	name, identSpan := p.expectIdent("enumerator name")
	en := &ast.Enumerator{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}
	en.Attrs.Raw = attrs
	en.DocComment_ = doc
	if p.at(tokEquals) {
		p.advance()
		tok := p.expect(tokInt, "enumerator value")
		if n, err := strconv.ParseInt(tok.text, 10, 64); err == nil {
			en.Value = &n
			en.ExplicitValue = true
		}
	}
	en.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return en
}

// --- aliases ------------------------------------------------------------

func (p *parser) parseTypeAlias(doc *ast.DocComment, attrs []*ast.Attribute) *ast.TypeAlias {
	start := p.tok.span
	p.expectKeyword("typealias")
	name, identSpan := p.expectIdent("typealias name")
	p.expect(tokEquals, "'='")
	underlying := p.parseTypeUse()
	t := &ast.TypeAlias{TypeEntityBase: ast.TypeEntityBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}, Underlying: underlying}
	t.Attrs.Raw = attrs
	t.DocComment_ = doc
	p.expect(tokSemicolon, "';'")
	t.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return t
}

func (p *parser) parseCustomType(doc *ast.DocComment, attrs []*ast.Attribute) *ast.CustomType {
	start := p.tok.span
	p.expectKeyword("custom")
	name, identSpan := p.expectIdent("custom type name")
	c := &ast.CustomType{TypeEntityBase: ast.TypeEntityBase{EntityBase: ast.EntityBase{
		Base: ast.NewBase(start), Ident: name, IdentSpan: identSpan,
	}}}
	c.Attrs.Raw = attrs
	c.DocComment_ = doc
	p.expect(tokSemicolon, "';'")
	c.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return c
}

// --- type references ------------------------------------------------------

// parseTypeRefByName parses a bare scoped-identifier type reference, used
// for base-class/base-interface/throws-clause positions, which never
// permit '?' or inline sequence/dictionary syntax.
func (p *parser) parseTypeRefByName() *ast.TypeRef {
	start := p.tok.span
	name, _ := p.parseScopedIdentPath()
	ref := &ast.TypeRef{Base: ast.NewBase(start), Name: name}
	ref.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return ref
}

// parseTypeUse parses a full type-use position: a scoped name, or
// `sequence<T>`, or `dictionary<K, V>`, optionally followed by `?`.
func (p *parser) parseTypeUse() *ast.TypeRef {
	start := p.tok.span
	ref := &ast.TypeRef{Base: ast.NewBase(start)}

	switch {
	case p.atKeyword("sequence"):
		p.advance()
		p.expect(tokLAngle, "'<'")
		elem := p.parseTypeUse()
		p.expect(tokRAngle, "'>'")
		ref.Inline = &ast.Sequence{Base: ast.NewBase(start), Element: elem}
	case p.atKeyword("dictionary"):
		p.advance()
		p.expect(tokLAngle, "'<'")
		key := p.parseTypeUse()
		p.expect(tokComma, "','")
		val := p.parseTypeUse()
		p.expect(tokRAngle, "'>'")
		ref.Inline = &ast.Dictionary{Base: ast.NewBase(start), Key: key, Value: val}
	default:
		name, _ := p.parseScopedIdentPath()
		ref.Name = name
	}

	if p.at(tokQuestion) {
		ref.Optional = true
		p.advance()
	}
	ref.SetSpan(p.tf.Span(start.Start.Offset, p.tok.span.Start.Offset))
	return ref
}

// --- doc comment body ----------------------------------------------------

// parseDocCommentBody parses the accumulated "///"-line text of a doc
// comment into its structured form, recognizing "@param name text",
// "@return text", "@throws Name text", "@see Name" and "@deprecated" tag
// lines, with everything else folded into Overview.
func parseDocCommentBody(body string, span itoken.Span) *ast.DocComment {
	dc := &ast.DocComment{Base: ast.NewBase(span)}
	for _, line := range splitLines(body) {
		switch {
		case hasTagPrefix(line, "@param"):
			rest := trimTagPrefix(line, "@param")
			name, text := splitFirstWord(rest)
			dc.Params = append(dc.Params, ast.DocParam{Base: ast.NewBase(span), Name: name, Text: text})
		case hasTagPrefix(line, "@return"):
			dc.Returns = append(dc.Returns, trimTagPrefix(line, "@return"))
		case hasTagPrefix(line, "@throws"):
			rest := trimTagPrefix(line, "@throws")
			name, text := splitFirstWord(rest)
			dc.Throws = append(dc.Throws, ast.DocThrows{
				Base:         ast.NewBase(span),
				ExceptionRef: &ast.EntityRef{Base: ast.NewBase(span), Name: name},
				Text:         text,
			})
		case hasTagPrefix(line, "@see"):
			name := trimTagPrefix(line, "@see")
			dc.SeeAlso = append(dc.SeeAlso, &ast.EntityRef{Base: ast.NewBase(span), Name: name})
		case hasTagPrefix(line, "@deprecated"):
			dc.Deprecated = true
		default:
			dc.Overview = append(dc.Overview, line)
		}
	}
	return dc
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func hasTagPrefix(line, tag string) bool {
	trimmed := trimLeadingSpace(line)
	return len(trimmed) >= len(tag) && trimmed[:len(tag)] == tag
}

func trimTagPrefix(line, tag string) string {
	trimmed := trimLeadingSpace(line)
	return trimLeadingSpace(trimmed[len(tag):])
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

func splitFirstWord(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] != ' ' && s[i] != '\t' {
		i++
	}
	word := s[:i]
	rest := trimLeadingSpace(s[i:])
	return word, rest
}
