// Copyright 2026 The accelcfg Authors.
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

package cfgparse

import (
	"fmt"
	"strings"

	"github.com/nganet/accelcfg/internal/cfgerr"
	"github.com/nganet/accelcfg/internal/cfglex"
)

// state is the PFSM's tagged state, replacing the source's computed-goto
// label-as-value dispatch with an explicit variable and switch loop (see
// Design Notes in the spec this implements).
type state int

const (
	stateStart state = iota
	stateValOrAttr
	stateMaybeEq
)

// Parser is the PFSM: a token-driven state machine that accumulates one
// Entry per call to ParseEntry. It keeps a single token of look-ahead
// instead of true peek, which is all the grammar's value-vs-attribute
// ambiguity needs.
type Parser struct {
	lex *cfglex.Lexer
	cur cfglex.Token
}

// New constructs a Parser over input and primes the first token.
func New(input string) *Parser {
	p := &Parser{lex: cfglex.New(input)}
	p.cur = p.lex.Next()
	return p
}

func (p *Parser) advance() { p.cur = p.lex.Next() }

// AtEnd reports whether the parser is positioned at a clean end of input.
func (p *Parser) AtEnd() bool { return p.cur.Kind == cfglex.End }

// AtRBrace reports whether the parser is positioned at '}', used by the
// nested-block handler to know when a child block is finished.
func (p *Parser) AtRBrace() bool { return p.cur.Kind == cfglex.RBrace }

// ConsumeLBrace consumes the current '{' token. Callers use this to enter a
// nested block once ParseEntry has reported HasChildren.
func (p *Parser) ConsumeLBrace() error {
	if p.cur.Kind != cfglex.LBrace {
		return p.syntaxErr()
	}
	p.advance()
	return nil
}

// ConsumeRBrace consumes the current '}' token, ending a nested block.
func (p *Parser) ConsumeRBrace() error {
	if p.cur.Kind != cfglex.RBrace {
		return p.syntaxErr()
	}
	p.advance()
	return nil
}

// ParseEntry consumes tokens until one complete entry has been built,
// leaving the position at the token that terminates it: either just after
// ';', or at '{' with HasChildren set. It returns the zero Entry and a nil
// error at a clean end of input.
func (p *Parser) ParseEntry() (Entry, error) {
	if p.AtEnd() {
		return Entry{}, nil
	}

	var e Entry
	var pendingLiteral string
	st := stateStart

	for {
		switch st {
		case stateStart:
			if p.cur.Kind != cfglex.Literal {
				return Entry{}, p.syntaxErr()
			}
			if !IsIdentifier(p.cur.Literal) {
				return Entry{}, p.invalidIdentifierErr(p.cur.Literal)
			}
			e.Name = p.cur.Literal
			p.advance()
			st = stateValOrAttr

		case stateValOrAttr:
			switch p.cur.Kind {
			case cfglex.Literal:
				pendingLiteral = p.cur.Literal
				p.advance()
				st = stateMaybeEq
			case cfglex.Semi:
				p.advance()
				return e, nil
			case cfglex.LBrace:
				e.HasChildren = true
				return e, nil // dispatcher's nested-block handler eats '{'
			default:
				return Entry{}, p.syntaxErr()
			}

		case stateMaybeEq:
			if p.cur.Kind == cfglex.Eq {
				if !IsIdentifier(pendingLiteral) {
					return Entry{}, p.invalidIdentifierErr(pendingLiteral)
				}
				p.advance() // consume '='
				if p.cur.Kind != cfglex.Literal {
					return Entry{}, p.syntaxErr()
				}
				if len(e.Attrs) >= MaxAttrs {
					return Entry{}, p.capacityErr()
				}
				e.Attrs = append(e.Attrs, Attr{Key: pendingLiteral, Value: p.cur.Literal})
				p.advance()
				st = stateValOrAttr
			} else {
				if len(e.Values) >= MaxVals {
					return Entry{}, p.capacityErr()
				}
				e.Values = append(e.Values, pendingLiteral)
				st = stateValOrAttr
				// current token is not consumed; VAL_OR_ATTR re-examines it
			}
		}
	}
}

func (p *Parser) syntaxErr() error {
	err := cfgerr.New(cfgerr.Syntax, "", nil)
	err.Snippet = p.Snippet(80)
	return err
}

func (p *Parser) invalidIdentifierErr(name string) error {
	return cfgerr.New(cfgerr.InvalidIdentifier, name, nil)
}

func (p *Parser) capacityErr() error {
	return cfgerr.New(cfgerr.Capacity, "", nil)
}

// Snippet formats up to maxBytes of input immediately before the current
// token, followed by a caret marking the failing position — the context
// the schema dispatcher attaches to syntax errors.
func (p *Parser) Snippet(maxBytes int) string {
	input := p.lex.Input()
	end := p.cur.Offset
	if end > len(input) {
		end = len(input)
	}
	start := end - maxBytes
	if start < 0 {
		start = 0
	}
	before := input[start:end]
	// Render on one line: a raw newline in the snippet would misplace the caret.
	before = strings.ReplaceAll(before, "\n", "\\n")
	return fmt.Sprintf("%s\n%s^", before, strings.Repeat(" ", len(before)))
}
