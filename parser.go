// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fql

import (
	"fmt"

	"github.com/kvrecs/fql/name"
	"github.com/kvrecs/fql/value"
)

// parser is a recursive-descent LL(1) parser over the lexer's token
// stream. The grammar's only ambiguity - longest-match relation
// operators - is resolved in the lexer, so the parser never needs more
// than one token of lookahead.
type parser struct {
	lex  *lexer
	tok  token
	peek *token
}

func newParser(query string) *parser {
	return &parser{lex: newLexer(query)}
}

func (p *parser) advance() error {
	if p.peek != nil {
		p.tok, p.peek = *p.peek, nil
		return nil
	}
	tok, err := p.lex.nextToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(t tokenType, reason string, sentinel error) error {
	if p.tok.Type != t {
		return newParseError(p.tok.offset, reason, fmt.Errorf("%w: got %s", sentinel, p.tok.Type))
	}
	return nil
}

// parseQuery parses: query := SELECT field_list WHERE or_expr
func (p *parser) parseQuery() (*Query, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(selectToken, "expected SELECT", ErrExpectedSelect); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	fields, err := p.parseFieldList()
	if err != nil {
		return nil, err
	}

	if err := p.expect(whereToken, "expected WHERE", ErrExpectedWhere); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	where, err := p.parseOrExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != eofToken {
		return nil, newParseError(p.tok.offset, "unexpected token", fmt.Errorf("%w: trailing %s", ErrUnexpectedToken, p.tok.Type))
	}

	return &Query{Projection: fields, Where: where}, nil
}

// parseFieldList parses: field_list := field_name ("," field_name)*
func (p *parser) parseFieldList() ([]name.Name, error) {
	var fields []name.Name
	for {
		if p.tok.Type != identToken {
			return nil, newParseError(p.tok.offset, "expected field name", fmt.Errorf("%w: got %s", ErrExpectedFieldName, p.tok.Type))
		}
		fields = append(fields, name.Intern(p.tok.Value))
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Type != commaToken {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if len(fields) == 0 {
		return nil, newParseError(p.tok.offset, "empty projection", ErrEmptyProjection)
	}
	return fields, nil
}

// parseOrExpr parses: or_expr := and_expr (OR and_expr)*
func (p *parser) parseOrExpr() (PredicateNode, error) {
	first, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	children := []PredicateNode{first}
	for p.tok.Type == orToken {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	return newOr(children), nil
}

// parseAndExpr parses: and_expr := primary (AND primary)*
func (p *parser) parseAndExpr() (PredicateNode, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	children := []PredicateNode{first}
	for p.tok.Type == andToken {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	return newAnd(children), nil
}

// parsePrimary parses: primary := "(" or_expr ")" | cmp
func (p *parser) parsePrimary() (PredicateNode, error) {
	if p.tok.Type == lparenToken {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(rparenToken, "missing closing paren", ErrMissingClosingParen); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return p.parseCmp()
}

// parseCmp parses: cmp := field_name rel_op literal
func (p *parser) parseCmp() (PredicateNode, error) {
	if p.tok.Type != identToken {
		return nil, newParseError(p.tok.offset, "expected field name", fmt.Errorf("%w: got %s", ErrExpectedFieldName, p.tok.Type))
	}
	field := name.Intern(p.tok.Value)
	if err := p.advance(); err != nil {
		return nil, err
	}

	op, err := newRelOp(p.tok.Type)
	if err != nil {
		return nil, newParseError(p.tok.offset, "expected relation operator", err)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &CmpNode{Field: field, Op: op, Literal: lit}, nil
}

// parseLiteral parses: literal := quoted_string | number
func (p *parser) parseLiteral() (value.Value, error) {
	switch p.tok.Type {
	case stringToken:
		v := value.OfString(p.tok.Value)
		return v, p.advance()
	case numberToken:
		v := value.OfNumber(p.tok.num)
		return v, p.advance()
	default:
		return value.Value{}, newParseError(p.tok.offset, "expected literal", fmt.Errorf("%w: got %s", ErrExpectedLiteral, p.tok.Type))
	}
}
