// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fql

import (
	"fmt"

	"github.com/kvrecs/fql/name"
)

// Query is a parsed `SELECT ... WHERE ...` statement: an ordered
// projection and a predicate tree.
type Query struct {
	Projection []name.Name
	Where      PredicateNode
}

// InterestingFields returns the set of field Names that either appear in
// the projection or are consulted by the WHERE predicate. The streaming
// record parser uses this set to skip materializing anything else.
func (q *Query) InterestingFields() map[name.Name]struct{} {
	fields := make(map[name.Name]struct{}, len(q.Projection))
	for _, n := range q.Projection {
		fields[n] = struct{}{}
	}
	q.Where.VisitFields(func(n name.Name) {
		fields[n] = struct{}{}
	})
	return fields
}

// Parse parses a full `SELECT f1, f2, ... WHERE <expr>` query string
// against the process-wide name registry.
func Parse(query string) (*Query, error) {
	p := newParser(query)
	return p.parseQuery()
}

// ParsePredicate parses a bare boolean expression, without a surrounding
// `SELECT ... WHERE` clause. It exists for callers (and tests) that want
// to exercise the predicate grammar's round-trip property in isolation.
func ParsePredicate(expr string) (PredicateNode, error) {
	p := newParser(expr)
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
	return where, nil
}
