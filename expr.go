// Copyright (c) HashiCorp, Inc.

package fql

import (
	"fmt"
	"strings"

	"github.com/kvrecs/fql/name"
	"github.com/kvrecs/fql/record"
	"github.com/kvrecs/fql/value"
)

// RelOp is a comparison relation between a field and a literal.
type RelOp int

const (
	Eq RelOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op RelOp) String() string {
	switch op {
	case Eq:
		return "="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

func newRelOp(t tokenType) (RelOp, error) {
	switch t {
	case eqToken:
		return Eq, nil
	case neToken:
		return Ne, nil
	case ltToken:
		return Lt, nil
	case leToken:
		return Le, nil
	case gtToken:
		return Gt, nil
	case geToken:
		return Ge, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrExpectedRelOp, t)
	}
}

// PredicateNode is an immutable node in a parsed WHERE expression tree.
// The node kinds are a closed set of concrete structs (CmpNode, AndNode,
// OrNode, TrueNode) behind this interface; composites evaluate their
// children through interface method calls.
type PredicateNode interface {
	// Match evaluates the predicate against a record.
	Match(r *record.Record) bool
	// VisitFields invokes cb for every field name this predicate (or any
	// descendant) consults.
	VisitFields(cb func(name.Name))
	// Print writes a canonical, fully parenthesized textual form.
	Print(out *strings.Builder)
}

// CmpNode is a leaf: `field OP literal`.
type CmpNode struct {
	Field   name.Name
	Op      RelOp
	Literal value.Value
}

// Match implements the Cmp semantics from the component design: a Null
// field, or a field whose variant doesn't match the literal's, never
// matches.
func (n *CmpNode) Match(r *record.Record) bool {
	v := r.Get(n.Field)
	if v.IsNull() || v.Kind() != n.Literal.Kind() {
		return false
	}
	switch n.Op {
	case Eq:
		return value.Equal(v, n.Literal)
	case Ne:
		return !value.Equal(v, n.Literal)
	default:
		cmp, ok := value.Compare(v, n.Literal)
		if !ok {
			return false
		}
		switch n.Op {
		case Lt:
			return cmp < 0
		case Le:
			return cmp <= 0
		case Gt:
			return cmp > 0
		case Ge:
			return cmp >= 0
		default:
			return false
		}
	}
}

func (n *CmpNode) VisitFields(cb func(name.Name)) { cb(n.Field) }

func (n *CmpNode) Print(out *strings.Builder) {
	out.WriteString(n.Field.String())
	out.WriteByte(' ')
	out.WriteString(n.Op.String())
	out.WriteByte(' ')
	out.WriteString(n.Literal.Quoted())
}

// AndNode is an n-ary conjunction that short-circuits on the first
// non-match. An empty AndNode matches trivially.
type AndNode struct {
	Children []PredicateNode
}

func (n *AndNode) Match(r *record.Record) bool {
	for _, c := range n.Children {
		if !c.Match(r) {
			return false
		}
	}
	return true
}

func (n *AndNode) VisitFields(cb func(name.Name)) {
	for _, c := range n.Children {
		c.VisitFields(cb)
	}
}

func (n *AndNode) Print(out *strings.Builder) {
	printComposite(out, n.Children, " AND ")
}

// OrNode is an n-ary disjunction that short-circuits on the first match.
// An empty OrNode never matches.
type OrNode struct {
	Children []PredicateNode
}

func (n *OrNode) Match(r *record.Record) bool {
	for _, c := range n.Children {
		if c.Match(r) {
			return true
		}
	}
	return false
}

func (n *OrNode) VisitFields(cb func(name.Name)) {
	for _, c := range n.Children {
		c.VisitFields(cb)
	}
}

func (n *OrNode) Print(out *strings.Builder) {
	printComposite(out, n.Children, " OR ")
}

func printComposite(out *strings.Builder, children []PredicateNode, sep string) {
	out.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			out.WriteString(sep)
		}
		c.Print(out)
	}
	out.WriteByte(')')
}

// TrueNode trivially matches every record.
type TrueNode struct{}

func (TrueNode) Match(*record.Record) bool   { return true }
func (TrueNode) VisitFields(func(name.Name)) {}
func (TrueNode) Print(out *strings.Builder)  { out.WriteString("TRUE") }

// PrintString renders a predicate's canonical parenthesized form, the
// counterpart to ParsePredicate: parsing PrintString(p) back yields a
// predicate structurally equivalent to p, up to composite flattening.
// TrueNode's "TRUE" does not parse back, nor does a string literal
// holding a character that prints as a \u escape, which the lexer does
// not accept.
func PrintString(p PredicateNode) string {
	var b strings.Builder
	p.Print(&b)
	return b.String()
}

// newAnd builds an AndNode, collapsing a single child to itself.
func newAnd(children []PredicateNode) PredicateNode {
	if len(children) == 1 {
		return children[0]
	}
	return &AndNode{Children: children}
}

// newOr builds an OrNode, collapsing a single child to itself.
func newOr(children []PredicateNode) PredicateNode {
	if len(children) == 1 {
		return children[0]
	}
	return &OrNode{Children: children}
}
