// Package value implements the tagged Null|Str|Num union shared by query
// literals and record fields. Comparisons never promote across variants:
// a mismatched comparison simply reports false rather than failing.
package value

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// Null marks an absent or unset field.
	Null Kind = iota
	// Str holds a string, either owned (query literals) or borrowed
	// (values parsed from a record line buffer).
	Str
	// Num holds a double-precision number.
	Num
)

// Value is a tagged Null|Str|Num union.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// NullValue is the distinguished absent value.
var NullValue = Value{kind: Null}

// OfString returns a Str value.
func OfString(s string) Value { return Value{kind: Str, str: s} }

// OfNumber returns a Num value.
func OfNumber(n float64) Value { return Value{kind: Num, num: n} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.kind == Null }

// String returns v's string payload and whether v is a Str.
func (v Value) String() (string, bool) {
	if v.kind != Str {
		return "", false
	}
	return v.str, true
}

// Number returns v's numeric payload and whether v is a Num.
func (v Value) Number() (float64, bool) {
	if v.kind != Num {
		return 0, false
	}
	return v.num, true
}

// Raw formats v the way it is printed in driver output: strings raw and
// unquoted, numbers in the host default double-to-string form, Null as
// the empty string (callers skip Null fields before printing).
func (v Value) Raw() string {
	switch v.kind {
	case Str:
		return v.str
	case Num:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return ""
	}
}

// Quoted formats v the way predicate literals are restringified by
// PredicateNode.Print: strings JSON-escaped and quoted, numbers bare.
func (v Value) Quoted() string {
	if v.kind == Str {
		var b strings.Builder
		enc := json.NewEncoder(&b)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(v.str)
		return strings.TrimSuffix(b.String(), "\n")
	}
	return v.Raw()
}

// Equal reports whether a and b compare equal. Null never equals
// anything, including another Null, and cross-variant comparisons
// always report false.
func Equal(a, b Value) bool {
	if a.kind == Null || b.kind == Null || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Str:
		return a.str == b.str
	case Num:
		return a.num == b.num
	default:
		return false
	}
}

// Compare returns -1, 0, 1 for a<b, a==b, a>b, and ok=false whenever the
// relation is undefined (a Null operand, or mismatched variants).
func Compare(a, b Value) (cmp int, ok bool) {
	if a.kind == Null || b.kind == Null || a.kind != b.kind {
		return 0, false
	}
	switch a.kind {
	case Str:
		switch {
		case a.str < b.str:
			return -1, true
		case a.str > b.str:
			return 1, true
		default:
			return 0, true
		}
	case Num:
		switch {
		case a.num < b.num:
			return -1, true
		case a.num > b.num:
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}
