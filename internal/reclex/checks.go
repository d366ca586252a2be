package reclex

import "strings"

// CheckFn reports whether a rune matches some criteria.
type CheckFn func(rune) bool

var (
	IsEOF    = Eq(RuneEOF)
	IsDigit  = In("0123456789")
	IsSign   = In("+-")
	IsColon  = Eq(':')
	IsSlash  = Eq('/')
	IsEquals = Eq('=')
	IsComma  = Eq(',')
)

// Eq returns a CheckFn matching exactly the given rune.
func Eq(valid rune) CheckFn {
	return func(r rune) bool { return r == valid }
}

// In returns a CheckFn matching any rune present in valid.
func In(valid string) CheckFn {
	return func(r rune) bool { return strings.ContainsRune(valid, r) }
}

// Not negates a CheckFn.
func Not(valid CheckFn) CheckFn {
	return func(r rune) bool { return !valid(r) }
}

// Or matches if any of checks match.
func Or(checks ...CheckFn) CheckFn {
	return func(r rune) bool {
		for _, valid := range checks {
			if valid(r) {
				return true
			}
		}
		return false
	}
}
