// Copyright (c) HashiCorp, Inc.

package recsparser

import (
	"fmt"
	"strconv"

	"github.com/kvrecs/fql/internal/reclex"
	"github.com/kvrecs/fql/name"
	"github.com/kvrecs/fql/value"
)

// parseTiming decodes a Timing line's value:
//
//	timings := entry ("," entry)*
//	entry   := key ":" double "/" long
//
// For each entry it derives timer-<key>-time (Num(double)) and
// timer-<key>-count (Num(long)), storing whichever of the two the
// interesting set asks for. It returns the number of fields stored;
// a malformed numeric portion is a fatal error for the record.
func (p *Parser) parseTiming(val string) (int, error) {
	stored := 0
	c := reclex.New(val)
	for {
		key, ok := scanKey(c)
		if !ok {
			return stored, nil
		}
		if !c.Expect(reclex.IsColon) {
			return stored, nil
		}
		_ = c.Reduce()

		dur, ok := scanNumber(c)
		if !ok {
			return stored, fmt.Errorf("recsparser: Timing: bad double for key %q", key)
		}
		if !c.Expect(reclex.IsSlash) {
			return stored, fmt.Errorf("recsparser: Timing: missing '/' for key %q", key)
		}
		_ = c.Reduce()

		count, ok := scanNumber(c)
		if !ok {
			return stored, fmt.Errorf("recsparser: Timing: bad long for key %q", key)
		}

		if n := name.Intern("timer-" + key + "-time"); p.interesting(n) {
			f, err := strconv.ParseFloat(dur, 64)
			if err != nil {
				return stored, fmt.Errorf("recsparser: Timing: bad double for key %q: %w", key, err)
			}
			p.current.Set(n, value.OfNumber(f))
			stored++
		}
		if n := name.Intern("timer-" + key + "-count"); p.interesting(n) {
			f, err := strconv.ParseFloat(count, 64)
			if err != nil {
				return stored, fmt.Errorf("recsparser: Timing: bad long for key %q: %w", key, err)
			}
			p.current.Set(n, value.OfNumber(f))
			stored++
		}

		if !c.Expect(reclex.IsComma) {
			return stored, nil
		}
		_ = c.Reduce()
	}
}

// scanKey consumes everything up to the next ':', '=' or end of input.
func scanKey(c *reclex.Cursor) (string, bool) {
	if c.Peek() == reclex.RuneEOF {
		return "", false
	}
	stop := reclex.Or(reclex.IsColon, reclex.IsEquals, reclex.IsEOF)
	c.Some(reclex.Not(stop))
	return c.Reduce(), true
}

// scanNumber consumes an optional leading sign followed by a run of one
// or more digits and '.' characters, in any order. The run is checked as
// a number only when strconv.ParseFloat converts a field being stored.
func scanNumber(c *reclex.Cursor) (string, bool) {
	c.Expect(reclex.IsSign)
	digits := reclex.Or(reclex.IsDigit, reclex.Eq('.'))
	if !c.Some(digits) {
		return "", false
	}
	return c.Reduce(), true
}
