// Copyright (c) HashiCorp, Inc.

package recsparser

import (
	"strconv"

	"github.com/kvrecs/fql/internal/reclex"
	"github.com/kvrecs/fql/value"
)

// convertComponentTime parses the component-time sub-grammar:
//
//	<long> "msecs" <long> "usecs"
//
// case-insensitively and whitespace-permissively, producing
// Num(msecs + usecs/1000.0). On any parse failure it falls back to
// storing the raw string, per the field's typed-conversion contract.
func convertComponentTime(val string) value.Value {
	c := reclex.New(val)

	msecs, ok := scanComponentTimeField(c, "msecs")
	if !ok {
		return value.OfString(val)
	}
	usecs, ok := scanComponentTimeField(c, "usecs")
	if !ok {
		return value.OfString(val)
	}

	skipSpace(c)
	if c.Peek() != reclex.RuneEOF {
		return value.OfString(val)
	}

	return value.OfNumber(msecs + usecs/1000.0)
}

// scanComponentTimeField scans "<skipSpace><digits><skipSpace><unit>",
// where unit is matched case-insensitively, returning the digits as a
// float64.
func scanComponentTimeField(c *reclex.Cursor, unit string) (float64, bool) {
	skipSpace(c)

	c.Expect(reclex.IsSign)
	if !c.Some(reclex.IsDigit) {
		return 0, false
	}
	numText := c.Reduce()
	n, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return 0, false
	}

	skipSpace(c)

	for _, want := range unit {
		got := c.Shift()
		if lower(got) != lower(want) {
			return 0, false
		}
	}
	c.Reduce()

	return n, true
}

func skipSpace(c *reclex.Cursor) {
	c.Some(reclex.In(" \t"))
	c.Reduce()
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
