// Copyright (c) HashiCorp, Inc.

package recsparser

import (
	"fmt"
	"strconv"

	"github.com/kvrecs/fql/internal/reclex"
	"github.com/kvrecs/fql/name"
	"github.com/kvrecs/fql/value"
)

// parseCounters decodes a Counters line's value:
//
//	counters := cntr ("," cntr)*
//	cntr     := key "=" double
//
// Each entry derives counter-<key>-value (Num(double)), stored if
// interesting. It returns the number of fields stored; a malformed
// numeric portion is a fatal error for the record.
func (p *Parser) parseCounters(val string) (int, error) {
	stored := 0
	c := reclex.New(val)
	for {
		key, ok := scanKey(c)
		if !ok {
			return stored, nil
		}
		if !c.Expect(reclex.IsEquals) {
			return stored, fmt.Errorf("recsparser: Counters: missing '=' for key %q", key)
		}
		_ = c.Reduce()

		num, ok := scanNumber(c)
		if !ok {
			return stored, fmt.Errorf("recsparser: Counters: bad double for key %q", key)
		}

		if n := name.Intern("counter-" + key + "-value"); p.interesting(n) {
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return stored, fmt.Errorf("recsparser: Counters: bad double for key %q: %w", key, err)
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
