// Copyright (c) HashiCorp, Inc.

// Package recsparser streams records out of the line-oriented records
// text format: one record per "name=value" line run, terminated by an
// EOE line, with optional "-"-prefixed divider lines absorbed between
// records. Only fields in the caller-supplied interesting set are
// materialized; everything else is skipped without allocating.
package recsparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/kvrecs/fql/name"
	"github.com/kvrecs/fql/record"
	"github.com/kvrecs/fql/value"
)

// ErrUnexpectedEOF reports that the input stream ended in the middle of
// a record, between its first field and its terminating EOE line.
var ErrUnexpectedEOF = errors.New("recsparser: unexpected EOF inside record")

// Parser is a pull-based streaming decoder: call Next until it returns
// false, then check Err; Current returns the record decoded by the most
// recent successful Next.
//
// Records borrow their Str fields from the parser's internal line
// buffers. Those buffers are overwritten on the next call to Next, so a
// Record (and any Value obtained from it) must not be retained past
// that call.
type Parser struct {
	r    *bufio.Reader
	want map[name.Name]struct{}

	current *record.MutableRecord
	lines   [][]byte // reusable slab of per-line buffers
	lineCap int

	err  error
	done bool
}

// New returns a Parser reading records from r, materializing only
// fields in want.
func New(r io.Reader, want map[name.Name]struct{}, opts ...Option) (*Parser, error) {
	resolved, err := getOpts(opts...)
	if err != nil {
		return nil, err
	}

	lines := make([][]byte, resolved.linesBuf)
	for i := range lines {
		lines[i] = make([]byte, 0, resolved.lineBufSize)
	}

	return &Parser{
		r:       bufio.NewReaderSize(r, resolved.lineBufSize),
		want:    want,
		current: record.NewMutable(),
		lines:   lines,
		lineCap: resolved.lineBufSize,
	}, nil
}

// Err returns the first error encountered by Next, if any.
func (p *Parser) Err() error { return p.err }

// Current returns the record decoded by the most recent successful Next
// call. Its Str fields are only valid until the next Next call.
func (p *Parser) Current() *record.Record { return &p.current.Record }

func (p *Parser) interesting(n name.Name) bool {
	_, ok := p.want[n]
	return ok
}

// Next decodes the next record. It returns false at a clean end of
// stream (Err is nil) or after any error (Err is non-nil).
func (p *Parser) Next() bool {
	if p.done {
		return false
	}

	p.current.Clear()
	lineIdx := 0
	empty := true

	if eof, err := p.skipDividers(); err != nil {
		p.fail(err)
		return false
	} else if eof {
		p.done = true
		return false
	}

	for {
		buf, eof, err := p.readLine(p.lineFor(lineIdx))
		if err != nil {
			p.fail(err)
			return false
		}
		if eof {
			if empty {
				p.done = true
				return false
			}
			p.fail(ErrUnexpectedEOF)
			return false
		}

		if isEOE(buf) {
			return true
		}

		empty = false

		added, err := p.applyLine(buf)
		if err != nil {
			p.fail(err)
			return false
		}
		if added {
			lineIdx++
		}
	}
}

func (p *Parser) fail(err error) {
	p.err = err
	p.done = true
}

// lineFor returns the reusable buffer for the i-th line materialized in
// the current record, growing the slab if this record is wider than any
// seen before.
func (p *Parser) lineFor(i int) []byte {
	for i >= len(p.lines) {
		p.lines = append(p.lines, make([]byte, 0, p.lineCap))
	}
	return p.lines[i][:0]
}

// readLine reads a single LF-terminated line into buf (reusing its
// capacity), stripping the trailing '\n' and an optional '\r'. It
// reports eof=true if the stream ended with no bytes read.
func (p *Parser) readLine(buf []byte) (line []byte, eof bool, err error) {
	for {
		b, err := p.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return buf, len(buf) == 0, nil
			}
			return nil, false, fmt.Errorf("recsparser: read: %w", err)
		}
		if b == '\n' {
			if n := len(buf); n > 0 && buf[n-1] == '\r' {
				buf = buf[:n-1]
			}
			return buf, false, nil
		}
		buf = append(buf, b)
	}
}

// skipDividers absorbs any run of leading "-"-prefixed lines. It reports
// eof=true if the stream ended while doing so.
func (p *Parser) skipDividers() (eof bool, err error) {
	for {
		b, errPeek := p.r.Peek(1)
		if errPeek != nil {
			if errPeek == io.EOF {
				return true, nil
			}
			return false, fmt.Errorf("recsparser: peek: %w", errPeek)
		}
		if b[0] != '-' {
			return false, nil
		}
		if _, _, err := p.readLine(p.lines[0][:0]); err != nil {
			return false, err
		}
	}
}

func isEOE(line []byte) bool {
	return len(line) == 3 && line[0] == 'E' && line[1] == 'O' && line[2] == 'E'
}

// applyLine decodes one "name=value" line, applying the interesting
// field filter and the Timing/Counters/component-time sub-grammars. It
// returns whether the line occupied a retained line buffer (so the
// caller knows whether to advance to a fresh one).
func (p *Parser) applyLine(line []byte) (bool, error) {
	eq := indexByte(line, '=')
	if eq < 0 {
		return false, fmt.Errorf("recsparser: not a name=value line: %q", line)
	}
	fieldName := bytesToString(line[:eq])
	val := bytesToString(line[eq+1:])

	switch fieldName {
	case "Timing":
		stored, err := p.parseTiming(val)
		return stored > 0, err
	case "Counters":
		stored, err := p.parseCounters(val)
		return stored > 0, err
	default:
		n := name.Intern(fieldName)
		if !p.interesting(n) {
			return false, nil
		}
		switch fieldName {
		case "UserTime", "SystemTime", "Time":
			p.current.Set(n, convertComponentTime(val))
		default:
			p.current.Set(n, value.OfString(val))
		}
		return true, nil
	}
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// bytesToString views b as a string without copying. The caller must
// guarantee b isn't mutated while the string is alive - here, that's the
// Parser's own line-buffer-invalidation-on-next-call contract.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
