// Copyright (c) HashiCorp, Inc.

package recsparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvrecs/fql/name"
)

func want(names ...string) map[name.Name]struct{} {
	m := make(map[name.Name]struct{}, len(names))
	for _, n := range names {
		m[name.Intern(n)] = struct{}{}
	}
	return m
}

// scenario 1/2/3-style: basic field match.
func Test_Next_basic_field(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("f1=x\nf2=y\nEOE\n"), want("f1"))
	require.NoError(t, err)

	require.True(t, p.Next())
	require.NoError(t, p.Err())
	rec := p.Current()
	s, ok := rec.Get(name.Intern("f1")).String()
	require.True(t, ok)
	assert.Equal(t, "x", s)
	assert.True(t, rec.Get(name.Intern("f2")).IsNull(), "uninteresting field is never materialized")

	assert.False(t, p.Next())
	assert.NoError(t, p.Err())
}

func Test_Next_multiple_records(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("a=1\nEOE\na=2\nEOE\n"), want("a"))
	require.NoError(t, err)

	var got []string
	for p.Next() {
		v := p.Current().Get(name.Intern("a"))
		got = append(got, v.Raw())
	}
	require.NoError(t, p.Err())
	assert.Equal(t, []string{"1", "2"}, got)
}

// scenario 6: divider lines and EOE boundaries.
func Test_Next_skips_divider_lines(t *testing.T) {
	t.Parallel()
	input := "--------\na=1\nEOE\n--------\na=2\nEOE\n"
	p, err := New(strings.NewReader(input), want("a"))
	require.NoError(t, err)

	var got []string
	for p.Next() {
		got = append(got, p.Current().Get(name.Intern("a")).Raw())
	}
	require.NoError(t, p.Err())
	assert.Equal(t, []string{"1", "2"}, got)
}

// scenario 4: Timing decomposition.
func Test_Next_Timing(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("Timing=db:3.5/2,net:1.0/1\nEOE\n"), want("timer-db-time", "timer-db-count"))
	require.NoError(t, err)

	require.True(t, p.Next())
	require.NoError(t, p.Err())
	rec := p.Current()

	dur, ok := rec.Get(name.Intern("timer-db-time")).Number()
	require.True(t, ok)
	assert.Equal(t, 3.5, dur)

	count, ok := rec.Get(name.Intern("timer-db-count")).Number()
	require.True(t, ok)
	assert.Equal(t, float64(2), count)

	assert.True(t, rec.Get(name.Intern("timer-net-time")).IsNull(), "uninteresting timer entries are dropped")
}

func Test_Next_Counters(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("Counters=hits=4,misses=1\nEOE\n"), want("counter-hits-value"))
	require.NoError(t, err)

	require.True(t, p.Next())
	require.NoError(t, p.Err())
	v, ok := p.Current().Get(name.Intern("counter-hits-value")).Number()
	require.True(t, ok)
	assert.Equal(t, float64(4), v)
}

// scenario 5: component-time conversion.
func Test_Next_componentTime(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("UserTime=2 msecs 500 usecs\nEOE\n"), want("UserTime"))
	require.NoError(t, err)

	require.True(t, p.Next())
	require.NoError(t, p.Err())
	n, ok := p.Current().Get(name.Intern("UserTime")).Number()
	require.True(t, ok)
	assert.Equal(t, 2.5, n)
}

func Test_Next_componentTime_fallback_to_raw(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("UserTime=garbage\nEOE\n"), want("UserTime"))
	require.NoError(t, err)

	require.True(t, p.Next())
	require.NoError(t, p.Err())
	s, ok := p.Current().Get(name.Intern("UserTime")).String()
	require.True(t, ok)
	assert.Equal(t, "garbage", s)
}

func Test_Next_unexpectedEOF_midRecord(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("a=1\n"), want("a"))
	require.NoError(t, err)

	assert.False(t, p.Next())
	assert.ErrorIs(t, p.Err(), ErrUnexpectedEOF)
}

func Test_Next_malformed_line(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("not-a-field-line\nEOE\n"), want("a"))
	require.NoError(t, err)

	assert.False(t, p.Next())
	require.Error(t, p.Err())
}

func Test_Next_Timing_bad_number_is_fatal(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("Timing=db:x/2\nEOE\n"), want("timer-db-time"))
	require.NoError(t, err)

	assert.False(t, p.Next())
	require.Error(t, p.Err())
}

func Test_Next_Timing_malformed_does_not_leak_into_next_record(t *testing.T) {
	t.Parallel()
	// The record containing the malformed Timing line is fatal for the
	// whole run: the parser must not silently resync on the next EOE.
	p, err := New(strings.NewReader("Timing=db:x/2\nEOE\na=1\nEOE\n"), want("timer-db-time", "a"))
	require.NoError(t, err)

	assert.False(t, p.Next())
	require.Error(t, p.Err())
}

func Test_Next_lineBuffer_reuse_across_records(t *testing.T) {
	t.Parallel()
	p, err := New(strings.NewReader("a=1\nEOE\na=2\nEOE\n"), want("a"), WithLineBufferCount(1), WithLineBufferSize(4))
	require.NoError(t, err)

	require.True(t, p.Next())
	first := p.Current().Get(name.Intern("a"))
	firstStr, _ := first.String()
	assert.Equal(t, "1", firstStr)

	require.True(t, p.Next())
	second, _ := p.Current().Get(name.Intern("a")).String()
	assert.Equal(t, "2", second)
}
