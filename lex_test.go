// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, raw string) ([]token, error) {
	t.Helper()
	l := newLexer(raw)
	var got []token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return got, err
		}
		if tok.Type == eofToken {
			return got, nil
		}
		got = append(got, tok)
	}
}

func Test_lex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		raw             string
		want            []tokenType
		wantErrIs       error
		wantErrContains string
	}{
		{
			name: "keywords-case-insensitive",
			raw:  "Select a Where a",
			want: []tokenType{selectToken, identToken, whereToken, identToken},
		},
		{
			name: "punctuation",
			raw:  "(a, b)",
			want: []tokenType{lparenToken, identToken, commaToken, identToken, rparenToken},
		},
		{
			name: "relational-operators-longest-match",
			raw:  "= == != <> < <= > >=",
			want: []tokenType{eqToken, eqToken, neToken, neToken, ltToken, leToken, gtToken, geToken},
		},
		{
			name: "logical-symbols",
			raw:  "&& ||",
			want: []tokenType{andToken, orToken},
		},
		{
			name: "number-literal",
			raw:  "-12.5e2",
			want: []tokenType{numberToken},
		},
		{
			name: "quoted-string-with-escapes",
			raw:  `"a\tb\"c"`,
			want: []tokenType{stringToken},
		},
		{
			name:            "bare-bang-errors",
			raw:             "!",
			wantErrIs:       ErrInvalidNotEqual,
			wantErrContains: "offset",
		},
		{
			name:            "unterminated-string",
			raw:             `"abc`,
			wantErrIs:       ErrUnterminatedString,
			wantErrContains: "unterminated string",
		},
		{
			name:            "bad-escape",
			raw:             `"a\qb"`,
			wantErrIs:       ErrInvalidEscape,
			wantErrContains: "bad escape",
		},
		{
			name:            "unknown-rune",
			raw:             "@",
			wantErrIs:       ErrUnexpectedToken,
			wantErrContains: "unexpected token",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := allTokens(t, tt.raw)
			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
				if tt.wantErrContains != "" {
					assert.Contains(t, err.Error(), tt.wantErrContains)
				}
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, wantType := range tt.want {
				assert.Equal(t, wantType, got[i].Type, "token %d", i)
			}
		})
	}
}

func Test_lexNumberState_value(t *testing.T) {
	t.Parallel()
	l := newLexer("3.5")
	tok, err := l.nextToken()
	require.NoError(t, err)
	assert.Equal(t, numberToken, tok.Type)
	assert.Equal(t, 3.5, tok.num)
}

func Test_lexQuotedStringState_value(t *testing.T) {
	t.Parallel()
	l := newLexer(`"line1\nline2"`)
	tok, err := l.nextToken()
	require.NoError(t, err)
	assert.Equal(t, stringToken, tok.Type)
	assert.Equal(t, "line1\nline2", tok.Value)
}

func Test_lexEofState_repeated(t *testing.T) {
	t.Parallel()
	l := newLexer("")
	for i := 0; i < 3; i++ {
		tok, err := l.nextToken()
		require.NoError(t, err)
		assert.Equal(t, eofToken, tok.Type)
	}
}

func Test_tokenType_String(t *testing.T) {
	t.Parallel()
	for typ, s := range tokenTypeToString {
		assert.Equal(t, s, typ.String())
	}
	assert.Equal(t, tokenTypeToString[unknownToken], tokenType(-1).String())
}

func Test_panicIfNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { panicIfNil(nil, "fn", "x") })
	var l *lexer
	assert.Panics(t, func() { panicIfNil(l, "fn", "x") })
	assert.NotPanics(t, func() { panicIfNil(newLexer(""), "fn", "x") })
}
