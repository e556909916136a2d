package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokenKinds(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []TokenKind
	}{
		{
			name:     "identifiers and keywords",
			source:   "while x",
			expected: []TokenKind{TokenWhile, TokenIdentifier, TokenEOF},
		},
		{
			name:     "integer literal with suffix",
			source:   "42i64",
			expected: []TokenKind{TokenIntegerLiteral, TokenEOF},
		},
		{
			name:     "float literal",
			source:   "3.14",
			expected: []TokenKind{TokenFloatLiteral, TokenEOF},
		},
		{
			name:     "longest-match operators",
			source:   "+= ++ ** !=",
			expected: []TokenKind{TokenPlusAssign, TokenIncrement, TokenPower, TokenNotEqual, TokenEOF},
		},
		{
			name:     "string literal",
			source:   `"hello"`,
			expected: []TokenKind{TokenStringLiteral, TokenEOF},
		},
		{
			name:     "unknown byte never fails the lexer",
			source:   "$",
			expected: []TokenKind{TokenUnknown, TokenEOF},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks := NewLexer(tc.source).Tokenize()
			require.Len(t, toks, len(tc.expected))
			for i, k := range tc.expected {
				assert.Equal(t, k, toks[i].Kind, "token %d", i)
			}
		})
	}
}

func TestLexerNeverFailsOnGarbage(t *testing.T) {
	toks := NewLexer("@#$%^&*()_+garbled\x00bytes").Tokenize()
	assert.NotEmpty(t, toks)
	assert.Equal(t, TokenEOF, toks[len(toks)-1].Kind)
}

func TestLexerEmitsCommentTokens(t *testing.T) {
	toks := NewLexer("// line comment\nint32 x = 1;").Tokenize()
	found := false
	for _, tok := range toks {
		if tok.Kind == TokenSingleLineComment {
			found = true
		}
	}
	assert.True(t, found, "lexer should still emit comment tokens")
}
