package mlw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenValues(tokens []Token) []string {
	var out []string
	for _, tok := range tokens {
		if tok.Type != TokenEOF {
			out = append(out, tok.Value)
		}
	}
	return out
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "module declaration",
			input: "module ChannelLemmas",
			want:  []string{"module", "ChannelLemmas"},
		},
		{
			name:  "ascription",
			input: "module ChannelProofs : ChannelLemmas",
			want:  []string{"module", "ChannelProofs", ":", "ChannelLemmas"},
		},
		{
			name:  "comment is skipped",
			input: "val (* lemma axiom *) lemma balance_pos",
			want:  []string{"val", "lemma", "balance_pos"},
		},
		{
			name:  "comments do not nest",
			input: "(* outer (* inner *) axiom leak",
			want:  []string{"axiom", "leak"},
		},
		{
			name:  "unterminated comment swallows the rest",
			input: "axiom a (* axiom b",
			want:  []string{"axiom", "a"},
		},
		{
			name:  "string literal is one token",
			input: `goal g = "axiom inside \" string"`,
			want:  []string{"goal", "g", "=", `"axiom inside \" string"`},
		},
		{
			name:  "primed identifier",
			input: "axiom state'0",
			want:  []string{"axiom", "state'0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLexer(tt.input).Tokenize()
			assert.Equal(t, tt.want, tokenValues(got))
			assert.Equal(t, TokenEOF, got[len(got)-1].Type)
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	input := "module Foo\n  axiom a\n(* long\ncomment *) axiom b\n"
	tokens := NewLexer(input).Tokenize()

	var idents []Token
	for _, tok := range tokens {
		if tok.Type == TokenIdent {
			idents = append(idents, tok)
		}
	}
	require.Len(t, idents, 6)

	assert.Equal(t, Position{Line: 1, Column: 1}, idents[0].Pos)  // module
	assert.Equal(t, Position{Line: 1, Column: 8}, idents[1].Pos)  // Foo
	assert.Equal(t, Position{Line: 2, Column: 3}, idents[2].Pos)  // axiom
	assert.Equal(t, Position{Line: 2, Column: 9}, idents[3].Pos)  // a
	// lines inside the comment still count
	assert.Equal(t, Position{Line: 4, Column: 12}, idents[4].Pos) // axiom
	assert.Equal(t, Position{Line: 4, Column: 18}, idents[5].Pos) // b
}

func TestLexer_StringPositions(t *testing.T) {
	tokens := NewLexer("\"two\nlines\" axiom x").Tokenize()

	require.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, Position{Line: 1, Column: 1}, tokens[0].Pos)
	require.Equal(t, TokenIdent, tokens[1].Type)
	assert.Equal(t, "axiom", tokens[1].Value)
	assert.Equal(t, Position{Line: 2, Column: 8}, tokens[1].Pos)
}
