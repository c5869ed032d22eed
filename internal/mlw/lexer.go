// Package mlw provides a lexical view of WhyML source files: a small
// tokenizer and a module-aware scanner built on top of it. Checks match
// whole tokens, so commented-out or quoted declarations never count.
package mlw

// TokenType classifies WhyML lexemes as far as prooflint needs them.
type TokenType int

const (
	TokenIdent TokenType = iota
	TokenColon
	TokenString
	TokenSymbol
	TokenEOF
)

// Position locates a token in its file. Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
}

// Token is a single lexeme with its source position.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// Lexer scans WhyML input and produces tokens. Block comments
// (non-nesting, "(*" to "*)") and string literals are consumed here so
// later phases never see their contents as code.
type Lexer struct {
	input  string
	pos    int
	line   int
	col    int
	tokens []Token
}

// NewLexer returns a Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		col:    1,
		tokens: make([]Token, 0),
	}
}

// Tokenize scans the entire input and returns the token list, ending
// with a TokenEOF.
func (l *Lexer) Tokenize() []Token {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '(' && l.peekIs('*'):
			l.skipComment()

		case c == '"':
			l.lexString()

		case c == ':':
			l.add(TokenColon, ":")
			l.advance()

		case isIdentStart(c):
			l.lexIdent()

		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()

		default:
			l.add(TokenSymbol, string(c))
			l.advance()
		}
	}
	l.add(TokenEOF, "")
	return l.tokens
}

func (l *Lexer) peekIs(c byte) bool {
	return l.pos+1 < len(l.input) && l.input[l.pos+1] == c
}

// advance consumes one byte, keeping line/column bookkeeping straight.
func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) add(t TokenType, value string) {
	l.tokens = append(l.tokens, Token{
		Type:  t,
		Value: value,
		Pos:   Position{Line: l.line, Column: l.col},
	})
}

// skipComment consumes a "(* ... *)" block comment. Comments do not
// nest: the first "*)" closes the comment. An unterminated comment
// swallows the rest of the input, matching Why3's own lexer.
func (l *Lexer) skipComment() {
	l.advance() // (
	l.advance() // *
	for l.pos < len(l.input) {
		if l.input[l.pos] == '*' && l.peekIs(')') {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
}

// lexString consumes a double-quoted string literal with backslash
// escapes and records it as a single TokenString.
func (l *Lexer) lexString() {
	start := l.pos
	pos := Position{Line: l.line, Column: l.col}
	l.advance() // opening quote
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\\':
			l.advance()
			if l.pos < len(l.input) {
				l.advance()
			}
		case '"':
			l.advance()
			l.tokens = append(l.tokens, Token{Type: TokenString, Value: l.input[start:l.pos], Pos: pos})
			return
		default:
			l.advance()
		}
	}
	// unterminated literal; emit what we have
	l.tokens = append(l.tokens, Token{Type: TokenString, Value: l.input[start:], Pos: pos})
}

func (l *Lexer) lexIdent() {
	start := l.pos
	pos := Position{Line: l.line, Column: l.col}
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.advance()
	}
	l.tokens = append(l.tokens, Token{Type: TokenIdent, Value: l.input[start:l.pos], Pos: pos})
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// WhyML identifiers may carry digits and primes after the first letter.
func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9') || c == '\''
}
