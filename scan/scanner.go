// Package scan converts source text into tokens.
package scan

import (
	"strconv"
	"unicode/utf8"

	"github.com/craftinterpreter/glox/ast"
	"github.com/craftinterpreter/glox/diag"
)

// Scanner converts a source text
// into a slice of ast.Token-s
type Scanner struct {
	start    int
	current  int
	line     int
	source   string
	tokens   []ast.Token
	reporter diag.Reporter
}

// NewScanner returns a new Scanner that reports lexical errors to reporter
func NewScanner(source string, reporter diag.Reporter) *Scanner {
	return &Scanner{source: source, line: 1, reporter: reporter}
}

// ScanTokens returns a slice of tokens representing the source text. The
// last token is always of type ast.TokenEof. Lexical errors are reported and
// the offending text produces no token; scanning always runs to the end.
func (s *Scanner) ScanTokens() []ast.Token {
	for !s.isAtEnd() {
		// we're at the beginning of the next lexeme
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, ast.Token{TokenType: ast.TokenEof, Line: s.line})
	return s.tokens
}

func (s *Scanner) scanToken() {
	char := s.advance()
	switch char {
	case '(':
		s.addToken(ast.TokenLeftParen)
	case ')':
		s.addToken(ast.TokenRightParen)
	case '{':
		s.addToken(ast.TokenLeftBrace)
	case '}':
		s.addToken(ast.TokenRightBrace)
	case ',':
		s.addToken(ast.TokenComma)
	case '.':
		s.addToken(ast.TokenDot)
	case '-':
		s.addToken(ast.TokenMinus)
	case '+':
		s.addToken(ast.TokenPlus)
	case ';':
		s.addToken(ast.TokenSemicolon)
	case ':':
		s.addToken(ast.TokenColon)
	case '*':
		s.addToken(ast.TokenStar)
	case '%':
		s.addToken(ast.TokenPercent)
	case '?':
		s.addToken(ast.TokenQuestionMark)

	// with look-ahead
	case '!':
		s.addToken(s.either('=', ast.TokenBangEqual, ast.TokenBang))
	case '=':
		s.addToken(s.either('=', ast.TokenEqualEqual, ast.TokenEqual))
	case '<':
		s.addToken(s.either('=', ast.TokenLessEqual, ast.TokenLess))
	case '>':
		s.addToken(s.either('=', ast.TokenGreaterEqual, ast.TokenGreater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(ast.TokenSlash)
		}

	// whitespace
	case ' ', '\r', '\t':
	case '\n':
		s.line++

	// string
	case '"':
		s.string()

	default:
		if isDigit(char) {
			s.number()
		} else if isAlpha(char) {
			s.identifier()
		} else {
			s.unexpected()
		}
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	curr := s.source[s.current]
	s.current++
	return curr
}

func (s *Scanner) addToken(tokenType ast.TokenType) {
	s.addTokenWithLiteral(tokenType, nil)
}

func (s *Scanner) addTokenWithLiteral(tokenType ast.TokenType, literal interface{}) {
	text := s.source[s.start:s.current]
	token := ast.Token{TokenType: tokenType, Lexeme: text, Literal: literal, Line: s.line}
	s.tokens = append(s.tokens, token)
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() {
		return false
	}

	if s.source[s.current] != expected {
		return false
	}

	s.current++
	return true
}

// either returns matched if the next character is expected, consuming it,
// and otherwise returns single.
func (s *Scanner) either(expected byte, matched, single ast.TokenType) ast.TokenType {
	if s.match(expected) {
		return matched
	}
	return single
}

// unexpected reports the character that starts at s.start and skips it.
// A multi-byte character is skipped whole.
func (s *Scanner) unexpected() {
	if s.source[s.start] >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(s.source[s.start:])
		s.current = s.start + size
	}
	s.reporter.Error(s.line, "Unexpected character.")
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reporter.Error(s.line, "Unterminated string.")
		return
	}

	s.advance() // the closing "

	value := s.source[s.start+1 : s.current-1]
	s.addTokenWithLiteral(ast.TokenString, value)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// look for a fractional part
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// the lexeme is digits with at most one inner dot, so the only
	// possible failure is a value beyond float64 range
	val, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	if err != nil {
		s.reporter.Error(s.line, "Number literal out of range.")
	}
	s.addTokenWithLiteral(ast.TokenNumber, val)
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	tokenType, found := ast.Keywords[text]
	if !found {
		tokenType = ast.TokenIdentifier
	}
	s.addToken(tokenType)
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
