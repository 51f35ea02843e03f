package ast

import "fmt"

type TokenType uint8

const (
	// single-character tokens
	TokenLeftParen TokenType = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar
	TokenPercent
	TokenColon
	TokenQuestionMark

	// one or two character tokens
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// literals
	TokenIdentifier
	TokenString
	TokenNumber

	// keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile
	TokenBreak

	TokenEof
)

var tokenNames = [...]string{
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenLeftBrace:    "LeftBrace",
	TokenRightBrace:   "RightBrace",
	TokenComma:        "Comma",
	TokenDot:          "Dot",
	TokenMinus:        "Minus",
	TokenPlus:         "Plus",
	TokenSemicolon:    "Semicolon",
	TokenSlash:        "Slash",
	TokenStar:         "Star",
	TokenPercent:      "Percent",
	TokenColon:        "Colon",
	TokenQuestionMark: "QuestionMark",
	TokenBang:         "Bang",
	TokenBangEqual:    "BangEqual",
	TokenEqual:        "Equal",
	TokenEqualEqual:   "EqualEqual",
	TokenGreater:      "Greater",
	TokenGreaterEqual: "GreaterEqual",
	TokenLess:         "Less",
	TokenLessEqual:    "LessEqual",
	TokenIdentifier:   "Identifier",
	TokenString:       "String",
	TokenNumber:       "Number",
	TokenAnd:          "And",
	TokenClass:        "Class",
	TokenElse:         "Else",
	TokenFalse:        "False",
	TokenFun:          "Fun",
	TokenFor:          "For",
	TokenIf:           "If",
	TokenNil:          "Nil",
	TokenOr:           "Or",
	TokenPrint:        "Print",
	TokenReturn:       "Return",
	TokenSuper:        "Super",
	TokenThis:         "This",
	TokenTrue:         "True",
	TokenVar:          "Var",
	TokenWhile:        "While",
	TokenBreak:        "Break",
	TokenEof:          "Eof",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Keywords maps every reserved word to its token type.
var Keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
	"break":  TokenBreak,
}

// Token is a single lexeme of the source text. Literal holds the decoded
// value of string (string) and number (float64) tokens and is nil otherwise.
type Token struct {
	TokenType TokenType
	Lexeme    string
	Literal   interface{}
	Line      int
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.TokenType, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.TokenType, t.Lexeme, t.Literal)
}
