package diag

import (
	"context"
	"log/slog"

	"github.com/craftinterpreter/glox/ast"
)

// Logger emits one structured log record per diagnostic: lexical and
// syntax errors at debug level, runtime errors at error level.
type Logger struct {
	log *slog.Logger
}

func NewLogger(log *slog.Logger) Logger {
	return Logger{log: log}
}

func (l Logger) Error(line int, message string) {
	l.emit(slog.LevelDebug, Diagnostic{Kind: KindLexical, Line: line, Message: message})
}

func (l Logger) TokenError(token ast.Token, message string) {
	d := At(token, message)
	l.emit(slog.LevelDebug, d, slog.String("token", token.Lexeme), slog.String("token_type", token.TokenType.String()))
}

func (l Logger) RuntimeError(err error) {
	l.emit(slog.LevelError, fromRuntime(err))
}

func (l Logger) emit(level slog.Level, d Diagnostic, attrs ...slog.Attr) {
	attrs = append(attrs,
		slog.String("kind", d.Kind.String()),
		slog.Int("line", d.Line),
	)
	l.log.LogAttrs(context.Background(), level, d.Message, attrs...)
}

// Multi fans every diagnostic out to each reporter in order.
type Multi []Reporter

func (m Multi) Error(line int, message string) {
	for _, r := range m {
		r.Error(line, message)
	}
}

func (m Multi) TokenError(token ast.Token, message string) {
	for _, r := range m {
		r.TokenError(token, message)
	}
}

func (m Multi) RuntimeError(err error) {
	for _, r := range m {
		r.RuntimeError(err)
	}
}
