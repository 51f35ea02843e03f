package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Render re-renders statements as source text on a single line. Parsing
// the result yields a tree that prints the same as the input under Sprint.
func Render(stmts []Stmt) string {
	var r renderer
	r.stmts(stmts)
	return r.String()
}

// RenderExpr re-renders a single expression as source text.
func RenderExpr(e Expr) string {
	var r renderer
	r.expr(e)
	return r.String()
}

type renderer struct {
	strings.Builder
}

func (r *renderer) stmts(stmts []Stmt) {
	for i, s := range stmts {
		if i > 0 {
			r.WriteByte(' ')
		}
		r.stmt(s)
	}
}

func (r *renderer) stmt(s Stmt) {
	switch s := s.(type) {
	case BlockStmt:
		r.block(s.Statements)
	case BreakStmt:
		r.WriteString("break;")
	case ClassStmt:
		r.WriteString("class " + s.Name.Lexeme)
		if s.Superclass != nil {
			r.WriteString(" < " + s.Superclass.Name.Lexeme)
		}
		r.WriteString(" {")
		for _, m := range s.Methods {
			r.WriteByte(' ')
			r.function(m)
		}
		r.WriteString(" }")
	case ExpressionStmt:
		r.expr(s.Expr)
		r.WriteByte(';')
	case FunctionStmt:
		r.WriteString("fun ")
		r.function(s)
	case IfStmt:
		r.WriteString("if (")
		r.expr(s.Condition)
		r.WriteString(") ")
		r.stmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.WriteString(" else ")
			r.stmt(s.ElseBranch)
		}
	case PrintStmt:
		r.WriteString("print ")
		r.expr(s.Expr)
		r.WriteByte(';')
	case ReturnStmt:
		r.WriteString("return")
		if s.Value != nil {
			r.WriteByte(' ')
			r.expr(s.Value)
		}
		r.WriteByte(';')
	case VarStmt:
		r.WriteString("var " + s.Name.Lexeme)
		if s.Initializer != nil {
			r.WriteString(" = ")
			r.expr(s.Initializer)
		}
		r.WriteByte(';')
	case WhileStmt:
		r.WriteString("while (")
		r.expr(s.Condition)
		r.WriteString(") ")
		r.stmt(s.Body)
	default:
		panic(fmt.Sprintf("ast: unexpected statement type %T", s))
	}
}

func (r *renderer) block(stmts []Stmt) {
	r.WriteByte('{')
	for _, s := range stmts {
		r.WriteByte(' ')
		r.stmt(s)
	}
	r.WriteString(" }")
}

// function renders a function without the leading "fun", the form methods
// take inside a class body.
func (r *renderer) function(f FunctionStmt) {
	r.WriteString(f.Name.Lexeme + "(")
	for i, p := range f.Params {
		if i > 0 {
			r.WriteString(", ")
		}
		r.WriteString(p.Lexeme)
	}
	r.WriteString(") ")
	r.block(f.Body)
}

func (r *renderer) expr(e Expr) {
	switch e := e.(type) {
	case AssignExpr:
		r.WriteString(e.Name.Lexeme + " = ")
		r.expr(e.Value)
	case BinaryExpr:
		r.expr(e.Left)
		r.WriteString(" " + e.Operator.Lexeme + " ")
		r.expr(e.Right)
	case CallExpr:
		r.expr(e.Callee)
		r.WriteByte('(')
		for i, arg := range e.Arguments {
			if i > 0 {
				r.WriteString(", ")
			}
			r.expr(arg)
		}
		r.WriteByte(')')
	case ConditionalExpr:
		r.expr(e.Condition)
		r.WriteString(" ? ")
		r.expr(e.Then)
		r.WriteString(" : ")
		r.expr(e.Else)
	case GetExpr:
		r.expr(e.Object)
		r.WriteString("." + e.Name.Lexeme)
	case GroupingExpr:
		r.WriteByte('(')
		r.expr(e.Expression)
		r.WriteByte(')')
	case LiteralExpr:
		r.WriteString(literal(e.Value))
	case LogicalExpr:
		r.expr(e.Left)
		r.WriteString(" " + e.Operator.Lexeme + " ")
		r.expr(e.Right)
	case SetExpr:
		r.expr(e.Object)
		r.WriteString("." + e.Name.Lexeme + " = ")
		r.expr(e.Value)
	case SuperExpr:
		r.WriteString("super." + e.Method.Lexeme)
	case ThisExpr:
		r.WriteString("this")
	case UnaryExpr:
		r.WriteString(e.Operator.Lexeme)
		r.expr(e.Right)
	case VariableExpr:
		r.WriteString(e.Name.Lexeme)
	default:
		panic(fmt.Sprintf("ast: unexpected expression type %T", e))
	}
}

func literal(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return `"` + v + `"`
	}
	return fmt.Sprint(v)
}
