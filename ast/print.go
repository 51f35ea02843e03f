package ast

import (
	"fmt"
	"strings"
)

// Sprint returns a parenthesized, prefix-notation representation of a node,
// e.g. "(* (- 123) (group 45.67))". Two trees with the same structure print
// the same string regardless of the source lines their tokens came from.
func Sprint(node Node) string {
	switch n := node.(type) {
	case nil:
		return "<nil>"

	case AssignExpr:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case BinaryExpr:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case CallExpr:
		return parenthesize("call", append([]Node{n.Callee}, exprNodes(n.Arguments)...)...)
	case ConditionalExpr:
		return parenthesize("?:", n.Condition, n.Then, n.Else)
	case GetExpr:
		return parenthesize(". "+n.Name.Lexeme, n.Object)
	case GroupingExpr:
		return parenthesize("group", n.Expression)
	case LiteralExpr:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprint(n.Value)
	case LogicalExpr:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case SetExpr:
		return parenthesize("set "+n.Name.Lexeme, n.Object, n.Value)
	case SuperExpr:
		return "(super " + n.Method.Lexeme + ")"
	case ThisExpr:
		return n.Keyword.Lexeme
	case UnaryExpr:
		return parenthesize(n.Operator.Lexeme, n.Right)
	case VariableExpr:
		return n.Name.Lexeme

	case BlockStmt:
		return parenthesize("block", stmtNodes(n.Statements)...)
	case BreakStmt:
		return "(break)"
	case ClassStmt:
		name := "class " + n.Name.Lexeme
		if n.Superclass != nil {
			name += " < " + n.Superclass.Name.Lexeme
		}
		methods := make([]Node, len(n.Methods))
		for i, m := range n.Methods {
			methods[i] = m
		}
		return parenthesize(name, methods...)
	case ExpressionStmt:
		return parenthesize(";", n.Expr)
	case FunctionStmt:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		name := "fun " + n.Name.Lexeme + " (" + strings.Join(params, " ") + ")"
		return parenthesize(name, stmtNodes(n.Body)...)
	case IfStmt:
		if n.ElseBranch == nil {
			return parenthesize("if", n.Condition, n.ThenBranch)
		}
		return parenthesize("if-else", n.Condition, n.ThenBranch, n.ElseBranch)
	case PrintStmt:
		return parenthesize("print", n.Expr)
	case ReturnStmt:
		if n.Value == nil {
			return "(return)"
		}
		return parenthesize("return", n.Value)
	case VarStmt:
		if n.Initializer == nil {
			return "(var " + n.Name.Lexeme + ")"
		}
		return parenthesize("var "+n.Name.Lexeme, n.Initializer)
	case WhileStmt:
		return parenthesize("while", n.Condition, n.Body)
	}

	panic(fmt.Sprintf("ast: unexpected node type %T", node))
}

// SprintStmts prints each statement on its own line.
func SprintStmts(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = Sprint(stmt)
	}
	return strings.Join(lines, "\n")
}

func parenthesize(name string, nodes ...Node) string {
	var b strings.Builder

	b.WriteString("(" + name)
	for _, node := range nodes {
		b.WriteString(" " + Sprint(node))
	}
	b.WriteString(")")

	return b.String()
}

func exprNodes(exprs []Expr) []Node {
	nodes := make([]Node, len(exprs))
	for i, e := range exprs {
		nodes[i] = e
	}
	return nodes
}

func stmtNodes(stmts []Stmt) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}
