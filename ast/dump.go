package ast

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes an indented JSON representation of the statements to w.
func FprintJSON(w io.Writer, stmts []Stmt) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTrees(stmts))
}

// FprintYAML writes a YAML representation of the statements to w.
func FprintYAML(w io.Writer, stmts []Stmt) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toTrees(stmts)); err != nil {
		return err
	}
	return enc.Close()
}

func toTrees(stmts []Stmt) []interface{} {
	trees := make([]interface{}, len(stmts))
	for i, s := range stmts {
		trees[i] = toTree(s)
	}
	return trees
}

// toTree converts a node into nested maps keyed by field name. Absent
// optional children are omitted.
func toTree(node Node) interface{} {
	switch n := node.(type) {
	case nil:
		return nil

	case AssignExpr:
		return tree("Assign", "name", n.Name.Lexeme, "value", toTree(n.Value))
	case BinaryExpr:
		return tree("Binary", "operator", n.Operator.Lexeme, "left", toTree(n.Left), "right", toTree(n.Right))
	case CallExpr:
		args := make([]interface{}, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = toTree(a)
		}
		return tree("Call", "line", n.Paren.Line, "callee", toTree(n.Callee), "arguments", args)
	case ConditionalExpr:
		return tree("Conditional", "condition", toTree(n.Condition), "then", toTree(n.Then), "else", toTree(n.Else))
	case GetExpr:
		return tree("Get", "name", n.Name.Lexeme, "object", toTree(n.Object))
	case GroupingExpr:
		return tree("Grouping", "expression", toTree(n.Expression))
	case LiteralExpr:
		return tree("Literal", "value", n.Value)
	case LogicalExpr:
		return tree("Logical", "operator", n.Operator.Lexeme, "left", toTree(n.Left), "right", toTree(n.Right))
	case SetExpr:
		return tree("Set", "name", n.Name.Lexeme, "object", toTree(n.Object), "value", toTree(n.Value))
	case SuperExpr:
		return tree("Super", "method", n.Method.Lexeme)
	case ThisExpr:
		return tree("This")
	case UnaryExpr:
		return tree("Unary", "operator", n.Operator.Lexeme, "right", toTree(n.Right))
	case VariableExpr:
		return tree("Variable", "name", n.Name.Lexeme, "line", n.Name.Line)

	case BlockStmt:
		return tree("Block", "statements", toTrees(n.Statements))
	case BreakStmt:
		return tree("Break", "line", n.Keyword.Line)
	case ClassStmt:
		methods := make([]interface{}, len(n.Methods))
		for i, m := range n.Methods {
			methods[i] = toTree(m)
		}
		m := tree("Class", "name", n.Name.Lexeme, "methods", methods)
		if n.Superclass != nil {
			m["superclass"] = n.Superclass.Name.Lexeme
		}
		return m
	case ExpressionStmt:
		return tree("Expression", "expression", toTree(n.Expr))
	case FunctionStmt:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		return tree("Function", "name", n.Name.Lexeme, "params", params, "body", toTrees(n.Body))
	case IfStmt:
		m := tree("If", "condition", toTree(n.Condition), "then", toTree(n.ThenBranch))
		if n.ElseBranch != nil {
			m["else"] = toTree(n.ElseBranch)
		}
		return m
	case PrintStmt:
		return tree("Print", "expression", toTree(n.Expr))
	case ReturnStmt:
		m := tree("Return", "line", n.Keyword.Line)
		if n.Value != nil {
			m["value"] = toTree(n.Value)
		}
		return m
	case VarStmt:
		m := tree("Var", "name", n.Name.Lexeme)
		if n.Initializer != nil {
			m["initializer"] = toTree(n.Initializer)
		}
		return m
	case WhileStmt:
		return tree("While", "condition", toTree(n.Condition), "body", toTree(n.Body))
	}
	return nil
}

func tree(kind string, kv ...interface{}) map[string]interface{} {
	m := map[string]interface{}{"type": kind}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}
