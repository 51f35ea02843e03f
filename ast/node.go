// Package ast defines the tokens and syntax tree produced by the scanner
// and parser. Expr and Stmt are closed sets of value types; consumers switch
// over the concrete types instead of implementing a visitor.
package ast

// Node is implemented by every expression and statement node.
type Node interface {
	aNode()
}
