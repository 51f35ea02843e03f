package ast

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a tree in depth-first order, visiting children in
// source order. Absent optional children are skipped.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case AssignExpr:
		walkExpr(n.Value, v)
	case BinaryExpr:
		walkExpr(n.Left, v)
		walkExpr(n.Right, v)
	case CallExpr:
		walkExpr(n.Callee, v)
		for _, arg := range n.Arguments {
			walkExpr(arg, v)
		}
	case ConditionalExpr:
		walkExpr(n.Condition, v)
		walkExpr(n.Then, v)
		walkExpr(n.Else, v)
	case GetExpr:
		walkExpr(n.Object, v)
	case GroupingExpr:
		walkExpr(n.Expression, v)
	case LogicalExpr:
		walkExpr(n.Left, v)
		walkExpr(n.Right, v)
	case SetExpr:
		walkExpr(n.Object, v)
		walkExpr(n.Value, v)
	case UnaryExpr:
		walkExpr(n.Right, v)
	case LiteralExpr, SuperExpr, ThisExpr, VariableExpr:
		// leaves

	case BlockStmt:
		WalkStmts(n.Statements, v)
	case ClassStmt:
		if n.Superclass != nil {
			Walk(*n.Superclass, v)
		}
		for _, m := range n.Methods {
			Walk(m, v)
		}
	case ExpressionStmt:
		walkExpr(n.Expr, v)
	case FunctionStmt:
		WalkStmts(n.Body, v)
	case IfStmt:
		walkExpr(n.Condition, v)
		walkStmt(n.ThenBranch, v)
		walkStmt(n.ElseBranch, v)
	case PrintStmt:
		walkExpr(n.Expr, v)
	case ReturnStmt:
		walkExpr(n.Value, v)
	case VarStmt:
		walkExpr(n.Initializer, v)
	case WhileStmt:
		walkExpr(n.Condition, v)
		walkStmt(n.Body, v)
	case BreakStmt:
	}
}

// WalkStmts walks each statement in order.
func WalkStmts(stmts []Stmt, v Visitor) {
	for _, s := range stmts {
		walkStmt(s, v)
	}
}

// Count returns the number of nodes reachable from stmts.
func Count(stmts []Stmt) int {
	n := 0
	WalkStmts(stmts, func(Node) bool {
		n++
		return true
	})
	return n
}

// walkExpr and walkStmt keep a nil Expr or Stmt from reaching Walk as a
// non-nil Node.
func walkExpr(e Expr, v Visitor) {
	if e != nil {
		Walk(e, v)
	}
}

func walkStmt(s Stmt, v Visitor) {
	if s != nil {
		Walk(s, v)
	}
}
