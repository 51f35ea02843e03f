// Package parse builds a syntax tree from a token slice.
package parse

import (
	"strconv"

	"github.com/craftinterpreter/glox/ast"
	"github.com/craftinterpreter/glox/diag"
)

// DefaultMaxArgs is the default cap on function parameters and call arguments.
const DefaultMaxArgs = 32

// parseError unwinds the parser from the point of a structural syntax error
// to the enclosing declaration. It has already been reported when raised.
type parseError struct {
	token ast.Token
	msg   string
}

func (p parseError) Error() string {
	return diag.At(p.token, p.msg).String()
}

// Parser parses a flat list of tokens into
// an AST representation of the source program
type Parser struct {
	tokens   []ast.Token
	current  int
	loop     int
	maxArgs  int
	hadError bool
	reporter diag.Reporter
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxArgs sets the maximum number of function parameters and call arguments.
func WithMaxArgs(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxArgs = n
		}
	}
}

// NewParser returns a new Parser that reads a list of tokens ending in an
// ast.TokenEof token and reports syntax errors to reporter
func NewParser(tokens []ast.Token, reporter diag.Reporter, opts ...Option) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].TokenType != ast.TokenEof {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], ast.Token{TokenType: ast.TokenEof, Line: line})
	}

	p := &Parser{tokens: tokens, maxArgs: DefaultMaxArgs, reporter: reporter}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

/**
Parser grammar:

	program      => declaration* EOF
	declaration  => classDecl | funDecl | varDecl | statement
	classDecl    => "class" IDENTIFIER ( "<" IDENTIFIER )? "{" function* "}"
	funDecl      => "fun" function
	function     => IDENTIFIER "(" parameters? ")" block
	parameters   => IDENTIFIER ( "," IDENTIFIER )*
	varDecl      => "var" IDENTIFIER ( "=" expression )? ";"
	statement    => exprStmt | forStmt | ifStmt | printStmt | returnStmt | whileStmt
	                | breakStmt | block
	exprStmt     => expression ";"
	forStmt      => "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
	ifStmt       => "if" "(" expression ")" statement ( "else" statement )?
	printStmt    => "print" expression ";"
	returnStmt   => "return" expression? ";"
	whileStmt    => "while" "(" expression ")" statement
	breakStmt    => "break" ";"
	block        => "{" declaration* "}"
	expression   => assignment
	assignment   => ( call "." )? IDENTIFIER "=" assignment | conditional
	conditional  => logic_or ( "?" expression ":" conditional )?
	logic_or     => logic_and ( "or" logic_and )*
	logic_and    => equality ( "and" equality )*
	equality     => comparison ( ( "!=" | "==" ) comparison )*
	comparison   => term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term         => factor ( ( "-" | "+" ) factor )*
	factor       => unary ( ( "/" | "*" | "%" ) unary )*
	unary        => ( "!" | "-" ) unary | call
	call         => primary ( "(" arguments? ")" | "." IDENTIFIER )*
	arguments    => expression ( "," expression )*
	primary      => NUMBER | STRING | "true" | "false" | "nil" | "this"
	                | IDENTIFIER | "(" expression ")" | "super" "." IDENTIFIER

*/

// Parse reads the list of tokens and returns a list of statements
// representing the source program, and whether any syntax error was
// reported. Statements containing a structural error are left out.
func (p *Parser) Parse() ([]ast.Stmt, bool) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, p.hadError
}

// declaration parses declaration statements. A declaration statement is
// a class, function or variable declaration or a regular statement. If the
// statement contains a parse error, it skips to the start of the next
// statement and returns nil.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if err := recover(); err != nil {
			// If the error is a parseError, synchronize to
			// the next statement. If not, propagate the panic.
			if _, ok := err.(parseError); ok {
				p.synchronize()
				stmt = nil
			} else {
				panic(err)
			}
		}
	}()

	if p.match(ast.TokenClass) {
		return p.classDeclaration()
	}
	if p.match(ast.TokenFun) {
		return p.function("function")
	}
	if p.match(ast.TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(ast.TokenIdentifier, "Expect class name.")

	var superclass *ast.VariableExpr
	if p.match(ast.TokenLess) {
		p.consume(ast.TokenIdentifier, "Expect superclass name.")
		superclass = &ast.VariableExpr{Name: p.previous()}
	}

	p.consume(ast.TokenLeftBrace, "Expect '{' before class body.")

	methods := make([]ast.FunctionStmt, 0)
	for !p.check(ast.TokenRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(ast.TokenRightBrace, "Expect '}' after class body.")
	return ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(ast.TokenIdentifier, "Expect variable name.")
	var initializer ast.Expr
	if p.match(ast.TokenEqual) {
		initializer = p.expression()
	}
	p.consume(ast.TokenSemicolon, "Expect ';' after variable declaration.")
	return ast.VarStmt{Name: name, Initializer: initializer}
}

// statement parses statements. A statement can be a for, if, print, return,
// while, break, block or expression statement.
func (p *Parser) statement() ast.Stmt {
	if p.match(ast.TokenFor) {
		return p.forStatement()
	}
	if p.match(ast.TokenIf) {
		return p.ifStatement()
	}
	if p.match(ast.TokenPrint) {
		return p.printStatement()
	}
	if p.match(ast.TokenReturn) {
		return p.returnStatement()
	}
	if p.match(ast.TokenWhile) {
		return p.whileStatement()
	}
	if p.match(ast.TokenBreak) {
		return p.breakStatement()
	}
	if p.match(ast.TokenLeftBrace) {
		return ast.BlockStmt{Statements: p.block()}
	}
	return p.expressionStatement()
}

// forStatement desugars a for loop into an optional initializer and a
// while loop whose body runs the increment after the original body.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(ast.TokenLeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	if p.match(ast.TokenSemicolon) {
		initializer = nil
	} else if p.match(ast.TokenVar) {
		initializer = p.varDeclaration()
	} else {
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(ast.TokenSemicolon) {
		condition = p.expression()
	}
	p.consume(ast.TokenSemicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(ast.TokenRightParen) {
		increment = p.expression()
	}
	p.consume(ast.TokenRightParen, "Expect ')' after for clauses.")

	body := p.loopBody()

	if increment != nil {
		body = ast.BlockStmt{Statements: []ast.Stmt{body, ast.ExpressionStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = ast.LiteralExpr{Value: true}
	}
	body = ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(ast.TokenLeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(ast.TokenRightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(ast.TokenElse) {
		elseBranch = p.statement()
	}

	return ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after value.")
	return ast.PrintStmt{Expr: expr}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(ast.TokenSemicolon) {
		value = p.expression()
	}
	p.consume(ast.TokenSemicolon, "Expect ';' after return value.")
	return ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(ast.TokenLeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(ast.TokenRightParen, "Expect ')' after condition.")
	body := p.loopBody()
	return ast.WhileStmt{Condition: condition, Body: body}
}

// loopBody parses the body of a for or while loop, inside which break is legal.
func (p *Parser) loopBody() ast.Stmt {
	p.loop++
	defer func() { p.loop-- }()
	return p.statement()
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	if p.loop == 0 {
		p.report(keyword, "Must be inside a loop to use 'break'.")
	}
	p.consume(ast.TokenSemicolon, "Expect ';' after 'break'.")
	return ast.BreakStmt{Keyword: keyword}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(ast.TokenRightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(ast.TokenRightBrace, "Expect '}' after block.")
	return statements
}

// expressionStatement parses expression statements
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after expression.")
	return ast.ExpressionStmt{Expr: expr}
}

// function parses the name, parameters and body of a function or method.
// A function body is never inside a loop, whatever encloses the declaration.
func (p *Parser) function(kind string) ast.FunctionStmt {
	name := p.consume(ast.TokenIdentifier, "Expect "+kind+" name.")
	p.consume(ast.TokenLeftParen, "Expect '(' after "+kind+" name.")

	parameters := make([]ast.Token, 0)
	if !p.check(ast.TokenRightParen) {
		for {
			if len(parameters) == p.maxArgs {
				p.report(p.peek(), "Can't have more than "+strconv.Itoa(p.maxArgs)+" parameters.")
			}
			parameters = append(parameters, p.consume(ast.TokenIdentifier, "Expect parameter name."))
			if !p.match(ast.TokenComma) {
				break
			}
		}
	}
	p.consume(ast.TokenRightParen, "Expect ')' after parameters.")
	p.consume(ast.TokenLeftBrace, "Expect '{' before "+kind+" body.")

	enclosing := p.loop
	p.loop = 0
	defer func() { p.loop = enclosing }()

	body := p.block()
	return ast.FunctionStmt{Name: name, Params: parameters, Body: body}
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.conditional()

	if p.match(ast.TokenEqual) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case ast.VariableExpr:
			return ast.AssignExpr{Name: target.Name, Value: value}
		case ast.GetExpr:
			return ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		}
		p.report(equals, "Invalid assignment target.")
	}

	return expr
}

// conditional parses the ternary operator. The else branch recurses into
// conditional, so "a ? b : c ? d : e" groups as "a ? b : (c ? d : e)".
func (p *Parser) conditional() ast.Expr {
	expr := p.or()

	if p.match(ast.TokenQuestionMark) {
		thenBranch := p.expression()
		p.consume(ast.TokenColon, "Expect ':' after then branch of conditional expression.")
		elseBranch := p.conditional()
		expr = ast.ConditionalExpr{Condition: expr, Then: thenBranch, Else: elseBranch}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()

	for p.match(ast.TokenOr) {
		operator := p.previous()
		right := p.and()
		expr = ast.LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()

	for p.match(ast.TokenAnd) {
		operator := p.previous()
		right := p.equality()
		expr = ast.LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, ast.TokenBangEqual, ast.TokenEqualEqual)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, ast.TokenGreater, ast.TokenGreaterEqual, ast.TokenLess, ast.TokenLessEqual)
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, ast.TokenMinus, ast.TokenPlus)
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, ast.TokenSlash, ast.TokenStar, ast.TokenPercent)
}

// binary parses a left-associative chain of operands joined by any of
// the given operators.
func (p *Parser) binary(operand func() ast.Expr, operators ...ast.TokenType) ast.Expr {
	expr := operand()

	for p.match(operators...) {
		operator := p.previous()
		right := operand()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(ast.TokenBang, ast.TokenMinus) {
		operator := p.previous()
		right := p.unary()
		return ast.UnaryExpr{Operator: operator, Right: right}
	}

	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		if p.match(ast.TokenLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(ast.TokenDot) {
			name := p.consume(ast.TokenIdentifier, "Expect property name after '.'.")
			expr = ast.GetExpr{Object: expr, Name: name}
		} else {
			break
		}
	}

	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	args := make([]ast.Expr, 0)
	if !p.check(ast.TokenRightParen) {
		for {
			if len(args) == p.maxArgs {
				p.report(p.peek(), "Can't have more than "+strconv.Itoa(p.maxArgs)+" arguments.")
			}
			args = append(args, p.expression())
			if !p.match(ast.TokenComma) {
				break
			}
		}
	}
	paren := p.consume(ast.TokenRightParen, "Expect ')' after arguments.")
	return ast.CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(ast.TokenFalse):
		return ast.LiteralExpr{Value: false}
	case p.match(ast.TokenTrue):
		return ast.LiteralExpr{Value: true}
	case p.match(ast.TokenNil):
		return ast.LiteralExpr{}
	case p.match(ast.TokenNumber, ast.TokenString):
		return ast.LiteralExpr{Value: p.previous().Literal}
	case p.match(ast.TokenLeftParen):
		expr := p.expression()
		p.consume(ast.TokenRightParen, "Expect ')' after expression.")
		return ast.GroupingExpr{Expression: expr}
	case p.match(ast.TokenIdentifier):
		return ast.VariableExpr{Name: p.previous()}
	case p.match(ast.TokenThis):
		return ast.ThisExpr{Keyword: p.previous()}
	case p.match(ast.TokenSuper):
		keyword := p.previous()
		p.consume(ast.TokenDot, "Expect '.' after 'super'.")
		method := p.consume(ast.TokenIdentifier, "Expect superclass method name.")
		return ast.SuperExpr{Keyword: keyword, Method: method}
	}

	// Error productions: a binary operator without a left-hand operand.
	// The right-hand operand is parsed at the operator's own precedence
	// and stands in for the whole expression.
	switch {
	case p.match(ast.TokenBangEqual, ast.TokenEqualEqual):
		return p.missingLeftOperand(p.equality)
	case p.match(ast.TokenGreater, ast.TokenGreaterEqual, ast.TokenLess, ast.TokenLessEqual):
		return p.missingLeftOperand(p.comparison)
	case p.match(ast.TokenPlus):
		return p.missingLeftOperand(p.term)
	case p.match(ast.TokenSlash, ast.TokenStar, ast.TokenPercent):
		return p.missingLeftOperand(p.factor)
	}

	p.fail(p.peek(), "Expect expression.")
	return nil
}

func (p *Parser) missingLeftOperand(operand func() ast.Expr) ast.Expr {
	p.report(p.previous(), "Missing left-hand operand.")
	return operand()
}

// consume checks that the next ast.Token is of the given ast.TokenType and then
// advances to the next token. If the check fails, it reports the error and
// unwinds to the enclosing declaration.
func (p *Parser) consume(tokenType ast.TokenType, message string) ast.Token {
	if p.check(tokenType) {
		return p.advance()
	}
	p.fail(p.peek(), message)
	return ast.Token{}
}

// report reports a syntax error that leaves the current statement intact.
func (p *Parser) report(token ast.Token, message string) {
	p.hadError = true
	p.reporter.TokenError(token, message)
}

// fail reports a syntax error and abandons the current statement.
func (p *Parser) fail(token ast.Token, message string) {
	p.report(token, message)
	panic(parseError{token: token, msg: message})
}

// synchronize discards tokens until the start of the next statement: just
// past a semicolon, or at a keyword that begins a statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().TokenType == ast.TokenSemicolon {
			return
		}

		switch p.peek().TokenType {
		case ast.TokenClass, ast.TokenFun, ast.TokenVar, ast.TokenFor,
			ast.TokenIf, ast.TokenWhile, ast.TokenPrint, ast.TokenReturn:
			return
		}

		p.advance()
	}
}

func (p *Parser) match(types ...ast.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(tokenType ast.TokenType) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().TokenType == tokenType
}

func (p *Parser) advance() ast.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().TokenType == ast.TokenEof
}

func (p *Parser) peek() ast.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() ast.Token {
	return p.tokens[p.current-1]
}
