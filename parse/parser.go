package parse

import (
	"fmt"

	"lux/ast"
)

// SyntaxError is a parse error tied to the offending token's line.
// The parser collects every error it can recover from, so a single
// pass over a file reports all of them.
type SyntaxError struct {
	Line    int
	Where   string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// Parser parses a flat list of tokens into
// an AST representation of the source program
type Parser struct {
	tokens  []ast.Token
	current int
	errs    []SyntaxError
}

// NewParser returns a new Parser that reads a list of tokens
func NewParser(tokens []ast.Token) *Parser {
	return &Parser{tokens: tokens}
}

/**
Parser grammar:

	program      => declaration* EOF
	declaration  => varDecl | statement
	varDecl      => "var" IDENTIFIER ( "=" expression )? ";"
	statement    => exprStmt | ifStmt | forStmt | printStmt | whileStmt | block
	exprStmt     => expression ";"
	ifStmt       => "if" "(" expression ")" statement ( "else" statement )?
	forStmt      => "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
	printStmt    => "print" expression ";"
	whileStmt    => "while" "(" expression ")" statement
	block        => "{" declaration* "}" ;
	expression   => assignment
	assignment   => IDENTIFIER "=" assignment | logic_or
	logic_or     => logic_and ( "or" logic_and )*
	logic_and    => equality ( "and" equality )*
	equality     => comparison ( ( "!=" | "==" ) comparison )*
	comparison   => term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term         => factor ( ( "+" | "-" ) factor )*
	factor       => unary ( ( "/" | "*" ) unary )*
	unary        => ( "!" | "-" ) unary | primary
	primary      => NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" | IDENTIFIER
*/

// Parse reads the list of tokens and returns a list of statements
// representing the source program, along with all syntax errors found.
// A program that produced any errors must not be executed.
func (p *Parser) Parse() ([]ast.Stmt, []SyntaxError) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, p.errs
}

// declaration parses declaration statements. A declaration statement is
// a variable declaration or a regular statement. If the statement contains
// a parse error, it skips to the start of the next statement and returns nil.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if err := recover(); err != nil {
			// If the error is a SyntaxError, synchronize to
			// the next statement. If not, propagate the panic.
			if _, ok := err.(SyntaxError); ok {
				p.synchronize()
				stmt = nil
			} else {
				panic(err)
			}
		}
	}()

	if p.match(ast.TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
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

// statement parses statements. A statement can be a print,
// if, while, for, block or expression statement.
func (p *Parser) statement() ast.Stmt {
	if p.match(ast.TokenPrint) {
		return p.printStatement()
	}
	if p.match(ast.TokenLeftBrace) {
		stmts := p.block()
		return ast.BlockStmt{Statements: stmts}
	}
	if p.match(ast.TokenIf) {
		return p.ifStatement()
	}
	if p.match(ast.TokenWhile) {
		return p.whileStatement()
	}
	if p.match(ast.TokenFor) {
		return p.forStatement()
	}
	return p.expressionStatement()
}

// forStatement parses a for statement and desugars it into while form:
// the initializer and loop wrapped in a block, and the increment
// appended to the loop body. A missing condition defaults to true.
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
	body := p.statement()

	if increment != nil {
		body = ast.BlockStmt{Statements: []ast.Stmt{body, ast.ExpressionStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = ast.LiteralExpr{Value: true}
	}
	body = ast.WhileStmt{Body: body, Condition: condition}

	if initializer != nil {
		body = ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after value.")
	return ast.PrintStmt{Expr: expr}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(ast.TokenRightBrace) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(ast.TokenRightBrace, "Expect '}' after block.")
	return statements
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

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(ast.TokenLeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(ast.TokenRightParen, "Expect ')' after while condition.")
	body := p.statement()
	return ast.WhileStmt{Condition: condition, Body: body}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after expression.")
	return ast.ExpressionStmt{Expr: expr}
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses right-associatively, and only a plain variable
// reference is a legal target.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(ast.TokenEqual) {
		equals := p.previous()
		value := p.assignment()

		if varExpr, ok := expr.(ast.VariableExpr); ok {
			return ast.AssignExpr{Name: varExpr.Name, Value: value}
		}
		// report without unwinding: the right-hand side has already
		// been parsed, so there is nothing to resynchronize past
		p.errs = append(p.errs, tokenError(equals, "Invalid assignment target."))
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
	expr := p.comparison()

	for p.match(ast.TokenBangEqual, ast.TokenEqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()

	for p.match(ast.TokenGreater, ast.TokenGreaterEqual, ast.TokenLess, ast.TokenLessEqual) {
		operator := p.previous()
		right := p.term()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()

	for p.match(ast.TokenMinus, ast.TokenPlus) {
		operator := p.previous()
		right := p.factor()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()

	for p.match(ast.TokenSlash, ast.TokenStar) {
		operator := p.previous()
		right := p.unary()
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

	return p.primary()
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
	}

	p.error(p.peek(), "Expect expression.")
	return nil
}

// consume checks that the next token is of the given type and then
// advances to the next token. If the check fails, it panics with the given message.
func (p *Parser) consume(tokenType ast.TokenType, message string) ast.Token {
	if p.check(tokenType) {
		return p.advance()
	}
	p.error(p.peek(), message)
	return ast.Token{}
}

func (p *Parser) error(token ast.Token, message string) {
	err := tokenError(token, message)
	p.errs = append(p.errs, err)
	panic(err)
}

// synchronize discards tokens up to the next statement boundary, so
// parsing can resume after a syntax error
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().TokenType == ast.TokenSemicolon {
			return
		}

		switch p.peek().TokenType {
		case ast.TokenFor, ast.TokenIf, ast.TokenPrint, ast.TokenVar, ast.TokenWhile:
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

func tokenError(token ast.Token, message string) SyntaxError {
	var where string
	if token.TokenType == ast.TokenEof {
		where = " at end"
	} else {
		where = " at '" + token.Lexeme + "'"
	}

	return SyntaxError{Line: token.Line, Where: where, Message: message}
}
