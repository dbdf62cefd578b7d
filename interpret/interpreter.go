package interpret

import (
	"fmt"
	"io"

	"lux/ast"
)

type runtimeError struct {
	token ast.Token
	msg   string
}

func (r runtimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", r.msg, r.token.Line)
}

// Interpreter holds the globals and current execution
// environment for a program to be executed
type Interpreter struct {
	// current execution environment
	environment *environment
	// global variables
	globals *environment
	// standard output
	stdOut io.Writer
	// standard error
	stdErr io.Writer
}

// NewInterpreter sets up a new interpreter with its environment and config
func NewInterpreter(stdOut io.Writer, stdErr io.Writer) *Interpreter {
	globals := &environment{}
	return &Interpreter{
		globals:     globals,
		environment: globals,
		stdOut:      stdOut,
		stdErr:      stdErr,
	}
}

// Interpret executes a list of statements within the interpreter's
// environment. A runtime error aborts the remaining statements and is
// reported once to the interpreter's standard error.
func (in *Interpreter) Interpret(stmts []ast.Stmt) (hadRuntimeError bool) {
	defer func() {
		if err := recover(); err != nil {
			if e, ok := err.(runtimeError); ok {
				_, _ = in.stdErr.Write([]byte(e.Error() + "\n"))
				hadRuntimeError = true
			} else {
				panic(err)
			}
		}
	}()

	for _, statement := range stmts {
		in.execute(statement)
	}

	return
}

func (in *Interpreter) error(token ast.Token, message string) {
	panic(runtimeError{token: token, msg: message})
}

func (in *Interpreter) execute(stmt ast.Stmt) interface{} {
	return stmt.Accept(in)
}

func (in *Interpreter) evaluate(expr ast.Expr) interface{} {
	return expr.Accept(in)
}

func (in *Interpreter) VisitBlockStmt(stmt ast.BlockStmt) interface{} {
	in.executeBlock(stmt.Statements, &environment{enclosing: in.environment})
	return nil
}

func (in *Interpreter) VisitExpressionStmt(stmt ast.ExpressionStmt) interface{} {
	in.evaluate(stmt.Expr)
	return nil
}

func (in *Interpreter) VisitIfStmt(stmt ast.IfStmt) interface{} {
	if in.isTruthy(in.evaluate(stmt.Condition)) {
		in.execute(stmt.ThenBranch)
	} else if stmt.ElseBranch != nil {
		in.execute(stmt.ElseBranch)
	}
	return nil
}

// VisitPrintStmt evaluates the statement's expression and prints
// the result to the interpreter's standard output
func (in *Interpreter) VisitPrintStmt(stmt ast.PrintStmt) interface{} {
	value := in.evaluate(stmt.Expr)
	_, _ = in.stdOut.Write([]byte(in.stringify(value) + "\n"))
	return nil
}

func (in *Interpreter) VisitVarStmt(stmt ast.VarStmt) interface{} {
	var val interface{}
	if stmt.Initializer != nil {
		val = in.evaluate(stmt.Initializer)
	}
	in.environment.define(stmt.Name.Lexeme, val)
	return nil
}

func (in *Interpreter) VisitWhileStmt(stmt ast.WhileStmt) interface{} {
	for in.isTruthy(in.evaluate(stmt.Condition)) {
		in.execute(stmt.Body)
	}
	return nil
}

func (in *Interpreter) VisitAssignExpr(expr ast.AssignExpr) interface{} {
	value := in.evaluate(expr.Value)
	if err := in.environment.assign(expr.Name, value); err != nil {
		panic(err)
	}
	return value
}

func (in *Interpreter) VisitBinaryExpr(expr ast.BinaryExpr) interface{} {
	left := in.evaluate(expr.Left)
	right := in.evaluate(expr.Right)

	switch expr.Operator.TokenType {
	case ast.TokenPlus:
		_, leftIsFloat := left.(float64)
		_, rightIsFloat := right.(float64)
		if leftIsFloat && rightIsFloat {
			return left.(float64) + right.(float64)
		}
		_, leftIsString := left.(string)
		_, rightIsString := right.(string)
		if leftIsString && rightIsString {
			return left.(string) + right.(string)
		}
		in.error(expr.Operator, "Operands must be two numbers or two strings.")
	case ast.TokenMinus:
		in.checkNumberOperands(expr.Operator, left, right)
		return left.(float64) - right.(float64)
	case ast.TokenSlash:
		in.checkNumberOperands(expr.Operator, left, right)
		if right.(float64) == 0 {
			in.error(expr.Operator, "Division by zero.")
		}
		return left.(float64) / right.(float64)
	case ast.TokenStar:
		in.checkNumberOperands(expr.Operator, left, right)
		return left.(float64) * right.(float64)
	// comparison
	case ast.TokenGreater:
		in.checkNumberOperands(expr.Operator, left, right)
		return left.(float64) > right.(float64)
	case ast.TokenGreaterEqual:
		in.checkNumberOperands(expr.Operator, left, right)
		return left.(float64) >= right.(float64)
	case ast.TokenLess:
		in.checkNumberOperands(expr.Operator, left, right)
		return left.(float64) < right.(float64)
	case ast.TokenLessEqual:
		in.checkNumberOperands(expr.Operator, left, right)
		return left.(float64) <= right.(float64)
	// equality, defined over every value kind
	case ast.TokenEqualEqual:
		return left == right
	case ast.TokenBangEqual:
		return left != right
	}
	return nil
}

func (in *Interpreter) VisitGroupingExpr(expr ast.GroupingExpr) interface{} {
	return in.evaluate(expr.Expression)
}

func (in *Interpreter) VisitLiteralExpr(expr ast.LiteralExpr) interface{} {
	return expr.Value
}

// VisitLogicalExpr short-circuits: the deciding operand is returned
// as the value of the whole expression
func (in *Interpreter) VisitLogicalExpr(expr ast.LogicalExpr) interface{} {
	left := in.evaluate(expr.Left)
	if expr.Operator.TokenType == ast.TokenOr {
		if in.isTruthy(left) {
			return left
		}
	} else { // and
		if !in.isTruthy(left) {
			return left
		}
	}
	return in.evaluate(expr.Right)
}

func (in *Interpreter) VisitUnaryExpr(expr ast.UnaryExpr) interface{} {
	right := in.evaluate(expr.Right)
	switch expr.Operator.TokenType {
	case ast.TokenBang:
		return !in.isTruthy(right)
	case ast.TokenMinus:
		in.checkNumberOperand(expr.Operator, right)
		return -right.(float64)
	}
	return nil
}

func (in *Interpreter) VisitVariableExpr(expr ast.VariableExpr) interface{} {
	val, err := in.environment.get(expr.Name)
	if err != nil {
		panic(err)
	}
	return val
}

func (in *Interpreter) executeBlock(statements []ast.Stmt, env *environment) {
	// Restore the current environment after executing the block
	previous := in.environment
	defer func() {
		in.environment = previous
	}()

	in.environment = env
	for _, statement := range statements {
		in.execute(statement)
	}
}

func (in *Interpreter) isTruthy(val interface{}) bool {
	if val == nil {
		return false
	}
	if v, ok := val.(bool); ok {
		return v
	}
	return true
}

func (in *Interpreter) checkNumberOperand(operator ast.Token, operand interface{}) {
	if _, ok := operand.(float64); ok {
		return
	}
	panic(runtimeError{operator, "Operand must be a number."})
}

func (in *Interpreter) checkNumberOperands(operator ast.Token, left interface{}, right interface{}) {
	if _, ok := left.(float64); ok {
		if _, ok = right.(float64); ok {
			return
		}
	}
	panic(runtimeError{operator, "Operands must be numbers."})
}

func (in *Interpreter) stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprint(value)
}
