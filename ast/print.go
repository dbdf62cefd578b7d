package ast

import (
	"fmt"
	"strings"
)

// Print returns an s-expression representation of an Expr node
func Print(expr Expr) string {
	return astPrinter{}.print(expr)
}

// PrintProgram returns an s-expression representation of a list of
// statements, one statement per line
func PrintProgram(stmts []Stmt) string {
	p := astPrinter{}
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = stmt.Accept(p).(string)
	}
	return strings.Join(lines, "\n")
}

type astPrinter struct{}

func (a astPrinter) print(expr Expr) string {
	return expr.Accept(a).(string)
}

func (a astPrinter) VisitAssignExpr(expr AssignExpr) interface{} {
	return a.parenthesize("= "+expr.Name.Lexeme, expr.Value)
}

func (a astPrinter) VisitBinaryExpr(expr BinaryExpr) interface{} {
	return a.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (a astPrinter) VisitGroupingExpr(expr GroupingExpr) interface{} {
	return a.parenthesize("group", expr.Expression)
}

func (a astPrinter) VisitLiteralExpr(expr LiteralExpr) interface{} {
	if expr.Value == nil {
		return "nil"
	}
	return fmt.Sprint(expr.Value)
}

func (a astPrinter) VisitLogicalExpr(expr LogicalExpr) interface{} {
	return a.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (a astPrinter) VisitUnaryExpr(expr UnaryExpr) interface{} {
	return a.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (a astPrinter) VisitVariableExpr(expr VariableExpr) interface{} {
	return expr.Name.Lexeme
}

func (a astPrinter) VisitBlockStmt(stmt BlockStmt) interface{} {
	parts := make([]string, len(stmt.Statements))
	for i, s := range stmt.Statements {
		parts[i] = s.Accept(a).(string)
	}
	return "(block " + strings.Join(parts, " ") + ")"
}

func (a astPrinter) VisitExpressionStmt(stmt ExpressionStmt) interface{} {
	return a.parenthesize("expr", stmt.Expr)
}

func (a astPrinter) VisitIfStmt(stmt IfStmt) interface{} {
	out := "(if " + a.print(stmt.Condition) + " " + stmt.ThenBranch.Accept(a).(string)
	if stmt.ElseBranch != nil {
		out += " " + stmt.ElseBranch.Accept(a).(string)
	}
	return out + ")"
}

func (a astPrinter) VisitPrintStmt(stmt PrintStmt) interface{} {
	return a.parenthesize("print", stmt.Expr)
}

func (a astPrinter) VisitVarStmt(stmt VarStmt) interface{} {
	if stmt.Initializer == nil {
		return "(var " + stmt.Name.Lexeme + ")"
	}
	return a.parenthesize("var "+stmt.Name.Lexeme, stmt.Initializer)
}

func (a astPrinter) VisitWhileStmt(stmt WhileStmt) interface{} {
	return "(while " + a.print(stmt.Condition) + " " + stmt.Body.Accept(a).(string) + ")"
}

func (a astPrinter) parenthesize(name string, exprs ...Expr) string {
	var str string

	str += "(" + name
	for _, expr := range exprs {
		str += " " + a.print(expr)
	}
	str += ")"

	return str
}
