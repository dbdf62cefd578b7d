package ast

import "testing"

func TestPrint(t *testing.T) {
	minus := Token{TokenType: TokenMinus, Lexeme: "-"}
	star := Token{TokenType: TokenStar, Lexeme: "*"}

	expr := BinaryExpr{
		Left:     UnaryExpr{Operator: minus, Right: LiteralExpr{Value: 123.0}},
		Operator: star,
		Right:    GroupingExpr{Expression: LiteralExpr{Value: 45.67}},
	}

	if got, want := Print(expr), "(* (- 123) (group 45.67))"; got != want {
		t.Errorf("got %s, expected %s", got, want)
	}
}

func TestPrintProgram(t *testing.T) {
	name := Token{TokenType: TokenIdentifier, Lexeme: "a"}
	stmts := []Stmt{
		VarStmt{Name: name, Initializer: LiteralExpr{Value: 1.0}},
		PrintStmt{Expr: VariableExpr{Name: name}},
	}

	if got, want := PrintProgram(stmts), "(var a 1)\n(print a)"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}
