package interpret

import (
	"testing"

	"lux/ast"
)

func ident(name string) ast.Token {
	return ast.Token{TokenType: ast.TokenIdentifier, Lexeme: name, Line: 1}
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := &environment{}
	env.define("a", 1.0)

	val, err := env.get(ident("a"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if val != 1.0 {
		t.Errorf("got %v, expected 1", val)
	}

	// define in the same scope overwrites
	env.define("a", 2.0)
	val, _ = env.get(ident("a"))
	if val != 2.0 {
		t.Errorf("got %v, expected 2", val)
	}
}

func TestEnvironmentChainWalk(t *testing.T) {
	outer := &environment{}
	outer.define("a", "outer")
	inner := &environment{enclosing: outer}

	// reads walk outward
	val, err := inner.get(ident("a"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if val != "outer" {
		t.Errorf("got %v, expected outer", val)
	}

	// a shadow in the inner scope wins without touching the outer binding
	inner.define("a", "inner")
	val, _ = inner.get(ident("a"))
	if val != "inner" {
		t.Errorf("got %v, expected inner", val)
	}
	val, _ = outer.get(ident("a"))
	if val != "outer" {
		t.Errorf("outer binding changed: got %v", val)
	}
}

func TestEnvironmentAssign(t *testing.T) {
	outer := &environment{}
	outer.define("a", 1.0)
	inner := &environment{enclosing: outer}

	// assign walks outward and mutates the defining scope
	if err := inner.assign(ident("a"), 2.0); err != nil {
		t.Fatalf("assign: %v", err)
	}
	val, _ := outer.get(ident("a"))
	if val != 2.0 {
		t.Errorf("got %v, expected 2", val)
	}

	// assign never declares
	if err := inner.assign(ident("b"), 1.0); err == nil {
		t.Error("expected undefined variable error")
	}
}

func TestEnvironmentUndefined(t *testing.T) {
	env := &environment{}
	_, err := env.get(ident("missing"))
	if err == nil {
		t.Fatal("expected an error")
	}
	rErr, ok := err.(runtimeError)
	if !ok {
		t.Fatalf("expected runtimeError, got %T", err)
	}
	if rErr.msg != "Undefined variable 'missing'." {
		t.Errorf("got %q", rErr.msg)
	}
}
