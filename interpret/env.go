package interpret

import (
	"fmt"

	"lux/ast"
)

// environment holds a scope's bindings and a link to the enclosing
// scope. The chain is walked outward for reads and assignments;
// define never searches past the current scope.
type environment struct {
	enclosing *environment
	values    map[string]interface{}
}

func (e *environment) define(name string, value interface{}) {
	if e.values == nil {
		e.values = make(map[string]interface{})
	}
	e.values[name] = value
}

func (e *environment) get(name ast.Token) (interface{}, error) {
	if val, ok := e.values[name.Lexeme]; ok {
		return val, nil
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, runtimeError{name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

func (e *environment) assign(name ast.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.define(name.Lexeme, value)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return runtimeError{name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
