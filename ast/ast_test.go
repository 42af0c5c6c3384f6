/*
File    : lumen/ast/ast_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/akashmaji946/lumen/token"
)

// TestLetStatementString verifies the printed form of a let statement
// matches the source the parser would have produced it from.
func TestLetStatementString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name:  &Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
				Value: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "y"}, Value: "y"},
			},
		},
	}
	if program.String() != "let x = y;" {
		t.Fatalf("program.String() wrong, got=%q", program.String())
	}
}

// TestDeeplyNestedPrefixDoesNotPanic guards against stack issues in
// String() for deeply nested ASTs, the way a deeply nested `!!!!1` program
// would parse.
func TestDeeplyNestedPrefixDoesNotPanic(t *testing.T) {
	var expr Expression = &NumberLiteral{Token: token.Token{Type: token.NUMBER, Literal: "1"}, Value: 1}
	for i := 0; i < 200; i++ {
		expr = &PrefixExpression{Token: token.Token{Type: token.BANG, Literal: "!"}, Operator: "!", Right: expr}
	}
	if expr.String() == "" {
		t.Fatal("deeply nested prefix expression produced empty string")
	}
}

// TestEmptyProgramString verifies an empty program stringifies to "".
func TestEmptyProgramString(t *testing.T) {
	prog := &Program{}
	if prog.String() != "" {
		t.Fatalf("expected empty string, got %q", prog.String())
	}
}
