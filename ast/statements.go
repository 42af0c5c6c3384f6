/*
File    : lumen/ast/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"

	"github.com/akashmaji946/lumen/token"
)

// LetStatement is `let name = value;`. initiate-only: see environment's
// Define, which rejects redeclaration within the same scope.
type LetStatement struct {
	Token token.Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (l *LetStatement) statementNode()       {}
func (l *LetStatement) TokenLiteral() string { return l.Token.Literal }
func (l *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString(l.TokenLiteral() + " ")
	out.WriteString(l.Name.String())
	out.WriteString(" = ")
	if l.Value != nil {
		out.WriteString(l.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReassignStatement is `lhs = value;`, where lhs is parsed as a full
// expression at LOWEST precedence and only later validated (by the
// evaluator) to be an Identifier or an IndexExpression — spec.md §3's
// Reassign invariant.
type ReassignStatement struct {
	Token token.Token // the '=' token
	Left  Expression
	Value Expression
}

func (r *ReassignStatement) statementNode()       {}
func (r *ReassignStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReassignStatement) String() string {
	var out bytes.Buffer
	out.WriteString(r.Left.String())
	out.WriteString(" = ")
	if r.Value != nil {
		out.WriteString(r.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatement is `return value?;`. Value is nil for a bare `return;`.
type ReturnStatement struct {
	Token       token.Token // the 'return' token
	ReturnValue Expression
}

func (r *ReturnStatement) statementNode()       {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString(r.TokenLiteral() + " ")
	if r.ReturnValue != nil {
		out.WriteString(r.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

// ExpressionStatement wraps a bare expression used as a statement, e.g. a
// function call on its own line.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (e *ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) String() string {
	if e.Expression != nil {
		return e.Expression.String()
	}
	return ""
}

// BlockStatement is `{ stmt stmt ... }`, the body of an if/else/function.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (b *BlockStatement) statementNode()       {}
func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Statements {
		out.WriteString(s.String())
	}
	out.WriteString(" }")
	return out.String()
}
