/*
File    : lumen/cmd/lumen/cmd/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/lumen/ast"
)

const indentSize = 4

// printingVisitor walks an *ast.Program and renders it as an indented
// tree, one line per node, for the `lumen parse` command. Lumen's AST has
// no Accept/visitor methods of its own, so this type switches on the
// concrete node type directly rather than double-dispatching.
type printingVisitor struct {
	indent int
	buf    bytes.Buffer
}

func (p *printingVisitor) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
}

func (p *printingVisitor) line(label string, node ast.Node) {
	p.writeIndent()
	fmt.Fprintf(&p.buf, "%s [%s]\n", label, node.TokenLiteral())
}

func (p *printingVisitor) visit(node ast.Node) {
	switch n := node.(type) {
	case *ast.Program:
		p.writeIndent()
		fmt.Fprintf(&p.buf, "Program\n")
		p.indent += indentSize
		for _, stmt := range n.Statements {
			p.visit(stmt)
		}
		p.indent -= indentSize

	case *ast.LetStatement:
		p.line("Let "+n.Name.Value, n)
		p.indent += indentSize
		p.visit(n.Value)
		p.indent -= indentSize

	case *ast.ReassignStatement:
		p.line("Reassign", n)
		p.indent += indentSize
		p.visit(n.Left)
		p.visit(n.Value)
		p.indent -= indentSize

	case *ast.ReturnStatement:
		p.line("Return", n)
		if n.ReturnValue != nil {
			p.indent += indentSize
			p.visit(n.ReturnValue)
			p.indent -= indentSize
		}

	case *ast.ExpressionStatement:
		p.visit(n.Expression)

	case *ast.BlockStatement:
		p.line("Block", n)
		p.indent += indentSize
		for _, stmt := range n.Statements {
			p.visit(stmt)
		}
		p.indent -= indentSize

	case *ast.Identifier:
		p.line("Identifier "+n.Value, n)

	case *ast.NumberLiteral:
		p.line(fmt.Sprintf("Number %d", n.Value), n)

	case *ast.BoolLiteral:
		p.line(fmt.Sprintf("Bool %t", n.Value), n)

	case *ast.StringLiteral:
		p.line(fmt.Sprintf("String %q", n.Value), n)

	case *ast.ArrayLiteral:
		p.line("Array", n)
		p.indent += indentSize
		for _, el := range n.Elements {
			p.visit(el)
		}
		p.indent -= indentSize

	case *ast.PrefixExpression:
		p.line("Prefix "+n.Operator, n)
		p.indent += indentSize
		p.visit(n.Right)
		p.indent -= indentSize

	case *ast.InfixExpression:
		p.line("Infix "+n.Operator, n)
		p.indent += indentSize
		p.visit(n.Left)
		p.visit(n.Right)
		p.indent -= indentSize

	case *ast.IfExpression:
		p.line("If", n)
		p.indent += indentSize
		p.visit(n.Condition)
		p.visit(n.Consequence)
		if n.Alternative != nil {
			p.visit(n.Alternative)
		}
		p.indent -= indentSize

	case *ast.FunctionLiteral:
		p.line("Function", n)
		p.indent += indentSize
		for _, param := range n.Parameters {
			p.visit(param)
		}
		p.visit(n.Body)
		p.indent -= indentSize

	case *ast.CallExpression:
		p.line("Call", n)
		p.indent += indentSize
		p.visit(n.Function)
		for _, arg := range n.Arguments {
			p.visit(arg)
		}
		p.indent -= indentSize

	case *ast.IndexExpression:
		p.line("Index", n)
		p.indent += indentSize
		p.visit(n.Left)
		p.visit(n.Index)
		p.indent -= indentSize

	default:
		p.writeIndent()
		fmt.Fprintf(&p.buf, "unknown node %T\n", node)
	}
}

func (p *printingVisitor) String() string { return p.buf.String() }
