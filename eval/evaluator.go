/*
File    : lumen/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking evaluator: it recursively walks an
// *ast.Program and produces object.Object values, per spec.md §4.4.
package eval

import (
	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/object"
)

// Eval dispatches on the dynamic type of node and returns the resulting
// value. A *object.Error or *object.ReturnValue returned from a nested
// call short-circuits its caller rather than being treated as an ordinary
// result — see evalBlockStatement and evalProgram.
func Eval(node ast.Node, env *environment.Environment) object.Object {
	switch n := node.(type) {

	case *ast.Program:
		return evalProgram(n, env)

	case *ast.BlockStatement:
		return evalBlockStatement(n, env)

	case *ast.ExpressionStatement:
		return Eval(n.Expression, env)

	case *ast.LetStatement:
		return evalLetStatement(n, env)

	case *ast.ReassignStatement:
		return evalReassignStatement(n, env)

	case *ast.ReturnStatement:
		return evalReturnStatement(n, env)

	case *ast.NumberLiteral:
		return &object.Integer{Value: n.Value}

	case *ast.BoolLiteral:
		return object.NativeBool(n.Value)

	case *ast.StringLiteral:
		return &object.String{Value: n.Value}

	case *ast.ArrayLiteral:
		return evalArrayLiteral(n, env)

	case *ast.Identifier:
		return evalIdentifier(n, env)

	case *ast.PrefixExpression:
		return evalPrefixExpression(n, env)

	case *ast.InfixExpression:
		return evalInfixExpression(n, env)

	case *ast.IfExpression:
		return evalIfExpression(n, env)

	case *ast.FunctionLiteral:
		return &object.Function{Parameters: n.Parameters, Body: n.Body, Env: env}

	case *ast.CallExpression:
		return evalCallExpression(n, env)

	case *ast.IndexExpression:
		return evalIndexExpression(n, env)
	}

	return object.Errorf(object.NotImplemented, "no evaluation rule for %T", node)
}

// evalIdentifier looks name up in env and converts the stored
// environment.Value back to object.Object. The assertion always succeeds
// because every value ever stored through this package is an
// object.Object to begin with; environment only trades in its own minimal
// Value interface to avoid importing this package.
func evalIdentifier(n *ast.Identifier, env *environment.Environment) object.Object {
	val, ok := env.Get(n.Value)
	if !ok {
		if builtin, ok := builtins[n.Value]; ok {
			return builtin
		}
		return object.Errorf(object.IdentifierNotFound, "identifier not found: %s", n.Value)
	}
	return val.(object.Object)
}
