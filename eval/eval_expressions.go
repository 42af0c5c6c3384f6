/*
File    : lumen/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/object"
)

func evalArrayLiteral(n *ast.ArrayLiteral, env *environment.Environment) object.Object {
	elements := make([]object.Object, len(n.Elements))
	for i, elExpr := range n.Elements {
		val := Eval(elExpr, env)
		if object.IsError(val) {
			return val
		}
		elements[i] = val
	}
	return &object.Array{Elements: elements}
}

func evalPrefixExpression(n *ast.PrefixExpression, env *environment.Environment) object.Object {
	right := Eval(n.Right, env)
	if object.IsError(right) {
		return right
	}
	switch n.Operator {
	case "!":
		return evalBangOperator(right)
	case "-":
		return evalMinusPrefixOperator(right)
	default:
		return object.Errorf(object.NotImplemented, "unknown prefix operator: %s", n.Operator)
	}
}

func evalBangOperator(right object.Object) object.Object {
	return object.NativeBool(!isTruthy(right))
}

// isTruthy treats everything except `false` and `null` as true, per
// spec.md §4.4's Truthiness rule.
func isTruthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Boolean:
		return v.Value
	case *object.Null:
		return false
	default:
		return true
	}
}

func evalMinusPrefixOperator(right object.Object) object.Object {
	i, ok := right.(*object.Integer)
	if !ok {
		return object.Errorf(object.MinusPrefix, "unary '-' requires an integer, got %s", right.Type())
	}
	return &object.Integer{Value: -i.Value}
}

func evalInfixExpression(n *ast.InfixExpression, env *environment.Environment) object.Object {
	left := Eval(n.Left, env)
	if object.IsError(left) {
		return left
	}
	right := Eval(n.Right, env)
	if object.IsError(right) {
		return right
	}

	switch {
	case n.Operator == "==":
		return evalEquality(left, right, true)
	case n.Operator == "!=":
		return evalEquality(left, right, false)

	case left.Type() == object.INTEGER && right.Type() == object.INTEGER:
		return evalIntegerInfix(n.Operator, left.(*object.Integer), right.(*object.Integer))

	case left.Type() == object.STRING && right.Type() == object.STRING && n.Operator == "+":
		return &object.String{Value: left.(*object.String).Value + right.(*object.String).Value}

	case left.Type() == object.STRING && right.Type() == object.INTEGER && n.Operator == "*":
		return repeatString(left.(*object.String).Value, right.(*object.Integer).Value)
	case left.Type() == object.INTEGER && right.Type() == object.STRING && n.Operator == "*":
		return repeatString(right.(*object.String).Value, left.(*object.Integer).Value)

	default:
		return arithmeticTypeError(n.Operator, left, right)
	}
}

// arithmeticTypeError picks the spec-named error kind for an operator
// applied to operands of the wrong type: PlusError/SubtractError/
// MultiplyError/DivideError for the four arithmetic operators, Order for
// `<`/`>`, and NotImplemented for any other operator.
func arithmeticTypeError(op string, left, right object.Object) object.Object {
	kind := object.NotImplemented
	switch op {
	case "+":
		kind = object.PlusError
	case "-":
		kind = object.SubtractError
	case "*":
		kind = object.MultiplyError
	case "/":
		kind = object.DivideError
	case "<", ">":
		kind = object.OrderError
	}
	return object.Errorf(kind, "unsupported operator '%s' for types %s and %s", op, left.Type(), right.Type())
}

func repeatString(s string, n int64) object.Object {
	if n < 0 {
		return object.Errorf(object.MultiplyError, "cannot repeat a string a negative number of times: %d", n)
	}
	return &object.String{Value: strings.Repeat(s, int(n))}
}

func evalEquality(left, right object.Object, wantEqual bool) object.Object {
	if left.Type() != right.Type() {
		return object.Errorf(object.EqualError, "cannot compare %s with %s", left.Type(), right.Type())
	}

	var equal bool
	switch l := left.(type) {
	case *object.Integer:
		equal = l.Value == right.(*object.Integer).Value
	case *object.String:
		equal = l.Value == right.(*object.String).Value
	case *object.Boolean:
		equal = l.Value == right.(*object.Boolean).Value
	case *object.Null:
		equal = true
	default:
		equal = left == right
	}
	return object.NativeBool(equal == wantEqual)
}

func evalIntegerInfix(op string, left, right *object.Integer) object.Object {
	switch op {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return object.Errorf(object.DivideByZero, "division by zero")
		}
		return &object.Integer{Value: left.Value / right.Value}
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	default:
		return object.Errorf(object.OrderError, "unsupported integer operator: %s", op)
	}
}

func evalIndexExpression(n *ast.IndexExpression, env *environment.Environment) object.Object {
	left := Eval(n.Left, env)
	if object.IsError(left) {
		return left
	}
	index := Eval(n.Index, env)
	if object.IsError(index) {
		return index
	}

	arr, ok := left.(*object.Array)
	if !ok {
		return object.Errorf(object.IndexArray, "cannot index into %s", left.Type())
	}
	idx, ok := index.(*object.Integer)
	if !ok {
		return object.Errorf(object.CoerceObject, "array index must be an integer, got %s", index.Type())
	}
	if idx.Value < 0 || int(idx.Value) >= len(arr.Elements) {
		return object.Errorf(object.IndexOutOfBounds, "index %d out of bounds for array of length %d", idx.Value, len(arr.Elements))
	}
	return arr.Elements[idx.Value]
}
