/*
File    : lumen/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/object"
)

// evalIfExpression evaluates the condition and dispatches on its
// truthiness. An if with no matching alternative evaluates to NIL, the
// same as any other expression that produces no meaningful value.
func evalIfExpression(n *ast.IfExpression, env *environment.Environment) object.Object {
	cond := Eval(n.Condition, env)
	if object.IsError(cond) {
		return cond
	}

	if isTruthy(cond) {
		return Eval(n.Consequence, env)
	}
	if n.Alternative != nil {
		return Eval(n.Alternative, env)
	}
	return object.NIL
}
