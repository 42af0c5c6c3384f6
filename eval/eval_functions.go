/*
File    : lumen/eval/eval_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/object"
)

// evalCallExpression evaluates the callee, then every argument in order
// (left to right, short-circuiting on the first error), and dispatches to
// either a user-defined Function or a native Builtin.
func evalCallExpression(n *ast.CallExpression, env *environment.Environment) object.Object {
	callee := Eval(n.Function, env)
	if object.IsError(callee) {
		return callee
	}

	args := make([]object.Object, 0, len(n.Arguments))
	for _, argExpr := range n.Arguments {
		val := Eval(argExpr, env)
		if object.IsError(val) {
			return val
		}
		args = append(args, val)
	}

	switch fn := callee.(type) {
	case *object.Function:
		return applyFunction(fn, args)
	case *object.Builtin:
		return fn.Fn(args...)
	default:
		return object.Errorf(object.NotImplemented, "not a function: %s", callee.Type())
	}
}

// applyFunction checks arity in both directions (too few and too many
// arguments are both errors — see DESIGN.md's Open Question decision),
// binds parameters in a fresh scope enclosed by the function's captured
// environment, evaluates the body, and unwraps a ReturnValue at this
// boundary so it does not keep propagating past the call that produced
// it.
func applyFunction(fn *object.Function, args []object.Object) object.Object {
	if len(args) != len(fn.Parameters) {
		return object.Errorf(object.ArgsCount,
			"expected %d argument(s), got %d", len(fn.Parameters), len(args))
	}

	callEnv := environment.New(fn.Env)
	for i, param := range fn.Parameters {
		// callEnv is fresh, so Define fails only on a parameter name that
		// appears twice in the parameter list.
		if err := callEnv.Define(param.Value, args[i]); err != nil {
			return object.Errorf(object.AlreadyInitialized, "%s", err.Error())
		}
	}

	result := Eval(fn.Body, callEnv)
	return unwrapReturnValue(result)
}

func unwrapReturnValue(obj object.Object) object.Object {
	if rv, ok := obj.(*object.ReturnValue); ok {
		return rv.Value
	}
	return obj
}
