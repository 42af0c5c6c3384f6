/*
File    : lumen/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/object"
)

// evalProgram evaluates every top-level statement in order and unwraps a
// ReturnValue the moment it surfaces — `return` at the top level simply
// ends evaluation early with that value, per spec.md §4.4.
func evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = object.NIL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch r := result.(type) {
		case *object.ReturnValue:
			return r.Value
		case *object.Error:
			return r
		}
	}
	return result
}

// evalBlockStatement evaluates a block's statements in order but does NOT
// unwrap a ReturnValue — it must keep propagating upward, through any
// number of nested blocks, until it reaches the function-call boundary
// (applyFunction) or the top of the program.
func evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	var result object.Object = object.NIL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			kind := result.Type()
			if kind == object.RETURN_VALUE || object.IsError(result) {
				return result
			}
		}
	}
	return result
}

func evalLetStatement(stmt *ast.LetStatement, env *environment.Environment) object.Object {
	val := Eval(stmt.Value, env)
	if object.IsError(val) {
		return val
	}
	if err := env.Define(stmt.Name.Value, val); err != nil {
		return object.Errorf(object.AlreadyInitialized, "%s", err.Error())
	}
	return val
}

func evalReturnStatement(stmt *ast.ReturnStatement, env *environment.Environment) object.Object {
	if stmt.ReturnValue == nil {
		return &object.ReturnValue{Value: object.NIL}
	}
	val := Eval(stmt.ReturnValue, env)
	if object.IsError(val) {
		return val
	}
	return &object.ReturnValue{Value: val}
}

// evalReassignStatement handles both `name = value;` (an Identifier
// left-hand side, updated in the nearest enclosing scope that bound it)
// and `arr[i] = value;` (an IndexExpression left-hand side, mutating the
// array in place so every alias observes the change) — spec.md §3's
// Reassign invariant.
func evalReassignStatement(stmt *ast.ReassignStatement, env *environment.Environment) object.Object {
	val := Eval(stmt.Value, env)
	if object.IsError(val) {
		return val
	}

	switch target := stmt.Left.(type) {
	case *ast.Identifier:
		if err := env.Reassign(target.Value, val); err != nil {
			return object.Errorf(object.IdentifierNotFound, "%s", err.Error())
		}
		return val

	case *ast.IndexExpression:
		left := Eval(target.Left, env)
		if object.IsError(left) {
			return left
		}
		arr, ok := left.(*object.Array)
		if !ok {
			return object.Errorf(object.IndexArray, "cannot index into %s", left.Type())
		}
		idx := Eval(target.Index, env)
		if object.IsError(idx) {
			return idx
		}
		i, ok := idx.(*object.Integer)
		if !ok {
			return object.Errorf(object.CoerceObject, "array index must be an integer, got %s", idx.Type())
		}
		if i.Value < 0 || int(i.Value) >= len(arr.Elements) {
			return object.Errorf(object.IndexOutOfBounds, "index %d out of bounds for array of length %d", i.Value, len(arr.Elements))
		}
		arr.Elements[i.Value] = val
		return val

	default:
		return object.Errorf(object.AssignLHS, "invalid assignment target: %T", stmt.Left)
	}
}
