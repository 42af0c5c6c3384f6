/*
File    : lumen/eval/eval_builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/lumen/object"
)

// Output is where print/println/printf write. The REPL and CLI redirect
// it (e.g. to capture output for the `lumen server` TCP connection
// writer); tests redirect it to a strings.Builder via SetOutput.
var Output io.Writer = os.Stdout

// SetOutput redirects where the print family of builtins writes.
func SetOutput(w io.Writer) { Output = w }

var builtins = map[string]*object.Builtin{
	"len":      {Name: "len", Fn: builtinLen},
	"push":     {Name: "push", Fn: builtinPush},
	"pop":      {Name: "pop", Fn: builtinPop},
	"pop_left": {Name: "pop_left", Fn: builtinPopLeft},
	"print":    {Name: "print", Fn: builtinPrint},
	"println":  {Name: "println", Fn: builtinPrintln},
	"printf":   {Name: "printf", Fn: builtinPrintf},
}

func argsCountError(name string, want, got int) *object.Error {
	return object.Errorf(object.ArgsCount, "%s: expected %d argument(s), got %d", name, want, got)
}

// builtinLen returns the length of a String (byte count, not rune count —
// see DESIGN.md's Open Question decision) or an Array (element count).
func builtinLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return argsCountError("len", 1, len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return object.Errorf(object.BuiltinArgsType, "len: argument must be STRING or ARRAY, got %s", args[0].Type())
	}
}

// builtinPush appends value to the end of arr IN PLACE — every alias of
// arr observes the new element, matching the language's reference-typed
// Array semantics.
func builtinPush(args ...object.Object) object.Object {
	if len(args) != 2 {
		return argsCountError("push", 2, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.Errorf(object.BuiltinArgsType, "push: first argument must be ARRAY, got %s", args[0].Type())
	}
	arr.Elements = append(arr.Elements, args[1])
	return arr
}

// builtinPop removes and returns the last element of arr, or Null if arr
// is empty (spec.md §4.9 — empty pop is not an error).
func builtinPop(args ...object.Object) object.Object {
	if len(args) != 1 {
		return argsCountError("pop", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.Errorf(object.BuiltinArgsType, "pop: argument must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NIL
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last
}

// builtinPopLeft removes and returns the first element of arr, or Null if
// arr is empty, mirroring builtinPop.
func builtinPopLeft(args ...object.Object) object.Object {
	if len(args) != 1 {
		return argsCountError("pop_left", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.Errorf(object.BuiltinArgsType, "pop_left: argument must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NIL
	}
	first := arr.Elements[0]
	arr.Elements = arr.Elements[1:]
	return first
}

func builtinPrint(args ...object.Object) object.Object {
	for _, a := range args {
		fmt.Fprint(Output, a.Inspect())
	}
	return object.NIL
}

func builtinPrintln(args ...object.Object) object.Object {
	for _, a := range args {
		fmt.Fprintln(Output, a.Inspect())
	}
	return object.NIL
}

// builtinPrintf requires a STRING format argument followed by any number
// of values substituted positionally via %v against their Inspect() form.
func builtinPrintf(args ...object.Object) object.Object {
	if len(args) == 0 {
		return argsCountError("printf", 1, 0)
	}
	format, ok := args[0].(*object.String)
	if !ok {
		return object.Errorf(object.BuiltinArgsType, "printf: first argument must be STRING, got %s", args[0].Type())
	}
	rest := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		rest[i] = a.Inspect()
	}
	fmt.Fprintf(Output, format.Value, rest...)
	return object.NIL
}
