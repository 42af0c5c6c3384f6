/*
File    : lumen/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"os"
	"strings"
	"testing"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}
	env := environment.New(nil)
	return Eval(program, env)
}

func testInteger(t *testing.T, obj object.Object, want int64) {
	t.Helper()
	i, ok := obj.(*object.Integer)
	if !ok {
		t.Fatalf("expected *object.Integer, got %T (%+v)", obj, obj)
	}
	if i.Value != want {
		t.Errorf("wrong integer value, got=%d, want=%d", i.Value, want)
	}
}

func TestEvaluator_Integers(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"5", 5},
		{"-5", -5},
		{"5 + 5 * 2", 15},
		{"(5 + 5) * 2", 20},
		{"10 / 2 - 1", 4},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		testInteger(t, result, tt.want)
	}
}

func TestEvaluator_DivideByZero(t *testing.T) {
	result := testEval(t, "10 / 0")
	errObj, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected *object.Error, got %T", result)
	}
	if errObj.Kind != object.DivideByZero {
		t.Errorf("wrong error kind, got=%s", errObj.Kind)
	}
}

func TestEvaluator_Booleans(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"true == true", true},
		{"true != false", true},
		{"!true", false},
		{"!!true", true},
		{"!5", false},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		b, ok := result.(*object.Boolean)
		if !ok {
			t.Fatalf("input=%q: expected *object.Boolean, got %T", tt.input, result)
		}
		if b.Value != tt.want {
			t.Errorf("input=%q: got=%t, want=%t", tt.input, b.Value, tt.want)
		}
	}
}

func TestEvaluator_IfElse(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 > 2) { 10 } else if (1 < 2) { 20 } else { 30 }", int64(20)},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		if tt.want == nil {
			if _, ok := result.(*object.Null); !ok {
				t.Errorf("input=%q: expected NIL, got %T", tt.input, result)
			}
			continue
		}
		testInteger(t, result, tt.want.(int64))
	}
}

func TestEvaluator_ReturnStatements(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"return 10;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{`
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }
  return 1;
}`, 10},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		testInteger(t, result, tt.want)
	}
}

func TestEvaluator_LetStatements(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		testInteger(t, result, tt.want)
	}
}

func TestEvaluator_LetRedeclarationIsAnError(t *testing.T) {
	result := testEval(t, "let a = 5; let a = 6; a;")
	errObj, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected *object.Error, got %T", result)
	}
	if errObj.Kind != object.AlreadyInitialized {
		t.Errorf("wrong error kind, got=%s", errObj.Kind)
	}
}

func TestEvaluator_IdentifierNotFound(t *testing.T) {
	result := testEval(t, "foobar;")
	errObj, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected *object.Error, got %T", result)
	}
	if errObj.Kind != object.IdentifierNotFound {
		t.Errorf("wrong error kind, got=%s", errObj.Kind)
	}
}

func TestEvaluator_Functions(t *testing.T) {
	result := testEval(t, "fn(x) { x + 2; };")
	fn, ok := result.(*object.Function)
	if !ok {
		t.Fatalf("expected *object.Function, got %T", result)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0].String() != "x" {
		t.Fatalf("wrong parameters: %+v", fn.Parameters)
	}
	if fn.Body.String() != "{ (x + 2) }" {
		t.Fatalf("wrong body: %q", fn.Body.String())
	}
}

func TestEvaluator_FunctionApplication(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		testInteger(t, result, tt.want)
	}
}

// TestEvaluator_ClosuresCaptureByReference guards the invariant that a
// closure sees later mutations of its captured variable, not a snapshot
// taken at definition time.
func TestEvaluator_ClosuresCaptureByReference(t *testing.T) {
	result := testEval(t, `
let a = 1;
let f = fn() { a; };
a = 2;
f();
`)
	testInteger(t, result, 2)
}

func TestEvaluator_ClosureFactory(t *testing.T) {
	result := testEval(t, `
let newAdder = fn(x) {
  fn(y) { x + y; };
};
let addTwo = newAdder(2);
addTwo(3);
`)
	testInteger(t, result, 5)
}

func TestEvaluator_ArityErrorsBothDirections(t *testing.T) {
	tooFew := testEval(t, "let f = fn(x, y) { x + y; }; f(1);")
	errObj, ok := tooFew.(*object.Error)
	if !ok || errObj.Kind != object.ArgsCount {
		t.Fatalf("expected ArgsCount error for too few args, got %+v", tooFew)
	}

	tooMany := testEval(t, "let f = fn(x) { x; }; f(1, 2);")
	errObj, ok = tooMany.(*object.Error)
	if !ok || errObj.Kind != object.ArgsCount {
		t.Fatalf("expected ArgsCount error for too many args, got %+v", tooMany)
	}
}

func TestEvaluator_Strings(t *testing.T) {
	result := testEval(t, `"Hello" + " " + "World!"`)
	s, ok := result.(*object.String)
	if !ok {
		t.Fatalf("expected *object.String, got %T", result)
	}
	if s.Value != "Hello World!" {
		t.Errorf("wrong value: %q", s.Value)
	}
}

func TestEvaluator_StringRepetition(t *testing.T) {
	result := testEval(t, `"ab" * 3`)
	s, ok := result.(*object.String)
	if !ok {
		t.Fatalf("expected *object.String, got %T", result)
	}
	if s.Value != "ababab" {
		t.Errorf("wrong value: %q", s.Value)
	}
}

func TestEvaluator_ArrayLiteral(t *testing.T) {
	result := testEval(t, "[1, 2 * 2, 3 + 3]")
	arr, ok := result.(*object.Array)
	if !ok {
		t.Fatalf("expected *object.Array, got %T", result)
	}
	testInteger(t, arr.Elements[0], 1)
	testInteger(t, arr.Elements[1], 4)
	testInteger(t, arr.Elements[2], 6)
}

func TestEvaluator_ArrayIndex(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"[1, 2, 3][0]", 1},
		{"[1, 2, 3][1 + 1]", 3},
		{"let i = 0; [1][i];", 1},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		testInteger(t, result, tt.want)
	}
}

func TestEvaluator_ArrayIndexOutOfBounds(t *testing.T) {
	result := testEval(t, "[1, 2, 3][3]")
	errObj, ok := result.(*object.Error)
	if !ok || errObj.Kind != object.IndexOutOfBounds {
		t.Fatalf("expected IndexOutOfBounds error, got %+v", result)
	}
}

// TestEvaluator_ArrayIndexAssignAliasing guards the invariant that
// index-assigning through one reference to an array is visible through
// every other reference to the same array.
func TestEvaluator_ArrayIndexAssignAliasing(t *testing.T) {
	result := testEval(t, `
let a = [1, 2, 3];
let b = a;
b[0] = 99;
a[0];
`)
	testInteger(t, result, 99)
}

func TestEvaluator_ArrayBuiltins(t *testing.T) {
	result := testEval(t, `
let a = [1, 2];
push(a, 3);
len(a);
`)
	testInteger(t, result, 3)

	result = testEval(t, `
let a = [1, 2, 3];
pop(a);
`)
	testInteger(t, result, 3)

	result = testEval(t, `
let a = [1, 2, 3];
pop_left(a);
`)
	testInteger(t, result, 1)
}

func TestEvaluator_PopOnEmptyArrayReturnsNull(t *testing.T) {
	result := testEval(t, `pop([])`)
	if _, ok := result.(*object.Null); !ok {
		t.Fatalf("expected Null, got %+v", result)
	}

	result = testEval(t, `pop_left([])`)
	if _, ok := result.(*object.Null); !ok {
		t.Fatalf("expected Null, got %+v", result)
	}
}

func TestEvaluator_LenOnString(t *testing.T) {
	result := testEval(t, `len("hello")`)
	testInteger(t, result, 5)
}

func TestEvaluator_PrintWritesToOutput(t *testing.T) {
	var buf strings.Builder
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	testEval(t, `println("hi")`)
	if buf.String() != "hi\n" {
		t.Errorf("wrong output: %q", buf.String())
	}
}

func TestEvaluator_ReassignUnboundIdentifierIsError(t *testing.T) {
	result := testEval(t, "x = 5;")
	errObj, ok := result.(*object.Error)
	if !ok || errObj.Kind != object.IdentifierNotFound {
		t.Fatalf("expected IdentifierNotFound error, got %+v", result)
	}
}

func TestEvaluator_NestedReturnStopsAtFunctionBoundary(t *testing.T) {
	result := testEval(t, `
let f = fn(x) {
  if (x > 0) {
    return 1;
  }
  return 0;
};
f(5) + f(-5);
`)
	testInteger(t, result, 1)
}
