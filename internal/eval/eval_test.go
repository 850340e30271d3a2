package eval

import (
	"bytes"
	"testing"

	"github.com/tua-lang/tua/internal/lexer"
	"github.com/tua-lang/tua/internal/parser"
)

// run parses and evaluates src against a fresh Evaluator, returning
// whatever was written to stdout and the final error, if any.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	var out bytes.Buffer
	ev := New(&out)
	_, err := ev.Eval(program)
	return out.String(), err
}

func TestArithmeticIntStaysInt(t *testing.T) {
	out, err := run(t, `print(1 + 2 * 3)`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "7\n" {
		t.Errorf("got %q, want 7", out)
	}
}

func TestDivisionAlwaysFloat(t *testing.T) {
	out, err := run(t, `print(7 / 2)`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "3.5\n" {
		t.Errorf("got %q, want 3.5", out)
	}
}

func TestFloorDivide(t *testing.T) {
	out, err := run(t, `print(7 // 2)`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "3\n" {
		t.Errorf("got %q, want 3", out)
	}
}

func TestDivisionByZeroIsSemanticError(t *testing.T) {
	_, err := run(t, `print(1 / 0)`)
	if err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestConcatOperator(t *testing.T) {
	out, err := run(t, `print("a" .. "b" .. "c")`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "abc\n" {
		t.Errorf("got %q, want abc", out)
	}
}

func TestLetRequiresExactTypeMatch(t *testing.T) {
	_, err := run(t, `let x: float = 5`)
	if err == nil {
		t.Fatal("expected assigning an int literal to a float-declared let to fail — no int->float widening")
	}
}

func TestLetAcceptsExactTypeMatch(t *testing.T) {
	out, err := run(t, `
let x: float = 5.0
print(x)
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "5\n" {
		t.Errorf("got %q, want 5", out)
	}
}

func TestLetRedeclarationInSameFrameIsError(t *testing.T) {
	_, err := run(t, `
let x: int = 1
let x: int = 2
`)
	if err == nil {
		t.Fatal("expected redeclaring x at the top level to be an error")
	}
}

func TestIfElseIfElseChain(t *testing.T) {
	out, err := run(t, `
let x: int = 0
if x < 0 then
  print("neg")
elseif x == 0 then
  print("zero")
else
  print("pos")
end
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "zero\n" {
		t.Errorf("got %q, want zero", out)
	}
}

func TestBreakIsANoOp(t *testing.T) {
	out, err := run(t, `
let i: int = 0
while i < 5 do
  i = i + 1
  if i == 3 then
    break
  end
end
print(i)
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "5\n" {
		t.Errorf("got %q, want 5 — break does not terminate the loop, it is a defined no-op", out)
	}
}

func TestForNumericDescending(t *testing.T) {
	out, err := run(t, `
for i = 3, i >= 1, -1 do
  print(i)
end
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "3\n2\n1\n" {
		t.Errorf("got %q", out)
	}
}

func TestForNumericConditionMustBeBool(t *testing.T) {
	_, err := run(t, `
for i = 1, 10, 1 do
  print(i)
end
`)
	if err == nil {
		t.Fatal("expected the middle clause to be type-checked as a bool condition, not a numeric bound")
	}
}

func TestForInIpairs(t *testing.T) {
	out, err := run(t, `
let xs: List[string] = {"a", "b", "c"}
for k, v in ipairs(xs) do
  print(k, v)
end
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "0 a\n1 b\n2 c\n" {
		t.Errorf("got %q", out)
	}
}

func TestCallingIteratorBuiltinDirectlyIsError(t *testing.T) {
	_, err := run(t, `
let xs: List[int] = {1, 2}
let it: int = ipairs(xs)
`)
	if err == nil {
		t.Fatal("expected ipairs() used outside a for-in to be rejected")
	}
}

func TestFunctionDeclAndCall(t *testing.T) {
	out, err := run(t, `
function add(a: int, b: int): int do
  return a + b
end
print(add(2, 3))
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "5\n" {
		t.Errorf("got %q, want 5", out)
	}
}

func TestFunctionArgumentsPassByCopy(t *testing.T) {
	out, err := run(t, `
function zeroFirst(xs: List[int]): List[int] do
  xs[0] = 0
  return xs
end

let original: List[int] = {1, 2, 3}
let changed: List[int] = zeroFirst(original)
print(original[0])
print(changed[0])
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "1\n0\n" {
		t.Errorf("got %q, want original untouched and the copy mutated", out)
	}
}

func TestFunctionsSeeOtherFunctionsViaInjection(t *testing.T) {
	out, err := run(t, `
function double(n: int): int do
  return n * 2
end

function quadruple(n: int): int do
  return double(double(n))
end

print(quadruple(3))
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "12\n" {
		t.Errorf("got %q, want 12", out)
	}
}

func TestBreakAtTopLevelIsANoOp(t *testing.T) {
	_, err := run(t, `break`)
	if err != nil {
		t.Fatalf("break is an unconditional no-op, never an error: %v", err)
	}
}

func TestFunctionWithoutReturnYieldsNilRegardlessOfDeclaredType(t *testing.T) {
	out, err := run(t, `
function f(): int do
end
print(f())
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "nil\n" {
		t.Errorf("got %q, want nil — the return value's type is not checked against the declared return type", out)
	}
}

func TestTopLevelBindingsPersistAcrossBlocks(t *testing.T) {
	out, err := run(t, `
let total: int = 0
for i = 1, i <= 3 do
  total = total + i
end
print(total)
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "6\n" {
		t.Errorf("got %q, want 6", out)
	}
}

func TestEmptyListAdoptsDeclaredElementType(t *testing.T) {
	out, err := run(t, `
let xs: List[int] = {}
print(len(xs))
`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "0\n" {
		t.Errorf("got %q, want 0", out)
	}
}

func TestIndexOutOfBoundsIsError(t *testing.T) {
	_, err := run(t, `
let xs: List[int] = {1, 2}
print(xs[5])
`)
	if err == nil {
		t.Fatal("expected an out-of-bounds index error")
	}
}
