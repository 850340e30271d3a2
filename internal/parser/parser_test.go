package parser

import (
	"testing"

	"github.com/tua-lang/tua/internal/ast"
	"github.com/tua-lang/tua/internal/lexer"
)

func testParser(input string) *Parser {
	return New(lexer.New(input))
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser had %d error(s)", len(errs))
	for _, e := range errs {
		t.Errorf("parser error: %s", e)
	}
	t.FailNow()
}

func TestLetStatement(t *testing.T) {
	p := testParser(`let x: int = 5`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.LetStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.LetStatement", program.Statements[0])
	}
	if stmt.Name.Value != "x" {
		t.Errorf("name = %q, want x", stmt.Name.Value)
	}
	if stmt.Type.ID != "int" {
		t.Errorf("type = %q, want int", stmt.Type.ID)
	}
	lit, ok := stmt.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 5 {
		t.Errorf("value = %#v, want IntegerLiteral(5)", stmt.Value)
	}
}

func TestLetStatementListType(t *testing.T) {
	p := testParser(`let xs: List[int] = {1, 2, 3}`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.LetStatement)
	if stmt.Type.ID != "List[int]" {
		t.Errorf("type = %q, want List[int]", stmt.Type.ID)
	}
	table, ok := stmt.Value.(*ast.TableConstructor)
	if !ok || len(table.Elements) != 3 {
		t.Errorf("value = %#v, want a 3-element TableConstructor", stmt.Value)
	}
}

func TestAssignStatement(t *testing.T) {
	p := testParser(`x = 10`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.AssignStatement", program.Statements[0])
	}
	if stmt.Name.Value != "x" || stmt.Index != nil {
		t.Errorf("unexpected assignment shape: %+v", stmt)
	}
}

func TestIndexAssignStatement(t *testing.T) {
	p := testParser(`xs[0] = 9`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.AssignStatement)
	if !ok || stmt.Index == nil {
		t.Fatalf("expected an index assignment, got %+v", program.Statements[0])
	}
}

func TestExpressionStatementCall(t *testing.T) {
	p := testParser(`print(1, "two")`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", program.Statements[0])
	}
	call, ok := stmt.Expression.(*ast.CallExpression)
	if !ok || call.Name != "print" || len(call.Arguments) != 2 {
		t.Errorf("unexpected call shape: %+v", stmt.Expression)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"1 < 2 and 3 < 4", "((1 < 2) and (3 < 4))"},
		{"2 ^ 2 ^ 3", "(2 ^ (2 ^ 3))"},
		{"\"a\" .. \"b\" .. \"c\"", "(\"a\" .. (\"b\" .. \"c\"))"},
		{"-1 + 2", "((-1) + 2)"},
		{"not true and false", "((not true) and false)"},
		{"xs[0] + 1", "(xs[0] + 1)"},
	}
	for _, tt := range tests {
		p := testParser(tt.input)
		program := p.ParseProgram()
		checkParserErrors(t, p)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		if got := stmt.Expression.String(); got != tt.want {
			t.Errorf("input %q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIfElseIfElse(t *testing.T) {
	input := `
if x < 0 then
  print("neg")
elseif x == 0 then
  print("zero")
else
  print("pos")
end
`
	p := testParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.IfStatement", program.Statements[0])
	}
	if len(stmt.Conditions) != 2 || len(stmt.Blocks) != 2 {
		t.Fatalf("expected 2 conditions/blocks (if + elseif), got %d/%d", len(stmt.Conditions), len(stmt.Blocks))
	}
	if stmt.Else == nil {
		t.Fatal("expected an else block")
	}
}

func TestWhileStatement(t *testing.T) {
	p := testParser(`
while x < 10 do
  x = x + 1
end
`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	if !ok || len(stmt.Body.Statements) != 1 {
		t.Fatalf("unexpected while shape: %+v", program.Statements[0])
	}
}

func TestForNumericStatement(t *testing.T) {
	p := testParser(`
for i = 1, 10, 2 do
  print(i)
end
`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.ForNumericStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ForNumericStatement", program.Statements[0])
	}
	if stmt.Name.Value != "i" || stmt.Step == nil {
		t.Errorf("unexpected numeric for shape: %+v", stmt)
	}
}

func TestForInStatement(t *testing.T) {
	p := testParser(`
for k, v in ipairs(xs) do
  print(k, v)
end
`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ForInStatement", program.Statements[0])
	}
	if stmt.KeyName.Value != "k" || stmt.ValName.Value != "v" || stmt.Iterator.Name != "ipairs" {
		t.Errorf("unexpected generic for shape: %+v", stmt)
	}
}

func TestFunctionDeclStatement(t *testing.T) {
	p := testParser(`
function add(a: int, b: int): int do
  return a + b
end
`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.FunctionDeclStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.FunctionDeclStatement", program.Statements[0])
	}
	if stmt.Name.Value != "add" || len(stmt.Params) != 2 || stmt.ReturnType.ID != "int" {
		t.Errorf("unexpected function shape: %+v", stmt)
	}
	ret, ok := stmt.Body.Statements[0].(*ast.ReturnStatement)
	if !ok || ret.Value == nil {
		t.Errorf("expected a return statement with a value, got %+v", stmt.Body.Statements[0])
	}
}

func TestBareReturnBreakContinue(t *testing.T) {
	p := testParser(`
function f(): nil do
  return
end
`)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	fn := program.Statements[0].(*ast.FunctionDeclStatement)
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	if ret.Value != nil {
		t.Errorf("expected a bare return, got value %+v", ret.Value)
	}

	p2 := testParser(`
while true do
  break
  continue
end
`)
	program2 := p2.ParseProgram()
	checkParserErrors(t, p2)
	ws := program2.Statements[0].(*ast.WhileStatement)
	if _, ok := ws.Body.Statements[0].(*ast.BreakStatement); !ok {
		t.Errorf("expected a break statement, got %+v", ws.Body.Statements[0])
	}
	if _, ok := ws.Body.Statements[1].(*ast.ContinueStatement); !ok {
		t.Errorf("expected a continue statement, got %+v", ws.Body.Statements[1])
	}
}
