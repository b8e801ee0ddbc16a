package evaluator

import (
	"bytes"
	"testing"

	"github.com/jabley/monkeyinterpreter/ast"
	"github.com/jabley/monkeyinterpreter/lexer"
	"github.com/jabley/monkeyinterpreter/object"
	"github.com/jabley/monkeyinterpreter/parser"
)

func TestDefineMacros(t *testing.T) {
	input := `
let number = 1;
let function = fn(x, y) { x + y };
let mymacro = macro(x, y) { x + y; };
`

	env := object.NewEnvironment()
	program := testParseProgram(t, input)

	DefineMacros(program, env)

	if len(program.Statements) != 2 {
		t.Fatalf("Wrong number of statements. got=%d", len(program.Statements))
	}

	if _, ok := env.Get("number"); ok {
		t.Fatalf("number should not be defined")
	}
	if _, ok := env.Get("function"); ok {
		t.Fatalf("function should not be defined")
	}

	obj, ok := env.Get("mymacro")
	if !ok {
		t.Fatalf("macro not in environment.")
	}

	macro, ok := obj.(*object.Macro)
	if !ok {
		t.Fatalf("object is not Macro. got=%T (%+v)", obj, obj)
	}

	if len(macro.Parameters) != 2 {
		t.Fatalf("Wrong number of macro parameters. got=%d", len(macro.Parameters))
	}

	if macro.Parameters[0].String() != "x" {
		t.Fatalf("parameter is not 'x'. got=%q", macro.Parameters[0])
	}
	if macro.Parameters[1].String() != "y" {
		t.Fatalf("parameter is not 'y'. got=%q", macro.Parameters[1])
	}

	expectedBody := "(x + y)"

	if macro.Body.String() != expectedBody {
		t.Fatalf("body is not %q. got=%q", expectedBody, macro.Body.String())
	}
}

func TestExpandMacros(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			`
let infixExpression = macro() { quote(1 + 2); };

infixExpression();
`,
			`(1 + 2)`,
		},
		{
			`
let reverse = macro(a, b) { quote(unquote(b) - unquote(a)); };

reverse(2 + 2, 10 - 5);
`,
			`(10 - 5) - (2 + 2)`,
		},
		{
			`
let unless = macro(condition, consequence, alternative) {
	quote(if (!(unquote(condition))) {
		unquote(consequence);
	} else {
		unquote(alternative);
	});
};

unless(10 > 5, puts("not greater"), puts("greater"));
`,
			`if (!(10 > 5)) { puts("not greater") } else { puts("greater") }`,
		},
		{
			`
let early = macro(x) { return quote(unquote(x) * 2); };

early(3);
`,
			`3 * 2`,
		},
		{
			`
let twice = macro(x) { quote(unquote(x) + unquote(x)); };

let f = fn() { twice(1) };
`,
			`let f = fn() { 1 + 1 };`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			expected := testParseProgram(t, tt.expected)
			program := testParseProgram(t, tt.input)

			env := object.NewEnvironment()
			DefineMacros(program, env)
			expanded := ExpandMacros(program, env)

			if expanded.String() != expected.String() {
				t.Errorf("not equal. want=%q, got=%q", expected.String(), expanded.String())
			}
		})
	}
}

func TestExpandMacrosLeavesInputUntouched(t *testing.T) {
	program := testParseProgram(t, `
let reverse = macro(a, b) { quote(unquote(b) - unquote(a)); };
reverse(1, 2);
`)

	env := object.NewEnvironment()
	DefineMacros(program, env)

	before := program.String()
	ExpandMacros(program, env)

	if program.String() != before {
		t.Errorf("program was modified. before=%q, after=%q", before, program.String())
	}
}

func TestExpandedMacroEvaluates(t *testing.T) {
	var buf bytes.Buffer
	prev := object.SetOutput(&buf)
	defer object.SetOutput(prev)

	program := testParseProgram(t, `
let unless = macro(condition, consequence, alternative) {
	quote(if (!(unquote(condition))) {
		unquote(consequence);
	} else {
		unquote(alternative);
	});
};

unless(10 > 5, puts("not greater"), puts("greater"));
`)

	macroEnv := object.NewEnvironment()
	DefineMacros(program, macroEnv)
	expanded := ExpandMacros(program, macroEnv)

	evaluated := Eval(expanded, object.NewEnvironment())
	testNullObject(t, evaluated)

	if buf.String() != "greater\n" {
		t.Errorf("wrong branch evaluated. output=%q", buf.String())
	}
}

func TestExpandMacrosPanicsWithoutQuote(t *testing.T) {
	program := testParseProgram(t, `
let bad = macro(x) { 1 };
bad(2);
`)

	env := object.NewEnvironment()
	DefineMacros(program, env)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected ExpandMacros to panic")
		}
	}()

	ExpandMacros(program, env)
}

func testParseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parser has %d errors: %v", len(p.Errors()), p.Errors())
	}
	return program
}
