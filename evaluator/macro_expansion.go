package evaluator

import (
	"github.com/jabley/monkeyinterpreter/ast"
	"github.com/jabley/monkeyinterpreter/object"
)

// DefineMacros binds every top-level `let name = macro(...) {...};` in
// program into env and removes those statements from the program.
func DefineMacros(program *ast.Program, env *object.Environment) {
	kept := make([]ast.Statement, 0, len(program.Statements))

	for _, statement := range program.Statements {
		if isMacroDefinition(statement) {
			addMacro(statement, env)
			continue
		}
		kept = append(kept, statement)
	}

	program.Statements = kept
}

func isMacroDefinition(node ast.Statement) bool {
	letStatement, ok := node.(*ast.LetStatement)
	if !ok {
		return false
	}

	_, ok = letStatement.Value.(*ast.MacroLiteral)
	return ok
}

func addMacro(stmt ast.Statement, env *object.Environment) {
	letStatement, _ := stmt.(*ast.LetStatement)
	macroLiteral, _ := letStatement.Value.(*ast.MacroLiteral)

	macro := &object.Macro{
		Parameters: macroLiteral.Parameters,
		Env:        env,
		Body:       macroLiteral.Body,
	}

	env.Set(letStatement.Name.Value, macro)
}

// ExpandMacros returns a copy of program in which every call of a macro
// bound in env is replaced by the AST the macro returns. The macro is applied
// to its arguments unevaluated, each wrapped in a Quote.
//
// A macro whose body does not return a quote is a bug in the macro itself;
// ExpandMacros panics in that case.
func ExpandMacros(program ast.Node, env *object.Environment) ast.Node {
	return ast.Modify(program, func(node ast.Node) ast.Node {
		callExpression, ok := node.(*ast.CallExpression)
		if !ok {
			return node
		}

		macro, ok := isMacroCall(callExpression, env)
		if !ok {
			return node
		}

		args := quoteArgs(callExpression)
		evalEnv := extendMacroEnv(macro, args)

		evaluated := Eval(macro.Body, evalEnv)

		quote, ok := unwrapReturnValue(evaluated).(*object.Quote)
		if !ok {
			panic("we only support returning AST-nodes from macros")
		}

		return quote.Node
	})
}

func isMacroCall(exp *ast.CallExpression, env *object.Environment) (*object.Macro, bool) {
	identifier, ok := exp.Function.(*ast.Identifier)
	if !ok {
		return nil, false
	}

	obj, ok := env.Get(identifier.Value)
	if !ok {
		return nil, false
	}

	macro, ok := obj.(*object.Macro)
	if !ok {
		return nil, false
	}

	return macro, true
}

func quoteArgs(exp *ast.CallExpression) []*object.Quote {
	args := make([]*object.Quote, 0, len(exp.Arguments))

	for _, a := range exp.Arguments {
		args = append(args, &object.Quote{Node: a})
	}

	return args
}

func extendMacroEnv(macro *object.Macro, args []*object.Quote) *object.Environment {
	extended := object.NewEnclosedEnvironment(macro.Env)

	for paramIdx, param := range macro.Parameters {
		if paramIdx < len(args) {
			extended.Set(param.Value, args[paramIdx])
		}
	}

	return extended
}
