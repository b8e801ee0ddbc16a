package evaluator

import (
	"fmt"

	"github.com/jabley/monkeyinterpreter/ast"
	"github.com/jabley/monkeyinterpreter/object"
	"github.com/jabley/monkeyinterpreter/token"
)

func quote(node ast.Node, env *object.Environment) object.Object {
	node = evalUnquoteCalls(node, env)
	return &object.Quote{Node: node}
}

// evalUnquoteCalls replaces every unquote(x) inside node with the AST form of
// x's value. Values with no AST form leave the unquote call in place.
func evalUnquoteCalls(quoted ast.Node, env *object.Environment) ast.Node {
	return ast.Modify(quoted, func(node ast.Node) ast.Node {
		if !isUnquoteCall(node) {
			return node
		}

		call, ok := node.(*ast.CallExpression)
		if !ok {
			return node
		}

		if len(call.Arguments) != 1 {
			return node
		}

		unquoted := Eval(call.Arguments[0], env)
		if converted := convertObjectToASTNode(unquoted); converted != nil {
			return converted
		}
		return node
	})
}

func isUnquoteCall(node ast.Node) bool {
	callExpression, ok := node.(*ast.CallExpression)
	if !ok {
		return false
	}

	return callExpression.Function.TokenLiteral() == "unquote"
}

func convertObjectToASTNode(obj object.Object) ast.Node {
	switch obj := obj.(type) {
	case *object.Integer:
		t := token.Token{
			Type:    token.Int,
			Literal: fmt.Sprintf("%d", obj.Value),
		}
		return &ast.IntegerLiteral{Token: t, Value: obj.Value}

	case *object.Boolean:
		var t token.Token
		if obj.Value {
			t = token.Token{Type: token.True, Literal: "true"}
		} else {
			t = token.Token{Type: token.False, Literal: "false"}
		}
		return &ast.Boolean{Token: t, Value: obj.Value}

	case *object.String:
		t := token.Token{Type: token.String, Literal: obj.Value}
		return &ast.StringLiteral{Token: t, Value: obj.Value}

	case *object.Quote:
		return obj.Node

	default:
		return nil
	}
}
