package ast

// ModifierFunc is the type used to replace a Node with a different Node when
// walking the AST.
type ModifierFunc func(Node) Node

// Modify recursively walks the AST and calls the ModifierFunc, returning the
// result. This allows us to replace nodes in the AST. Children are modified
// before their parent.
//
// The input tree is left untouched: every composite node on the way is
// shallow-copied before its children are swapped, so a parsed program can be
// rewritten any number of times.
func Modify(node Node, modifier ModifierFunc) Node {
	switch node := node.(type) {

	case *Program:
		cp := &Program{Statements: make([]Statement, len(node.Statements))}
		for i, statement := range node.Statements {
			cp.Statements[i], _ = Modify(statement, modifier).(Statement)
		}
		return modifier(cp)
	case *ExpressionStatement:
		cp := *node
		cp.Expression, _ = Modify(node.Expression, modifier).(Expression)
		return modifier(&cp)
	case *InfixExpression:
		cp := *node
		cp.Left, _ = Modify(node.Left, modifier).(Expression)
		cp.Right, _ = Modify(node.Right, modifier).(Expression)
		return modifier(&cp)
	case *PrefixExpression:
		cp := *node
		cp.Right, _ = Modify(node.Right, modifier).(Expression)
		return modifier(&cp)
	case *IndexExpression:
		cp := *node
		cp.Left, _ = Modify(node.Left, modifier).(Expression)
		cp.Index, _ = Modify(node.Index, modifier).(Expression)
		return modifier(&cp)
	case *IfExpression:
		cp := *node
		cp.Condition, _ = Modify(node.Condition, modifier).(Expression)
		cp.Consequence, _ = Modify(node.Consequence, modifier).(*BlockStatement)
		if node.Alternative != nil {
			cp.Alternative, _ = Modify(node.Alternative, modifier).(*BlockStatement)
		}
		return modifier(&cp)
	case *BlockStatement:
		cp := *node
		cp.Statements = make([]Statement, len(node.Statements))
		for i, statement := range node.Statements {
			cp.Statements[i], _ = Modify(statement, modifier).(Statement)
		}
		return modifier(&cp)
	case *ReturnStatement:
		cp := *node
		cp.ReturnValue, _ = Modify(node.ReturnValue, modifier).(Expression)
		return modifier(&cp)
	case *LetStatement:
		cp := *node
		cp.Value, _ = Modify(node.Value, modifier).(Expression)
		return modifier(&cp)
	case *FunctionLiteral:
		cp := *node
		cp.Parameters = make([]*Identifier, len(node.Parameters))
		for i, param := range node.Parameters {
			cp.Parameters[i], _ = Modify(param, modifier).(*Identifier)
		}
		cp.Body, _ = Modify(node.Body, modifier).(*BlockStatement)
		return modifier(&cp)
	case *ArrayLiteral:
		cp := *node
		cp.Elements = make([]Expression, len(node.Elements))
		for i, el := range node.Elements {
			cp.Elements[i], _ = Modify(el, modifier).(Expression)
		}
		return modifier(&cp)
	case *HashLiteral:
		cp := *node
		cp.Pairs = make([]HashPair, len(node.Pairs))
		for i, pair := range node.Pairs {
			cp.Pairs[i].Key, _ = Modify(pair.Key, modifier).(Expression)
			cp.Pairs[i].Value, _ = Modify(pair.Value, modifier).(Expression)
		}
		return modifier(&cp)
	case *CallExpression:
		cp := *node
		cp.Function, _ = Modify(node.Function, modifier).(Expression)
		cp.Arguments = make([]Expression, len(node.Arguments))
		for i, arg := range node.Arguments {
			cp.Arguments[i], _ = Modify(arg, modifier).(Expression)
		}
		return modifier(&cp)
	}

	return modifier(node)
}
