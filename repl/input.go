package repl

import (
	"strings"

	"github.com/jabley/monkeyinterpreter/lexer"
	"github.com/jabley/monkeyinterpreter/token"
)

// promptFunc shows prompt and returns the next line of input.
type promptFunc func(prompt string) (string, error)

// readInput reads lines until the brackets they contain are balanced, then
// returns them joined by newlines.
func readInput(read promptFunc, prompt, continuation string) (string, error) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = continuation
		}

		line, err := read(p)
		if err != nil {
			return b.String(), err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !incomplete(b.String()) {
			return b.String(), nil
		}
	}
}

// incomplete reports whether src has more opening than closing brackets.
// Input with too many closing brackets is complete; the parser reports it.
func incomplete(src string) bool {
	l := lexer.New(src)
	depth := 0

	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		switch tok.Type {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBrace, token.RBracket:
			depth--
		}
	}

	return depth > 0
}
