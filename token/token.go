package token

// Type is alias for supported tokens
type Type string

// Type enums for our language
const (
	Illegal = "ILLEGAL"
	EOF     = "EOF"

	// identifier + literals
	Ident  = "IDENT" // add, foobar, x, y, ...
	Int    = "INT"   // 1343456
	String = "STRING"

	// Operators
	Assign   = "="
	Plus     = "+"
	Minus    = "-"
	Bang     = "!"
	Asterisk = "*"
	Slash    = "/"
	Percent  = "%"

	Lt    = "<"
	Gt    = ">"
	LtEq  = "<="
	GtEq  = ">="
	Eq    = "=="
	NotEq = "!="

	And = "&&"
	Or  = "||"

	// Delimiters
	Comma     = ","
	SemiColon = ";"
	Colon     = ":"

	LParen   = "("
	RParen   = ")"
	LBrace   = "{"
	RBrace   = "}"
	LBracket = "["
	RBracket = "]"

	// Keywords
	Function = "FUNCTION"
	Let      = "LET"
	If       = "IF"
	Else     = "ELSE"
	True     = "TRUE"
	False    = "FALSE"
	Return   = "RETURN"
	Macro    = "MACRO"
)

// Token is the atom returned by the Lexer. Line and Column are 1-based and
// point at the first character of the literal.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]Type{
	"fn":     Function,
	"let":    Let,
	"if":     If,
	"else":   Else,
	"true":   True,
	"false":  False,
	"return": Return,
	"macro":  Macro,
}

// LookupIdent checks whether the indentifier is a keyword.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return Ident
}
