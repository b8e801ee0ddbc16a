package object

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/jabley/monkeyinterpreter/ast"
)

// Type is the enum for different types of object in our object system.
type Type string

// The different types of object supported.
const (
	IntegerObj     = "INTEGER"
	BooleanObj     = "BOOLEAN"
	StringObj      = "STRING"
	NullObj        = "NULL"
	ReturnValueObj = "RETURN_VALUE"
	ErrorObj       = "ERROR"
	FunctionObj    = "FUNCTION"
	BuiltInObj     = "BUILTIN"
	ArrayObj       = "ARRAY"
	HashObj        = "HASH"
	QuoteObj       = "QUOTE"
	MacroObj       = "MACRO"
)

// Singletons. The runtime never allocates another Boolean or Null, so
// comparing against these by identity is the same as comparing by value.
var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)

// Object is the common interface for our object system.
type Object interface {
	Type() Type
	Inspect() string
}

// HashKey identifies a Hashable value inside a Hash. Two values that are
// equal produce the same HashKey.
type HashKey struct {
	Type  Type
	Value uint64
}

// Hashable is implemented by the objects that can be used as Hash keys.
type Hashable interface {
	Object
	HashKey() HashKey
}

// NativeBool returns the Boolean singleton for b.
func NativeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// Integer is the integer type in Monkey.
type Integer struct {
	Value int64
}

// Inspect implementation of the Object interface
func (i *Integer) Inspect() string {
	return fmt.Sprintf("%d", i.Value)
}

// Type implementation of the Object interface
func (i *Integer) Type() Type {
	return IntegerObj
}

// HashKey implementation of the Hashable interface
func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(i.Value)}
}

// Boolean is the boolean type in Monkey. Use TRUE and FALSE rather than
// allocating new values.
type Boolean struct {
	Value bool
}

// Inspect implementation of the Object interface
func (b *Boolean) Inspect() string {
	return fmt.Sprintf("%t", b.Value)
}

// Type implementation of the Object interface
func (b *Boolean) Type() Type {
	return BooleanObj
}

// HashKey implementation of the Hashable interface
func (b *Boolean) HashKey() HashKey {
	var value uint64
	if b.Value {
		value = 1
	}
	return HashKey{Type: b.Type(), Value: value}
}

// String is the string type in Monkey.
type String struct {
	Value string
}

// Inspect implementation of the Object interface
func (s *String) Inspect() string {
	return s.Value
}

// Type implementation of the Object interface
func (s *String) Type() Type {
	return StringObj
}

// HashKey implementation of the Hashable interface. The value is a 64-bit
// xxhash digest of the string's bytes.
func (s *String) HashKey() HashKey {
	return HashKey{Type: s.Type(), Value: xxhash.Sum64String(s.Value)}
}

// Null is the absence of a value. Use NULL rather than allocating new values.
type Null struct{}

// Inspect implementation of the Object interface
func (n *Null) Inspect() string {
	return "null"
}

// Type implementation of the Object interface
func (n *Null) Type() Type {
	return NullObj
}

// ReturnValue wraps the value of a `return` statement while it unwinds
// through enclosing blocks. It is unwrapped at the function call boundary and
// never escapes a program.
type ReturnValue struct {
	Value Object
}

// Inspect implementation of the Object interface
func (rv *ReturnValue) Inspect() string {
	return rv.Value.Inspect()
}

// Type implementation of the Object interface
func (rv *ReturnValue) Type() Type {
	return ReturnValueObj
}

// Error is a runtime error. It travels through the evaluator like any other
// value and stops evaluation of every enclosing expression.
type Error struct {
	Message string
}

// Inspect implementation of the Object interface
func (e *Error) Inspect() string {
	return "ERROR: " + e.Message
}

// Type implementation of the Object interface
func (e *Error) Type() Type {
	return ErrorObj
}

// NewError builds an Error from a format string.
func NewError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// Function is a user defined function together with the environment it was
// defined in.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

// Inspect implementation of the Object interface
func (f *Function) Inspect() string {
	return "fn(" + joinParameters(f.Parameters) + ") {\n" + f.Body.String() + "\n}"
}

// Type implementation of the Object interface
func (f *Function) Type() Type {
	return FunctionObj
}

// BuiltInFunction is the native signature of a BuiltIn.
type BuiltInFunction func(args ...Object) Object

// BuiltIn is a function provided by the host rather than written in Monkey.
type BuiltIn struct {
	Fn BuiltInFunction
}

// Inspect implementation of the Object interface
func (b *BuiltIn) Inspect() string {
	return "builtin function"
}

// Type implementation of the Object interface
func (b *BuiltIn) Type() Type {
	return BuiltInObj
}

// Array is an ordered list of objects.
type Array struct {
	Elements []Object
}

// Inspect implementation of the Object interface
func (a *Array) Inspect() string {
	elements := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elements = append(elements, e.Inspect())
	}

	return "[" + strings.Join(elements, ", ") + "]"
}

// Type implementation of the Object interface
func (a *Array) Type() Type {
	return ArrayObj
}

// HashPair keeps the original key next to its value, since a HashKey cannot
// be turned back into the object it came from.
type HashPair struct {
	Key   Object
	Value Object
}

// Hash is a map from Hashable objects to objects. Keys remembers insertion
// order so that Inspect is deterministic.
type Hash struct {
	Pairs map[HashKey]HashPair
	Keys  []HashKey
}

// NewHash returns an empty Hash.
func NewHash() *Hash {
	return &Hash{Pairs: make(map[HashKey]HashPair)}
}

// Set stores value under key, keeping the position of an existing key.
func (h *Hash) Set(key Hashable, value Object) {
	hashKey := key.HashKey()
	if _, ok := h.Pairs[hashKey]; !ok {
		h.Keys = append(h.Keys, hashKey)
	}
	h.Pairs[hashKey] = HashPair{Key: key, Value: value}
}

// Get returns the value stored under key.
func (h *Hash) Get(key Hashable) (Object, bool) {
	pair, ok := h.Pairs[key.HashKey()]
	if !ok {
		return nil, false
	}
	return pair.Value, true
}

// Inspect implementation of the Object interface
func (h *Hash) Inspect() string {
	pairs := make([]string, 0, len(h.Keys))
	for _, k := range h.Keys {
		pair := h.Pairs[k]
		pairs = append(pairs, pair.Key.Inspect()+": "+pair.Value.Inspect())
	}

	return "{" + strings.Join(pairs, ", ") + "}"
}

// Type implementation of the Object interface
func (h *Hash) Type() Type {
	return HashObj
}

// Quote is an unevaluated piece of AST, produced by `quote(...)`.
type Quote struct {
	Node ast.Node
}

// Inspect implementation of the Object interface
func (q *Quote) Inspect() string {
	return "QUOTE(" + q.Node.String() + ")"
}

// Type implementation of the Object interface
func (q *Quote) Type() Type {
	return QuoteObj
}

// Macro is like a Function, but is applied to unevaluated arguments during
// macro expansion.
type Macro struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

// Inspect implementation of the Object interface
func (m *Macro) Inspect() string {
	return "macro(" + joinParameters(m.Parameters) + ") {\n" + m.Body.String() + "\n}"
}

// Type implementation of the Object interface
func (m *Macro) Type() Type {
	return MacroObj
}

func joinParameters(params []*ast.Identifier) string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
