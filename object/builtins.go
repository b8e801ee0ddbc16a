package object

import (
	"fmt"
	"io"
	"os"
)

var output io.Writer = os.Stdout

// SetOutput redirects the output of `puts` and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// BuiltIns is the set of builtin functions usable by the evaluator
var BuiltIns = []struct {
	Name    string
	BuiltIn *BuiltIn
}{
	{
		"len",
		&BuiltIn{
			Fn: func(args ...Object) Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. got=%d, want=1", len(args))
				}

				switch arg := args[0].(type) {
				case *Array:
					return &Integer{Value: int64(len(arg.Elements))}
				case *String:
					return &Integer{Value: int64(len(arg.Value))}
				case *Hash:
					return &Integer{Value: int64(len(arg.Pairs))}
				default:
					return newError("argument to `len` not supported, got %s", args[0].Type())
				}
			},
		},
	},
	{
		"puts",
		&BuiltIn{
			Fn: func(args ...Object) Object {
				for _, arg := range args {
					fmt.Fprintln(output, arg.Inspect())
				}

				return NULL
			},
		},
	},
	{
		"first",
		&BuiltIn{
			Fn: func(args ...Object) Object {
				arr, err := arrayArgument("first", args)
				if err != nil {
					return err
				}

				if len(arr.Elements) > 0 {
					return arr.Elements[0]
				}

				return NULL
			},
		},
	},
	{
		"last",
		&BuiltIn{
			Fn: func(args ...Object) Object {
				arr, err := arrayArgument("last", args)
				if err != nil {
					return err
				}

				length := len(arr.Elements)
				if length > 0 {
					return arr.Elements[length-1]
				}

				return NULL
			},
		},
	},
	{
		"rest",
		&BuiltIn{
			Fn: func(args ...Object) Object {
				arr, err := arrayArgument("rest", args)
				if err != nil {
					return err
				}

				length := len(arr.Elements)
				if length > 0 {
					newElements := make([]Object, length-1)
					copy(newElements, arr.Elements[1:length])
					return &Array{Elements: newElements}
				}

				return NULL
			},
		},
	},
	{
		"push",
		&BuiltIn{
			Fn: func(args ...Object) Object {
				if len(args) != 2 {
					return newError("wrong number of arguments. got=%d, want=2", len(args))
				}

				arr, ok := args[0].(*Array)
				if !ok {
					return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
				}

				length := len(arr.Elements)

				newElements := make([]Object, length+1)
				copy(newElements, arr.Elements)
				newElements[length] = args[1]

				return &Array{Elements: newElements}
			},
		},
	},
}

// GetBuiltInByName returns the named BuiltIn, or nil if there is no such BuiltIn
func GetBuiltInByName(name string) *BuiltIn {
	for _, def := range BuiltIns {
		if def.Name == name {
			return def.BuiltIn
		}
	}
	return nil
}

// arrayArgument checks that args is a single Array.
func arrayArgument(name string, args []Object) (*Array, *Error) {
	if len(args) != 1 {
		return nil, newError("wrong number of arguments. got=%d, want=1", len(args))
	}

	arr, ok := args[0].(*Array)
	if !ok {
		return nil, newError("argument to `%s` must be ARRAY, got %s", name, args[0].Type())
	}

	return arr, nil
}

func newError(format string, a ...interface{}) *Error {
	return NewError(format, a...)
}
