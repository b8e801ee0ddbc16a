package repl

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oarkflow/log"
	"github.com/pkg/errors"

	"github.com/jabley/monkeyinterpreter/ast"
	"github.com/jabley/monkeyinterpreter/evaluator"
	"github.com/jabley/monkeyinterpreter/lexer"
	"github.com/jabley/monkeyinterpreter/object"
	"github.com/jabley/monkeyinterpreter/parser"
)

var (
	// ErrParse is matched by errors.Is for input that did not parse.
	ErrParse = errors.New("parse error")
	// ErrRuntime is matched by errors.Is for input that evaluated to an error.
	ErrRuntime = errors.New("runtime error")
)

// ParseError carries every message the parser produced for one input.
type ParseError struct {
	Messages []string
}

func (e *ParseError) Error() string {
	return "parser errors: " + strings.Join(e.Messages, "; ")
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// RuntimeError wraps the error value a program evaluated to.
type RuntimeError struct {
	Value *object.Error
}

func (e *RuntimeError) Error() string {
	return e.Value.Inspect()
}

// Is reports whether target is ErrRuntime.
func (e *RuntimeError) Is(target error) bool {
	return target == ErrRuntime
}

// Session evaluates successive inputs against one environment, so bindings
// and macros made by earlier inputs stay visible to later ones.
type Session struct {
	ID string

	env      *object.Environment
	macroEnv *object.Environment
	logger   *log.Logger
}

// NewSession returns a Session with empty environments. A nil logger
// discards everything.
func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = discardLogger()
	}

	return &Session{
		ID:       uuid.New().String(),
		env:      object.NewEnvironment(),
		macroEnv: object.NewEnvironment(),
		logger:   logger,
	}
}

// Exec parses src, expands its macros and evaluates it. The returned object
// is nil when the last statement produced no value. Parse failures come back
// as *ParseError and error values as *RuntimeError.
func (s *Session) Exec(src string) (object.Object, error) {
	start := time.Now()

	p := parser.New(lexer.New(src))
	program := p.ParseProgram()

	if msgs := p.Errors(); len(msgs) != 0 {
		s.logger.Debug().Str("session", s.ID).Int("errors", len(msgs)).Msg("parse failed")
		return nil, &ParseError{Messages: msgs}
	}

	expanded, err := s.expand(program)
	if err != nil {
		return nil, err
	}

	evaluated := evaluator.Eval(expanded, s.env)

	if errObj, ok := evaluated.(*object.Error); ok {
		s.logger.Debug().Str("session", s.ID).Str("error", errObj.Message).Msg("evaluation failed")
		return nil, &RuntimeError{Value: errObj}
	}

	s.logger.Debug().Str("session", s.ID).Dur("duration", time.Since(start)).Msg("evaluated")
	return evaluated, nil
}

// expand registers the macro definitions of program and returns the
// program with every macro call replaced. A macro that does not return a
// quote is reported as a runtime error.
func (s *Session) expand(program *ast.Program) (expanded ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			errObj := object.NewError("macro expansion failed: %v", r)
			s.logger.Warn().Str("session", s.ID).Str("error", errObj.Message).Msg("macro expansion failed")
			err = &RuntimeError{Value: errObj}
		}
	}()

	evaluator.DefineMacros(program, s.macroEnv)
	return evaluator.ExpandMacros(program, s.macroEnv), nil
}

func discardLogger() *log.Logger {
	return &log.Logger{
		Level:  log.PanicLevel,
		Writer: &log.ConsoleWriter{Writer: io.Discard},
	}
}

// describe renders err the way the REPL shows it, without colour.
func describe(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		var out strings.Builder
		out.WriteString("parser errors:\n")
		for _, msg := range parseErr.Messages {
			fmt.Fprintf(&out, "\t%s\n", msg)
		}
		return out.String()
	}

	return err.Error() + "\n"
}
