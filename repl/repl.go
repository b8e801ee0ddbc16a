// Package repl runs Monkey programs, either line by line from a reader or a
// terminal, or whole from a file.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oarkflow/log"
	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/jabley/monkeyinterpreter/config"
)

const banner = `This is the Monkey programming language!
Feel free to type in commands. :quit leaves.
`

// REPL reads, evaluates and prints Monkey input.
type REPL struct {
	cfg     *config.Config
	logger  *log.Logger
	session *Session
}

// New returns a REPL configured by cfg. A nil logger discards everything.
func New(cfg *config.Config, logger *log.Logger) *REPL {
	if logger == nil {
		logger = discardLogger()
	}

	return &REPL{
		cfg:     cfg,
		logger:  logger,
		session: NewSession(logger),
	}
}

// Start the loop of the REPL
func Start(in io.Reader, out io.Writer) {
	cfg := config.Default()
	cfg.Color = false
	cfg.ShowBanner = false

	New(cfg, nil).Run(in, out)
}

// Run reads input from in until it is exhausted, printing prompts, results
// and errors to out.
func (r *REPL) Run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	read := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}

		return scanner.Text(), nil
	}

	r.loop(read, out)
}

// RunInteractive drives a terminal with line editing and history. History is
// read from and written back to the configured history file.
func (r *REPL) RunInteractive(out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if r.cfg.HistoryFile != "" {
		if f, err := os.Open(r.cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			f, err := os.Create(r.cfg.HistoryFile)
			if err != nil {
				r.logger.Warn().Err(err).Str("file", r.cfg.HistoryFile).Msg("could not save history")
				return
			}
			defer f.Close()

			if _, err := ln.WriteHistory(f); err != nil {
				r.logger.Warn().Err(err).Str("file", r.cfg.HistoryFile).Msg("could not save history")
			}
		}()
	}

	read := func(prompt string) (string, error) {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", errAborted
		}
		if err == nil && strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		return line, err
	}

	r.loop(read, out)
	return nil
}

var errAborted = errors.New("input aborted")

func (r *REPL) loop(read promptFunc, out io.Writer) {
	st := newStyles(out, r.cfg.Color)

	r.logger.Info().Str("session", r.session.ID).Msg("repl started")
	defer func() {
		r.logger.Info().Str("session", r.session.ID).Msg("repl finished")
	}()

	if r.cfg.ShowBanner {
		io.WriteString(out, st.paint(st.banner, banner))
	}

	for {
		src, err := readInput(read, r.cfg.Prompt, r.cfg.ContinuationPrompt)

		switch {
		case errors.Is(err, errAborted):
			io.WriteString(out, st.paint(st.muted, "^C")+"\n")
			continue
		case err != nil && !errors.Is(err, io.EOF):
			r.logger.Error().Err(err).Str("session", r.session.ID).Msg("reading input failed")
			return
		}

		if cmd := strings.TrimSpace(src); strings.HasPrefix(cmd, ":") {
			if cmd == ":quit" || cmd == ":exit" {
				return
			}
			io.WriteString(out, st.paint(st.muted, "unknown command. Type :quit to exit.")+"\n")
		} else if cmd != "" {
			r.evalAndPrint(src, out, st)
		}

		if err != nil {
			return
		}
	}
}

func (r *REPL) evalAndPrint(src string, out io.Writer, st styles) {
	evaluated, err := r.session.Exec(src)

	var parseErr *ParseError
	switch {
	case errors.As(err, &parseErr):
		printParserErrors(out, st, parseErr.Messages)
	case err != nil:
		io.WriteString(out, st.paint(st.err, err.Error())+"\n")
	case evaluated != nil:
		io.WriteString(out, st.paint(st.result, evaluated.Inspect())+"\n")
	}
}

const monkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

func printParserErrors(out io.Writer, st styles, errors []string) {
	io.WriteString(out, monkeyFace)
	io.WriteString(out, "Woops! We ran into some monkey business here!\n")
	io.WriteString(out, " parser errors:\n")

	for _, msg := range errors {
		io.WriteString(out, st.paint(st.err, fmt.Sprintf("\t%s", msg))+"\n")
	}
}
