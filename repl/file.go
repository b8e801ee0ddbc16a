package repl

import (
	"io"
	"os"
	"time"

	"github.com/oarkflow/log"
	"github.com/pkg/errors"
)

// RunFile evaluates the program at path in a fresh session. Results are not
// printed; only what the program writes with puts reaches stdout. Parse and
// runtime errors are described on stderr and returned, matching ErrParse and
// ErrRuntime respectively.
func RunFile(path string, stderr io.Writer, logger *log.Logger) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	return RunSource(path, string(src), stderr, logger)
}

// RunSource is RunFile for a program already in memory. name only labels
// log lines.
func RunSource(name, src string, stderr io.Writer, logger *log.Logger) error {
	session := NewSession(logger)
	start := time.Now()

	if _, err := session.Exec(src); err != nil {
		io.WriteString(stderr, describe(err))
		session.logger.Info().Str("session", session.ID).Str("file", name).Err(err).Msg("program failed")
		return errors.Wrapf(err, "running %s", name)
	}

	session.logger.Info().Str("session", session.ID).Str("file", name).Dur("duration", time.Since(start)).Msg("program finished")
	return nil
}
