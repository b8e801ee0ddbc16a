package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/jabley/monkeyinterpreter/repl"
)

type result struct {
	stdout string
	stderr string
	code   int
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	cfgFile = ""
	verbose = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := Execute()

	return result{
		stdout: stdout.String(),
		stderr: stderr.String(),
		code:   exitCode(err),
		err:    err,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	res := execute(t, "", "version")

	if res.code != 0 {
		t.Fatalf("exit code = %d, err = %v", res.code, res.err)
	}
	if !strings.HasPrefix(res.stdout, "monkey v"+Version+"\n") {
		t.Errorf("unexpected output %q", res.stdout)
	}
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		stdout  string
		stderr  string
		code    int
		wantErr error
	}{
		{
			name:   "success",
			src:    "let add = fn(a, b) { a + b }; puts(add(1, 2));",
			stdout: "3\n",
			code:   0,
		},
		{
			name:    "runtime error",
			src:     `puts("before"); -true; puts("after");`,
			stdout:  "before\n",
			stderr:  "ERROR: unknown operator: -BOOLEAN\n",
			code:    1,
			wantErr: repl.ErrRuntime,
		},
		{
			name:    "parse error",
			src:     "let 1;",
			stderr:  "parser errors:\n\t1:5: expected next token to be IDENT, got INT instead\n",
			code:    1,
			wantErr: repl.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", "run", writeFile(t, "prog.monkey", tt.src))

			if res.code != tt.code {
				t.Errorf("exit code = %d, want %d (err = %v)", res.code, tt.code, res.err)
			}
			if tt.wantErr != nil && !errors.Is(res.err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, res.err)
			}
			if res.stdout != tt.stdout {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.stdout)
			}
			if res.stderr != tt.stderr {
				t.Errorf("stderr = %q, want %q", res.stderr, tt.stderr)
			}
		})
	}
}

func TestRunCommandFailures(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"missing file", func(t *testing.T) []string {
			return []string{"run", filepath.Join(t.TempDir(), "missing.monkey")}
		}},
		{"no file", func(*testing.T) []string { return []string{"run"} }},
		{"bad config", func(t *testing.T) []string {
			return []string{"run", "--config", writeFile(t, "monkey.toml", `log_level = "loud"`), writeFile(t, "p.monkey", "1")}
		}},
		{"unknown command", func(*testing.T) []string { return []string{"frobnicate"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", tt.args(t)...)

			if res.code != 2 {
				t.Errorf("exit code = %d, want 2 (err = %v)", res.code, res.err)
			}
		})
	}
}

func TestReplCommand(t *testing.T) {
	cfg := writeFile(t, "monkey.yaml", "color: false\nshow_banner: false\nprompt: \"$ \"\n")

	for _, args := range [][]string{
		{"repl", "--config", cfg},
		{"--config", cfg},
	} {
		t.Run(strings.Join(args[:1], " "), func(t *testing.T) {
			res := execute(t, "let x = 20;\nputs(x + 1)\nx * 2\n", args...)

			if res.code != 0 {
				t.Fatalf("exit code = %d, err = %v", res.code, res.err)
			}

			expected := "$ $ 21\nnull\n$ 40\n$ "
			if res.stdout != expected {
				t.Errorf("stdout = %q, want %q", res.stdout, expected)
			}
		})
	}
}

func TestVerboseLogsAtDebugLevel(t *testing.T) {
	cfg := writeFile(t, "monkey.toml", "color = false\nshow_banner = false\n")

	res := execute(t, "1\n", "repl", "--verbose", "--config", cfg)
	if res.code != 0 {
		t.Fatalf("exit code = %d, err = %v", res.code, res.err)
	}

	if !strings.Contains(res.stderr, "repl started") {
		t.Errorf("expected debug logging on stderr, got %q", res.stderr)
	}
}

func TestBench(t *testing.T) {
	res := execute(t, "", "bench", "-n", "10")

	if res.code != 0 {
		t.Fatalf("exit code = %d, err = %v", res.code, res.err)
	}
	if !strings.HasPrefix(res.stdout, "engine=eval, result=55, duration=") {
		t.Errorf("unexpected output %q", res.stdout)
	}
}
