package cody

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Output captures the outcome of a command invocation.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunner runs an external command, feeding stdin and capturing output.
// A non-nil error is returned when the command cannot start or exits non-zero;
// whatever was captured is still returned with it.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, stdin io.Reader) (Output, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, name string, args []string, stdin io.Reader) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if stdin != nil {
		cmd.Stdin = stdin
	}

	err := cmd.Run()
	out := Output{
		Stdout: stdoutBuf.Bytes(),
		Stderr: stderrBuf.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, fmt.Errorf("%s exited with code %d", name, out.ExitCode)
		}
		out.ExitCode = -1
		return out, fmt.Errorf("run %s: %w", name, err)
	}
	return out, nil
}
