// Package cody drives the Sourcegraph Cody CLI in chat mode.
package cody

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultCommand is the Cody executable looked up on PATH.
	DefaultCommand = "cody"
	// DefaultEndpoint is used when no Sourcegraph endpoint is configured.
	DefaultEndpoint = "https://sourcegraph.com"
	// DefaultModel is the chat model passed with --model.
	DefaultModel = "claude-3-5-sonnet-latest"
	// NoOutput is returned when Cody writes nothing to stdout.
	NoOutput = "No output generated"
)

// Config describes how to invoke Cody.
type Config struct {
	Command     string
	AccessToken string
	Endpoint    string
	Model       string
	ExtraArgs   []string
}

func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.Command) == "" {
		c.Command = DefaultCommand
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		c.Endpoint = DefaultEndpoint
	}
	if strings.TrimSpace(c.Model) == "" {
		c.Model = DefaultModel
	}
	return c
}

// Args builds the argument list for a chat invocation that reads its prompt
// from stdin.
func Args(cfg Config, extra ...string) []string {
	cfg = cfg.withDefaults()
	out := []string{
		"chat",
		"--stdin",
		"--access-token", cfg.AccessToken,
		"--endpoint", cfg.Endpoint,
		"--model", cfg.Model,
	}
	out = append(out, cfg.ExtraArgs...)
	out = append(out, extra...)
	return out
}

// Client sends prompts to Cody.
type Client struct {
	cfg    Config
	runner CommandRunner
}

// NewClient constructs a client. A nil runner uses ExecRunner.
func NewClient(cfg Config, runner CommandRunner) *Client {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{cfg: cfg.withDefaults(), runner: runner}
}

// Chat pipes prompt to `cody chat --stdin` and returns its stdout verbatim.
// Stderr output is logged as a warning and does not fail the call.
// On failure the partial stdout is returned together with the error.
func (c *Client) Chat(ctx context.Context, prompt string, extra ...string) (string, error) {
	logger := zerolog.Ctx(ctx)
	args := Args(c.cfg, extra...)
	logger.Debug().
		Str("cmd", c.cfg.Command).
		Str("endpoint", c.cfg.Endpoint).
		Str("model", c.cfg.Model).
		Int("prompt_bytes", len(prompt)).
		Msg("running cody chat")

	out, err := c.runner.Run(ctx, c.cfg.Command, args, strings.NewReader(prompt))
	if len(out.Stderr) > 0 {
		logger.Warn().Str("stderr", string(out.Stderr)).Msg("cody wrote to stderr")
	}
	if err != nil {
		return string(out.Stdout), fmt.Errorf("cody chat: %w", err)
	}
	if len(out.Stdout) == 0 {
		return NoOutput, nil
	}
	return string(out.Stdout), nil
}
