// Package testplan turns Jira tickets into Markdown test plans.
//
// The Agent runs three sequential stages: fetch the issue, ask the chat tool
// for a plan, and optionally write the plan to testplan_<ticket>.md. Every
// stage reports an error to the caller-facing Agent, which logs it and
// degrades instead of failing: an unfetchable ticket yields a nil Result, a
// failed generation yields the "Error: ..." plan text, and a failed write
// leaves the Result untouched.
package testplan

import (
	"context"
	"errors"
	"os"

	"github.com/metalagman/testplan/internal/jira"
	"github.com/rs/zerolog"
)

// Fetcher loads an issue by ticket id.
type Fetcher interface {
	Issue(ctx context.Context, ticketID string) (jira.Issue, error)
}

// Options controls a single Run.
type Options struct {
	Persist   bool
	OutputDir string
}

// DefaultOptions persists into the current working directory.
func DefaultOptions() Options {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return Options{Persist: true, OutputDir: dir}
}

// Result is the outcome of a Run.
type Result struct {
	Issue jira.Issue
	Plan  string
	// PlanErr is set when Plan holds ErrorText rather than a chat reply.
	PlanErr error
	// Path is the written plan file, empty when nothing was written.
	Path string
}

// Agent sequences fetch, generate and persist.
type Agent struct {
	fetcher   Fetcher
	generator *Generator
	store     *Store
}

// NewAgent wires the pipeline stages.
func NewAgent(fetcher Fetcher, generator *Generator, store *Store) *Agent {
	return &Agent{fetcher: fetcher, generator: generator, store: store}
}

// Fetch loads the issue without generating a plan.
func (a *Agent) Fetch(ctx context.Context, ticketID string) (jira.Issue, error) {
	return a.fetcher.Issue(ctx, ticketID)
}

// Run produces a test plan for ticketID. It returns nil when the ticket could
// not be fetched; in that case the generator is never invoked.
func (a *Agent) Run(ctx context.Context, ticketID string, opts Options) *Result {
	logger := zerolog.Ctx(ctx).With().Str("ticket", ticketID).Logger()

	issue, err := a.fetcher.Issue(ctx, ticketID)
	if err != nil {
		ev := logger.Error().Err(err)
		var statusErr *jira.StatusError
		if errors.As(err, &statusErr) {
			ev = ev.Int("status", statusErr.StatusCode).Str("body", statusErr.Body)
		}
		ev.Msg("error fetching jira details")
		return nil
	}
	logger.Debug().Str("key", issue.Key()).Str("summary", issue.Summary()).Msg("jira ticket fetched")

	res := &Result{Issue: issue}
	plan, err := a.generator.Generate(logger.WithContext(ctx), issue)
	if err != nil {
		logger.Error().Err(err).Int("partial_bytes", len(plan)).Msg("error generating test plan")
		res.Plan = ErrorText(err)
		res.PlanErr = err
	} else {
		res.Plan = plan
	}

	if opts.Persist && res.Plan != "" {
		path, err := a.store.Save(opts.OutputDir, ticketID, res.Plan)
		if err != nil {
			logger.Error().Err(err).Msg("error saving test plan to file")
			return res
		}
		res.Path = path
		logger.Info().Str("path", path).Msg("test plan saved")
	}
	return res
}
