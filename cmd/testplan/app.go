package main

import (
	"github.com/metalagman/testplan/internal/cody"
	"github.com/metalagman/testplan/internal/config"
	"github.com/metalagman/testplan/internal/jira"
	"github.com/metalagman/testplan/internal/testplan"
	"go.uber.org/fx"
)

// populate builds the pipeline graph for cfg and fills targets
// (pointers to *testplan.Agent, *cody.Client, ...). Only the constructors
// the targets depend on are run.
func populate(cfg config.Config, runner cody.CommandRunner, targets ...any) error {
	if runner == nil {
		runner = cody.ExecRunner{}
	}
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			func() cody.CommandRunner { return runner },
			newJiraClient,
			newCodyClient,
			newGenerator,
			newAgent,
			testplan.NewOSStore,
		),
		fx.Populate(targets...),
	)
	return app.Err()
}

func newJiraClient(cfg config.Config) (*jira.Client, error) {
	return jira.NewClient(cfg.JiraClientConfig(), nil)
}

func newCodyClient(cfg config.Config, runner cody.CommandRunner) *cody.Client {
	return cody.NewClient(cfg.CodyClientConfig(), runner)
}

func newGenerator(client *cody.Client) *testplan.Generator {
	return testplan.NewGenerator(client)
}

func newAgent(client *jira.Client, gen *testplan.Generator, store *testplan.Store) *testplan.Agent {
	return testplan.NewAgent(client, gen, store)
}

func planOptions(cfg config.Config) testplan.Options {
	opts := testplan.DefaultOptions()
	opts.Persist = cfg.Output.Persist
	if cfg.Output.Dir != "" {
		opts.OutputDir = cfg.Output.Dir
	}
	return opts
}
