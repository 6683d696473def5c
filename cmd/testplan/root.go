package main

import (
	"fmt"
	"os"

	"github.com/metalagman/testplan/internal/cody"
	"github.com/metalagman/testplan/internal/config"
	"github.com/metalagman/testplan/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "testplan.yaml"
	defaultEnvFile    = ".env"
)

type rootOptions struct {
	cfgFile string
	envFile string
	debug   bool
	// runner overrides the Cody process runner; nil runs the real executable.
	runner cody.CommandRunner
}

func newRootCmd(runner cody.CommandRunner) *cobra.Command {
	opts := &rootOptions{runner: runner}
	rootCmd := &cobra.Command{
		Use:           "testplan",
		Short:         "testplan generates Markdown test plans for Jira tickets with Cody",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(opts.debug)
			return config.LoadDotEnv(opts.envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", defaultConfigPath, "config file path (yaml, json or toml); ignored when missing")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd(opts))
	rootCmd.AddCommand(issueCmd(opts))
	rootCmd.AddCommand(chatCmd(opts))
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(mcpCmd(opts))
	return rootCmd
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.Load(viper.New(), o.cfgFile)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
}
