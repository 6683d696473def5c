package main

import (
	"fmt"

	"github.com/metalagman/testplan/internal/testplan"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func issueCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "issue <ticket-id>",
		Short: "Print the raw Jira issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (use json or yaml)", format)
			}
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var agent *testplan.Agent
			if err := populate(cfg, root.runner, &agent); err != nil {
				return err
			}

			issue, err := agent.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var out string
			if format == "yaml" {
				data, err := yaml.Marshal(map[string]any(issue))
				if err != nil {
					return fmt.Errorf("marshal issue: %w", err)
				}
				out = string(data)
			} else {
				out, err = testplan.IssueJSON(issue)
				if err != nil {
					return err
				}
				out += "\n"
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
