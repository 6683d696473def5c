package main

import (
	"fmt"

	"github.com/metalagman/testplan/internal/testplan"
	"github.com/spf13/cobra"
)

func generateCmd(root *rootOptions) *cobra.Command {
	var outputDir string
	var noSave bool
	var render bool
	cmd := &cobra.Command{
		Use:   "generate <ticket-id>",
		Short: "Generate a test plan for a Jira ticket",
		Long: "Fetch a Jira ticket, ask Cody for a detailed Markdown test plan and write it to " +
			"testplan_<ticket-id>.md. With --no-save the plan is printed instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var agent *testplan.Agent
			if err := populate(cfg, root.runner, &agent); err != nil {
				return err
			}

			opts := planOptions(cfg)
			if cmd.Flags().Changed("output-dir") {
				opts.OutputDir = outputDir
			}
			if noSave {
				opts.Persist = false
			}

			ticketID := args[0]
			res := agent.Run(cmd.Context(), ticketID, opts)
			if res == nil {
				return fmt.Errorf("could not fetch jira ticket %s", ticketID)
			}

			printSummary(cmd.ErrOrStderr(), ticketID, res)
			switch {
			case render:
				out, err := renderMarkdown(res.Plan, defaultStyle)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			case res.Path == "":
				_, _ = fmt.Fprint(cmd.OutOrStdout(), res.Plan)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for testplan_<ticket-id>.md (default: current directory)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not write the plan file")
	cmd.Flags().BoolVar(&render, "print", false, "render the plan to the terminal")
	return cmd
}
