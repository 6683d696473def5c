package main

import (
	"github.com/metalagman/testplan/internal/mcp"
	"github.com/metalagman/testplan/internal/testplan"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func mcpCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve test plan generation as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var agent *testplan.Agent
			if err := populate(cfg, root.runner, &agent); err != nil {
				return err
			}
			log.Info().Str("version", version).Msg("serving mcp on stdio")
			return mcp.NewServer(agent, planOptions(cfg), version).Run(cmd.Context())
		},
	}
}
