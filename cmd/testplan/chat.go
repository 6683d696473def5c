package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/metalagman/testplan/internal/cody"
	"github.com/spf13/cobra"
)

func chatCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [-- extra cody args]",
		Short: "Send a prompt read from stdin to Cody",
		Long:  "Read a prompt from stdin, pass it to `cody chat --stdin` with the configured credentials and print the reply.",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read prompt: %w", err)
			}
			if strings.TrimSpace(string(prompt)) == "" {
				return fmt.Errorf("prompt is empty")
			}

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var client *cody.Client
			if err := populate(cfg, root.runner, &client); err != nil {
				return err
			}

			reply, err := client.Chat(cmd.Context(), string(prompt), args...)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), reply)
			return err
		},
	}
}
