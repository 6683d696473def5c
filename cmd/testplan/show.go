package main

import (
	"fmt"

	"github.com/metalagman/testplan/internal/testplan"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "show <plan-file>",
		Short: "Render a saved test plan in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := testplan.NewOSStore().Load(args[0])
			if err != nil {
				return err
			}
			out, err := renderMarkdown(plan, style)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", defaultStyle, "glamour style: auto, dark, light, notty, ...")
	return cmd
}
