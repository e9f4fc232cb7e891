package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <entry>",
		Short: "Print the parsed tree of a stylesheet with its imports resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expand, _ := cmd.Flags().GetBool("expand")
			return c.app.Tree(cmd.Context(), args[0], expand, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolP("expand", "e", false, "Also print the tree of every imported file")
	return cmd
}
