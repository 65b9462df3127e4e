package main

import (
	"github.com/aretw0/pricewalk/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the simulator as MCP tools over Standard Input/Output.
This allows AI agents to call simulate_prices and roll_dice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunMCP(globalOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
