package cli

import (
	"fmt"

	"github.com/aretw0/pricewalk/pkg/adapters/mcp"
)

// RunMCP serves the MCP tools over stdio until the client disconnects.
func RunMCP(opts GlobalOptions) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}

	engine, closeStore, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// Logs go to Stderr so they never corrupt JSON-RPC on Stdout.
	logger.Info("Starting pricewalk MCP Server (Stdio)")
	if err := mcp.NewServer(engine).ServeStdio(); err != nil {
		return fmt.Errorf("MCP server execution failed: %w", err)
	}
	return nil
}
