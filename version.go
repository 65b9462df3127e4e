package pricewalk

// Version is the release of the module, reported by the CLI and the MCP server.
var Version = "0.3.0"
