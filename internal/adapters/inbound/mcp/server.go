package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewAgentLintMCPServer creates a new MCP server with the AgentLint
// validation tools registered. The projectPath is the directory whose
// .agentlint.yaml configures the validator.
func NewAgentLintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"agentlint",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
