package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentlint/agentlint/internal/adapters/outbound/config"
	"github.com/agentlint/agentlint/internal/application"
	"github.com/agentlint/agentlint/internal/domain"
)

// registerTools registers all AgentLint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. agentlint_validate
	s.AddTool(
		mcplib.NewTool("agentlint_validate",
			mcplib.WithDescription("Validate an agent output text against the quality check battery. Returns the result with score, passed checks, critical issues, and warnings as JSON."),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("The output text to validate"),
			),
			mcplib.WithString("label",
				mcplib.Description("Agent role label for context (e.g. Backend Engineer)"),
			),
			mcplib.WithBoolean("production",
				mcplib.Description("Also run production-readiness checks and combine the results"),
			),
		),
		handleValidate(projectPath),
	)

	// 2. agentlint_production_check
	s.AddTool(
		mcplib.NewTool("agentlint_production_check",
			mcplib.WithDescription("Run only the production-readiness checks (credential exposure, cost awareness) over an output text"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("The output text to check"),
			),
			mcplib.WithString("label",
				mcplib.Description("Agent role label for context"),
			),
		),
		handleProductionCheck(),
	)
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		label := labelArg(request)

		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		result := application.NewValidateService(cfg).ValidateText(text, label)

		production, _ := request.GetArguments()["production"].(bool)
		if production {
			prod := application.NewProductionService().ValidateText(text, label)
			result = result.Combine(prod)
		}

		return jsonResult(result)
	}
}

func handleProductionCheck() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result := application.NewProductionService().ValidateText(text, labelArg(request))
		return jsonResult(result)
	}
}

func labelArg(request mcplib.CallToolRequest) string {
	label, _ := request.GetArguments()["label"].(string)
	if label == "" {
		label = "Agent"
	}
	return label
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v domain.Result) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
