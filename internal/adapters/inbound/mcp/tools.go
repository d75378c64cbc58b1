package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools registers the validation tools on the given server.
func registerTools(s *server.MCPServer, ws *workspace) {
	s.AddTool(
		mcplib.NewTool("validate_slnf",
			mcplib.WithDescription("Validates solution filter (.slnf) files against their parent solution and the project files on disk. Returns the run report as JSON"),
			mcplib.WithString("files",
				mcplib.Description("Comma-separated filter file paths. Defaults to every .slnf file in the working directory"),
			),
			mcplib.WithBoolean("skip_solution_check",
				mcplib.Description("Skip checking that projects belong to the parent solution"),
			),
			mcplib.WithBoolean("skip_disk_check",
				mcplib.Description("Skip checking that project files exist on disk"),
			),
		),
		handleValidate(ws),
	)

	s.AddTool(
		mcplib.NewTool("find_slnf_files",
			mcplib.WithDescription("Lists the solution filter files in the working directory"),
			mcplib.WithString("pattern",
				mcplib.Description("Glob matched against file names (default *.slnf)"),
			),
		),
		handleFindFiles(ws),
	)
}

func handleValidate(ws *workspace) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()

		checks := ws.config.Checks()
		if v, ok := args["skip_solution_check"].(bool); ok {
			checks.SkipSolutionCheck = v
		}
		if v, ok := args["skip_disk_check"].(bool); ok {
			checks.SkipDiskCheck = v
		}

		svc := ws.service(checks)

		var files []string
		if s, ok := args["files"].(string); ok {
			files = splitAndTrim(s)
		}

		discovered := false
		if len(files) == 0 {
			found, err := svc.FindFilterFiles(ws.config.Pattern)
			if err != nil {
				return errorResult(fmt.Sprintf("finding filter files: %v", err)), nil
			}
			if len(found) == 0 {
				return textResult("No .slnf files found in the working directory."), nil
			}
			files, discovered = found, true
		}

		report := svc.ValidateAll(files)
		report.Discovered = discovered
		return jsonResult(report)
	}
}

func handleFindFiles(ws *workspace) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pattern := ws.config.Pattern
		if p, ok := request.GetArguments()["pattern"].(string); ok && p != "" {
			pattern = p
		}

		files, err := ws.service(ws.config.Checks()).FindFilterFiles(pattern)
		if err != nil {
			return errorResult(fmt.Sprintf("finding filter files: %v", err)), nil
		}
		if files == nil {
			files = []string{}
		}
		return jsonResult(files)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
