package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filterdoc"
)

const filtersURI = "slnf://filters"

// filterSummary describes one discovered filter file. Error is set instead of
// the solution fields when the file cannot be parsed.
type filterSummary struct {
	Path     string   `json:"path"`
	Solution string   `json:"solution,omitempty"`
	Projects []string `json:"projects,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// registerResources registers the read-only resources on the given server.
func registerResources(s *server.MCPServer, ws *workspace) {
	s.AddResource(
		mcplib.NewResource(
			filtersURI,
			"Solution Filters",
			mcplib.WithResourceDescription("Solution filter files in the working directory with their declared solution and projects"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFiltersResource(ws),
	)
}

func handleFiltersResource(ws *workspace) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		files, err := ws.service(ws.config.Checks()).FindFilterFiles(ws.config.Pattern)
		if err != nil {
			return nil, fmt.Errorf("finding filter files: %w", err)
		}

		parser := filterdoc.New()
		summaries := make([]filterSummary, 0, len(files))
		for _, f := range files {
			summary := filterSummary{Path: f}
			text, err := ws.gateway.ReadText(f)
			if err != nil {
				summary.Error = err.Error()
				summaries = append(summaries, summary)
				continue
			}
			doc, err := parser.Parse([]byte(text))
			if err != nil {
				summary.Error = err.Error()
				summaries = append(summaries, summary)
				continue
			}
			summary.Solution = doc.Solution.Path
			summary.Projects = doc.Solution.Projects
			summaries = append(summaries, summary)
		}

		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling filters: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      filtersURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
