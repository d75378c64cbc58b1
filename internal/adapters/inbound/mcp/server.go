package mcp

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/config"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filesystem"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filterdoc"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/solution"
	"github.com/drewnoakes/validate-slnf/internal/application"
	"github.com/drewnoakes/validate-slnf/internal/domain"
)

// workspace is the directory the server validates, with its configuration.
type workspace struct {
	gateway *filesystem.Gateway
	config  domain.Config
	logger  *log.Logger
}

func (w *workspace) service(checks domain.CheckOptions) *application.ValidateService {
	resolver := application.NewSolutionResolver(w.gateway, solution.New())
	return application.NewValidateService(w.gateway, filterdoc.New(), resolver, checks, w.logger)
}

// NewValidateSlnfMCPServer creates a new MCP server with the validation tools
// and resources registered. Relative paths are resolved against workDir, and
// .validate-slnf.yaml in workDir supplies defaults for omitted arguments.
func NewValidateSlnfMCPServer(fs afero.Fs, workDir string, logger *log.Logger) (*server.MCPServer, error) {
	cfg, err := config.New(fs).Load(workDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ws := &workspace{
		gateway: filesystem.NewWithFs(fs, workDir),
		config:  cfg,
		logger:  logger,
	}

	s := server.NewMCPServer(
		"validate-slnf",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, ws)
	registerResources(s, ws)

	return s, nil
}
