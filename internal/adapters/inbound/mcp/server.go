package mcp

import (
	"github.com/bewertigo/bewertigo/internal/adapters/outbound/config"
	"github.com/bewertigo/bewertigo/internal/adapters/outbound/input"
	"github.com/bewertigo/bewertigo/internal/application"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// ServerVersion is reported to MCP clients during initialization.
const ServerVersion = "0.1.0"

// NewBewertigoMCPServer creates an MCP server with all audit tools and
// resources registered. configDir is where .bewertigo.yaml is looked up.
func NewBewertigoMCPServer(configDir string, logger *zap.Logger) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := server.NewMCPServer(
		"bewertigo",
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	h := &handlers{
		svc:       application.NewAuditService(input.New(), config.New(), logger),
		configDir: configDir,
		logger:    logger,
	}
	registerTools(s, h)
	registerResources(s, h)

	return s
}

type handlers struct {
	svc       *application.AuditService
	configDir string
	logger    *zap.Logger
}
