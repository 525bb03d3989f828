// Package mcp exposes the resource index over the Model Context Protocol.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ybkit/resindex/pkg/index"
	"github.com/ybkit/resindex/pkg/mcplog"
	"github.com/ybkit/resindex/pkg/util"
)

const serverVersion = "0.1.0"

// Server serves index queries as MCP tools over stdio.
type Server struct {
	mcpServer *server.MCPServer
	store     *index.Store
	toolLog   *mcplog.Logger
	log       *slog.Logger
}

// NewServer creates an MCP server backed by store. toolLog may be nil to
// disable tool-call logging; logger may be nil for a no-op logger.
func NewServer(store *index.Store, toolLog *mcplog.Logger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = util.NopLogger()
	}
	s := &Server{store: store, toolLog: toolLog, log: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if toolLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("resindex", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: buildIndexTool(), Handler: s.handleBuildIndex},
		server.ServerTool{Tool: queryComponentTool(), Handler: s.handleQueryComponent},
		server.ServerTool{Tool: queryUtilityTool(), Handler: s.handleQueryUtility},
		server.ServerTool{Tool: queryPluginTool(), Handler: s.handleQueryPlugin},
		server.ServerTool{Tool: bestPracticesTool(), Handler: s.handleBestPractices},
		server.ServerTool{Tool: allComponentsTool(), Handler: s.handleAllComponents},
		server.ServerTool{Tool: allUtilitiesTool(), Handler: s.handleAllUtilities},
		server.ServerTool{Tool: allPluginsTool(), Handler: s.handleAllPlugins},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
