// Package mcp exposes the store builder as MCP tools so AI agents can
// generate and edit storefronts over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/matjar-app/matjar/internal/catalog"
	"github.com/matjar-app/matjar/internal/mutate"
	"github.com/matjar-app/matjar/internal/session"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes store building tools. It
// holds one builder session at a time, the way a single agent
// conversation edits one store.
type Server struct {
	engine   *mutate.Engine
	searcher *catalog.Searcher
	session  *session.Session
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
// searcher may be nil; search_templates then reports it is disabled.
func NewServer(engine *mutate.Engine, searcher *catalog.Searcher) *Server {
	s := &Server{
		engine:   engine,
		searcher: searcher,
	}

	s.mcp = server.NewMCPServer(
		"matjar",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generateStoreTool, s.handleGenerateStore)
	s.mcp.AddTool(editStoreTool, s.handleEditStore)
	s.mcp.AddTool(undoEditTool, s.handleUndoEdit)
	s.mcp.AddTool(redoEditTool, s.handleRedoEdit)
	s.mcp.AddTool(listTemplatesTool, s.handleListTemplates)
	s.mcp.AddTool(searchTemplatesTool, s.handleSearchTemplates)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
