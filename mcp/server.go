// Package mcp implements a Model Context Protocol (MCP) server that exposes
// the document catalogue as tools and resources for AI assistants.
//
// # Usage with Claude Desktop
//
// Add to your claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "docgen": {
//	      "command": "docgen-mcp",
//	      "args": ["--out", "/home/me/Documentos"]
//	    }
//	  }
//	}
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/anixcopiadora/docgen"
	"github.com/anixcopiadora/docgen/internal/config"
)

// Server wraps an MCP server bound to a document generator.
type Server struct {
	config    *config.Config
	gen       *docgen.Generator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, gen *docgen.Generator) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s := &Server{
		config:    cfg,
		gen:       gen,
		mcpServer: mcpServer,
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcpServer }

// Run serves requests on stdin and stdout until the client disconnects.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting docgen MCP server in stdio mode")
		log.Printf("Output directory: %s", s.config.OutDir)
	}
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
