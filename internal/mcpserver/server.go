// Package mcpserver hosts the Spec-Kit MCP server over stdio and streamable HTTP.
//
// The server exposes the prompt registry to MCP clients: prompts/list returns
// the catalog and prompts/get renders a single prompt. Requests for names the
// registry does not contain are rejected at the protocol layer.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/speckit/internal/logger"
	"github.com/mark3labs/speckit/internal/prompt"
)

const (
	serverName    = "Spec-Kit"
	serverVersion = "1.0.0"
)

// serverInstructions is surfaced to MCP clients in the initialize response.
const serverInstructions = `Spec-Kit drives spec-driven development in two steps:
1. Call the "specify" prompt with your goal, follow it, and save the result as SPEC.md.
2. Call the "plan" prompt with the full SPEC.md content to produce PLAN.md.
Prompts are pure text generators: no state is kept between calls and no files are touched.`

// Server manages the embedded MCP server that exposes the prompt catalog.
// It can serve a single client over stdio or many clients over HTTP; both
// transports share one MCPServer so the catalog is identical everywhere.
type Server struct {
	registry   *prompt.Registry
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	stdServer  *http.Server // Standard HTTP server that owns the listener
	port       int
	mu         sync.Mutex
}

// New creates a Spec-Kit MCP server backed by the given registry.
// Every generator is registered up front; the catalog never changes afterwards.
func New(registry *prompt.Registry) *Server {
	s := &Server{registry: registry}
	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithPromptCapabilities(true),
		server.WithInstructions(serverInstructions),
		server.WithRecovery(),
	)
	s.registerPrompts()
	return s
}

// ServeStdio serves MCP over stdin/stdout until ctx is cancelled or stdin
// closes. Blocks for the lifetime of the connection. Diagnostics must go
// through the logger: stdout belongs to the protocol.
func (s *Server) ServeStdio(ctx context.Context) error {
	logger.Debug("Serving MCP over stdio")
	return server.NewStdioServer(s.mcpServer).Listen(ctx, os.Stdin, os.Stdout)
}

// Start starts the MCP HTTP server on the given address. An address with
// port 0 selects a random available port. Blocks until the listener is bound
// and returns the bound port.
func (s *Server) Start(ctx context.Context, addr string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	// Bind the listener up front and hand it to Serve directly to avoid a
	// TOCTOU race between port discovery and bind
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	// Get the port that was assigned
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mcpHandler := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	)
	mux.Handle("/mcp", mcpHandler)

	s.stdServer = &http.Server{
		Handler: mux,
	}
	s.httpServer = mcpHandler

	logger.Debug("Starting MCP server on port %d", s.port)

	// Capture stdServer reference for goroutine to avoid race with Stop()
	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	logger.Debug("MCP server ready on port %d", s.port)
	return s.port, nil
}

// Stop stops the MCP HTTP server and cleans up resources. Safe to call
// multiple times. The underlying MCPServer and its prompt catalog survive,
// so Start may be called again afterwards.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil // Already stopped
	}

	logger.Debug("Stopping MCP server")
	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}

	s.httpServer = nil
	s.stdServer = nil
	logger.Debug("MCP server stopped")
	return nil
}

// URL returns the HTTP URL for the MCP server endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
