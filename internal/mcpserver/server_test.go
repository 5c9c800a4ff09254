package mcpserver

import (
	"context"
	"fmt"
	"testing"

	"github.com/mark3labs/speckit/internal/prompt"
)

// TestServerStartRandomPort verifies that Start() honors a port-0 address.
func TestServerStartRandomPort(t *testing.T) {
	server := New(prompt.NewRegistry())
	ctx := context.Background()

	port, err := server.Start(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if port <= 0 || port > 65535 {
		t.Errorf("Invalid port number: %d", port)
	}

	// Verify URL is constructed correctly
	expectedURL := fmt.Sprintf("http://localhost:%d/mcp", port)
	if server.URL() != expectedURL {
		t.Errorf("URL mismatch: got %s, want %s", server.URL(), expectedURL)
	}

	// Clean up
	if err := server.Stop(); err != nil {
		t.Errorf("Stop() failed: %v", err)
	}
}

// TestServerDoubleStart verifies that calling Start() twice returns an error.
func TestServerDoubleStart(t *testing.T) {
	server := New(prompt.NewRegistry())
	ctx := context.Background()

	_, err := server.Start(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("First Start() failed: %v", err)
	}
	defer func() {
		if err := server.Stop(); err != nil {
			t.Errorf("Stop() failed: %v", err)
		}
	}()

	_, err = server.Start(ctx, "127.0.0.1:0")
	if err == nil {
		t.Error("Second Start() should have returned an error")
	}
}

// TestServerStop verifies that Stop() shuts down the server cleanly.
func TestServerStop(t *testing.T) {
	server := New(prompt.NewRegistry())
	ctx := context.Background()

	port, err := server.Start(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if port <= 0 {
		t.Fatalf("Invalid port: %d", port)
	}

	// Stop the server
	err = server.Stop()
	if err != nil {
		t.Errorf("Stop() returned error: %v", err)
	}

	// Verify transport state is cleared; the MCP server and its prompt
	// catalog stay so the server can be started again
	if server.httpServer != nil {
		t.Error("httpServer should be nil after Stop()")
	}
	if server.stdServer != nil {
		t.Error("stdServer should be nil after Stop()")
	}
	if server.mcpServer == nil {
		t.Error("mcpServer should survive Stop()")
	}
}

// TestServerStopWithoutStart verifies that Stop() is safe to call without Start().
func TestServerStopWithoutStart(t *testing.T) {
	server := New(prompt.NewRegistry())

	// Stop should be safe even if server was never started
	err := server.Stop()
	if err != nil {
		t.Errorf("Stop() returned error when called without Start(): %v", err)
	}
}

// TestServerDoubleStop verifies that calling Stop() twice is safe.
func TestServerDoubleStop(t *testing.T) {
	server := New(prompt.NewRegistry())
	ctx := context.Background()

	_, err := server.Start(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	// First stop
	err = server.Stop()
	if err != nil {
		t.Errorf("First Stop() returned error: %v", err)
	}

	// Second stop should be safe (no-op)
	err = server.Stop()
	if err != nil {
		t.Errorf("Second Stop() returned error: %v", err)
	}
}

// TestServerRestartAfterStop verifies that a stopped server can be started again.
func TestServerRestartAfterStop(t *testing.T) {
	server := New(prompt.NewRegistry())
	ctx := context.Background()

	if _, err := server.Start(ctx, "127.0.0.1:0"); err != nil {
		t.Fatalf("First Start() failed: %v", err)
	}
	if err := server.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}

	port, err := server.Start(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start() after Stop() failed: %v", err)
	}
	if port <= 0 || port > 65535 {
		t.Errorf("Invalid port after restart: %d", port)
	}

	if err := server.Stop(); err != nil {
		t.Errorf("Final Stop() failed: %v", err)
	}
}

// TestServerFixedAddr verifies that Start() binds the exact port it is given.
func TestServerFixedAddr(t *testing.T) {
	server := New(prompt.NewRegistry())
	ctx := context.Background()

	// Grab a free port first, then ask for it explicitly
	probe := New(prompt.NewRegistry())
	free, err := probe.Start(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("probe Start() failed: %v", err)
	}
	if err := probe.Stop(); err != nil {
		t.Fatalf("probe Stop() failed: %v", err)
	}

	port, err := server.Start(ctx, fmt.Sprintf("127.0.0.1:%d", free))
	if err != nil {
		t.Fatalf("Start() on fixed port failed: %v", err)
	}
	defer func() {
		if err := server.Stop(); err != nil {
			t.Errorf("Stop() failed: %v", err)
		}
	}()

	if port != free {
		t.Errorf("Bound port mismatch: got %d, want %d", port, free)
	}
}
