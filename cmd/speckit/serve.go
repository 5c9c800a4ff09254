package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/speckit/internal/config"
	"github.com/mark3labs/speckit/internal/logger"
	"github.com/mark3labs/speckit/internal/mcpserver"
	"github.com/mark3labs/speckit/internal/prompt"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	transport string
	addr      string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Spec-Kit MCP server",
	Long: `Start the Spec-Kit MCP server.

By default the server speaks MCP over stdio, which is how MCP clients
spawn it directly. With --transport http it serves streamable HTTP on
the configured address instead.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./speckit.yml
Global config: ~/.config/speckit/speckit.yml`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.transport, "transport", "t", "", "Transport to serve on: stdio or http (default: stdio)")
	serveCmd.Flags().StringVarP(&serveFlags.addr, "addr", "a", "", "Listen address for the http transport (default: localhost:8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load config via Viper
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// CLI flags override config values
	if cmd.Flags().Changed("transport") {
		cfg.Transport = serveFlags.transport
	}
	if cmd.Flags().Changed("addr") {
		cfg.HTTPAddr = serveFlags.addr
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Stdout carries the protocol on the stdio transport, so diagnostics
	// go wherever the logger is pointed
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	srv := mcpserver.New(prompt.NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Received shutdown signal")
		cancel()
	}()

	switch cfg.Transport {
	case config.TransportStdio:
		if err := srv.ServeStdio(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("stdio server failed: %w", err)
		}
	case config.TransportHTTP:
		port, err := srv.Start(ctx, cfg.HTTPAddr)
		if err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		defer func() {
			if err := srv.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
			}
		}()

		fmt.Printf("Spec-Kit MCP server listening on %s (port %d)\n", srv.URL(), port)
		fmt.Println("Press Ctrl+C to stop.")
		<-ctx.Done()
	}

	return nil
}
