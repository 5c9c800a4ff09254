package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/speckit/internal/logger"
	"github.com/mark3labs/speckit/internal/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀ █▀█ █▀▀ █▀▀ █▄▀ ▀ ▀█▀"
	logoText2 = "▄█ █▀▀ ██▄ █▄▄ █ █ █  █ "
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "speckit",
	Short: "Spec-Kit MCP server for spec-driven development prompts",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

speckit serves the Spec-Kit prompts over the Model Context Protocol.
It exposes the "specify" and "plan" prompt generators to MCP clients
over stdio or streamable HTTP, and ships small helpers to inspect and
render the catalog locally.`

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(doctorCmd)
}
