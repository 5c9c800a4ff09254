package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/speckit/internal/prompt"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <prompt> [input]",
	Short: "Render a prompt locally without a running server",
	Long: `Render a prompt locally without a running server.

The input is taken from the second argument, or read from stdin when omitted:

  speckit render specify "build a login page"
  cat SPEC.md | speckit render plan`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	registry := prompt.NewRegistry()

	gen, ok := registry.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown prompt: %s (available: %s)", args[0], strings.Join(registry.Names(), ", "))
	}

	var input string
	if len(args) == 2 {
		input = args[1]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input from stdin: %w", err)
		}
		input = string(data)
	}

	fmt.Fprintln(cmd.OutOrStdout(), gen.Render(input))
	return nil
}
