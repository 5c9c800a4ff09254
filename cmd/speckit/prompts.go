package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/speckit/internal/prompt"
	"github.com/mark3labs/speckit/internal/theme"
	"github.com/spf13/cobra"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the prompts in the Spec-Kit catalog",
	RunE:  runPrompts,
}

func runPrompts(cmd *cobra.Command, args []string) error {
	registry := prompt.NewRegistry()
	styles := theme.NewCatppuccinMocha().S()

	// Degrade colors to whatever the terminal supports
	w := colorprofile.NewWriter(os.Stdout, os.Environ())

	for i, gen := range registry.List() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, styles.Title.Render(gen.Name))
		fmt.Fprintln(w, "  "+gen.Description)

		required := "optional"
		if gen.Argument.Required {
			required = "required"
		}
		fmt.Fprintf(w, "  %s (string, %s): %s\n", styles.Label.Render(gen.Argument.Name), required, gen.Argument.Description)
	}

	return nil
}
