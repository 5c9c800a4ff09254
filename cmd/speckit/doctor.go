package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/speckit/internal/config"
	"github.com/mark3labs/speckit/internal/prompt"
	"github.com/mark3labs/speckit/internal/theme"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check speckit configuration and environment",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	styles := theme.NewCatppuccinMocha().S()
	w := colorprofile.NewWriter(os.Stdout, os.Environ())

	fmt.Fprintln(w, styles.Title.Render("speckit doctor"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, styles.Label.Render("Config files"))
	for _, path := range []string{config.GlobalPath(), config.ProjectPath()} {
		status := styles.Muted.Render("not found")
		if fileExists(path) {
			status = styles.Success.Render("ok")
		}
		fmt.Fprintf(w, "  %s  %s\n", path, status)
	}
	fmt.Fprintln(w)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", styles.Error.Render("Failed to load config:"), err)
		return err
	}

	fmt.Fprintln(w, styles.Label.Render("Effective settings"))
	fmt.Fprintf(w, "  transport: %s\n", cfg.Transport)
	fmt.Fprintf(w, "  http_addr: %s\n", cfg.HTTPAddr)
	fmt.Fprintf(w, "  log_level: %s\n", cfg.LogLevel)
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "(discard)"
	}
	fmt.Fprintf(w, "  log_file:  %s\n", logFile)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(w, "  %s %v\n", styles.Error.Render("invalid:"), err)
	} else {
		fmt.Fprintf(w, "  %s\n", styles.Success.Render("valid"))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, styles.Label.Render("Prompt catalog"))
	for _, gen := range prompt.NewRegistry().List() {
		fmt.Fprintf(w, "  %-13s %s\n", gen.Name, gen.Description)
	}

	return nil
}
