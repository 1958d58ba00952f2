// Package cmd provides CLI commands for rdfmap.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "rdfmap",
	Short: "Convert tabular bibliographic data into an RDF graph",
	Long: `Rdfmap converts rows of a tabular bibliographic dataset (CSV, one row per
scholarly article) into an RDF knowledge graph, driven entirely by a
user-editable YAML mapping configuration.

Examples:
  rdfmap generate -i papers.csv -o graph.ttl
  cat papers.csv | rdfmap generate --config mapping.yaml
  rdfmap generate -i papers.csv --format nt
  rdfmap validate --config mapping.yaml`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatsCmd)
}
