package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

type globalFlags struct {
	config  string
	openapi string
	schema  string
	verbose bool
}

func main() {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "textfield",
		Short: "Render, host and serve Material style text fields",
		Long: `textfield loads field definitions from YAML/JSON files or from an
OpenAPI component schema and drives them through the text field state
machine: rendered to HTML or ANSI, prompted on a terminal, hosted in an
interactive TUI, or served over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.config, "config", "c", "", "field definition file or directory (YAML/JSON)")
	persistent.StringVar(&flags.openapi, "openapi", "", "OpenAPI document to derive fields from")
	persistent.StringVar(&flags.schema, "schema", "", "component schema name used with --openapi")
	persistent.BoolVarP(&flags.verbose, "verbose", "v", false, "log field transitions to stderr")

	rootCmd.AddCommand(
		renderCmd(flags),
		promptCmd(flags),
		tuiCmd(flags),
		serveCmd(flags),
		openapiCmd(flags),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func (g *globalFlags) logger() *slog.Logger {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
