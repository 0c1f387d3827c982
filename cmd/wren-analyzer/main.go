package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "wren-analyzer [flags] <file.wren|directory>",
	Short: "Static analyzer for Wren scripts",
	Long:  `wren-analyzer parses, resolves, and lint-checks Wren source files, reporting diagnostics without running any code.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.Flags().Bool("json", false, "shorthand for --format json")
	rootCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	rootCmd.Flags().Bool("no-color", false, "disable ANSI severity coloring in pretty mode")
	rootCmd.Flags().Int("max-diagnostics", 0, "maximum number of diagnostics to report per file (0=unbounded)")
	rootCmd.Flags().Int("jobs", 0, "max parallel workers for directory mode (0=auto)")
	rootCmd.Flags().String("config", "", "path to a .wrenanalyzer.toml config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
