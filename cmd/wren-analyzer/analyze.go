package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/enci/wren-analyzer/internal/analyzer"
	"github.com/enci/wren-analyzer/internal/config"
	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/diagfmt"
	"github.com/enci/wren-analyzer/internal/driver"
	"github.com/enci/wren-analyzer/internal/source"
)

// runAnalyze implements the wren-analyzer root command: it resolves
// flags and config, analyzes a file or every *.wren file of a
// directory, and prints diagnostics in the requested format. It
// signals an error-severity result via a silent non-nil error rather
// than a printed one, since the diagnostics themselves already went
// to stdout.
func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	jsonFlag, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if jsonFlag {
		format = "json"
	}
	if format != "pretty" && format != "json" && format != "msgpack" {
		return fmt.Errorf("unknown format: %s", format)
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	cfg, err := loadConfig(configPath, path, info.IsDir())
	if err != nil {
		return err
	}
	if maxDiagnostics == 0 {
		maxDiagnostics = cfg.Diagnostics.Max
	}
	useColor := !noColor && isTerminal(os.Stdout)

	type fileResult struct {
		path string
		text []byte
		diag analyzer.Result
	}
	var files []fileResult

	if info.IsDir() {
		results, err := driver.AnalyzeDir(cmd.Context(), path, jobs)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				return r.Err
			}
			files = append(files, fileResult{path: r.Path, text: r.Text, diag: r.Result})
		}
	} else {
		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, fileResult{path: path, text: text, diag: analyzer.Analyze(text, path)})
	}

	hasError := false
	for i, f := range files {
		buf := source.New(f.path, f.text)
		diags := applyConfig(f.diag.Diagnostics, cfg, &hasError)
		if maxDiagnostics > 0 && len(diags) > maxDiagnostics {
			diags = diags[:maxDiagnostics]
		}

		if format == "pretty" && len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "== %s ==\n", f.path)
		}

		if err := emit(format, buf, diags, useColor); err != nil {
			return err
		}
	}

	if hasError {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func loadConfig(configPath, targetPath string, isDir bool) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	dir := targetPath
	if !isDir {
		dir = filepath.Dir(targetPath)
	}
	return config.LoadForDir(dir)
}

// applyConfig drops disabled codes and, per warnings-as-errors,
// tracks whether any surviving diagnostic should fail the run. The
// diagnostics returned for display keep their original severity;
// only the exit-code bookkeeping is affected by promotion.
func applyConfig(diags []diag.Diagnostic, cfg *config.Config, hasError *bool) []diag.Diagnostic {
	kept := make([]diag.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if cfg.IsDisabled(string(d.Code)) {
			continue
		}
		kept = append(kept, d)
		if d.Severity == diag.SevError {
			*hasError = true
		} else if d.Severity == diag.SevWarning && cfg.Diagnostics.WarningsAsErrors {
			*hasError = true
		}
	}
	return kept
}

func emit(format string, buf *source.Buffer, diags []diag.Diagnostic, useColor bool) error {
	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, diags, buf, diagfmt.PrettyOpts{Color: useColor})
		return nil
	case "json":
		return diagfmt.JSON(os.Stdout, diags, buf, diagfmt.JSONOpts{})
	case "msgpack":
		return diagfmt.MsgPack(os.Stdout, diags, buf)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
