// Package driver fans an analysis out across every *.wren file in a
// directory, mirroring the reference toolchain's parallel directory
// driver but scoped to one non-recursive listing and one file format.
package driver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/enci/wren-analyzer/internal/analyzer"
)

// FileResult pairs a file's path and source text with its analysis
// result, so a caller formatting diagnostics never has to re-read the
// file from disk.
type FileResult struct {
	Path   string
	Text   []byte
	Result analyzer.Result
	Err    error
}

// ListWrenFiles returns every *.wren file directly inside dir (not
// recursive), sorted by name for deterministic output.
func ListWrenFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".wren" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir analyzes every *.wren file in dir concurrently, capped at
// jobs workers (0 or negative means GOMAXPROCS). Results are returned
// in the same sorted order ListWrenFiles produced, regardless of
// completion order.
func AnalyzeDir(ctx context.Context, dir string, jobs int) ([]FileResult, error) {
	files, err := ListWrenFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			text, readErr := os.ReadFile(path)
			if readErr != nil {
				results[i] = FileResult{Path: path, Err: readErr}
				return nil
			}
			results[i] = FileResult{Path: path, Text: text, Result: analyzer.Analyze(text, path)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
