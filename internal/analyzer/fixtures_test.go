package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enci/wren-analyzer/internal/fixture"
	"github.com/enci/wren-analyzer/internal/source"
)

// TestTestdataFixturesMatchExpectations runs every *.wren fixture
// under the repository's top-level testdata/ directory through the
// full pipeline and checks its `// expect warning`/`// expect error`
// markers against the diagnostics actually produced.
func TestTestdataFixturesMatchExpectations(t *testing.T) {
	files, err := filepath.Glob("../../testdata/*.wren")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			text, err := os.ReadFile(path)
			require.NoError(t, err)

			expectations, skip := fixture.Parse(text)
			if skip {
				t.Skip("fixture marked skip/nontest")
			}

			result := Analyze(text, path)
			buf := source.New(path, text)
			problems := fixture.Check(expectations, result.Diagnostics, buf)
			assert.Empty(t, problems)
		})
	}
}
