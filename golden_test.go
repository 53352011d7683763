package miniyaml_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	miniyaml "github.com/KimNorgaard/go-miniyaml"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden parses every testdata/*.yaml file with the fallback parser
// and compares against the golden file: the canonical re-encoding for
// valid inputs, the error text for invalid ones.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			doc, err := miniyaml.ParseSubset(src)
			if err != nil {
				actual = []byte(err.Error())
			} else {
				actual, err = miniyaml.Marshal(doc)
				require.NoError(t, err)
			}

			goldenFile := strings.Replace(file, ".yaml", ".golden", 1)
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), string(actual))
		})
	}
}
