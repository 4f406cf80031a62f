package parser_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	. "github.com/pseudomuto/ddlast/pkg/parser"
)

// TestGoldenFiles parses every testdata/*.sql file and compares the indented
// JSON encoding of the document with testdata/<name>.json.
//
// Run with -update to regenerate the golden files.
func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.sql files found in testdata directory")

	for _, inputFile := range matches {
		outputName := strings.TrimSuffix(filepath.Base(inputFile), ".sql") + ".json"

		t.Run(outputName, func(t *testing.T) {
			input, err := os.ReadFile(inputFile)
			require.NoError(t, err, "Failed to read input file %s", inputFile)

			doc, err := ParseString(string(input))
			require.NoError(t, err, "Failed to parse SQL from %s", inputFile)

			out, err := json.MarshalIndent(doc, "", "  ")
			require.NoError(t, err)

			golden.Assert(t, string(out)+"\n", outputName)
		})
	}
}
