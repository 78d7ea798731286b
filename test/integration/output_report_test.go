package integration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TwistedSD/Financial-Calculators/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	results := runFile(t, "../testdata/example_requests.yaml")
	dir := t.TempDir()

	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "report."+format)
			written, err := output.GenerateReport(results, format, path)
			require.NoError(t, err)
			assert.Equal(t, path, written)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.NotZero(t, info.Size())
		})
	}
}

func TestReportContents(t *testing.T) {
	results := runFile(t, "../testdata/example_requests.yaml")

	console, err := output.GetFormatterByName("table").Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(console), "Car loan")
	assert.Contains(t, string(console), "$15,000")

	html, err := output.GetFormatterByName("html").Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Monthly budget")
	assert.Contains(t, string(html), "Food &amp; Groceries")

	data, err := output.GetFormatterByName("csv").Format(results)
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Name", "Kind", "Metric", "Value", "Currency", "Error"}, rows[0])
	assert.Greater(t, len(rows), len(results.Outcomes))
}

func TestLocalizedReport(t *testing.T) {
	results := runFile(t, "../testdata/example_requests.toml")

	console, err := output.GetFormatterByName("console").Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(console), "€")
	assert.Contains(t, string(console), "3 calculations, 1 failed")
}
