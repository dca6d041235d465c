package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uamatch/uamatch"
	"github.com/uamatch/uamatch/config/rules"
	"github.com/uamatch/uamatch/detect"
	"github.com/uamatch/uamatch/report"
)

func defaultDetector(t *testing.T) *detect.Detector {
	t.Helper()
	reg, err := rules.DefaultRegistry()
	require.NoError(t, err)
	return detect.NewDetector(reg)
}

func TestDetectLines(t *testing.T) {
	input := "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:64.0) Gecko/20100101 Firefox/64.0\n" +
		"\n" +
		"  curl/8.4.0  \n" +
		"chromium/70.0.3538.77"

	results, err := detectLines(defaultDetector(t), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []uamatch.Result{
		{
			Line:      1,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:64.0) Gecko/20100101 Firefox/64.0",
			Browser:   &uamatch.Browser{Name: "Firefox", Version: "64.0"},
		},
		{Line: 3, UserAgent: "curl/8.4.0"},
		{
			Line:      4,
			UserAgent: "chromium/70.0.3538.77",
			Browser:   &uamatch.Browser{Name: "Chrome", Version: "70.0.3538.77"},
		},
	}, results)
}

func TestWriteReportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	results := []uamatch.Result{{Line: 1, UserAgent: "Edge/18.1", Browser: &uamatch.Browser{Name: "Edge", Version: "18.1"}}}

	require.NoError(t, writeReport(rootCmd, &report.CsvReporter{}, path, results))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Line,UserAgent,Browser,Version\n1,Edge/18.1,Edge,18.1\n", string(got))
}

func TestRulesTable(t *testing.T) {
	out := rulesTable(defaultDetector(t).Registry())

	firefox := strings.Index(out, "Firefox")
	edge := strings.Index(out, "Edge")
	chrome := strings.Index(out, "Chrome")
	require.True(t, firefox > 0 && edge > 0 && chrome > 0, out)
	assert.Less(t, firefox, edge)
	assert.Less(t, edge, chrome)
	assert.Contains(t, out, "chromium/, chrome/")
}

func TestRootRunsShell(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetArgs([]string{"--no-banner", "--no-color"})
	rootCmd.SetIn(strings.NewReader("Firefox/64.0\n\nedge/8.1\nexit\n"))
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "> User-Agent: Firefox/64.0\n"+
		"Browser: Firefox Version: 64.0\n"+
		"> > User-Agent: edge/8.1\n"+
		"No result :/\n"+
		"> ", out.String())
}

func TestStdinJSON(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"rules:\n  - label: Opera\n    regex: '(?i)(?:opr|opera)/([\\d\\.]+)'\n    keywords: [opr/, opera/]\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"stdin", "--config", cfg, "--report-format", "json"})
	rootCmd.SetIn(strings.NewReader("Chrome/90.0.4430.85 OPR/76.0.4017.123\nOpera/9.80\nFirefox/64.0\n"))
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var results []uamatch.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 3)
	// built-in rules are evaluated before rule file rules
	assert.Equal(t, &uamatch.Browser{Name: "Chrome", Version: "90.0.4430.85"}, results[0].Browser)
	assert.Equal(t, &uamatch.Browser{Name: "Opera", Version: "9.80"}, results[1].Browser)
	assert.Equal(t, &uamatch.Browser{Name: "Firefox", Version: "64.0"}, results[2].Browser)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.23s", FormatDuration(1234567890))
	assert.Equal(t, "12.3ms", FormatDuration(12345678))
}
