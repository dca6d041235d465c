package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/uamatch/uamatch"
	"github.com/uamatch/uamatch/logging"
	"github.com/uamatch/uamatch/report"
	"github.com/uamatch/uamatch/shell"
)

func init() {
	stdInCmd.Flags().StringP("report-format", "f", "text", "output format (text, json, csv)")
	stdInCmd.Flags().StringP("report-path", "r", "-", "report file (use \"-\" for stdout)")
	stdInCmd.Flags().Int("exit-code", 0, "exit code when at least one line has no detected browser")
	rootCmd.AddCommand(stdInCmd)
}

var stdInCmd = &cobra.Command{
	Use:   "stdin",
	Short: "detect browsers for each User-Agent line read from stdin",
	Args:  cobra.NoArgs,
	Run:   runStdIn,
}

func runStdIn(cmd *cobra.Command, _ []string) {
	d := newDetector(cmd)

	reporter, err := report.New(mustGetStringFlag(cmd, "report-format"))
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid report format")
	}

	start := time.Now()
	results, err := detectLines(d, cmd.InOrStdin())
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to read stdin")
	}

	if err := writeReport(cmd, reporter, mustGetStringFlag(cmd, "report-path"), results); err != nil {
		logging.Fatal().Err(err).Msg("failed to write report")
	}

	unmatched := uamatch.Unmatched(results)
	logging.Info().Msgf("%d user agents processed in %s", len(results), FormatDuration(time.Since(start)))
	if unmatched > 0 {
		logging.Warn().Msgf("no browser detected for %d user agents", unmatched)
		if exitCode := mustGetIntFlag(cmd, "exit-code"); exitCode != 0 {
			os.Exit(exitCode)
		}
	}
}

// detectLines runs d over every non-blank line of r. Line numbers are
// 1-based and count blank lines.
func detectLines(d shell.Detector, r io.Reader) ([]uamatch.Result, error) {
	var results []uamatch.Result
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		ua := strings.TrimSpace(scanner.Text())
		if ua == "" {
			continue
		}
		res := uamatch.Result{Line: line, UserAgent: ua}
		if b, ok := d.Detect(ua); ok {
			res.Browser = &b
		}
		results = append(results, res)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", line+1, err)
	}
	return results, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func writeReport(cmd *cobra.Command, reporter uamatch.Reporter, path string, results []uamatch.Result) error {
	if path == "" || path == "-" {
		return reporter.Write(nopWriteCloser{cmd.OutOrStdout()}, results)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := reporter.Write(f, results); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func FormatDuration(d time.Duration) string {
	scale := 100 * time.Second
	// look for the max scale that is smaller than d
	for scale > d {
		scale = scale / 10
	}
	return d.Round(scale / 100).String()
}
