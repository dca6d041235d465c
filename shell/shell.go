package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uamatch/uamatch"
	"github.com/uamatch/uamatch/logging"
)

const (
	title    = "User-Agent matcher"
	intro    = "Enter an User-Agent string to get the version string."
	prompt   = "> "
	maxInput = 1024 * 1024
)

// Detector is the part of detect.Detector the shell depends on.
type Detector interface {
	Detect(ua string) (uamatch.Browser, bool)
}

// Shell reads User-Agent strings line by line and prints what it detects.
type Shell struct {
	detector Detector
	in       io.Reader
	out      io.Writer

	noBanner bool
	noColor  bool
}

type Option func(*Shell)

// WithoutBanner suppresses the title and usage lines.
func WithoutBanner() Option {
	return func(s *Shell) { s.noBanner = true }
}

// WithoutColor prints results without terminal styling.
func WithoutColor() Option {
	return func(s *Shell) { s.noColor = true }
}

func New(d Detector, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{detector: d, in: in, out: out}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user types q or exit, the input ends, or ctx is done.
// Cancelling ctx returns immediately, even while waiting for a line.
func (s *Shell) Run(ctx context.Context) error {
	if !s.noBanner {
		s.printBanner()
	}

	stop := make(chan struct{})
	defer close(stop)
	lines, errc := s.readLines(stop)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(s.out, prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			if err := <-errc; err != nil {
				return fmt.Errorf("read user agent: %w", err)
			}
			// EOF
			fmt.Fprintln(s.out)
			return nil
		}

		ua := strings.TrimSpace(line)
		switch ua {
		case "":
			continue
		case "q", "exit":
			logging.Debug().Msg("quit requested")
			return nil
		}

		fmt.Fprintf(s.out, "User-Agent: %s\n", ua)
		if browser, ok := s.detector.Detect(ua); ok {
			fmt.Fprintln(s.out, s.render(browser))
		} else {
			fmt.Fprintln(s.out, uamatch.NoResult)
		}
	}
}

// readLines scans s.in on its own goroutine so Run can watch ctx while a
// read is blocked. lines is closed at EOF or on a read error, after which
// errc yields the scanner error (nil at EOF). The goroutine exits once stop
// is closed, or stays parked in Read until the input delivers data.
func (s *Shell) readLines(stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, 4096), maxInput)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func (s *Shell) printBanner() {
	fmt.Fprintln(s.out, title)
	fmt.Fprintln(s.out, strings.Repeat("-", len([]rune(title))))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, intro)
}

func (s *Shell) render(b uamatch.Browser) string {
	if s.noColor {
		return b.String()
	}
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f05c07")).Render(b.Name)
	version := lipgloss.NewStyle().Foreground(lipgloss.Color("#f5d445")).Render(b.Version)
	return fmt.Sprintf("Browser: %s Version: %s", name, version)
}
