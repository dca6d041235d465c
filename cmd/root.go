package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/uamatch/uamatch/config"
	"github.com/uamatch/uamatch/config/rules"
	"github.com/uamatch/uamatch/detect"
	"github.com/uamatch/uamatch/logging"
	"github.com/uamatch/uamatch/regexp"
	"github.com/uamatch/uamatch/shell"
	"github.com/uamatch/uamatch/version"
)

const configDescription = `rule file (.toml, .yaml or .yml) with extra rules.
Extra rules are evaluated after the built-in Firefox, Edge and Chrome rules`

var rootCmd = &cobra.Command{
	Use:     "uamatch",
	Short:   "uamatch detects the browser name and version in User-Agent strings",
	Version: version.Version,
	Args:    cobra.NoArgs,
	Run:     runShell,
}

func init() {
	cobra.OnInitialize(initLog)
	rootCmd.PersistentFlags().StringP("config", "c", "", configDescription)
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().Bool("no-banner", false, "suppress banner")
	rootCmd.PersistentFlags().Bool("no-color", false, "turn off color for detection output")
	rootCmd.PersistentFlags().String("regex-engine", regexp.EngineStdlib, "regex engine used to compile rules (stdlib, re2)")
}

var logLevel = zerolog.InfoLevel

func initLog() {
	ll, err := rootCmd.Flags().GetString("log-level")
	if err != nil {
		logging.Fatal().Msg(err.Error())
	}

	switch strings.ToLower(ll) {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "err", "error":
		logLevel = zerolog.ErrorLevel
	case "fatal":
		logLevel = zerolog.FatalLevel
	default:
		logging.Warn().Msgf("unknown log level: %s", ll)
	}
	logging.Logger = logging.Logger.Level(logLevel)
}

// newDetector is the composition root: it selects the regex engine, loads
// the optional rule file and builds the registry exactly once.
func newDetector(cmd *cobra.Command) *detect.Detector {
	engine := mustGetStringFlag(cmd, "regex-engine")
	if !regexp.ValidEngine(engine) {
		logging.Fatal().Msgf("unknown regex engine: %s", engine)
	}
	regexp.SetEngine(engine)
	logging.Debug().Msgf("using %s regex engine", regexp.Version())

	var extra []*config.Rule
	if cfgPath := mustGetStringFlag(cmd, "config"); cfgPath != "" {
		var err error
		extra, err = config.LoadFile(cfgPath, version.Version)
		if err != nil {
			logging.Fatal().Err(err).Msg("unable to load rule file")
		}
		logging.Debug().Msgf("using rule file %s from `--config`", cfgPath)
	}

	reg, err := rules.DefaultRegistry(extra...)
	if err != nil {
		logging.Fatal().Err(err).Msg("unable to build rule registry")
	}
	logging.Debug().Strs("rules", reg.Labels()).Msg("rule registry ready")
	return detect.NewDetector(reg)
}

func runShell(cmd *cobra.Command, _ []string) {
	d := newDetector(cmd)

	var opts []shell.Option
	if mustGetBoolFlag(cmd, "no-banner") {
		opts = append(opts, shell.WithoutBanner())
	}
	if mustGetBoolFlag(cmd, "no-color") || !isTerminal(os.Stdout) {
		opts = append(opts, shell.WithoutColor())
	}

	if err := shell.New(d, cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run(cmd.Context()); err != nil {
		logging.Fatal().Err(err).Msg("shell stopped")
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if strings.Contains(err.Error(), "unknown flag") {
			// exit code 126: Command invoked cannot execute
			stop()
			os.Exit(126)
		}
		logging.Fatal().Msg(err.Error())
	}
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetIntFlag(cmd *cobra.Command, name string) int {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}
