package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tempus-cli/tempus/internal/config"
	"github.com/tempus-cli/tempus/internal/errs"
	"github.com/tempus-cli/tempus/internal/humantime"
	"github.com/tempus-cli/tempus/internal/pipeline"
)

var (
	flagFormat   string
	flagTimezone string
	flagNow      string
	flagVerbose  bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		report(err)
		os.Exit(errs.ExitCode(err))
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tempus [expression]",
		Short: "Turn natural-language time expressions into formatted datetimes",
		Long: `tempus converts phrases like "next friday at 9:30" or "in 3 days"
into a formatted datetime string. The expression comes from the
argument or from piped stdin.

The output format is a strftime pattern ("%Y-%m-%d") or the name of a
preset from the [formats] table of the config file. Defaults for the
format and the time zone are read from TEMPUS_FORMAT / TEMPUS_TIMEZONE
and from the config file, in that order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: strftime pattern or preset name")
	cmd.Flags().StringVarP(&flagTimezone, "timezone", "t", "", "IANA time zone, e.g. Europe/London")
	cmd.Flags().StringVar(&flagNow, "now", "", "override the reference instant (RFC 3339)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log pipeline details to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		"format", cfg.Format, "timezone", cfg.Timezone, "presets", len(cfg.Formats))

	expression, err := readExpression(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	req, err := buildRequest(expression, cfg)
	if err != nil {
		return err
	}
	logger.Debug("request built",
		"expression", req.Expression, "format", req.Format, "timezone", req.Location.String())

	p := pipeline.New(humantime.NewParser(), time.Now)
	out, err := p.Process(req, cfg.Presets())
	if err != nil {
		return err
	}
	logger.Debug("rendered", "output", out)

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// readExpression takes the positional argument, falling back to piped
// stdin. An interactive terminal is never read.
func readExpression(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	if f, ok := stdin.(*os.File); ok {
		info, err := f.Stat()
		if err != nil || info.Mode()&os.ModeCharDevice != 0 {
			return "", errs.UserInputf(errs.InvalidDateFormat,
				"no input provided; pass an argument or pipe data")
		}
	}

	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", errs.UserInputf(errs.InvalidDateFormat, "failed to read from stdin: %v", err)
	}
	expression := strings.TrimSpace(string(raw))
	if expression == "" {
		return "", errs.UserInputf(errs.InvalidDateFormat,
			"no input provided in stdin; pass an argument or pipe data")
	}
	return expression, nil
}

// buildRequest merges flag values over config defaults and validates
// the result. Flags win over environment and file settings, which the
// config layer has already merged.
func buildRequest(expression string, cfg *config.Config) (pipeline.Request, error) {
	format := flagFormat
	if format == "" {
		format = cfg.Format
	}
	if strings.TrimSpace(format) == "" {
		return pipeline.Request{}, errs.UserInputf(errs.MissingArgument, "no output format specified")
	}

	name := strings.TrimSpace(flagTimezone)
	if name == "" {
		name = strings.TrimSpace(cfg.Timezone)
	}
	loc := time.Local
	if name != "" {
		var err error
		loc, err = time.LoadLocation(name)
		if err != nil {
			return pipeline.Request{}, errs.UserInputf(errs.UnsupportedTimezone, "invalid timezone ID: %s", name)
		}
	}

	var now *time.Time
	if flagNow != "" {
		t, err := time.Parse(time.RFC3339, flagNow)
		if err != nil {
			return pipeline.Request{}, errs.UserInputf(errs.InvalidNow,
				"%v (expect RFC 3339, e.g. 2025-06-24T12:00:00Z)", err)
		}
		t = t.In(loc)
		now = &t
	}

	return pipeline.Request{
		Expression: expression,
		Format:     format,
		Location:   loc,
		Now:        now,
	}, nil
}

// newLogger returns a stderr debug logger tagged with a short run id,
// or a silent one when verbose is off.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("run", uuid.NewString()[:8])
}

// report prints err the way the class demands: system failures get a
// prefix so scripts can tell them from bad input.
func report(err error) {
	var appErr *errs.Error
	if errors.As(err, &appErr) && !appErr.UserInput() {
		fmt.Fprintln(os.Stderr, "System error:", appErr)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
