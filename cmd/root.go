package cmd

import (
	"fmt"
	"log/slog"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/humantime/internal/config"
	"github.com/jparise/humantime/internal/convert"
	"github.com/jparise/humantime/internal/log"
	"github.com/jparise/humantime/internal/timeparse"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*colorMode)(nil)
	_ pflag.Value = (*durationValue)(nil)
	_ pflag.Value = (*convert.OutputMode)(nil)
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// durationValue is a flag holding duration text parsed by timeparse.
// A nil value means the flag was not given.
type durationValue struct {
	d *timeparse.Duration
}

func (v *durationValue) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.String()
}

func (v *durationValue) Set(s string) error {
	d, err := timeparse.Parse(s)
	if err != nil {
		return err
	}
	v.d = &d
	return nil
}

func (v *durationValue) Type() string {
	return "duration"
}

var version = "dev"

// settings holds flag values, filled in from the config file for any flag
// not given explicitly.
type settings struct {
	color      colorMode
	jobs       int
	files      []string
	configPath string
	verbose    bool
	quiet      bool
	showInput  bool
	output     convert.OutputMode
	sum        bool
	min        durationValue
	max        durationValue
}

func newRootCmd() *cobra.Command {
	s := &settings{
		color:  colorAuto,
		output: convert.OutputText,
	}

	rootCmd := &cobra.Command{
		Use:   "humantime",
		Short: "Convert between durations and human-readable text",
		Long: `humantime parses human-readable durations such as "2h 15m" or "1.5days"
and formats durations back into compact text such as "2h 37m".

A duration is one or more <number><unit> spans, optionally separated by
whitespace. Units:
  ns, nsec, nanos                 nanoseconds
  us, usec, micros                microseconds
  ms, msec, millis                milliseconds
  s, sec, secs, second, seconds   seconds
  m, min, mins, minute, minutes   minutes
  h, H, hr, hrs, hour, hours      hours
  d, D, dy, dys, day, days        days
  w, W, wk, wks, week, weeks      weeks
  M, mth, mths, month, months     months (30.44 days)
  y, Y, yr, yrs, year, years      years (365.25 days)

Note that "m" is minutes and "M" is months.

Inputs are read from arguments, from the lines of files matching --file
patterns, or from standard input.

Examples:
  humantime parse "2h 15m" 1.5days
  humantime parse --output seconds "20min 17nsec"
  humantime parse --sum 1h 30m 45m
  humantime parse --max 1y -f "config/**/*.durations"
  humantime format 9420 0.032
  humantime between 2018-10-27 "2018-10-28 01:30:00"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Setup(cmd.ErrOrStderr(), s.verbose, s.quiet)

			cfg, err := loadConfig(s.configPath)
			if err != nil {
				return err
			}
			applyConfig(cmd, s, cfg)

			if s.jobs < 1 || s.jobs > 100 {
				return fmt.Errorf("--jobs must be between 1 and 100, got %d", s.jobs)
			}
			if s.min.d != nil && s.max.d != nil && s.min.d.Compare(*s.max.d) > 0 {
				return fmt.Errorf("--min %s cannot be greater than --max %s", s.min.d, s.max.d)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Var(&s.color, "color",
		"colorize output: auto, always, never")
	flags.IntVarP(&s.jobs, "jobs", "j", 10,
		"maximum concurrent conversions")
	flags.StringArrayVarP(&s.files, "file", "f", []string{},
		"read inputs from files matching a glob pattern (can be specified multiple times)")
	flags.StringVar(&s.configPath, "config", "",
		"config file (default: $XDG_CONFIG_HOME/humantime/config.yaml)")
	flags.BoolVarP(&s.showInput, "show-input", "I", false,
		"prefix each result with its input")
	flags.BoolVarP(&s.verbose, "verbose", "v", false,
		"enable debug logging")
	flags.BoolVarP(&s.quiet, "quiet", "q", false,
		"only log warnings and errors")

	rootCmd.AddCommand(
		newParseCmd(s),
		newFormatCmd(s),
		newBetweenCmd(s),
		newConfigCmd(s),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path, true)
	}

	path, err := config.DefaultPath()
	if err != nil {
		slog.Debug("skipping config file", "error", err)
		return &config.Config{}, nil
	}
	return config.Load(path, false)
}

// applyConfig copies config values into s for flags not set on the
// command line.
func applyConfig(cmd *cobra.Command, s *settings, cfg *config.Config) {
	flags := cmd.Flags()
	if cfg.Color != "" && !flags.Changed("color") {
		s.color = colorMode(cfg.Color)
	}
	if cfg.Jobs != 0 && !flags.Changed("jobs") {
		s.jobs = cfg.Jobs
	}
	if cfg.Output != "" && !flags.Changed("output") {
		s.output = convert.OutputMode(cfg.Output)
	}
	if cfg.ShowInput && !flags.Changed("show-input") {
		s.showInput = true
	}
	if cfg.Min != nil && !flags.Changed("min") {
		d := cfg.Min.Duration
		s.min.d = &d
	}
	if cfg.Max != nil && !flags.Changed("max") {
		d := cfg.Max.Duration
		s.max.d = &d
	}
}

// colorize resolves the color mode against the terminal.
func (s *settings) colorize() bool {
	switch s.color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return term.FromEnv().IsColorEnabled()
	}
}

func (s *settings) options(args []string, cmd *cobra.Command) *convert.Options {
	return &convert.Options{
		Inputs:    args,
		Files:     s.files,
		Stdin:     cmd.InOrStdin(),
		Output:    s.output,
		ShowInput: s.showInput,
		Sum:       s.sum,
		Min:       s.min.d,
		Max:       s.max.d,
		Jobs:      s.jobs,
	}
}
