package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jparise/humantime/internal/config"
	"github.com/jparise/humantime/internal/convert"
	"github.com/spf13/cobra"
)

func newParseCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [<duration>...]",
		Short: "Parse duration text",
		Long: `Parse each duration and print it as canonical text, decimal seconds, or
a Go time.Duration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c := convert.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.colorize())
			return c.Parse(ctx, s.options(args, cmd))
		},
	}

	cmd.Flags().VarP(&s.output, "output", "o",
		"output format: text, seconds, go")
	cmd.Flags().BoolVar(&s.sum, "sum", false,
		"print only the sum of all inputs")
	cmd.Flags().Var(&s.min, "min",
		"reject durations shorter than this (e.g., 500ms)")
	cmd.Flags().Var(&s.max, "max",
		"reject durations longer than this (e.g., 1y)")
	return cmd
}

func newFormatCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [<seconds>...]",
		Short: "Format decimal seconds as duration text",
		Long: `Format each decimal number of seconds, such as 9420 or 0.032, as canonical
duration text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c := convert.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.colorize())
			return c.Format(ctx, s.options(args, cmd))
		},
	}

	cmd.Flags().BoolVar(&s.sum, "sum", false,
		"print only the sum of all inputs")
	return cmd
}

func newBetweenCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "between <start> <end>",
		Short: "Format the time elapsed between two timestamps",
		Long: `Format the time elapsed between two timestamps. Timestamps are
YYYY-MM-DD, "YYYY-MM-DD HH:MM:SS" (both UTC), or RFC3339.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := convert.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.colorize())
			return c.Between(args[0], args[1])
		},
	}
}

func newConfigCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as YAML, combining the config file with
any flags given on the command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.Config{
				Color:     string(s.color),
				Jobs:      s.jobs,
				Output:    string(s.output),
				ShowInput: s.showInput,
			}
			if s.min.d != nil {
				cfg.Min = &config.Duration{Duration: *s.min.d}
			}
			if s.max.d != nil {
				cfg.Max = &config.Duration{Duration: *s.max.d}
			}
			return config.Write(cmd.OutOrStdout(), cfg)
		},
	}
}
