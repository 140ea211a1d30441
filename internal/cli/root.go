// Package cli provides the command-line interface for calc.
package cli

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
	"github.com/zephyrtronium/calc/internal/logx"
)

// Version is set at build time.
var Version = "dev"

// ErrResult is returned by commands whose expression evaluated to Error in
// strict mode, or that was invalid when checked.
var ErrResult = errors.New("expression has no value")

// stateKey stores the loaded settings in the command context.
type stateKey struct{}

type state struct {
	cfg *config.Config
	log *log.Logger
}

// NewRootCmd creates the root command with all of its subcommands.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:   "calc",
		Short: "An exact four-function calculator",
		Long: `calc evaluates arithmetic expressions with + - * / and brackets.

Every intermediate result is an exact fraction; only the final answer is
rounded, half up, to a fixed number of digits after the decimal point.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			l := logx.New(cfg, cmd.ErrOrStderr())
			if cfg.File != "" {
				l.WithField("file", cfg.File).Debug("using config file")
			}
			cmd.SetContext(context.WithValue(cmd.Context(), stateKey{}, &state{cfg: cfg, log: l}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	root.PersistentFlags().IntP("digits", "d", calc.DefaultMaxFractionDigits, "maximum digits after the decimal point")
	root.PersistentFlags().BoolP("verbose", "v", false, "log each step of evaluation")
	root.PersistentFlags().String("log-format", config.LogText, "log format (text|json)")
	root.PersistentFlags().Bool("strict", false, "fail when the result is Error")

	_ = root.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.LogText, config.LogJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newEvalCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newTokensCommand())
	root.AddCommand(newREPLCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// stateOf returns the settings loaded by the root command. Commands run
// without the root, as in tests, get defaults.
func stateOf(cmd *cobra.Command) *state {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(stateKey{}).(*state); ok {
			return s
		}
	}
	cfg, err := config.Load("", nil)
	if err != nil {
		cfg = &config.Config{Digits: calc.DefaultMaxFractionDigits, LogFormat: config.LogText}
	}
	return &state{cfg: cfg, log: logx.Discard()}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
