package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

// evaluate composes and evaluates one line of input, formatting the result
// with at most digits digits after the decimal point. The result is always a
// numeral or calc.ErrorText; err explains an ErrorText result.
func evaluate(l *log.Logger, line string, digits int) (string, error) {
	toks, err := calc.ComposeString(line)
	if err != nil {
		return calc.ErrorText, err
	}
	l.WithField("tokens", toks).Debug("composed")
	if err := calc.Check(toks); err != nil {
		return calc.ErrorText, err
	}
	if l.IsLevelEnabled(log.DebugLevel) {
		if g, err := calc.Group(toks); err != nil {
			l.WithError(err).Debug("checked")
		} else {
			l.WithField("grouped", g).Debug("checked")
		}
	}
	r, err := calc.Eval(toks)
	if err != nil {
		return calc.ErrorText, err
	}
	return calc.Format(r, digits), nil
}

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate an expression",
		Long: `Evaluate an expression and print the result.

The arguments are joined with spaces. Multiplication may be implicit next
to brackets, as in "2(3+4)". Use -- before an expression that starts with -.`,
		Example: `  calc eval '1/3*3'
  calc eval -d 2 2/3
  calc eval -- -5+3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stateOf(cmd)
			line := strings.Join(args, " ")
			r, err := evaluate(st.log, line, st.cfg.Digits)
			if err != nil {
				st.log.WithError(err).WithField("expr", line).Warn("expression has no value")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), r)
			if r == calc.ErrorText && st.cfg.Strict {
				return fmt.Errorf("%s: %w", line, errors.Join(ErrResult, err))
			}
			return nil
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check EXPR...",
		Short: "Check that an expression is well-formed",
		Long: `Check that an expression is well-formed. A valid expression is printed
with one pair of brackets around every operation to show how it groups.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			toks, err := calc.ComposeString(line)
			if err == nil {
				err = calc.Check(toks)
			}
			if err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "invalid:", err)
				return fmt.Errorf("%s: %w", line, ErrResult)
			}
			g, err := calc.Group(toks)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "valid:", g)
			return nil
		},
	}
}

func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens EXPR...",
		Short: "Show how an expression is split into tokens",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := calc.ComposeString(strings.Join(args, " "))
			if err != nil {
				return err
			}
			renderTokens(cmd.OutOrStdout(), toks)
			return nil
		},
	}
}

func renderTokens(w io.Writer, toks []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"#", "Token", "Kind"})
	for i, tok := range toks {
		t.AppendRow(table.Row{i, tok, calc.TokenKind(tok)})
	}
	t.Render()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "calc %s\n", Version)
		},
	}
}
