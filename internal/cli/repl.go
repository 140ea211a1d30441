package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Long: `Read expressions one per line and print each result.

When standard input is not a terminal, lines are read from it without
prompting. Type .help for commands.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

// session is the mutable part of a REPL.
type session struct {
	st     *state
	digits int
	out    io.Writer

	// style is nil unless the session is on a terminal.
	style *styles
}

func runREPL(cmd *cobra.Command, _ []string) error {
	st := stateOf(cmd)
	s := &session{st: st, digits: st.cfg.Digits, out: cmd.OutOrStdout()}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return s.interactive()
	}
	return s.lines(cmd.InOrStdin())
}

func (s *session) interactive() error {
	s.style = newStyles(s.out)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.st.cfg.Prompt,
		HistoryFile:     s.st.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(s.out, s.style.note("calc: type .help for commands, .quit to exit"))
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !s.handle(line) {
			return nil
		}
	}
}

func (s *session) lines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !s.handle(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// handle processes one line. It returns false when the session should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if strings.HasPrefix(line, ".") {
		return s.dot(line)
	}
	r, err := evaluate(s.st.log, line, s.digits)
	if err != nil {
		s.st.log.WithError(err).WithField("expr", line).Debug("expression has no value")
	}
	_, _ = fmt.Fprintln(s.out, s.style.styled(r))
	return true
}

func (s *session) dot(line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return false
	case ".help":
		_, _ = fmt.Fprintln(s.out, `Commands:
  .digits [N]  show or set the digits after the decimal point
  .why EXPR    explain why an expression has no value
  .help        show this help
  .quit        exit`)
	case ".digits":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(s.out, s.digits)
			break
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 0 {
			_, _ = fmt.Fprintf(s.out, "invalid digit count %q\n", parts[1])
			break
		}
		s.digits = n
	case ".why":
		expr := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))
		if _, err := evaluate(s.st.log, expr, s.digits); err != nil {
			_, _ = fmt.Fprintln(s.out, s.style.note(err.Error()))
		} else {
			_, _ = fmt.Fprintln(s.out, "ok")
		}
	default:
		_, _ = fmt.Fprintf(s.out, "unknown command %s; try .help\n", parts[0])
	}
	return true
}
