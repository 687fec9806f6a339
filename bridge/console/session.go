package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jrazmi/taskbot/core/commands"
	"github.com/jrazmi/taskbot/sdk/logger"
)

// Executor runs one input line. *commands.Parser satisfies it.
type Executor interface {
	Execute(ctx context.Context, input string) commands.Result
}

// Session reads one command per line and writes one response per command.
type Session struct {
	log      *logger.Logger
	exec     Executor
	greeting string
	prompt   string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithGreeting prints msg before the first prompt.
func WithGreeting(msg string) SessionOption {
	return func(s *Session) {
		s.greeting = msg
	}
}

// WithPrompt prints prompt before each read.
func WithPrompt(prompt string) SessionOption {
	return func(s *Session) {
		s.prompt = prompt
	}
}

func NewSession(log *logger.Logger, exec Executor, opts ...SessionOption) *Session {
	s := &Session{log: log, exec: exec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes lines from in until a command asks to exit, in is
// exhausted, or ctx is done. Blank lines are skipped.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if s.greeting != "" {
		if _, err := fmt.Fprintln(out, s.greeting); err != nil {
			return fmt.Errorf("write greeting: %w", err)
		}
	}

	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(out, s.prompt)
		}
		if !sc.Scan() {
			break
		}

		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		res := s.exec.Execute(ctx, line)
		switch {
		case res.Err == nil:
		case commands.IsUserError(res.Err):
			s.log.DebugContext(ctx, "rejected command", "kind", res.Kind, "err", res.Err)
		default:
			s.log.WarnContext(ctx, "command failed", "kind", res.Kind, "err", res.Err)
		}

		if _, err := fmt.Fprintln(out, res.Response); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
		if res.Exit {
			return nil
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
