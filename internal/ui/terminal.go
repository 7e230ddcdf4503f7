package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spacesedan/sentiment-detector/internal/session"
)

const HELP = `Commands:
  /start          leave the welcome screen
  /analyze        analyze the prompt you typed
  /another        analyze another prompt
  /new            start over with an empty prompt
  /open <name>    load a prompt
  /save <name>    save the current prompt
  /history        list past prompts in full
  /about          about this program
  /exit           quit
Any other line on the prompt screen is added to the prompt.`

// Terminal is a line-oriented frontend for a Session. Every line is one
// user intent; the screen is redrawn after each.
type Terminal struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
}

func NewTerminal(s *session.Session, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{session: s, in: in, out: out}
}

// MAX_LINE_BYTES caps one input line. Longer lines are dropped with a
// message and reading continues.
const MAX_LINE_BYTES = 1 << 20

type inputLine struct {
	text    string
	tooLong bool
}

// Run reads intents until /exit, end of input or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	Draw(t.out, t.session.Render())

	lines := make(chan inputLine)
	errs := make(chan error, 1)
	go func() {
		reader := bufio.NewReader(t.in)
		for {
			line, err := readLine(reader, MAX_LINE_BYTES)
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				errs <- err
				close(lines)
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errs; err != nil {
					return fmt.Errorf("[Terminal] failed to read input: %w", err)
				}
				return nil
			}
			if line.tooLong {
				slog.Warn("[Terminal] Dropped oversized input line",
					slog.Int("limit_bytes", MAX_LINE_BYTES))
				fmt.Fprintf(t.out, "Line longer than %d bytes ignored.\n", MAX_LINE_BYTES)
				continue
			}
			if exit := t.Handle(ctx, line.text); exit {
				return nil
			}
			Draw(t.out, t.session.Render())
		}
	}
}

// readLine returns the next line without its line ending. A line over limit
// bytes is consumed in full and reported as tooLong with no text.
func readLine(r *bufio.Reader, limit int) (inputLine, error) {
	var (
		buf     []byte
		tooLong bool
		read    bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if read {
				return inputLine{text: string(buf), tooLong: tooLong}, nil
			}
			return inputLine{}, err
		}
		read = true
		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return inputLine{text: string(buf), tooLong: tooLong}, nil
		}
	}
}

// Handle applies one input line to the session and reports whether the user
// asked to exit.
func (t *Terminal) Handle(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, "/") {
		t.appendPrompt(line)
		return false
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "start":
		t.session.Start()
	case "analyze":
		t.session.Analyze()
	case "another":
		t.session.NewPrompt()
	case "new":
		t.session.Reset()
	case "open":
		_ = t.session.Load(ctx, arg)
	case "save":
		_ = t.session.Save(ctx, arg)
	case "history":
		for i, e := range t.session.History() {
			fmt.Fprintf(t.out, "%d. [%s] %s\n", i+1, e.Label, e.Text)
		}
	case "about":
		t.session.About()
	case "help":
		fmt.Fprintln(t.out, HELP)
	case "exit", "quit":
		return true
	default:
		slog.Debug("[Terminal] Unknown command", slog.String("command", cmd))
		fmt.Fprintf(t.out, "Unknown command %q. Type /help for the list.\n", cmd)
	}
	return false
}

func (t *Terminal) appendPrompt(line string) {
	state := t.session.State()
	if state.Screen != session.PromptEntry {
		fmt.Fprintln(t.out, "Type /start or /new before entering a prompt.")
		return
	}

	if state.Prompt == "" {
		t.session.SetPrompt(line)
		return
	}
	t.session.SetPrompt(state.Prompt + "\n" + line)
}
