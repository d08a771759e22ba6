package core

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/catshell/catsh/core/config"
	"github.com/catshell/catsh/core/history"
	"github.com/catshell/catsh/core/logger"
	"github.com/catshell/catsh/core/shell"
)

// IO is the terminal the interpreter is bound to.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsPTY reports whether the input is an interactive terminal.
	IsPTY bool
	// Width returns the current terminal width; nil uses readline's default.
	Width func() int
}

// Shell is one interpreter instance: a readline loop, a history ring, and
// the dispatch engine. It is single threaded; concurrency only arises from
// launched child processes.
type Shell struct {
	// History is the recall buffer. It may be replaced before Run, e.g.
	// with a ring loaded from disk.
	History  *history.Ring
	Readline *readline.Instance

	io      IO
	prompt  string
	maxLine int
	log     *logger.SessionLogger
}

// NewShell builds an interpreter bound to tio. sessionLog may be nil.
func NewShell(configuration *config.Configuration, tio IO, sessionLog *logger.SessionLogger) (*Shell, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(tio.Stdin),
		Stdout: tio.Stdout,
		Stderr: tio.Stderr,
		FuncIsTerminal: func() bool {
			return tio.IsPTY
		},
	}
	if tio.Width != nil {
		cfg.FuncGetWidth = tio.Width
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		History:  history.NewRing(configuration.HistorySize),
		Readline: rl,
		io:       tio,
		prompt:   configuration.Prompt,
		maxLine:  configuration.MaxLineLength,
		log:      sessionLog,
	}, nil
}

// Run reads and executes commands until exit is requested or input closes.
func (s *Shell) Run() {
	for {
		s.Readline.SetPrompt(s.prompt)
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Drop the partial line.

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue
		}

		if len(line) > s.maxLine {
			line = line[:s.maxLine]
		}

		if s.Interpret(line) == ExitRequested {
			return
		}
	}
}

// Interpret tokenizes and dispatches one raw input line, recording it in
// history as its kind requires. The foreground outcome is always observed
// before the history update that follows it.
func (s *Shell) Interpret(line string) Outcome {
	argv, background := shell.Parse(line)
	if len(argv) == 0 {
		return Success
	}

	if strings.HasPrefix(argv[0], "!") {
		return s.recall(argv[0])
	}

	// The history builtin records itself before printing so its own entry
	// shows up in the listing.
	if argv[0] == "history" {
		s.History.Append(line)
		return s.Execute(argv, background)
	}

	outcome := s.Execute(argv, background)
	if outcome != ExitRequested {
		s.History.Append(line)
	}
	return outcome
}

// recall re-runs the history entry named by ref, which looks like "!3".
// The stored line is re-tokenized, re-recorded under a fresh id, and
// dispatched with the normal rules, including any background marker.
func (s *Shell) recall(ref string) Outcome {
	id, err := strconv.ParseUint(strings.TrimPrefix(ref, "!"), 10, 64)
	if err != nil || id < 1 || id >= s.History.NextID() {
		fmt.Fprintf(s.io.Stderr, "%s: event not found\n", ref)
		s.log.Record(&logger.HistoryRecall{Ref: ref, Found: false})
		return Success
	}

	line, ok := s.History.FindByID(id)
	if !ok {
		// The id was assigned once but its entry has been overwritten.
		fmt.Fprintf(s.io.Stderr, "%s: event not found\n", ref)
		s.log.Record(&logger.HistoryRecall{Ref: ref, ID: id, Found: false})
		return Success
	}
	s.log.Record(&logger.HistoryRecall{Ref: ref, ID: id, Found: true})

	argv, background := shell.Parse(line)
	s.History.Append(line)
	return s.Execute(argv, background)
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}
