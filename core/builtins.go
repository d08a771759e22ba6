package core

import (
	"fmt"
	"sort"

	"github.com/catshell/catsh/core/logger"
	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds every registered shell builtin. "exit" is not in the
// map: the engine recognizes it before dispatch so nothing can be launched
// first.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// History displays or clears the recall buffer.
func History(s *Shell, args []string) int {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.io.Stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "Display or manipulate the history list.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return 1
	}

	if *clear {
		s.History.Clear()
		s.log.Record(&logger.HistoryCleared{})
		return 0
	}

	for _, e := range s.History.List() {
		fmt.Fprintf(s.io.Stdout, "%d %s\n", e.ID, e.Line)
	}
	return 0
}

// Help lists the interpreter's builtin vocabulary.
func Help(s *Shell, args []string) int {
	w := s.io.Stdout
	fmt.Fprintln(w, "These commands are handled by the interpreter itself:")
	fmt.Fprintln(w)

	var names []string
	for k := range AllBuiltins {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "  exit")
	fmt.Fprintln(w, "  !N (re-run the history entry with sequence id N)")
	return 0
}

func init() {
	AllBuiltins["history"] = ShellBuiltinFunc(History)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
}
