// Package shell tokenizes raw command lines.
//
// Tokens are maximal runs of non-blank characters. The splitter is
// deliberately dumber than a POSIX shell: no quoting, no escaping, no
// operators. The only syntax it knows is the trailing "&" marker that
// requests background execution.
package shell

import "strings"

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// Parse splits line into whitespace-delimited tokens and reports whether the
// command should run in the background.
//
// A trailing "&" marks a background command in two forms:
//
//	sleep 5 &   the marker is its own token and is dropped
//	sleep 5&    the marker ends the last token and is stripped from it
//
// An "&" anywhere else is an ordinary character. An empty or all-blank line
// yields no tokens.
func Parse(line string) (argv []string, background bool) {
	argv = strings.FieldsFunc(line, isBlank)
	if len(argv) == 0 {
		return nil, false
	}

	last := argv[len(argv)-1]
	switch {
	case last == "&":
		argv = argv[:len(argv)-1]
		background = true
	case strings.HasSuffix(last, "&"):
		// len(last) > 1 here, so stripping never empties the token.
		argv[len(argv)-1] = last[:len(last)-1]
		background = true
	}

	if len(argv) == 0 {
		argv = nil
	}
	return argv, background
}
