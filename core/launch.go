package core

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/catshell/catsh/core/logger"
)

// launchResult is the one-shot message from the launcher to the interpreter:
// either the started command or the resolution error.
type launchResult struct {
	cmd *exec.Cmd
	err error
}

// launch resolves argv[0] against PATH and starts the child with the full
// argv and the interpreter's stdio. The channel is buffered so a background
// launch completes even though nobody reads its result.
func (s *Shell) launch(argv []string, background bool) <-chan launchResult {
	results := make(chan launchResult, 1)

	go func() {
		path, err := exec.LookPath(argv[0])
		if err != nil {
			// Printed in both modes, like the child half of a fork; only
			// foreground callers also observe the outcome.
			fmt.Fprintf(s.io.Stderr, "%s: command not found\n", argv[0])
			s.log.Record(&logger.CommandNotFound{Command: argv})
			results <- launchResult{err: err}
			return
		}

		cmd := &exec.Cmd{
			Path:   path,
			Args:   argv,
			Stdout: s.io.Stdout,
			Stderr: s.io.Stderr,
		}
		// Only hand the child a real file for stdin: a plain reader would
		// need a copy goroutine that can outlive the child and steal bytes
		// from readline.
		if fd, ok := s.io.Stdin.(*os.File); ok {
			cmd.Stdin = fd
		}

		if err := cmd.Start(); err != nil {
			// Resolution already succeeded, so this is the process-creation
			// step failing. Continuing with partial state is worse than
			// stopping.
			fmt.Fprintf(s.io.Stderr, "catsh: cannot start process: %v\n", err)
			os.Exit(1)
		}

		s.log.Record(&logger.RunCommand{
			Command:      argv,
			ResolvedPath: path,
			Background:   background,
		})
		results <- launchResult{cmd: cmd}

		if background {
			// Reap the child. Its outcome is never reported back.
			_ = cmd.Wait()
		}
	}()

	return results
}
