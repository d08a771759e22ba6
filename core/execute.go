package core

// Execute dispatches one tokenized command. The caller owns argv; it is not
// retained after the call.
func (s *Shell) Execute(argv []string, background bool) Outcome {
	if len(argv) == 0 {
		return Success
	}

	// exit is recognized before anything can be launched.
	if argv[0] == "exit" {
		return ExitRequested
	}

	if builtin, ok := AllBuiltins[argv[0]]; ok {
		builtin.Main(s, argv)
		return Success
	}

	results := s.launch(argv, background)
	if background {
		// The launch outcome is deliberately never observed for background
		// commands; the child is reaped without the interpreter's help.
		return Success
	}

	res := <-results
	if res.err != nil {
		return CommandNotFound
	}
	_ = res.cmd.Wait() // collect the exit status; its value isn't interpreted
	return Success
}
