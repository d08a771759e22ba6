package core

// Outcome is the interpreter-internal result of dispatching one command.
// It is not the process's exit code.
type Outcome int

const (
	// Success covers builtins, launched commands, and empty lines.
	Success Outcome = iota
	// CommandNotFound means the external program could not be resolved.
	CommandNotFound
	// ExitRequested means the user asked the interpreter to terminate.
	ExitRequested
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case CommandNotFound:
		return "command not found"
	case ExitRequested:
		return "exit requested"
	default:
		return "unknown"
	}
}
