package logger

// Entry is one logged event. Exactly one field of Event is set, mirroring a
// oneof.
type Entry struct {
	// TimestampMicros is the number of microseconds since the UNIX epoch.
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`
	Event           Event  `json:"event"`
}

// Event holds the event payload; only one field is non-nil.
type Event struct {
	SessionStart    *SessionStart    `json:"session_start,omitempty"`
	SessionEnd      *SessionEnd      `json:"session_end,omitempty"`
	RunCommand      *RunCommand      `json:"run_command,omitempty"`
	CommandNotFound *CommandNotFound `json:"command_not_found,omitempty"`
	HistoryRecall   *HistoryRecall   `json:"history_recall,omitempty"`
	HistoryCleared  *HistoryCleared  `json:"history_cleared,omitempty"`
}

// Payload is implemented by every event type.
type Payload interface {
	attach(*Event)
}

// SessionStart records the beginning of an interpreter session.
type SessionStart struct {
	User       string `json:"user,omitempty"`
	RemoteAddr string `json:"remote_addr,omitempty"`
	Terminal   string `json:"terminal,omitempty"`
	IsPTY      bool   `json:"is_pty,omitempty"`
}

// SessionEnd records the end of an interpreter session.
type SessionEnd struct{}

// RunCommand records a successfully launched external command.
type RunCommand struct {
	Command      []string `json:"command"`
	ResolvedPath string   `json:"resolved_path"`
	Background   bool     `json:"background,omitempty"`
}

// CommandNotFound records a command whose program could not be resolved.
type CommandNotFound struct {
	Command []string `json:"command"`
}

// HistoryRecall records a "!N" recall attempt.
type HistoryRecall struct {
	Ref   string `json:"ref"`
	ID    uint64 `json:"id,omitempty"`
	Found bool   `json:"found"`
}

// HistoryCleared records a "history -c".
type HistoryCleared struct{}

func (e *SessionStart) attach(ev *Event)    { ev.SessionStart = e }
func (e *SessionEnd) attach(ev *Event)      { ev.SessionEnd = e }
func (e *RunCommand) attach(ev *Event)      { ev.RunCommand = e }
func (e *CommandNotFound) attach(ev *Event) { ev.CommandNotFound = e }
func (e *HistoryRecall) attach(ev *Event)   { ev.HistoryRecall = e }
func (e *HistoryCleared) attach(ev *Event)  { ev.HistoryCleared = e }
