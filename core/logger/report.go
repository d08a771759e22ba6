package logger

import "encoding/json"

// Report holds statistics about the logged events.
type Report struct {
	LogEntries int `json:"log_entries"`
	Sessions   int `json:"sessions"`

	CommandNames  StrCounter `json:"command_names"`
	ResolvedPaths StrCounter `json:"resolved_paths"`
	NotFoundNames StrCounter `json:"not_found_names"`

	BackgroundCommands int `json:"background_commands"`
	RecallHits         int `json:"recall_hits"`
	RecallMisses       int `json:"recall_misses"`
	HistoryClears      int `json:"history_clears"`

	InvalidEntries int `json:"invalid_entries,omitempty"`
}

// Update folds one entry into the report.
func (r *Report) Update(le *Entry) {
	r.LogEntries++

	switch event := le.Event; {
	case event.SessionStart != nil:
		r.Sessions++
	case event.SessionEnd != nil:
		// Ignore; counted at start.
	case event.RunCommand != nil:
		msg := event.RunCommand
		if len(msg.Command) > 0 {
			r.CommandNames.Increment(msg.Command[0])
		}
		r.ResolvedPaths.Increment(msg.ResolvedPath)
		if msg.Background {
			r.BackgroundCommands++
		}
	case event.CommandNotFound != nil:
		if cmd := event.CommandNotFound.Command; len(cmd) > 0 {
			r.NotFoundNames.Increment(cmd[0])
		}
	case event.HistoryRecall != nil:
		if event.HistoryRecall.Found {
			r.RecallHits++
		} else {
			r.RecallMisses++
		}
	case event.HistoryCleared != nil:
		r.HistoryClears++
	default:
		r.InvalidEntries++
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times the key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}
