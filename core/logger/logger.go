package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// EntryRecorder is a callback that stores entries in an external datastore.
type EntryRecorder func(le *Entry) error

// Logger records interpreter events.
type Logger struct {
	Record EntryRecorder
}

// NewJSONLinesRecorder creates a Logger that exports entries in newline
// delimited JSON object format.
func NewJSONLinesRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *Entry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// Discard creates a Logger that drops every entry.
func Discard() *Logger {
	return &Logger{
		Record: func(le *Entry) error { return nil },
	}
}

// NewSession creates a logger with an attached random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger logs events with a shared session ID. Recording is best
// effort: failures never disturb the interpreter.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

// Record logs a single event.
func (l *SessionLogger) Record(event Payload) {
	if l == nil || l.logger == nil {
		return
	}

	le := &Entry{
		TimestampMicros: time.Now().UnixNano() / int64(time.Microsecond),
		SessionID:       l.sessionID,
	}
	event.attach(&le.Event)

	_ = l.logger.Record(le)
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *Entry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			return err
		}
		handler(&entry)
	}
	return nil
}
