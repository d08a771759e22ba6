package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	session := NewJSONLinesRecorder(&buf).NewSession()

	session.Record(&SessionStart{User: "root", Terminal: "xterm", IsPTY: true})
	session.Record(&RunCommand{
		Command:      []string{"ls", "-l"},
		ResolvedPath: "/bin/ls",
	})
	session.Record(&CommandNotFound{Command: []string{"frobnicate"}})
	session.Record(&SessionEnd{})

	var entries []*Entry
	require.NoError(t, ReadJSONLinesLog(&buf, func(le *Entry) {
		entries = append(entries, le)
	}))

	require.Len(t, entries, 4)
	for _, le := range entries {
		assert.NotEmpty(t, le.SessionID)
		assert.Equal(t, entries[0].SessionID, le.SessionID)
		assert.NotZero(t, le.TimestampMicros)
	}
	assert.Equal(t, "root", entries[0].Event.SessionStart.User)
	assert.Equal(t, "/bin/ls", entries[1].Event.RunCommand.ResolvedPath)
	assert.Equal(t, []string{"frobnicate"}, entries[2].Event.CommandNotFound.Command)
	assert.NotNil(t, entries[3].Event.SessionEnd)
}

func TestDiscardIsSafe(t *testing.T) {
	session := Discard().NewSession()
	session.Record(&HistoryCleared{})

	var nilSession *SessionLogger
	nilSession.Record(&HistoryCleared{}) // must not panic
}

func TestReportUpdate(t *testing.T) {
	report := &Report{}

	update := func(p Payload) {
		le := &Entry{}
		p.attach(&le.Event)
		report.Update(le)
	}

	update(&SessionStart{})
	update(&RunCommand{Command: []string{"ls", "-l"}, ResolvedPath: "/bin/ls"})
	update(&RunCommand{Command: []string{"ls"}, ResolvedPath: "/bin/ls"})
	update(&RunCommand{Command: []string{"sleep", "5"}, ResolvedPath: "/bin/sleep", Background: true})
	update(&CommandNotFound{Command: []string{"frobnicate"}})
	update(&HistoryRecall{Ref: "!3", ID: 3, Found: true})
	update(&HistoryRecall{Ref: "!99", Found: false})
	update(&HistoryCleared{})
	update(&SessionEnd{})

	assert.Equal(t, 9, report.LogEntries)
	assert.Equal(t, 1, report.Sessions)
	assert.Equal(t, 2, report.CommandNames.Count("ls"))
	assert.Equal(t, 2, report.ResolvedPaths.Count("/bin/ls"))
	assert.Equal(t, 1, report.NotFoundNames.Count("frobnicate"))
	assert.Equal(t, 1, report.BackgroundCommands)
	assert.Equal(t, 1, report.RecallHits)
	assert.Equal(t, 1, report.RecallMisses)
	assert.Equal(t, 1, report.HistoryClears)
	assert.Equal(t, 0, report.InvalidEntries)
}
