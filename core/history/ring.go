// Package history keeps a bounded recall buffer of previously entered
// commands.
package history

import "strings"

// Entry is one recorded command line. IDs start at 1 and increase by one for
// every recorded line; they are never reused, even after the entry they were
// assigned to has been overwritten.
type Entry struct {
	ID   uint64
	Line string
}

// Ring is a fixed-capacity circular buffer of command lines. Once full, each
// new entry overwrites the oldest surviving one. The zero value is not
// usable; use NewRing.
type Ring struct {
	entries []Entry
	cursor  int
	nextID  uint64
}

// NewRing returns an empty ring holding at most capacity entries.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		entries: make([]Entry, capacity),
		nextID:  1,
	}
}

// Cap returns the fixed entry capacity.
func (r *Ring) Cap() int {
	return len(r.entries)
}

// NextID returns the id the next recorded entry will be assigned.
func (r *Ring) NextID() uint64 {
	return r.nextID
}

// Append records rawLine and assigns it the next id. Lines that are empty or
// all whitespace are not recorded.
func (r *Ring) Append(rawLine string) {
	if strings.TrimSpace(rawLine) == "" {
		return
	}

	r.entries[r.cursor] = Entry{ID: r.nextID, Line: rawLine}
	r.nextID++
	r.cursor = (r.cursor + 1) % len(r.entries)
}

// List returns the surviving entries, oldest first. Slots that were never
// written are skipped.
func (r *Ring) List() []Entry {
	var out []Entry
	for i := 0; i < len(r.entries); i++ {
		e := r.entries[(r.cursor+i)%len(r.entries)]
		if e.ID != 0 {
			out = append(out, e)
		}
	}
	return out
}

// FindByID returns the line recorded under id, if it hasn't been overwritten.
func (r *Ring) FindByID(id uint64) (string, bool) {
	for _, e := range r.entries {
		if e.ID == id && id != 0 {
			return e.Line, true
		}
	}
	return "", false
}

// Clear drops every entry. The id counter is not reset: ids stay unique for
// the life of the process.
func (r *Ring) Clear() {
	for i := range r.entries {
		r.entries[i] = Entry{}
	}
	r.cursor = 0
}
