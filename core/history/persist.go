package history

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Save writes the surviving entries to path, one raw line per file line,
// oldest first. IDs are not persisted; they are a per-process notion.
func (r *Ring) Save(fsys afero.Fs, path string) error {
	fd, err := fsys.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	for _, e := range r.List() {
		if _, err := fmt.Fprintln(fd, e.Line); err != nil {
			fd.Close()
			return err
		}
	}

	return fd.Close()
}

// Load builds a ring of the given capacity from a file written by Save,
// re-appending each stored line in order. A missing file yields an empty
// ring; any other error is returned.
func Load(fsys afero.Fs, path string, capacity int) (*Ring, error) {
	ring := NewRing(capacity)

	fd, err := fsys.Open(path)
	if os.IsNotExist(err) {
		return ring, nil
	}
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		ring.Append(scanner.Text())
	}
	return ring, scanner.Err()
}
