package rotation

import (
	"os"
	"strconv"
	"strings"

	"bazaarbot/pkg/errors"
)

// IndexState is the single piece of durable state: a 0-based pointer
// round-robining through a category list across calendar days. It is
// read once at the start of a run and written once at the end; runs
// are never concurrent, so no locking is involved.
type IndexState struct {
	path  string
	index int
}

// NewIndexState creates an index state backed by the flat file at path
func NewIndexState(path string) *IndexState {
	return &IndexState{path: path}
}

// Load reads the persisted index. A missing or unreadable file resets
// the pointer to zero rather than failing the run.
func (s *IndexState) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.index = 0
		return
	}
	idx, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || idx < 0 {
		s.index = 0
		return
	}
	s.index = idx
}

// Current returns the pointer wrapped to the given list length
func (s *IndexState) Current(listLen int) int {
	if listLen <= 0 {
		return 0
	}
	return s.index % listLen
}

// Advance moves the pointer one slot forward, wrapping at listLen
func (s *IndexState) Advance(listLen int) {
	if listLen <= 0 {
		return
	}
	s.index = (s.index + 1) % listLen
}

// Store persists the pointer for the next run
func (s *IndexState) Store() error {
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(s.index)), 0644); err != nil {
		return errors.NewState("failed to write rotation index", err)
	}
	return nil
}
