package rotation

import (
	"os"
	"path/filepath"
	"testing"

	"bazaarbot/logger"

	"github.com/stretchr/testify/assert"
)

func TestIndexState_LoadMissingFile(t *testing.T) {
	state := NewIndexState(filepath.Join(t.TempDir(), "missing.txt"))
	state.Load()
	assert.Equal(t, 0, state.Current(10))
}

func TestIndexState_LoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.txt")
	assert.NoError(t, os.WriteFile(path, []byte("not a number"), 0644))

	state := NewIndexState(path)
	state.Load()
	assert.Equal(t, 0, state.Current(10))
}

func TestIndexState_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.txt")

	state := NewIndexState(path)
	state.Load()
	state.Advance(5)
	state.Advance(5)
	assert.NoError(t, state.Store())

	reloaded := NewIndexState(path)
	reloaded.Load()
	assert.Equal(t, 2, reloaded.Current(5))
}

func TestIndexState_WrapAround(t *testing.T) {
	state := NewIndexState(filepath.Join(t.TempDir(), "index.txt"))
	state.Load()

	for i := 0; i < 5; i++ {
		assert.Equal(t, i%3, state.Current(3))
		state.Advance(3)
	}
	assert.Equal(t, 2, state.Current(3))
}

func TestIndexState_StaleIndexWrapsToShorterList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.txt")
	assert.NoError(t, os.WriteFile(path, []byte("7"), 0644))

	// the category list shrank since the index was written
	state := NewIndexState(path)
	state.Load()
	assert.Equal(t, 1, state.Current(3))
}

func TestIndexState_EmptyList(t *testing.T) {
	state := NewIndexState(filepath.Join(t.TempDir(), "index.txt"))
	state.Load()
	assert.Equal(t, 0, state.Current(0))
	state.Advance(0) // must not panic
}

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
