package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWatched(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"levels/level01.txt", true},
		{"game.yaml", true},
		{"GAME.YML", true},
		{"images/tiles.png", false},
		{"levels/.level01.txt.swp", false},
		{"README", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWatched(tt.path))
		})
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	_, ok := w.Poll()
	assert.False(t, ok)

	level := filepath.Join(dir, "level01.txt")
	require.NoError(t, os.WriteFile(level, []byte("TILEMAP\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiles.png"), []byte{0}, 0o644))

	select {
	case path := <-w.Events:
		assert.Equal(t, level, path)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level file")
	}
}

func TestWatcher_PollError(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.PollError())

	w.Errors <- errors.New("queue overflow")
	assert.EqualError(t, w.PollError(), "queue overflow")
	assert.NoError(t, w.PollError())

	require.NoError(t, w.Close())
	assert.NoError(t, w.PollError())
}

func TestWatcher_Close(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
