package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/anima/engine/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("cars_count = 1\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()
	assert.False(t, ok)
	assert.True(t, w.LastLoaded().IsZero())

	require.NoError(t, os.WriteFile(path, []byte("cars_count = 7\n"), 0o644))

	var got *config.Config
	require.Eventually(t, func() bool {
		cfg, ok := w.Poll()
		if ok && cfg.CarsCount == 7 {
			got = cfg
		}
		return got != nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 7, got.CarsCount)
	assert.False(t, w.LastLoaded().IsZero())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	calls := make(chan string, 8)
	w, err := NewWatcherWithLoader(path, func(p string) (*config.Config, error) {
		calls <- p
		return config.Default(), nil
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("cars_count = 2\n"), 0o644))

	select {
	case p := <-calls:
		assert.Equal(t, w.Path(), p)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing the watched file")
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cars_count: 1\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("ties_count: -3\n"), 0o644))

	select {
	case r := <-w.Reloads():
		for r.Err == nil {
			// an empty intermediate write decodes to the defaults
			r = <-w.Reloads()
		}
		assert.ErrorIs(t, r.Err, config.ErrInvalidConfig)
		assert.Nil(t, r.Config)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload reported")
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.Error(t, w.Close())
}
