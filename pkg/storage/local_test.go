package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "events")
	store := NewLocalStorage(dir)

	require.NoError(t, store.Save("banner.png", strings.NewReader("png-bytes")))

	saved, err := os.ReadFile(filepath.Join(dir, "banner.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
}

func TestLocalStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	store := NewLocalStorage(dir)

	require.NoError(t, store.Save("a.jpg", strings.NewReader("x")))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_Overwrite(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(dir)

	require.NoError(t, store.Save("a.jpg", strings.NewReader("old")))
	require.NoError(t, store.Save("a.jpg", strings.NewReader("new")))

	saved, err := os.ReadFile(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), saved)
}
