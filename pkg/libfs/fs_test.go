package libfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFSReadDir(t *testing.T) {
	fsys := NewMapFS(map[string]string{
		"lib/components/basic/yb-button.vue": "<template></template>",
		"lib/components/basic/README.md":     "# docs",
		"lib/components/form/yb-input.vue":   "",
		"lib/utils/index.js":                 "",
	})

	entries, err := fsys.ReadDir("lib/components")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Name: "basic", IsDir: true}, entries[0])
	assert.Equal(t, Entry{Name: "form", IsDir: true}, entries[1])

	entries, err = fsys.ReadDir("lib/components/basic")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Name: "README.md", IsDir: false}, entries[0])
	assert.Equal(t, Entry{Name: "yb-button.vue", IsDir: false}, entries[1])
}

func TestMapFSReadDirMissing(t *testing.T) {
	fsys := NewMapFS(map[string]string{"a/b.js": ""})
	_, err := fsys.ReadDir("a/missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMapFSReadFile(t *testing.T) {
	fsys := NewMapFS(map[string]string{"a/b.js": "const x = 1"})

	text, err := fsys.ReadFile("a/b.js")
	require.NoError(t, err)
	assert.Equal(t, "const x = 1", text)

	_, err = fsys.ReadFile("a/missing.js")
	assert.Error(t, err)
}

func TestOSReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.js"), []byte("export const a = 1"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	fsys := NewOS()

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	text, err := fsys.ReadFile(filepath.Join(dir, "x.js"))
	require.NoError(t, err)
	assert.Equal(t, "export const a = 1", text)
}

// countingFS counts reads to verify caching behavior.
type countingFS struct {
	MapFS
	reads int
}

func (c *countingFS) ReadFile(path string) (string, error) {
	c.reads++
	return c.MapFS.ReadFile(path)
}

func TestCachingReadFileOnce(t *testing.T) {
	inner := &countingFS{MapFS: NewMapFS(map[string]string{"a.js": "1"})}
	fsys, err := NewCaching(inner, 8, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		text, err := fsys.ReadFile("a.js")
		require.NoError(t, err)
		assert.Equal(t, "1", text)
	}
	assert.Equal(t, 1, inner.reads)

	fsys.Purge()
	_, err = fsys.ReadFile("a.js")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.reads)
}

func TestCachingMissNotCached(t *testing.T) {
	inner := &countingFS{MapFS: NewMapFS(map[string]string{})}
	fsys, err := NewCaching(inner, 8, nil)
	require.NoError(t, err)

	_, err = fsys.ReadFile("gone.js")
	assert.Error(t, err)
	_, err = fsys.ReadFile("gone.js")
	assert.Error(t, err)
	assert.Equal(t, 2, inner.reads)
}
