package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherInvalidatesOnChange(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Build(context.Background()))
	require.True(t, s.Ready())

	dir := t.TempDir()
	w, err := NewWatcher(s, nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(dir))
	defer w.Stop()

	err = os.WriteFile(filepath.Join(dir, "yb-tag.vue"), []byte("<template></template>"), 0o644)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return !s.Ready()
	}, 3*time.Second, 50*time.Millisecond)
}

func TestWatcherStopIdempotent(t *testing.T) {
	w, err := NewWatcher(newTestStore(), nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(t.TempDir()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
