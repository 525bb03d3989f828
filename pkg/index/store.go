// Package index builds and serves the in-memory resource knowledge index
// for a shared UI library tree: components, utility modules, configuration
// modules, plugins, and example projects.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sync"
	"time"

	"github.com/ybkit/resindex/pkg/libfs"
	"github.com/ybkit/resindex/pkg/util"
)

// Root-relative directories scanned per kind.
const (
	componentsDir = "components"
	utilitiesDir  = "utils"
	configDir     = "config"
	pluginsDir    = "plugins"
	examplesDir   = "examples"
)

// entryPointFile is the module entry point of the utils and config trees.
// It re-exports the real modules and is never indexed itself.
const entryPointFile = "index.js"

// docFileName is the per-directory documentation file.
const docFileName = "README.md"

// Store holds the five kind-indices and their readiness state.
//
// A Store is either unbuilt (empty maps, not ready) or ready. Build
// populates all five maps in one pass; per-category failures leave that
// category incomplete but the store still becomes ready. Queries on an
// unbuilt store trigger a build implicitly.
type Store struct {
	root string
	fsys libfs.FS
	log  *slog.Logger

	mu         sync.RWMutex
	ready      bool
	components map[string]*ComponentRecord
	utilities  map[string]*UtilityRecord
	configs    map[string]*ConfigRecord
	plugins    map[string]*PluginRecord
	examples   map[string]*ExampleRecord
	kindDocs   KindDocs
}

// NewStore creates an unbuilt store over the library rooted at root.
// A nil logger disables logging; indexing never requires one.
func NewStore(root string, fsys libfs.FS, logger *slog.Logger) *Store {
	if logger == nil {
		logger = util.NopLogger()
	}
	return &Store{
		root:       root,
		fsys:       fsys,
		log:        logger,
		components: make(map[string]*ComponentRecord),
		utilities:  make(map[string]*UtilityRecord),
		configs:    make(map[string]*ConfigRecord),
		plugins:    make(map[string]*PluginRecord),
		examples:   make(map[string]*ExampleRecord),
	}
}

// Ready reports whether at least one build pass has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Build runs the five category scans in fixed order, replacing any prior
// contents. Each scan is fault-isolated: its failure is logged and leaves
// that kind's map incomplete, but the store still becomes ready. Only a
// failure of the orchestration itself (context cancellation) leaves the
// store unbuilt and returns an error.
func (s *Store) Build(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildLocked(ctx)
}

func (s *Store) buildLocked(ctx context.Context) error {
	start := time.Now()

	s.ready = false
	s.components = make(map[string]*ComponentRecord)
	s.utilities = make(map[string]*UtilityRecord)
	s.configs = make(map[string]*ConfigRecord)
	s.plugins = make(map[string]*PluginRecord)
	s.examples = make(map[string]*ExampleRecord)
	s.kindDocs = KindDocs{}

	scans := []struct {
		kind string
		run  func() error
	}{
		{"components", s.scanComponents},
		{"utilities", s.scanUtilities},
		{"config", s.scanConfigs},
		{"plugins", s.scanPlugins},
		{"examples", s.scanExamples},
	}

	for _, scan := range scans {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("index build aborted before %s scan: %w", scan.kind, err)
		}
		scanStart := time.Now()
		if err := scan.run(); err != nil {
			s.log.Warn("category scan failed", "kind", scan.kind, "error", err)
		}
		s.log.Debug("category scan done", "kind", scan.kind, "ms", time.Since(scanStart).Milliseconds())
	}

	s.ready = true
	s.log.Info("index built",
		"components", len(s.components),
		"utilities", len(s.utilities),
		"configs", len(s.configs),
		"plugins", len(s.plugins),
		"examples", len(s.examples),
		"ms", time.Since(start).Milliseconds())

	return nil
}

// Invalidate resets the store to its unbuilt state. The next query
// rebuilds. Used by the file watcher when the library tree changes.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = false
}

// ensure makes the store ready, building it under the write lock if
// needed. Concurrent first queries serialize here, so at most one build
// runs at a time.
func (s *Store) ensure(ctx context.Context) error {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()
	if ready {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	return s.buildLocked(ctx)
}

// Stats reports the readiness and record counts of the current index.
type Stats struct {
	Ready      bool `json:"ready"`
	Components int  `json:"components"`
	Utilities  int  `json:"utilities"`
	Configs    int  `json:"configs"`
	Plugins    int  `json:"plugins"`
	Examples   int  `json:"examples"`
}

// Stats returns a snapshot of the store's counters.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Ready:      s.ready,
		Components: len(s.components),
		Utilities:  len(s.utilities),
		Configs:    len(s.configs),
		Plugins:    len(s.plugins),
		Examples:   len(s.examples),
	}
}

func (s *Store) rootPath(parts ...string) string {
	return path.Join(append([]string{s.root}, parts...)...)
}
