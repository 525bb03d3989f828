package index

import (
	"path"
	"strings"

	"github.com/ybkit/resindex/pkg/extract"
)

// scanUtilities indexes every utility module under the utils tree, keyed by
// filename minus extension. The entry-point file re-exports the modules and
// is skipped; the tree's documentation file becomes the kind-level doc.
func (s *Store) scanUtilities() error {
	return s.walkModules(s.rootPath(utilitiesDir), func(full, text string) {
		name := moduleName(full)
		s.utilities[name] = &UtilityRecord{
			Name:      name,
			Path:      full,
			Functions: extract.Functions(text),
			Exports:   extract.Exports(text),
			Imports:   extract.Imports(text),
		}
		s.log.Debug("utility indexed", "name", name)
	}, &s.kindDocs.Utilities)
}

// scanConfigs indexes configuration modules the same way, keeping exported
// symbols and top-level constants.
func (s *Store) scanConfigs() error {
	return s.walkModules(s.rootPath(configDir), func(full, text string) {
		name := moduleName(full)
		s.configs[name] = &ConfigRecord{
			Name:      name,
			Path:      full,
			Exports:   extract.Exports(text),
			Constants: extract.Constants(text),
		}
		s.log.Debug("config indexed", "name", name)
	}, &s.kindDocs.Configs)
}

// walkModules recursively visits script files under dir, calling index for
// each. The entry-point file is skipped; a documentation file at any level
// is captured into kindDoc (last one wins, matching last-scan-wins keys).
func (s *Store) walkModules(dir string, index func(full, text string), kindDoc *string) error {
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		full := path.Join(dir, e.Name)

		if e.IsDir {
			if err := s.walkModules(full, index, kindDoc); err != nil {
				s.log.Warn("module directory skipped", "dir", full, "error", err)
			}
			continue
		}

		if e.Name == docFileName {
			text, err := s.fsys.ReadFile(full)
			if err != nil {
				s.log.Warn("module documentation unreadable", "file", full, "error", err)
				continue
			}
			*kindDoc = text
			continue
		}

		if e.Name == entryPointFile || !matchesAny(modulePatterns, e.Name) {
			continue
		}

		text, err := s.fsys.ReadFile(full)
		if err != nil {
			s.log.Warn("module file unreadable", "file", full, "error", err)
			continue
		}
		index(full, text)
	}

	return nil
}

func moduleName(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}
