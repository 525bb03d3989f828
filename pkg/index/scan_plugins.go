package index

import (
	"path"

	"github.com/ybkit/resindex/pkg/extract"
)

// scanPlugins indexes each plugin as one record per subdirectory. Plugin
// directories are not recursed into: their direct script files form the
// file list and a documentation file supplies docs and examples.
func (s *Store) scanPlugins() error {
	root := s.rootPath(pluginsDir)
	entries, err := s.fsys.ReadDir(root)
	if err != nil {
		return err
	}

	for _, e := range entries {
		full := path.Join(root, e.Name)

		if !e.IsDir {
			if e.Name == docFileName {
				if text, err := s.fsys.ReadFile(full); err == nil {
					s.kindDocs.Plugins = text
				} else {
					s.log.Warn("plugin documentation unreadable", "file", full, "error", err)
				}
			}
			continue
		}

		rec, err := s.scanPluginDir(e.Name, full)
		if err != nil {
			s.log.Warn("plugin skipped", "plugin", e.Name, "error", err)
			continue
		}
		s.plugins[rec.Name] = rec
		s.log.Debug("plugin indexed", "name", rec.Name, "files", len(rec.Files))
	}

	return nil
}

func (s *Store) scanPluginDir(name, dir string) (*PluginRecord, error) {
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	rec := &PluginRecord{Name: name, Path: dir}

	for _, e := range entries {
		if e.IsDir {
			continue
		}
		full := path.Join(dir, e.Name)

		if e.Name == docFileName {
			text, err := s.fsys.ReadFile(full)
			if err != nil {
				s.log.Warn("plugin documentation unreadable", "file", full, "error", err)
				continue
			}
			rec.Documentation = text
			rec.Examples = extract.CodeSamples(text)
			continue
		}

		if !matchesAny(modulePatterns, e.Name) {
			continue
		}

		text, err := s.fsys.ReadFile(full)
		if err != nil {
			s.log.Warn("plugin file unreadable", "file", full, "error", err)
			continue
		}
		rec.Files = append(rec.Files, PluginFile{
			Name:      e.Name,
			Path:      full,
			Exports:   extract.Exports(text),
			Functions: extract.Functions(text),
		})
	}

	return rec, nil
}
