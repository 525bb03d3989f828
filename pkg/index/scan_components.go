package index

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ybkit/resindex/pkg/extract"
)

// componentPatterns selects component source files.
var componentPatterns = []string{"*.vue"}

// modulePatterns selects plain script modules (utilities, config, plugins).
var modulePatterns = []string{"*.js", "*.mjs"}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// scanComponents walks the components tree, parsing each component file
// into a record and associating sibling documentation afterwards.
func (s *Store) scanComponents() error {
	root := s.rootPath(componentsDir)
	return s.scanComponentDir(root, root)
}

func (s *Store) scanComponentDir(root, dir string) error {
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		return err
	}

	category := strings.TrimPrefix(dir, s.root+"/")

	var indexed []*ComponentRecord
	var docText string

	for _, e := range entries {
		full := path.Join(dir, e.Name)

		if e.IsDir {
			if err := s.scanComponentDir(root, full); err != nil {
				s.log.Warn("component directory skipped", "dir", full, "error", err)
			}
			continue
		}

		if e.Name == docFileName {
			text, err := s.fsys.ReadFile(full)
			if err != nil {
				s.log.Warn("component documentation unreadable", "file", full, "error", err)
				continue
			}
			docText = text
			continue
		}

		if !matchesAny(componentPatterns, e.Name) {
			continue
		}

		text, err := s.fsys.ReadFile(full)
		if err != nil {
			s.log.Warn("component file unreadable", "file", full, "error", err)
			continue
		}

		rec := parseComponent(componentName(e.Name), category, full, text)
		s.components[rec.Name] = rec
		indexed = append(indexed, rec)
		s.log.Debug("component indexed", "name", rec.Name, "category", category)
	}

	if docText == "" {
		return nil
	}
	if dir == root {
		s.kindDocs.Components = docText
	}

	// The documentation file covers every component of this category whose
	// name appears in it.
	lowerDoc := strings.ToLower(docText)
	samples := extract.CodeSamples(docText)
	for _, rec := range indexed {
		if strings.Contains(lowerDoc, strings.ToLower(rec.Name)) {
			rec.Documentation = docText
			rec.Examples = samples
		}
	}

	return nil
}

func parseComponent(name, category, filePath, text string) *ComponentRecord {
	return &ComponentRecord{
		Name:     name,
		Category: category,
		Path:     filePath,
		Props:    extract.Props(text),
		Events:   extract.Events(text),
		Mixins:   extract.Mixins(text),
		Imports:  extract.Imports(text),
		Template: extract.Template(text),
	}
}

func componentName(fileName string) string {
	return strings.TrimSuffix(fileName, path.Ext(fileName))
}
