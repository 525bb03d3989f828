package index

import (
	"encoding/json"
	"path"
	"strings"
)

// maxTreeDepth bounds the directory capture of example projects.
const maxTreeDepth = 3

// manifestFile is the package manifest of an example project.
const manifestFile = "package.json"

// scanExamples indexes each example project subdirectory: an optional
// package manifest, a bounded-depth directory tree excluding dotfiles, and
// any documentation file.
func (s *Store) scanExamples() error {
	root := s.rootPath(examplesDir)
	entries, err := s.fsys.ReadDir(root)
	if err != nil {
		return err
	}

	for _, e := range entries {
		full := path.Join(root, e.Name)

		if !e.IsDir {
			if e.Name == docFileName {
				if text, err := s.fsys.ReadFile(full); err == nil {
					s.kindDocs.Examples = text
				}
			}
			continue
		}

		rec := &ExampleRecord{Name: e.Name, Path: full}

		if text, err := s.fsys.ReadFile(path.Join(full, manifestFile)); err == nil {
			var m Manifest
			if err := json.Unmarshal([]byte(text), &m); err != nil {
				s.log.Warn("example manifest unparseable", "example", e.Name, "error", err)
			} else {
				rec.Manifest = &m
			}
		}

		if text, err := s.fsys.ReadFile(path.Join(full, docFileName)); err == nil {
			rec.Documentation = text
		}

		rec.Tree = s.captureTree(full, 1)

		s.examples[rec.Name] = rec
		s.log.Debug("example indexed", "name", rec.Name)
	}

	return nil
}

// captureTree lists dir recursively down to maxTreeDepth, skipping
// dotfiles and dot-directories at every level.
func (s *Store) captureTree(dir string, depth int) []TreeNode {
	if depth > maxTreeDepth {
		return nil
	}
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		s.log.Warn("example tree unreadable", "dir", dir, "error", err)
		return nil
	}

	var nodes []TreeNode
	for _, e := range entries {
		if strings.HasPrefix(e.Name, ".") {
			continue
		}
		node := TreeNode{Name: e.Name, IsDir: e.IsDir}
		if e.IsDir {
			node.Children = s.captureTree(path.Join(dir, e.Name), depth+1)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
