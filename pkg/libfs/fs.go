// Package libfs defines the filesystem abstraction the index is built
// against. Scanners only ever see this interface, so tests and embedders can
// supply in-memory trees.
package libfs

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Entry is one directory listing result.
type Entry struct {
	Name  string
	IsDir bool
}

// FS is the read-only filesystem surface consumed by the scanners.
type FS interface {
	// ReadDir lists a directory, distinguishing files from subdirectories.
	ReadDir(path string) ([]Entry, error)

	// ReadFile returns the full text of a file.
	ReadFile(path string) (string, error)
}

// mmapThreshold is the file size above which OS reads go through a
// memory mapping instead of os.ReadFile.
const mmapThreshold = 128 * 1024

// OS is the production FS backed by the operating system.
type OS struct{}

// NewOS returns an FS reading from the real filesystem.
func NewOS() OS { return OS{} }

func (OS) ReadDir(dirPath string) ([]Entry, error) {
	list, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dirPath, err)
	}
	entries := make([]Entry, 0, len(list))
	for _, e := range list {
		entries = append(entries, Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return entries, nil
}

func (OS) ReadFile(filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", filePath, err)
	}
	if info.Size() >= mmapThreshold {
		if text, err := readMapped(filePath); err == nil {
			return text, nil
		}
		// mmap failure falls through to the plain read.
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", filePath, err)
	}
	return string(data), nil
}

func readMapped(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer m.Unmap()

	return string(m), nil
}

// MapFS is an in-memory FS keyed by slash-separated paths. The zero value
// is empty; Files maps full paths to file contents. Directories are implied
// by the file paths they contain.
type MapFS struct {
	Files map[string]string
}

// NewMapFS builds a MapFS from a path→content map.
func NewMapFS(files map[string]string) MapFS {
	return MapFS{Files: files}
}

func (m MapFS) ReadDir(dirPath string) ([]Entry, error) {
	dirPath = strings.TrimSuffix(path.Clean(dirPath), "/")

	seen := make(map[string]bool)
	var entries []Entry
	found := false

	for p := range m.Files {
		rel, ok := childOf(dirPath, p)
		if !ok {
			continue
		}
		found = true
		name, rest, _ := strings.Cut(rel, "/")
		if seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, Entry{Name: name, IsDir: rest != ""})
	}

	if !found {
		return nil, fmt.Errorf("read directory %q: %w", dirPath, os.ErrNotExist)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (m MapFS) ReadFile(filePath string) (string, error) {
	if text, ok := m.Files[path.Clean(filePath)]; ok {
		return text, nil
	}
	return "", fmt.Errorf("read %q: %w", filePath, os.ErrNotExist)
}

func childOf(dir, p string) (string, bool) {
	if dir == "." || dir == "" {
		return p, true
	}
	if strings.HasPrefix(p, dir+"/") {
		return p[len(dir)+1:], true
	}
	return "", false
}
