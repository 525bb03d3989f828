package index

import "github.com/ybkit/resindex/pkg/extract"

// ComponentRecord describes one indexed UI component.
type ComponentRecord struct {
	Name          string               `json:"name"`
	Category      string               `json:"category"`
	Path          string               `json:"path"`
	Props         []extract.Prop       `json:"props,omitempty"`
	Events        []extract.Event      `json:"events,omitempty"`
	Mixins        []string             `json:"mixins,omitempty"`
	Imports       []string             `json:"imports,omitempty"`
	Template      string               `json:"template,omitempty"`
	Documentation string               `json:"documentation,omitempty"`
	Examples      []extract.CodeSample `json:"examples,omitempty"`
}

// UtilityRecord describes one utility module.
type UtilityRecord struct {
	Name          string             `json:"name"`
	Path          string             `json:"path"`
	Functions     []extract.Function `json:"functions,omitempty"`
	Exports       []string           `json:"exports,omitempty"`
	Imports       []string           `json:"imports,omitempty"`
	Documentation string             `json:"documentation,omitempty"`
}

// ConfigRecord describes one configuration module.
type ConfigRecord struct {
	Name          string             `json:"name"`
	Path          string             `json:"path"`
	Exports       []string           `json:"exports,omitempty"`
	Constants     []extract.Constant `json:"constants,omitempty"`
	Documentation string             `json:"documentation,omitempty"`
}

// PluginFile is one source file contributing to a plugin.
type PluginFile struct {
	Name      string             `json:"name"`
	Path      string             `json:"path"`
	Exports   []string           `json:"exports,omitempty"`
	Functions []extract.Function `json:"functions,omitempty"`
}

// PluginRecord describes one plugin directory.
type PluginRecord struct {
	Name          string               `json:"name"`
	Path          string               `json:"path"`
	Files         []PluginFile         `json:"files,omitempty"`
	Documentation string               `json:"documentation,omitempty"`
	Examples      []extract.CodeSample `json:"examples,omitempty"`
}

// Manifest is the subset of a package manifest the example scanner keeps.
type Manifest struct {
	Name         string            `json:"name,omitempty"`
	Version      string            `json:"version,omitempty"`
	Description  string            `json:"description,omitempty"`
	Scripts      map[string]string `json:"scripts,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// TreeNode is one node of a bounded-depth directory capture.
type TreeNode struct {
	Name     string     `json:"name"`
	IsDir    bool       `json:"is_dir"`
	Children []TreeNode `json:"children,omitempty"`
}

// ExampleRecord describes one example project directory.
type ExampleRecord struct {
	Name          string     `json:"name"`
	Path          string     `json:"path"`
	Manifest      *Manifest  `json:"manifest,omitempty"`
	Tree          []TreeNode `json:"tree,omitempty"`
	Documentation string     `json:"documentation,omitempty"`
}

// KindDocs holds kind-level documentation kept separately from named
// records, one optional text per kind.
type KindDocs struct {
	Components string
	Utilities  string
	Configs    string
	Plugins    string
	Examples   string
}
