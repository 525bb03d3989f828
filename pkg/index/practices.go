package index

import (
	"context"
	"strings"

	"github.com/ybkit/resindex/pkg/extract"
)

// Practice is one piece of guidance found for a topic.
type Practice struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// PracticesResult is the outcome of BestPractices.
type PracticesResult struct {
	Topic      string               `json:"topic"`
	Practices  []Practice           `json:"practices,omitempty"`
	Examples   []extract.CodeSample `json:"examples,omitempty"`
	References []string             `json:"references,omitempty"`
}

// excerptLines is how much context an excerpt carries past the matching line.
const excerptLines = 4

// BestPractices searches the indexed documentation for a topic and
// collects matching excerpts, code samples, and source references,
// padded with general guidance keyed off the topic wording.
func (s *Store) BestPractices(ctx context.Context, topic string) (*PracticesResult, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := &PracticesResult{Topic: topic}
	lowerTopic := strings.ToLower(topic)

	for _, name := range sortedKeys(s.components) {
		rec := s.components[name]
		if excerpt := docExcerpt(rec.Documentation, lowerTopic); excerpt != "" {
			result.Practices = append(result.Practices, Practice{Source: "component:" + name, Text: excerpt})
			result.Examples = append(result.Examples, rec.Examples...)
			result.References = append(result.References, rec.Path)
		}
	}

	if excerpt := docExcerpt(s.kindDocs.Utilities, lowerTopic); excerpt != "" {
		result.Practices = append(result.Practices, Practice{Source: "utilities", Text: excerpt})
		result.Examples = append(result.Examples, extract.CodeSamples(s.kindDocs.Utilities)...)
	}

	for _, name := range sortedKeys(s.plugins) {
		rec := s.plugins[name]
		if excerpt := docExcerpt(rec.Documentation, lowerTopic); excerpt != "" {
			result.Practices = append(result.Practices, Practice{Source: "plugin:" + name, Text: excerpt})
			result.Examples = append(result.Examples, rec.Examples...)
			result.References = append(result.References, rec.Path)
		}
	}

	result.Practices = append(result.Practices, generalPractices(lowerTopic)...)

	return result, nil
}

// docExcerpt returns the first line containing the topic together with
// the following lines of context, or "" when the topic never appears.
func docExcerpt(doc, lowerTopic string) string {
	if doc == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), lowerTopic) {
			continue
		}
		end := i + excerptLines + 1
		if end > len(lines) {
			end = len(lines)
		}
		return strings.TrimSpace(strings.Join(lines[i:end], "\n"))
	}
	return ""
}

func generalPractices(lowerTopic string) []Practice {
	var practices []Practice
	if strings.Contains(lowerTopic, "component") || strings.Contains(lowerTopic, "vue") {
		practices = append(practices,
			Practice{Source: "general", Text: "Declare every prop with an explicit type and a default so consumers get predictable behavior without reading the source."},
			Practice{Source: "general", Text: "Emit kebab-case events and document each one; listeners bind by exact event name."},
			Practice{Source: "general", Text: "Keep shared behavior in mixins or utilities instead of duplicating it across components."},
		)
	}
	if strings.Contains(lowerTopic, "util") || strings.Contains(lowerTopic, "function") {
		practices = append(practices,
			Practice{Source: "general", Text: "Export utility functions individually so bundlers can tree-shake unused helpers."},
			Practice{Source: "general", Text: "Keep utility modules small and single-purpose; one concern per file keeps lookups predictable."},
		)
	}
	if strings.Contains(lowerTopic, "plugin") {
		practices = append(practices,
			Practice{Source: "general", Text: "Expose a single install entry point per plugin and register components or directives from there."},
			Practice{Source: "general", Text: "Document plugin options in the plugin's README so consumers can configure without reading internals."},
		)
	}
	return practices
}
