package index

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ybkit/resindex/pkg/extract"
	"github.com/ybkit/resindex/pkg/similarity"
)

// Match kinds reported on query results.
const (
	MatchExact    = "exact"
	MatchCategory = "category"
	MatchFuzzy    = "fuzzy"
	MatchFunction = "function"
)

// Suggestion is one ranked near-miss offered on a failed lookup.
type Suggestion struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Category string  `json:"category,omitempty"`
}

// UsageExample is one generated usage snippet.
type UsageExample struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// ComponentView is a component record with documentation merged onto its
// declared props/events plus generated usage examples.
type ComponentView struct {
	Name          string               `json:"name"`
	Category      string               `json:"category"`
	Path          string               `json:"path"`
	Props         []extract.Prop       `json:"props,omitempty"`
	Events        []extract.Event      `json:"events,omitempty"`
	Mixins        []string             `json:"mixins,omitempty"`
	Imports       []string             `json:"imports,omitempty"`
	Documentation string               `json:"documentation,omitempty"`
	Examples      []extract.CodeSample `json:"examples,omitempty"`
	Usage         []UsageExample       `json:"usage,omitempty"`
}

// ComponentResult is the outcome of QueryComponent.
type ComponentResult struct {
	Found       bool           `json:"found"`
	Match       string         `json:"match,omitempty"`
	Component   *ComponentView `json:"component,omitempty"`
	Suggestions []Suggestion   `json:"suggestions,omitempty"`
	Message     string         `json:"message,omitempty"`
}

// FunctionMatch names a function found inside a utility module.
type FunctionMatch struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Exported bool   `json:"exported"`
	Module   string `json:"module"`
}

// UtilityResult is the outcome of QueryUtility.
type UtilityResult struct {
	Found       bool           `json:"found"`
	Match       string         `json:"match,omitempty"`
	Utility     *UtilityRecord `json:"utility,omitempty"`
	Function    *FunctionMatch `json:"function,omitempty"`
	Suggestions []Suggestion   `json:"suggestions,omitempty"`
	Message     string         `json:"message,omitempty"`
}

// PluginResult is the outcome of QueryPlugin.
type PluginResult struct {
	Found       bool          `json:"found"`
	Plugin      *PluginRecord `json:"plugin,omitempty"`
	Suggestions []Suggestion  `json:"suggestions,omitempty"`
	Message     string        `json:"message,omitempty"`
}

// Summary is one entry of a listing operation.
type Summary struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// QueryComponent resolves name against the component index: exact key
// match, then a category-scoped substring match when a category hint is
// given, then a fuzzy fallback accepted above the similarity threshold.
// Misses carry ranked suggestions. An unbuilt index is built first.
func (s *Store) QueryComponent(ctx context.Context, name, category string) (*ComponentResult, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.components[name]; ok {
		return &ComponentResult{Found: true, Match: MatchExact, Component: s.componentView(rec)}, nil
	}

	if category != "" {
		if rec := s.categoryMatch(name, category); rec != nil {
			return &ComponentResult{Found: true, Match: MatchCategory, Component: s.componentView(rec)}, nil
		}
	}

	names := sortedKeys(s.components)
	if ranked := similarity.Rank(name, names, similarity.AcceptThreshold); len(ranked) > 0 {
		rec := s.components[ranked[0].Name]
		return &ComponentResult{Found: true, Match: MatchFuzzy, Component: s.componentView(rec)}, nil
	}

	return &ComponentResult{
		Found:       false,
		Message:     fmt.Sprintf("component %q not found", name),
		Suggestions: s.componentSuggestions(name, names),
	}, nil
}

func (s *Store) categoryMatch(name, category string) *ComponentRecord {
	lowerName := strings.ToLower(name)
	for _, key := range sortedKeys(s.components) {
		rec := s.components[key]
		if !strings.Contains(rec.Category, category) {
			continue
		}
		lowerKey := strings.ToLower(rec.Name)
		if strings.Contains(lowerKey, lowerName) || strings.Contains(lowerName, lowerKey) {
			return rec
		}
	}
	return nil
}

func (s *Store) componentSuggestions(query string, names []string) []Suggestion {
	ranked := similarity.Rank(query, names, similarity.SuggestThreshold)
	suggestions := make([]Suggestion, 0, len(ranked))
	for _, c := range ranked {
		sug := Suggestion{Name: c.Name, Score: c.Score}
		if rec, ok := s.components[c.Name]; ok {
			sug.Category = rec.Category
		}
		suggestions = append(suggestions, sug)
	}
	return suggestions
}

// componentView merges documentation-table entries onto the declared
// props/events (matched by name) and attaches generated usage examples.
// Declared entries without documentation pass through undocumented;
// documented entries without a declaration are appended.
func (s *Store) componentView(rec *ComponentRecord) *ComponentView {
	view := &ComponentView{
		Name:          rec.Name,
		Category:      rec.Category,
		Path:          rec.Path,
		Props:         append([]extract.Prop(nil), rec.Props...),
		Events:        append([]extract.Event(nil), rec.Events...),
		Mixins:        rec.Mixins,
		Imports:       rec.Imports,
		Documentation: rec.Documentation,
		Examples:      rec.Examples,
	}

	propRows, eventRows := docTables(rec.Documentation)
	view.Props = mergePropDocs(view.Props, propRows)
	view.Events = mergeEventDocs(view.Events, eventRows)
	view.Usage = usageExamples(rec.Name, view.Props, view.Events)

	return view
}

func docTables(doc string) (props, events []extract.DocRow) {
	for _, section := range extract.Sections(doc) {
		switch strings.ToLower(section.Title) {
		case "props":
			props = append(props, extract.DocTable(section.Content)...)
		case "events":
			events = append(events, extract.DocTable(section.Content)...)
		}
	}
	return props, events
}

func mergePropDocs(props []extract.Prop, rows []extract.DocRow) []extract.Prop {
	byName := make(map[string]int, len(props))
	for i, p := range props {
		byName[p.Name] = i
	}
	for _, row := range rows {
		if i, ok := byName[row.Name]; ok {
			props[i].Description = row.Description
			props[i].Documented = true
			continue
		}
		p := extract.Prop{
			Name:        row.Name,
			Type:        row.Type,
			Default:     row.Default,
			Description: row.Description,
			Documented:  true,
		}
		if p.Type == "" {
			p.Type = "unknown"
		}
		props = append(props, p)
	}
	return props
}

func mergeEventDocs(events []extract.Event, rows []extract.DocRow) []extract.Event {
	byName := make(map[string]int, len(events))
	for i, e := range events {
		byName[e.Name] = i
	}
	for _, row := range rows {
		if i, ok := byName[row.Name]; ok {
			events[i].Description = row.Description
			events[i].Documented = true
			continue
		}
		events = append(events, extract.Event{
			Name:        row.Name,
			Source:      "docs",
			Description: row.Description,
			Documented:  true,
		})
	}
	return events
}

// QueryUtility resolves name against the utility index: exact module
// match, then a function-level search across every module, then ranked
// suggestions drawn from both module and function names.
func (s *Store) QueryUtility(ctx context.Context, name string) (*UtilityResult, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.utilities[name]; ok {
		return &UtilityResult{Found: true, Match: MatchExact, Utility: rec}, nil
	}

	if fn := s.functionMatch(name); fn != nil {
		return &UtilityResult{Found: true, Match: MatchFunction, Function: fn}, nil
	}

	pool := sortedKeys(s.utilities)
	for _, key := range sortedKeys(s.utilities) {
		for _, fn := range s.utilities[key].Functions {
			pool = append(pool, fn.Name)
		}
	}
	ranked := similarity.Rank(name, pool, similarity.SuggestThreshold)
	suggestions := make([]Suggestion, 0, len(ranked))
	for _, c := range ranked {
		suggestions = append(suggestions, Suggestion{Name: c.Name, Score: c.Score})
	}

	return &UtilityResult{
		Found:       false,
		Message:     fmt.Sprintf("utility %q not found", name),
		Suggestions: suggestions,
	}, nil
}

func (s *Store) functionMatch(name string) *FunctionMatch {
	keys := sortedKeys(s.utilities)
	lowerName := strings.ToLower(name)

	// Exact function names win over substring matches.
	for _, key := range keys {
		for _, fn := range s.utilities[key].Functions {
			if fn.Name == name {
				return &FunctionMatch{Name: fn.Name, Kind: string(fn.Kind), Exported: fn.Exported, Module: key}
			}
		}
	}
	for _, key := range keys {
		for _, fn := range s.utilities[key].Functions {
			lowerFn := strings.ToLower(fn.Name)
			if strings.Contains(lowerFn, lowerName) || strings.Contains(lowerName, lowerFn) {
				return &FunctionMatch{Name: fn.Name, Kind: string(fn.Kind), Exported: fn.Exported, Module: key}
			}
		}
	}
	return nil
}

// QueryPlugin resolves name against the plugin index by exact key match
// only; misses carry ranked suggestions over plugin names.
func (s *Store) QueryPlugin(ctx context.Context, name string) (*PluginResult, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.plugins[name]; ok {
		return &PluginResult{Found: true, Plugin: rec}, nil
	}

	ranked := similarity.Rank(name, sortedKeys(s.plugins), similarity.SuggestThreshold)
	suggestions := make([]Suggestion, 0, len(ranked))
	for _, c := range ranked {
		suggestions = append(suggestions, Suggestion{Name: c.Name, Score: c.Score})
	}

	return &PluginResult{
		Found:       false,
		Message:     fmt.Sprintf("plugin %q not found", name),
		Suggestions: suggestions,
	}, nil
}

// GetAllComponents lists every component's name and a one-line summary,
// ordered lexicographically with locale-aware collation.
func (s *Store) GetAllComponents(ctx context.Context) ([]Summary, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.components))
	for _, name := range collatedKeys(s.components) {
		rec := s.components[name]
		summaries = append(summaries, Summary{Name: name, Summary: componentSummary(rec)})
	}
	return summaries, nil
}

// GetAllUtilities lists every utility module's name and summary.
func (s *Store) GetAllUtilities(ctx context.Context) ([]Summary, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.utilities))
	for _, name := range collatedKeys(s.utilities) {
		rec := s.utilities[name]
		summaries = append(summaries, Summary{
			Name:    name,
			Summary: fmt.Sprintf("utility module with %d functions", len(rec.Functions)),
		})
	}
	return summaries, nil
}

// GetAllPlugins lists every plugin's name and summary.
func (s *Store) GetAllPlugins(ctx context.Context) ([]Summary, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.plugins))
	for _, name := range collatedKeys(s.plugins) {
		rec := s.plugins[name]
		summary := firstDocLine(rec.Documentation)
		if summary == "" {
			summary = fmt.Sprintf("plugin with %d files", len(rec.Files))
		}
		summaries = append(summaries, Summary{Name: name, Summary: summary})
	}
	return summaries, nil
}

func componentSummary(rec *ComponentRecord) string {
	if line := firstDocLine(rec.Documentation); line != "" {
		return line
	}
	return fmt.Sprintf("component in %s with %d props and %d events",
		rec.Category, len(rec.Props), len(rec.Events))
}

// firstDocLine returns the first non-empty, non-heading documentation line,
// truncated to a summary length.
func firstDocLine(doc string) string {
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "|") {
			continue
		}
		if len(line) > 120 {
			line = line[:117] + "..."
		}
		return line
	}
	return ""
}

func sortedKeys[V any](m map[string]*V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func collatedKeys[V any](m map[string]*V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	collate.New(language.English).SortStrings(keys)
	return keys
}
