// Package extract turns raw file text into structured fragments using
// textual heuristics. Every function is pure and total: malformed input
// yields an empty or partial result, never an error. The heuristics accept
// false negatives on exotic syntax; they never build a syntax tree.
package extract

import (
	"regexp"
	"strings"
)

var (
	propsOpenRe = regexp.MustCompile(`props\s*:\s*\{`)
	propEntryRe = regexp.MustCompile(`([A-Za-z_$][\w$-]*)\s*:\s*\{`)
	propTypeRe  = regexp.MustCompile(`type\s*:\s*(\[[^\]]*\]|[A-Za-z_$][\w$.]*)`)
	propDfltRe  = regexp.MustCompile(`default\s*:\s*([^\n,]+)`)

	emitRe = regexp.MustCompile("\\bemit\\(\\s*['\"`]([^'\"`]+)['\"`]")

	importFromRe = regexp.MustCompile(`from\s+['"]([^'"]+)['"]`)

	exportListRe    = regexp.MustCompile(`export\s*\{([^}]*)\}`)
	exportDefaultRe = regexp.MustCompile(`export\s+default\s+([A-Za-z_$][\w$]*)`)
	exportDeclRe    = regexp.MustCompile(`(?m)^export\s+(?:async\s+)?(?:const|let|var|function|class)\s+([A-Za-z_$][\w$]*)`)

	constRe = regexp.MustCompile(`(?m)^(export\s+)?const\s+([A-Za-z_$][\w$]*)\s*=\s*(.+)$`)

	funcDeclRe  = regexp.MustCompile(`(?m)^(export\s+)?(?:async\s+)?function\s+([A-Za-z_$][\w$]*)`)
	arrowDeclRe = regexp.MustCompile(`(?m)^(export\s+)?const\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s*)?(?:\([^)\n]*\)|[A-Za-z_$][\w$]*)\s*=>`)

	templateOpenRe = regexp.MustCompile(`<template[^>]*>`)

	mixinsRe = regexp.MustCompile(`mixins\s*:\s*\[([^\]]*)\]`)
)

// Props locates a props block, splits it into per-entry object spans, and
// pulls the type/default sub-fields of each entry. Entries whose type cannot
// be resolved get type "unknown" and no default.
func Props(src string) []Prop {
	loc := propsOpenRe.FindStringIndex(src)
	if loc == nil {
		return nil
	}
	block, ok := balancedBlock(src, loc[1]-1)
	if !ok {
		return nil
	}

	var props []Prop
	pos := 0
	for pos < len(block) {
		m := propEntryRe.FindStringSubmatchIndex(block[pos:])
		if m == nil {
			break
		}
		name := block[pos+m[2] : pos+m[3]]
		body, ok := balancedBlock(block, pos+m[1]-1)
		if !ok {
			break
		}

		p := Prop{Name: name, Type: "unknown"}
		if tm := propTypeRe.FindStringSubmatch(body); tm != nil {
			p.Type = strings.TrimSpace(tm[1])
		}
		if dm := propDfltRe.FindStringSubmatch(body); dm != nil {
			p.Default = strings.TrimRight(strings.TrimSpace(dm[1]), "}; \t")
		}
		props = append(props, p)

		// Continue after the entry span: opener end + body + closing brace.
		pos += m[1] + len(body) + 1
	}

	return props
}

// Events scans emit-call sites carrying a string-literal first argument.
// Names are de-duplicated in order of first occurrence and tagged with
// source "emit".
func Events(src string) []Event {
	seen := make(map[string]bool)
	var events []Event
	for _, m := range emitRe.FindAllStringSubmatch(src, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		events = append(events, Event{Name: name, Source: "emit"})
	}
	return events
}

// Imports returns every module specifier referenced by a from clause.
// Duplicates are preserved.
func Imports(src string) []string {
	var specs []string
	for _, m := range importFromRe.FindAllStringSubmatch(src, -1) {
		specs = append(specs, m[1])
	}
	return specs
}

// Exports aggregates named-export lists, a single default export (reported
// as "default: <name>"), and directly exported declarations. No
// de-duplication is applied.
func Exports(src string) []string {
	var names []string

	for _, m := range exportListRe.FindAllStringSubmatch(src, -1) {
		for _, entry := range strings.Split(m[1], ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			// "local as alias" exports under the alias.
			if idx := strings.Index(entry, " as "); idx >= 0 {
				entry = strings.TrimSpace(entry[idx+4:])
			}
			names = append(names, entry)
		}
	}

	if m := exportDefaultRe.FindStringSubmatch(src); m != nil {
		names = append(names, "default: "+m[1])
	}

	for _, m := range exportDeclRe.FindAllStringSubmatch(src, -1) {
		names = append(names, m[1])
	}

	return names
}

// Constants captures top-level const declarations with their raw right-hand
// side text and an exported flag.
func Constants(src string) []Constant {
	var consts []Constant
	for _, m := range constRe.FindAllStringSubmatch(src, -1) {
		value := strings.TrimSpace(m[3])
		value = strings.TrimSuffix(value, ";")
		consts = append(consts, Constant{
			Name:     m[2],
			Value:    value,
			Exported: m[1] != "",
		})
	}
	return consts
}

// Functions captures named function declarations and arrow-function
// assignments, tagged with their kind and exported flag. Arrow assignments
// also appear in Constants; callers wanting one view pick the relevant list.
func Functions(src string) []Function {
	var fns []Function
	seen := make(map[string]bool)

	for _, m := range funcDeclRe.FindAllStringSubmatch(src, -1) {
		if seen[m[2]] {
			continue
		}
		seen[m[2]] = true
		fns = append(fns, Function{Name: m[2], Kind: KindFunction, Exported: m[1] != ""})
	}
	for _, m := range arrowDeclRe.FindAllStringSubmatch(src, -1) {
		if seen[m[2]] {
			continue
		}
		seen[m[2]] = true
		fns = append(fns, Function{Name: m[2], Kind: KindArrow, Exported: m[1] != ""})
	}

	return fns
}

// Template returns the literal text between a component's template
// delimiters, or "" if the file has none. With nested templates the span
// runs to the last closing delimiter.
func Template(src string) string {
	open := templateOpenRe.FindStringIndex(src)
	if open == nil {
		return ""
	}
	close := strings.LastIndex(src, "</template>")
	if close < 0 || close < open[1] {
		return ""
	}
	return src[open[1]:close]
}

// Mixins returns the identifiers listed in a component's mixins array.
func Mixins(src string) []string {
	m := mixinsRe.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	var names []string
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// balancedBlock returns the text between the brace at openBrace and its
// matching closing brace, exclusive. Returns false when src[openBrace] is
// not '{' or the braces never balance.
func balancedBlock(src string, openBrace int) (string, bool) {
	if openBrace < 0 || openBrace >= len(src) || src[openBrace] != '{' {
		return "", false
	}
	depth := 0
	for i := openBrace; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[openBrace+1 : i], true
			}
		}
	}
	return "", false
}
