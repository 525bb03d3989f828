package extract

import (
	"regexp"
	"strings"
)

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	fenceRe   = regexp.MustCompile("(?s)```([A-Za-z0-9_+-]*)[ \t]*\n(.*?)```")
	tableRowRe = regexp.MustCompile(`^\s*\|(.+)\|\s*$`)
)

// Sections splits markdown text on any-level heading markers into a flat
// ordered list. Text before the first heading is not captured.
func Sections(text string) []Section {
	var sections []Section
	var current *Section
	var body []string

	flush := func() {
		if current != nil {
			current.Content = strings.TrimSpace(strings.Join(body, "\n"))
			sections = append(sections, *current)
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Section{Title: strings.TrimSpace(m[2])}
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// CodeSamples returns every fenced code block. A fence without a language
// tag yields language "text".
func CodeSamples(text string) []CodeSample {
	var samples []CodeSample
	for _, m := range fenceRe.FindAllStringSubmatch(text, -1) {
		lang := m[1]
		if lang == "" {
			lang = "text"
		}
		samples = append(samples, CodeSample{
			Language: lang,
			Code:     strings.TrimRight(m[2], "\n"),
		})
	}
	return samples
}

// DocTable parses the pipe-delimited table rows of one documentation
// section. The first data-bearing row is treated as the header and skipped,
// as are separator rows. Column meaning is positional: name, then type,
// then default (four-column tables only), with the last column as the
// description.
func DocTable(sectionContent string) []DocRow {
	var rows []DocRow
	sawHeader := false

	for _, line := range strings.Split(sectionContent, "\n") {
		m := tableRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cols := splitTableRow(m[1])
		if len(cols) == 0 {
			continue
		}
		if isSeparatorRow(cols) {
			continue
		}
		if !sawHeader {
			sawHeader = true
			continue
		}

		row := DocRow{Name: strings.Trim(cols[0], "`")}
		switch {
		case len(cols) >= 4:
			row.Type = cols[1]
			row.Default = cols[2]
			row.Description = cols[3]
		case len(cols) == 3:
			row.Type = cols[1]
			row.Description = cols[2]
		case len(cols) == 2:
			row.Description = cols[1]
		}
		if row.Name != "" {
			rows = append(rows, row)
		}
	}

	return rows
}

func splitTableRow(inner string) []string {
	parts := strings.Split(inner, "|")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		cols = append(cols, strings.TrimSpace(p))
	}
	return cols
}

func isSeparatorRow(cols []string) bool {
	for _, c := range cols {
		if c == "" {
			continue
		}
		if strings.Trim(c, "-: ") != "" {
			return false
		}
	}
	return true
}
