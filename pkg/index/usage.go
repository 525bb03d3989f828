package index

import (
	"fmt"
	"strings"

	"github.com/ybkit/resindex/pkg/extract"
)

// usageExamples generates snippet templates for a component from its
// declared surface: a basic form carrying the default-valued props, a
// form binding every prop, and a form wiring every event to a handler.
func usageExamples(name string, props []extract.Prop, events []extract.Event) []UsageExample {
	examples := []UsageExample{basicUsage(name, props)}
	if len(props) > 0 {
		examples = append(examples, propsUsage(name, props))
	}
	if len(events) > 0 {
		examples = append(examples, eventsUsage(name, events))
	}
	return examples
}

func basicUsage(name string, props []extract.Prop) UsageExample {
	var b strings.Builder
	b.WriteString("<" + name)
	for _, p := range props {
		if p.Default == "" {
			continue
		}
		if lit, ok := stringLiteral(p.Default); ok {
			fmt.Fprintf(&b, " %s=%q", kebabCase(p.Name), lit)
		} else {
			fmt.Fprintf(&b, " :%s=%q", kebabCase(p.Name), p.Default)
		}
	}
	b.WriteString("></" + name + ">")
	return UsageExample{Title: "Basic Usage", Language: "vue", Code: b.String()}
}

func propsUsage(name string, props []extract.Prop) UsageExample {
	var b strings.Builder
	b.WriteString("<" + name + "\n")
	for _, p := range props {
		fmt.Fprintf(&b, "  :%s=%q\n", kebabCase(p.Name), p.Name)
	}
	b.WriteString("></" + name + ">")
	return UsageExample{Title: "With Props", Language: "vue", Code: b.String()}
}

func eventsUsage(name string, events []extract.Event) UsageExample {
	var b strings.Builder
	b.WriteString("<" + name)
	for _, e := range events {
		fmt.Fprintf(&b, " @%s=%q", e.Name, "handle"+pascalCase(e.Name))
	}
	b.WriteString("></" + name + ">")
	return UsageExample{Title: "With Events", Language: "vue", Code: b.String()}
}

// stringLiteral unwraps a quoted default value; non-string defaults
// (booleans, numbers, factory functions) keep a binding expression.
func stringLiteral(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if len(v) >= 2 {
		if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
			return v[1 : len(v)-1], true
		}
	}
	return "", false
}

func kebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func pascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
