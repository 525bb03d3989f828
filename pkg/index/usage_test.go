package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybkit/resindex/pkg/extract"
)

func TestUsageExamplesBareComponent(t *testing.T) {
	examples := usageExamples("yb-tag", nil, nil)
	require.Len(t, examples, 1)
	assert.Equal(t, "Basic Usage", examples[0].Title)
	assert.Equal(t, "<yb-tag></yb-tag>", examples[0].Code)
}

func TestUsageExamplesEventHandlers(t *testing.T) {
	events := []extract.Event{{Name: "state-change", Source: "emit"}}
	examples := usageExamples("yb-switch", nil, events)
	require.Len(t, examples, 2)
	assert.Contains(t, examples[1].Code, `@state-change="handleStateChange"`)
}

func TestKebabCase(t *testing.T) {
	assert.Equal(t, "fit-mode", kebabCase("fitMode"))
	assert.Equal(t, "size", kebabCase("size"))
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "StateChange", pascalCase("state-change"))
	assert.Equal(t, "Click", pascalCase("click"))
}
