package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buttonSource = `<template>
  <button class="yb-button" :disabled="disabled" @click="onClick">
    <slot></slot>
  </button>
</template>

<script>
import { throttle } from '../../utils/throttle'
import emitterMixin from '../../mixins/emitter'

export default {
  name: 'yb-button',
  mixins: [emitterMixin],
  props: {
    type: {
      type: String,
      default: 'primary'
    },
    disabled: {
      type: Boolean,
      default: false
    },
    round: {
      validator(value) {
        return typeof value === 'boolean'
      }
    }
  },
  methods: {
    onClick(event) {
      this.$emit('click', event)
      this.$emit('click', event)
      this.$emit('state-change', { active: true })
    }
  }
}
</script>
`

func TestPropsExtractsDeclaredEntries(t *testing.T) {
	props := Props(buttonSource)
	require.Len(t, props, 3)

	assert.Equal(t, Prop{Name: "type", Type: "String", Default: "'primary'"}, props[0])
	assert.Equal(t, Prop{Name: "disabled", Type: "Boolean", Default: "false"}, props[1])

	// Entry without a type sub-field resolves to "unknown" with no default.
	assert.Equal(t, "round", props[2].Name)
	assert.Equal(t, "unknown", props[2].Type)
	assert.Empty(t, props[2].Default)
}

func TestPropsNoBlock(t *testing.T) {
	assert.Nil(t, Props("export default { name: 'yb-divider' }"))
}

func TestPropsUnbalancedBlock(t *testing.T) {
	// Truncated source must not panic and yields nothing.
	assert.Nil(t, Props("props: { size: { type: String,"))
}

func TestEventsDeduplicated(t *testing.T) {
	events := Events(buttonSource)
	require.Len(t, events, 2)
	assert.Equal(t, Event{Name: "click", Source: "emit"}, events[0])
	assert.Equal(t, Event{Name: "state-change", Source: "emit"}, events[1])
}

func TestEventsNoEmits(t *testing.T) {
	assert.Empty(t, Events("function noop() { return emitter }"))
}

func TestImportsPreservesDuplicates(t *testing.T) {
	src := `
import { a } from './a'
import { b } from './a'
import c from 'vue'
`
	assert.Equal(t, []string{"./a", "./a", "vue"}, Imports(src))
}

func TestExports(t *testing.T) {
	src := `
export const VERSION = '1.0.0'
export function install(app) {}
export { formatDate, parseDate as parse }
export default encrypted
const hidden = 1
`
	names := Exports(src)
	assert.Contains(t, names, "formatDate")
	assert.Contains(t, names, "parse")
	assert.Contains(t, names, "default: encrypted")
	assert.Contains(t, names, "VERSION")
	assert.Contains(t, names, "install")
	assert.NotContains(t, names, "hidden")
}

func TestConstants(t *testing.T) {
	src := `
const BASE_URL = 'https://api.example.com';
export const MAX_RETRIES = 3
	const scoped = true
`
	consts := Constants(src)
	require.Len(t, consts, 2)
	assert.Equal(t, Constant{Name: "BASE_URL", Value: "'https://api.example.com'", Exported: false}, consts[0])
	assert.Equal(t, Constant{Name: "MAX_RETRIES", Value: "3", Exported: true}, consts[1])
}

func TestFunctions(t *testing.T) {
	src := `
export function formatDate(d) {}
async function fetchData() {}
export const debounce = (fn, ms) => {}
const throttle = fn => fn
`
	fns := Functions(src)
	require.Len(t, fns, 4)
	assert.Equal(t, Function{Name: "formatDate", Kind: KindFunction, Exported: true}, fns[0])
	assert.Equal(t, Function{Name: "fetchData", Kind: KindFunction, Exported: false}, fns[1])
	assert.Equal(t, Function{Name: "debounce", Kind: KindArrow, Exported: true}, fns[2])
	assert.Equal(t, Function{Name: "throttle", Kind: KindArrow, Exported: false}, fns[3])
}

func TestTemplate(t *testing.T) {
	tpl := Template(buttonSource)
	assert.Contains(t, tpl, `class="yb-button"`)
	assert.NotContains(t, tpl, "<template>")
	assert.NotContains(t, tpl, "</template>")
}

func TestTemplateAbsent(t *testing.T) {
	assert.Empty(t, Template("export default {}"))
}

func TestMixins(t *testing.T) {
	assert.Equal(t, []string{"emitterMixin"}, Mixins(buttonSource))
	assert.Nil(t, Mixins("export default {}"))
}
