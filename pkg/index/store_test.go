package index

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybkit/resindex/pkg/libfs"
)

const buttonSource = `<template>
  <button :class="['yb-button', type]" @click="handleClick">
    <slot></slot>
  </button>
</template>

<script>
export default {
  name: 'yb-button',
  props: {
    type: {
      type: String,
      default: 'primary'
    },
    disabled: {
      type: Boolean,
      default: false
    }
  },
  methods: {
    handleClick(event) {
      this.$emit('click', event)
    }
  }
}
</script>
`

const avatarSource = `<template>
  <span class="yb-avatar"><img :src="src" /></span>
</template>

<script>
export default {
  name: 'yb-avatar',
  props: {
    size: {
      type: String,
      default: 'medium'
    }
  }
}
</script>
`

const basicDoc = "# yb-button\n\n" +
	"A clickable button control.\n\n" +
	"## Props\n\n" +
	"| Name | Type | Default | Description |\n" +
	"| ---- | ---- | ------- | ----------- |\n" +
	"| type | String | 'primary' | Visual style of the button |\n" +
	"| plain | Boolean | false | Render with a transparent background |\n\n" +
	"## Events\n\n" +
	"| Name | Description |\n" +
	"| ---- | ----------- |\n" +
	"| click | Emitted when the button is activated |\n\n" +
	"## Usage\n\n" +
	"```vue\n<yb-button type=\"danger\">Delete</yb-button>\n```\n"

const cryptoSource = `import md5 from 'md5'

export function encrypted(value) {
  return md5(salt + value)
}

export const decode = (value) => value

const salt = 'yb'
`

const loadingDoc = "# loading\n\n" +
	"Fullscreen loading overlay plugin.\n\n" +
	"Use the loading directive for async sections.\n\n" +
	"```vue\n<div v-loading=\"busy\"></div>\n```\n"

func newTestFS() libfs.MapFS {
	return libfs.NewMapFS(map[string]string{
		"lib/components/README.md":          "# Components\n\nShared building blocks.\n",
		"lib/components/basic/yb-button.vue": buttonSource,
		"lib/components/basic/yb-avatar.vue": avatarSource,
		"lib/components/basic/README.md":     basicDoc,

		"lib/utils/README.md": "# Utilities\n\nHelper modules for the component library.\n",
		"lib/utils/index.js":  "export * from './crypto'\n",
		"lib/utils/crypto.js": cryptoSource,
		"lib/utils/format.js": "export function formatDate(date, pattern) {\n  return pattern\n}\n",

		"lib/config/index.js": "export * from './theme'\n",
		"lib/config/theme.js": "export const PRIMARY = '#409eff'\nexport const SIZES = ['small', 'medium', 'large']\n",

		"lib/plugins/README.md":        "# Plugins\n",
		"lib/plugins/loading/index.js": "import Loading from './loading'\n\nconst install = (Vue) => {\n  Vue.component('yb-loading', Loading)\n}\n\nexport default install\n",
		"lib/plugins/loading/README.md": loadingDoc,

		"lib/examples/README.md":        "# Examples\n",
		"lib/examples/demo/package.json": `{"name":"demo","version":"1.0.0","dependencies":{"vue":"^2.7.0"}}`,
		"lib/examples/demo/README.md":   "# demo\n\nMinimal integration example.\n",
		"lib/examples/demo/src/main.js": "import Vue from 'vue'\n",
	})
}

func newTestStore() *Store {
	return NewStore("lib", newTestFS(), nil)
}

func TestBuildPopulatesAllKinds(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Build(context.Background()))
	require.True(t, s.Ready())

	assert.Len(t, s.components, 2)
	assert.Len(t, s.utilities, 2)
	assert.Len(t, s.configs, 1)
	assert.Len(t, s.plugins, 1)
	assert.Len(t, s.examples, 1)

	assert.NotEmpty(t, s.kindDocs.Components)
	assert.NotEmpty(t, s.kindDocs.Utilities)
	assert.NotEmpty(t, s.kindDocs.Plugins)
	assert.NotEmpty(t, s.kindDocs.Examples)
}

func TestBuildSkipsEntryPoints(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Build(context.Background()))

	_, ok := s.utilities["index"]
	assert.False(t, ok)
	_, ok = s.configs["index"]
	assert.False(t, ok)
}

// faultFS makes one directory unreadable.
type faultFS struct {
	libfs.FS
	failDir string
}

func (f faultFS) ReadDir(path string) ([]libfs.Entry, error) {
	if path == f.failDir {
		return nil, errors.New("permission denied")
	}
	return f.FS.ReadDir(path)
}

func TestBuildIsolatesCategoryFailure(t *testing.T) {
	fsys := faultFS{FS: newTestFS(), failDir: "lib/plugins"}
	s := NewStore("lib", fsys, nil)

	require.NoError(t, s.Build(context.Background()))
	require.True(t, s.Ready())

	assert.Empty(t, s.plugins)
	assert.Len(t, s.components, 2)
	assert.Len(t, s.utilities, 2)
}

func TestBuildCancelledContext(t *testing.T) {
	s := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, s.Build(ctx))
	assert.False(t, s.Ready())
}

func TestLazyBuildOnQuery(t *testing.T) {
	s := newTestStore()
	require.False(t, s.Ready())

	res, err := s.QueryUtility(context.Background(), "encrypted")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, MatchFunction, res.Match)
	require.NotNil(t, res.Function)
	assert.Equal(t, "encrypted", res.Function.Name)
	assert.Equal(t, "crypto", res.Function.Module)
	assert.True(t, res.Function.Exported)

	assert.True(t, s.Ready())
}

func TestInvalidateForcesRebuild(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Build(context.Background()))

	s.Invalidate()
	require.False(t, s.Ready())

	_, err := s.QueryComponent(context.Background(), "yb-button", "")
	require.NoError(t, err)
	assert.True(t, s.Ready())
}
