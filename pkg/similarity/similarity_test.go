package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"yb-avatar", "yb-avatr", 1},
		{"yb-button", "yb-button", 0},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestScoreIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "yb-avatar", "Some Longer String"} {
		assert.Equal(t, 1.0, Score(s, s), "Score(%q, %q)", s, s)
	}
}

func TestScoreSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"yb-avatar", "yb-avatr"},
		{"crypto", "cryptic"},
		{"", "x"},
		{"Button", "button"},
	}
	for _, p := range pairs {
		assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]))
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Score("YB-Avatar", "yb-avatar"))
}

func TestScoreTypo(t *testing.T) {
	// One edit over nine characters.
	s := Score("yb-avatr", "yb-avatar")
	assert.InDelta(t, 8.0/9.0, s, 1e-9)
	assert.Greater(t, s, SuggestThreshold)
	assert.Greater(t, s, AcceptThreshold)
}

func TestRankOrdersByScore(t *testing.T) {
	names := []string{"yb-button", "yb-avatar", "yb-badge"}
	ranked := Rank("yb-avatr", names, SuggestThreshold)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "yb-avatar", ranked[0].Name)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankThresholdExclusive(t *testing.T) {
	// "zz" vs "yb-avatar" is far below any threshold.
	ranked := Rank("zz", []string{"yb-avatar"}, SuggestThreshold)
	assert.Empty(t, ranked)
}

func TestRankTruncatesToMax(t *testing.T) {
	names := []string{"tab-1", "tab-2", "tab-3", "tab-4", "tab-5", "tab-6", "tab-7"}
	ranked := Rank("tab-0", names, SuggestThreshold)
	assert.Len(t, ranked, MaxSuggestions)
}
