package vault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsen/devvault/internal/stats"
)

func TestSeed_EmptyVault(t *testing.T) {
	h := newHarness(t)

	seeded, err := h.app("").Seed(false)
	require.NoError(t, err)
	assert.Len(t, seeded, 5)
	assert.Contains(t, h.out.String(), "Seeded 5 demo snippets.")
	assert.Contains(t, h.out.String(), "devvault view 1")

	stored := h.load(t)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(stored))
	assert.Equal(t, "Debounce function", stored[2].Title)
}

func TestSeed_CoversLanguagesAndSharedTags(t *testing.T) {
	sum := stats.Compute(DemoSnippets())

	assert.Equal(t, []stats.Count{{Label: "python", Count: 3}, {Label: "javascript", Count: 1}, {Label: "bash", Count: 1}}, sum.Languages)
	assert.Equal(t, stats.Count{Label: "list", Count: 2}, sum.TopTags[0])
}

func TestSeed_RefusesNonEmptyVault(t *testing.T) {
	h := newHarness(t)
	h.seed(t, demoSnippets()[2])

	_, err := h.app("").Seed(false)
	require.ErrorIs(t, err, ErrVaultNotEmpty)
	assert.Contains(t, err.Error(), "--force")

	assert.Equal(t, []int{5}, ids(h.load(t)), "existing snippets untouched")
}

func TestSeed_ForceReplaces(t *testing.T) {
	h := newHarness(t)
	h.seed(t, demoSnippets()...)

	a := h.app("")
	a.JSON = true
	_, err := a.Seed(true)
	require.NoError(t, err)

	var res SeedResult
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &res))
	assert.Equal(t, SeedResult{Status: "seeded", Snippets: 5, Replaced: 3}, res)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(h.load(t)))
}

func TestSeed_LoadErrorPropagates(t *testing.T) {
	h := newHarness(t)
	a := h.app("")
	a.Store = brokenStore{err: assert.AnError}

	_, err := a.Seed(true)
	require.ErrorIs(t, err, assert.AnError)
}
