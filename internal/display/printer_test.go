package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsen/devvault/internal/snippet"
	"github.com/matsen/devvault/internal/stats"
)

func sample() snippet.Snippet {
	return snippet.Snippet{
		ID:          4,
		Title:       "Flatten a nested list",
		Language:    "python",
		Description: "Turns [[1,2],[3,4]] into [1,2,3,4]",
		Tags:        []string{"list", "flatten"},
		Code:        "nested = [[1, 2], [3, 4]]\nflat = [x for xs in nested for x in xs]",
		CreatedAt:   "2026-02-20 11:42",
	}
}

func TestSnippet_Summary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, ColorNever).Snippet(sample(), false)
	out := buf.String()

	assert.Contains(t, out, "[4]  Flatten a nested list   python")
	assert.Contains(t, out, "#list  #flatten")
	assert.Contains(t, out, "Added: 2026-02-20 11:42")
	assert.Contains(t, out, "Turns [[1,2],[3,4]] into [1,2,3,4]")
	assert.NotContains(t, out, "flat = [x for xs")
	assert.NotContains(t, out, "\033[", "no escape codes when color is off")
}

func TestSnippet_Full(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, ColorNever).Snippet(sample(), true)
	out := buf.String()

	assert.Contains(t, out, "  nested = [[1, 2], [3, 4]]\n")
	assert.Contains(t, out, "  flat = [x for xs in nested for x in xs]\n")
	assert.Contains(t, out, strings.Repeat("·", DividerWidth))
}

func TestSnippet_NoTagsNoDescription(t *testing.T) {
	s := sample()
	s.Tags = nil
	s.Description = ""

	var buf bytes.Buffer
	NewPrinter(&buf, ColorNever).Snippet(s, false)

	assert.NotContains(t, buf.String(), "#")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// divider, title, added, divider
	assert.Len(t, lines, 4)
}

func TestSnippet_Color(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, ColorAlways).Snippet(sample(), false)

	out := buf.String()
	assert.Contains(t, out, "\033[")
	assert.Contains(t, out, "#list")
	assert.Contains(t, out, "python")
	assert.NotContains(t, out, "  #list  #flatten", "each tag is styled on its own")
}

func TestSnippet_TabsInCodeSurvive(t *testing.T) {
	s := sample()
	s.Code = "func f() {\n\treturn\n}"

	var buf bytes.Buffer
	NewPrinter(&buf, ColorNever).Snippet(s, true)

	assert.Contains(t, buf.String(), "  \treturn\n")
}

func TestHint_MultiLineNotPadded(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, ColorNever).Hint("Type 'END' on a new line when finished:\n")

	assert.Equal(t, "  Type 'END' on a new line when finished:\n\n", buf.String())
}

func TestSnippetList(t *testing.T) {
	var buf bytes.Buffer
	s2 := sample()
	s2.ID = 7
	s2.Title = "Second"

	NewPrinter(&buf, ColorNever).SnippetList("2 snippet(s) in your vault", []snippet.Snippet{sample(), s2})
	out := buf.String()

	assert.Contains(t, out, "✦ 2 snippet(s) in your vault")
	assert.Less(t, strings.Index(out, "[4]"), strings.Index(out, "[7]"))
}

func TestStats(t *testing.T) {
	sum := stats.Summary{
		Total:     3,
		Languages: []stats.Count{{Label: "python", Count: 2}, {Label: "bash", Count: 1}},
		TopTags:   []stats.Count{{Label: "a", Count: 2}, {Label: "b", Count: 1}},
	}

	var buf bytes.Buffer
	NewPrinter(&buf, ColorNever).Stats(sum)
	out := buf.String()

	assert.Contains(t, out, "Total snippets : 3")
	assert.Contains(t, out, "Languages used : 2")
	assert.Contains(t, out, "    python       ██  2\n")
	assert.Contains(t, out, "    bash         █  1\n")
	assert.Contains(t, out, "#a                   2 snippet(s)")
	assert.Less(t, strings.Index(out, "#a "), strings.Index(out, "#b "))
}

func TestStats_NoTags(t *testing.T) {
	sum := stats.Summary{Total: 1, Languages: []stats.Count{{Label: "go", Count: 1}}}

	var buf bytes.Buffer
	NewPrinter(&buf, ColorNever).Stats(sum)

	assert.NotContains(t, buf.String(), "Top tags")
}

func TestBarLength(t *testing.T) {
	tests := []struct {
		count, max, width, want int
	}{
		{0, 5, 40, 0},
		{3, 5, 40, 3},
		{40, 40, 40, 40},
		{80, 80, 40, 40},
		{40, 80, 40, 20},
		{1, 1000, 40, 1},
	}

	for _, tt := range tests {
		got := BarLength(tt.count, tt.max, tt.width)
		assert.Equal(t, tt.want, got, "BarLength(%d, %d, %d)", tt.count, tt.max, tt.width)
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "AUTO": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		mode      ColorMode
		wantColor bool
	}{
		{ColorAlways, true},
		{ColorNever, false},
		{ColorAuto, false}, // a buffer is not a terminal
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf, tt.mode).Success("saved")

			assert.Equal(t, tt.wantColor, strings.Contains(buf.String(), "\033["))
			assert.Contains(t, buf.String(), "✔ saved")
		})
	}
}

func TestNewRenderer_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewPrinter(&buf, ColorAuto).Error("boom")

	assert.Equal(t, "\n  boom\n\n", buf.String())
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, ColorNever).Banner("v1.2.3")

	assert.Contains(t, buf.String(), "Your personal code snippet vault  •  v1.2.3")
}
