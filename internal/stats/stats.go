// Package stats aggregates language and tag frequencies across snippets.
//
// Counts keep first-seen order, and sorting is stable, so entries with equal
// counts always appear in the order they were first encountered.
package stats

import (
	"sort"

	"github.com/matsen/devvault/internal/snippet"
)

// TopTagsLimit is how many tags Summary reports.
const TopTagsLimit = 5

// Count is a label with its number of occurrences.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Counter is a frequency map that remembers insertion order.
type Counter struct {
	index  map[string]int
	counts []Count
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add records one occurrence of label.
func (c *Counter) Add(label string) {
	if i, ok := c.index[label]; ok {
		c.counts[i].Count++
		return
	}
	c.index[label] = len(c.counts)
	c.counts = append(c.counts, Count{Label: label, Count: 1})
}

// Len returns the number of distinct labels.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Sorted returns counts by descending count, ties in first-seen order.
func (c *Counter) Sorted() []Count {
	out := make([]Count, len(c.counts))
	copy(out, c.counts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Top returns at most n entries of Sorted.
func (c *Counter) Top(n int) []Count {
	sorted := c.Sorted()
	if n >= 0 && len(sorted) > n {
		return sorted[:n]
	}
	return sorted
}

// Summary is the aggregate view printed by the stats command.
type Summary struct {
	Total     int     `json:"total"`
	Languages []Count `json:"languages"`
	TopTags   []Count `json:"top_tags"`
}

// DistinctLanguages returns how many languages are in use.
func (s Summary) DistinctLanguages() int {
	return len(s.Languages)
}

// MaxLanguageCount returns the largest per-language count, or 0.
func (s Summary) MaxLanguageCount() int {
	if len(s.Languages) == 0 {
		return 0
	}
	// Languages is sorted descending
	return s.Languages[0].Count
}

// Compute builds a Summary. Tags are counted once per occurrence, so a tag
// repeated on one snippet counts twice.
func Compute(snippets []snippet.Snippet) Summary {
	langs := NewCounter()
	tags := NewCounter()

	for _, s := range snippets {
		langs.Add(s.Language)
		for _, t := range s.Tags {
			tags.Add(t)
		}
	}

	return Summary{
		Total:     len(snippets),
		Languages: langs.Sorted(),
		TopTags:   tags.Top(TopTagsLimit),
	}
}
