// Package snippet defines the core domain type for stored code snippets.
package snippet

import (
	"strings"
	"time"
)

// DefaultLanguage is used when no language is given.
const DefaultLanguage = "text"

// TimeLayout is the fixed created_at format (minute precision).
const TimeLayout = "2006-01-02 15:04"

// Snippet represents a single stored code sample with metadata.
type Snippet struct {
	// Identity
	ID int `json:"id"` // Sequential, never reassigned

	// Metadata
	Title       string   `json:"title"`
	Language    string   `json:"language"` // Lowercase label, "text" by default
	Description string   `json:"description"`
	Tags        []string `json:"tags"` // Lowercase, ordered, duplicates allowed

	// Body
	Code string `json:"code"`

	CreatedAt string `json:"created_at"` // TimeLayout, set once
}

// New builds a snippet from raw user input, normalizing language, tags, and
// code. It performs no validation; callers reject empty titles and code.
func New(id int, title, language, description, tagsRaw, code string, now time.Time) Snippet {
	tags := ParseTags(tagsRaw)
	if tags == nil {
		tags = []string{}
	}
	return Snippet{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Language:    NormalizeLanguage(language),
		Description: strings.TrimSpace(description),
		Tags:        tags,
		Code:        strings.TrimSpace(code),
		CreatedAt:   now.Format(TimeLayout),
	}
}

// NormalizeLanguage trims and lowercases a language label, falling back to
// DefaultLanguage when empty.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultLanguage
	}
	return strings.ToLower(lang)
}

// ParseTags splits a comma-separated list into trimmed, lowercased tags.
// Empty entries are dropped; order and duplicates are preserved.
func ParseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Matches reports whether the lowercased query is a substring of the
// lowercased title, language, description, any tag, or code.
func (s Snippet) Matches(query string) bool {
	q := strings.ToLower(query)

	fields := []string{s.Title, s.Language, s.Description, s.Code}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// CodeLines returns the code body split into lines.
func (s Snippet) CodeLines() []string {
	if s.Code == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s.Code, "\r\n", "\n"), "\n")
}

// Filter returns the snippets matching query, in their original order.
func Filter(snippets []Snippet, query string) []Snippet {
	var out []Snippet
	for _, s := range snippets {
		if s.Matches(query) {
			out = append(out, s)
		}
	}
	return out
}
